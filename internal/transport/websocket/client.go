package websocket

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"linux-monitor/internal/domain"
	"linux-monitor/internal/logger"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

type Client struct {
	ID   string
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
	log  logger.Logger
}

func NewClient(hub *Hub, conn *websocket.Conn, log logger.Logger) *Client {
	id := uuid.NewString()
	return &Client{
		ID:   id,
		hub:  hub,
		conn: conn,
		send: make(chan []byte, 256),
		log:  log.With("client_id", id),
	}
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregisterClient(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			c.log.Debug("client disconnected", "error", err)
			break
		}

		var msg domain.WsClientMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			c.log.Warn("invalid json message", "error", err)
			continue
		}

		switch msg.Type {
		case domain.WsSubscribe:
			c.hub.changeSubscription(c.hub.subscribe, &Subscription{client: c, channel: msg.Channel})
		case domain.WsUnsubscribe:
			c.hub.changeSubscription(c.hub.unsubscribe, &Subscription{client: c, channel: msg.Channel})
		default:
			c.log.Warn("unknown message type", "type", msg.Type)
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))

			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
