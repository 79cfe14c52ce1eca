// Package websocket pushes stored snapshots to subscribed viewers.
package websocket

import (
	"context"
	"encoding/json"

	"linux-monitor/internal/domain"
	"linux-monitor/internal/logger"
)

type ClientObserver interface {
	SetWsClients(n int)
}

type Subscription struct {
	client  *Client
	channel string
}

// Hub owns all client and channel bookkeeping; only Run touches the maps.
type Hub struct {
	clients  map[*Client]bool
	channels map[string]map[*Client]bool

	register    chan *Client
	unregister  chan *Client
	subscribe   chan *Subscription
	unsubscribe chan *Subscription
	events      chan *domain.WsInternalEvent
	quit        chan struct{}

	log logger.Logger
	obs ClientObserver
}

func NewHub(log logger.Logger, obs ClientObserver) *Hub {
	return &Hub{
		clients:  make(map[*Client]bool),
		channels: make(map[string]map[*Client]bool),

		register:    make(chan *Client),
		unregister:  make(chan *Client),
		subscribe:   make(chan *Subscription),
		unsubscribe: make(chan *Subscription),
		events:      make(chan *domain.WsInternalEvent, 100),
		quit:        make(chan struct{}),

		log: log,
		obs: obs,
	}
}

func (h *Hub) Run(ctx context.Context) {
	defer close(h.quit)

	for {
		select {
		case <-ctx.Done():
			for client := range h.clients {
				h.remove(client)
			}
			return

		case client := <-h.register:
			h.clients[client] = true
			h.clientsChanged()
			h.log.Info("ws: client registered", "id", client.ID, "total_clients", len(h.clients))

		case client := <-h.unregister:
			h.remove(client)

		case sub := <-h.subscribe:
			if _, ok := h.clients[sub.client]; !ok {
				continue
			}
			if h.channels[sub.channel] == nil {
				h.channels[sub.channel] = make(map[*Client]bool)
			}
			h.channels[sub.channel][sub.client] = true
			h.log.Debug("ws: client subscribed", "client_id", sub.client.ID, "channel", sub.channel)

		case sub := <-h.unsubscribe:
			if subs, ok := h.channels[sub.channel]; ok {
				delete(subs, sub.client)
				if len(subs) == 0 {
					delete(h.channels, sub.channel)
				}
				h.log.Debug("ws: client unsubscribed", "client_id", sub.client.ID, "channel", sub.channel)
			}

		case event := <-h.events:
			h.handleEvent(event)
		}
	}
}

// Client-side requests give up once the hub has stopped.
func (h *Hub) registerClient(c *Client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.quit:
		return false
	}
}

func (h *Hub) unregisterClient(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.quit:
	}
}

func (h *Hub) changeSubscription(ch chan *Subscription, sub *Subscription) {
	select {
	case ch <- sub:
	case <-h.quit:
	}
}

func (h *Hub) remove(client *Client) {
	if _, ok := h.clients[client]; !ok {
		return
	}

	delete(h.clients, client)
	close(client.send)

	for channel, subs := range h.channels {
		delete(subs, client)
		if len(subs) == 0 {
			delete(h.channels, channel)
		}
	}

	h.clientsChanged()
	h.log.Info("ws: client unregistered", "id", client.ID, "total_clients", len(h.clients))
}

func (h *Hub) clientsChanged() {
	if h.obs != nil {
		h.obs.SetWsClients(len(h.clients))
	}
}

func (h *Hub) handleEvent(event *domain.WsInternalEvent) {
	subs, ok := h.channels[event.Channel]
	if !ok {
		return
	}

	message, err := json.Marshal(event)
	if err != nil {
		h.log.Error("ws: failed to marshal event", "error", err)
		return
	}

	for client := range subs {
		select {
		case client.send <- message:
		default:
			h.log.Warn("ws: client channel full, dropping client", "id", client.ID)
			h.remove(client)
		}
	}
}

// Broadcast queues an event without blocking the caller. Events are dropped
// when the queue is full.
func (h *Hub) Broadcast(channel, event string, payload any) {
	select {
	case h.events <- &domain.WsInternalEvent{Channel: channel, Event: event, Payload: payload}:
	default:
		h.log.Warn("ws: event queue full, dropping event", "channel", channel, "event", event)
	}
}

func (h *Hub) BroadcastSnapshot(snap domain.Snapshot) {
	h.Broadcast(domain.WsChannelMonitor, domain.WsEventSnapshotUpdated, snap)
}
