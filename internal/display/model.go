// Package display is a terminal viewer that polls the server for the latest
// snapshot.
package display

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"linux-monitor/internal/domain"
)

type Fetcher interface {
	FetchLatest(ctx context.Context) (domain.Snapshot, error)
}

// Model shows whatever the last poll returned. A failed poll clears the view
// rather than leaving stale numbers on screen.
type Model struct {
	fetch    Fetcher
	interval time.Duration
	ctx      context.Context
	cancel   context.CancelFunc

	latest  domain.Snapshot
	lastErr error
	polled  time.Time
	width   int
	height  int
}

func New(fetch Fetcher, interval time.Duration) *Model {
	ctx, cancel := context.WithCancel(context.Background())
	return &Model{
		fetch:    fetch,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		width:    120,
		height:   40,
	}
}

// Messages
type (
	tickMsg     struct{}
	snapshotMsg struct {
		snap domain.Snapshot
		err  error
		at   time.Time
	}
)

func (m *Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(time.Time) tea.Msg { return tickMsg{} })
}

func (m *Model) pollCmd() tea.Cmd {
	return func() tea.Msg {
		snap, err := m.fetch.FetchLatest(m.ctx)
		return snapshotMsg{snap: snap, err: err, at: time.Now()}
	}
}

func (m *Model) Init() tea.Cmd { return m.pollCmd() }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.cancel()
			return m, tea.Quit
		}
	case tickMsg:
		return m, m.pollCmd()
	case snapshotMsg:
		m.polled = msg.at
		m.lastErr = msg.err
		if msg.err != nil {
			m.latest = domain.Snapshot{}
		} else {
			m.latest = msg.snap
		}
		return m, m.tickCmd()
	}
	return m, nil
}
