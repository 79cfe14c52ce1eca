package memory

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"linux-monitor/internal/domain"
	"linux-monitor/internal/logger"
)

const meminfo = `MemTotal:       16000000 kB
MemFree:         2000000 kB
MemAvailable:    4000000 kB
Buffers:          500000 kB
Cached:          3000000 kB
SwapCached:            0 kB
Active:          6000000 kB
Inactive:        5000000 kB
Active(anon):    4000000 kB
Inactive(anon):   100000 kB
Active(file):    2000000 kB
Inactive(file):  4900000 kB
Unevictable:           0 kB
Mlocked:               0 kB
SwapTotal:       8000000 kB
Dirty:               120 kB
Writeback:             0 kB
AnonPages:       4100000 kB
Mapped:           900000 kB
KReclaimable:     400000 kB
Slab:             600000 kB
SReclaimable:     400000 kB
SUnreclaim:       200000 kB
HugePages_Total:       0
`

func collectFrom(t *testing.T, body string) (MemoryMetric, error) {
	t.Helper()
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "meminfo"), []byte(body), 0o600); err != nil {
		t.Fatalf("write meminfo: %v", err)
	}
	return NewCollector(root, logger.Discard()).Collect(context.Background())
}

func almost(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCollectGauges(t *testing.T) {
	m, err := collectFrom(t, meminfo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !almost(m.Total, 16.0) {
		t.Fatalf("expected 16.0 GB total, got %v", m.Total)
	}
	if !almost(m.Avail, 4.0) || !almost(m.Free, 2.0) {
		t.Fatalf("unexpected avail/free %v/%v", m.Avail, m.Free)
	}
	if !almost(m.UsedPercent, 75.0) {
		t.Fatalf("expected 75%% used, got %v", m.UsedPercent)
	}
	if !almost(m.SUnreclaim, 0.2) || !almost(m.ActiveFile, 2.0) {
		t.Fatalf("unexpected slab/file gauges %+v", m)
	}
}

func TestCollectIgnoresUnknownLabels(t *testing.T) {
	body := "MemTotal: 1000 kB\nMemAvailable: 250 kB\nHugepagesize: junk kB\n"

	m, err := collectFrom(t, body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almost(m.UsedPercent, 75.0) {
		t.Fatalf("expected 75%% used, got %v", m.UsedPercent)
	}
}

func TestCollectParseErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad value", "MemTotal: abc kB\n"},
		{"no total", "MemFree: 10 kB\n"},
		{"zero total", "MemTotal: 0 kB\nMemAvailable: 0 kB\n"},
		{"missing value", "MemTotal: 100 kB\nCached:\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := collectFrom(t, tt.body); !errors.Is(err, domain.ErrParse) {
				t.Fatalf("expected ErrParse, got %v", err)
			}
		})
	}
}
