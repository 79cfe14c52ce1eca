package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"linux-monitor/internal/domain"
)

// Styles
var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45"))
	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true)
	gaugeFill   = "█"
	gaugeEmpty  = "░"
	cardStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("60")).
			Padding(0, 1).
			MarginRight(1)
)

func (m *Model) View() string {
	s := m.latest

	header := titleStyle.Render("Linux Monitor")
	if s.Host != "" {
		header += "  " + labelStyle.Render(s.Host)
		header += "  " + subtleStyle.Render(fmt.Sprintf("#%d %s", s.Sequence, s.RecordedAt.Local().Format("15:04:05")))
	}
	if m.lastErr != nil {
		header += "  " + errorStyle.Render("fetch failed: "+m.lastErr.Error())
	}

	if s.IsEmpty() {
		return lipgloss.JoinVertical(lipgloss.Left, header, subtleStyle.Render("waiting for data..."))
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top, loadCard(s.CPULoad), memoryCard(s.Memory))
	tables := lipgloss.JoinHorizontal(lipgloss.Top, cpuCard(s.CPUStats), networkCard(s.Network))

	return lipgloss.JoinVertical(lipgloss.Left, header, top, tables, softIRQCard(s.SoftIRQs))
}

func loadCard(l *domain.LoadMetric) string {
	if l == nil {
		return card("Load", subtleStyle.Render("n/a"))
	}
	return card("Load", fmt.Sprintf("%.2f %.2f %.2f", l.Load1, l.Load3, l.Load15))
}

func memoryCard(mem *domain.MemoryMetric) string {
	if mem == nil {
		return card("Memory", subtleStyle.Render("n/a"))
	}
	return card("Memory", fmt.Sprintf("%s  %.2f/%.2f GB avail | cached %.2f GB",
		gaugeBar(mem.UsedPercent, 28), mem.Avail, mem.Total, mem.Cached))
}

func cpuCard(stats []domain.CPUStatMetric) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-6s %6s %6s %6s %6s %6s", "cpu", "busy", "usr", "sys", "iowait", "irq")
	for _, c := range stats {
		fmt.Fprintf(&b, "\n%-6s %6.1f %6.1f %6.1f %6.1f %6.1f",
			truncate(c.Name, 6), c.CPUPercent, c.UserPercent, c.SystemPercent, c.IOWaitPercent, c.IRQPercent+c.SoftIRQPercent)
	}
	return card("CPU %", b.String())
}

func networkCard(ifaces []domain.NetworkMetric) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-10s %9s %9s %8s %8s", "iface", "rx KB/s", "tx KB/s", "rx pk/s", "tx pk/s")
	for _, n := range ifaces {
		fmt.Fprintf(&b, "\n%-10s %9.1f %9.1f %8.0f %8.0f",
			truncate(n.Name, 10), n.RcvRate, n.SendRate, n.RcvPacketsRate, n.SendPacketsRate)
	}
	return card("Network", b.String())
}

func softIRQCard(irqs []domain.SoftIRQMetric) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-6s %8s %8s %8s %8s %8s %8s", "cpu", "timer", "net_rx", "net_tx", "block", "sched", "rcu")
	for _, s := range irqs {
		fmt.Fprintf(&b, "\n%-6s %8.0f %8.0f %8.0f %8.0f %8.0f %8.0f",
			truncate(s.CPU, 6), s.Timer, s.NetRx, s.NetTx, s.Block, s.Sched, s.RCU)
	}
	return card("Soft IRQ /s", b.String())
}

// Helpers
func gaugeBar(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := min(int((pct/100)*float64(width)), width)
	return fmt.Sprintf("[%s%s] %5.1f%%",
		strings.Repeat(gaugeFill, filled),
		strings.Repeat(gaugeEmpty, width-filled),
		pct)
}

func card(title, body string) string {
	return cardStyle.Render(labelStyle.Render(title) + "\n" + body)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
