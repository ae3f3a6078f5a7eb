// Package tui is the interactive dashboard. Sampling happens inside Update,
// so the monitor is only ever touched by the bubbletea event loop.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"procwatch/internal/domain"
	"procwatch/internal/format"
	"procwatch/internal/sampler"
)

const (
	labelWidth   = 20
	defaultWidth = 80
	maxBarWidth  = 50
)

// Collector produces one snapshot per call. sampler.Sampler implements it.
type Collector interface {
	Collect(ctx context.Context) domain.Snapshot
}

// TickMsg drives a refresh.
type TickMsg time.Time

type Model struct {
	ctx       context.Context
	collector Collector
	interval  time.Duration

	snap    domain.Snapshot
	sampled bool
	paused  bool

	cpuBar progress.Model
	memBar progress.Model

	keymap KeyMap
	width  int
	height int
}

func NewModel(ctx context.Context, collector Collector) Model {
	return Model{
		ctx:       ctx,
		collector: collector,
		interval:  sampler.RefreshInterval,
		cpuBar:    newBar(),
		memBar:    newBar(),
		keymap:    DefaultKeyMap(),
		width:     defaultWidth,
	}
}

func newBar() progress.Model {
	return progress.New(
		progress.WithDefaultGradient(),
		progress.WithoutPercentage(),
		progress.WithWidth(barWidth(defaultWidth)),
	)
}

func barWidth(total int) int {
	return max(min(total-labelWidth-12, maxBarWidth), 10)
}

// Init samples right away instead of showing an empty screen for a whole
// interval.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return TickMsg(time.Now()) }
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keymap.Pause):
			m.paused = !m.paused
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.cpuBar.Width = barWidth(msg.Width)
		m.memBar.Width = barWidth(msg.Width)
		return m, nil

	case TickMsg:
		if !m.paused {
			m.snap = m.collector.Collect(m.ctx)
			m.sampled = true
		}
		return m, m.tick()
	}

	return m, nil
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) View() string {
	if !m.sampled {
		return "Sampling..."
	}

	system := panelStyle.Width(m.width - 2).Render(m.systemView())
	table := renderTable(m.snap.Processes, m.width)

	return lipgloss.JoinVertical(lipgloss.Left, system, table, m.footerView())
}

func (m Model) systemView() string {
	s := m.snap

	lines := []string{
		field("OS:", s.OS),
		field("Kernel:", s.Kernel),
		field("CPU:", m.bar(m.cpuBar, s.CPU)),
		field("Memory:", m.bar(m.memBar, s.Memory)),
		field("Total Processes:", strconv.Itoa(s.TotalProcesses)),
		field("Running Processes:", strconv.Itoa(s.RunningProcesses)),
		field("Up Time:", format.ElapsedTime(s.UptimeSeconds)),
	}

	return strings.Join(lines, "\n")
}

// bar renders a ratio as a progress bar and percentage. Undefined ratios
// show an empty bar and "--".
func (m Model) bar(b progress.Model, r domain.Ratio) string {
	return b.ViewAs(format.Clamp01(float64(r))) + " " + valueStyle.Render(format.Percent(float64(r))+"%")
}

func field(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value)
}

func (m Model) footerView() string {
	status := statusRunningStyle.Render("● LIVE")
	if m.paused {
		status = statusPausedStyle.Render("❚❚ PAUSED")
	}

	help := func(b key.Binding) string {
		h := b.Help()
		return footerKeyStyle.Render(h.Key) + " " + footerDescStyle.Render(h.Desc)
	}

	return fmt.Sprintf("%s  %s  %s  %s",
		status,
		help(m.keymap.Pause),
		help(m.keymap.Quit),
		footerDescStyle.Render(fmt.Sprintf("%d of %d processes", len(m.snap.Processes), m.snap.ProcessesObserved)),
	)
}

// Run blocks until the user quits or ctx is done.
func Run(ctx context.Context, collector Collector) error {
	p := tea.NewProgram(NewModel(ctx, collector), tea.WithAltScreen(), tea.WithContext(ctx))

	_, err := p.Run()
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("run dashboard: %w", err)
	}
	return nil
}
