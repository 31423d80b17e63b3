package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/labelmaker/internal/annotate"
	"github.com/san-kum/labelmaker/internal/render"
	"github.com/san-kum/labelmaker/internal/thermal"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	plotHeight    = 12
	barWidth      = 20
)

// Model is the schedule viewer. Selection walks the dwell and ramp segments
// only; the lead sentinels are never selectable.
type Model struct {
	sched    *thermal.Schedule
	label    annotate.Label
	opts     render.Options
	segments []thermal.Segment

	cursor     int
	showHeader bool
	theme      Theme
	styles     styles
	width      int
	height     int
	quitting   bool
}

func New(s *thermal.Schedule, label annotate.Label, opts render.Options) Model {
	var segs []thermal.Segment
	for _, seg := range s.Segments() {
		if !seg.IsSentinel() {
			segs = append(segs, seg)
		}
	}
	return Model{
		sched:      s,
		label:      label,
		opts:       opts,
		segments:   segs,
		showHeader: true,
		theme:      ThemeFurnace,
		styles:     newStyles(ThemeFurnace),
		width:      defaultWidth,
		height:     defaultHeight,
	}
}

// WithTheme returns a copy of m drawn with t.
func (m Model) WithTheme(t Theme) Model {
	m.theme = t
	m.styles = newStyles(t)
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "t":
		m.opts.Toggles.Times = !m.opts.Toggles.Times
	case "T":
		m.opts.Toggles.Temps = !m.opts.Toggles.Temps
	case "r":
		m.opts.Toggles.Rates = !m.opts.Toggles.Rates
	case "h":
		m.showHeader = !m.showHeader
	case "c":
		m.theme = nextTheme(m.theme)
		m.styles = newStyles(m.theme)
	case "tab", "right", "l":
		if len(m.segments) > 0 {
			m.cursor = (m.cursor + 1) % len(m.segments)
		}
	case "shift+tab", "left":
		if len(m.segments) > 0 {
			m.cursor = (m.cursor - 1 + len(m.segments)) % len(m.segments)
		}
	}
	return m, nil
}

// Selected returns the highlighted segment.
func (m Model) Selected() (thermal.Segment, bool) {
	if len(m.segments) == 0 {
		return thermal.Segment{}, false
	}
	return m.segments[m.cursor], true
}

func (m Model) Toggles() annotate.Toggles { return m.opts.Toggles }

func (m Model) Theme() Theme { return m.theme }

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	st := m.styles

	if m.showHeader {
		if h := render.Header(m.opts.Title, m.label, m.opts.Toggles); h != "" {
			b.WriteString(h)
			b.WriteString("\n")
		}
	}

	width := m.width - 12
	if width < 20 {
		width = 20
	}
	plot, err := render.ASCII(m.sched, m.opts, width, plotHeight)
	if err != nil {
		b.WriteString(st.warning.Render("error: " + err.Error()))
		b.WriteString("\n")
	} else {
		b.WriteString(plot)
		b.WriteString("\n")
	}

	if notes := m.annotationLines(); notes != "" {
		b.WriteString(notes)
	}

	b.WriteString(separator(m.width, st.label))
	b.WriteString("\n")
	b.WriteString(m.selectionPanel())
	b.WriteString("\n")
	b.WriteString(render.SegmentTable(m.sched, m.opts))
	b.WriteString(st.keyHint.Render("t times  T temps  r rates  h header  c theme  tab segment  q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) annotationLines() string {
	d, err := render.Build(m.sched, m.opts)
	if err != nil {
		return ""
	}

	var b strings.Builder
	for _, kind := range []render.AnnotationKind{render.AnnotationTemp, render.AnnotationTime, render.AnnotationRate} {
		anns := d.AnnotationsOf(kind)
		if len(anns) == 0 {
			continue
		}
		texts := make([]string, len(anns))
		for i, a := range anns {
			texts[i] = a.Text
		}
		b.WriteString(m.styles.label.Render(fmt.Sprintf("%-6s", kind)))
		b.WriteString(m.styles.value.Render(strings.Join(texts, "  ")))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) selectionPanel() string {
	seg, ok := m.Selected()
	if !ok {
		return m.styles.warning.Render("no segments")
	}
	st := m.styles

	share := m.sched.PercentOfTotal(seg.Time.Start, seg.Time.End)
	lines := []string{
		st.selected.Render(fmt.Sprintf("%s %d", seg.Kind, seg.Index+1)) +
			st.label.Render(fmt.Sprintf("  (%d/%d)", m.cursor+1, len(m.segments))),
		st.label.Render("time  ") + st.value.Render(fmt.Sprintf("%s - %s %s",
			render.FormatNumber(seg.Time.Start), render.FormatNumber(seg.Time.End), m.opts.TimeUnit)),
		st.label.Render("temp  ") + st.value.Render(fmt.Sprintf("%s - %s %s",
			render.FormatNumber(seg.Temp.Start), render.FormatNumber(seg.Temp.End), m.opts.TempUnit)),
		st.label.Render("share ") + ShareBar(share, barWidth) + st.value.Render(fmt.Sprintf(" %d%%", share)),
	}
	if seg.Kind == thermal.KindRamp {
		if rate, err := m.sched.RateOf(seg); err == nil {
			lines = append(lines, st.label.Render("rate  ")+st.value.Render(render.FormatNumber(rate)+m.opts.RateUnit()))
		}
	}
	return st.panel.Render(strings.Join(lines, "\n"))
}
