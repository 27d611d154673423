package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/trajopt/internal/boundary"
	"github.com/san-kum/trajopt/internal/model"
	"github.com/san-kum/trajopt/internal/phase"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

type state int

const (
	stateList state = iota
	stateDetail
)

type browser struct {
	state  state
	cursor int

	phaseName string
	vars      []boundary.Var
	host      *model.Model

	width  int
	height int
}

// NewBrowser builds the constraint browser over a built phase system.
func NewBrowser(phaseName string, sys *phase.System) tea.Model {
	return browser{
		phaseName: phaseName,
		vars:      sys.Vars(),
		host:      sys.Model(),
		width:     80,
		height:    24,
	}
}

func (b browser) Init() tea.Cmd { return nil }

func (b browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return b.handleKey(msg)
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
	}
	return b, nil
}

func (b browser) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch b.state {
	case stateList:
		switch msg.String() {
		case "q", "ctrl+c":
			return b, tea.Quit
		case "up", "k":
			if b.cursor > 0 {
				b.cursor--
			}
		case "down", "j":
			if b.cursor < len(b.vars)-1 {
				b.cursor++
			}
		case "enter", " ":
			if len(b.vars) > 0 {
				b.state = stateDetail
			}
		}
	case stateDetail:
		switch msg.String() {
		case "q", "escape", "enter":
			b.state = stateList
		case "ctrl+c":
			return b, tea.Quit
		}
	}
	return b, nil
}

func (b browser) View() string {
	if b.state == stateDetail {
		return b.detailView()
	}
	return b.listView()
}

func (b browser) listView() string {
	var sb strings.Builder
	sb.WriteString(cyan.Render(fmt.Sprintf("phase %s — boundary constraints", b.phaseName)))
	sb.WriteString("\n\n")

	if len(b.vars) == 0 {
		sb.WriteString(dim.Render("no constraints declared"))
		sb.WriteString("\n")
		return sb.String()
	}

	for i, v := range b.vars {
		prefix := "  "
		style := white
		if i == b.cursor {
			prefix = "> "
			style = yellow
		}
		meta, _ := b.host.ConstraintOn(v.OutputName)
		line := fmt.Sprintf("%s%-16s %-8s %-12s %s", prefix, v.Name, v.Loc, shapeString(v.Shape), boundsString(meta))
		sb.WriteString(style.Render(line))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(dim.Render("j/k move · enter detail · q quit"))
	sb.WriteString("\n")
	return sb.String()
}

func (b browser) detailView() string {
	v := b.vars[b.cursor]
	meta, _ := b.host.ConstraintOn(v.OutputName)

	var sb strings.Builder
	sb.WriteString(cyan.Render(v.Name))
	sb.WriteString("\n\n")

	row := func(label, value string) {
		sb.WriteString(dim.Render(fmt.Sprintf("  %-12s", label)))
		sb.WriteString(white.Render(value))
		sb.WriteString("\n")
	}

	row("input", v.InputName)
	row("output", v.OutputName)
	row("shape", shapeString(v.Shape))
	row("size", fmt.Sprintf("%d", v.Size))
	if vv, ok := b.host.Variable(v.OutputName); ok && vv.Units != "" {
		row("units", vv.Units)
	}
	row("bounds", boundsString(meta))
	if meta.Scaler != nil {
		row("scaler", fmt.Sprintf("%g", *meta.Scaler))
	}
	if meta.Adder != nil {
		row("adder", fmt.Sprintf("%g", *meta.Adder))
	}
	row("ref", fmt.Sprintf("%g / %g", meta.Ref, meta.Ref0))
	row("linear", fmt.Sprintf("%t", meta.Linear))
	row("jacobian", fmt.Sprintf("%d×%d identity, %d nonzeros", v.Size, v.Size, len(v.Jac.Vals)))

	if vals := b.host.Value(v.OutputName); len(vals) > 0 {
		row("value", green.Render(fmt.Sprintf("%v", vals)))
	}

	sb.WriteString("\n")
	sb.WriteString(dim.Render("q back"))
	sb.WriteString("\n")
	return sb.String()
}

func shapeString(shape []int) string {
	if len(shape) == 0 {
		return "()"
	}
	parts := make([]string, len(shape))
	for i, d := range shape {
		parts[i] = fmt.Sprintf("%d", d)
	}
	return "(" + strings.Join(parts, ",") + ")"
}

func boundsString(meta boundary.ConstraintMeta) string {
	switch {
	case meta.Equals != nil:
		return "= " + boundString(meta.Equals)
	case meta.Lower != nil && meta.Upper != nil:
		return fmt.Sprintf("[%s, %s]", boundString(meta.Lower), boundString(meta.Upper))
	default:
		return "unconstrained"
	}
}

func boundString(b []float64) string {
	parts := make([]string, len(b))
	for i, v := range b {
		switch {
		case v <= -boundary.InfBound:
			parts[i] = "-inf"
		case v >= boundary.InfBound:
			parts[i] = "+inf"
		default:
			parts[i] = fmt.Sprintf("%g", v)
		}
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return "(" + strings.Join(parts, " ") + ")"
}
