// Command popframe-demo is a terminal playground for the child-frame
// engine: it simulates an editor buffer with a scrolling viewport (one
// terminal cell per pixel) and shows where the engine places a preview
// frame anchored to a region of the text.
//
// Keys: up/down scroll, j/k move the anchor, tab cycles the preferred
// strategy, d toggles disable, q quits. Every key is delivered to the
// controller as a host activity event.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/1broseidon/popframe/frame"
	"github.com/1broseidon/popframe/geometry"
	"github.com/1broseidon/popframe/host"
	"github.com/1broseidon/popframe/host/hosttest"
	"github.com/1broseidon/popframe/internal/config"
	"github.com/1broseidon/popframe/placement"
)

const (
	viewWidth  = 72
	viewHeight = 18
)

var sampleLines = buildSample()

func buildSample() []string {
	var lines []string
	for i := 0; i < 48; i++ {
		switch {
		case i%8 == 0:
			lines = append(lines, fmt.Sprintf("func section%02d() {", i/8))
		case i%8 == 7:
			lines = append(lines, "}")
		default:
			lines = append(lines, fmt.Sprintf("    line %02d of the sample buffer, content varies in width %s",
				i, strings.Repeat(".", i%11)))
		}
	}
	return lines
}

// lineStart returns the linear character offset of a line.
func lineStart(line int) int {
	off := 0
	for i := 0; i < line && i < len(sampleLines); i++ {
		off += len(sampleLines[i]) + 1
	}
	return off
}

type model struct {
	sys   *hosttest.System
	clock *hosttest.Clock
	ctrl  *frame.Controller
	view  *hosttest.View
	root  *hosttest.Frame
	rec   *frame.Record

	top        int // first visible buffer line
	anchorLine int
	pref       placement.Strategy
}

func newModel() (*model, error) {
	sys := hosttest.NewSystem()
	sys.Active = "sample.go"
	sys.Display = geometry.Rect{Width: viewWidth, Height: viewHeight}
	sys.NewFrameContent = geometry.Size{Width: 24, Height: 4}

	root := hosttest.NewRootFrame(geometry.Point{}, geometry.Size{Width: viewWidth, Height: viewHeight})
	view := &hosttest.View{
		Buf:       "sample.go",
		Displayed: true,
		CellWidth: 1,
	}
	sys.AddView(view, root)

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	clock := hosttest.NewClock()
	ctrl := frame.New(sys, clock,
		frame.WithUpdateDelay(cfg.UpdateDelay),
		frame.WithParamOverrides(cfg.FrameOverrides),
	)

	m := &model{
		sys:        sys,
		clock:      clock,
		ctrl:       ctrl,
		view:       view,
		root:       root,
		anchorLine: 3,
	}
	m.syncView()

	if _, err := ctrl.MakeBuffer("*preview*", map[string]string{"face": "doc"}); err != nil {
		return nil, err
	}
	rec, err := ctrl.MakeOrReuse("preview", m.placeFn(), "*preview*", frame.MakeOptions{
		ParentBuffer: "sample.go",
		ParentFrame:  root,
	})
	if err != nil {
		return nil, err
	}
	m.rec = rec
	return m, nil
}

// syncView rebuilds the scripted view from the viewport state: one
// segment per visible buffer line, one cell per pixel.
func (m *model) syncView() {
	bottom := m.top + viewHeight
	if bottom > len(sampleLines) {
		bottom = len(sampleLines)
	}

	m.view.Visible = host.Span{Start: lineStart(m.top), End: lineStart(bottom)}
	m.view.Segments = m.view.Segments[:0]
	for line := m.top; line < bottom; line++ {
		width := len(sampleLines[line])
		if width == 0 {
			continue
		}
		m.view.Segments = append(m.view.Segments, hosttest.Segment{
			Span: host.Span{Start: lineStart(line), End: lineStart(line) + width},
			Box:  geometry.Rect{X: 0, Y: line - m.top, Width: width, Height: 1},
		})
	}
}

func (m *model) anchorSpan() host.Span {
	start := lineStart(m.anchorLine)
	end := lineStart(m.anchorLine+2) - 1
	if end <= start {
		end = start + 1
	}
	return host.Span{Start: start, End: end}
}

func (m *model) placeFn() frame.PlaceFn {
	return m.ctrl.PositionRightOf(m.anchorSpan(), m.pref)
}

func (m *model) Init() tea.Cmd { return nil }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up":
		if m.top > 0 {
			m.top--
		}
	case "down":
		if m.top < len(sampleLines)-viewHeight {
			m.top++
		}
	case "k":
		if m.anchorLine > 0 {
			m.anchorLine--
		}
	case "j":
		if m.anchorLine < len(sampleLines)-2 {
			m.anchorLine++
		}
	case "tab":
		m.pref = (m.pref + 1) % 3
	case "d":
		m.ctrl.SetDisabled(m.rec, !m.ctrl.IsDisabled(m.rec))
	}

	m.syncView()

	// The anchor or preference may have changed; re-make reuses the
	// frame and installs the new placement function.
	if !m.ctrl.IsDisabled(m.rec) {
		rec, err := m.ctrl.MakeOrReuse("preview", m.placeFn(), "*preview*", frame.MakeOptions{
			ParentBuffer: "sample.go",
			ParentFrame:  m.root,
		})
		if err == nil {
			m.rec = rec
		}
	}

	// One activity event per command, then let the debounce elapse.
	m.sys.Activity()
	m.clock.Advance(time.Second)

	return m, nil
}

var (
	anchorStyle = lipgloss.NewStyle().Reverse(true)
	frameStyle  = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("12"))
	chromeStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8"))
	statusStyle = lipgloss.NewStyle().Faint(true)
)

func (m *model) View() string {
	grid := make([][]rune, viewHeight)
	for row := range grid {
		grid[row] = []rune(strings.Repeat(" ", viewWidth))
		line := m.top + row
		if line < len(sampleLines) {
			copy(grid[row], []rune(sampleLines[line]))
		}
	}

	styles := make([][]lipgloss.Style, viewHeight)
	for row := range styles {
		styles[row] = make([]lipgloss.Style, viewWidth)
	}

	// highlight the anchor region
	for _, row := range []int{m.anchorLine - m.top, m.anchorLine + 1 - m.top} {
		if row < 0 || row >= viewHeight {
			continue
		}
		width := len(sampleLines[m.top+row])
		for col := 0; col < width && col < viewWidth; col++ {
			styles[row][col] = anchorStyle
		}
	}

	// composite the child frame
	if m.rec != nil && m.rec.Visible() {
		pos := m.rec.Frame().Position()
		size := m.rec.Frame().Size()
		content := []string{
			"*preview*",
			fmt.Sprintf("anchor %d..%d", m.anchorLine, m.anchorLine+1),
			"strategy " + m.pref.String(),
			strings.Repeat("-", size.Width),
		}
		for dy := 0; dy < size.Height; dy++ {
			row := pos.Y + dy
			if row < 0 || row >= viewHeight {
				continue
			}
			text := ""
			if dy < len(content) {
				text = content[dy]
			}
			for dx := 0; dx < size.Width; dx++ {
				col := pos.X + dx
				if col < 0 || col >= viewWidth {
					continue
				}
				ch := ' '
				if dx < len(text) {
					ch = rune(text[dx])
				}
				grid[row][col] = ch
				styles[row][col] = frameStyle
			}
		}
	}

	var b strings.Builder
	for row := range grid {
		for col := 0; col < viewWidth; col++ {
			b.WriteString(styles[row][col].Render(string(grid[row][col])))
		}
		if row < len(grid)-1 {
			b.WriteByte('\n')
		}
	}

	state := "visible"
	if m.ctrl.IsDisabled(m.rec) {
		state = "disabled"
	} else if m.rec == nil || !m.rec.Visible() {
		state = "hidden"
	}
	status := fmt.Sprintf(
		"pref=%s  state=%s  top=%d  anchor=%d  (arrows scroll, j/k anchor, tab strategy, d disable, q quit)",
		m.pref, state, m.top, m.anchorLine,
	)

	return chromeStyle.Render(b.String()) + "\n" + statusStyle.Render(status)
}

func main() {
	m, err := newModel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "popframe-demo: %v\n", err)
		os.Exit(1)
	}

	if _, err := tea.NewProgram(m).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "popframe-demo: %v\n", err)
		os.Exit(1)
	}
}
