package viz

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"os"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/traject/internal/generators"
	"github.com/san-kum/traject/internal/motion"
)

const (
	width           = 80
	height          = 24
	trailCapacity   = 500
	historyCapacity = 600

	// world units to render units; keeps default trajectories inside the
	// camera frustum
	renderScale = 0.3
)

var (
	canvasStyle      = lipgloss.NewStyle().Padding(1, 2)
	statsStyle       = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(45)
	headerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	activeParamStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	graphStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
)

type TickMsg time.Time

// Model holds the animated trajectory and UI context.
type Model struct {
	gen           motion.Generator
	genName       string
	t, dt         float64
	fps           int
	width, height int
	canvas        *Canvas
	trail3D       []Vec3
	camera3D      *Camera
	running       bool
	lastPoint     motion.Point
	haveLast      bool
	speedHistory  []float64
	yHistory      []float64
	params        map[string]float64
	initialParams map[string]float64
	paramKeys     []string
	selected      int
	recording     bool
	frames        []*image.Paletted
	showHelp      bool
}

// NewModel initializes a live view for the given trajectory generator.
func NewModel(gen motion.Generator, name string, dt float64, fps int) Model {
	params := make(map[string]float64)
	if c, ok := gen.(motion.Configurable); ok {
		for k, v := range c.Params() {
			params[k] = v
		}
	}
	keys := make([]string, 0, len(params))
	initialParams := make(map[string]float64)
	for k, v := range params {
		keys = append(keys, k)
		if v == 0 {
			v = 1e-6
		}
		initialParams[k] = v
	}
	sort.Strings(keys)

	if fps <= 0 {
		fps = 60
	}

	return Model{
		gen:           gen,
		genName:       name,
		dt:            dt,
		fps:           fps,
		width:         width,
		height:        height,
		canvas:        NewCanvas(width, height),
		trail3D:       make([]Vec3, 0, trailCapacity),
		camera3D:      NewCamera(),
		running:       true,
		speedHistory:  make([]float64, 0, historyCapacity),
		yHistory:      make([]float64, 0, historyCapacity),
		params:        params,
		initialParams: initialParams,
		paramKeys:     keys,
		selected:      0,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and advances the trajectory.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "tab":
			m.cycleParam()
		case "up", "k":
			m.adjustParam(1.05)
		case "down", "j":
			m.adjustParam(0.95)
		case "g":
			if m.recording {
				m.saveGIF()
				m.recording = false
				m.frames = nil
			} else {
				m.recording = true
				m.frames = make([]*image.Paletted, 0)
			}
		case "?":
			m.showHelp = !m.showHelp
		case "x":
			m.camera3D.RotateX(0.1)
		case "X":
			m.camera3D.RotateX(-0.1)
		case "y":
			m.camera3D.RotateY(0.1)
		case "Y":
			m.camera3D.RotateY(-0.1)
		case "z":
			m.camera3D.RotateZ(0.1)
		case "Z":
			m.camera3D.RotateZ(-0.1)
		case "+", "=":
			m.camera3D.ZoomIn()
		case "-", "_":
			m.camera3D.ZoomOut()
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		m.draw()
		if m.recording {
			m.captureFrame()
		}
		return m, tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m *Model) cycleParam() {
	if len(m.paramKeys) == 0 {
		return
	}
	m.selected = (m.selected + 1) % len(m.paramKeys)
}

func (m *Model) adjustParam(factor float64) {
	if len(m.paramKeys) == 0 {
		return
	}
	key := m.paramKeys[m.selected]
	newVal := m.params[key] * factor
	if c, ok := m.gen.(motion.Configurable); ok {
		if err := c.SetParam(key, newVal); err != nil {
			return
		}
	}
	m.params[key] = newVal
}

// step advances the generator one frame.
func (m *Model) step() {
	p := m.gen.Evaluate(m.dt, m.dt)
	m.t += m.dt

	if m.haveLast && m.dt > 0 {
		speed := p.Sub(m.lastPoint).Norm() / m.dt
		m.speedHistory = append(m.speedHistory, speed)
		if len(m.speedHistory) > historyCapacity {
			m.speedHistory = m.speedHistory[1:]
		}
	}
	m.lastPoint = p
	m.haveLast = true

	m.yHistory = append(m.yHistory, p.Y)
	if len(m.yHistory) > historyCapacity {
		m.yHistory = m.yHistory[1:]
	}

	m.trail3D = append(m.trail3D, FromPoint(p).Scale(renderScale))
	if len(m.trail3D) > trailCapacity {
		m.trail3D = m.trail3D[1:]
	}
}

// reset restores the generator defaults and clears all buffers.
func (m *Model) reset() {
	m.gen.Reset()
	m.t = 0
	m.haveLast = false
	m.trail3D = m.trail3D[:0]
	m.speedHistory = m.speedHistory[:0]
	m.yHistory = m.yHistory[:0]
	if c, ok := m.gen.(motion.Configurable); ok {
		for k, v := range c.Params() {
			m.params[k] = v
		}
	}
}

// draw renders the trail into the braille canvas.
func (m *Model) draw() {
	m.canvas.Clear()
	wf := NewWireframe()
	if m.genName == "spiral" {
		band := BounceBoundsWireframe(3.0, generators.BounceBound, renderScale)
		wf.Edges = append(wf.Edges, band.Edges...)
	}
	wf.AddTrail(m.trail3D)
	if len(m.trail3D) > 0 {
		wf.AddPoint(m.trail3D[len(m.trail3D)-1], '●')
	}
	m.camera3D.Position = Vec3{0, 0, 5}
	if m.camera3D.RotX == 0 && m.camera3D.RotZ == 0 {
		m.camera3D.RotY += 0.005
	}
	Render3D(m.canvas, wf, m.camera3D)
}

// View renders the TUI layout.
func (m Model) View() string {
	m.draw()
	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.genName)) + "\n")
	status := StatusRunning.Render("RUNNING")
	if !m.running {
		status = StatusPaused.Render("PAUSED")
	}
	if m.recording {
		status += "  " + StatusPaused.Render("● REC")
	}
	s.WriteString(status + "\n\n")

	if len(m.speedHistory) > 1 {
		chart := asciigraph.Plot(m.speedHistory, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Speed"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.2fs", m.t)) + "\n")
	s.WriteString(labelStyle.Render("Position") + valueStyle.Render(fmt.Sprintf("(%.2f, %.2f, %.2f)", m.lastPoint.X, m.lastPoint.Y, m.lastPoint.Z)) + "\n")
	if len(m.yHistory) > 1 {
		s.WriteString(labelStyle.Render("Height") + SparklineChart(m.yHistory, 24) + "\n")
	}

	s.WriteString("\nPARAMETERS\n")
	if len(m.params) > 0 {
		for i, k := range m.paramKeys {
			val, initial := m.params[k], m.initialParams[k]
			ratio := val / (2.0 * initial)
			bar := ProgressBar(ratio, 10)
			line := fmt.Sprintf("%-14s %s %.2f", k, bar, val)
			if i == m.selected {
				s.WriteString(activeParamStyle.Render("> ") + line + "\n")
			} else {
				s.WriteString("  " + line + "\n")
			}
		}
	} else {
		s.WriteString(labelStyle.Render("  (none)") + "\n")
	}

	s.WriteString("\n" + Separator(24) + "\n")
	s.WriteString(KeyHint.Render("SP:Pause R:Reset Q:Quit\nG:Record ?:Help ↑↓:Tune\nxyz/XYZ:Rotate +-:Zoom"))

	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume             ║
║  R        - Reset trajectory         ║
║  Q        - Quit                     ║
║  Tab      - Cycle parameters         ║
║  Up/K     - Increase parameter (+5%) ║
║  Down/J   - Decrease parameter (-5%) ║
║  x/X y/Y z/Z - Rotate camera         ║
║  + / -    - Zoom                     ║
║  G        - Toggle GIF recording     ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}

func (m *Model) captureFrame() {
	charW, charH := 8, 16
	imgW, imgH := m.width*charW, m.height*charH
	img := image.NewPaletted(image.Rect(0, 0, imgW, imgH), color.Palette{color.Black, color.White})
	for y := 0; y < imgH; y++ {
		for x := 0; x < imgW; x++ {
			img.SetColorIndex(x, y, 0)
		}
	}
	for row := 0; row < m.height; row++ {
		for col := 0; col < m.width; col++ {
			r := m.canvas.Grid[row][col]
			if r < 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)
			dotW, dotH := charW/2, charH/4
			baseX, baseY := col*charW, row*charH
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					var bit int
					switch dy {
					case 0:
						bit = 1 << (dx * 3)
					case 1:
						bit = 2 << (dx * 3)
					case 2:
						bit = 4 << (dx * 3)
					case 3:
						if dx == 0 {
							bit = 0x40
						} else {
							bit = 0x80
						}
					}
					if pattern&bit != 0 {
						for py := 0; py < dotH; py++ {
							for px := 0; px < dotW; px++ {
								img.SetColorIndex(baseX+dx*dotW+px, baseY+dy*dotH+py, 1)
							}
						}
					}
				}
			}
		}
	}
	m.frames = append(m.frames, img)
}

func (m *Model) saveGIF() {
	if len(m.frames) == 0 {
		return
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range m.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, 2)
	}
	f, err := os.Create("trajectory.gif")
	if err != nil {
		return
	}
	defer f.Close()
	gif.EncodeAll(f, &anim)
}
