package ui

import (
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"marquee/internal/config"
	"marquee/internal/eventbus"
	"marquee/internal/items"
	"marquee/internal/scroll"
	"marquee/internal/ui/views"
)

const (
	keyStep      = 4 // cells per arrow key
	wheelStep    = 3 // cells per wheel notch
	pageDuration = 250 * time.Millisecond
	statusTTL    = 3 * time.Second
)

// Model is the Bubble Tea host for one auto-scrolling strip
type Model struct {
	cfg    *config.Config
	bus    eventbus.EventBus
	clock  scroll.Clock
	driver *scroll.Driver
	track  *scroll.Track

	sourceName string
	slots      []items.Slot
	strip      views.Strip

	renderer *views.Renderer
	helpText *HelpRenderer
	keys     keyMap
	help     help.Model
	progress progress.Model

	width  int
	height int

	// mouse drag in progress
	mouseDown bool
	lastX     int

	// eased page jump; the driver stays in a drag until it lands
	pageAnim scroll.Animation

	statusMessage string
	statusIsError bool
	statusSeq     int
	popup         string // shown when the pager is unavailable

	frameGen    int
	inPagerMode bool // tracks if a pager owns the terminal
	quitting    bool

	// Program hooks for terminal management
	send  func(tea.Msg)
	pager func(content string) error
}

// NewModel creates a UI model scrolling src with the config's driver options
func NewModel(cfg *config.Config, src items.Source, sourceName string, bus eventbus.EventBus) (*Model, error) {
	return newModel(cfg, src, sourceName, bus, scroll.SystemClock)
}

func newModel(cfg *config.Config, src items.Source, sourceName string, bus eventbus.EventBus, clock scroll.Clock) (*Model, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	slots, err := items.Build(src)
	if err != nil {
		return nil, err
	}

	opts := cfg.DriverOptions()
	opts.Clock = clock
	if bus != nil {
		opts.Events = bus
	}
	track := scroll.NewTrack()
	driver, err := scroll.NewDriver(track, opts)
	if err != nil {
		return nil, err
	}

	renderer := views.NewRenderer(nil)
	keys := defaultKeyMap()
	if !opts.UserScrollEnabled {
		keys.disableScrolling()
	}

	return &Model{
		cfg:        cfg,
		bus:        bus,
		clock:      clock,
		driver:     driver,
		track:      track,
		sourceName: sourceName,
		slots:      slots,
		strip:      renderer.Styles().ComposeStrip(slots),
		renderer:   renderer,
		helpText:   NewHelpRenderer(),
		keys:       keys,
		help:       help.New(),
		progress:   progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
	}, nil
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.send = p.Send
	m.pager = NewPagerOps(p).Show
}

// Driver returns the scroll driver
func (m *Model) Driver() *scroll.Driver {
	return m.driver
}

// Init starts the frame loop
func (m *Model) Init() tea.Cmd {
	return m.frameTick()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	default:
		return m.handleNonKeyboardMsg(msg)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	return m.renderer.Render(views.ViewState{
		Width:         m.width,
		Height:        m.height,
		Strip:         m.strip,
		Cell:          m.track.Cell(),
		ViewWidth:     int(m.track.ViewLength()),
		Snapshot:      m.driver.Snapshot(),
		Now:           m.clock.Now(),
		SourceName:    m.sourceName,
		StatusMessage: m.statusMessage,
		StatusIsError: m.statusIsError,
		Popup:         m.popup,
		ShowProgress:  m.cfg.UISettings.ShowProgress,
		Progress:      m.progress,
		HelpModel:     m.help,
		Keys:          m.keys,
	})
}

func (m *Model) frameTick() tea.Cmd {
	gen := m.frameGen
	return tea.Tick(m.cfg.UISettings.FrameInterval.D(), func(time.Time) tea.Msg {
		return frameMsg{gen: gen}
	})
}

// resize lays the track out for the new terminal size
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width

	styles := m.renderer.Styles()
	viewWidth := width - styles.Main.GetHorizontalFrameSize() - styles.BoxFrameWidth()
	if viewWidth < 1 {
		viewWidth = 1
	}
	m.progress.Width = viewWidth + styles.BoxFrameWidth()
	m.track.Layout(float64(m.strip.Width()), float64(viewWidth))
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle the popup first
	if m.popup != "" {
		switch msg.String() {
		case "ctrl+c":
			return m.quit()
		case "esc", "q", "?", "L":
			m.popup = ""
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		return m, m.showPager("help", m.helpText.RenderHelpContent(m.driver.Options()))
	case key.Matches(msg, m.keys.Items):
		return m, m.showPager("items", m.helpText.RenderItemList(m.slots))
	case key.Matches(msg, m.keys.Cancel):
		// only an active gesture can be cancelled
		if m.stopPage() || m.mouseDown {
			m.mouseDown = false
			m.driver.DragCancel()
		}
	case key.Matches(msg, m.keys.Left):
		m.nudge(-keyStep)
	case key.Matches(msg, m.keys.Right):
		m.nudge(keyStep)
	case key.Matches(msg, m.keys.PageLeft):
		m.page(-m.track.ViewLength())
	case key.Matches(msg, m.keys.PageRight):
		m.page(m.track.ViewLength())
	case key.Matches(msg, m.keys.Home):
		m.nudge(-m.track.Offset())
	case key.Matches(msg, m.keys.End):
		m.nudge(m.track.MaxExtent() - m.track.Offset())
	}
	return m, nil
}

// quit disposes the driver so no frame can write after the program stops
func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.driver.Dispose()
	return m, tea.Quit
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if !m.driver.UserScrollEnabled() {
		return
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
		if msg.Action == tea.MouseActionPress {
			m.nudge(-wheelStep)
		}
		return
	case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
		if msg.Action == tea.MouseActionPress {
			m.nudge(wheelStep)
		}
		return
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && m.onStrip(msg.Y) {
			m.stopPage()
			m.mouseDown = true
			m.lastX = msg.X
			m.driver.DragStart()
		}
	case tea.MouseActionMotion:
		if m.mouseDown {
			// content follows the pointer
			m.track.ScrollBy(float64(m.lastX - msg.X))
			m.lastX = msg.X
		}
	case tea.MouseActionRelease:
		if m.mouseDown {
			m.mouseDown = false
			m.driver.DragEnd()
		}
	}
}

// nudge is a complete start/scroll/end gesture, or a plain scroll inside a mouse drag
func (m *Model) nudge(delta float64) {
	if !m.driver.UserScrollEnabled() {
		return
	}
	if m.mouseDown {
		m.track.ScrollBy(delta)
		return
	}
	m.stopPage()
	m.driver.DragStart()
	m.track.ScrollBy(delta)
	m.driver.DragEnd()
}

// page eases the track by delta; the gesture ends when the animation lands
func (m *Model) page(delta float64) {
	if !m.driver.UserScrollEnabled() {
		return
	}
	if m.mouseDown {
		m.track.ScrollBy(delta)
		return
	}
	m.stopPage()
	m.driver.DragStart()

	target := math.Max(0, math.Min(m.track.Offset()+delta, m.track.MaxExtent()))
	m.pageAnim = m.track.AnimateTo(m.clock.Now(), target, pageDuration, scroll.EaseInOut)
}

// advancePage runs the page animation for now and releases the drag once it lands
func (m *Model) advancePage(now time.Time) {
	if m.pageAnim == nil || !m.pageAnim.Advance(now) {
		return
	}
	m.pageAnim = nil
	m.driver.DragEnd()
}

// stopPage interrupts a page animation, reporting whether one was running.
// The drag it started stays open for the caller to end.
func (m *Model) stopPage() bool {
	if m.pageAnim == nil {
		return false
	}
	m.pageAnim.Stop()
	m.pageAnim = nil
	return true
}

// onStrip reports whether terminal row y falls inside the strip box
func (m *Model) onStrip(y int) bool {
	styles := m.renderer.Styles()
	top := styles.Main.GetPaddingTop() + lipgloss.Height(styles.Title.Render("marquee"))
	rows := styles.Box.GetVerticalFrameSize() + 1
	return y >= top && y < top+rows
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		// Stale loop, or a pager owns the terminal
		if msg.gen != m.frameGen || m.inPagerMode || m.quitting {
			return m, nil
		}
		now := m.clock.Now()
		m.advancePage(now)
		m.driver.Advance(now)
		return m, m.frameTick()

	case ItemsLoadedMsg:
		return m, m.applyItems(msg)

	case pauseRenderingMsg:
		if m.stopPage() || m.mouseDown {
			m.driver.DragEnd()
		}
		m.inPagerMode = true
		m.mouseDown = false
		m.track.Detach()
		// lets the driver drop its sweep while detached
		m.driver.Advance(m.clock.Now())
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		m.track.Attach()
		m.frameGen++
		return m, m.frameTick()

	case pagerMsg:
		if msg.err != nil {
			// Pager failed, fall back to popup
			m.publish(eventbus.ErrorEvent{Message: msg.what + " pager failed", Err: msg.err})
			m.popup = msg.content
			return m, m.setStatus(fmt.Sprintf("Pager failed: %v", msg.err), true)
		}
		return m, nil

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.statusMessage = ""
			m.statusIsError = false
		}
		return m, nil

	default:
		return m, nil
	}
}

// applyItems swaps in reloaded content; the driver corrects against the new extent
func (m *Model) applyItems(msg ItemsLoadedMsg) tea.Cmd {
	if msg.Err != nil {
		m.publish(eventbus.ErrorEvent{Message: "reloading items failed", Err: msg.Err})
		return m.setStatus(fmt.Sprintf("Reload failed: %v", msg.Err), true)
	}

	slots, err := items.Build(items.FromLines(msg.Lines, m.cfg.UISettings.Separator))
	if err != nil {
		m.publish(eventbus.ErrorEvent{Message: "rebuilding strip failed", Err: err})
		return m.setStatus(fmt.Sprintf("Reload failed: %v", err), true)
	}
	m.slots = slots
	m.strip = m.renderer.Styles().ComposeStrip(slots)
	if m.width > 0 {
		m.track.SetContentLength(float64(m.strip.Width()))
	}

	m.publish(eventbus.ItemsLoadedEvent{Path: msg.Path, Count: m.strip.Items()})
	return m.setStatus(fmt.Sprintf("Reloaded %d items", m.strip.Items()), false)
}

// showPager returns a command that shows content in the pager with the track detached
func (m *Model) showPager(what, content string) tea.Cmd {
	send, pager := m.send, m.pager
	return func() tea.Msg {
		if send == nil || pager == nil {
			return pagerMsg{what: what, content: content, err: fmt.Errorf("program not set")}
		}
		send(pauseRenderingMsg{})
		err := pager(content)
		send(resumeRenderingMsg{})
		return pagerMsg{what: what, content: content, err: err}
	}
}

func (m *Model) setStatus(text string, isError bool) tea.Cmd {
	m.statusSeq++
	seq := m.statusSeq
	m.statusMessage = text
	m.statusIsError = isError
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{seq: seq} })
}

func (m *Model) publish(e eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(e)
	}
}
