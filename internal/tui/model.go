package tui

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/papapumpkin/astronexus/internal/browse"
	"github.com/papapumpkin/astronexus/internal/config"
	"github.com/papapumpkin/astronexus/internal/dataset"
	"github.com/papapumpkin/astronexus/internal/mentor"
	"github.com/papapumpkin/astronexus/internal/schedule"
	"github.com/papapumpkin/astronexus/internal/telemetry"
)

// maxMessages bounds the notice lines kept under the main view.
const maxMessages = 3

// Options configures an AppModel. Library is required; every other field
// has a usable zero value.
type Options struct {
	Library  *dataset.Library
	Config   config.Config
	Section  browse.Section
	Logger   *zap.Logger
	Recorder *telemetry.Recorder
	Rand     *rand.Rand
	Now      func() time.Time
	Context  context.Context
}

// AppModel is the root BubbleTea model. Browsing state lives in State;
// the model adds terminal concerns (inputs, sizes, the splash) and owns
// the delayed tasks that feed results back as messages.
type AppModel struct {
	State     browse.State
	Lib       *dataset.Library
	Config    config.Config
	Responder mentor.Responder
	Keys      KeyMap
	Detail    DetailPanel
	Search    textinput.Model
	Chat      textinput.Model
	Spinner   spinner.Model
	Splash    SplashModel
	Width     int
	Height    int
	Messages  []string

	HomeCursor  int
	QuickCursor int

	showSplash bool
	detailKey  string // identifies the content loaded into Detail

	// tasks is shared by every copy of the model so a cancel reaches
	// tasks scheduled from any earlier Update.
	tasks *schedule.Group
	ctx   context.Context
	rng   *rand.Rand
	log   *zap.Logger
	rec   *telemetry.Recorder
	now   func() time.Time
}

// NewAppModel builds the model at launch, showing opts.Section.
func NewAppModel(opts Options) AppModel {
	opts.Logger = nopLogger(opts.Logger)
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	search := textinput.New()
	search.Prompt = "search: "
	search.Placeholder = "name, description..."
	search.CharLimit = 80

	chat := textinput.New()
	chat.Prompt = "you> "
	chat.Placeholder = "ask about planets, black holes, nebulae..."
	chat.CharLimit = 200

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = lipgloss.NewStyle().Foreground(colorPrimary)

	st := browse.NewState(opts.Library, opts.Now())
	st = st.WithSection(opts.Section)

	return AppModel{
		State:      st,
		Lib:        opts.Library,
		Config:     opts.Config,
		Responder:  mentor.NewResponder(opts.Library.Mentor),
		Keys:       DefaultKeyMap(),
		Detail:     NewDetailPanel(80, 10),
		Search:     search,
		Chat:       chat,
		Spinner:    sp,
		Splash:     NewSplash(DefaultSplashConfig()),
		showSplash: !opts.Config.NoSplash,
		tasks:      &schedule.Group{},
		ctx:        opts.Context,
		rng:        opts.Rand,
		log:        opts.Logger,
		rec:        opts.Recorder,
		now:        opts.Now,
	}
}

// Init starts the spinner and splash and schedules the gallery listing if
// the gallery is the first section shown.
func (m AppModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.Spinner.Tick}
	if m.showSplash {
		cmds = append(cmds, m.Splash.Init())
	}
	cmds = append(cmds, m.enterSection())
	return tea.Batch(cmds...)
}

// Pending returns the number of delayed tasks still outstanding.
func (m AppModel) Pending() int { return m.tasks.Pending() }

// Update handles all messages.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.showSplash && !m.Splash.Done() {
		switch msg.(type) {
		case splashTickMsg, tea.KeyMsg:
			var cmd tea.Cmd
			m.Splash, cmd = m.Splash.Update(msg)
			return m, cmd
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Search.Width = max(msg.Width-20, 10)
		m.Chat.Width = max(msg.Width-10, 10)
		m.Detail.SetSize(max(msg.Width-4, 10), m.detailHeight())

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case MsgGalleryLoaded:
		m.State.Gallery.Loaded = true
		m.log.Debug("gallery loaded", zap.Int("images", m.Lib.Gallery.Len()))

	case MsgMentorReply:
		if !m.State.Chat.Typing {
			break
		}
		m.State.Chat = m.State.Chat.Answer(msg.Text, m.now())
		m.record(telemetry.Event{Kind: telemetry.KindMentorAnswer})

	case MsgSimulationDone:
		if !m.State.Mission.Simulating {
			break
		}
		m.State.Mission = m.State.Mission.Finish(msg.Outcome)
		m.record(telemetry.Event{
			Kind: telemetry.KindSimulation,
			Data: telemetry.SimulationData{Probability: msg.Outcome.Probability, Success: msg.Outcome.Success},
		})

	case MsgConfigReloaded:
		m.Config = msg.Config
		m.addMessage("config reloaded")
		m.log.Info("config reloaded")

	case MsgError:
		m.addMessage("error: %v", msg.Err)
		m.log.Warn("tui error", zap.Error(msg.Err))
	}

	m.syncDetail()
	return m, nil
}

// handleKey routes a key press. While a text input has focus only the
// keys that leave it are intercepted.
func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.Search.Focused() {
		cmd := m.searchKey(msg)
		m.syncDetail()
		return m, cmd
	}
	if m.Chat.Focused() {
		cmd := m.chatKey(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m.quit()
	case key.Matches(msg, m.Keys.NextTab):
		cmd := m.switchTo(m.State.Section.Next())
		return m, cmd
	case key.Matches(msg, m.Keys.PrevTab):
		cmd := m.switchTo(m.State.Section.Prev())
		return m, cmd
	}
	if n, ok := numberKey(msg); ok {
		sec, _ := browse.FromNumber(n)
		cmd := m.switchTo(sec)
		return m, cmd
	}

	var cmd tea.Cmd
	switch m.State.Section {
	case browse.SectionHome:
		cmd = m.homeKey(msg)
	case browse.SectionGallery:
		cmd = m.galleryKey(msg)
	case browse.SectionSolarSystem:
		cmd = m.planetsKey(msg)
	case browse.SectionTimeline:
		cmd = m.timelineKey(msg)
	case browse.SectionUniverse:
		m.explorerKey(msg)
	case browse.SectionTelescope:
		m.telescopeKey(msg)
	case browse.SectionComparison:
		m.compareKey(msg)
	case browse.SectionMission:
		cmd = m.missionKey(msg)
	case browse.SectionMentor:
		cmd = m.mentorKey(msg)
	case browse.SectionRadio:
		cmd = m.radioKey(msg)
	}
	m.syncDetail()
	return m, cmd
}

// numberKey reports the digit of a bare number key press.
func numberKey(msg tea.KeyMsg) (int, bool) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return 0, false
	}
	r := msg.Runes[0]
	if r < '0' || r > '9' {
		return 0, false
	}
	return int(r - '0'), true
}

func (m AppModel) quit() (tea.Model, tea.Cmd) {
	if n := m.tasks.CancelAll(); n > 0 {
		m.log.Debug("cancelled pending tasks on quit", zap.Int("tasks", n))
	}
	return m, tea.Quit
}

// switchTo tears down the current section and shows s. Pending delayed
// work belongs to the section being left and is cancelled.
func (m *AppModel) switchTo(s browse.Section) tea.Cmd {
	if s == m.State.Section {
		return nil
	}
	if n := m.tasks.CancelAll(); n > 0 {
		m.log.Debug("cancelled pending tasks", zap.Int("tasks", n), zap.String("section", m.State.Section.Label()))
	}
	m.State.Chat = m.State.Chat.Abandon()
	m.State.Mission = m.State.Mission.Abort()
	m.Search.Blur()
	m.Chat.Blur()

	m.State = m.State.WithSection(s)
	m.record(telemetry.Event{Kind: telemetry.KindSectionView})
	m.syncDetail()
	return m.enterSection()
}

// enterSection starts any delayed work the visible section needs.
func (m *AppModel) enterSection() tea.Cmd {
	if m.State.Section != browse.SectionGallery || m.State.Gallery.Loaded {
		return nil
	}
	task := schedule.After(m.ctx, m.Config.Gallery.LoadDelay, func() struct{} { return struct{}{} })
	m.tasks.Add(task)
	return await(task, func(struct{}) tea.Msg { return MsgGalleryLoaded{} })
}
