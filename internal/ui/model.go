// Package ui implements the bubbletea interface of the trainer.
package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/blackjack-trainer/internal/apperrors"
	"github.com/palemoky/blackjack-trainer/internal/config"
	"github.com/palemoky/blackjack-trainer/internal/game/session"
	"github.com/palemoky/blackjack-trainer/internal/logger"
	"github.com/palemoky/blackjack-trainer/internal/sound"
	"github.com/palemoky/blackjack-trainer/internal/storage"
)

// Phase represents the current screen.
type Phase int

const (
	PhaseNickname Phase = iota
	PhaseMenu
	PhasePlaying
	PhasePaused
	PhaseGameOver
	PhaseLeaderboard
)

// --- Tea Messages ---

// timerTickMsg carries the remaining time of the question countdown.
type timerTickMsg struct {
	Remaining time.Duration
}

// timerExpiredMsg signals that the question countdown ran out.
type timerExpiredMsg struct{}

// advanceRoundMsg triggers the next hand after the round-complete delay.
type advanceRoundMsg struct{}

// clearFlashMsg clears the transient answer feedback.
type clearFlashMsg struct{}

// leaderboardMsg carries the loaded leaderboard (or the load error).
type leaderboardMsg struct {
	Entries []storage.LeaderboardEntry
	Err     error
}

// runRecordedMsg signals that the end-of-run aggregates were persisted.
type runRecordedMsg struct {
	Err error
}

const storageTimeout = 3 * time.Second

// Model is the root bubbletea model. All session mutation happens inside
// Update; the engine countdown reports back through program.Send so the
// single-scheduling-context assumption of the session holds.
type Model struct {
	cfg     *config.Config
	session *session.Session
	sounds  *sound.SoundManager
	board   *storage.Leaderboard // nil when redis is unavailable

	program *tea.Program

	playerID   string
	playerName string
	saveName   func(string) error // persists the chosen nickname, may be nil

	phase     Phase
	prevPhase Phase // menu or game over, for returning from leaderboard

	menuIdx  int
	practice bool

	nameInput   textinput.Model
	progressBar progress.Model
	remaining   time.Duration

	flash      string // transient per-answer feedback
	flashError bool

	entries    []storage.LeaderboardEntry
	boardErr   error
	lastRecord error

	width  int
	height int
}

// Options bundles the collaborators of the UI.
type Options struct {
	Config      *config.Config
	Session     *session.Session
	Sounds      *sound.SoundManager
	Leaderboard *storage.Leaderboard
	PlayerID    string
	PlayerName  string
	SaveName    func(string) error
}

// NewModel creates the root model.
func NewModel(opts Options) *Model {
	nameInput := textinput.New()
	nameInput.Placeholder = "输入昵称..."
	nameInput.CharLimit = 16
	nameInput.Width = 20
	nameInput.Focus()

	phase := PhaseMenu
	if opts.PlayerName == "" {
		phase = PhaseNickname
	}

	return &Model{
		cfg:         opts.Config,
		session:     opts.Session,
		sounds:      opts.Sounds,
		board:       opts.Leaderboard,
		playerID:    opts.PlayerID,
		playerName:  opts.PlayerName,
		saveName:    opts.SaveName,
		phase:       phase,
		nameInput:   nameInput,
		progressBar: progress.New(progress.WithDefaultGradient()),
	}
}

// AttachProgram wires the running program so engine callbacks can be
// forwarded into the update loop. Must be called before Program.Run.
func (m *Model) AttachProgram(p *tea.Program) {
	m.program = p
}

func (m *Model) Init() tea.Cmd {
	if m.phase == PhaseNickname {
		return textinput.Blink
	}
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.progressBar.Width = min(msg.Width-8, 60)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.session.EndGame()
			return m, tea.Quit
		}
		return m.handleKey(msg)

	case timerTickMsg:
		m.remaining = msg.Remaining
		return m, nil

	case timerExpiredMsg:
		return m.handleTimeout()

	case advanceRoundMsg:
		m.session.AdvanceRound()
		m.remaining = m.session.Countdown().Remaining()
		m.sounds.Play(sound.EffectDeal)
		return m, nil

	case clearFlashMsg:
		m.flash = ""
		return m, nil

	case leaderboardMsg:
		m.entries = msg.Entries
		m.boardErr = msg.Err
		return m, nil

	case runRecordedMsg:
		m.lastRecord = msg.Err
		if msg.Err != nil {
			logger.LogError("记录训练结果失败: %v", msg.Err)
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) View() string {
	var body string
	switch m.phase {
	case PhaseNickname:
		body = m.viewNickname()
	case PhaseMenu:
		body = m.viewMenu()
	case PhasePlaying, PhasePaused:
		body = m.viewGame()
	case PhaseGameOver:
		body = m.viewGameOver()
	case PhaseLeaderboard:
		body = m.viewLeaderboard()
	}
	return docStyle.Render(body)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.phase {
	case PhaseNickname:
		return m.updateNickname(msg)
	case PhaseMenu:
		return m.updateMenu(msg)
	case PhasePlaying:
		return m.updateGame(msg)
	case PhasePaused:
		return m.updatePaused(msg)
	case PhaseGameOver:
		return m.updateGameOver(msg)
	case PhaseLeaderboard:
		return m.updateLeaderboard(msg)
	}
	return m, nil
}

// startGame starts a fresh run and hooks the countdown into the program.
func (m *Model) startGame(practice bool) tea.Cmd {
	m.practice = practice
	m.session.Reset()
	m.session.SetPractice(practice)
	m.session.Countdown().SetCallbacks(
		func(remaining time.Duration) {
			if m.program != nil {
				m.program.Send(timerTickMsg{Remaining: remaining})
			}
		},
		func() {
			if m.program != nil {
				m.program.Send(timerExpiredMsg{})
			}
		},
	)

	m.session.Start()
	m.remaining = m.session.Countdown().Total()
	m.flash = ""
	m.lastRecord = nil
	m.phase = PhasePlaying
	m.sounds.Play(sound.EffectDeal)
	return nil
}

// handleTimeout ends the run when the countdown expires.
func (m *Model) handleTimeout() (tea.Model, tea.Cmd) {
	if m.phase != PhasePlaying || m.practice {
		return m, nil
	}
	m.session.HandleTimeout()
	m.remaining = 0
	m.sounds.Play(sound.EffectGameOver)
	m.phase = PhaseGameOver
	return m, m.recordRunCmd()
}

// recordRunCmd persists the end-of-run aggregates. Storage failures only
// get logged; gameplay never depends on redis.
func (m *Model) recordRunCmd() tea.Cmd {
	if m.board == nil || m.practice {
		return nil
	}
	summary := m.session.Summary()
	playerID, playerName := m.playerID, m.playerName
	board := m.board
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
		defer cancel()
		err := board.RecordRun(ctx, playerID, playerName,
			summary.Points, summary.Correct, summary.Wrong, summary.BestStreak)
		return runRecordedMsg{Err: err}
	}
}

// loadLeaderboardCmd fetches the top entries.
func (m *Model) loadLeaderboardCmd() tea.Cmd {
	if m.board == nil {
		return func() tea.Msg {
			return leaderboardMsg{Err: apperrors.ErrStorageDisabled}
		}
	}
	board := m.board
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
		defer cancel()
		entries, err := board.GetLeaderboard(ctx, 10)
		return leaderboardMsg{Entries: entries, Err: err}
	}
}
