package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/blackjack-trainer/internal/config"
	"github.com/palemoky/blackjack-trainer/internal/game/session"
	"github.com/palemoky/blackjack-trainer/internal/sound"
)

func newTestModel(t *testing.T, playerName string) *Model {
	t.Helper()
	cfg := config.Default()
	s := session.New(session.Config{
		Decks:           cfg.Game.Decks,
		QuestionTimeout: time.Minute,
	})
	t.Cleanup(s.Reset)

	return NewModel(Options{
		Config:     cfg,
		Session:    s,
		Sounds:     sound.NewSoundManager(), // 未 Init，播放为静默 no-op
		PlayerID:   "test-player",
		PlayerName: playerName,
	})
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestModelStartsInNicknamePhaseWithoutName(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, "")
	assert.Equal(t, PhaseNickname, m.phase)

	m2 := newTestModel(t, "Alice")
	assert.Equal(t, PhaseMenu, m2.phase)
}

func TestNicknameEntry(t *testing.T) {
	t.Parallel()

	var saved string
	m := newTestModel(t, "")
	m.saveName = func(name string) error {
		saved = name
		return nil
	}

	// 空昵称不放行
	m.Update(keyMsg("enter"))
	assert.Equal(t, PhaseNickname, m.phase)

	m.nameInput.SetValue("  Alice ")
	m.Update(keyMsg("enter"))
	assert.Equal(t, PhaseMenu, m.phase)
	assert.Equal(t, "Alice", m.playerName)
	assert.Equal(t, "Alice", saved)
}

func TestMenuNavigationWraps(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, "Alice")
	require.Equal(t, 0, m.menuIdx)

	m.Update(keyMsg("up"))
	assert.Equal(t, len(menuItems)-1, m.menuIdx)
	m.Update(keyMsg("down"))
	assert.Equal(t, 0, m.menuIdx)
}

func TestStartPracticeRun(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, "Alice")
	m.menuIdx = menuPractice
	m.Update(keyMsg("enter"))

	assert.Equal(t, PhasePlaying, m.phase)
	assert.True(t, m.practice)
	assert.True(t, m.session.Practice())
	assert.Len(t, m.session.Hand(), 2)
	assert.Len(t, m.session.Options(), 6)
	assert.False(t, m.session.Countdown().Running(), "practice mode must not start the countdown")
}

func TestSubmitAnswerByKey(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, "Alice")
	m.startGame(true)

	// 找到正确选项对应的按键
	correctIdx := -1
	for i, o := range m.session.Options() {
		if o.IsCorrect {
			correctIdx = i
			break
		}
	}
	require.GreaterOrEqual(t, correctIdx, 0)

	m.Update(keyMsg(string(rune('1' + correctIdx))))
	assert.Equal(t, 1, m.session.CorrectCount())
	assert.NotEmpty(t, m.flash)
	assert.False(t, m.flashError)
}

func TestPauseResumeFlow(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, "Alice")
	m.startGame(false)
	defer m.session.Reset()

	m.Update(keyMsg("p"))
	assert.Equal(t, PhasePaused, m.phase)
	assert.True(t, m.session.Paused())

	m.Update(keyMsg("p"))
	assert.Equal(t, PhasePlaying, m.phase)
	assert.False(t, m.session.Paused())
}

func TestQuitRunShowsGameOver(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, "Alice")
	m.startGame(false)

	m.Update(keyMsg("q"))
	assert.Equal(t, PhaseGameOver, m.phase)
	assert.Equal(t, session.StateEnded, m.session.State())
}

func TestTimerExpiredEndsRun(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, "Alice")
	m.startGame(false)

	m.Update(timerExpiredMsg{})
	assert.Equal(t, PhaseGameOver, m.phase)
	assert.True(t, m.session.GameOver())
}

func TestViewsRenderWithoutProgram(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, "Alice")
	assert.NotEmpty(t, m.View())

	m.startGame(true)
	assert.NotEmpty(t, m.View())

	m.Update(timerExpiredMsg{})
	m.phase = PhaseGameOver
	assert.NotEmpty(t, m.View())

	m.phase = PhaseLeaderboard
	assert.NotEmpty(t, m.View())
}
