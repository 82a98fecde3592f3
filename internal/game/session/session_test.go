package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/blackjack-trainer/internal/game/card"
)

func TestStartResetsEverything(t *testing.T) {
	t.Parallel()

	s, _ := newTestSession(t, false)
	s.Start()
	forceHand(s, card.Rank2, card.Rank3)
	s.Submit(findOption(t, s, OptionBust)) // 答错一次

	s.Start()

	assert.Zero(t, s.CorrectCount())
	assert.Zero(t, s.WrongCount())
	assert.Zero(t, s.TotalPoints())
	assert.Zero(t, s.BestStreak())
	assert.False(t, s.GameOver())
	assert.Equal(t, StateAwaitingAnswer, s.State())
	assert.Len(t, s.Hand(), 2)
	assert.Len(t, s.Options(), 6)
}

func TestHandleTimeoutEndsRun(t *testing.T) {
	t.Parallel()

	s, _ := newTestSession(t, false)
	s.Start()

	s.HandleTimeout()

	assert.True(t, s.GameOver())
	assert.Equal(t, StateEnded, s.State())
	assert.Equal(t, 1, s.WrongCount())

	// 结束后重复触发不再计数
	s.HandleTimeout()
	assert.Equal(t, 1, s.WrongCount())
}

func TestHandleTimeoutIgnoredInPractice(t *testing.T) {
	t.Parallel()

	s, _ := newTestSession(t, true)
	s.Start()

	s.HandleTimeout()

	assert.False(t, s.GameOver())
	assert.Equal(t, StateAwaitingAnswer, s.State())
	assert.Zero(t, s.WrongCount())
}

func TestEndGameIsIdempotent(t *testing.T) {
	t.Parallel()

	s, _ := newTestSession(t, false)
	s.Start()
	forceHand(s, card.Rank2, card.Rank3)
	s.Submit(findNumber(t, s, 5))

	s.EndGame()
	summary := s.Summary()
	s.EndGame()

	assert.Equal(t, StateEnded, s.State())
	assert.Equal(t, summary, s.Summary())
	assert.Equal(t, Summary{Correct: 1, Wrong: 0, Points: 10, BestStreak: 1}, summary)
}

func TestResetReturnsToNotStarted(t *testing.T) {
	t.Parallel()

	s, _ := newTestSession(t, false)
	s.Start()
	s.Reset()
	s.Reset() // 幂等

	assert.Equal(t, StateNotStarted, s.State())
	assert.Empty(t, s.Hand())
	assert.Empty(t, s.Options())
}

func TestAdvanceRoundOnlyAfterRoundComplete(t *testing.T) {
	t.Parallel()

	s, _ := newTestSession(t, false)
	s.Start()
	forceHand(s, card.Rank10, card.Rank5)

	hand := s.Hand()
	s.AdvanceRound() // 没有待开的新手牌，应当是 no-op
	assert.Equal(t, hand, s.Hand())
	assert.Equal(t, StateAwaitingAnswer, s.State())
}

// TestBlackjackScenario 完整走一遍规格中的端到端场景：
// 起手 {K, A}，直接按 BLACKJACK 按钮，1 秒内作答。
func TestBlackjackScenario(t *testing.T) {
	t.Parallel()

	s, clock := newTestSession(t, false)
	s.Start()
	forceHand(s, card.RankK, card.RankA)

	v := s.Value()
	require.Equal(t, 21, v.BestValue)
	require.True(t, v.IsSoft)
	require.False(t, v.IsBust)

	clock.Advance(800 * time.Millisecond)
	result := s.Submit(findOption(t, s, OptionBlackjack))

	assert.True(t, result.Correct)
	assert.True(t, result.RoundComplete)
	// 直接按按钮拿不到数字识别奖励，只有速度分
	assert.Equal(t, 10, result.Points)
	assert.Equal(t, 10, s.TotalPoints())
}

func TestPauseDuringRoundCompleteHoldsNextCountdown(t *testing.T) {
	t.Parallel()

	s, _ := newTestSession(t, false)
	s.Start()
	forceHand(s, card.RankK, card.RankA)
	result := s.Submit(findOption(t, s, OptionBlackjack))
	require.True(t, result.RoundComplete)

	// 在开下一手之前暂停
	s.Pause()
	s.AdvanceRound()

	assert.Equal(t, StateAwaitingAnswer, s.State())
	assert.False(t, s.Countdown().Running(), "paused session must not tick the new question")

	s.Resume()
	assert.True(t, s.Countdown().Running())
}

func TestPauseStopsCountdownWithoutLosingTime(t *testing.T) {
	s := NewWith(Config{
		QuestionTimeout: time.Minute,
		TickInterval:    10 * time.Millisecond,
	}, nil, time.Now)
	defer s.Reset()

	s.Start()
	require.True(t, s.Countdown().Running())

	time.Sleep(50 * time.Millisecond)
	s.Pause()
	remaining := s.Countdown().Remaining()
	assert.Less(t, remaining, time.Minute)
	assert.False(t, s.Countdown().Running())

	// 暂停期间剩余时间不再变化
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, remaining, s.Countdown().Remaining())

	s.Resume()
	assert.True(t, s.Countdown().Running())
}
