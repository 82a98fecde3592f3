package session

import (
	"math/rand/v2"
	"time"

	"github.com/palemoky/blackjack-trainer/internal/game/card"
)

// Session 一次进行中的训练。持有牌靴、当前手牌、答案选项、
// 计分器和每题倒计时。所有修改状态的方法都假定运行在同一个
// 调度上下文（bubbletea 的 Update 循环）上，内部不加锁；
// 倒计时回调由调用方转发回该上下文。
type Session struct {
	cfg       Config
	shoe      *card.Shoe
	countdown *Countdown
	rng       *rand.Rand       // 可注入的随机源，nil 时使用全局随机
	now       func() time.Time // 可注入的时钟

	state   State
	hand    []card.Card
	options []AnswerOption

	answerStartedAt time.Time
	pendingNewHand  bool

	correctCount  int
	wrongCount    int
	roundPoints   int
	totalPoints   int
	currentStreak int
	bestStreak    int

	paused   bool
	gameOver bool
}

// New 创建训练会话，使用真实时钟与全局随机源
func New(cfg Config) *Session {
	return NewWith(cfg, nil, time.Now)
}

// NewWith 创建训练会话，随机源和时钟可注入（测试用）
func NewWith(cfg Config, rng *rand.Rand, now func() time.Time) *Session {
	if cfg.Decks <= 0 {
		cfg.Decks = card.DefaultDecks
	}
	if cfg.ReshuffleThreshold <= 0 {
		cfg.ReshuffleThreshold = card.DefaultReshuffleThreshold
	}
	if cfg.QuestionTimeout <= 0 {
		cfg.QuestionTimeout = DefaultQuestionTimeout
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = DefaultTickInterval
	}
	if now == nil {
		now = time.Now
	}

	return &Session{
		cfg:       cfg,
		shoe:      card.NewShoeWith(cfg.Decks, cfg.ReshuffleThreshold, rng),
		countdown: NewCountdown(cfg.QuestionTimeout, cfg.TickInterval),
		rng:       rng,
		now:       now,
	}
}

// Countdown 返回每题倒计时，供调用方挂接回调
func (s *Session) Countdown() *Countdown {
	return s.countdown
}

// State 当前状态
func (s *Session) State() State { return s.state }

// Hand 当前手牌（有序副本）
func (s *Session) Hand() []card.Card {
	hand := make([]card.Card, len(s.hand))
	copy(hand, s.hand)
	return hand
}

// Value 当前手牌的估值
func (s *Session) Value() card.HandValue {
	return card.Evaluate(s.hand)
}

// Options 当前答案选项
func (s *Session) Options() []AnswerOption {
	options := make([]AnswerOption, len(s.options))
	copy(options, s.options)
	return options
}

// Practice 是否为练习模式
func (s *Session) Practice() bool { return s.cfg.Practice }

// Paused 是否处于暂停
func (s *Session) Paused() bool { return s.paused }

// GameOver 本次训练是否已因超时结束
func (s *Session) GameOver() bool { return s.gameOver }

// CorrectCount 答对次数
func (s *Session) CorrectCount() int { return s.correctCount }

// WrongCount 答错次数
func (s *Session) WrongCount() int { return s.wrongCount }

// RoundPoints 当前手牌累计分数
func (s *Session) RoundPoints() int { return s.roundPoints }

// TotalPoints 本次训练累计分数
func (s *Session) TotalPoints() int { return s.totalPoints }

// CurrentStreak 当前连对次数
func (s *Session) CurrentStreak() int { return s.currentStreak }

// BestStreak 最高连对次数
func (s *Session) BestStreak() int { return s.bestStreak }

// Summary 训练结束时的汇总数据
func (s *Session) Summary() Summary {
	return Summary{
		Correct:    s.correctCount,
		Wrong:      s.wrongCount,
		Points:     s.totalPoints,
		BestStreak: s.bestStreak,
	}
}

// intN 返回 [0,n) 的随机整数，优先使用注入的随机源
func (s *Session) intN(n int) int {
	if s.rng != nil {
		return s.rng.IntN(n)
	}
	return rand.IntN(n)
}
