package session

import (
	"strconv"
	"time"
)

// State 定义一局训练的状态机
type State int

const (
	StateNotStarted State = iota
	StateDealing
	StateAwaitingAnswer
	StateEnded
)

// OptionKind 答案选项类型
type OptionKind int

const (
	OptionNumber    OptionKind = iota // 数字点数
	OptionBust                        // 爆牌按钮
	OptionBlackjack                   // 21 点按钮
)

// AnswerOption 呈现给玩家的一个选项。
// IsCorrect 在生成时针对当时的手牌预先算好。
type AnswerOption struct {
	Kind      OptionKind
	Value     int // 仅 OptionNumber 有效
	IsCorrect bool
}

// Label 选项的展示文本
func (o AnswerOption) Label() string {
	switch o.Kind {
	case OptionBust:
		return "BUST"
	case OptionBlackjack:
		return "BLACKJACK"
	default:
		return strconv.Itoa(o.Value)
	}
}

// SubmitResult 一次作答的结果
type SubmitResult struct {
	Correct bool
	Points  int  // 本次作答获得的分数（练习模式恒为 0）
	// RoundComplete 表示本手牌已结束（到 21 或爆牌且答对），
	// 调用方应在 RoundCompleteDelay 后调用 AdvanceRound 开新手牌。
	RoundComplete bool
}

// Summary 一次训练结束时的汇总数据，供排行榜持久化
type Summary struct {
	Correct    int
	Wrong      int
	Points     int
	BestStreak int
}

// Config 训练会话配置
type Config struct {
	Decks              int           // 牌靴副数
	ReshuffleThreshold float64       // 洗牌阈值
	QuestionTimeout    time.Duration // 每题倒计时
	TickInterval       time.Duration // 倒计时步进
	Practice           bool          // 练习模式：无倒计时、不计分
}

const (
	// DefaultQuestionTimeout 每题默认作答时间
	DefaultQuestionTimeout = 10 * time.Second
	// DefaultTickInterval 倒计时默认步进
	DefaultTickInterval = 100 * time.Millisecond
	// RoundCompleteDelay 一手牌结束到开下一手的动画间隔
	RoundCompleteDelay = 500 * time.Millisecond
)
