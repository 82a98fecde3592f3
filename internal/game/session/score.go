package session

import "github.com/palemoky/blackjack-trainer/internal/game/card"

// 计分规则
const (
	// 满速作答基础分，每过一秒衰减 1 分
	speedBasePoints = 10
	// 任何正确作答的保底分
	minPoints = 1
	// 手牌为爆牌或 21 时，用数字答对的额外奖励：
	// 靠点数识别出边界情况比直接按 BUST/BLACKJACK 按钮更难
	edgeNumberBonus = 2
)

// calculatePoints 计算一次正确作答的得分。练习模式恒为 0。
// 普通模式：max(1, 10 - 已用整秒数)，外加边界情况的数字识别奖励。
func (s *Session) calculatePoints(option AnswerOption) int {
	if s.cfg.Practice {
		return 0
	}

	elapsed := int(s.now().Sub(s.answerStartedAt).Seconds())
	points := speedBasePoints - elapsed
	if points < minPoints {
		points = minPoints
	}

	v := card.Evaluate(s.hand)
	edgeHand := v.IsBust || v.BestValue == 21
	if edgeHand && option.Kind == OptionNumber {
		points += edgeNumberBonus
	}
	return points
}

// awardPoints 同时累加本手牌分数和本次训练总分
func (s *Session) awardPoints(points int) {
	s.roundPoints += points
	s.totalPoints += points
}
