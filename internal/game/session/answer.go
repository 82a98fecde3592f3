package session

import "github.com/palemoky/blackjack-trainer/internal/game/card"

const (
	// 干扰项相对正确值的偏移范围 [-decoyOffsetRange, +decoyOffsetRange]
	decoyOffsetRange = 6
	// 每个阶段的随机尝试上限，保证生成过程必然终止
	decoyMaxAttempts = 64
	// 找不到足够干扰项时扩大到的偏移范围
	decoyWideRange = 12
)

// generateAnswerOptions 针对当前手牌生成六个选项：
// 四个互不相同的正整数（其中一个等于真实最优点数），随机排列，
// 末尾固定追加 BUST 和 BLACKJACK 两个按钮。
func (s *Session) generateAnswerOptions() {
	v := card.Evaluate(s.hand)
	best := v.BestValue

	used := map[int]bool{best: true}
	numbers := []int{best}

	// 第一阶段：在正确值 ±decoyOffsetRange 内随机取偏移
	for attempts := 0; len(numbers) < 4 && attempts < decoyMaxAttempts; attempts++ {
		offset := s.intN(2*decoyOffsetRange+1) - decoyOffsetRange
		candidate := best + offset
		if offset == 0 || candidate <= 0 || used[candidate] {
			continue
		}
		used[candidate] = true
		numbers = append(numbers, candidate)
	}

	// 第二阶段：扩大范围再试
	for attempts := 0; len(numbers) < 4 && attempts < decoyMaxAttempts; attempts++ {
		candidate := best - decoyWideRange + s.intN(2*decoyWideRange+1)
		if candidate <= 0 || used[candidate] {
			continue
		}
		used[candidate] = true
		numbers = append(numbers, candidate)
	}

	// 兜底：顺序补齐最小的未用正整数，保证恰好四个互不相同的数字
	for candidate := 1; len(numbers) < 4; candidate++ {
		if !used[candidate] {
			used[candidate] = true
			numbers = append(numbers, candidate)
		}
	}

	// 打乱四个数字的展示顺序
	for i := len(numbers) - 1; i > 0; i-- {
		j := s.intN(i + 1)
		numbers[i], numbers[j] = numbers[j], numbers[i]
	}

	options := make([]AnswerOption, 0, 6)
	for _, n := range numbers {
		options = append(options, AnswerOption{
			Kind:      OptionNumber,
			Value:     n,
			IsCorrect: n == best,
		})
	}
	options = append(options,
		AnswerOption{Kind: OptionBust, IsCorrect: v.IsBust},
		AnswerOption{Kind: OptionBlackjack, IsCorrect: best == 21 && !v.IsBust},
	)
	s.options = options
}

// Submit 提交第 idx 个选项的作答。只在等待作答且未暂停时有效。
func (s *Session) Submit(idx int) SubmitResult {
	if s.state != StateAwaitingAnswer || s.paused || idx < 0 || idx >= len(s.options) {
		return SubmitResult{}
	}

	option := s.options[idx]
	if option.IsCorrect {
		return s.handleCorrectAnswer(option)
	}
	return s.handleWrongAnswer()
}

// handleCorrectAnswer 答对：计分后，到 21 或爆牌则结束本手牌，
// 否则继续发下一张
func (s *Session) handleCorrectAnswer(option AnswerOption) SubmitResult {
	s.correctCount++
	s.currentStreak++
	if s.currentStreak > s.bestStreak {
		s.bestStreak = s.currentStreak
	}

	points := s.calculatePoints(option)
	s.awardPoints(points)

	v := card.Evaluate(s.hand)
	if v.BestValue >= 21 || v.IsBust {
		// 本手牌结束，等调用方延迟后开下一手
		s.pendingNewHand = true
		s.state = StateDealing
		s.countdown.Stop()
		return SubmitResult{Correct: true, Points: points, RoundComplete: true}
	}

	s.DealNextCard()
	return SubmitResult{Correct: true, Points: points}
}

// handleWrongAnswer 答错：牌不变，重新随机干扰项，重给一轮倒计时
func (s *Session) handleWrongAnswer() SubmitResult {
	s.wrongCount++
	s.currentStreak = 0
	s.generateAnswerOptions()
	if !s.cfg.Practice {
		s.countdown.Reset()
	}
	return SubmitResult{Correct: false}
}
