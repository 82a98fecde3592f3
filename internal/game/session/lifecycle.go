package session

// SetPractice 切换练习模式。只在未开始时生效。
func (s *Session) SetPractice(practice bool) {
	if s.state != StateNotStarted {
		return
	}
	s.cfg.Practice = practice
}

// Start 开始一次训练：清零计分、整靴重洗、发两张起手牌并启动倒计时。
// 练习模式不启动倒计时。
func (s *Session) Start() {
	s.correctCount = 0
	s.wrongCount = 0
	s.roundPoints = 0
	s.totalPoints = 0
	s.currentStreak = 0
	s.bestStreak = 0
	s.paused = false
	s.gameOver = false
	s.pendingNewHand = false

	s.shoe.Shuffle()
	s.dealInitialCards()
}

// dealInitialCards 发两张起手牌并生成选项、重置倒计时
func (s *Session) dealInitialCards() {
	s.state = StateDealing
	s.hand = s.hand[:0]
	s.hand = append(s.hand, s.shoe.Deal(), s.shoe.Deal())
	s.beginQuestion()
}

// DealNextCard 追加一张牌，针对新手牌重新生成选项并重置倒计时
func (s *Session) DealNextCard() {
	if s.state != StateAwaitingAnswer {
		return
	}
	s.hand = append(s.hand, s.shoe.Deal())
	s.beginQuestion()
}

// beginQuestion 进入等待作答状态：生成选项、记录作答起点、重置倒计时
func (s *Session) beginQuestion() {
	s.generateAnswerOptions()
	s.answerStartedAt = s.now()
	s.state = StateAwaitingAnswer
	if !s.cfg.Practice {
		s.countdown.Reset()
		// 暂停中开出的新一题先不走表，Resume 时继续
		if s.paused {
			s.countdown.Pause()
		}
	}
}

// AdvanceRound 在一手牌结束后开下一手。由调用方在 RoundCompleteDelay
// 之后触发，保证所有状态变更都发生在同一调度上下文。
func (s *Session) AdvanceRound() {
	if !s.pendingNewHand || s.state == StateEnded {
		return
	}
	s.pendingNewHand = false
	s.roundPoints = 0
	s.dealInitialCards()
}

// HandleTimeout 倒计时到期：未作答按答错计，本次训练结束
func (s *Session) HandleTimeout() {
	if s.cfg.Practice || s.state != StateAwaitingAnswer {
		return
	}
	s.wrongCount++
	s.currentStreak = 0
	s.gameOver = true
	s.state = StateEnded
	s.countdown.Stop()
}

// Pause 暂停：停止倒计时但保留剩余时间
func (s *Session) Pause() {
	if s.paused || s.state == StateNotStarted || s.state == StateEnded {
		return
	}
	s.paused = true
	s.countdown.Pause()
}

// Resume 从暂停处继续，剩余时间不变
func (s *Session) Resume() {
	if !s.paused {
		return
	}
	s.paused = false
	if !s.cfg.Practice && s.state == StateAwaitingAnswer {
		s.countdown.Resume()
	}
}

// EndGame 结束本次训练，取消未触发的倒计时。可重复调用。
func (s *Session) EndGame() {
	if s.state == StateEnded {
		return
	}
	s.state = StateEnded
	s.countdown.Stop()
}

// Reset 回到未开始状态，清空手牌与计分。可重复调用。
func (s *Session) Reset() {
	s.countdown.Stop()
	s.state = StateNotStarted
	s.hand = nil
	s.options = nil
	s.pendingNewHand = false
	s.correctCount = 0
	s.wrongCount = 0
	s.roundPoints = 0
	s.totalPoints = 0
	s.currentStreak = 0
	s.bestStreak = 0
	s.paused = false
	s.gameOver = false
}
