package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/blackjack-trainer/internal/game/session"
	"github.com/palemoky/blackjack-trainer/internal/sound"
)

const flashDuration = 700 * time.Millisecond

func (m *Model) updateGame(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "1", "2", "3", "4", "5", "6":
		return m.submitAnswer(int(key[0] - '1'))
	case "p":
		m.session.Pause()
		m.phase = PhasePaused
		return m, nil
	case "q", "esc":
		// 主动放弃本局，结算但不算超时
		m.session.EndGame()
		m.phase = PhaseGameOver
		return m, m.recordRunCmd()
	}
	return m, nil
}

// submitAnswer 提交选项并根据结果推进游戏
func (m *Model) submitAnswer(idx int) (tea.Model, tea.Cmd) {
	result := m.session.Submit(idx)

	var cmds []tea.Cmd
	if result.Correct {
		m.sounds.Play(sound.EffectCorrect)
		if result.Points > 0 {
			m.flash = fmt.Sprintf("✔ +%d", result.Points)
		} else {
			m.flash = "✔"
		}
		m.flashError = false
	} else {
		m.sounds.Play(sound.EffectWrong)
		m.flash = "✘ 再想想"
		m.flashError = true
	}
	cmds = append(cmds, tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return clearFlashMsg{}
	}))

	if result.RoundComplete {
		// 留出动画间隔再开下一手
		cmds = append(cmds, tea.Tick(session.RoundCompleteDelay, func(time.Time) tea.Msg {
			return advanceRoundMsg{}
		}))
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) updatePaused(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "p", "enter", " ":
		m.session.Resume()
		m.phase = PhasePlaying
		return m, nil
	case "q", "esc":
		m.session.EndGame()
		m.phase = PhaseGameOver
		return m, m.recordRunCmd()
	}
	return m, nil
}

func (m *Model) viewGame() string {
	var b strings.Builder

	mode := "训练"
	if m.practice {
		mode = "练习"
	}
	b.WriteString(titleStyle("🃏 21 点速算 · " + mode))
	b.WriteString("\n\n")

	// 手牌
	b.WriteString(renderHand(m.session.Hand()))
	b.WriteString("\n")
	if m.practice {
		// 练习模式直接显示软/硬提示
		b.WriteString(dimStyle.Render("当前：" + m.session.Value().String()))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// 答案选项
	b.WriteString(m.renderOptions())
	b.WriteString("\n\n")

	// 倒计时
	if !m.practice {
		total := m.session.Countdown().Total()
		percent := 0.0
		if total > 0 {
			percent = float64(m.remaining) / float64(total)
		}
		b.WriteString(m.progressBar.ViewAs(percent))
		b.WriteString(fmt.Sprintf("  %.1fs", m.remaining.Seconds()))
		b.WriteString("\n\n")
	}

	// 计分
	b.WriteString(scoreStyle.Render(fmt.Sprintf("得分 %d", m.session.TotalPoints())))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  ·  ✔ %d  ✘ %d  ·  ", m.session.CorrectCount(), m.session.WrongCount())))
	b.WriteString(streakStyle.Render(fmt.Sprintf("连对 %d", m.session.CurrentStreak())))
	b.WriteString("\n")

	// 作答反馈
	if m.flash != "" {
		if m.flashError {
			b.WriteString(errorStyle.Render(m.flash))
		} else {
			b.WriteString(okStyle.Render(m.flash))
		}
	}
	b.WriteString("\n")

	if m.phase == PhasePaused {
		b.WriteString("\n")
		b.WriteString(titleStyle("⏸ 已暂停"))
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("p 继续 · q 结束本局"))
	} else {
		b.WriteString(dimStyle.Render("1-6 作答 · p 暂停 · q 结束本局"))
	}
	return b.String()
}

// renderOptions 渲染六个答案按钮，数字键 1-6 对应
func (m *Model) renderOptions() string {
	options := m.session.Options()
	buttons := make([]string, 0, len(options))
	for i, o := range options {
		label := optionKeyStyle.Render(fmt.Sprintf("%d", i+1)) + " " + o.Label()
		buttons = append(buttons, optionStyle.Render(label))
	}
	return strings.Join(buttons, "")
}
