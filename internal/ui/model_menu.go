package ui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/blackjack-trainer/internal/apperrors"
	"github.com/palemoky/blackjack-trainer/internal/logger"
)

// 主菜单条目
var menuItems = []string{
	"开始训练",
	"练习模式",
	"排行榜",
	"退出",
}

const (
	menuStart = iota
	menuPractice
	menuLeaderboard
	menuQuit
)

func (m *Model) updateNickname(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		name := strings.TrimSpace(m.nameInput.Value())
		if name == "" {
			return m, nil
		}
		m.playerName = name
		if m.saveName != nil {
			if err := m.saveName(name); err != nil {
				logger.LogError("保存昵称失败: %v", err)
			}
		}
		m.phase = PhaseMenu
		return m, nil
	case "esc":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m *Model) viewNickname() string {
	var b strings.Builder
	b.WriteString(titleStyle("🃏 21 点速算训练"))
	b.WriteString("\n\n请输入昵称：\n")
	b.WriteString(m.nameInput.View())
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("Enter 确认 · Esc 退出"))
	return b.String()
}

func (m *Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		m.menuIdx--
		if m.menuIdx < 0 {
			m.menuIdx = len(menuItems) - 1
		}
	case "down", "j":
		m.menuIdx++
		if m.menuIdx >= len(menuItems) {
			m.menuIdx = 0
		}
	case "enter":
		switch m.menuIdx {
		case menuStart:
			return m, m.startGame(false)
		case menuPractice:
			return m, m.startGame(true)
		case menuLeaderboard:
			m.prevPhase = PhaseMenu
			m.phase = PhaseLeaderboard
			m.entries = nil
			m.boardErr = nil
			return m, m.loadLeaderboardCmd()
		case menuQuit:
			return m, tea.Quit
		}
	case "q", "esc":
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) viewMenu() string {
	var b strings.Builder
	b.WriteString(titleStyle("🃏 21 点速算训练"))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("玩家：%s", m.playerName)))
	b.WriteString("\n\n")

	for i, item := range menuItems {
		if i == m.menuIdx {
			b.WriteString(menuSelectedStyle.Render("▸ " + item))
		} else {
			b.WriteString(menuItemStyle.Render("  " + item))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("↑/↓ 选择 · Enter 确认 · q 退出"))
	return b.String()
}

func (m *Model) updateGameOver(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "r":
		return m, m.startGame(m.practice)
	case "l":
		m.prevPhase = PhaseGameOver
		m.phase = PhaseLeaderboard
		m.entries = nil
		m.boardErr = nil
		return m, m.loadLeaderboardCmd()
	case "q", "esc":
		m.session.Reset()
		m.phase = PhaseMenu
		return m, nil
	}
	return m, nil
}

func (m *Model) viewGameOver() string {
	summary := m.session.Summary()

	var b strings.Builder
	if m.session.GameOver() {
		b.WriteString(titleStyle("⏰ 时间到！"))
	} else {
		b.WriteString(titleStyle("本局结束"))
	}
	b.WriteString("\n\n")

	stats := fmt.Sprintf(
		"得分      %d\n答对      %d\n答错      %d\n最高连对  %d",
		summary.Points, summary.Correct, summary.Wrong, summary.BestStreak,
	)
	b.WriteString(boxStyle.Render(stats))
	b.WriteString("\n\n")

	if m.lastRecord != nil {
		b.WriteString(errorStyle.Render("成绩未能上传排行榜"))
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render("Enter 再来一局 · l 排行榜 · q 返回菜单"))
	return b.String()
}

func (m *Model) updateLeaderboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "enter":
		m.phase = m.prevPhase
		return m, nil
	}
	return m, nil
}

func (m *Model) viewLeaderboard() string {
	var b strings.Builder
	b.WriteString(titleStyle("🏆 排行榜"))
	b.WriteString("\n\n")

	switch {
	case m.boardErr != nil && errors.Is(m.boardErr, apperrors.ErrStorageDisabled):
		b.WriteString(dimStyle.Render("排行榜需要 Redis，可在配置文件中开启"))
	case m.boardErr != nil:
		b.WriteString(errorStyle.Render("排行榜加载失败"))
	case len(m.entries) == 0:
		b.WriteString(dimStyle.Render("暂无成绩，先打一局吧"))
	default:
		var rows strings.Builder
		rows.WriteString(fmt.Sprintf("%-4s %-16s %8s %6s %8s\n", "#", "玩家", "最高分", "连对", "正确率"))
		for _, e := range m.entries {
			name := e.PlayerName
			if name == "" {
				name = e.PlayerID
			}
			rows.WriteString(fmt.Sprintf("%-4d %-16s %8d %6d %7.0f%%\n",
				e.Rank, name, e.BestScore, e.BestStreak, e.Accuracy*100))
		}
		b.WriteString(boxStyle.Render(strings.TrimRight(rows.String(), "\n")))
	}

	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("q 返回"))
	return b.String()
}
