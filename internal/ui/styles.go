package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/blackjack-trainer/internal/game/card"
)

// Lipgloss Styles
var (
	docStyle   = lipgloss.NewStyle().Margin(1, 2)
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true).Render
	redStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#CD0000")).Background(lipgloss.Color("#FFFFFF")).Bold(true)
	blackStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("#FFFFFF")).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)

	menuItemStyle     = lipgloss.NewStyle().Padding(0, 2)
	menuSelectedStyle = lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("228")).Bold(true)

	optionStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1).
			MarginRight(1)
	optionKeyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("228"))

	scoreStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	streakStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

// cardStyle 按花色返回红/黑牌面样式
func cardStyle(c card.Card) lipgloss.Style {
	if c.Suit == card.Heart || c.Suit == card.Diamond {
		return redStyle
	}
	return blackStyle
}

// renderCard 渲染一张牌面
func renderCard(c card.Card) string {
	face := cardStyle(c).Render(" " + c.String() + " ")
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("252")).
		Render(face)
}

// renderHand 水平排列整手牌
func renderHand(cards []card.Card) string {
	if len(cards) == 0 {
		return dimStyle.Render("(等待发牌)")
	}
	faces := make([]string, 0, len(cards))
	for _, c := range cards {
		faces = append(faces, renderCard(c))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, faces...)
}
