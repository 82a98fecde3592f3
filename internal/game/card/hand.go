package card

import "fmt"

// HandValue 手牌估值结果，由 Evaluate 按需计算，不单独存储
type HandValue struct {
	HardValue int  // 所有 A 计 1 的硬点数
	BestValue int  // 尽量把 A 升为 11 后的最优点数
	AceCount  int  // 手牌中 A 的数量
	IsSoft    bool // 是否有 A 实际按 11 计
	IsBust    bool // 是否爆牌（BestValue > 21）
}

// Evaluate 计算一手牌的最优点数。纯函数，不修改输入。
//
// 先把所有 A 计 1 求出硬点数，再逐张尝试把 A 升为 11（+10），
// 只要总和不超过 21 就继续升，遇到会爆的 A 即停止，其余 A 保持 1。
// IsSoft 取决于实际升级的数量而不是 A 的数量：
// 能升但升了会爆的 A 不构成软牌。
func Evaluate(cards []Card) HandValue {
	hard := 0
	aces := 0
	for _, c := range cards {
		hard += c.BaseValue()
		if c.IsAce() {
			aces++
		}
	}

	best := hard
	upgraded := 0
	for range aces {
		if best+10 > 21 {
			break
		}
		best += 10
		upgraded++
	}

	return HandValue{
		HardValue: hard,
		BestValue: best,
		AceCount:  aces,
		IsSoft:    upgraded > 0,
		IsBust:    best > 21,
	}
}

// String 展示用文本，区分 "Bust (N)"、"Soft N" 和普通 "N"
func (v HandValue) String() string {
	switch {
	case v.IsBust:
		return fmt.Sprintf("Bust (%d)", v.BestValue)
	case v.IsSoft:
		return fmt.Sprintf("Soft %d", v.BestValue)
	default:
		return fmt.Sprintf("%d", v.BestValue)
	}
}
