package card

// Suit 定义花色
type Suit int

// Rank 定义点数
type Rank int

const (
	Spade   Suit = iota // 黑桃
	Heart               // 红心
	Club                // 梅花
	Diamond             // 方块
)

// suitSymbols 花色符号映射表
var suitSymbols = map[Suit]string{
	Spade:   "♠",
	Heart:   "♥",
	Club:    "♣",
	Diamond: "♦",
}

func (s Suit) String() string {
	if symbol, ok := suitSymbols[s]; ok {
		return symbol
	}
	return ""
}

const (
	Rank2 Rank = iota + 2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	Rank9
	Rank10
	RankJ // Jack
	RankQ // Queen
	RankK // King
	RankA // Ace
)

// rankNames 牌面值字符串映射表
var rankNames = map[Rank]string{
	Rank2:  "2",
	Rank3:  "3",
	Rank4:  "4",
	Rank5:  "5",
	Rank6:  "6",
	Rank7:  "7",
	Rank8:  "8",
	Rank9:  "9",
	Rank10: "10",
	RankJ:  "J",
	RankQ:  "Q",
	RankK:  "K",
	RankA:  "A",
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return "?"
}

// BaseValue 返回 21 点基础点数：2-10 按面值，JQK 为 10，A 计为 1
func (r Rank) BaseValue() int {
	switch {
	case r >= RankJ && r <= RankK:
		return 10
	case r == RankA:
		return 1
	default:
		return int(r)
	}
}

// Card 定义一张牌
type Card struct {
	Suit Suit
	Rank Rank
}

// IsAce 是否为 A
func (c Card) IsAce() bool {
	return c.Rank == RankA
}

// BaseValue 该牌的基础点数（A 计为 1）
func (c Card) BaseValue() int {
	return c.Rank.BaseValue()
}

func (c Card) String() string {
	return c.Suit.String() + c.Rank.String()
}
