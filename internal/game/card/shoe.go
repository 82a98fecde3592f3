package card

import "math/rand/v2"

const (
	// DefaultDecks 默认牌靴副数
	DefaultDecks = 6
	// DefaultReshuffleThreshold 默认洗牌阈值：剩余比例低于 20% 即重新洗牌
	DefaultReshuffleThreshold = 0.20
)

// Shoe 定义牌靴：多副牌合在一起的发牌池。
// 发牌前检查穿透率，低于阈值就整靴重洗，保证 Deal 永远有牌可发。
type Shoe struct {
	decks     int
	threshold float64
	cards     []Card
	rng       *rand.Rand // 可注入的随机源，nil 时使用全局随机
}

// NewShoe 创建一个牌靴并完成首次洗牌
func NewShoe(decks int) *Shoe {
	return NewShoeWith(decks, DefaultReshuffleThreshold, nil)
}

// NewShoeWith 创建牌靴，可指定洗牌阈值与随机源（测试用）
func NewShoeWith(decks int, threshold float64, rng *rand.Rand) *Shoe {
	if decks <= 0 {
		decks = DefaultDecks
	}
	s := &Shoe{decks: decks, threshold: threshold, rng: rng}
	s.Shuffle()
	return s
}

// Capacity 牌靴总容量
func (s *Shoe) Capacity() int {
	return s.decks * 52
}

// Remaining 剩余张数
func (s *Shoe) Remaining() int {
	return len(s.cards)
}

// Penetration 穿透率：剩余张数 / 总容量
func (s *Shoe) Penetration() float64 {
	return float64(len(s.cards)) / float64(s.Capacity())
}

// Shuffle 重置为满靴并随机打乱
func (s *Shoe) Shuffle() {
	cards := make([]Card, 0, s.Capacity())
	for range s.decks {
		for suit := Spade; suit <= Diamond; suit++ {
			for rank := Rank2; rank <= RankA; rank++ {
				cards = append(cards, Card{Suit: suit, Rank: rank})
			}
		}
	}

	swap := func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	}
	if s.rng != nil {
		s.rng.Shuffle(len(cards), swap)
	} else {
		rand.Shuffle(len(cards), swap)
	}
	s.cards = cards
}

// Deal 发一张牌。发牌前检查穿透率，低于阈值或已发空则先重洗，
// 与真实赌场流程一致：永远不发靴底 20% 的牌。
func (s *Shoe) Deal() Card {
	if len(s.cards) == 0 || s.Penetration() < s.threshold {
		s.Shuffle()
	}

	c := s.cards[0]
	s.cards = s.cards[1:]
	return c
}
