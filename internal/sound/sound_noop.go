//go:build ci

package sound

// 训练器用到的音效名
const (
	EffectCorrect  = "correct"
	EffectWrong    = "wrong"
	EffectDeal     = "deal"
	EffectGameOver = "gameover"
)

type SoundManager struct{}

func NewSoundManager() *SoundManager {
	return &SoundManager{}
}

func (sm *SoundManager) Init() error {
	return nil
}

func (sm *SoundManager) Play(name string) {
	// No-op
}

func (sm *SoundManager) Close() {
	// No-op
}
