package pattern

import (
	"github.com/shouni/wave-identity-kit/pkg/domain"
	"github.com/shouni/wave-identity-kit/pkg/seed"
	"github.com/shouni/wave-identity-kit/pkg/utils"
)

const (
	// DefaultStarCount はペイロードが数値として読めない場合の星の数です。
	DefaultStarCount = 5
	// MaxStarCount は1枚に描く星の上限です。
	MaxStarCount = 1000

	starOpacity = 0.9
)

// Starburst は 1000x1000 の波の上に重ねる星の群れです。
// シードはアドレスではなくペイロードから取り、ペイロードが無ければ何も生成しません。
type Starburst struct{}

func (Starburst) Name() string { return "starburst" }

// Count はペイロードを整数として読んだ値を星の数にします。
func (Starburst) Count(payload domain.Payload) int {
	n, ok := utils.ParseLooseInt(string(payload), MaxStarCount)
	if !ok || n <= 0 {
		return DefaultStarCount
	}
	return int(n)
}

func (s Starburst) Generate(_ uint64, payload domain.Payload) []domain.Primitive {
	if !payload.Present() {
		return nil
	}
	ps := seed.FromPayload(payload)
	count := s.Count(payload)
	out := make([]domain.Primitive, 0, count)

	for i := 0; i < count; i++ {
		n := uint64(i)
		size := float64(5 + i%5)
		hue := float64((ps + n*137) % 360)
		out = append(out, domain.Star{
			Center: domain.Point{
				X: float64(50 + (ps+n*97)%900),
				Y: float64(50 + (ps+n*53)%900),
			},
			Scale:   size / 10,
			Fill:    domain.HSL(hue, 80, 70),
			Opacity: starOpacity,
		})
	}
	return out
}
