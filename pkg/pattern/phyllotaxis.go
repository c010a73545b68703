package pattern

import (
	"math"

	"github.com/shouni/wave-identity-kit/pkg/domain"
)

const (
	DefaultPointCount = 6
	MaxPointCount     = 12

	// GoldenAngle は黄金角の近似値（度）です。
	GoldenAngle = 137.5

	pointOpacity = 0.85
)

// Phyllotaxis はキャンバス中心から黄金角と平方根の半径で点を並べ、葉序の螺旋を作ります。
type Phyllotaxis struct {
	Palette domain.Palette
	Width   float64
	Height  float64
}

func (Phyllotaxis) Name() string { return "phyllotaxis" }

// Count は生成される点の数を返します。
func (Phyllotaxis) Count(payload domain.Payload) int {
	return tailCount(payload, DefaultPointCount, MaxPointCount)
}

// PointAngle は i 番目の点の角度（度）です。
func PointAngle(seed uint64, i int) float64 {
	return math.Mod(float64(seed)+float64(i)*GoldenAngle, 360)
}

// PointRadius は i 番目の点の中心からの距離です。
func PointRadius(i int) float64 {
	return 20 * math.Sqrt(float64(i))
}

func (p Phyllotaxis) Generate(seed uint64, payload domain.Payload) []domain.Primitive {
	count := p.Count(payload)
	cx, cy := p.Width/2, p.Height/2
	size := float64(5 + seed%8)
	out := make([]domain.Primitive, 0, count)

	for i := 0; i < count; i++ {
		rad := PointAngle(seed, i) * math.Pi / 180
		r := PointRadius(i)
		out = append(out, domain.Circle{
			Center:  domain.Point{X: cx + r*math.Cos(rad), Y: cy + r*math.Sin(rad)},
			Radius:  size,
			Fill:    pick(p.Palette, i),
			Opacity: pointOpacity,
		})
	}
	return out
}
