package pattern

import (
	"math"

	"github.com/shouni/wave-identity-kit/pkg/domain"
)

const (
	DefaultLineCount = 5
	MaxLineCount     = 10

	lineLength  = 50
	lineMargin  = 50
	lineOpacity = 0.8
)

// AbstractLines は固定長の線分を 72° 刻みの角度で散らします。
// 本数はペイロード末尾2桁の16進数で決まり、最大10本です。
type AbstractLines struct {
	Palette domain.Palette
	Width   float64
	Height  float64
}

func (AbstractLines) Name() string { return "abstract-lines" }

// Count は生成される本数を返します。
func (AbstractLines) Count(payload domain.Payload) int {
	return tailCount(payload, DefaultLineCount, MaxLineCount)
}

func (a AbstractLines) Generate(seed uint64, payload domain.Payload) []domain.Primitive {
	count := a.Count(payload)
	thickness := float64(2 + seed%5)
	spanX := innerSpan(a.Width)
	spanY := innerSpan(a.Height)
	out := make([]domain.Primitive, 0, count)

	for i := 0; i < count; i++ {
		n := uint64(i)
		angle := float64((seed+n*72)%360) * math.Pi / 180
		from := domain.Point{
			X: lineMargin + float64((seed+n*53)%spanX),
			Y: lineMargin + float64((seed+n*97)%spanY),
		}
		to := domain.Point{
			X: from.X + lineLength*math.Cos(angle),
			Y: from.Y + lineLength*math.Sin(angle),
		}
		out = append(out, domain.Line{
			From:    from,
			To:      to,
			Stroke:  pick(a.Palette, i),
			Width:   thickness,
			Opacity: lineOpacity,
		})
	}
	return out
}

// innerSpan は余白を除いた始点の取りうる幅です。
func innerSpan(size float64) uint64 {
	span := int64(size) - 2*lineMargin
	if span < 1 {
		return 1
	}
	return uint64(span)
}
