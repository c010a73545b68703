package pattern

import (
	"github.com/shouni/wave-identity-kit/pkg/domain"
)

const waveStrokeOpacity = 0.6

// waveField は1000単位のキャンバスを基準にした波の形状を、サイズと向きを変えて生成します。
type waveField struct {
	palette    domain.Palette
	size       float64
	start      float64
	span       float64
	minCount   uint64
	countRange uint64
	vertical   bool
}

func (w waveField) count(seed uint64) int {
	return int(w.minCount + seed%w.countRange)
}

func (w waveField) generate(seed uint64) []domain.Primitive {
	count := w.count(seed)
	k := w.size / 1000
	out := make([]domain.Primitive, 0, count)

	for i := 0; i < count; i++ {
		pos := Spread(i, count, w.start, w.span)
		offset := (seed + uint64(i)*41) % 300

		from := domain.Point{X: 0, Y: pos}
		to := domain.Point{X: w.size, Y: pos}
		c1 := domain.Point{
			X: (250 + float64(offset%200) - 100) * k,
			Y: pos + float64(offset%150)*k - 75*k,
		}
		c2 := domain.Point{
			X: (750 - float64(offset%180) + 90) * k,
			Y: pos - float64(offset%150)*k + 75*k,
		}
		if w.vertical {
			from, to, c1, c2 = transpose(from), transpose(to), transpose(c1), transpose(c2)
		}

		out = append(out, domain.BezierStroke{
			From:    from,
			C1:      c1,
			C2:      c2,
			To:      to,
			Stroke:  pick(w.palette, i),
			Width:   float64(10+i%5) * k,
			Opacity: waveStrokeOpacity,
		})
	}
	return out
}

func transpose(p domain.Point) domain.Point {
	return domain.Point{X: p.Y, Y: p.X}
}

// HorizontalWaves は 1000x1000 のキャンバスに左右に流れる曲線を 18〜21 本並べます。
type HorizontalWaves struct {
	Palette domain.Palette
}

func (HorizontalWaves) Name() string { return "horizontal-waves" }

// Count は生成される本数を返します。
func (h HorizontalWaves) Count(seed uint64) int {
	return h.field().count(seed)
}

func (h HorizontalWaves) Generate(seed uint64, _ domain.Payload) []domain.Primitive {
	return h.field().generate(seed)
}

func (h HorizontalWaves) field() waveField {
	return waveField{palette: h.Palette, size: 1000, start: 50, span: 900, minCount: 18, countRange: 4}
}

// VerticalWaves は 500x500 のキャンバスに上下に流れる曲線を 5〜10 本並べます。
type VerticalWaves struct {
	Palette domain.Palette
}

func (VerticalWaves) Name() string { return "vertical-waves" }

// Count は生成される本数を返します。
func (v VerticalWaves) Count(seed uint64) int {
	return v.field().count(seed)
}

func (v VerticalWaves) Generate(seed uint64, _ domain.Payload) []domain.Primitive {
	return v.field().generate(seed)
}

func (v VerticalWaves) field() waveField {
	return waveField{palette: v.Palette, size: 500, start: 50, span: 400, minCount: 5, countRange: 6, vertical: true}
}
