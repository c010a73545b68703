// Package pattern はシードから描画プリミティブ列を合成するジェネレーター群です。
// すべてのジェネレーターはシードとペイロードだけに依存する純粋関数で、
// 同じ入力には常に同じ列を返します。
package pattern

import (
	"github.com/shouni/wave-identity-kit/pkg/domain"
	"github.com/shouni/wave-identity-kit/pkg/utils"
)

// Generator はパターンジェネレーターの共通契約です。
type Generator interface {
	Name() string
	Generate(seed uint64, payload domain.Payload) []domain.Primitive
}

// Spread は count 個の点を start から span の範囲に等間隔で並べたときの i 番目の位置を返します。
// count が 1 以下の場合は範囲の中央を返します。
func Spread(i, count int, start, span float64) float64 {
	if count <= 1 {
		return start + span/2
	}
	return start + float64(i)*span/float64(count-1)
}

// tailCount はペイロード末尾2桁の16進数を個数として読み、[1, max] に収めます。
// 1文字のペイロードはその1桁を読みます。読めない場合は def を使います。
func tailCount(payload domain.Payload, def, max int) int {
	n := def
	if s := string(payload); s != "" {
		if len(s) > 2 {
			s = s[len(s)-2:]
		}
		if v, ok := utils.ParseLeadingHex(s); ok {
			n = int(v)
		}
	}
	return clampCount(n, 1, max)
}

func clampCount(n, min, max int) int {
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}

// pick は添字の偶奇で主色・副色を交互に返します。
func pick(p domain.Palette, i int) domain.Color {
	if i%2 == 0 {
		return p.Primary
	}
	return p.Secondary
}
