package palette

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/shouni/wave-identity-kit/pkg/domain"
)

// WrapHue は色相を [0, 360) に折り返します。
func WrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// ToRGBA は domain.Color を不透明な RGBA に変換します。
func ToRGBA(c domain.Color) (color.RGBA, error) {
	var cc colorful.Color
	if c.IsHex() {
		parsed, err := colorful.Hex(c.Hex)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("不正な16進カラー %q: %w", c.Hex, err)
		}
		cc = parsed
	} else {
		cc = colorful.Hsl(WrapHue(c.Hue), clamp01(c.Saturation/100), clamp01(c.Lightness/100))
	}
	r, g, b := cc.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// WithOpacity は不透明度を掛けた非乗算の NRGBA を返します。
func WithOpacity(c domain.Color, opacity float64) (color.NRGBA, error) {
	rgba, err := ToRGBA(c)
	if err != nil {
		return color.NRGBA{}, err
	}
	return color.NRGBA{R: rgba.R, G: rgba.G, B: rgba.B, A: uint8(math.Round(clamp01(opacity) * 255))}, nil
}

// HexString は "#rrggbb" 表記を返します。SVG 出力で使います。
func HexString(c domain.Color) (string, error) {
	if c.IsHex() {
		return c.Hex, nil
	}
	rgba, err := ToRGBA(c)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B), nil
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
