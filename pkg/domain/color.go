package domain

import (
	"fmt"
	"strconv"
)

// Color は HSL（彩度・明度はパーセント）または RGB の16進表記のどちらかを保持します。
// Hex が空でなければ16進表記が優先されます。
type Color struct {
	Hue        float64
	Saturation float64
	Lightness  float64
	Hex        string
}

// HSL は HSL 形式の Color を生成します。
func HSL(hue, saturation, lightness float64) Color {
	return Color{Hue: hue, Saturation: saturation, Lightness: lightness}
}

// HexColor は "#rrggbb" 形式の Color を生成します。
func HexColor(hex string) Color {
	return Color{Hex: hex}
}

// IsHex reports whether the color carries a raw hex triple.
func (c Color) IsHex() bool {
	return c.Hex != ""
}

// String は CSS 互換の表記を返します（例: "hsl(96, 70%, 50%)"）。
func (c Color) String() string {
	if c.IsHex() {
		return c.Hex
	}
	return fmt.Sprintf("hsl(%s, %s%%, %s%%)", formatNumber(c.Hue), formatNumber(c.Saturation), formatNumber(c.Lightness))
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Palette は生成に使う主色・副色の組です。
type Palette struct {
	Primary   Color
	Secondary Color
}
