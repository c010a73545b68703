package composer

import (
	"github.com/shouni/wave-identity-kit/pkg/domain"
	"github.com/shouni/wave-identity-kit/pkg/palette"
	"github.com/shouni/wave-identity-kit/pkg/pattern"
)

// Variant は固定サイズのキャンバスとレイヤー構成の組み合わせです。
type Variant string

const (
	VariantWaves       Variant = "waves"
	VariantVertical    Variant = "vertical"
	VariantLines       Variant = "lines"
	VariantPhyllotaxis Variant = "phyllotaxis"
	VariantCard        Variant = "card"

	DefaultVariant = VariantWaves
)

// ParseVariant は文字列を Variant に変換します。空文字列は DefaultVariant です。
func ParseVariant(s string) (Variant, error) {
	if s == "" {
		return DefaultVariant, nil
	}
	v := Variant(s)
	if _, ok := presets[v]; !ok {
		return "", domain.ErrUnknownVariant
	}
	return v, nil
}

// Variants は利用可能なバリアントを定義順に返します。
func Variants() []Variant {
	return []Variant{VariantWaves, VariantVertical, VariantLines, VariantPhyllotaxis, VariantCard}
}

// CanvasSize はバリアントのキャンバスサイズを返します。
func CanvasSize(v Variant) (width, height int, ok bool) {
	p, ok := presets[v]
	if !ok {
		return 0, 0, false
	}
	return p.width, p.height, true
}

type preset struct {
	width      int
	height     int
	policy     palette.Policy
	background func(p domain.Palette) domain.BackgroundLayer
	gradient   func(p domain.Palette) domain.GradientLayer
	generators func(p domain.Palette, w, h float64) []pattern.Generator
	overlay    bool
}

var darkNavy = domain.HSL(220, 20, 10)

func transparent(domain.Palette) domain.BackgroundLayer {
	return domain.BackgroundLayer{Transparent: true}
}

func radial(radius float64, inner, outer float64) func(domain.Palette) domain.GradientLayer {
	return func(p domain.Palette) domain.GradientLayer {
		return domain.GradientLayer{
			Kind:   domain.GradientRadial,
			Radius: radius,
			Stops: []domain.GradientStop{
				{Offset: 0, Color: p.Secondary, Opacity: inner},
				{Offset: 1, Color: p.Primary, Opacity: outer},
			},
		}
	}
}

func linear(start, end float64) func(domain.Palette) domain.GradientLayer {
	return func(p domain.Palette) domain.GradientLayer {
		return domain.GradientLayer{
			Kind: domain.GradientLinear,
			Stops: []domain.GradientStop{
				{Offset: 0, Color: p.Primary, Opacity: start},
				{Offset: 1, Color: p.Secondary, Opacity: end},
			},
		}
	}
}

var presets = map[Variant]preset{
	VariantWaves: {
		width:  1000,
		height: 1000,
		policy: palette.FullSpectrum{},
		background: func(domain.Palette) domain.BackgroundLayer {
			return domain.BackgroundLayer{Fill: darkNavy}
		},
		gradient: radial(0.7, 0.4, 0.1),
		generators: func(p domain.Palette, _, _ float64) []pattern.Generator {
			return []pattern.Generator{pattern.HorizontalWaves{Palette: p}, pattern.Starburst{}}
		},
	},
	VariantVertical: {
		width:      500,
		height:     500,
		policy:     palette.BlueFamily{},
		background: transparent,
		gradient:   linear(0.6, 0.3),
		generators: func(p domain.Palette, _, _ float64) []pattern.Generator {
			return []pattern.Generator{pattern.VerticalWaves{Palette: p}}
		},
	},
	VariantLines: {
		width:      500,
		height:     500,
		policy:     palette.RawHex{},
		background: transparent,
		gradient:   linear(0.5, 0.2),
		generators: func(p domain.Palette, w, h float64) []pattern.Generator {
			return []pattern.Generator{pattern.AbstractLines{Palette: p, Width: w, Height: h}}
		},
	},
	VariantPhyllotaxis: {
		width:  500,
		height: 500,
		policy: palette.FullSpectrum{},
		background: func(domain.Palette) domain.BackgroundLayer {
			return domain.BackgroundLayer{Fill: darkNavy}
		},
		gradient: radial(0.7, 0.5, 0.2),
		generators: func(p domain.Palette, w, h float64) []pattern.Generator {
			return []pattern.Generator{pattern.Phyllotaxis{Palette: p, Width: w, Height: h}}
		},
	},
	VariantCard: {
		width:      420,
		height:     144,
		policy:     palette.FullSpectrum{},
		background: transparent,
		gradient:   linear(0.9, 0.9),
		generators: func(p domain.Palette, w, h float64) []pattern.Generator {
			return []pattern.Generator{pattern.AbstractLines{Palette: p, Width: w, Height: h}}
		},
		overlay: true,
	},
}
