// Package composer はパレットとプリミティブ列を固定サイズのシーンに組み立てます。
package composer

import (
	"github.com/shouni/wave-identity-kit/pkg/domain"
	"github.com/shouni/wave-identity-kit/pkg/seed"
)

const (
	overlayTextLimit = 7
	overlayFontSize  = 48
	overlayFontSmall = 32
	overlayEmptyText = "0"
)

// Composer はバリアントごとのレイヤー構成でシーンを組み立てます。
// 入力の検証は行わず、上流で検証済みのアドレスを前提とします。
type Composer struct {
	iconURI  string
	textFill domain.Color
}

// Option は Composer の設定を変更します。
type Option func(*Composer)

// WithIconURI はオーバーレイに描くアイコンの参照先を設定します。
func WithIconURI(uri string) Option {
	return func(c *Composer) { c.iconURI = uri }
}

// WithTextFill はオーバーレイのテキスト色を設定します。
func WithTextFill(col domain.Color) Option {
	return func(c *Composer) { c.textFill = col }
}

// NewComposer は Composer を生成します。
func NewComposer(opts ...Option) *Composer {
	c := &Composer{textFill: domain.HexColor("#ffffff")}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compose はアドレスとペイロードからシーンを組み立てます。
// レイヤーは 背景 → グラデーション → プリミティブ列 → オーバーレイ の順に並びます。
func (c *Composer) Compose(variant Variant, addr domain.Address, payload domain.Payload) (*domain.Scene, error) {
	p, ok := presets[variant]
	if !ok {
		return nil, domain.ErrUnknownVariant
	}

	s := seed.FromAddress(addr)
	pal := p.policy.Derive(addr, s)

	scene := &domain.Scene{
		Width:   p.width,
		Height:  p.height,
		Palette: pal,
		Seed:    s,
		Layers: []domain.Layer{
			p.background(pal),
			p.gradient(pal),
		},
	}

	for _, g := range p.generators(pal, float64(p.width), float64(p.height)) {
		prims := g.Generate(s, payload)
		if len(prims) == 0 {
			continue
		}
		scene.Layers = append(scene.Layers, domain.PrimitiveLayer{Primitives: prims})
	}

	if p.overlay {
		scene.Layers = append(scene.Layers, c.overlay(p, payload))
	}
	return scene, nil
}

func (c *Composer) overlay(p preset, payload domain.Payload) domain.OverlayLayer {
	text, size := OverlayText(payload)
	h := float64(p.height)
	iconSize := h - 64
	return domain.OverlayLayer{
		IconURI:  c.iconURI,
		IconBox:  domain.Rect{X: 24, Y: 32, Width: iconSize, Height: iconSize},
		Text:     text,
		TextAt:   domain.Point{X: 24 + iconSize + 20, Y: h/2 + size/3},
		FontSize: size,
		TextFill: c.textFill,
	}
}

// OverlayText はペイロード先頭7文字（無ければ "0"）とフォントサイズを返します。
// 7文字を超えるペイロードは小さいフォントで描きます。
func OverlayText(payload domain.Payload) (string, float64) {
	if !payload.Present() {
		return overlayEmptyText, overlayFontSize
	}
	runes := []rune(string(payload))
	if len(runes) > overlayTextLimit {
		return string(runes[:overlayTextLimit]), overlayFontSmall
	}
	return string(runes), overlayFontSize
}
