// Package palette はシードから主色・副色を導出するポリシー群です。
package palette

import (
	"github.com/shouni/wave-identity-kit/pkg/domain"
)

// Policy はアドレスとシードからパレットを導出する方針です。
type Policy interface {
	Name() string
	Derive(addr domain.Address, seed uint64) domain.Palette
}

// FullSpectrum は色相環全体を使う方針です。副色は主色から60°ずらします。
type FullSpectrum struct{}

func (FullSpectrum) Name() string { return "full-spectrum" }

func (FullSpectrum) Derive(_ domain.Address, seed uint64) domain.Palette {
	hue := float64(seed % 360)
	return domain.Palette{
		Primary:   domain.HSL(hue, 70, 50),
		Secondary: domain.HSL(float64((seed%360+60)%360), 80, 60),
	}
}

// BlueFamily は主色を 180〜240° の寒色帯に制限する方針です。
// 副色は主色 +20° で丸めないため、描画時に 360 で折り返す必要があります。
type BlueFamily struct{}

func (BlueFamily) Name() string { return "blue-family" }

func (BlueFamily) Derive(_ domain.Address, seed uint64) domain.Palette {
	hue := float64(180 + seed%60)
	return domain.Palette{
		Primary:   domain.HSL(hue, 70, 50),
		Secondary: domain.HSL(hue+20, 80, 60),
	}
}

// RawHex はアドレスの16進数字をそのまま色にする方針です。
// 主色は 0x 直後の6桁、副色はそれに続く6桁です。
type RawHex struct{}

func (RawHex) Name() string { return "raw-hex" }

func (RawHex) Derive(addr domain.Address, _ uint64) domain.Palette {
	s := string(addr)
	return domain.Palette{
		Primary:   domain.HexColor("#" + s[2:8]),
		Secondary: domain.HexColor("#" + s[8:14]),
	}
}
