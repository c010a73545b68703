package adapters

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"
	"github.com/shouni/wave-identity-kit/pkg/domain"
	"github.com/shouni/wave-identity-kit/pkg/palette"
)

const gradientID = "gradient"

// AssetBytesSource はアセットを生のバイト列で返します。
type AssetBytesSource interface {
	ReadBytes(ctx context.Context, uri string) ([]byte, error)
}

// SVGRenderer はシーンを SVG 文書として書き出します。
// オーバーレイのテキストはフォントを埋め込まず font-family で指定します。
type SVGRenderer struct {
	assets     AssetBytesSource
	fontFamily string
}

// NewSVGRenderer は SVGRenderer を生成します。
func NewSVGRenderer(assets AssetBytesSource, fontFamily string) *SVGRenderer {
	if fontFamily == "" {
		fontFamily = "sans-serif"
	}
	return &SVGRenderer{assets: assets, fontFamily: fontFamily}
}

// Render はシーンを SVG にします。format は FormatSVG のみ受け付けます。
func (r *SVGRenderer) Render(ctx context.Context, scene *domain.Scene, format domain.OutputFormat) ([]byte, string, error) {
	if format != domain.FormatSVG {
		return nil, "", fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, format)
	}

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Startview(scene.Width, scene.Height, 0, 0, scene.Width, scene.Height)

	for _, layer := range scene.Layers {
		if err := r.writeLayer(ctx, canvas, scene, layer); err != nil {
			return nil, "", fmt.Errorf("%s レイヤーの書き出しに失敗しました: %w", layer.LayerKind(), err)
		}
	}

	canvas.End()
	return buf.Bytes(), "image/svg+xml", nil
}

func (r *SVGRenderer) writeLayer(ctx context.Context, canvas *svg.SVG, scene *domain.Scene, layer domain.Layer) error {
	switch l := layer.(type) {
	case domain.BackgroundLayer:
		if l.Transparent {
			return nil
		}
		fill, err := palette.HexString(l.Fill)
		if err != nil {
			return err
		}
		canvas.Rect(0, 0, scene.Width, scene.Height, "fill:"+fill)
	case domain.GradientLayer:
		stops := make([]svg.Offcolor, 0, len(l.Stops))
		for _, s := range l.Stops {
			c, err := palette.HexString(s.Color)
			if err != nil {
				return err
			}
			stops = append(stops, svg.Offcolor{Offset: uint8(math.Round(s.Offset * 100)), Color: c, Opacity: s.Opacity})
		}
		canvas.Def()
		if l.Kind == domain.GradientRadial {
			pct := uint8(math.Round(l.Radius * 100))
			canvas.RadialGradient(gradientID, 50, 50, pct, 50, 50, stops)
		} else {
			canvas.LinearGradient(gradientID, 0, 0, 100, 100, stops)
		}
		canvas.DefEnd()
		canvas.Rect(0, 0, scene.Width, scene.Height, "fill:url(#"+gradientID+")")
	case domain.PrimitiveLayer:
		for _, p := range l.Primitives {
			if err := writePrimitive(canvas, p); err != nil {
				return err
			}
		}
	case domain.OverlayLayer:
		return r.writeOverlay(ctx, canvas, l)
	default:
		return fmt.Errorf("未対応のレイヤー: %T", layer)
	}
	return nil
}

func writePrimitive(canvas *svg.SVG, p domain.Primitive) error {
	switch v := p.(type) {
	case domain.BezierStroke:
		c, err := palette.HexString(v.Stroke)
		if err != nil {
			return err
		}
		d := fmt.Sprintf("M%s,%s C%s,%s %s,%s %s,%s",
			num(v.From.X), num(v.From.Y), num(v.C1.X), num(v.C1.Y),
			num(v.C2.X), num(v.C2.Y), num(v.To.X), num(v.To.Y))
		canvas.Path(d, strokeStyle(c, v.Width, v.Opacity))
	case domain.Line:
		c, err := palette.HexString(v.Stroke)
		if err != nil {
			return err
		}
		d := fmt.Sprintf("M%s,%s L%s,%s", num(v.From.X), num(v.From.Y), num(v.To.X), num(v.To.Y))
		canvas.Path(d, strokeStyle(c, v.Width, v.Opacity)+";stroke-linecap:round")
	case domain.Star:
		c, err := palette.HexString(v.Fill)
		if err != nil {
			return err
		}
		var sb strings.Builder
		for i, pt := range domain.StarOutline {
			if i == 0 {
				sb.WriteString("M")
			} else {
				sb.WriteString(" L")
			}
			sb.WriteString(num(pt.X) + "," + num(pt.Y))
		}
		sb.WriteString(" Z")
		canvas.Path(sb.String(),
			fmt.Sprintf(`transform="translate(%s, %s) scale(%s)"`, num(v.Center.X), num(v.Center.Y), num(v.Scale)),
			fillStyle(c, v.Opacity))
	case domain.Circle:
		c, err := palette.HexString(v.Fill)
		if err != nil {
			return err
		}
		r := v.Radius
		d := fmt.Sprintf("M%s,%s a%s,%s 0 1,0 %s,0 a%s,%s 0 1,0 %s,0",
			num(v.Center.X-r), num(v.Center.Y), num(r), num(r), num(2*r), num(r), num(r), num(-2*r))
		canvas.Path(d, fillStyle(c, v.Opacity))
	default:
		return fmt.Errorf("未対応のプリミティブ: %T", p)
	}
	return nil
}

func (r *SVGRenderer) writeOverlay(ctx context.Context, canvas *svg.SVG, l domain.OverlayLayer) error {
	if l.IconURI != "" {
		if r.assets == nil {
			return fmt.Errorf("アイコンの読み込み先が設定されていません")
		}
		data, err := r.assets.ReadBytes(ctx, l.IconURI)
		if err != nil {
			return err
		}
		link := "data:" + http.DetectContentType(data) + ";base64," + base64.StdEncoding.EncodeToString(data)
		canvas.Image(int(l.IconBox.X), int(l.IconBox.Y), int(l.IconBox.Width), int(l.IconBox.Height), link)
	}
	if l.Text != "" {
		c, err := palette.HexString(l.TextFill)
		if err != nil {
			return err
		}
		canvas.Text(int(l.TextAt.X), int(l.TextAt.Y), l.Text,
			fmt.Sprintf("fill:%s;font-size:%spx;font-family:%s", c, num(l.FontSize), r.fontFamily))
	}
	return nil
}

func strokeStyle(c string, width, opacity float64) string {
	return fmt.Sprintf("fill:none;stroke:%s;stroke-width:%s;stroke-opacity:%s", c, num(width), num(opacity))
}

func fillStyle(c string, opacity float64) string {
	return fmt.Sprintf("fill:%s;fill-opacity:%s", c, num(opacity))
}

// num は座標を小数点以下3桁までの最短表記にします。
func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64)
}
