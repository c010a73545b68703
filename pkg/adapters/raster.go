package adapters

import (
	"context"
	"fmt"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/shouni/wave-identity-kit/pkg/domain"
	"github.com/shouni/wave-identity-kit/pkg/imgutil"
	"github.com/shouni/wave-identity-kit/pkg/palette"
)

// RasterRenderer はシーンを gg でラスタライズし、PNG または JPEG で返します。
type RasterRenderer struct {
	fonts  FontSource
	images ImageSource
}

// NewRasterRenderer は RasterRenderer を生成します。
// fonts と images はオーバーレイを持つシーンでのみ使われるため nil を許容します。
func NewRasterRenderer(fonts FontSource, images ImageSource) *RasterRenderer {
	return &RasterRenderer{fonts: fonts, images: images}
}

// Render はシーンを描画してエンコードします。
func (r *RasterRenderer) Render(ctx context.Context, scene *domain.Scene, format domain.OutputFormat) ([]byte, string, error) {
	if format == domain.FormatSVG {
		return nil, "", fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, format)
	}
	dc := gg.NewContext(scene.Width, scene.Height)

	for _, layer := range scene.Layers {
		if err := r.drawLayer(ctx, dc, scene, layer); err != nil {
			return nil, "", fmt.Errorf("%s レイヤーの描画に失敗しました: %w", layer.LayerKind(), err)
		}
	}

	data, mime, err := imgutil.Encode(dc.Image(), format)
	if err != nil {
		return nil, "", fmt.Errorf("画像のエンコードに失敗しました: %w", err)
	}
	return data, mime, nil
}

func (r *RasterRenderer) drawLayer(ctx context.Context, dc *gg.Context, scene *domain.Scene, layer domain.Layer) error {
	switch l := layer.(type) {
	case domain.BackgroundLayer:
		if l.Transparent {
			return nil
		}
		c, err := palette.ToRGBA(l.Fill)
		if err != nil {
			return err
		}
		dc.SetColor(c)
		dc.Clear()
	case domain.GradientLayer:
		return drawGradient(dc, scene, l)
	case domain.PrimitiveLayer:
		for _, p := range l.Primitives {
			if err := drawPrimitive(dc, p); err != nil {
				return err
			}
		}
	case domain.OverlayLayer:
		return r.drawOverlay(ctx, dc, l)
	default:
		return fmt.Errorf("未対応のレイヤー: %T", layer)
	}
	return nil
}

func drawGradient(dc *gg.Context, scene *domain.Scene, l domain.GradientLayer) error {
	w, h := float64(scene.Width), float64(scene.Height)

	var grad gg.Gradient
	switch l.Kind {
	case domain.GradientRadial:
		// SVG と同じく、割合指定の半径は正規化した対角線の長さを基準にする
		radius := l.Radius * math.Hypot(w, h) / math.Sqrt2
		grad = gg.NewRadialGradient(w/2, h/2, 0, w/2, h/2, radius)
	default:
		grad = gg.NewLinearGradient(0, 0, w, h)
	}
	for _, stop := range l.Stops {
		c, err := palette.WithOpacity(stop.Color, stop.Opacity)
		if err != nil {
			return err
		}
		grad.AddColorStop(stop.Offset, c)
	}

	dc.DrawRectangle(0, 0, w, h)
	dc.SetFillStyle(grad)
	dc.Fill()
	return nil
}

func drawPrimitive(dc *gg.Context, p domain.Primitive) error {
	switch v := p.(type) {
	case domain.BezierStroke:
		c, err := palette.WithOpacity(v.Stroke, v.Opacity)
		if err != nil {
			return err
		}
		dc.MoveTo(v.From.X, v.From.Y)
		dc.CubicTo(v.C1.X, v.C1.Y, v.C2.X, v.C2.Y, v.To.X, v.To.Y)
		dc.SetLineCap(gg.LineCapButt)
		stroke(dc, c, v.Width)
	case domain.Line:
		c, err := palette.WithOpacity(v.Stroke, v.Opacity)
		if err != nil {
			return err
		}
		dc.MoveTo(v.From.X, v.From.Y)
		dc.LineTo(v.To.X, v.To.Y)
		dc.SetLineCap(gg.LineCapRound)
		stroke(dc, c, v.Width)
	case domain.Star:
		c, err := palette.WithOpacity(v.Fill, v.Opacity)
		if err != nil {
			return err
		}
		for i, pt := range domain.StarOutline {
			x, y := v.Center.X+pt.X*v.Scale, v.Center.Y+pt.Y*v.Scale
			if i == 0 {
				dc.MoveTo(x, y)
			} else {
				dc.LineTo(x, y)
			}
		}
		dc.ClosePath()
		dc.SetColor(c)
		dc.Fill()
	case domain.Circle:
		c, err := palette.WithOpacity(v.Fill, v.Opacity)
		if err != nil {
			return err
		}
		dc.DrawCircle(v.Center.X, v.Center.Y, v.Radius)
		dc.SetColor(c)
		dc.Fill()
	default:
		return fmt.Errorf("未対応のプリミティブ: %T", p)
	}
	return nil
}

func stroke(dc *gg.Context, c color.Color, width float64) {
	dc.SetColor(c)
	dc.SetLineWidth(width)
	dc.Stroke()
}

func (r *RasterRenderer) drawOverlay(ctx context.Context, dc *gg.Context, l domain.OverlayLayer) error {
	if l.IconURI != "" {
		if r.images == nil {
			return fmt.Errorf("アイコンの読み込み先が設定されていません")
		}
		icon, err := r.images.LoadImage(ctx, l.IconURI, int(l.IconBox.Width), int(l.IconBox.Height))
		if err != nil {
			return err
		}
		// 収めた結果が枠より小さい場合は枠の中央に寄せる
		b := icon.Bounds()
		x := int(l.IconBox.X) + (int(l.IconBox.Width)-b.Dx())/2
		y := int(l.IconBox.Y) + (int(l.IconBox.Height)-b.Dy())/2
		dc.DrawImage(icon, x, y)
	}

	if l.Text == "" {
		return nil
	}
	if r.fonts == nil {
		return fmt.Errorf("フォントの取得先が設定されていません")
	}
	face, err := r.fonts.Face(ctx, l.FontSize)
	if err != nil {
		return err
	}
	defer face.Close()

	c, err := palette.ToRGBA(l.TextFill)
	if err != nil {
		return err
	}
	dc.SetFontFace(face)
	dc.SetColor(c)
	dc.DrawString(l.Text, l.TextAt.X, l.TextAt.Y)
	return nil
}
