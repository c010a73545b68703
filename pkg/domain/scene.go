package domain

// Point はキャンバス座標上の点です。
type Point struct {
	X float64
	Y float64
}

// PrimitiveKind は描画プリミティブの種別です。
type PrimitiveKind int

const (
	PrimitiveBezier PrimitiveKind = iota
	PrimitiveStar
	PrimitiveLine
	PrimitiveCircle
)

func (k PrimitiveKind) String() string {
	switch k {
	case PrimitiveBezier:
		return "bezier"
	case PrimitiveStar:
		return "star"
	case PrimitiveLine:
		return "line"
	case PrimitiveCircle:
		return "circle"
	default:
		return "unknown"
	}
}

// Primitive は単一の描画要素です。実装は BezierStroke, Star, Line, Circle に限られます。
type Primitive interface {
	Kind() PrimitiveKind
}

// BezierStroke は From から To への3次ベジェ曲線のストロークです。
type BezierStroke struct {
	From    Point
	C1      Point
	C2      Point
	To      Point
	Stroke  Color
	Width   float64
	Opacity float64
}

// Star は StarOutline を Scale 倍して Center に配置した塗りつぶしの星形です。
type Star struct {
	Center  Point
	Scale   float64
	Fill    Color
	Opacity float64
}

// Line は直線のストロークです。
type Line struct {
	From    Point
	To      Point
	Stroke  Color
	Width   float64
	Opacity float64
}

// Circle は塗りつぶしの円です。
type Circle struct {
	Center  Point
	Radius  float64
	Fill    Color
	Opacity float64
}

func (BezierStroke) Kind() PrimitiveKind { return PrimitiveBezier }
func (Star) Kind() PrimitiveKind         { return PrimitiveStar }
func (Line) Kind() PrimitiveKind         { return PrimitiveLine }
func (Circle) Kind() PrimitiveKind       { return PrimitiveCircle }

// StarOutline は半径10の5芒星（10頂点）の輪郭です。
var StarOutline = []Point{
	{0, -10}, {2.93, -4.04}, {9.51, -3.09}, {4.76, 1.55}, {5.88, 8.09},
	{0, 5}, {-5.88, 8.09}, {-4.76, 1.55}, {-9.51, -3.09}, {-2.93, -4.04},
}

// GradientKind はグラデーションの種別です。
type GradientKind int

const (
	GradientLinear GradientKind = iota
	GradientRadial
)

// GradientStop はグラデーションの停止点です。Offset は 0〜1 です。
type GradientStop struct {
	Offset  float64
	Color   Color
	Opacity float64
}

// LayerKind はレイヤーの種別です。
type LayerKind int

const (
	LayerBackground LayerKind = iota
	LayerGradient
	LayerPrimitives
	LayerOverlay
)

func (k LayerKind) String() string {
	switch k {
	case LayerBackground:
		return "background"
	case LayerGradient:
		return "gradient"
	case LayerPrimitives:
		return "primitives"
	case LayerOverlay:
		return "overlay"
	default:
		return "unknown"
	}
}

// Layer はシーンを構成する1層です。描画はシーン内の並び順どおりに行われます。
type Layer interface {
	LayerKind() LayerKind
}

// BackgroundLayer はキャンバス全面の単色塗りです。Transparent の場合は何も塗りません。
type BackgroundLayer struct {
	Fill        Color
	Transparent bool
}

// GradientLayer はキャンバス全面の矩形をグラデーションで塗ります。
// 線形の場合は左上から右下へ、放射の場合は中心から Radius（短辺に対する比率）まで広がります。
type GradientLayer struct {
	Kind   GradientKind
	Radius float64
	Stops  []GradientStop
}

// PrimitiveLayer は生成順に描画されるプリミティブ列です。
type PrimitiveLayer struct {
	Primitives []Primitive
}

// OverlayLayer はアイコンとテキストブロックのグループです。
type OverlayLayer struct {
	IconURI  string
	IconBox  Rect
	Text     string
	TextAt   Point
	FontSize float64
	TextFill Color
}

// Rect is an axis-aligned box.
type Rect struct {
	X, Y, Width, Height float64
}

func (BackgroundLayer) LayerKind() LayerKind { return LayerBackground }
func (GradientLayer) LayerKind() LayerKind   { return LayerGradient }
func (PrimitiveLayer) LayerKind() LayerKind  { return LayerPrimitives }
func (OverlayLayer) LayerKind() LayerKind    { return LayerOverlay }

// Scene は固定サイズのキャンバスと順序付きのレイヤー列です。
type Scene struct {
	Width   int
	Height  int
	Palette Palette
	Seed    uint64
	Layers  []Layer
}

// Primitives はシーン内の全プリミティブを描画順に返します。
func (s *Scene) Primitives() []Primitive {
	var out []Primitive
	for _, l := range s.Layers {
		if pl, ok := l.(PrimitiveLayer); ok {
			out = append(out, pl.Primitives...)
		}
	}
	return out
}
