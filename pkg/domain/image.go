package domain

// OutputFormat はレスポンス画像の形式です。
type OutputFormat string

const (
	FormatPNG  OutputFormat = "png"
	FormatJPEG OutputFormat = "jpeg"
	FormatSVG  OutputFormat = "svg"
)

// ParseOutputFormat は文字列を OutputFormat に変換します。空文字列は PNG として扱います。
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case "", FormatPNG:
		return FormatPNG, nil
	case FormatJPEG, "jpg":
		return FormatJPEG, nil
	case FormatSVG:
		return FormatSVG, nil
	}
	return "", ErrUnsupportedFormat
}

// IdentityRequest はアドレスから識別画像を生成する要求です。
type IdentityRequest struct {
	Address Address
	Payload Payload
	Variant string
	Format  OutputFormat
}

// ImageResponse は生成された画像データとそのメタデータです。
type ImageResponse struct {
	Data     []byte
	MimeType string
	UsedSeed int64 // アドレス由来のシード。32bit を超えても欠落しないよう int64
}
