package adapters

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// HTTPFontLoader はリクエストごとにフォントファイルを取得してフェイスを生成します。
// キャッシュは持たず、取得失敗はそのリクエストにとって致命的なエラーです。
type HTTPFontLoader struct {
	httpClient HTTPClient
	fontURL    string
	checkURL   func(string) (bool, error)
}

// NewHTTPFontLoader は HTTPFontLoader を生成します。
func NewHTTPFontLoader(httpClient HTTPClient, fontURL string) (*HTTPFontLoader, error) {
	if httpClient == nil {
		return nil, fmt.Errorf("httpClient is required")
	}
	return &HTTPFontLoader{
		httpClient: httpClient,
		fontURL:    fontURL,
		checkURL:   isSafeURL,
	}, nil
}

// Face はフォントを取得・解析し、指定サイズのフェイスを返します。
func (l *HTTPFontLoader) Face(ctx context.Context, size float64) (font.Face, error) {
	if l.fontURL == "" {
		return nil, fmt.Errorf("フォントURLが設定されていません")
	}
	if safe, err := l.checkURL(l.fontURL); err != nil || !safe {
		return nil, fmt.Errorf("安全ではないフォントURLが指定されました: %w", err)
	}

	data, err := l.httpClient.FetchBytes(ctx, l.fontURL)
	if err != nil {
		return nil, fmt.Errorf("フォントの取得に失敗しました: %w", err)
	}
	slog.DebugContext(ctx, "フォントを取得しました", "url", l.fontURL, "bytes", len(data))

	return parseFace(data, size)
}

func parseFace(data []byte, size float64) (font.Face, error) {
	otf, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("フォントの解析に失敗しました: %w", err)
	}
	face, err := opentype.NewFace(otf, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("フォントフェイスの生成に失敗しました: %w", err)
	}
	return face, nil
}
