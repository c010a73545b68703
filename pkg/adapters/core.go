package adapters

import (
	"context"
	"fmt"
	"image"
	"io"
	"net"
	"net/url"

	"golang.org/x/image/font"
)

// HTTPClient は URL からデータを取得するためのインターフェースです。
// httpkit.Client がこれを満たします。
type HTTPClient interface {
	FetchBytes(ctx context.Context, url string) ([]byte, error)
}

// AssetReader はアセット（アイコン・バッジ画像）を読み出すためのインターフェースです。
// remoteio.InputReader がこれを満たすため、ローカルパスに加えて gs:// と s3:// も扱えます。
type AssetReader interface {
	Open(ctx context.Context, uri string) (io.ReadCloser, error)
}

// FontSource は指定サイズのフォントフェイスを提供します。
type FontSource interface {
	Face(ctx context.Context, size float64) (font.Face, error)
}

// ImageSource は URI の画像を指定の矩形に収めて返します。
type ImageSource interface {
	LoadImage(ctx context.Context, uri string, width, height int) (image.Image, error)
}

// isSafeURL は SSRF 対策として URL を検証します。
// 名前解決されたすべての IP アドレスに対してプライベート IP チェックを行います。
func isSafeURL(rawURL string) (bool, error) {
	parsedURL, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return false, fmt.Errorf("URLパース失敗: %w", err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return false, fmt.Errorf("不許可スキーム: %s", parsedURL.Scheme)
	}

	host := parsedURL.Hostname()
	var ips []net.IP

	// 1. IPアドレスが直接指定されているか確認
	if ip := net.ParseIP(host); ip != nil {
		ips = []net.IP{ip}
	} else {
		// 2. ホスト名の場合、すべての IP を取得する
		resolvedIPs, err := net.LookupIP(host)
		if err != nil {
			return false, fmt.Errorf("名前解決失敗: %w", err)
		}
		ips = resolvedIPs
	}

	if len(ips) == 0 {
		return false, fmt.Errorf("IPが見つかりません")
	}

	for _, ip := range ips {
		if ip.IsPrivate() || ip.IsLoopback() || ip.IsLinkLocalUnicast() || ip.IsLinkLocalMulticast() {
			return false, fmt.Errorf("制限されたネットワークへのアクセスを検知: %s", ip.String())
		}
	}

	return true, nil
}
