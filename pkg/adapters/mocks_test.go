package adapters

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// mockHTTPClient は HTTPClient のテスト用モックなのだ。
type mockHTTPClient struct {
	mu        sync.Mutex
	fetchFunc func(ctx context.Context, url string) ([]byte, error)
	calls     []string
}

func (m *mockHTTPClient) FetchBytes(ctx context.Context, url string) ([]byte, error) {
	m.mu.Lock()
	m.calls = append(m.calls, url)
	m.mu.Unlock()
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, url)
	}
	return nil, errors.New("not implemented")
}

// mockReader は AssetReader のテスト用モックなのだ。URI ごとに中身を返すのだ。
type mockReader struct {
	files map[string][]byte
}

func (m *mockReader) Open(_ context.Context, uri string) (io.ReadCloser, error) {
	data, ok := m.files[uri]
	if !ok {
		return nil, errors.New("not found: " + uri)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

// mockFontSource は FontSource のテスト用モックなのだ。basicfont を返すのだ。
type mockFontSource struct {
	err   error
	sizes []float64
}

func (m *mockFontSource) Face(_ context.Context, size float64) (font.Face, error) {
	m.sizes = append(m.sizes, size)
	if m.err != nil {
		return nil, m.err
	}
	return basicfont.Face7x13, nil
}

// mockChainReader は ChainReader のテスト用モックなのだ。
type mockChainReader struct {
	balance  *big.Int
	callOut  []byte
	err      error
	lastCall *ethereum.CallMsg
	closed   bool
}

func (m *mockChainReader) BalanceAt(_ context.Context, _ common.Address, _ *big.Int) (*big.Int, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.balance, nil
}

func (m *mockChainReader) CallContract(_ context.Context, msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	m.lastCall = &msg
	if m.err != nil {
		return nil, m.err
	}
	return m.callOut, nil
}

func (m *mockChainReader) Close() { m.closed = true }

// newTestPNG は単色の PNG を作るのだ。
func newTestPNG(w, h int, c color.Color) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}
