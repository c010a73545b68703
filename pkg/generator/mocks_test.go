package generator

import (
	"context"
	"sync"

	"github.com/shouni/wave-identity-kit/pkg/composer"
	"github.com/shouni/wave-identity-kit/pkg/domain"
)

// mockComposer は SceneComposer のテスト用モックです。
type mockComposer struct {
	calls int
	err   error
}

func (m *mockComposer) Compose(v composer.Variant, addr domain.Address, payload domain.Payload) (*domain.Scene, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return composer.NewComposer().Compose(v, addr, payload)
}

// mockRenderer は SceneRenderer のテスト用モックです。
type mockRenderer struct {
	data     []byte
	mimeType string
	err      error
	formats  []domain.OutputFormat
	scenes   []*domain.Scene
}

func (m *mockRenderer) Render(_ context.Context, scene *domain.Scene, format domain.OutputFormat) ([]byte, string, error) {
	m.formats = append(m.formats, format)
	m.scenes = append(m.scenes, scene)
	if m.err != nil {
		return nil, "", m.err
	}
	return m.data, m.mimeType, nil
}

// mockCache は ImageCacher のテスト用モックです。
type mockCache struct {
	mu   sync.Mutex
	data map[string]*domain.ImageResponse
}

func (m *mockCache) Get(key string) (*domain.ImageResponse, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok
}

func (m *mockCache) Add(key string, value *domain.ImageResponse) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return false
}
