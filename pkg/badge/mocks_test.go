package badge

import (
	"context"
	"errors"
	"math/big"

	"github.com/shouni/wave-identity-kit/pkg/domain"
)

// mockQuerier は BalanceQuerier のテスト用モックです。
type mockQuerier struct {
	value   *big.Float
	err     error
	calls   int
	network string
}

func (m *mockQuerier) Balance(_ context.Context, network string, _ domain.Address) (*big.Float, error) {
	m.calls++
	m.network = network
	return m.value, m.err
}

// mockAssets は AssetReader のテスト用モックです。
type mockAssets struct {
	files map[string][]byte
	read  []string
}

func (m *mockAssets) ReadBytes(_ context.Context, uri string) ([]byte, error) {
	m.read = append(m.read, uri)
	data, ok := m.files[uri]
	if !ok {
		return nil, errors.New("not found: " + uri)
	}
	return data, nil
}
