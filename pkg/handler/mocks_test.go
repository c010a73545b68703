package handler

import (
	"context"

	"github.com/shouni/wave-identity-kit/pkg/badge"
	"github.com/shouni/wave-identity-kit/pkg/domain"
)

// mockGenerator は generator.IdentityGenerator のテスト用モックです。
type mockGenerator struct {
	resp *domain.ImageResponse
	err  error
	reqs []domain.IdentityRequest
}

func (m *mockGenerator) GenerateIdentity(_ context.Context, req domain.IdentityRequest) (*domain.ImageResponse, error) {
	m.reqs = append(m.reqs, req)
	if m.err != nil {
		return nil, m.err
	}
	return m.resp, nil
}

// mockBadges は BadgeResolver のテスト用モックです。
type mockBadges struct {
	resp     *domain.ImageResponse
	tier     badge.Tier
	err      error
	networks []badge.Network
}

func (m *mockBadges) Badge(_ context.Context, network badge.Network, _ domain.Address) (*domain.ImageResponse, badge.Tier, error) {
	m.networks = append(m.networks, network)
	if m.err != nil {
		return nil, m.tier, m.err
	}
	return m.resp, m.tier, nil
}
