// Package handler は識別画像とバッジの HTTP エンドポイントを提供します。
package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shouni/wave-identity-kit/pkg/badge"
	"github.com/shouni/wave-identity-kit/pkg/domain"
	"github.com/shouni/wave-identity-kit/pkg/generator"
	"github.com/shouni/wave-identity-kit/pkg/imgutil"
)

const (
	headerIdentitySeed = "X-Identity-Seed"
	headerBadgeTier    = "X-Badge-Tier"
	immutableCache     = "public, max-age=86400, immutable"
)

// BadgeResolver はアドレスとネットワークからバッジ画像を解決します。
type BadgeResolver interface {
	Badge(ctx context.Context, network badge.Network, addr domain.Address) (*domain.ImageResponse, badge.Tier, error)
}

// Handler は HTTP リクエストを生成器とバッジ解決に振り分けます。
type Handler struct {
	identity generator.IdentityGenerator
	badges   BadgeResolver
}

// NewHandler は Handler を生成します。
func NewHandler(identity generator.IdentityGenerator, badges BadgeResolver) (*Handler, error) {
	if identity == nil {
		return nil, fmt.Errorf("identity generator is required")
	}
	// badges は nil を許容（/api/badge を公開しない）
	return &Handler{identity: identity, badges: badges}, nil
}

type identityQuery struct {
	Address string `form:"address" binding:"required,eth_addr"`
	Data    string `form:"data"`
	Variant string `form:"variant"`
	Format  string `form:"format"`
}

type badgeQuery struct {
	Address string `form:"address" binding:"required,eth_addr"`
	Network string `form:"network"`
	Format  string `form:"format"`
}

// Identity は GET /api/identity を処理します。
func (h *Handler) Identity(c *gin.Context) {
	var q identityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, domain.ErrInvalidAddress)
		return
	}
	format, err := domain.ParseOutputFormat(q.Format)
	if err != nil {
		writeError(c, fmt.Errorf("%w: %s", err, q.Format))
		return
	}

	resp, err := h.identity.GenerateIdentity(c.Request.Context(), domain.IdentityRequest{
		Address: domain.Address(q.Address),
		Payload: domain.Payload(q.Data),
		Variant: q.Variant,
		Format:  format,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.Header(headerIdentitySeed, strconv.FormatInt(resp.UsedSeed, 10))
	c.Header("Cache-Control", immutableCache)
	c.Data(http.StatusOK, resp.MimeType, resp.Data)
}

// Badge は GET /api/badge を処理します。
func (h *Handler) Badge(c *gin.Context) {
	var q badgeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, domain.ErrInvalidAddress)
		return
	}
	network, err := badge.ParseNetwork(q.Network)
	if err != nil {
		writeError(c, err)
		return
	}
	// バッジは静的なラスター画像なので SVG では返せない
	format, err := domain.ParseOutputFormat(q.Format)
	if err == nil && format == domain.FormatSVG {
		err = domain.ErrUnsupportedFormat
	}
	if err != nil {
		writeError(c, fmt.Errorf("%w: %s", err, q.Format))
		return
	}

	resp, tier, err := h.badges.Badge(c.Request.Context(), network, domain.Address(q.Address))
	if err != nil {
		writeError(c, err)
		return
	}

	data, mimeType := resp.Data, resp.MimeType
	if format == domain.FormatJPEG {
		if data, err = imgutil.CompressToJPEG(resp.Data, imgutil.JPEGQuality); err != nil {
			writeError(c, fmt.Errorf("バッジ画像の変換に失敗しました: %w", err))
			return
		}
		mimeType = "image/jpeg"
	}

	c.Header(headerBadgeTier, string(tier))
	c.Data(http.StatusOK, mimeType, data)
}

// Health は GET /healthz を処理します。
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// writeError はエラーの種類に応じて 400 の JSON か 500 のプレーンテキストを返します。
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidAddress):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": domain.ErrInvalidAddress.Error()})
	case errors.Is(err, domain.ErrUnknownVariant),
		errors.Is(err, domain.ErrUnknownNetwork),
		errors.Is(err, domain.ErrUnsupportedFormat):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		slog.ErrorContext(c.Request.Context(), "リクエストの処理に失敗しました",
			"path", c.Request.URL.Path,
			"request_id", c.GetString(ctxRequestID),
			"error", err,
		)
		internalError(c)
	}
}

func internalError(c *gin.Context) {
	c.Abort()
	c.String(http.StatusInternalServerError, "Internal server error")
}
