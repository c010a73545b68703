package handler

import (
	"github.com/gin-gonic/gin"
)

// NewRouter はミドルウェアとルートを設定した gin.Engine を返します。
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), RequestLogger(), Recovery())

	r.GET("/healthz", Health)
	api := r.Group("/api")
	api.GET("/identity", h.Identity)
	if h.badges != nil {
		api.GET("/badge", h.Badge)
	}
	return r
}
