package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shouni/go-http-kit/pkg/httpkit"
	"github.com/shouni/go-remote-io/pkg/gcsfactory"
	"github.com/shouni/go-remote-io/pkg/remoteio"
	"github.com/shouni/go-remote-io/pkg/s3factory"
	"github.com/shouni/wave-identity-kit/pkg/adapters"
	"github.com/shouni/wave-identity-kit/pkg/badge"
	"github.com/shouni/wave-identity-kit/pkg/composer"
	"github.com/shouni/wave-identity-kit/pkg/config"
	"github.com/shouni/wave-identity-kit/pkg/generator"
	"github.com/shouni/wave-identity-kit/pkg/handler"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("サーバーが異常終了しました", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})))
	gin.SetMode(gin.ReleaseMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reader, closer, err := newAssetReader(ctx, cfg.IconURI, cfg.BadgeAssetDir)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	router, err := buildRouter(cfg, reader)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("サーバーを起動します", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("サーバーを停止します")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newAssetReader はアセットの置き場所に応じた remoteio.InputReader を返します。
// gs:// か s3:// を含む場合だけクラウドのクライアントを初期化します。
func newAssetReader(ctx context.Context, uris ...string) (remoteio.InputReader, io.Closer, error) {
	for _, uri := range uris {
		var (
			factory remoteio.IOFactory
			err     error
		)
		switch {
		case remoteio.IsGCSURI(uri):
			factory, err = gcsfactory.New(ctx)
		case remoteio.IsS3URI(uri):
			factory, err = s3factory.New(ctx)
		default:
			continue
		}
		if err != nil {
			return nil, nil, err
		}
		reader, err := factory.InputReader()
		if err != nil {
			factory.Close()
			return nil, nil, err
		}
		return reader, factory, nil
	}
	return remoteio.NewUniversalInputReader(nil, nil), nil, nil
}

func buildRouter(cfg *config.Config, reader remoteio.InputReader) (http.Handler, error) {
	assets, err := adapters.NewAssetStore(reader)
	if err != nil {
		return nil, err
	}

	var fonts adapters.FontSource
	if cfg.FontURL != "" {
		fonts, err = adapters.NewHTTPFontLoader(httpkit.New(cfg.HTTPTimeout), cfg.FontURL)
		if err != nil {
			return nil, err
		}
	} else {
		slog.Warn("FONT_URL が未設定のため card バリアントは描画できません")
	}

	core, err := generator.NewIdentityCore(
		composer.NewComposer(composer.WithIconURI(cfg.IconURI)),
		adapters.NewRasterRenderer(fonts, assets),
		adapters.NewSVGRenderer(assets, ""),
		generator.NewImageCache(cfg.CacheSize, cfg.CacheTTL),
	)
	if err != nil {
		return nil, err
	}

	if len(cfg.Networks) == 0 {
		slog.Warn("RPC_URL_<NETWORK> が未設定のため、バッジは常に最下位ティアになります")
	}
	balances := adapters.NewEthBalanceClient(cfg.Networks, cfg.RPCTimeout, adapters.DialEthClient)
	badges, err := badge.NewResolver(balances, assets, cfg.BadgeAssetDir)
	if err != nil {
		return nil, err
	}

	h, err := handler.NewHandler(core, badges)
	if err != nil {
		return nil, err
	}
	return handler.NewRouter(h), nil
}
