package providers

import (
	"context"
	"errors"
	"net/http"

	"github.com/samber/do/v2"

	"github.com/flowerlibrary/flower-server/internal/api"
	"github.com/flowerlibrary/flower-server/internal/config"
	"github.com/flowerlibrary/flower-server/internal/logger"
	"github.com/flowerlibrary/flower-server/internal/ratelimit"
	"github.com/flowerlibrary/flower-server/internal/service"
)

// WriteLimiterHandle wraps the per-client write limiter with Shutdownable.
// Limiter is nil when limiting is disabled.
type WriteLimiterHandle struct {
	Limiter *ratelimit.KeyedRateLimiter
}

// Shutdown implements do.Shutdownable.
func (h *WriteLimiterHandle) Shutdown() error {
	if h.Limiter != nil {
		h.Limiter.Stop()
	}
	return nil
}

// ProvideWriteLimiter provides the limiter applied to mutating API requests.
func ProvideWriteLimiter(i do.Injector) (*WriteLimiterHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	if cfg.RateLimit.WritesPerMinute == 0 {
		log.Info("Write rate limiting disabled by configuration")
		return &WriteLimiterHandle{}, nil
	}

	limiter := ratelimit.New(ratelimit.PerMinute(cfg.RateLimit.WritesPerMinute), cfg.RateLimit.Burst, ratelimit.DefaultIdleTTL)
	return &WriteLimiterHandle{Limiter: limiter}, nil
}

// HTTPServerHandle wraps http.Server with Shutdownable.
type HTTPServerHandle struct {
	*http.Server
}

// Shutdown implements do.Shutdownable.
func (h *HTTPServerHandle) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return h.Server.Shutdown(ctx)
}

// ProvideHTTPServer provides the HTTP server.
func ProvideHTTPServer(i do.Injector) (*HTTPServerHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	limiterHandle := do.MustInvoke[*WriteLimiterHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	services := &api.Services{
		Library: do.MustInvoke[*service.LibraryService](i),
		Persons: do.MustInvoke[*service.PersonService](i),
		Search:  do.MustInvoke[*service.SearchService](i),
	}

	handler := api.NewServer(storeHandle.Store, services, api.Options{
		StaticDir:    cfg.Server.StaticDir,
		CORSOrigins:  cfg.Server.CORSOrigins,
		WriteLimiter: limiterHandle.Limiter,
	}, log.Component("http"))

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start in background
	go func() {
		log.Info("HTTP server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("HTTP server error", "error", err)
		}
	}()

	if cfg.Server.StaticDir != "" {
		log.Info("Serving front-end", "dir", cfg.Server.StaticDir)
	}

	return &HTTPServerHandle{Server: srv}, nil
}
