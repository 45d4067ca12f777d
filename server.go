package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/disintegration/imaging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const shutdownTimeout = 5 * time.Second

// server renders shared links to PNG. Each request gets its own scene and
// renderer over the shared, read-only sprite catalog.
type server struct {
	cfg    *Config
	assets *Assets
	logger *log.Logger
}

func newServer(cfg *Config, assets *Assets, logger *log.Logger) *server {
	return &server{cfg: cfg, assets: assets, logger: logger}
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/bouquet.png", s.handleBouquet)
	return r
}

func (s *server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		logger := s.logger.With("request_id", middleware.GetReqID(r.Context()))

		next.ServeHTTP(ww, r.WithContext(withLogger(r.Context(), logger)))

		logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"took", time.Since(start).Round(time.Microsecond))
	})
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

// handleBouquet renders ?data= read-only, after replaying every ?tap=x,y as
// a click so notes can be shown open.
func (s *server) handleBouquet(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	payload := q.Get("data")
	if payload == "" {
		http.Error(w, "missing data parameter", http.StatusBadRequest)
		return
	}

	face, err := newNoteFace()
	if err != nil {
		http.Error(w, "font unavailable", http.StatusInternalServerError)
		return
	}
	editor := NewEditor(NewScene(s.assets, newRand(s.cfg.Seed)), NewHitTester(s.assets))
	if err := editor.Import(r.Context(), payload); err != nil {
		http.Error(w, "link corrupted", http.StatusUnprocessableEntity)
		return
	}
	for _, tap := range q["tap"] {
		x, y, err := parsePoint(tap)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		editor.PointerDown(x, y)
		editor.PointerUp()
	}

	im := flatten(editor.Render(NewRenderer(s.assets, face)), paperColor(s.cfg.Paper))
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	if err := imaging.Encode(w, im, imaging.PNG); err != nil {
		loggerFromContext(r.Context()).Warn("write png", "err", err)
	}
}

// runServe loads every sprite, then serves until ctx is cancelled.
func (a *app) runServe(ctx context.Context) error {
	logger := loggerFromContext(ctx)

	prog := newProgress(logger)
	assets := NewAssets()
	select {
	case <-assets.Load(ctx, a.cfg.AssetDir):
	case <-ctx.Done():
		return ctx.Err()
	}
	prog.done("assets ready", "dir", a.cfg.AssetDir)

	srv := &http.Server{
		Addr:              a.cfg.Listen,
		Handler:           newServer(a.cfg, assets, logger).routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", srv.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	logger.Info("server stopped")
	return nil
}
