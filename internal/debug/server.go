// internal/debug/server.go
package debug

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"go-treehouse/internal/app"
	"go-treehouse/internal/event"
)

// Store keeps the last published design for the HTTP goroutine. The
// game loop writes it through OnEvent, handlers only read.
type Store struct {
	design atomic.Pointer[app.Design]
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) OnEvent(e event.Event) {
	if d, ok := e.Data.(app.Design); ok {
		s.design.Store(&d)
	}
}

// Design возвращает последний опубликованный снимок.
func (s *Store) Design() (app.Design, bool) {
	d := s.design.Load()
	if d == nil {
		return app.Design{}, false
	}
	return *d, true
}

// NewRouter собирает маршруты отладочного сервера.
func NewRouter(store *Store) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintln(w, "ok")
	})
	r.Get("/design", func(w http.ResponseWriter, r *http.Request) {
		d, ok := store.Design()
		if !ok {
			http.Error(w, "no design published yet", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := app.EncodeDesign(w, d); err != nil {
			log.Printf("debug: %v", err)
		}
	})
	r.Mount("/debug", middleware.Profiler())

	return r
}

// Serve runs the debug server until ctx is cancelled.
func Serve(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("debug: shutdown: %v", err)
		}
	}()

	log.Printf("debug server listening on http://%s", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("debug server: %w", err)
	}
	return nil
}
