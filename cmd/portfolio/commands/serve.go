package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
)

func serveCmd(opts *options) *cobra.Command {
	var (
		dir  string
		addr string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a site directory (index.html and data/*.json) for local development",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !fileExists(dir) {
				return fmt.Errorf("site directory %s not found", dir)
			}

			server := &http.Server{
				Addr:              addr,
				Handler:           newSiteRouter(dir),
				ReadHeaderTimeout: 5 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				opts.logger.Printf("serving %s on http://%s", dir, addr)
				errCh <- server.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				return server.Shutdown(shutdownCtx)
			}
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "site", "site directory to serve")
	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8080", "listen address")
	return cmd
}

// newSiteRouter serves dir as static files. JSON under data/ is sent
// uncached so edits show up on reload.
func newSiteRouter(dir string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	files := http.FileServer(http.Dir(dir))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Route("/data", func(r chi.Router) {
		r.Use(middleware.NoCache)
		r.Handle("/*", files)
	})
	r.Handle("/*", files)
	return r
}
