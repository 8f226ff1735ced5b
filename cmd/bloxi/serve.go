package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/bloxi-go/bloxi/internal/config"
	"github.com/bloxi-go/bloxi/pkg/bloxi"
	"github.com/bloxi-go/bloxi/pkg/middleware"
	"github.com/bloxi-go/bloxi/pkg/publish"
	"github.com/bloxi-go/bloxi/pkg/render"
	"github.com/bloxi-go/bloxi/pkg/router"
	"github.com/bloxi-go/bloxi/pkg/style"
)

// shutdownTimeout bounds how long in-flight requests get on exit.
const shutdownTimeout = 5 * time.Second

func serveCmd(opts *options) *cobra.Command {
	var (
		port      int
		host      string
		base      string
		pretty    bool
		doPublish bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the preview server",
		Long: `Run a preview server for the bloxi demo site.

Every page is rendered into a fresh document with the media-query
stylesheet injected once. Request metrics are served at the configured
metrics path and the stylesheet itself at /bloxi.css.

Examples:
  bloxi serve
  bloxi serve --port=8080 --base=/app
  bloxi serve --publish`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}

			// Apply command-line overrides
			if port > 0 {
				cfg.Server.Port = port
			}
			if host != "" {
				cfg.Server.Host = host
			}
			if base != "" {
				cfg.Server.Base = base
			}
			if pretty {
				cfg.Page.Pretty = true
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			return runServe(cmd.Context(), cmd.OutOrStdout(), cfg, doPublish)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from bloxi.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from bloxi.json)")
	cmd.Flags().StringVar(&base, "base", "", "Base path the site is mounted under")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent rendered HTML")
	cmd.Flags().BoolVar(&doPublish, "publish", false, "Publish the stylesheet to the configured target on start")

	return cmd
}

func runServe(ctx context.Context, out io.Writer, cfg *config.Config, doPublish bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := slog.Default()

	handler, sheet, err := newServer(cfg, logger)
	if err != nil {
		return err
	}

	if doPublish {
		res, err := publishSheet(ctx, cfg, sheet)
		if err != nil {
			return err
		}
		logger.Info("stylesheet published", "key", res.Key, "location", res.Location)
	}

	srv := &http.Server{
		Addr:              cfg.Address(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	printBanner(out)
	fmt.Fprintln(out, "  serve")
	fmt.Fprintln(out)
	success(out, "Listening on %s", cfg.URL())
	if cfg.Server.MetricsPath != "" {
		info(out, "Metrics at http://%s%s", cfg.Address(), cfg.Server.MetricsPath)
	}

	select {
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	fmt.Fprintln(out, "\n  Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// assetsPath is where disk-published files are served: the publish prefix
// as a path, "/assets" by default.
func assetsPath(cfg *config.Config) string {
	prefix := strings.Trim(cfg.Publish.Prefix, "/")
	if prefix == "" {
		prefix = strings.Trim(config.DefaultPublishPrefix, "/")
	}
	return "/" + prefix
}

// newServer builds the preview handler: the demo site under the configured
// base, plus metrics, a health check, the raw stylesheet and the files
// published to disk.
func newServer(cfg *config.Config, logger *slog.Logger) (http.Handler, *style.Sheet, error) {
	sheet := style.NewSheet(sheetBreakpoints(cfg))
	app := bloxi.NewApp(
		bloxi.WithStrict(cfg.StrictMode()),
		bloxi.WithSheet(sheet),
		bloxi.WithLogger(logger.With("component", "bloxi")),
	)

	site := router.New(router.Config{
		Base: cfg.Server.Base,
		Document: render.DocumentConfig{
			Title:       cfg.Page.Title,
			Lang:        cfg.Page.Lang,
			StyleSheets: cfg.Page.StyleSheets,
		},
		Renderer: render.RendererConfig{Pretty: cfg.Page.Pretty},
		App:      app,
		Logger:   logger.With("component", "router"),
	})

	httpLogger := logger.With("component", "http")
	site.Use(middleware.Recover(httpLogger), middleware.Logger(httpLogger))
	site.Use(middleware.Prometheus())
	if cfg.Server.Tracing {
		name := cfg.Name
		if name == "" {
			name = "bloxi"
		}
		site.Use(middleware.OpenTelemetry(middleware.WithTracerName(name)))
	}
	if err := registerDemo(site); err != nil {
		return nil, nil, err
	}

	mux := chi.NewRouter()
	mux.Use(middleware.Canonical(httpLogger))
	if cfg.Server.MetricsPath != "" {
		mux.Handle(cfg.Server.MetricsPath, promhttp.Handler())
	}
	mux.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		io.WriteString(w, "ok")
	})
	mux.Get("/bloxi.css", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
		io.WriteString(w, sheet.CSS())
	})
	if cfg.Publish.Target == config.TargetDisk {
		mux.Mount(assetsPath(cfg), publish.Handler(cfg.PublishDir()))
	}
	mux.Mount("/", site)

	return mux, sheet, nil
}
