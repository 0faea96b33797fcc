// Command archglob-server exposes archive globbing over HTTP.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	opentracing "github.com/opentracing/opentracing-go"
	zipkin "github.com/openzipkin/zipkin-go-opentracing"
	"github.com/pkg/errors"

	"github.com/retro-framework/go-archglob/framework"
	"github.com/retro-framework/go-archglob/framework/archglob"
	"github.com/retro-framework/go-archglob/framework/config"
	"github.com/retro-framework/go-archglob/framework/matcher"
	"github.com/retro-framework/go-archglob/framework/once"
	"github.com/retro-framework/go-archglob/framework/projections"
	"github.com/retro-framework/go-archglob/framework/types"
)

const onceTTL = 24 * time.Hour

func main() {
	cfg, err := config.NewFlags("archglob-server").Parse(os.Args[1:])
	if err != nil {
		framework.NewLogrus(os.Stderr, "error").Error(err)
		os.Exit(2)
	}

	var log = framework.NewLogrus(os.Stderr, cfg.Log.Level)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, cfg, log); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, log types.Logger) error {

	if cfg.Zipkin.URL != "" {
		collector, err := zipkin.NewHTTPCollector(cfg.Zipkin.URL)
		if err != nil {
			return errors.Wrap(err, "can't create zipkin collector")
		}
		defer collector.Close()

		tracer, err := zipkin.NewTracer(
			zipkin.NewRecorder(collector, false, cfg.Listen, "archglob-server"),
		)
		if err != nil {
			return errors.Wrap(err, "can't create zipkin tracer")
		}
		opentracing.SetGlobalTracer(tracer)
	}

	excludes, err := matcher.CompileExcludes(cfg.Glob.Excludes)
	if err != nil {
		return err
	}

	var store once.Store = once.NewMemoryStore()
	if cfg.Redis.Addr != "" {
		rs, err := once.NewRedisStore(cfg.Redis.Addr, onceTTL)
		if err != nil {
			return err
		}
		defer rs.Close()
		store = rs
	}

	observer, err := newObserver(ctx, cfg, log)
	if err != nil {
		return err
	}

	var srv = server{
		glob: archglob.New(archglob.Options{
			Scheme:    cfg.Glob.Scheme,
			Extension: cfg.Glob.Extension,
			Logger:    log,
			Excludes:  excludes,
		}),
		once:     once.New(store),
		observer: observer,
		log:      log,
	}

	s := &http.Server{
		Addr:           cfg.Listen,
		Handler:        newRouter(srv, os.Stdout),
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.Shutdown(shutdownCtx)
	}()

	log.Infof("archglob-server listening on %s (scheme %s, extension %s)", cfg.Listen, cfg.Glob.Scheme, cfg.Glob.Extension)
	if err := s.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func newObserver(ctx context.Context, cfg config.Config, log types.Logger) (projections.Observer, error) {
	var obs projections.Multi
	if cfg.Influx.Addr != "" {
		inf, err := projections.NewInflux(cfg.Influx.Addr, cfg.Influx.Database, cfg.Glob.Scheme, log)
		if err != nil {
			return nil, err
		}
		obs = append(obs, inf)
	}
	if cfg.Elastic.URL != "" {
		es, err := projections.NewElastic(ctx, cfg.Elastic.URL, cfg.Elastic.Index, log)
		if err != nil {
			return nil, err
		}
		obs = append(obs, es)
	}
	if len(obs) == 0 {
		return projections.Noop{}, nil
	}
	return obs, nil
}
