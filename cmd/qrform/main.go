package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/dmitrymomot/qrform/pkg/config"
	"github.com/dmitrymomot/qrform/pkg/httpserver"
	"github.com/dmitrymomot/qrform/pkg/logger"
	"github.com/dmitrymomot/qrform/pkg/qrcode"
	"github.com/dmitrymomot/qrform/pkg/requestid"
	"github.com/dmitrymomot/qrform/web"
)

type appConfig struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	Name     string `env:"APP_NAME" envDefault:"qrform"`
	LogLevel string `env:"LOG_LEVEL"`
}

func main() {
	var (
		app    appConfig
		httpc  httpserver.Config
		webCfg web.Config
	)
	for _, load := range []func() error{
		func() error { return config.Load(&app) },
		func() error { return config.Load(&httpc) },
		func() error { return config.Load(&webCfg) },
	} {
		if err := load(); err != nil {
			log.Fatalf("load config: %v", err)
		}
	}

	l := logger.New(
		logger.WithEnvironment(app.Env, app.Name),
		logger.WithLevelName(app.LogLevel),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	encMetrics, err := qrcode.NewMetrics(reg)
	if err != nil {
		l.Error("register encoder metrics", logger.Error(err))
		os.Exit(1)
	}
	httpMetrics, err := web.NewHTTPMetrics(reg)
	if err != nil {
		l.Error("register http metrics", logger.Error(err))
		os.Exit(1)
	}

	tr, err := web.NewTranslator(ctx, webCfg.DefaultLang, l)
	if err != nil {
		l.Error("load translations", logger.Error(err))
		os.Exit(1)
	}

	svc := web.NewService(
		qrcode.NewEncoder(qrcode.WithMetrics(encMetrics)),
		tr,
		web.WithServiceLogger(l),
		web.WithDefaultText(webCfg.DefaultText),
	)
	router := web.NewRouter(web.RouterDeps{
		Service:    svc,
		Translator: tr,
		Logger:     l,
		Gatherer:   reg,
		Metrics:    httpMetrics,
	})

	srv := httpserver.NewFromConfig(httpc, httpserver.WithLogger(l))
	if err := srv.Run(ctx, router); err != nil {
		l.Error("server stopped", logger.Error(err))
		os.Exit(1)
	}
}
