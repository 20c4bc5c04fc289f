package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"passwordStrengthBackend/internal/config"
	"passwordStrengthBackend/internal/core/domain"
	"passwordStrengthBackend/internal/core/service"
	"passwordStrengthBackend/internal/pkg/metrics"
	"passwordStrengthBackend/internal/platform/cli"
	"passwordStrengthBackend/internal/platform/web"
	"passwordStrengthBackend/internal/port"
)

func main() {
	godotenv.Load()
	cfg := config.Load()

	serve := flag.Bool("serve", false, "start the HTTP API instead of the interactive CLI")
	demo := flag.Bool("demo", false, "analyze a fixed set of example passwords")
	showPassword := flag.Bool("show-password", false, "echo the password in demo output")
	noColor := flag.Bool("no-color", false, "disable ANSI colors")
	flag.Parse()

	settings := service.Settings{
		MaxPasswordLength:    cfg.MaxPasswordLength,
		MinRecommendedLength: cfg.MinRecommendedLength,
	}
	collector := metrics.NewCollector()

	if *serve {
		runServer(cfg, settings, collector)
		return
	}

	// CLI mode keeps stdout clean for the rendered report.
	analyzer := service.NewAnalyzerService(settings, collector, metrics.NewNopReporter())
	renderer := cli.NewRenderer(os.Stdout, !*noColor)

	if *demo {
		runDemo(analyzer, renderer, *showPassword)
		return
	}
	runInteractive(analyzer, renderer)
}

func runServer(cfg *config.Config, settings service.Settings, collector *metrics.Collector) {
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.SentryDSN}); err != nil {
			log.Fatal(err)
		}
		defer sentry.Flush(5 * time.Second)
	}

	reporter, err := metrics.NewReporter()
	if err != nil {
		log.Fatal(err)
	}
	defer reporter.Sync()

	analyzer := service.NewAnalyzerService(settings, collector, reporter)
	handler := web.NewWebHandler(analyzer, collector)

	gin.SetMode(cfg.GinMode)
	router := web.NewRouter(handler, reporter.Logger())

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}).Handler(router)

	reporter.Record("starting server", zap.String("addr", cfg.Addr()))
	if err := http.ListenAndServe(cfg.Addr(), corsHandler); err != nil {
		sentry.CaptureException(err)
		log.Fatal(err)
	}
}

func runDemo(analyzer port.AnalyzerService, renderer *cli.Renderer, showPassword bool) {
	demos, err := analyzer.Demo(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	renderer.RenderDemo(demos, showPassword)
}

func runInteractive(analyzer port.AnalyzerService, renderer *cli.Renderer) {
	fmt.Println("Password Strength Analyzer")
	fmt.Println("This tool estimates password entropy and brute force resistance.")
	fmt.Println("Your password is not stored or logged.")
	fmt.Println()

	for {
		password, err := cli.PromptPassword("Enter password to analyze: ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		result, err := analyzer.Analyze(context.Background(), password)
		if errors.Is(err, domain.ErrPasswordTooLong) {
			fmt.Fprintln(os.Stderr, "Password exceeds the maximum supported length, try again.")
			continue
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		renderer.RenderAnalysis(result)
		return
	}
}
