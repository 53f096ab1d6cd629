package main

import (
	"context"
	stdlog "log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"

	"github.com/lastzone/support-bot/internal/bot"
	appConfig "github.com/lastzone/support-bot/internal/config"
	configHandler "github.com/lastzone/support-bot/internal/config/handler"
	healthHandler "github.com/lastzone/support-bot/internal/http-server/handlers/health"
	mwLogger "github.com/lastzone/support-bot/internal/http-server/middleware/logger"
	"github.com/lastzone/support-bot/internal/lib/logger/handlers/slogpretty"
	"github.com/lastzone/support-bot/internal/lib/logger/sl"
	"github.com/lastzone/support-bot/internal/recorder"
	"github.com/lastzone/support-bot/internal/storage/postgres"
	s3storage "github.com/lastzone/support-bot/internal/storage/s3"
	"github.com/lastzone/support-bot/internal/storage/supabase"
	"github.com/lastzone/support-bot/internal/uploader"
)

const (
	envLocal = "local"
	envDev   = "dev"
)

func main() {
	if err := godotenv.Load(); err != nil {
		stdlog.Println("No .env file found, skipping...")
	}

	cfg := appConfig.MustLoad()

	log := setupLogger(cfg.Env)
	log.Info("starting lastzone support bot", slog.String("env", cfg.Env))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	supabaseClient := supabase.New(cfg.Supabase.URL, cfg.Supabase.Key, cfg.Supabase.Bucket)

	var store recorder.Store = supabaseClient
	if cfg.Recorder.Backend == appConfig.RecorderBackendPostgres {
		pg, err := postgres.New(ctx, cfg.Recorder.DatabaseDSN)
		if err != nil {
			log.Error("failed to init postgres store", sl.Err(err))
			os.Exit(1)
		}
		defer pg.Close()
		store = pg
	}

	var objectStore uploader.ObjectStore = supabaseClient
	if cfg.Storage.Driver == appConfig.StorageDriverS3 {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
			awsconfig.WithRegion(cfg.Storage.S3.Region),
			awsconfig.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(cfg.Storage.S3.AccessKey, cfg.Storage.S3.SecretKey, ""),
			),
		)
		if err != nil {
			log.Error("failed to load aws config", sl.Err(err))
			os.Exit(1)
		}

		s3Client := awss3.NewFromConfig(awsCfg, func(o *awss3.Options) {
			o.BaseEndpoint = aws.String(cfg.Storage.S3.Endpoint)
			o.UsePathStyle = true
		})

		objectStore = s3storage.New(cfg.Storage.S3.Bucket, cfg.Storage.S3.PublicBaseURL, s3Client)
	}

	rec := recorder.New(store, log)
	up := uploader.New(objectStore)

	api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		log.Error("failed to init telegram bot api", sl.Err(err))
		os.Exit(1)
	}
	log.Info("authorized on telegram", slog.String("username", api.Self.UserName))

	b := bot.New(bot.NewTelegramTransport(api), rec, up, log)

	go runHealthServer(cfg, log)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = cfg.Telegram.PollTimeoutSec
	updates := api.GetUpdatesChan(u)

	log.Info("bot is polling")
	b.Run(ctx, updates)

	api.StopReceivingUpdates()
	log.Info("bot stopped")
}

func runHealthServer(cfg *appConfig.Config, log *slog.Logger) {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(mwLogger.New(log))
	router.Use(middleware.Recoverer)

	router.Get("/healthz", healthHandler.Healthz())
	router.Get("/status", healthHandler.Status(cfg.Env, time.Now()))
	router.Get("/config", configHandler.New(*cfg, log).GetConfig())

	log.Info("starting health server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	if err := srv.ListenAndServe(); err != nil {
		log.Error("health server stopped", sl.Err(err))
	}
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	handler := opts.NewPrettyHandler(os.Stdout)

	return slog.New(handler)
}

func setupLogger(env string) *slog.Logger {
	switch env {
	case envLocal:
		return setupPrettySlog()
	case envDev:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
}
