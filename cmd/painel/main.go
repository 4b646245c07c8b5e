package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/xxxsen/common/logger"
	"github.com/xxxsen/common/logutil"
	"github.com/xxxsen/common/webapi"
	"go.uber.org/zap"

	"github.com/atendemei/painel/internal/config"
	"github.com/atendemei/painel/internal/db"
	"github.com/atendemei/painel/internal/filestore"
	"github.com/atendemei/painel/internal/handler"
	"github.com/atendemei/painel/internal/job"
	"github.com/atendemei/painel/internal/mail"
	"github.com/atendemei/painel/internal/middleware"
	"github.com/atendemei/painel/internal/repo"
	"github.com/atendemei/painel/internal/resetcode"
	"github.com/atendemei/painel/internal/schedule"
	"github.com/atendemei/painel/internal/service"
	"github.com/atendemei/painel/internal/session"
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "painel",
		Short: "atendemei site backend",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run the api server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				return fmt.Errorf("--config is required")
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			logger.Init(
				cfg.LogConfig.File,
				cfg.LogConfig.Level,
				int(cfg.LogConfig.FileCount),
				int(cfg.LogConfig.FileSize),
				int(cfg.LogConfig.KeepDays),
				cfg.LogConfig.Console,
			)
			logutil.GetLogger(context.Background()).Info("config loaded", zap.String("config", configPath))

			conn, err := db.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			if err := db.ApplyMigrations(conn); err != nil {
				return fmt.Errorf("migrations: %w", err)
			}
			return runServer(cfg, conn)
		},
	}

	runCmd.Flags().StringVar(&configPath, "config", "", "path to config.json")
	rootCmd.AddCommand(runCmd)

	if err := rootCmd.Execute(); err != nil {
		logutil.GetLogger(context.Background()).Fatal("startup error", zap.Error(err))
	}
}

func runServer(cfg *config.Config, conn *sql.DB) error {
	logutil.GetLogger(context.Background()).Info(
		"starting server",
		zap.Int("port", cfg.Port),
		zap.String("file_store", cfg.FileStore.Type),
	)

	userRepo := repo.NewUserRepo(conn)
	postRepo := repo.NewPostRepo(conn)

	sessionTTL := time.Hour * time.Duration(cfg.Session.TTLHours)
	sessions := session.NewStore(cfg.Session.MaxSessions, sessionTTL)
	codes := resetcode.NewStore()
	sender := mail.NewSender(cfg.Mail)

	store, err := filestore.New(cfg.FileStore)
	if err != nil {
		return fmt.Errorf("init file store: %w", err)
	}

	authService := service.NewAuthService(userRepo, sessions, []byte(cfg.Session.Secret), sessionTTL)
	postService := service.NewPostService(postRepo, store)
	resetService := service.NewResetService(userRepo, codes, sender)
	contactService := service.NewContactService(sender, cfg.Mail)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := authService.SeedAdmin(ctx, cfg.Admin); err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}

	scheduler := schedule.NewCronScheduler()
	if err := scheduler.AddJob(job.NewResetSweepJob(codes, time.Hour), "*/30 * * * *"); err != nil {
		return err
	}
	scheduler.Start(ctx)
	defer scheduler.Stop()

	deps := handler.RouterDeps{
		Auth:          handler.NewAuthHandler(authService),
		Posts:         handler.NewPostHandler(postService),
		Reset:         handler.NewResetHandler(resetService),
		Contact:       handler.NewContactHandler(contactService),
		Uploads:       handler.NewUploadHandler(store),
		Authenticator: authService,
	}

	engine, err := webapi.NewEngine(
		"/",
		fmt.Sprintf("0.0.0.0:%d", cfg.Port),
		webapi.WithRegister(func(group *gin.RouterGroup) {
			handler.RegisterRoutes(group, deps)
		}),
		webapi.WithExtraMiddlewares(
			middleware.RequestID(),
			middleware.CORS(nil),
			gzip.Gzip(gzip.DefaultCompression),
		),
	)
	if err != nil {
		return fmt.Errorf("init web engine: %w", err)
	}
	logutil.GetLogger(context.Background()).Info("http server listening", zap.String("addr", fmt.Sprintf("0.0.0.0:%d", cfg.Port)))

	go func() {
		if err := engine.Run(); err != nil && err != http.ErrServerClosed {
			logutil.GetLogger(context.Background()).Error("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logutil.GetLogger(context.Background()).Info("server stopping...")
	return nil
}
