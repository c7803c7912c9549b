// Package server wires configuration, storage, services, and the HTTP
// transport together and owns the process lifecycle.
package server

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/dberestov/taskdeck/internal/logging"
	"github.com/dberestov/taskdeck/internal/server/auth"
	"github.com/dberestov/taskdeck/internal/server/config"
	"github.com/dberestov/taskdeck/internal/server/docstore"
	"github.com/dberestov/taskdeck/internal/server/httpapi"
	"github.com/dberestov/taskdeck/internal/server/tasks"
	"github.com/dberestov/taskdeck/internal/server/users"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	userService *users.Service
	taskService *tasks.Service
	tokens      *auth.TokenService
}

func NewApp(cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.NewJSONHandler(os.Stdout, nil))

	if cfg.SecretKey == config.DefaultSecretKey {
		logger.Warn(context.Background(),
			"using the default signing secret; set TASKDECK_SECRET in production. "+
				"Changing the secret invalidates all outstanding sessions.")
	}

	tokens := auth.NewTokenService([]byte(cfg.SecretKey), cfg.TokenValidity)

	// each store owns its document exclusively
	userStore := docstore.New(filepath.Join(cfg.DataDir, "users.json"))
	taskStore := docstore.New(filepath.Join(cfg.DataDir, "todos.json"))

	us := users.NewService(users.NewFileRepository(userStore), tokens)
	ts := tasks.NewService(tasks.NewFileRepository(taskStore))

	return &App{
		config:      cfg,
		logger:      logger,
		userService: us,
		taskService: ts,
		tokens:      tokens,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := httpapi.NewServer(app.config.Addr, app.logger, app.userService, app.taskService, app.tokens, app.config.StaticDir)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
