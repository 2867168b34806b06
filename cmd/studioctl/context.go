package main

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/wavehouse/studio-booking/internal/app"
	"github.com/wavehouse/studio-booking/internal/config"
	"github.com/wavehouse/studio-booking/internal/logger"
)

type appFactory func(ctx context.Context) (*app.App, error)

// commandContext builds the application lazily so --help works without a
// database.
type commandContext struct {
	factory appFactory

	once   sync.Once
	app    *app.App
	appErr error
}

func newCommandContext(factory appFactory) *commandContext {
	if factory == nil {
		factory = loadApp
	}
	return &commandContext{factory: factory}
}

func loadApp(ctx context.Context) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.JSON)
	if err != nil {
		return nil, err
	}

	return app.New(ctx, cfg, log.WithOptions(zap.IncreaseLevel(zap.WarnLevel)))
}

func (c *commandContext) ensureApp(ctx context.Context) (*app.App, error) {
	c.once.Do(func() {
		c.app, c.appErr = c.factory(ctx)
	})
	return c.app, c.appErr
}

// withTimeout bounds one command by the configured operation timeout.
func (c *commandContext) withTimeout(ctx context.Context) (context.Context, context.CancelFunc, *app.App, error) {
	a, err := c.ensureApp(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, a.Config.OperationTimeout)
	return ctx, cancel, a, nil
}

func (c *commandContext) close() error {
	if c.app == nil {
		return nil
	}
	return c.app.Close()
}
