package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/wavehouse/studio-booking/internal/audit"
	"github.com/wavehouse/studio-booking/internal/cache"
	"github.com/wavehouse/studio-booking/internal/config"
	dbpkg "github.com/wavehouse/studio-booking/internal/db"
	"github.com/wavehouse/studio-booking/internal/events"
	"github.com/wavehouse/studio-booking/internal/identity"
	infraRepo "github.com/wavehouse/studio-booking/internal/infra/repository"
	"github.com/wavehouse/studio-booking/internal/monitoring"
	"github.com/wavehouse/studio-booking/internal/notify"
	ucBooking "github.com/wavehouse/studio-booking/internal/usecase/booking"
	ucContact "github.com/wavehouse/studio-booking/internal/usecase/contact"
	ucVerification "github.com/wavehouse/studio-booking/internal/usecase/verification"
)

// App owns every long-lived dependency. It is built once at startup and
// released with Close.
type App struct {
	Config *config.Config
	Log    *zap.Logger
	DB     *gorm.DB

	Store    *infraRepo.GormStore
	Provider identity.Provider
	Sender   notify.Sender
	Cache    cache.StatusCache
	Events   events.Publisher
	Audit    *audit.Dispatcher
	AuditLog *audit.Logger

	CheckClient      *ucVerification.CheckClient
	CreateSession    *ucVerification.CreateSession
	CompleteVerify   *ucVerification.Complete
	GetStatus        *ucVerification.GetStatus
	SendInstructions *ucVerification.SendInstructions

	SubmitBooking  *ucBooking.SubmitBooking
	ConfirmBooking *ucBooking.ConfirmBooking
	CancelBooking  *ucBooking.CancelBooking
	ListBookings   *ucBooking.ListBookings

	SubmitContact *ucContact.SubmitContact
}

// New opens the database and optional integrations. Redis, NATS, Kafka and
// Sentry are skipped when not configured.
func New(ctx context.Context, cfg *config.Config, log *zap.Logger) (*App, error) {
	db, err := dbpkg.NewDB(cfg, log)
	if err != nil {
		return nil, err
	}
	return NewWithDB(ctx, cfg, log, db)
}

// NewWithDB wires the application around an already migrated database and
// takes ownership of it. On failure everything opened so far, db included,
// is released.
func NewWithDB(ctx context.Context, cfg *config.Config, log *zap.Logger, db *gorm.DB) (_ *App, err error) {
	monitoring.Init()

	a := &App{Config: cfg, Log: log, DB: db}
	defer func() {
		if err != nil {
			if closeErr := a.Close(); closeErr != nil {
				log.Warn("cleanup after failed start", zap.Error(closeErr))
			}
		}
	}()

	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.Sentry.DSN,
			Environment:      cfg.Sentry.Environment,
			Release:          "studio-booking",
			TracesSampleRate: 0.2,
		}); err != nil {
			return nil, fmt.Errorf("sentry initialization failed: %w", err)
		}
		log.Info("sentry enabled", zap.String("environment", cfg.Sentry.Environment))
	}

	provider, err := identity.NewProvider(cfg.VerificationProvider)
	if err != nil {
		return nil, err
	}
	a.Provider = provider

	sender, err := notify.New(cfg, log)
	if err != nil {
		return nil, err
	}
	a.Sender = sender

	a.Cache = cache.Noop{}
	if cfg.Redis.URL != "" {
		c, err := cache.NewRedisStatusCache(ctx, cfg.Redis.URL, cfg.Redis.CacheTTL)
		if err != nil {
			return nil, err
		}
		a.Cache = c
		log.Info("status cache enabled", zap.Duration("ttl", cfg.Redis.CacheTTL))
	}

	pub, err := events.New(cfg.Events, log)
	if err != nil {
		return nil, err
	}
	a.Events = pub

	a.AuditLog = audit.New(db)
	a.Audit = audit.NewDispatcher(a.AuditLog, log)
	a.Store = infraRepo.NewGormStore(db)

	templates := notify.Templates{
		StudioName:   cfg.Studio.Name,
		ContactEmail: cfg.Admin.Email,
	}

	a.CheckClient = ucVerification.NewCheckClient(a.Store)
	a.CreateSession = ucVerification.NewCreateSession(a.Store, a.Provider, a.Cache, a.Audit, log)
	a.CompleteVerify = ucVerification.NewComplete(a.Store, a.Sender, templates, a.Cache, a.Events, a.Audit, log)
	a.GetStatus = ucVerification.NewGetStatus(a.Store, a.Cache, log)
	a.SendInstructions = ucVerification.NewSendInstructions(a.Store, a.Sender, templates, log)

	a.SubmitBooking = ucBooking.NewSubmitBooking(a.Store, a.Sender, templates, a.Cache, a.Events, a.Audit, log, cfg.Studio.Timezone)
	a.ConfirmBooking = ucBooking.NewConfirmBooking(a.Store, a.Audit, cfg.Studio.Timezone)
	a.CancelBooking = ucBooking.NewCancelBooking(a.Store, a.Audit, cfg.Studio.Timezone)
	a.ListBookings = ucBooking.NewListBookings(a.Store)

	a.SubmitContact = ucContact.NewSubmitContact(
		infraRepo.NewContactGormRepository(db),
		a.Sender,
		templates,
		cfg.Admin.Email,
		a.Audit,
		log,
	)

	return a, nil
}

// Close drains the audit queue and releases connections in reverse order of
// acquisition.
func (a *App) Close() error {
	a.Audit.Close()

	var errs []error
	if a.Events != nil {
		errs = append(errs, a.Events.Close())
	}
	if a.Cache != nil {
		errs = append(errs, a.Cache.Close())
	}
	if a.DB != nil {
		errs = append(errs, dbpkg.Close(a.DB))
	}
	if a.Config.Sentry.DSN != "" {
		sentry.Flush(2 * time.Second)
	}

	return errors.Join(errs...)
}
