package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/alexanderramin/physio/internal/config"
	"github.com/alexanderramin/physio/internal/db"
	"github.com/alexanderramin/physio/internal/domain"
	"github.com/alexanderramin/physio/internal/logging"
	"github.com/alexanderramin/physio/internal/plan"
	"github.com/alexanderramin/physio/internal/repository"
	"github.com/alexanderramin/physio/internal/service"
	"github.com/alexanderramin/physio/internal/timer"
)

type OpenParams struct {
	// ConfigPath overrides the default config file location.
	ConfigPath string
	// Tee receives a copy of every log record (--verbose).
	Tee io.Writer
}

// Open loads configuration, sets up logging, opens the database and loads
// the tracker. It does nothing when a tracker is already wired.
func (a *App) Open(ctx context.Context, p OpenParams) error {
	if a.Tracker != nil {
		return nil
	}

	cfg, err := config.Load(p.ConfigPath)
	if err != nil {
		return err
	}
	a.Config = cfg

	logger, logCloser, err := logging.Setup(logging.SetupParams{
		File:       cfg.Log.File,
		Level:      cfg.Log.Level,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		Compress:   cfg.Log.Compress,
		Tee:        p.Tee,
	})
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	a.Logger = logger
	a.closers = append(a.closers, logCloser)

	workout, err := loadPlan(cfg.PlanPath)
	if err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	a.closers = append(a.closers, database)

	tracker := service.NewTrackerService(
		workout,
		repository.NewSQLiteKV(database),
		repository.NewSQLiteActivityRepo(database),
		db.NewSQLiteUnitOfWork(database),
		service.WithLogger(logger),
		service.WithObserver(service.NewLogUseCaseObserver(logger)),
	)
	if err := tracker.Load(ctx); err != nil {
		return fmt.Errorf("loading completion state: %w", err)
	}
	a.Tracker = tracker

	logger.InfoContext(ctx, "app_opened",
		"db", cfg.DBPath,
		"plan", planSource(cfg.PlanPath),
		"days", workout.Len(),
	)
	return nil
}

// Close releases the database and the log file, newest first.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

func loadPlan(path string) (*domain.Plan, error) {
	if path == "" {
		return plan.Default()
	}
	p, err := plan.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading plan %s: %w", path, err)
	}
	return p, nil
}

func planSource(path string) string {
	if path == "" {
		return "bundled"
	}
	return path
}

// notifier builds the countdown notifier for the configured sound mode.
func (a *App) notifier(w io.Writer) timer.Notifier {
	if a.NewNotifier != nil {
		return a.NewNotifier(w)
	}
	switch a.timerConfig().Sound {
	case config.SoundBell:
		return timer.BellNotifier{W: w}
	case config.SoundTone:
		return timer.NewToneNotifier()
	case config.SoundOff:
		return timer.NoopNotifier{}
	default:
		return timer.MultiNotifier{timer.BellNotifier{W: w}, timer.NewToneNotifier()}
	}
}

// newMachine builds a timer machine from the timer configuration.
func (a *App) newMachine(w io.Writer, opts ...timer.Option) *timer.Machine {
	tc := a.timerConfig()
	policy := timer.StartOnSelect
	if tc.OnSelect == config.OnSelectSet {
		policy = timer.SetOnly
	}
	base := []timer.Option{
		timer.WithDefaultDuration(tc.DefaultSeconds),
		timer.WithSelectPolicy(policy),
		timer.WithNotifier(a.notifier(w)),
		timer.WithLogger(a.logger()),
	}
	return timer.New(append(base, opts...)...)
}
