package bootstrap

import (
	"context"
	"log/slog"

	"foodies-api/internal/notifier"
	"foodies-api/internal/pkg/clock"
	"foodies-api/internal/pkg/config"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

var NotifierModule = fx.Module("notifier",
	fx.Provide(
		NewMailer,
		fx.Annotate(
			notifier.NewPgJobStore,
			fx.As(new(notifier.JobStore)),
		),
		NewNotifierWorker,
	),
	fx.Invoke(StartNotifier),
)

func NewMailer(cfg config.Config) notifier.Mailer {
	return notifier.NewSMTPMailer(cfg.SMTP, cfg.Notify)
}

func NewNotifierWorker(store notifier.JobStore, mailer notifier.Mailer, clk clock.Clock, cfg config.Config, logger *slog.Logger) *notifier.Worker {
	return notifier.NewWorker(store, mailer, clk, cfg.Notify, logger)
}

// StartNotifier runs the delivery worker for the process lifetime and
// schedules the daily purge of terminal jobs.
func StartNotifier(lc fx.Lifecycle, worker *notifier.Worker, cfg config.Config, logger *slog.Logger) error {
	workerCtx, cancel := context.WithCancel(context.Background())

	scheduler := cron.New()
	_, err := scheduler.AddFunc(cfg.Notify.PurgeSchedule, func() {
		if purgeErr := worker.Purge(context.Background()); purgeErr != nil {
			logger.Error("notification purge failed", "error", purgeErr)
		}
	})
	if err != nil {
		cancel()
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go worker.Run(workerCtx)
			scheduler.Start()
			logger.Info("notification worker started",
				"poll_interval", cfg.Notify.PollInterval, "purge_schedule", cfg.Notify.PurgeSchedule)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()
			select {
			case <-scheduler.Stop().Done():
			case <-ctx.Done():
			}
			return nil
		},
	})

	return nil
}
