package background

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/charlesnunot/seller-settlement-service/internal/app/setup"
	"github.com/charlesnunot/seller-settlement-service/internal/infrastructure/metrics"
)

// BackgroundTasks runs the engine's scheduled work: lot maturation, the
// overdue penalty sweep, due-date reminders, compensation detection and
// processing, transfer retries and rate refresh.
type BackgroundTasks struct {
	deps     *setup.Dependencies
	usecases *setup.UseCases
	metrics  *metrics.SettlementMetrics
	cron     *cron.Cron
}

func NewBackgroundTasks(deps *setup.Dependencies, usecases *setup.UseCases) *BackgroundTasks {
	return &BackgroundTasks{
		deps:     deps,
		usecases: usecases,
		metrics:  deps.Metrics,
		cron:     cron.New(cron.WithChain(cron.Recover(cron.DefaultLogger))),
	}
}

func (bt *BackgroundTasks) StartAll(ctx context.Context) error {
	jobs := bt.deps.Config.Jobs

	if _, err := bt.cron.AddFunc(jobs.MaturationSchedule, bt.matureLots); err != nil {
		return err
	}
	if _, err := bt.cron.AddFunc(jobs.PenaltySweepSchedule, bt.sweepOverdue); err != nil {
		return err
	}
	if _, err := bt.cron.AddFunc(jobs.DueReminderSchedule, bt.sendDueReminders); err != nil {
		return err
	}
	if _, err := bt.cron.AddFunc(jobs.CompensationSchedule, bt.runCompensations); err != nil {
		return err
	}
	if _, err := bt.cron.AddFunc(jobs.TransferRetrySchedule, bt.retryFailedTransfers); err != nil {
		return err
	}

	bt.cron.Start()
	go bt.startRateRefresh(ctx)
	go func() {
		<-ctx.Done()
		bt.cron.Stop()
	}()
	return nil
}

func (bt *BackgroundTasks) matureLots() {
	matured, err := bt.usecases.DepositUsecase.MatureLots(time.Now())
	if err != nil {
		bt.metrics.SettlementErrorsTotal.WithLabelValues("mature_lots").Inc()
		log.Printf("Lot maturation error: %v\n", err)
		return
	}
	if matured > 0 {
		bt.metrics.LotsMaturedTotal.Add(float64(matured))
		log.Printf("Lot maturation: %d lots moved to REFUNDABLE", matured)
	}
}

func (bt *BackgroundTasks) sweepOverdue() {
	out, err := bt.usecases.PenaltyUsecase.ApplyPenaltiesForOverdue(time.Now())
	if err != nil {
		bt.metrics.SettlementErrorsTotal.WithLabelValues("penalty_sweep").Inc()
		log.Printf("Penalty sweep error: %v\n", err)
		return
	}
	bt.metrics.PenaltiesAppliedTotal.Add(float64(out.Applied))
	if out.Applied > 0 || out.Failed > 0 {
		log.Printf("Penalty sweep: applied=%d skipped=%d failed=%d", out.Applied, out.Skipped, out.Failed)
	}
}

func (bt *BackgroundTasks) sendDueReminders() {
	within := time.Duration(bt.deps.Config.Jobs.DueReminderDays) * 24 * time.Hour
	notified, err := bt.usecases.ObligationUsecase.SendDueReminders(time.Now(), within)
	if err != nil {
		bt.metrics.SettlementErrorsTotal.WithLabelValues("due_reminders").Inc()
		log.Printf("Due reminder error: %v\n", err)
		return
	}
	if notified > 0 {
		log.Printf("Due reminders: %d sellers notified", notified)
	}
}

func (bt *BackgroundTasks) runCompensations() {
	limit := bt.deps.Config.Jobs.CompensationLimit

	detected, err := bt.usecases.CompensationUsecase.DetectNeeded(limit)
	if err != nil {
		bt.metrics.SettlementErrorsTotal.WithLabelValues("detect_compensations").Inc()
		log.Printf("Compensation detection error: %v\n", err)
		return
	}
	bt.metrics.CompensationsDetectedTotal.Add(float64(len(detected)))

	processed, failed, err := bt.usecases.CompensationUsecase.ProcessPending(limit)
	if err != nil {
		bt.metrics.SettlementErrorsTotal.WithLabelValues("process_compensation").Inc()
		log.Printf("Compensation processing error: %v\n", err)
		return
	}
	bt.metrics.CompensationsResolvedTotal.Add(float64(processed))
	bt.metrics.CompensationsFailedTotal.Add(float64(failed))
	if len(detected) > 0 || processed > 0 || failed > 0 {
		log.Printf("Compensations: detected=%d processed=%d failed=%d", len(detected), processed, failed)
	}
}

func (bt *BackgroundTasks) retryFailedTransfers() {
	out, err := bt.usecases.TransferUsecase.RetryBatch(bt.deps.Config.Jobs.TransferRetryLimit)
	if err != nil {
		bt.metrics.SettlementErrorsTotal.WithLabelValues("retry_transfer_batch").Inc()
		log.Printf("Transfer retry error: %v\n", err)
		return
	}
	bt.metrics.TransferRetriesTotal.WithLabelValues("succeeded").Add(float64(out.SucceededCount))
	bt.metrics.TransferRetriesTotal.WithLabelValues("failed").Add(float64(out.FailedCount))
	if out.SucceededCount > 0 || out.FailedCount > 0 {
		log.Printf("Transfer retries: succeeded=%d failed=%d", out.SucceededCount, out.FailedCount)
	}
}

func (bt *BackgroundTasks) startRateRefresh(ctx context.Context) {
	rateCfg := bt.deps.Config.RateService
	if rateCfg.BaseURL == "" {
		return
	}

	ticker := time.NewTicker(time.Duration(rateCfg.RefreshSeconds) * time.Second)
	defer ticker.Stop()

	settlementCurrency := bt.deps.Config.DepositPolicy.SettlementCurrency
	pair := rateCfg.TrackedCurrency + "/" + settlementCurrency

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rate, err := bt.deps.RateProvider.GetRate(ctx, pair)
			if err != nil {
				log.Printf("Rate refresh failed for %s: %v", pair, err)
				continue
			}
			bt.deps.Rates.SetRate(rateCfg.TrackedCurrency, rate)
			log.Printf("Rate updated: %s=%.4f", pair, rate)
		}
	}
}
