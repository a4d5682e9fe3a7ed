package setup

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/charlesnunot/seller-settlement-service/internal/config"
	"github.com/charlesnunot/seller-settlement-service/internal/domain"
	"github.com/charlesnunot/seller-settlement-service/internal/infrastructure/directory"
	"github.com/charlesnunot/seller-settlement-service/internal/infrastructure/kafka"
	"github.com/charlesnunot/seller-settlement-service/internal/infrastructure/metrics"
	"github.com/charlesnunot/seller-settlement-service/internal/infrastructure/notifier"
	"github.com/charlesnunot/seller-settlement-service/internal/infrastructure/postgres"
	"github.com/charlesnunot/seller-settlement-service/internal/infrastructure/postgres/repository"
	"github.com/charlesnunot/seller-settlement-service/internal/infrastructure/provider"
	"github.com/charlesnunot/seller-settlement-service/internal/infrastructure/rates"
)

type Dependencies struct {
	Config       *config.SettlementConfig
	DB           *gorm.DB
	Publisher    *kafka.SettlementPublisher
	Metrics      *metrics.SettlementMetrics
	Notifier     domain.SellerNotifier
	Sellers      domain.SellerDirectory
	Refunds      domain.RefundDirectory
	Provider     domain.PaymentProvider
	Rates        *rates.RateTable
	RateProvider *rates.HTTPRateProvider
	Repositories *Repositories
}

type Repositories struct {
	LotRepo          domain.DepositLotRepository
	ObligationRepo   domain.ObligationRepository
	PenaltyRepo      domain.PenaltyRepository
	DebtRepo         domain.DebtRepository
	CompensationRepo domain.CompensationRepository
	TransferRepo     domain.TransferRepository
	AuditRepo        domain.AuditLogger
}

func InitializeDependencies(cfg *config.SettlementConfig) (*Dependencies, error) {
	db := postgres.MustInitDB(cfg)

	settlementPublisher := kafka.NewSettlementPublisher(
		[]string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)},
		"settlement-events",
	)

	repos := &Repositories{
		LotRepo:          repository.NewDefaultDepositLotRepository(db),
		ObligationRepo:   repository.NewDefaultObligationRepository(db),
		PenaltyRepo:      repository.NewDefaultPenaltyRepository(db),
		DebtRepo:         repository.NewDefaultDebtRepository(db),
		CompensationRepo: repository.NewDefaultCompensationRepository(db),
		TransferRepo:     repository.NewDefaultTransferRepository(db),
		AuditRepo:        repository.NewDefaultAuditRepository(db),
	}

	return &Dependencies{
		Config:    cfg,
		DB:        db,
		Publisher: settlementPublisher,
		Metrics:   metrics.NewSettlementMetrics(),
		Notifier: notifier.NewHTTPSellerNotifier(
			fmt.Sprintf("http://%s:%s", cfg.NotificationService.Host, cfg.NotificationService.Port),
		),
		Sellers: directory.NewHTTPSellerDirectory(
			fmt.Sprintf("http://%s:%s", cfg.SellerService.Host, cfg.SellerService.Port),
		),
		Refunds: directory.NewHTTPRefundDirectory(
			fmt.Sprintf("http://%s:%s", cfg.RefundService.Host, cfg.RefundService.Port),
		),
		Provider: provider.NewHTTPTransferClient(
			fmt.Sprintf("http://%s:%s", cfg.PaymentProvider.Host, cfg.PaymentProvider.Port),
			cfg.PaymentProvider.APIKey,
			time.Duration(cfg.PaymentProvider.TimeoutMs)*time.Millisecond,
		),
		Rates:        rates.NewRateTable(cfg.DepositPolicy.SettlementCurrency, nil),
		RateProvider: rates.NewHTTPRateProvider(cfg.RateService.BaseURL),
		Repositories: repos,
	}, nil
}
