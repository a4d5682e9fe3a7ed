package postgres

import (
	"log"

	"github.com/charlesnunot/seller-settlement-service/internal/config"
	"github.com/charlesnunot/seller-settlement-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.SettlementConfig) *gorm.DB {
	dsn := cfg.SettlementDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(
		&models.DepositLotModel{},
		&models.CommissionObligationModel{},
		&models.SellerPenaltyModel{},
		&models.SellerDebtModel{},
		&models.PaymentCompensationModel{},
		&models.TransferRecordModel{},
		&models.AuditRecordModel{},
	)

	return db
}
