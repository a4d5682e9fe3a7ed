package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type SettlementConfig struct {
	Env                 string `yaml:"env"`
	HTTPServer          `yaml:"http_server"`
	SettlementDB        `yaml:"settlement_db"`
	LogConfig           `yaml:"log_config"`
	KafkaService        `yaml:"kafka-service"`
	PaymentProvider     `yaml:"payment-provider"`
	NotificationService `yaml:"notification-service"`
	SellerService       `yaml:"seller-service"`
	RefundService       `yaml:"refund-service"`
	RateService         `yaml:"rate-service"`
	DepositPolicy       `yaml:"deposit_policy"`
	Jobs                `yaml:"jobs"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type SettlementDB struct {
	Dsn string `yaml:"dsn"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

type KafkaService struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type PaymentProvider struct {
	Host      string `yaml:"host"`
	Port      string `yaml:"port"`
	APIKey    string `yaml:"api_key" env:"PAYMENT_PROVIDER_API_KEY"`
	TimeoutMs int    `yaml:"timeout_ms" env-default:"5000"`
}

type NotificationService struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type SellerService struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type RefundService struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type RateService struct {
	BaseURL         string `yaml:"base_url"`
	RefreshSeconds  int    `yaml:"refresh_seconds" env-default:"300"`
	TrackedCurrency string `yaml:"tracked_currency" env-default:"EUR"`
}

type DepositPolicy struct {
	// FreeCollateralAllowance - exposure a seller may carry before a deposit
	// lot is required.
	FreeCollateralAllowance float64 `yaml:"free_collateral_allowance" env-default:"1000"`
	HoldingPeriodDays       int     `yaml:"holding_period_days" env-default:"30"`
	SettlementCurrency      string  `yaml:"settlement_currency" env-default:"USD"`
}

type Jobs struct {
	MaturationSchedule    string `yaml:"maturation_schedule" env-default:"*/5 * * * *"`
	PenaltySweepSchedule  string `yaml:"penalty_sweep_schedule" env-default:"0 * * * *"`
	DueReminderSchedule   string `yaml:"due_reminder_schedule" env-default:"0 9 * * *"`
	CompensationSchedule  string `yaml:"compensation_schedule" env-default:"*/15 * * * *"`
	TransferRetrySchedule string `yaml:"transfer_retry_schedule" env-default:"*/10 * * * *"`
	CompensationLimit     int    `yaml:"compensation_limit" env-default:"100"`
	TransferRetryLimit    int    `yaml:"transfer_retry_limit" env-default:"50"`
	DueReminderDays       int    `yaml:"due_reminder_days" env-default:"3"`
}

func MustLoad() *SettlementConfig {

	// Processing env config variable and file
	configPath := os.Getenv("SETTLEMENT_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("SETTLEMENT_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg SettlementConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
