package setup

import (
	"github.com/charlesnunot/seller-settlement-service/internal/usecase"
)

type UseCases struct {
	DepositUsecase      usecase.DepositUsecase
	DeductionUsecase    usecase.DeductionUsecase
	DebtUsecase         usecase.DebtUsecase
	ObligationUsecase   usecase.ObligationUsecase
	PenaltyUsecase      usecase.PenaltyUsecase
	CompensationUsecase usecase.CompensationUsecase
	TransferUsecase     usecase.TransferUsecase
}

func InitializeUseCases(deps *Dependencies) *UseCases {
	repos := deps.Repositories

	depositUsecase := usecase.NewDefaultDepositUsecase(
		repos.LotRepo,
		deps.Publisher,
		repos.AuditRepo,
		deps.Config.DepositPolicy,
	)

	deductionUsecase := usecase.NewDefaultDeductionUsecase(
		repos.LotRepo,
		deps.Rates,
		deps.Notifier,
		deps.Publisher,
		repos.AuditRepo,
		deps.Config.DepositPolicy.SettlementCurrency,
	)

	debtUsecase := usecase.NewDefaultDebtUsecase(
		repos.DebtRepo,
		deps.Refunds,
		deps.Publisher,
		repos.AuditRepo,
	)

	penaltyUsecase := usecase.NewDefaultPenaltyUsecase(
		repos.PenaltyRepo,
		repos.ObligationRepo,
		deps.Sellers,
		deps.Notifier,
		deps.Publisher,
		repos.AuditRepo,
	)

	obligationUsecase := usecase.NewDefaultObligationUsecase(
		repos.ObligationRepo,
		penaltyUsecase,
		deps.Notifier,
		repos.AuditRepo,
	)

	compensationUsecase := usecase.NewDefaultCompensationUsecase(
		repos.CompensationRepo,
		repos.TransferRepo,
		repos.DebtRepo,
		deps.Refunds,
		debtUsecase,
		deductionUsecase,
		deps.Publisher,
		repos.AuditRepo,
	)

	transferUsecase := usecase.NewDefaultTransferUsecase(
		repos.TransferRepo,
		deps.Provider,
		deps.Publisher,
		repos.AuditRepo,
	)

	return &UseCases{
		DepositUsecase:      depositUsecase,
		DeductionUsecase:    deductionUsecase,
		DebtUsecase:         debtUsecase,
		ObligationUsecase:   obligationUsecase,
		PenaltyUsecase:      penaltyUsecase,
		CompensationUsecase: compensationUsecase,
		TransferUsecase:     transferUsecase,
	}
}
