package statistics

import (
	"context"
	"fmt"

	"github.com/Avaria395/SmartExpenseTracker/internal/application/adapter"
	"github.com/Avaria395/SmartExpenseTracker/internal/domain/entity"
)

// GetAssetOverviewOutput represents the output of the asset overview.
type GetAssetOverviewOutput struct {
	Overview *entity.AssetOverview
}

// GetAssetOverviewUseCase partitions all accounts into assets and
// liabilities and classifies each by its name.
type GetAssetOverviewUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewGetAssetOverviewUseCase creates a new GetAssetOverviewUseCase instance.
func NewGetAssetOverviewUseCase(accountRepo adapter.AccountRepository) *GetAssetOverviewUseCase {
	return &GetAssetOverviewUseCase{accountRepo: accountRepo}
}

// Execute computes the overview. Positive balances add to TotalAssets,
// negative balances add their magnitude to TotalLiabilities, so
// NetAssets always equals TotalAssets minus TotalLiabilities.
func (uc *GetAssetOverviewUseCase) Execute(ctx context.Context) (*GetAssetOverviewOutput, error) {
	accounts, err := uc.accountRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}

	overview := &entity.AssetOverview{
		Accounts: make([]entity.AccountItem, 0, len(accounts)),
	}
	for _, account := range accounts {
		if account.Balance >= 0 {
			overview.TotalAssets += account.Balance
		} else {
			overview.TotalLiabilities += -account.Balance
		}

		class := entity.ClassifyAccount(account.Name)
		color := account.Color
		if color == "" {
			color = class.Color
		}
		overview.Accounts = append(overview.Accounts, entity.AccountItem{
			ID:       account.ID,
			Name:     account.Name,
			Balance:  account.Balance,
			Category: class.Label,
			Color:    color,
		})
	}
	overview.NetAssets = overview.TotalAssets - overview.TotalLiabilities

	return &GetAssetOverviewOutput{Overview: overview}, nil
}
