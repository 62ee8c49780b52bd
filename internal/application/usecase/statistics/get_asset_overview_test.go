package statistics

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/Avaria395/SmartExpenseTracker/internal/domain/entity"
)

type fakeAccountRepo struct {
	accounts []*entity.Account
}

func (f *fakeAccountRepo) Create(context.Context, *entity.Account) error { return nil }
func (f *fakeAccountRepo) FindByID(context.Context, uuid.UUID) (*entity.Account, error) {
	return nil, nil
}
func (f *fakeAccountRepo) FindAll(context.Context) ([]*entity.Account, error) {
	return f.accounts, nil
}
func (f *fakeAccountRepo) Update(context.Context, *entity.Account) error         { return nil }
func (f *fakeAccountRepo) Delete(context.Context, uuid.UUID) error               { return nil }
func (f *fakeAccountRepo) ApplyBalanceDelta(context.Context, uuid.UUID, int64) error {
	return nil
}

func TestGetAssetOverview(t *testing.T) {
	repo := &fakeAccountRepo{accounts: []*entity.Account{
		entity.NewAccount("Cash", 500, ""),
		entity.NewAccount("Credit Card", -200, ""),
		entity.NewAccount("Debit Card", 1000, ""),
		entity.NewAccount("Loan", -50, ""),
	}}
	uc := NewGetAssetOverviewUseCase(repo)

	output, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	overview := output.Overview

	t.Run("partitions by balance sign", func(t *testing.T) {
		if overview.TotalAssets != 1500 {
			t.Errorf("total assets = %d, want 1500", overview.TotalAssets)
		}
		if overview.TotalLiabilities != 250 {
			t.Errorf("total liabilities = %d, want 250", overview.TotalLiabilities)
		}
	})

	t.Run("net assets is the difference", func(t *testing.T) {
		if overview.NetAssets != 1250 {
			t.Errorf("net assets = %d, want 1250", overview.NetAssets)
		}
		if overview.NetAssets != overview.TotalAssets-overview.TotalLiabilities {
			t.Error("net assets does not equal assets minus liabilities")
		}
	})

	t.Run("every account is classified", func(t *testing.T) {
		if len(overview.Accounts) != 4 {
			t.Fatalf("expected 4 accounts, got %d", len(overview.Accounts))
		}
		wantCategories := []string{"Cash", "Credit Card", "Debit Card", "Loan"}
		for i, item := range overview.Accounts {
			if item.Category != wantCategories[i] {
				t.Errorf("account %d category = %q, want %q", i, item.Category, wantCategories[i])
			}
			if item.Color == "" {
				t.Errorf("account %d has no color", i)
			}
		}
	})
}

func TestGetAssetOverview_Empty(t *testing.T) {
	uc := NewGetAssetOverviewUseCase(&fakeAccountRepo{})

	output, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	if output.Overview.TotalAssets != 0 || output.Overview.TotalLiabilities != 0 || output.Overview.NetAssets != 0 {
		t.Error("expected all totals to be zero with no accounts")
	}
	if len(output.Overview.Accounts) != 0 {
		t.Errorf("expected no accounts, got %d", len(output.Overview.Accounts))
	}
}
