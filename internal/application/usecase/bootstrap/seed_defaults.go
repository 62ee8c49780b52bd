// Package bootstrap contains the first-run initialization use case.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Avaria395/SmartExpenseTracker/internal/application/adapter"
	"github.com/Avaria395/SmartExpenseTracker/internal/domain/entity"
)

// defaultExpenseCategories are seeded on first run, in display order.
var defaultExpenseCategories = []struct {
	name string
	icon string
}{
	{"Dining", "restaurant"},
	{"Groceries", "shopping_cart"},
	{"Transport", "directions_bus"},
	{"Shopping", "shopping_bag"},
	{"Entertainment", "sports_esports"},
	{"Housing", "home"},
	{"Utilities", "bolt"},
	{"Medical", "local_hospital"},
	{"Education", "school"},
	{"Other", "more_horiz"},
}

// defaultIncomeCategories are seeded on first run, in display order.
var defaultIncomeCategories = []struct {
	name string
	icon string
}{
	{"Salary", "payments"},
	{"Bonus", "card_giftcard"},
	{"Investment", "trending_up"},
	{"Other Income", "attach_money"},
}

// defaultAccounts are seeded on first run with zero balances. Colors come
// from the account name classification.
var defaultAccounts = []string{"Cash", "Debit Card", "WeChat", "Alipay"}

// SeedDefaultsUseCase populates an empty database with the default book,
// categories and accounts. Each table is seeded independently and only
// when empty, so reruns and partially populated databases are safe.
type SeedDefaultsUseCase struct {
	bookRepo     adapter.BookRepository
	categoryRepo adapter.CategoryRepository
	accountRepo  adapter.AccountRepository
}

// NewSeedDefaultsUseCase creates a new SeedDefaultsUseCase instance.
func NewSeedDefaultsUseCase(
	bookRepo adapter.BookRepository,
	categoryRepo adapter.CategoryRepository,
	accountRepo adapter.AccountRepository,
) *SeedDefaultsUseCase {
	return &SeedDefaultsUseCase{
		bookRepo:     bookRepo,
		categoryRepo: categoryRepo,
		accountRepo:  accountRepo,
	}
}

// Execute seeds whatever is missing.
func (uc *SeedDefaultsUseCase) Execute(ctx context.Context) error {
	if err := uc.seedBooks(ctx); err != nil {
		return fmt.Errorf("failed to seed books: %w", err)
	}
	if err := uc.seedCategories(ctx); err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}
	if err := uc.seedAccounts(ctx); err != nil {
		return fmt.Errorf("failed to seed accounts: %w", err)
	}
	return nil
}

func (uc *SeedDefaultsUseCase) seedBooks(ctx context.Context) error {
	books, err := uc.bookRepo.FindAll(ctx)
	if err != nil {
		return err
	}
	if len(books) > 0 {
		return nil
	}

	if err := uc.bookRepo.Create(ctx, entity.NewBook("Default Book", true)); err != nil {
		return err
	}
	slog.Info("seeded default book")
	return nil
}

func (uc *SeedDefaultsUseCase) seedCategories(ctx context.Context) error {
	categories, err := uc.categoryRepo.FindAll(ctx)
	if err != nil {
		return err
	}
	if len(categories) > 0 {
		return nil
	}

	for _, c := range defaultExpenseCategories {
		if err := uc.categoryRepo.Create(ctx, entity.NewCategory(c.name, entity.CategoryTypeExpense, c.icon)); err != nil {
			return err
		}
	}
	for _, c := range defaultIncomeCategories {
		if err := uc.categoryRepo.Create(ctx, entity.NewCategory(c.name, entity.CategoryTypeIncome, c.icon)); err != nil {
			return err
		}
	}
	slog.Info("seeded default categories",
		"expense", len(defaultExpenseCategories),
		"income", len(defaultIncomeCategories),
	)
	return nil
}

func (uc *SeedDefaultsUseCase) seedAccounts(ctx context.Context) error {
	accounts, err := uc.accountRepo.FindAll(ctx)
	if err != nil {
		return err
	}
	if len(accounts) > 0 {
		return nil
	}

	for _, name := range defaultAccounts {
		if err := uc.accountRepo.Create(ctx, entity.NewAccount(name, 0, "")); err != nil {
			return err
		}
	}
	slog.Info("seeded default accounts", "count", len(defaultAccounts))
	return nil
}
