// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultAccountColor is the fallback display color for accounts whose name
// matches no known class.
const DefaultAccountColor = "#9C27B0"

// Account represents a money account. Balance is a signed minor-unit value;
// a negative balance marks a liability. Balances are only ever mutated by
// additive delta application, never by blind overwrite.
type Account struct {
	ID        uuid.UUID
	Name      string
	Balance   int64
	Color     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewAccount creates a new Account entity. An empty color falls back to the
// default color of the account's name class.
func NewAccount(name string, balance int64, color string) *Account {
	if color == "" {
		color = ClassifyAccount(name).Color
	}
	now := time.Now().UTC()

	return &Account{
		ID:        uuid.New(),
		Name:      name,
		Balance:   balance,
		Color:     color,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsLiability reports whether the account currently holds a negative balance.
func (a *Account) IsLiability() bool {
	return a.Balance < 0
}

// AccountClass is the display classification derived from an account name.
type AccountClass struct {
	Label string
	Color string
}

// accountClasses is the ordered keyword table used to classify accounts for
// the asset overview. The first matching entry wins.
var accountClasses = []struct {
	keywords []string
	class    AccountClass
}{
	{[]string{"cash"}, AccountClass{Label: "Cash", Color: "#FF9800"}},
	{[]string{"debit", "savings"}, AccountClass{Label: "Debit Card", Color: "#2196F3"}},
	{[]string{"wechat"}, AccountClass{Label: "WeChat", Color: "#4CAF50"}},
	{[]string{"alipay"}, AccountClass{Label: "Alipay", Color: "#2196F3"}},
	{[]string{"credit"}, AccountClass{Label: "Credit Card", Color: "#F44336"}},
	{[]string{"loan"}, AccountClass{Label: "Loan", Color: "#F44336"}},
}

// ClassifyAccount maps an account name to its display class by
// case-insensitive substring match against the known keyword list, falling
// back to a catch-all class.
func ClassifyAccount(name string) AccountClass {
	lower := strings.ToLower(name)
	for _, entry := range accountClasses {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.class
			}
		}
	}
	return AccountClass{Label: "Other", Color: DefaultAccountColor}
}
