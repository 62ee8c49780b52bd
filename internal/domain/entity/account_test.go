package entity

import "testing"

func TestClassifyAccount(t *testing.T) {
	tests := []struct {
		name      string
		account   string
		wantLabel string
		wantColor string
	}{
		{"cash keyword", "Cash Wallet", "Cash", "#FF9800"},
		{"debit keyword", "My Debit Card", "Debit Card", "#2196F3"},
		{"savings keyword maps to debit class", "Savings Account", "Debit Card", "#2196F3"},
		{"wechat keyword", "WeChat Pay", "WeChat", "#4CAF50"},
		{"alipay keyword", "Alipay", "Alipay", "#2196F3"},
		{"credit keyword", "Credit Card", "Credit Card", "#F44336"},
		{"loan keyword", "Car Loan", "Loan", "#F44336"},
		{"case insensitive", "CASH box", "Cash", "#FF9800"},
		{"no match falls back to Other", "Brokerage", "Other", "#9C27B0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			class := ClassifyAccount(tt.account)
			if class.Label != tt.wantLabel {
				t.Errorf("label = %q, want %q", class.Label, tt.wantLabel)
			}
			if class.Color != tt.wantColor {
				t.Errorf("color = %q, want %q", class.Color, tt.wantColor)
			}
		})
	}
}

func TestClassifyAccount_FirstMatchWins(t *testing.T) {
	// "Cash Credit" matches both cash and credit; the earlier class wins.
	class := ClassifyAccount("Cash Credit")
	if class.Label != "Cash" {
		t.Errorf("expected first keyword class Cash, got %q", class.Label)
	}
}

func TestNewAccount(t *testing.T) {
	t.Run("empty color falls back to name class", func(t *testing.T) {
		account := NewAccount("WeChat", 0, "")
		if account.Color != "#4CAF50" {
			t.Errorf("expected class color #4CAF50, got %q", account.Color)
		}
	})

	t.Run("explicit color is kept", func(t *testing.T) {
		account := NewAccount("WeChat", 0, "#123456")
		if account.Color != "#123456" {
			t.Errorf("expected explicit color, got %q", account.Color)
		}
	})

	t.Run("negative balance marks a liability", func(t *testing.T) {
		account := NewAccount("Credit Card", -5000, "")
		if !account.IsLiability() {
			t.Error("expected negative balance to be a liability")
		}
	})
}
