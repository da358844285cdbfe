package domain_test

import (
	"testing"

	"github.com/RusingAcademy/accounting-engine/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestAccountType_Classification(t *testing.T) {
	tests := []struct {
		typ         domain.AccountType
		normalDebit bool
		asset       bool
		liability   bool
		equity      bool
		income      bool
		expense     bool
	}{
		{domain.Bank, true, true, false, false, false, false},
		{domain.AccountsReceivable, true, true, false, false, false, false},
		{domain.AccountsPayable, false, false, true, false, false, false},
		{domain.OtherCurrentAssets, true, true, false, false, false, false},
		{domain.FixedAssets, true, true, false, false, false, false},
		{domain.OtherAssets, true, true, false, false, false, false},
		{domain.CreditCard, false, false, true, false, false, false},
		{domain.OtherCurrentLiabilities, false, false, true, false, false, false},
		{domain.LongTermLiabilities, false, false, true, false, false, false},
		{domain.Equity, false, false, false, true, false, false},
		{domain.Income, false, false, false, false, true, false},
		{domain.OtherIncome, false, false, false, false, true, false},
		{domain.CostOfGoodsSold, true, false, false, false, false, true},
		{domain.Expenses, true, false, false, false, false, true},
		{domain.OtherExpenses, true, false, false, false, false, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			assert.True(t, tt.typ.Valid())
			assert.Equal(t, tt.normalDebit, tt.typ.NormalDebit(), "NormalDebit")
			assert.Equal(t, tt.asset, tt.typ.IsAsset(), "IsAsset")
			assert.Equal(t, tt.liability, tt.typ.IsLiability(), "IsLiability")
			assert.Equal(t, tt.equity, tt.typ.IsEquity(), "IsEquity")
			assert.Equal(t, tt.income, tt.typ.IsIncome(), "IsIncome")
			assert.Equal(t, tt.expense, tt.typ.IsExpense(), "IsExpense")
		})
	}
}

func TestAccountType_Valid(t *testing.T) {
	assert.Len(t, domain.AccountTypes, 15, "every report bucket depends on the full taxonomy")

	for _, tt := range []domain.AccountType{"", "bank", "Revenue", "Asset", "Bank "} {
		assert.False(t, tt.Valid(), "%q should not be a valid account type", tt)
	}
}

func TestAccountType_EveryTypeIsBucketedExactlyOnceOnReports(t *testing.T) {
	// P&L and balance-sheet buckets partition the taxonomy: each type lands in
	// exactly one of asset, liability, equity, income, expense.
	for _, typ := range domain.AccountTypes {
		count := 0
		for _, in := range []bool{typ.IsAsset(), typ.IsLiability(), typ.IsEquity(), typ.IsIncome(), typ.IsExpense()} {
			if in {
				count++
			}
		}
		assert.Equal(t, 1, count, "account type %s must belong to exactly one report bucket", typ)
	}
}
