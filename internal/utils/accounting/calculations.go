package accounting

import (
	"fmt"

	"github.com/RusingAcademy/accounting-engine/internal/apperrors"
	"github.com/RusingAcademy/accounting-engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RoundCents rounds a monetary amount to 2 decimal places.
func RoundCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// ValidateEntryLines checks structural and numeric well-formedness of a
// candidate entry's lines. It is pure and runs before any persistence.
// Rules, in order: at least 2 lines; per line, no negative side, not both
// sides positive, not both zero; rounded-to-cents debit and credit totals
// must match, with both totals reported on mismatch.
func ValidateEntryLines(lines []domain.EntryLine) error {
	if len(lines) < 2 {
		return fmt.Errorf("%w: journal entry must have at least 2 lines", apperrors.ErrValidation)
	}

	totalDebits := decimal.Zero
	totalCredits := decimal.Zero

	for i, line := range lines {
		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			return fmt.Errorf("%w: debit and credit amounts must be non-negative on line %d", apperrors.ErrValidation, i+1)
		}
		if line.Debit.IsPositive() && line.Credit.IsPositive() {
			return fmt.Errorf("%w: a line cannot have both debit and credit (line %d)", apperrors.ErrValidation, i+1)
		}
		if line.Debit.IsZero() && line.Credit.IsZero() {
			return fmt.Errorf("%w: each line must have either a debit or credit amount (line %d)", apperrors.ErrValidation, i+1)
		}

		totalDebits = totalDebits.Add(line.Debit)
		totalCredits = totalCredits.Add(line.Credit)
	}

	totalDebits = RoundCents(totalDebits)
	totalCredits = RoundCents(totalCredits)
	if !totalDebits.Equal(totalCredits) {
		return fmt.Errorf("%w: entry is unbalanced: debits=%s, credits=%s",
			apperrors.ErrValidation, totalDebits.StringFixed(2), totalCredits.StringFixed(2))
	}

	return nil
}

// NetBalance derives an account balance from its all-time debit and credit
// totals, applying the account type's normal balance side.
func NetBalance(accountType domain.AccountType, totalDebit, totalCredit decimal.Decimal) decimal.Decimal {
	if accountType.NormalDebit() {
		return RoundCents(totalDebit.Sub(totalCredit))
	}
	return RoundCents(totalCredit.Sub(totalDebit))
}
