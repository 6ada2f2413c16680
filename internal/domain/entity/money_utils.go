package entity

import (
	"fmt"
	"strconv"
	"strings"

	errs "github.com/fintrack-app/fintrack/internal/domain/error"
)

// MaxDecimalPlaces defines the maximum number of decimal places allowed for money amounts
const MaxDecimalPlaces = 2

// MaxAmountInCents caps a single entry so that multi-row sums stay far away
// from int64 overflow (ten billion units)
const MaxAmountInCents = int64(1_000_000_000_000)

// ValidateAndConvertAmount validates a string amount and converts it to cents.
// Uses a string-based approach to sidestep floating point precision:
// - no decimal point: append "00"
// - one digit after the point: append one "0"
// - two digits after the point: concatenate as is
// A comma decimal separator is accepted ("12,50" equals "12.50").
// Amounts must be strictly positive.
func ValidateAndConvertAmount(amount string) (int64, error) {
	amount = strings.TrimSpace(amount)
	if len(amount) == 0 {
		return 0, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	// Comma as decimal separator; a second comma falls through as an error
	amount = strings.Replace(amount, ",", ".", 1)

	if strings.HasPrefix(amount, "-") || strings.HasPrefix(amount, "+") {
		return 0, fmt.Errorf("%w: signs are not allowed", errs.ErrInvalidAmount)
	}

	parts := strings.Split(amount, ".")
	if len(parts) > 2 {
		return 0, fmt.Errorf("%w: invalid number format", errs.ErrInvalidAmount)
	}

	var integerValue string

	if len(parts) == 1 {
		// No decimal point
		integerValue = parts[0] + "00"
	} else {
		switch len(parts[1]) {
		case 0:
			// Like "10."
			integerValue = parts[0] + "00"
		case 1:
			integerValue = parts[0] + parts[1] + "0"
		case 2:
			integerValue = parts[0] + parts[1]
		default:
			return 0, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
		}
	}

	value, err := strconv.ParseInt(integerValue, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: not a number", errs.ErrInvalidAmount)
	}
	if value == 0 {
		return 0, fmt.Errorf("%w: zero value", errs.ErrInvalidAmount)
	}
	if value > MaxAmountInCents {
		return 0, errs.ErrAmountTooLarge
	}

	return value, nil
}

// AmountInCentsToString converts an integer cent amount to a decimal string.
// For example 1015 becomes "10.15" and -50 becomes "-0.50".
func AmountInCentsToString(amountInCents int64) string {
	isNegative := amountInCents < 0
	if isNegative {
		amountInCents = -amountInCents
	}

	amountStr := strconv.FormatInt(amountInCents, 10)

	for len(amountStr) < 3 {
		amountStr = "0" + amountStr
	}

	decimalPos := len(amountStr) - 2
	wholePart := amountStr[:decimalPos]
	decimalPart := amountStr[decimalPos:]

	if isNegative {
		return "-" + wholePart + "." + decimalPart
	}
	return wholePart + "." + decimalPart
}

// EnsureTwoDecimalPlaces normalizes a user-typed amount to exactly two
// decimal places for display: "50" becomes "50.00", "3,5" becomes "3.50".
// Invalid input is rejected rather than guessed at.
func EnsureTwoDecimalPlaces(amount string) (string, error) {
	cents, err := ValidateAndConvertAmount(amount)
	if err != nil {
		return "", err
	}
	return AmountInCentsToString(cents), nil
}
