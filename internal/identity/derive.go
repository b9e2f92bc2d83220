package identity

import (
	"fmt"
	"time"

	"github.com/MubarakAliyu/Godiyahospitalwebappnew-sub001/pkg/types"
)

// ComputeAge returns the number of full years elapsed between
// dateOfBirth and asOf. It must be re-derived on every read; callers
// never cache the result against a stale clock.
func ComputeAge(dateOfBirth, asOf time.Time) int {
	if dateOfBirth.IsZero() || asOf.Before(dateOfBirth) {
		return 0
	}

	age := asOf.Year() - dateOfBirth.Year()

	// Birthday not yet reached this year
	birthdayThisYear := time.Date(asOf.Year(), dateOfBirth.Month(), dateOfBirth.Day(), 0, 0, 0, 0, asOf.Location())
	if asOf.Before(birthdayThisYear) {
		age--
	}

	if age < 0 {
		return 0
	}
	return age
}

// ComputeBalance returns amount minus amountPaid. Negative arguments
// and overpayment are rejected; there is no tolerance on either check.
func ComputeBalance(amount, amountPaid float64) (float64, error) {
	if amount < 0 || amountPaid < 0 {
		return 0, types.NewInvariantError(types.ErrCodeInvalidAmount,
			"amounts must not be negative",
			map[string]interface{}{"amount": amount, "amount_paid": amountPaid})
	}

	if amountPaid > amount {
		return 0, types.NewInvariantError(types.ErrCodeInvalidAmount,
			fmt.Sprintf("amount paid %.2f exceeds amount %.2f", amountPaid, amount),
			map[string]interface{}{"amount": amount, "amount_paid": amountPaid})
	}

	return amount - amountPaid, nil
}

// DerivePaymentStatus derives the payment status from the balance
// formula: paid iff the balance is zero and something was paid, partial
// iff a strictly positive part of the amount was paid.
func DerivePaymentStatus(balance, amountPaid float64) types.PaymentStatus {
	switch {
	case balance == 0 && amountPaid > 0:
		return types.PaymentStatusPaid
	case amountPaid > 0:
		return types.PaymentStatusPartial
	default:
		return types.PaymentStatusUnpaid
	}
}

// ComputeBMI returns the body mass index for the given height and
// weight, or 0 when either measurement is missing.
func ComputeBMI(heightCm, weightKg float64) float64 {
	if heightCm <= 0 || weightKg <= 0 {
		return 0
	}

	heightM := heightCm / 100
	return weightKg / (heightM * heightM)
}

// ClassifyBMI maps a BMI value onto the standard WHO classes
func ClassifyBMI(bmi float64) string {
	switch {
	case bmi <= 0:
		return ""
	case bmi < 18.5:
		return "underweight"
	case bmi < 25:
		return "normal"
	case bmi < 30:
		return "overweight"
	default:
		return "obese"
	}
}

// FullName joins the demographic name fields the way the dashboards
// display them.
func FullName(firstName, lastName string) string {
	switch {
	case firstName == "":
		return lastName
	case lastName == "":
		return firstName
	default:
		return firstName + " " + lastName
	}
}
