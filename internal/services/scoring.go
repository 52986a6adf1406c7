package services

import (
	"math/rand"
	"strings"
)

const (
	CreditScoreMin = 300
	CreditScoreMax = 850
	CivilScoreMin  = 0
	CivilScoreMax  = 100
)

// PaymentHistorySampler produces the on-time payment ratio used by the
// credit score formula. Production uses SimulatedPaymentHistory; tests
// inject a fixed value.
type PaymentHistorySampler func() float64

// SimulatedPaymentHistory draws an on-time ratio in [0.7, 1.0). There is no
// real bureau feed, so the ratio stands in for one.
func SimulatedPaymentHistory() float64 {
	return 0.7 + rand.Float64()*0.3
}

// CreditScore starts from a 600 base and adjusts for income bracket,
// employment status and payment history, clamped to [300, 850].
func CreditScore(income float64, employmentStatus string, paymentHistory float64) int {
	score := 600

	switch {
	case income >= 100000:
		score += 100
	case income >= 70000:
		score += 70
	case income >= 50000:
		score += 40
	case income >= 30000:
		score += 20
	}

	switch strings.ToLower(strings.TrimSpace(employmentStatus)) {
	case "employed":
		score += 50
	case "self-employed":
		score += 30
	case "unemployed":
		score -= 50
	case "student":
		score += 10
	case "retired":
		score += 20
	}

	switch {
	case paymentHistory > 0.9:
		score += 50
	case paymentHistory > 0.7:
		// neutral band
	default:
		score -= 50
	}

	return clampScore(score, CreditScoreMin, CreditScoreMax)
}

// CivilScore starts from a 50 base and adjusts for age band, employment
// status and the already-computed credit score, clamped to [0, 100].
func CivilScore(age int, employmentStatus string, creditScore int) int {
	score := 50

	switch {
	case age >= 25 && age <= 60:
		score += 30
	case age > 60:
		score += 20
	default:
		score += 10
	}

	switch strings.ToLower(strings.TrimSpace(employmentStatus)) {
	case "employed":
		score += 30
	case "self-employed":
		score += 20
	default:
		score += 10
	}

	switch {
	case creditScore >= 700:
		score += 20
	case creditScore >= 600:
		score += 10
	}

	return clampScore(score, CivilScoreMin, CivilScoreMax)
}

func clampScore(score int, low int, high int) int {
	if score < low {
		return low
	}
	if score > high {
		return high
	}
	return score
}
