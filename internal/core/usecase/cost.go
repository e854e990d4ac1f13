package usecase

import (
	"math"

	"github.com/okorolenko/semantic-audit/internal/core/domain"
)

const annualCostPerEmployee = 2500

// meaningDebtShares allocate fixed fractions of the estimated cost. Each
// slice is rounded to the nearest thousand independently, so the breakdown
// does not reconcile exactly with the low/high bounds.
var meaningDebtShares = []struct {
	name  string
	share float64
}{
	{"miscommunication_rework", 0.35},
	{"failed_handoffs", 0.20},
	{"customer_churn", 0.25},
	{"decision_delays", 0.20},
}

// estimateMeaningDebt converts the overall score, organization size and risk
// term count into an annual low/high cost range.
func estimateMeaningDebt(overall float64, companySize, riskTermCount int) domain.CostEstimate {
	base := float64(companySize) * annualCostPerEmployee
	scoreMultiplier := (100 - overall) / 50
	riskMultiplier := 1 + 0.1*float64(riskTermCount)
	cost := base * scoreMultiplier * riskMultiplier

	breakdown := make(map[string]int, len(meaningDebtShares))
	for _, slice := range meaningDebtShares {
		breakdown[slice.name] = roundToThousand(cost * slice.share)
	}

	return domain.CostEstimate{
		LowEstimate:  roundToThousand(cost * 0.7),
		HighEstimate: roundToThousand(cost * 1.3),
		Breakdown:    breakdown,
	}
}

func roundToThousand(v float64) int {
	return int(math.Round(v/1000)) * 1000
}
