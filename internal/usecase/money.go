package usecase

import "math"

// Monetary amounts are kept to two decimal places at every computation step
// so that repeated payment applications stay exact.

func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}

func moneyEquals(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
