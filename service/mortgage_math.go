package service

import "math"

// roundTo2Decimals rounds a float64 to 2 decimal places.
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

// MonthlyPayment returns the fixed payment that fully amortizes loanAmount
// over months at the given nominal annual rate (decimal fraction, 0.04 = 4%).
//
// The formula is applied raw: a zero rate reduces it to 0/0 and yields NaN.
func MonthlyPayment(loanAmount, annualRate float64, months int) float64 {
	monthlyRate := annualRate / 12
	return loanAmount * monthlyRate / (1 - math.Pow(1+monthlyRate, -float64(months)))
}

// RemainingBalance returns the principal still owed after months payments of
// the given amount, via the future-value identity. Same raw-arithmetic
// contract as MonthlyPayment: a zero rate yields NaN.
func RemainingBalance(loanAmount, annualRate, payment float64, months int) float64 {
	monthlyRate := annualRate / 12
	growth := math.Pow(1+monthlyRate, float64(months))
	return loanAmount*growth - payment*(growth-1)/monthlyRate
}
