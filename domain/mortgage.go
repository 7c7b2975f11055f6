package domain

import "time"

// MortgageInput describes a single-rate amortizing loan. AnnualRate is a
// nominal annual rate as a decimal fraction (0.04 = 4%).
type MortgageInput struct {
	Amount     float64 `json:"amount"`
	AnnualRate float64 `json:"annual_rate"`
	TermMonths int     `json:"term_months"`
}

type MortgageResult struct {
	MonthlyPayment float64 `json:"monthly_payment"`
	TotalPayment   float64 `json:"total_payment"`
	TotalInterest  float64 `json:"total_interest"`
}

// ScheduleEntry is one row of an amortization schedule.
type ScheduleEntry struct {
	PaymentNumber int     `json:"payment_number"`
	Payment       float64 `json:"payment"`
	Principal     float64 `json:"principal"`
	Interest      float64 `json:"interest"`
	Balance       float64 `json:"balance"`
}

// CalculationRecord is a persisted calculation with its identity.
type CalculationRecord struct {
	ID        string         `json:"id"`
	Input     MortgageInput  `json:"input"`
	Result    MortgageResult `json:"result"`
	CreatedAt time.Time      `json:"created_at"`
}
