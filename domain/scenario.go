package domain

// ScenarioInput describes a mortgage that starts on a fixed rate and
// switches to a variable rate once the fixed period ends. Rates are
// decimal fractions.
type ScenarioInput struct {
	Amount            float64 `json:"amount"`
	FixedRate         float64 `json:"fixed_rate"`
	FixedPeriodMonths int     `json:"fixed_period_months"`
	VariableRate      float64 `json:"variable_rate"`
	TermMonths        int     `json:"term_months"`
}

type ScenarioResult struct {
	InitialPayment    float64 `json:"initial_payment"`
	BalanceAfterFixed float64 `json:"balance_after_fixed"`
	AdjustedPayment   float64 `json:"adjusted_payment"`
	InterestFixed     float64 `json:"interest_fixed"`
	InterestVariable  float64 `json:"interest_variable"`
	TotalInterest     float64 `json:"total_interest"`
}
