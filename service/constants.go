package service

const (
	MaxLoanAmount = 1_000_000_000.0 // 1 billion AED
	MaxAnnualRate = 1.0             // 100% nominal annual
	MaxTermMonths = 600             // 50 years
	MinTermMonths = 1

	// Reference scenario: 3.9M property with a 23% down payment,
	// 25-year term, 3 years fixed at 4%, then EIBOR + margin (5.8%).
	DefaultLoanAmount        = 3_003_000.0
	DefaultFixedRate         = 0.04
	DefaultTermMonths        = 300
	DefaultFixedPeriodMonths = 36
	DefaultIndexRate         = 0.043
	DefaultRateMargin        = 0.015

	// History endpoint paging
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)
