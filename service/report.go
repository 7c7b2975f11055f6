package service

import (
	"fmt"
	"strings"

	"github.com/odinmillion/dubai-mortgage-calculator/domain"
)

// FormatScenarioReport renders the scenario as the fixed block of
// human-readable lines printed by the one-shot mode. Monetary figures use
// two-decimal formatting.
func FormatScenarioReport(input domain.ScenarioInput, result domain.ScenarioResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Fixed rate scenario\n")
	fmt.Fprintf(&b, "Loan amount: %.2f\n", input.Amount)
	fmt.Fprintf(&b, "Annual rate: %g\n", input.FixedRate)
	fmt.Fprintf(&b, "Monthly payment: %.2f\n", result.InitialPayment)

	fmt.Fprintf(&b, "\nVariable rate scenario\n")
	fmt.Fprintf(&b, "Initial payment: %.2f\n", result.InitialPayment)
	fmt.Fprintf(&b, "Remaining balance after %d months: %.2f\n",
		input.FixedPeriodMonths, result.BalanceAfterFixed)
	fmt.Fprintf(&b, "Adjusted payment: %.2f\n", result.AdjustedPayment)

	fmt.Fprintf(&b, "\nInterest breakdown\n")
	fmt.Fprintf(&b, "Interest during fixed period: %.2f\n", result.InterestFixed)
	fmt.Fprintf(&b, "Interest during variable period: %.2f\n", result.InterestVariable)
	fmt.Fprintf(&b, "Total interest: %.2f\n", result.TotalInterest)

	return b.String()
}
