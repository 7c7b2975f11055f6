package service

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/odinmillion/dubai-mortgage-calculator/domain"
	"github.com/odinmillion/dubai-mortgage-calculator/repository"
)

type MortgageService struct {
	repo   repository.MortgageRepository
	logger *logrus.Logger
}

// NewMortgageService creates a new MortgageService with the given repository.
func NewMortgageService(repo repository.MortgageRepository, logger *logrus.Logger) *MortgageService {
	return &MortgageService{repo: repo, logger: logger}
}

func validateMortgageInput(input domain.MortgageInput) error {
	if input.Amount <= 0 {
		return errors.New("invalid loan amount")
	}
	if input.Amount > MaxLoanAmount {
		return fmt.Errorf("loan amount exceeds the maximum of %.2f", MaxLoanAmount)
	}
	if input.AnnualRate <= 0 {
		return errors.New("annual rate must be positive")
	}
	if input.AnnualRate > MaxAnnualRate {
		return fmt.Errorf("annual rate exceeds the maximum of %.2f", MaxAnnualRate)
	}
	if input.TermMonths < MinTermMonths {
		return errors.New("invalid term")
	}
	if input.TermMonths > MaxTermMonths {
		return fmt.Errorf("term exceeds the maximum of %d months", MaxTermMonths)
	}
	return nil
}

// Calculate computes the monthly payment and interest totals for a
// single-rate mortgage and records the result.
func (s *MortgageService) Calculate(
	input domain.MortgageInput,
) (domain.MortgageResult, error) {

	if err := validateMortgageInput(input); err != nil {
		return domain.MortgageResult{}, err
	}

	// Totals derive from the rounded payment so the reported figures
	// reconcile: total = payment * term, interest = total - principal.
	payment := roundTo2Decimals(MonthlyPayment(input.Amount, input.AnnualRate, input.TermMonths))
	total := roundTo2Decimals(payment * float64(input.TermMonths))

	result := domain.MortgageResult{
		MonthlyPayment: payment,
		TotalPayment:   total,
		TotalInterest:  roundTo2Decimals(total - input.Amount),
	}

	// Persisting is not critical for the caller
	if err := s.repo.Save(input, result); err != nil {
		s.logger.Warnf("failed to save calculation: %v", err)
	}

	return result, nil
}

// Schedule expands a mortgage into its per-payment amortization rows. The
// last payment absorbs the accumulated rounding drift so the balance lands
// on zero.
func (s *MortgageService) Schedule(
	input domain.MortgageInput,
) ([]domain.ScheduleEntry, error) {

	if err := validateMortgageInput(input); err != nil {
		return nil, err
	}

	payment := MonthlyPayment(input.Amount, input.AnnualRate, input.TermMonths)
	monthlyRate := input.AnnualRate / 12
	balance := input.Amount

	entries := make([]domain.ScheduleEntry, 0, input.TermMonths)
	for i := 1; i <= input.TermMonths; i++ {
		interest := balance * monthlyRate
		principal := payment - interest
		if i == input.TermMonths {
			principal = balance
		}
		balance -= principal

		entries = append(entries, domain.ScheduleEntry{
			PaymentNumber: i,
			Payment:       roundTo2Decimals(payment),
			Principal:     roundTo2Decimals(principal),
			Interest:      roundTo2Decimals(interest),
			Balance:       roundTo2Decimals(balance),
		})
	}

	return entries, nil
}

// History returns the most recent persisted calculations.
func (s *MortgageService) History(limit int) ([]domain.CalculationRecord, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}
	return s.repo.List(limit)
}
