package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/odinmillion/dubai-mortgage-calculator/domain"
	"github.com/odinmillion/dubai-mortgage-calculator/repository"
)

const scenarioCacheTTL = 15 * time.Minute

type ScenarioService struct {
	cache  repository.CacheRepository
	logger *logrus.Logger
}

func NewScenarioService(cache repository.CacheRepository, logger *logrus.Logger) *ScenarioService {
	return &ScenarioService{cache: cache, logger: logger}
}

// Compare runs the fixed-then-variable scenario: the borrower pays the
// fixed-rate payment through the fixed period, then the payment is
// recalculated over the remaining term at the variable rate.
func (s *ScenarioService) Compare(
	ctx context.Context,
	input domain.ScenarioInput,
) (domain.ScenarioResult, error) {

	if input.Amount <= 0 {
		return domain.ScenarioResult{}, errors.New("invalid loan amount")
	}
	if input.Amount > MaxLoanAmount {
		return domain.ScenarioResult{}, fmt.Errorf("loan amount exceeds the maximum of %.2f", MaxLoanAmount)
	}
	if input.FixedRate <= 0 || input.FixedRate > MaxAnnualRate {
		return domain.ScenarioResult{}, errors.New("invalid fixed rate")
	}
	if input.VariableRate <= 0 || input.VariableRate > MaxAnnualRate {
		return domain.ScenarioResult{}, errors.New("invalid variable rate")
	}
	if input.TermMonths < MinTermMonths || input.TermMonths > MaxTermMonths {
		return domain.ScenarioResult{}, errors.New("invalid term")
	}
	if input.FixedPeriodMonths <= 0 || input.FixedPeriodMonths >= input.TermMonths {
		return domain.ScenarioResult{}, errors.New("fixed period must be shorter than the term")
	}

	key := scenarioCacheKey(input)
	if cached, ok := s.cache.Get(ctx, key); ok {
		var result domain.ScenarioResult
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			return result, nil
		}
		s.logger.Warnf("discarding unreadable cache entry %s", key)
	}

	result := runScenario(input)

	if data, err := json.Marshal(result); err == nil {
		if err := s.cache.Set(ctx, key, string(data), scenarioCacheTTL); err != nil {
			s.logger.Warnf("failed to cache scenario result: %v", err)
		}
	}

	return result, nil
}

// runScenario is the raw calculation sequence, in fixed order: initial
// payment, balance at the end of the fixed period, adjusted payment for the
// remaining months, then the interest split for each period.
func runScenario(input domain.ScenarioInput) domain.ScenarioResult {
	initial := MonthlyPayment(input.Amount, input.FixedRate, input.TermMonths)
	balance := RemainingBalance(input.Amount, input.FixedRate, initial, input.FixedPeriodMonths)

	remainingMonths := input.TermMonths - input.FixedPeriodMonths
	adjusted := MonthlyPayment(balance, input.VariableRate, remainingMonths)

	totalPaidFixed := initial * float64(input.FixedPeriodMonths)
	interestFixed := totalPaidFixed - (input.Amount - balance)

	totalPaidVariable := adjusted * float64(remainingMonths)
	interestVariable := totalPaidVariable - balance

	return domain.ScenarioResult{
		InitialPayment:    roundTo2Decimals(initial),
		BalanceAfterFixed: roundTo2Decimals(balance),
		AdjustedPayment:   roundTo2Decimals(adjusted),
		InterestFixed:     roundTo2Decimals(interestFixed),
		InterestVariable:  roundTo2Decimals(interestVariable),
		TotalInterest:     roundTo2Decimals(interestFixed + interestVariable),
	}
}

func scenarioCacheKey(input domain.ScenarioInput) string {
	return fmt.Sprintf("scenario:%.2f:%.6f:%d:%.6f:%d",
		input.Amount, input.FixedRate, input.FixedPeriodMonths,
		input.VariableRate, input.TermMonths)
}
