package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/odinmillion/dubai-mortgage-calculator/domain"
	"github.com/odinmillion/dubai-mortgage-calculator/service"
)

// Scheduler periodically revalues the configured borrower scenario at the
// current variable rate so the calculation history tracks how the adjusted
// payment drifts as the index moves.
type Scheduler struct {
	cron      *cron.Cron
	mortgages *service.MortgageService
	scenarios *service.ScenarioService
	input     domain.ScenarioInput
	logger    *logrus.Logger
}

func New(
	mortgages *service.MortgageService,
	scenarios *service.ScenarioService,
	input domain.ScenarioInput,
	logger *logrus.Logger,
) *Scheduler {
	return &Scheduler{
		cron:      cron.New(cron.WithSeconds()),
		mortgages: mortgages,
		scenarios: scenarios,
		input:     input,
		logger:    logger,
	}
}

// Register schedules the revaluation task with a 6-field cron expression.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.revalue); err != nil {
		return fmt.Errorf("register revaluation task: %w", err)
	}
	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("scheduler started")
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.logger.Info("scheduler stopped")
}

func (s *Scheduler) revalue() {
	result, err := s.scenarios.Compare(context.Background(), s.input)
	if err != nil {
		s.logger.Errorf("revaluation scenario: %v", err)
		return
	}

	// Persist the post-fixed-period leg as a calculation record.
	remaining := s.input.TermMonths - s.input.FixedPeriodMonths
	if _, err := s.mortgages.Calculate(domain.MortgageInput{
		Amount:     result.BalanceAfterFixed,
		AnnualRate: s.input.VariableRate,
		TermMonths: remaining,
	}); err != nil {
		s.logger.Errorf("revaluation record: %v", err)
		return
	}

	s.logger.Infof("revaluation: adjusted payment %.2f at variable rate %.4f",
		result.AdjustedPayment, s.input.VariableRate)
}
