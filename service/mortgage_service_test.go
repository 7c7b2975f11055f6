package service

import (
	"errors"
	"math"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/odinmillion/dubai-mortgage-calculator/domain"
)

type MockMortgageRepository struct {
	SaveCalled bool
	ForceError bool
	LastLimit  int
}

func (m *MockMortgageRepository) Save(
	input domain.MortgageInput,
	result domain.MortgageResult,
) error {
	m.SaveCalled = true
	if m.ForceError {
		return errors.New("save error")
	}
	return nil
}

func (m *MockMortgageRepository) List(limit int) ([]domain.CalculationRecord, error) {
	m.LastLimit = limit
	return []domain.CalculationRecord{}, nil
}

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	return logger
}

func TestCalculate_WithInterest(t *testing.T) {

	mockRepo := &MockMortgageRepository{}
	service := NewMortgageService(mockRepo, newTestLogger())

	input := domain.MortgageInput{
		Amount:     10000,
		AnnualRate: 0.12,
		TermMonths: 24,
	}

	result, err := service.Calculate(input)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.MonthlyPayment <= 0 {
		t.Errorf("expected payment > 0")
	}

	// The reported figures must reconcile with each other, not just with
	// the unrounded formula output.
	if math.Abs(result.TotalPayment-result.MonthlyPayment*24) > 0.005 {
		t.Errorf("total payment %.2f should be the reported payment %.2f times the term",
			result.TotalPayment, result.MonthlyPayment)
	}

	if math.Abs(result.TotalInterest-(result.TotalPayment-10000)) > 0.005 {
		t.Errorf("total interest %.2f should be total payment minus principal",
			result.TotalInterest)
	}

	if !mockRepo.SaveCalled {
		t.Errorf("expected repository Save to be called")
	}
}

func TestCalculate_InvalidAmount(t *testing.T) {

	mockRepo := &MockMortgageRepository{}
	service := NewMortgageService(mockRepo, newTestLogger())

	input := domain.MortgageInput{
		Amount:     0,
		AnnualRate: 0.10,
		TermMonths: 12,
	}

	_, err := service.Calculate(input)

	if err == nil {
		t.Errorf("expected error for invalid amount")
	}

	if mockRepo.SaveCalled {
		t.Errorf("repository Save should NOT be called")
	}
}

func TestCalculate_InvalidTerm(t *testing.T) {

	mockRepo := &MockMortgageRepository{}
	service := NewMortgageService(mockRepo, newTestLogger())

	input := domain.MortgageInput{
		Amount:     1000,
		AnnualRate: 0.10,
		TermMonths: 0,
	}

	_, err := service.Calculate(input)

	if err == nil {
		t.Errorf("expected error for invalid term")
	}
}

func TestCalculate_ZeroRateRejected(t *testing.T) {

	mockRepo := &MockMortgageRepository{}
	service := NewMortgageService(mockRepo, newTestLogger())

	input := domain.MortgageInput{
		Amount:     1200,
		AnnualRate: 0,
		TermMonths: 12,
	}

	_, err := service.Calculate(input)

	if err == nil {
		t.Errorf("expected error for zero rate at the API boundary")
	}
}

func TestCalculate_SaveErrorNotFatal(t *testing.T) {

	mockRepo := &MockMortgageRepository{ForceError: true}
	service := NewMortgageService(mockRepo, newTestLogger())

	input := domain.MortgageInput{
		Amount:     10000,
		AnnualRate: 0.12,
		TermMonths: 24,
	}

	result, err := service.Calculate(input)

	if err != nil {
		t.Fatalf("save failure should not fail the calculation: %v", err)
	}
	if result.MonthlyPayment <= 0 {
		t.Errorf("expected payment > 0")
	}
}

func TestSchedule_AmortizesToZero(t *testing.T) {

	service := NewMortgageService(&MockMortgageRepository{}, newTestLogger())

	input := domain.MortgageInput{
		Amount:     10000,
		AnnualRate: 0.12,
		TermMonths: 24,
	}

	entries, err := service.Schedule(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(entries) != 24 {
		t.Fatalf("expected 24 entries, got %d", len(entries))
	}

	if entries[len(entries)-1].Balance != 0 {
		t.Errorf("final balance should be 0, got %.2f", entries[len(entries)-1].Balance)
	}

	principalSum := 0.0
	for _, e := range entries {
		principalSum += e.Principal
		if e.Interest < 0 || e.Principal <= 0 {
			t.Errorf("entry %d has nonsensical split: principal %.2f interest %.2f",
				e.PaymentNumber, e.Principal, e.Interest)
		}
	}

	// Rounded rows may drift by a fraction of a cent each.
	if math.Abs(principalSum-10000) > 0.2 {
		t.Errorf("principal rows should sum to the loan amount, got %.2f", principalSum)
	}
}

func TestHistory_LimitDefaults(t *testing.T) {

	mockRepo := &MockMortgageRepository{}
	service := NewMortgageService(mockRepo, newTestLogger())

	if _, err := service.History(0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mockRepo.LastLimit != DefaultHistoryLimit {
		t.Errorf("expected default limit %d, got %d", DefaultHistoryLimit, mockRepo.LastLimit)
	}

	if _, err := service.History(10_000); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mockRepo.LastLimit != MaxHistoryLimit {
		t.Errorf("expected limit capped at %d, got %d", MaxHistoryLimit, mockRepo.LastLimit)
	}
}
