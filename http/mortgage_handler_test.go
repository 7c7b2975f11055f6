package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/odinmillion/dubai-mortgage-calculator/domain"
	"github.com/odinmillion/dubai-mortgage-calculator/repository"
	"github.com/odinmillion/dubai-mortgage-calculator/service"
)

func newMortgageHandler() *MortgageHandler {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	repo := repository.NewMortgageRepositoryMemory()
	svc := service.NewMortgageService(repo, logger)
	return NewMortgageHandler(svc, logger)
}

func TestCalculateHandler_OK(t *testing.T) {

	handler := newMortgageHandler()

	body := []byte(`{
		"amount": 10000,
		"annual_rate": 0.12,
		"term_months": 24
	}`)

	req := httptest.NewRequest(
		http.MethodPost,
		"/mortgage/calculate",
		bytes.NewBuffer(body),
	)

	w := httptest.NewRecorder()

	handler.Calculate(w, req)

	resp := w.Result()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var result domain.MortgageResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.MonthlyPayment <= 0 {
		t.Errorf("expected payment > 0, got %.2f", result.MonthlyPayment)
	}
}

func TestCalculateHandler_MethodNotAllowed(t *testing.T) {

	handler := newMortgageHandler()

	req := httptest.NewRequest(http.MethodGet, "/mortgage/calculate", nil)
	w := httptest.NewRecorder()

	handler.Calculate(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}

func TestCalculateHandler_BadRequest(t *testing.T) {

	handler := newMortgageHandler()

	req := httptest.NewRequest(
		http.MethodPost,
		"/mortgage/calculate",
		bytes.NewBuffer([]byte(`{invalid-json}`)),
	)

	w := httptest.NewRecorder()
	handler.Calculate(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestScheduleHandler_OK(t *testing.T) {

	handler := newMortgageHandler()

	body := []byte(`{
		"amount": 10000,
		"annual_rate": 0.12,
		"term_months": 24
	}`)

	req := httptest.NewRequest(
		http.MethodPost,
		"/mortgage/schedule",
		bytes.NewBuffer(body),
	)

	w := httptest.NewRecorder()
	handler.Schedule(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var entries []domain.ScheduleEntry
	if err := json.NewDecoder(w.Body).Decode(&entries); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(entries) != 24 {
		t.Errorf("expected 24 schedule entries, got %d", len(entries))
	}
}

func TestHistoryHandler_OK(t *testing.T) {

	handler := newMortgageHandler()

	// Seed one calculation through the handler.
	seed := httptest.NewRequest(
		http.MethodPost,
		"/mortgage/calculate",
		bytes.NewBuffer([]byte(`{"amount": 10000, "annual_rate": 0.12, "term_months": 24}`)),
	)
	handler.Calculate(httptest.NewRecorder(), seed)

	req := httptest.NewRequest(http.MethodGet, "/mortgage/history", nil)
	w := httptest.NewRecorder()

	handler.History(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var records []domain.CalculationRecord
	if err := json.NewDecoder(w.Body).Decode(&records); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("expected 1 record, got %d", len(records))
	}
}

func TestHistoryHandler_InvalidLimit(t *testing.T) {

	handler := newMortgageHandler()

	req := httptest.NewRequest(http.MethodGet, "/mortgage/history?limit=abc", nil)
	w := httptest.NewRecorder()

	handler.History(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}
