package http

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/odinmillion/dubai-mortgage-calculator/domain"
	"github.com/odinmillion/dubai-mortgage-calculator/service"
)

type ScenarioHandler struct {
	service *service.ScenarioService
	logger  *logrus.Logger
}

func NewScenarioHandler(service *service.ScenarioService, logger *logrus.Logger) *ScenarioHandler {
	return &ScenarioHandler{service: service, logger: logger}
}

func (h *ScenarioHandler) Compare(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.ScenarioInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.Compare(r.Context(), input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
