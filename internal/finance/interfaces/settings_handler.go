package interfaces

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/sebuszqo/BudgetMate/internal/finance/domain"
	financeErrors "github.com/sebuszqo/BudgetMate/internal/finance/errors"
)

type SettingsServiceInterface interface {
	GetSettings(userID string) (*domain.Settings, error)
	UpdateSettings(settings *domain.Settings) error
}

type SettingsHandler struct {
	service      SettingsServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewSettingsHandler(
	service SettingsServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *SettingsHandler {
	if service == nil {
		log.Fatal("Service must not be nil")
		return nil
	}
	return &SettingsHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	settings, err := h.service.GetSettings(userID)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve settings")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Settings retrieved successfully.",
		"data":    settings,
	})
}

func (h *SettingsHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var settings domain.Settings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	settings.UserID = userID

	if err := h.service.UpdateSettings(&settings); err != nil {
		if financeErrors.IsValidationError(err) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Println("Error during settings update:", err.Error())
		h.respondError(w, http.StatusInternalServerError, "Failed to update settings")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Settings successfully updated.",
		"data":    settings,
	})
}
