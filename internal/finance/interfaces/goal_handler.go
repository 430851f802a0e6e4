package interfaces

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/sebuszqo/BudgetMate/internal/finance/domain"
	financeErrors "github.com/sebuszqo/BudgetMate/internal/finance/errors"
)

type GoalServiceInterface interface {
	CreateGoal(goal *domain.Goal) error
	GetUserGoals(userID string) ([]domain.Goal, error)
	UpdateGoal(goal *domain.Goal) error
	UpdateProgress(goalID, userID string, savedAmount float64) (*domain.Goal, error)
	DeleteGoal(goalID, userID string) error
}

type GoalHandler struct {
	service      GoalServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewGoalHandler(
	service GoalServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *GoalHandler {
	if service == nil {
		log.Fatal("Service must not be nil")
		return nil
	}
	return &GoalHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

type goalRequest struct {
	Title        string  `json:"title"`
	TargetAmount float64 `json:"target_amount"`
	SavedAmount  float64 `json:"saved_amount"`
	Deadline     string  `json:"deadline"`
}

func (req *goalRequest) toDomain(userID string) (*domain.Goal, error) {
	deadline, err := time.Parse(dateLayout, req.Deadline)
	if err != nil {
		return nil, err
	}
	return &domain.Goal{
		UserID:       userID,
		Title:        req.Title,
		TargetAmount: req.TargetAmount,
		SavedAmount:  req.SavedAmount,
		Deadline:     deadline,
	}, nil
}

// goalResponse annotates a goal with its derived numbers so clients never
// recompute them.
type goalResponse struct {
	domain.Goal
	Progress      float64 `json:"progress"`
	MonthlyTarget float64 `json:"monthly_target"`
	Completed     bool    `json:"completed"`
}

func newGoalResponse(goal domain.Goal, today time.Time) goalResponse {
	return goalResponse{
		Goal:          goal,
		Progress:      goal.Progress(),
		MonthlyTarget: goal.MonthlyTarget(today),
		Completed:     goal.IsCompleted(),
	}
}

func (h *GoalHandler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req goalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	goal, err := req.toDomain(userID)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid deadline format, expected YYYY-MM-DD")
		return
	}

	if err := h.service.CreateGoal(goal); err != nil {
		if financeErrors.IsValidationError(err) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Println("Error during goal creation:", err.Error())
		h.respondError(w, http.StatusInternalServerError, "Failed to create goal")
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Goal successfully created.",
		"data":    newGoalResponse(*goal, time.Now()),
	})
}

func (h *GoalHandler) GetUserGoals(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	goals, err := h.service.GetUserGoals(userID)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve goals")
		return
	}

	today := time.Now()
	responses := make([]goalResponse, 0, len(goals))
	for _, goal := range goals {
		responses = append(responses, newGoalResponse(goal, today))
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Goals retrieved successfully.",
		"data":    responses,
	})
}

func (h *GoalHandler) UpdateGoal(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	goalID := r.PathValue("goalID")
	if goalID == "" {
		h.respondError(w, http.StatusBadRequest, "Goal ID is required")
		return
	}
	var req goalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	goal, err := req.toDomain(userID)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid deadline format, expected YYYY-MM-DD")
		return
	}
	goal.ID = goalID

	if err := h.service.UpdateGoal(goal); err != nil {
		if financeErrors.IsValidationError(err) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		if financeErrors.IsNotFound(err) {
			h.respondError(w, http.StatusNotFound, err.Error())
			return
		}
		log.Println("Error during goal update:", err.Error())
		h.respondError(w, http.StatusInternalServerError, "Failed to update goal")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Goal successfully updated.",
		"data":    newGoalResponse(*goal, time.Now()),
	})
}

func (h *GoalHandler) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	goalID := r.PathValue("goalID")
	if goalID == "" {
		h.respondError(w, http.StatusBadRequest, "Goal ID is required")
		return
	}
	var req struct {
		SavedAmount float64 `json:"saved_amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	goal, err := h.service.UpdateProgress(goalID, userID, req.SavedAmount)
	if err != nil {
		if financeErrors.IsValidationError(err) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		if financeErrors.IsNotFound(err) {
			h.respondError(w, http.StatusNotFound, err.Error())
			return
		}
		log.Println("Error during goal progress update:", err.Error())
		h.respondError(w, http.StatusInternalServerError, "Failed to update goal progress")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Goal progress successfully updated.",
		"data":    newGoalResponse(*goal, time.Now()),
	})
}

func (h *GoalHandler) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	goalID := r.PathValue("goalID")
	if goalID == "" {
		h.respondError(w, http.StatusBadRequest, "Goal ID is required")
		return
	}

	if err := h.service.DeleteGoal(goalID, userID); err != nil {
		log.Println("Error during goal deletion:", err.Error())
		h.respondError(w, http.StatusInternalServerError, "Failed to delete goal")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Goal successfully deleted.",
	})
}
