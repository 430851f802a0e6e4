package interfaces

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sebuszqo/BudgetMate/internal/finance/domain"
	financeErrors "github.com/sebuszqo/BudgetMate/internal/finance/errors"
)

func TestCreateGoal_Success(t *testing.T) {
	body := `{"title":"Emergency Fund","target_amount":1200,"saved_amount":300,"deadline":"2030-01-01"}`
	req := withUserID(httptest.NewRequest(http.MethodPost, "/api/protected/goals", strings.NewReader(body)), "user-1")
	w := httptest.NewRecorder()

	handler := NewGoalHandler(&MockGoalService{}, respondJSON, respondError)
	handler.CreateGoal(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	var response map[string]interface{}
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	data, ok := response["data"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "generated-id", data["id"])
	assert.Equal(t, 25.0, data["progress"])
	assert.Equal(t, false, data["completed"])
}

func TestCreateGoal_InvalidDeadline(t *testing.T) {
	body := `{"title":"Trip","target_amount":500,"deadline":"soon"}`
	req := withUserID(httptest.NewRequest(http.MethodPost, "/api/protected/goals", strings.NewReader(body)), "user-1")
	w := httptest.NewRecorder()

	handler := NewGoalHandler(&MockGoalService{}, respondJSON, respondError)
	handler.CreateGoal(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	var response map[string]interface{}
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	assert.Equal(t, "Invalid deadline format, expected YYYY-MM-DD", response["message"])
}

func TestCreateGoal_PastDeadline(t *testing.T) {
	body := `{"title":"Trip","target_amount":500,"deadline":"2020-01-01"}`
	req := withUserID(httptest.NewRequest(http.MethodPost, "/api/protected/goals", strings.NewReader(body)), "user-1")
	w := httptest.NewRecorder()

	mockService := &MockGoalService{createErr: financeErrors.ErrDeadlineInPast}
	handler := NewGoalHandler(mockService, respondJSON, respondError)
	handler.CreateGoal(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	var response map[string]interface{}
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	assert.Equal(t, financeErrors.ErrDeadlineInPast.Error(), response["message"])
}

func TestGetUserGoals_AnnotatesDerivedFields(t *testing.T) {
	req := withUserID(httptest.NewRequest(http.MethodGet, "/api/protected/goals", nil), "user-1")
	w := httptest.NewRecorder()

	mockService := &MockGoalService{
		goals: []domain.Goal{
			{
				ID:           "goal-1",
				UserID:       "user-1",
				Title:        "Laptop",
				TargetAmount: 2000,
				SavedAmount:  2000,
				Deadline:     time.Now().AddDate(1, 0, 0),
			},
		},
	}
	handler := NewGoalHandler(mockService, respondJSON, respondError)
	handler.GetUserGoals(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response map[string]interface{}
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	data, ok := response["data"].([]interface{})
	assert.True(t, ok)
	assert.Len(t, data, 1)

	goal, ok := data[0].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, 100.0, goal["progress"])
	assert.Equal(t, true, goal["completed"])
	assert.Equal(t, 0.0, goal["monthly_target"])
}

func TestUpdateProgress_Success(t *testing.T) {
	req := withUserID(httptest.NewRequest(http.MethodPatch, "/api/protected/goals/goal-1/progress", strings.NewReader(`{"saved_amount":750}`)), "user-1")
	req.SetPathValue("goalID", "goal-1")
	w := httptest.NewRecorder()

	mockService := &MockGoalService{
		goals: []domain.Goal{
			{ID: "goal-1", UserID: "user-1", Title: "Trip", TargetAmount: 1000, SavedAmount: 100, Deadline: time.Now().AddDate(0, 6, 0)},
		},
	}
	handler := NewGoalHandler(mockService, respondJSON, respondError)
	handler.UpdateProgress(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response map[string]interface{}
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	data, ok := response["data"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, 750.0, data["saved_amount"])
	assert.Equal(t, 75.0, data["progress"])
}

func TestUpdateProgress_NegativeAmount(t *testing.T) {
	req := withUserID(httptest.NewRequest(http.MethodPatch, "/api/protected/goals/goal-1/progress", strings.NewReader(`{"saved_amount":-10}`)), "user-1")
	req.SetPathValue("goalID", "goal-1")
	w := httptest.NewRecorder()

	handler := NewGoalHandler(&MockGoalService{}, respondJSON, respondError)
	handler.UpdateProgress(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestUpdateProgress_GoalNotFound(t *testing.T) {
	req := withUserID(httptest.NewRequest(http.MethodPatch, "/api/protected/goals/goal-404/progress", strings.NewReader(`{"saved_amount":10}`)), "user-1")
	req.SetPathValue("goalID", "goal-404")
	w := httptest.NewRecorder()

	handler := NewGoalHandler(&MockGoalService{}, respondJSON, respondError)
	handler.UpdateProgress(w, req)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

func TestDeleteGoal_Success(t *testing.T) {
	req := withUserID(httptest.NewRequest(http.MethodDelete, "/api/protected/goals/goal-1", nil), "user-1")
	req.SetPathValue("goalID", "goal-1")
	w := httptest.NewRecorder()

	handler := NewGoalHandler(&MockGoalService{}, respondJSON, respondError)
	handler.DeleteGoal(w, req)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}
