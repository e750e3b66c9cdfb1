// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/rooseveltalej/WealthTrackAPI/internal/domain/entity"
)

// GoalRequest represents the request body for goal writes (upsert and the
// legacy create-only path share the shape).
type GoalRequest struct {
	UserID string  `json:"user_id" binding:"required,uuid"`
	Date   string  `json:"date" binding:"required"`
	Value  float64 `json:"value"`
}

// GoalResponse represents a goal row in API responses.
type GoalResponse struct {
	ID     string  `json:"id"`
	UserID string  `json:"user_id"`
	Date   string  `json:"date"`
	Value  float64 `json:"value"`
	Kind   string  `json:"kind"`
}

// ToGoalResponse converts a Goal entity to a GoalResponse DTO.
func ToGoalResponse(goal *entity.Goal) GoalResponse {
	return GoalResponse{
		ID:     goal.ID.String(),
		UserID: goal.UserID.String(),
		Date:   goal.Date.Format("2006-01-02"),
		Value:  goal.Value.InexactFloat64(),
		Kind:   string(goal.Kind),
	}
}
