// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/rooseveltalej/WealthTrackAPI/internal/application/usecase/history"
)

// SimpleHistoryEntryResponse is one month of a transaction-kind series.
type SimpleHistoryEntryResponse struct {
	Year  int     `json:"year"`
	Month int     `json:"month"`
	Total float64 `json:"total"`
}

// SimpleHistoryResponse is the payload for transaction-kind history.
type SimpleHistoryResponse struct {
	Entries  []SimpleHistoryEntryResponse `json:"entries"`
	TotalSum float64                      `json:"total_sum"`
	Average  float64                      `json:"average"`
}

// GoalHistoryEntryResponse is one month of a goal-kind series.
type GoalHistoryEntryResponse struct {
	Year        int     `json:"year"`
	Month       int     `json:"month"`
	GoalValue   float64 `json:"goal_value"`
	ActualValue float64 `json:"actual_value"`
	Met         bool    `json:"met"`
}

// GoalHistoryResponse is the payload for goal-kind history.
type GoalHistoryResponse struct {
	Entries           []GoalHistoryEntryResponse `json:"entries"`
	TotalGoalValue    float64                    `json:"total_goal_value"`
	AverageGoalValue  float64                    `json:"average_goal_value"`
	GoalMetPercentage float64                    `json:"goal_met_percentage"`
}

// ToSimpleHistoryResponse converts a SimpleSeries to its response DTO.
func ToSimpleHistoryResponse(series *history.SimpleSeries) SimpleHistoryResponse {
	entries := make([]SimpleHistoryEntryResponse, 0, len(series.Entries))
	for _, e := range series.Entries {
		entries = append(entries, SimpleHistoryEntryResponse{
			Year:  e.Year,
			Month: e.Month,
			Total: e.Total.InexactFloat64(),
		})
	}
	return SimpleHistoryResponse{
		Entries:  entries,
		TotalSum: series.TotalSum.InexactFloat64(),
		Average:  series.Average.InexactFloat64(),
	}
}

// ToGoalHistoryResponse converts a GoalSeries to its response DTO.
func ToGoalHistoryResponse(series *history.GoalSeries) GoalHistoryResponse {
	entries := make([]GoalHistoryEntryResponse, 0, len(series.Entries))
	for _, e := range series.Entries {
		entries = append(entries, GoalHistoryEntryResponse{
			Year:        e.Year,
			Month:       e.Month,
			GoalValue:   e.GoalValue.InexactFloat64(),
			ActualValue: e.ActualValue.InexactFloat64(),
			Met:         e.Met,
		})
	}
	return GoalHistoryResponse{
		Entries:           entries,
		TotalGoalValue:    series.TotalGoalValue.InexactFloat64(),
		AverageGoalValue:  series.AverageGoalValue.InexactFloat64(),
		GoalMetPercentage: series.GoalMetPercentage.InexactFloat64(),
	}
}
