// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/rooseveltalej/WealthTrackAPI/internal/application/usecase/dashboard"
)

// DashboardRequest represents the request body for the dashboard snapshot.
type DashboardRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// DashboardRecordResponse is one raw ledger record in a dashboard listing.
type DashboardRecordResponse struct {
	Date     string  `json:"date"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
}

// DashboardCategoryResponse is one category's summed amount for the month.
type DashboardCategoryResponse struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// DashboardResponse is the current-month snapshot payload.
type DashboardResponse struct {
	IncomeTotal     float64 `json:"incomeTotal"`
	ExpenseTotal    float64 `json:"expenseTotal"`
	SavingTotal     float64 `json:"savingTotal"`
	InvestmentTotal float64 `json:"investmentTotal"`

	ExpenseGoalPercent    float64 `json:"expenseGoalPercent"`
	SavingGoalPercent     float64 `json:"savingGoalPercent"`
	InvestmentGoalPercent float64 `json:"investmentGoalPercent"`

	Expenses    []DashboardRecordResponse `json:"expenses"`
	Savings     []DashboardRecordResponse `json:"savings"`
	Investments []DashboardRecordResponse `json:"investments"`

	CategoryExpenses    []DashboardCategoryResponse `json:"categoryExpenses"`
	CategorySavings     []DashboardCategoryResponse `json:"categorySavings"`
	CategoryInvestments []DashboardCategoryResponse `json:"categoryInvestments"`
}

// ToDashboardResponse converts a GetDashboardOutput to a DashboardResponse DTO.
func ToDashboardResponse(output *dashboard.GetDashboardOutput) DashboardResponse {
	return DashboardResponse{
		IncomeTotal:     output.IncomeTotal.InexactFloat64(),
		ExpenseTotal:    output.ExpenseTotal.InexactFloat64(),
		SavingTotal:     output.SavingTotal.InexactFloat64(),
		InvestmentTotal: output.InvestmentTotal.InexactFloat64(),

		ExpenseGoalPercent:    output.ExpenseGoalPercent.InexactFloat64(),
		SavingGoalPercent:     output.SavingGoalPercent.InexactFloat64(),
		InvestmentGoalPercent: output.InvestmentGoalPercent.InexactFloat64(),

		Expenses:    toRecordResponses(output.Expenses),
		Savings:     toRecordResponses(output.Savings),
		Investments: toRecordResponses(output.Investments),

		CategoryExpenses:    toCategoryResponses(output.CategoryExpenses),
		CategorySavings:     toCategoryResponses(output.CategorySavings),
		CategoryInvestments: toCategoryResponses(output.CategoryInvestments),
	}
}

func toRecordResponses(records []dashboard.RecordEntry) []DashboardRecordResponse {
	responses := make([]DashboardRecordResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, DashboardRecordResponse{
			Date:     r.Date.Format("2006-01-02"),
			Amount:   r.Amount.InexactFloat64(),
			Category: r.Category,
		})
	}
	return responses
}

func toCategoryResponses(categories []dashboard.CategoryEntry) []DashboardCategoryResponse {
	responses := make([]DashboardCategoryResponse, 0, len(categories))
	for _, c := range categories {
		responses = append(responses, DashboardCategoryResponse{
			Category: c.Category,
			Total:    c.Total.InexactFloat64(),
		})
	}
	return responses
}
