package dto

import (
	"github.com/LurkingGoo/cash-flow-sync-pilot/internal/core/domain"
	"github.com/LurkingGoo/cash-flow-sync-pilot/internal/utils/finmath"
	"github.com/shopspring/decimal"
)

// ExpenseResponse is one expense row with its display fields joined in.
type ExpenseResponse struct {
	TransactionID   string          `json:"transactionID"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
	CategoryName    string          `json:"categoryName"`
	CategoryColor   string          `json:"categoryColor"`
	CardName        string          `json:"cardName"`
	TransactionDate string          `json:"transactionDate"`
}

// HoldingResponse is one valued portfolio position.
type HoldingResponse struct {
	Symbol       string           `json:"symbol"`
	Shares       decimal.Decimal  `json:"shares"`
	AveragePrice decimal.Decimal  `json:"averagePrice"`
	CurrentPrice *decimal.Decimal `json:"currentPrice,omitempty"`
	Value        decimal.Decimal  `json:"value"`
}

// HoldingsResponse is the portfolio listing with its total value.
type HoldingsResponse struct {
	Holdings   []HoldingResponse `json:"holdings"`
	TotalValue decimal.Decimal   `json:"totalValue"`
}

// CategoryResponse is one selectable category.
type CategoryResponse struct {
	CategoryID string `json:"categoryID"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	Color      string `json:"color"`
}

// CardResponse is one selectable payment card.
type CardResponse struct {
	CardID string `json:"cardID"`
	Name   string `json:"name"`
}

// ToExpenseResponses converts joined expense rows to their response shape.
func ToExpenseResponses(records []domain.ExpenseRecord) []ExpenseResponse {
	response := make([]ExpenseResponse, len(records))
	for i, record := range records {
		response[i] = ExpenseResponse{
			TransactionID:   record.TransactionID,
			Amount:          record.Amount,
			Description:     record.Description,
			CategoryName:    record.CategoryName,
			CategoryColor:   record.CategoryColor,
			CardName:        record.CardName,
			TransactionDate: record.TransactionDate.Format("2006-01-02"),
		}
	}
	return response
}

// ToHoldingsResponse converts positions to their valued response shape.
func ToHoldingsResponse(holdings []domain.Holding, total decimal.Decimal) HoldingsResponse {
	response := HoldingsResponse{
		Holdings:   make([]HoldingResponse, len(holdings)),
		TotalValue: total,
	}
	for i, holding := range holdings {
		response.Holdings[i] = HoldingResponse{
			Symbol:       holding.Symbol,
			Shares:       holding.Shares,
			AveragePrice: holding.AveragePrice,
			CurrentPrice: holding.CurrentPrice,
			Value:        finmath.HoldingValue(holding),
		}
	}
	return response
}

// ToCategoryResponses converts categories to their response shape.
func ToCategoryResponses(categories []domain.Category) []CategoryResponse {
	response := make([]CategoryResponse, len(categories))
	for i, category := range categories {
		response[i] = CategoryResponse{
			CategoryID: category.CategoryID,
			Name:       category.Name,
			Type:       string(category.Type),
			Color:      category.Color,
		}
	}
	return response
}

// ToCardResponses converts cards to their response shape.
func ToCardResponses(cards []domain.Card) []CardResponse {
	response := make([]CardResponse, len(cards))
	for i, card := range cards {
		response[i] = CardResponse{
			CardID: card.CardID,
			Name:   card.Name,
		}
	}
	return response
}
