package repository

import (
	"context"
	"errors"

	"golang-ai-analyzer/internal/analyzer/dto"
)

// ErrSymbolNotFound signals that a symbol is unknown or yielded no data.
// It is surfaced to the user as-is; no analysis is attempted for it.
var ErrSymbolNotFound = errors.New("invalid stock symbol or no data available")

// AIRepository is the LLM collaborator. Implementations accept a system
// instruction and a user prompt, constrain the model to a single JSON
// object, and return the raw content of the reply.
type AIRepository interface {
	GenerateJSON(ctx context.Context, systemInstruction, prompt string) (string, error)
}

// MarketDataRepository is the market data collaborator.
type MarketDataRepository interface {
	Get(ctx context.Context, param dto.GetStockDataParam) (*dto.StockData, error)
}
