package request

import (
	"strings"

	"github.com/samimoudarres/SimVest-Market-Data-Backend/internal/model"
	"github.com/samimoudarres/SimVest-Market-Data-Backend/internal/validation"
)

// UpdateMarketDataKeyRequest carries a new upstream API credential.
type UpdateMarketDataKeyRequest struct {
	APIKey string `json:"apiKey"`
}

// ParseTimeframe validates the timeframe query parameter, defaulting to 1D
// when absent.
func ParseTimeframe(raw string) (model.Timeframe, error) {
	if strings.TrimSpace(raw) == "" {
		return model.Timeframe1D, nil
	}
	return validation.ParseTimeframe(raw)
}

// ParseSymbolList splits a comma-separated symbols query parameter,
// normalizing each entry and dropping malformed ones. Unknown but well-formed
// symbols are kept: downstream fallback handles them.
func ParseSymbolList(raw string) []string {
	parts := strings.Split(raw, ",")
	symbols := make([]string, 0, len(parts))
	for _, p := range parts {
		sym, err := validation.NormalizeSymbol(p)
		if err != nil {
			continue
		}
		symbols = append(symbols, sym)
	}
	return symbols
}
