package validation

import (
	"fmt"
	"strings"

	"github.com/samimoudarres/SimVest-Market-Data-Backend/internal/apperrors"
	"github.com/samimoudarres/SimVest-Market-Data-Backend/internal/model"
)

// MinQueryLength is the shortest search query the API accepts.
const MinQueryLength = 2

// maxSymbolLength bounds ticker symbols; the longest real tickers (class
// shares, crypto pairs) stay well under this.
const maxSymbolLength = 12

// NormalizeSymbol trims and upper-cases a ticker symbol and checks it against
// the allowed character set (letters, digits, dot, dash). Returns the
// normalized symbol or ErrInvalidSymbol.
func NormalizeSymbol(symbol string) (string, error) {
	s := strings.ToUpper(strings.TrimSpace(symbol))
	if s == "" || len(s) > maxSymbolLength {
		return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidSymbol, symbol)
	}
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '.' || r == '-':
		default:
			return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidSymbol, symbol)
		}
	}
	return s, nil
}

// ValidateQuery trims a search query and enforces the minimum length.
// Returns the trimmed query or ErrQueryTooShort.
func ValidateQuery(query string) (string, error) {
	q := strings.TrimSpace(query)
	if len(q) < MinQueryLength {
		return "", apperrors.ErrQueryTooShort
	}
	return q, nil
}

// ParseTimeframe validates a chart timeframe token, wrapping the model error
// so handlers can map it to a 400 response.
func ParseTimeframe(s string) (model.Timeframe, error) {
	tf, err := model.ParseTimeframe(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidTimeframe, s)
	}
	return tf, nil
}
