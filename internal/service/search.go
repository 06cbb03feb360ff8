package service

import (
	"context"
	"log"
	"sort"

	"github.com/samimoudarres/SimVest-Market-Data-Backend/internal/model"
	"github.com/samimoudarres/SimVest-Market-Data-Backend/internal/validation"
)

// maxSearchResults caps a search response.
const maxSearchResults = 10

// sparseLocalThreshold is the local match count below which an upstream
// symbol search is worth spending rate budget on.
const sparseLocalThreshold = 5

// SearchStocks returns ranked symbol matches for a partial query. Queries
// shorter than two characters are rejected with ErrQueryTooShort, the one
// error this subsystem surfaces to callers. Local catalog matches come
// first-class; when they are sparse and the governor permits, upstream
// matches augment them. Duplicates dedupe by symbol with the local entry
// winning, since it carries curated display metadata.
func (s *StockService) SearchStocks(ctx context.Context, query string) ([]model.SearchResult, error) {
	q, err := validation.ValidateQuery(query)
	if err != nil {
		return nil, err
	}

	results := s.catalog.Search(q)

	if len(results) < sparseLocalThreshold && s.client.Configured() && s.governor.TryAcquire() {
		upstream, err := s.client.SearchSymbols(ctx, q)
		if err != nil {
			log.Printf("upstream symbol search failed query=%q: %v", q, err)
		} else {
			results = mergeSearchResults(results, upstream)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].MatchScore != results[j].MatchScore {
			return results[i].MatchScore > results[j].MatchScore
		}
		return results[i].Symbol < results[j].Symbol
	})

	if len(results) > maxSearchResults {
		results = results[:maxSearchResults]
	}
	return results, nil
}

// mergeSearchResults appends upstream matches whose symbols are not already
// present locally.
func mergeSearchResults(local, upstream []model.SearchResult) []model.SearchResult {
	seen := make(map[string]bool, len(local))
	for _, r := range local {
		seen[r.Symbol] = true
	}
	for _, r := range upstream {
		if seen[r.Symbol] {
			continue
		}
		seen[r.Symbol] = true
		local = append(local, r)
	}
	return local
}
