package usecase

import (
	"context"

	"github.com/bnema/pinboard/internal/domain/dashboard"
	"github.com/bnema/pinboard/internal/domain/entity"
	"github.com/bnema/pinboard/internal/logging"
)

// DefaultMaxSearchResults caps a search when no limit is configured.
const DefaultMaxSearchResults = 200

// SearchPropertiesUseCase searches the cached live data of the current tab.
type SearchPropertiesUseCase struct {
	pins *ManagePinsUseCase
	opts dashboard.SearchOptions
}

// NewSearchPropertiesUseCase creates a new search use case.
func NewSearchPropertiesUseCase(pins *ManagePinsUseCase, opts dashboard.SearchOptions) *SearchPropertiesUseCase {
	if opts.MinQueryLength <= 0 {
		opts.MinQueryLength = dashboard.MinQueryLength
	}
	if opts.MaxResults <= 0 {
		opts.MaxResults = DefaultMaxSearchResults
	}
	return &SearchPropertiesUseCase{pins: pins, opts: opts}
}

// SearchOutput is the result of a search.
type SearchOutput struct {
	Query   string
	Results []dashboard.SearchResult
	// Truncated is true when the result cap was reached.
	Truncated bool
}

// Search matches query against keys and values of snap, flagging results
// that are already pinned for domain.
func (uc *SearchPropertiesUseCase) Search(ctx context.Context, query string, snap entity.Snapshot, domain string) (*SearchOutput, error) {
	log := logging.FromContext(ctx)
	log.Debug().Str("query", query).Str("domain", domain).Msg("searching live properties")

	pins, err := uc.pins.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	results := dashboard.Search(query, snap, pins, domain, uc.opts)
	out := &SearchOutput{
		Query:     query,
		Results:   results,
		Truncated: len(results) >= uc.opts.MaxResults,
	}

	log.Debug().Int("count", len(results)).Bool("truncated", out.Truncated).Msg("search completed")
	return out, nil
}

// PinFromResult pins a search result for domain under alias, which may be
// empty.
//
// The pin is de-duplicated by exact domain, so a result flagged as pinned
// through a parent cookie domain can still be pinned for this domain.
func (uc *SearchPropertiesUseCase) PinFromResult(ctx context.Context, result dashboard.SearchResult, domain, alias string, tab *entity.Tab) (PinResult, error) {
	input := PinInput{
		Type:   result.Type,
		Key:    result.Key,
		Domain: domain,
		Alias:  alias,
	}
	if tab != nil {
		input.URL = tab.URL
		input.TabID = tab.ID
	}
	return uc.pins.Pin(ctx, input)
}
