package service

import (
	"context"
	"math/rand"
	"time"

	hclog "github.com/hashicorp/go-hclog"

	"pomo/internal/modules/quote/domain"
	quoteout "pomo/internal/modules/quote/port/out"
)

// Provider holds the quotes loaded once at construction.
type Provider struct {
	quotes   []domain.Quote
	fallback bool
	rng      *rand.Rand
}

func NewProvider(ctx context.Context, source quoteout.QuoteSource, rng *rand.Rand, logger hclog.Logger) *Provider {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	p := &Provider{rng: rng}

	quotes, err := source.Load(ctx)
	switch {
	case err != nil:
		logger.Warn("quotes unavailable, using fallback", "error", err)
	case len(quotes) == 0:
		logger.Warn("quotes file has no entries, using fallback")
	default:
		p.quotes = quotes
		logger.Debug("quotes loaded", "count", len(quotes))
		return p
	}
	p.quotes = []domain.Quote{domain.Fallback}
	p.fallback = true
	return p
}

// Next samples uniformly with replacement.
func (p *Provider) Next() domain.Quote {
	return p.quotes[p.rng.Intn(len(p.quotes))]
}

func (p *Provider) Count() int { return len(p.quotes) }

func (p *Provider) Fallback() bool { return p.fallback }
