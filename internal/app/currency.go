package app

import (
	"context"
	"math"
	"strconv"
	"sync"

	"github.com/rs/zerolog/log"

	"venuedesk/internal/domain"
)

var currencySymbols = map[string]string{
	"TRY": "₺",
	"EUR": "€",
	"USD": "$",
}

// Currency holds the process-wide display currency and rate table, loaded
// once per application start. It is read-mostly; the lock is for the one-off
// Init racing concurrent handlers.
type Currency struct {
	backend  domain.CurrencyBackend
	fallback string

	mu    sync.RWMutex
	code  string
	rates domain.RateTable
}

func NewCurrency(backend domain.CurrencyBackend, fallback string) *Currency {
	return &Currency{backend: backend, fallback: fallback, code: fallback, rates: domain.RateTable{}}
}

// Init detects the display currency and fetches the rate table. A display
// currency is a presentation nicety, so any failure drops the whole setup
// back to the fallback: a detected currency without its rates would label
// unconverted amounts with the wrong glyph.
func (c *Currency) Init(ctx context.Context) {
	code, err := c.backend.DetectCurrency(ctx)
	if err != nil {
		log.Warn().Err(err).Str("fallback", c.fallback).Msg("currency detect failed")
		code = c.fallback
	}
	rates, err := c.backend.Rates(ctx)
	if err != nil {
		log.Warn().Err(err).Str("fallback", c.fallback).Msg("exchange rates fetch failed")
		code = c.fallback
		rates = domain.RateTable{}
	}
	c.mu.Lock()
	c.code = code
	c.rates = rates
	c.mu.Unlock()
}

func (c *Currency) Code() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.code
}

// Convert maps a raw amount in base currency to the display currency using
// the "BASE_to_DISPLAY" rate; without a rate the amount passes through
// unconverted, still labeled with the display currency.
func (c *Currency) Convert(amount float64, base string) (float64, string) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if base == c.code {
		return amount, c.code
	}
	if r, ok := c.rates[base+"_to_"+c.code]; ok {
		return amount * r, c.code
	}
	return amount, c.code
}

// FormatPrice renders a resolved price for display: pre-converted quotes are
// used verbatim, raw quotes go through Convert. Values round half-up to the
// whole unit and group thousands the Turkish way.
func (c *Currency) FormatPrice(q domain.PriceQuote) string {
	amount, code := q.Amount, q.Currency
	if !q.Converted {
		amount, code = c.Convert(q.Amount, q.Currency)
	}
	sym, ok := currencySymbols[code]
	if !ok {
		sym = code
	}
	return groupThousands(int64(math.Floor(amount+0.5))) + " " + sym
}

func groupThousands(n int64) string {
	neg := n < 0
	if neg {
		n = -n
	}
	s := strconv.FormatInt(n, 10)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "." + s[i:]
	}
	if neg {
		return "-" + s
	}
	return s
}
