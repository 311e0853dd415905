// Package pricing implements the weight-to-price reconciliation
// calculator used by the admin fulfilment flow: per-item weight entry
// with guideline-based defaults and live total weight/price recompute.
package pricing

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Guideline is a per-piece weight range in kilograms.
type Guideline struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

// DefaultWeight is the guideline midpoint times quantity.
func (g Guideline) DefaultWeight(quantity int32) decimal.Decimal {
	mid := g.Min.Add(g.Max).Div(decimal.NewFromInt(2))
	return mid.Mul(decimal.NewFromInt32(quantity))
}

type guidelineEntry struct {
	keyword   string
	guideline Guideline
}

// Matched against the service name case-insensitively; first match
// wins, so more specific keywords come first.
var guidelines = []guidelineEntry{
	{"bedsheet", Guideline{dec("0.4"), dec("0.8")}},
	{"blanket", Guideline{dec("1.5"), dec("3.0")}},
	{"shirt", Guideline{dec("0.2"), dec("0.4")}},
	{"pants", Guideline{dec("0.3"), dec("0.6")}},
	{"dress", Guideline{dec("0.3"), dec("0.7")}},
	{"towel", Guideline{dec("0.3"), dec("0.6")}},
	{"normal clothes", Guideline{dec("0.2"), dec("0.5")}},
}

// DefaultGuideline applies when no keyword matches.
var DefaultGuideline = Guideline{dec("0.2"), dec("1.0")}

// GuidelineFor picks the weight guideline for a service by
// case-insensitive substring match on its name.
func GuidelineFor(serviceName string) Guideline {
	name := strings.ToLower(serviceName)
	for _, e := range guidelines {
		if strings.Contains(name, e.keyword) {
			return e.guideline
		}
	}
	return DefaultGuideline
}

// Item is one order line as seen by the calculator.
type Item struct {
	ID              uuid.UUID
	ServiceName     string
	Quantity        int32
	EstimatedWeight decimal.Decimal // zero when not recorded
	PricePerKg      decimal.Decimal
}

// Calculator holds the editable per-item weight map for one order.
// Totals are always derived from the map, never set directly.
type Calculator struct {
	items   []Item
	weights map[uuid.UUID]decimal.Decimal
}

// NewCalculator seeds the weight map. If the order has exactly one item
// and a previously reconciled final weight exists, that single item is
// seeded with it; otherwise each item gets its own estimated weight
// when nonzero, falling back to the guideline default for its service.
func NewCalculator(items []Item, savedFinalWeight decimal.Decimal, hasSaved bool) *Calculator {
	c := &Calculator{
		items:   items,
		weights: make(map[uuid.UUID]decimal.Decimal, len(items)),
	}

	if len(items) == 1 && hasSaved {
		c.weights[items[0].ID] = savedFinalWeight
		return c
	}

	for _, item := range items {
		if !item.EstimatedWeight.IsZero() {
			c.weights[item.ID] = item.EstimatedWeight
			continue
		}
		c.weights[item.ID] = GuidelineFor(item.ServiceName).DefaultWeight(item.Quantity)
	}
	return c
}

// ParseWeight coerces free-form weight input to a usable decimal:
// empty or unparseable input becomes zero, and negative values are
// clamped to zero.
func ParseWeight(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// SetWeight overwrites one item's weight with free-form input.
// Unknown item IDs are ignored.
func (c *Calculator) SetWeight(itemID uuid.UUID, raw string) {
	if _, ok := c.weights[itemID]; !ok {
		return
	}
	c.weights[itemID] = ParseWeight(raw)
}

// Weight returns the current weight for an item.
func (c *Calculator) Weight(itemID uuid.UUID) decimal.Decimal {
	return c.weights[itemID]
}

// TotalWeight is the sum of all item weights.
func (c *Calculator) TotalWeight() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(c.weights[item.ID])
	}
	return total
}

// TotalPrice is the sum of weight x per-kg price over all items.
func (c *Calculator) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(c.weights[item.ID].Mul(item.PricePerKg))
	}
	return total
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}
