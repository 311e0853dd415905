package grouping

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Item is one order line carrying its denormalised service fields.
type Item struct {
	ID              uuid.UUID
	ServiceName     string
	ItemName        string // optional
	Quantity        int32
	PricePerKg      decimal.Decimal
	EstimatedWeight decimal.Decimal // zero when not recorded
	FinalWeight     decimal.Decimal // zero until reconciled
}

// GroupedItem is the derived, display-only aggregation of items sharing
// a cleaned service name and item name. Never persisted; recomputed on
// every read.
type GroupedItem struct {
	DisplayName     string
	ItemName        string
	TotalQuantity   int32
	PricePerKg      decimal.Decimal
	EstimatedWeight decimal.Decimal
	FinalWeight     decimal.Decimal
}

// GroupItems aggregates order items by cleaned service name + item
// name. Accumulation is commutative; the result preserves first-seen
// key order for stable display. PricePerKg is taken from the first item
// of each group.
func GroupItems(items []Item) []GroupedItem {
	index := make(map[string]int, len(items))
	var groups []GroupedItem

	for _, item := range items {
		name := CleanServiceName(item.ServiceName)
		key := name
		if item.ItemName != "" {
			key += "-" + item.ItemName
		}

		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, GroupedItem{
				DisplayName: name,
				ItemName:    item.ItemName,
				PricePerKg:  item.PricePerKg,
			})
		}

		groups[i].TotalQuantity += item.Quantity
		groups[i].EstimatedWeight = groups[i].EstimatedWeight.Add(item.EstimatedWeight)
		groups[i].FinalWeight = groups[i].FinalWeight.Add(item.FinalWeight)
	}

	return groups
}
