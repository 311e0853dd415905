// Package lifecycle models the order status progression shown on the
// customer-facing tracking timeline and enforced on admin updates.
package lifecycle

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/aquawash/api/internal/enum"
)

// ProgressSteps is the ordered fulfilment timeline. PENDING is a
// pre-progression state and CANCELLED a side branch; neither appears on
// the timeline, which always starts at CONFIRMED.
var ProgressSteps = []string{
	enum.OrderStatusConfirmed,
	enum.OrderStatusPickedUp,
	enum.OrderStatusInProcess,
	enum.OrderStatusReadyForDelivery,
	enum.OrderStatusDelivered,
}

// CurrentStepIndex returns the zero-based position of status on the
// progression timeline, or -1 for statuses off the timeline (PENDING,
// CANCELLED, or anything unknown). A step i is rendered completed iff
// i <= CurrentStepIndex(status).
func CurrentStepIndex(status string) int {
	for i, s := range ProgressSteps {
		if s == status {
			return i
		}
	}
	return -1
}

// IsValid reports whether status is one of the seven known values.
func IsValid(status string) bool {
	switch status {
	case enum.OrderStatusPending,
		enum.OrderStatusConfirmed,
		enum.OrderStatusPickedUp,
		enum.OrderStatusInProcess,
		enum.OrderStatusReadyForDelivery,
		enum.OrderStatusDelivered,
		enum.OrderStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether status ends the order's life by
// convention: no UI path leads out of DELIVERED or CANCELLED, and the
// cancel and weighing flows refuse to touch such orders. Plain status
// writes stay permissive, see ValidateTarget.
func IsTerminal(status string) bool {
	return status == enum.OrderStatusDelivered || status == enum.OrderStatusCancelled
}

// ValidateTarget checks an admin status write. Any known status is an
// accepted target: the fulfilment flow deliberately lets admins move
// orders freely, including backwards or out of a terminal state, so
// only unknown values are rejected.
func ValidateTarget(next string) error {
	if !IsValid(next) {
		return fmt.Errorf("unknown status %q", next)
	}
	return nil
}

// Label converts a status value to its human form, e.g.
// READY_FOR_DELIVERY -> "Ready For Delivery".
func Label(status string) string {
	words := strings.Split(strings.ToLower(status), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// FinalPriceVisible is the finality rule for customer-facing pricing:
// reconciled weight/price are shown only once the order has been
// weighed and is READY_FOR_DELIVERY or DELIVERED. Until then the UI
// shows a pending-weighing placeholder.
func FinalPriceVisible(status string, finalWeightSet bool) bool {
	if !finalWeightSet {
		return false
	}
	return status == enum.OrderStatusReadyForDelivery || status == enum.OrderStatusDelivered
}
