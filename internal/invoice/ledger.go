package invoice

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/shopspring/decimal"

	"invoicer/pkg/models"
)

// Ledger owns the raw line-item entries of one invoice.
//
// Entries are appended as-is by AddProduct; the running net and gross
// sums accumulate from every addition. Deduplication happens once, in
// finalize: entries sharing an identity key collapse into a single row
// whose quantity is the number of additions, keeping first-seen order.
// The sums are not touched by finalization, so they always equal the
// sum over all additions regardless of collapsing.
type Ledger struct {
	entries   []*entry
	netSum    decimal.Decimal
	grossSum  decimal.Decimal
	finalized bool
}

// entry is one raw addition. quantity is zero until finalize runs.
type entry struct {
	description string
	netPrice    decimal.Decimal
	taxRate     decimal.Decimal
	grossPrice  decimal.Decimal
	key         string
	quantity    int
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		netSum:   decimal.Zero,
		grossSum: decimal.Zero,
	}
}

// Add appends a raw entry and updates the running sums. Numeric ranges
// are not validated; negative prices are accepted as supplied.
func (l *Ledger) Add(description string, netPrice, taxRate, grossPrice decimal.Decimal) {
	l.entries = append(l.entries, &entry{
		description: description,
		netPrice:    netPrice,
		taxRate:     taxRate,
		grossPrice:  grossPrice,
		key:         identityKey(description, taxRate, netPrice),
	})
	l.netSum = l.netSum.Add(netPrice)
	l.grossSum = l.grossSum.Add(grossPrice)
}

// NetSum is the sum of net prices over all additions.
func (l *Ledger) NetSum() decimal.Decimal { return l.netSum }

// GrossSum is the sum of gross prices over all additions.
func (l *Ledger) GrossSum() decimal.Decimal { return l.grossSum }

// Empty reports whether no product has been added yet.
func (l *Ledger) Empty() bool { return len(l.entries) == 0 }

// finalize tags every entry with the number of additions sharing its
// identity key, then keeps exactly one entry per distinct key in
// first-occurrence order. Repeated calls are no-ops.
func (l *Ledger) finalize() {
	if l.finalized {
		return
	}
	l.finalized = true

	counts := make(map[string]int, len(l.entries))
	for _, e := range l.entries {
		counts[e.key]++
	}

	kept := l.entries[:0]
	seen := make(map[string]bool, len(counts))
	for _, e := range l.entries {
		if seen[e.key] {
			continue
		}
		seen[e.key] = true
		e.quantity = counts[e.key]
		kept = append(kept, e)
	}
	l.entries = kept
}

// Items returns the finalized rows as value records for the layout.
// Only meaningful after finalize has run.
func (l *Ledger) Items() []models.LineItem {
	items := make([]models.LineItem, 0, len(l.entries))
	for _, e := range l.entries {
		items = append(items, models.LineItem{
			Description: e.description,
			Quantity:    e.quantity,
			NetPrice:    e.netPrice,
			TaxRate:     e.taxRate,
			GrossPrice:  e.grossPrice,
		})
	}
	return items
}

// identityKey is a pure function of (description, taxRate, netPrice).
// Two additions with equal values of those three fields are the same
// line item. The hash serves only as an equality key; SHA-256 makes
// collisions astronomically unlikely.
func identityKey(description string, taxRate, netPrice decimal.Decimal) string {
	h := sha256.New()
	h.Write([]byte(description))
	h.Write([]byte{0})
	h.Write([]byte(taxRate.String()))
	h.Write([]byte{0})
	h.Write([]byte(netPrice.String()))
	return hex.EncodeToString(h.Sum(nil))
}
