// Package dashboard joins pinned properties with live page data and orders
// the result for display. Everything here is pure computation over
// already-fetched snapshots.
package dashboard

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/bnema/pinboard/internal/domain/entity"
)

// ReconciledRecord is a pin annotated with its live value.
type ReconciledRecord struct {
	// Index is the position of the pin in the full persisted list.
	Index    int
	Property entity.PinnedProperty
	Found    bool
	// Display is the value formatted for display; empty when not found.
	Display      string
	JSONViewable bool
	// Raw is the value as returned by the source.
	Raw any
}

// Identity returns the identity of the underlying pin.
func (r ReconciledRecord) Identity() entity.PropertyIdentity {
	return r.Property.Identity()
}

// RelevantTo reports whether a pin belongs on the dashboard for domain.
// Matching is exact; pins without a domain are always relevant.
func RelevantTo(p entity.PinnedProperty, domain string) bool {
	return p.Domain == "" || p.Domain == domain
}

// Reconcile filters pins to the current domain and looks up each one in
// the snapshot. Output preserves the filtered pin order.
func Reconcile(pins []entity.PinnedProperty, domain string, snap entity.Snapshot) []ReconciledRecord {
	records := make([]ReconciledRecord, 0, len(pins))
	for i, p := range pins {
		if !RelevantTo(p, domain) {
			continue
		}
		lv := snap.Lookup(p.Type, p.Key)
		rec := ReconciledRecord{
			Index:    i,
			Property: p,
			Found:    lv.Found,
			Raw:      lv.Value,
		}
		if lv.Found {
			rec.Display = FormatValue(lv.Value)
			rec.JSONViewable = isStructured(lv.Value) || IsJSONViewable(rec.Display)
		}
		records = append(records, rec)
	}
	return records
}

// FormatValue renders a live value as a display string. Structured values
// are pretty-printed as JSON with a two-space indent.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case json.Number:
		return val.String()
	case fmt.Stringer:
		return val.String()
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(data)
}

func isStructured(v any) bool {
	switch v.(type) {
	case map[string]any, []any:
		return true
	}
	return false
}
