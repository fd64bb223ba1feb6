package dashboard

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/bnema/pinboard/internal/domain/entity"
)

// DefaultLocale is used when no collation locale is configured.
const DefaultLocale = "en"

// Organizer orders reconciled records for display.
type Organizer struct {
	tag language.Tag
}

// NewOrganizer creates an organizer that compares strings with the
// collation rules of locale (a BCP 47 tag). Invalid tags fall back to
// DefaultLocale.
func NewOrganizer(locale string) *Organizer {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Make(DefaultLocale)
	}
	return &Organizer{tag: tag}
}

// Organize returns records ordered by mode. The input slice is not
// modified. All sorts are stable, so ties keep their incoming order.
func (o *Organizer) Organize(records []ReconciledRecord, mode entity.OrganizationMode) []ReconciledRecord {
	out := slices.Clone(records)
	if len(out) < 2 {
		return out
	}

	switch mode {
	case entity.OrganizeCustom:
		// Stored list order is the manual order.
		slices.SortStableFunc(out, func(a, b ReconciledRecord) int {
			return cmp.Compare(a.Index, b.Index)
		})
	case entity.OrganizeByType:
		slices.SortStableFunc(out, func(a, b ReconciledRecord) int {
			return cmp.Compare(a.Property.Type.Rank(), b.Property.Type.Rank())
		})
	case entity.OrganizeByDomain:
		// Collator keeps scratch buffers and is not safe to share.
		col := collate.New(o.tag)
		slices.SortStableFunc(out, func(a, b ReconciledRecord) int {
			return col.CompareString(a.Property.Domain, b.Property.Domain)
		})
	case entity.OrganizeAlphabetical:
		col := collate.New(o.tag, collate.IgnoreCase)
		slices.SortStableFunc(out, func(a, b ReconciledRecord) int {
			return col.CompareString(a.Property.DisplayName(), b.Property.DisplayName())
		})
	default:
		slices.SortStableFunc(out, comparePinOrder)
	}
	return out
}

// comparePinOrder orders by pin sequence. Legacy entries without a
// sequence fall back to their list position.
func comparePinOrder(a, b ReconciledRecord) int {
	if c := cmp.Compare(a.Property.Seq, b.Property.Seq); c != 0 {
		return c
	}
	return cmp.Compare(a.Index, b.Index)
}

var defaultOrganizer = NewOrganizer(DefaultLocale)

// Organize orders records with the default locale.
func Organize(records []ReconciledRecord, mode entity.OrganizationMode) []ReconciledRecord {
	return defaultOrganizer.Organize(records, mode)
}
