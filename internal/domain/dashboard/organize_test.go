package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/pinboard/internal/domain/entity"
)

func keysOf(records []ReconciledRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Property.Key
	}
	return out
}

func sampleRecords() []ReconciledRecord {
	// Stored (custom) order differs from pin sequence on purpose.
	return []ReconciledRecord{
		{Index: 0, Property: entity.PinnedProperty{Type: entity.PropertyTypeCookie, Key: "zeta", Domain: "b.com", Seq: 3}},
		{Index: 1, Property: entity.PinnedProperty{Type: entity.PropertyTypeLocalStorage, Key: "alpha", Alias: "Écho", Domain: "c.com", Seq: 1}},
		{Index: 2, Property: entity.PinnedProperty{Type: entity.PropertyTypeSessionStorage, Key: "beta", Domain: "a.com", Seq: 4}},
		{Index: 3, Property: entity.PinnedProperty{Type: entity.PropertyTypeLocalStorage, Key: "gamma", Domain: "b.com", Seq: 2}},
	}
}

func TestOrganize_Default_UsesPinSequence(t *testing.T) {
	got := Organize(sampleRecords(), entity.OrganizeDefault)
	assert.Equal(t, []string{"alpha", "gamma", "zeta", "beta"}, keysOf(got))
}

func TestOrganize_Default_LegacyFallsBackToIndex(t *testing.T) {
	records := []ReconciledRecord{
		{Index: 1, Property: entity.PinnedProperty{Key: "second"}},
		{Index: 0, Property: entity.PinnedProperty{Key: "first"}},
	}
	got := Organize(records, entity.OrganizeDefault)
	assert.Equal(t, []string{"first", "second"}, keysOf(got))
}

func TestOrganize_Custom_UsesStoredOrder(t *testing.T) {
	got := Organize(sampleRecords(), entity.OrganizeCustom)
	assert.Equal(t, []string{"zeta", "alpha", "beta", "gamma"}, keysOf(got))
}

func TestOrganize_ByType_IsStable(t *testing.T) {
	got := Organize(sampleRecords(), entity.OrganizeByType)
	assert.Equal(t, []string{"alpha", "gamma", "beta", "zeta"}, keysOf(got))
}

func TestOrganize_ByDomain(t *testing.T) {
	got := Organize(sampleRecords(), entity.OrganizeByDomain)
	assert.Equal(t, []string{"beta", "zeta", "gamma", "alpha"}, keysOf(got))
}

func TestOrganize_Alphabetical_UsesAliasAndCollation(t *testing.T) {
	got := Organize(sampleRecords(), entity.OrganizeAlphabetical)
	// "Écho" collates with the e's, between "beta" and "gamma".
	assert.Equal(t, []string{"beta", "alpha", "gamma", "zeta"}, keysOf(got))
}

func TestOrganize_DoesNotMutateInput(t *testing.T) {
	in := sampleRecords()
	_ = Organize(in, entity.OrganizeAlphabetical)
	assert.Equal(t, sampleRecords(), in)
}

func TestOrganize_UnknownModeActsAsDefault(t *testing.T) {
	got := Organize(sampleRecords(), entity.OrganizationMode("bogus"))
	assert.Equal(t, keysOf(Organize(sampleRecords(), entity.OrganizeDefault)), keysOf(got))
}

func TestNewOrganizer_InvalidLocaleFallsBack(t *testing.T) {
	o := NewOrganizer("!!")
	got := o.Organize(sampleRecords(), entity.OrganizeByDomain)
	assert.Len(t, got, 4)
}
