package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/bnema/pinboard/internal/domain/entity"
	"github.com/bnema/pinboard/internal/domain/repository"
	"github.com/bnema/pinboard/internal/logging"
)

// ManagePinsUseCase owns the persisted list of pinned properties.
//
// Every mutation reads the entire list, changes it and writes the entire
// list back. Two concurrent mutations can therefore lose an update; the
// dashboard assumes a single panel instance writes the store.
type ManagePinsUseCase struct {
	store repository.BlobStore
}

// NewManagePinsUseCase creates a new pin management use case.
func NewManagePinsUseCase(store repository.BlobStore) *ManagePinsUseCase {
	return &ManagePinsUseCase{store: store}
}

// PinInput contains parameters for pinning a property.
type PinInput struct {
	Type   entity.PropertyType
	Key    string
	Domain string
	// Alias defaults to Key.
	Alias string
	URL   string
	TabID string
}

// PinResult describes the outcome of a pin request.
type PinResult struct {
	Property entity.PinnedProperty
	// Index is the position of the pin in the stored list.
	Index int
	// AlreadyPinned is true when an identical (type, key, domain) pin
	// existed; the store was left unchanged.
	AlreadyPinned bool
}

// Pin appends a property to the pinned list. De-duplication uses exact
// (type, key, domain) equality; a duplicate is reported, not an error.
func (uc *ManagePinsUseCase) Pin(ctx context.Context, input PinInput) (PinResult, error) {
	log := logging.FromContext(ctx)
	log.Debug().
		Str("type", string(input.Type)).
		Str("key", input.Key).
		Str("domain", input.Domain).
		Msg("pinning property")

	if !input.Type.Valid() {
		return PinResult{}, fmt.Errorf("%w: unknown type %q", ErrInvalidPin, input.Type)
	}
	if input.Key == "" {
		return PinResult{}, fmt.Errorf("%w: empty key", ErrInvalidPin)
	}

	pins, err := loadPinnedList(ctx, uc.store)
	if err != nil {
		return PinResult{}, err
	}

	id := entity.PropertyIdentity{Type: input.Type, Key: input.Key, Domain: input.Domain}
	if idx := indexOf(pins, id); idx >= 0 {
		log.Debug().Str("identity", id.String()).Msg("property already pinned")
		return PinResult{Property: pins[idx], Index: idx, AlreadyPinned: true}, nil
	}

	p := entity.NewPinnedProperty(input.Type, input.Key, input.Domain)
	if alias := strings.TrimSpace(input.Alias); alias != "" {
		p.Alias = alias
	}
	p.URL = input.URL
	p.TabID = input.TabID
	p.Seq = maxSeq(pins) + 1

	pins = append(pins, *p)
	if err := savePinnedList(ctx, uc.store, pins); err != nil {
		return PinResult{}, err
	}

	log.Info().Str("identity", id.String()).Int("count", len(pins)).Msg("property pinned")
	return PinResult{Property: *p, Index: len(pins) - 1}, nil
}

// UnpinAt removes the pin at index. Out-of-range indexes are ignored.
func (uc *ManagePinsUseCase) UnpinAt(ctx context.Context, index int) error {
	log := logging.FromContext(ctx)
	log.Debug().Int("index", index).Msg("unpinning property by index")

	pins, err := loadPinnedList(ctx, uc.store)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(pins) {
		log.Debug().Int("index", index).Int("count", len(pins)).Msg("unpin index out of range")
		return nil
	}

	removed := pins[index]
	pins = slices.Delete(pins, index, index+1)
	if err := savePinnedList(ctx, uc.store, pins); err != nil {
		return err
	}

	log.Info().Str("identity", removed.Identity().String()).Msg("property unpinned")
	return nil
}

// UnpinByKey removes the first pin matching (type, key, domain) exactly.
func (uc *ManagePinsUseCase) UnpinByKey(ctx context.Context, t entity.PropertyType, key, domain string) error {
	log := logging.FromContext(ctx)
	id := entity.PropertyIdentity{Type: t, Key: key, Domain: domain}
	log.Debug().Str("identity", id.String()).Msg("unpinning property")

	pins, err := loadPinnedList(ctx, uc.store)
	if err != nil {
		return err
	}

	idx := indexOf(pins, id)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrPinNotFound, id)
	}

	pins = slices.Delete(pins, idx, idx+1)
	if err := savePinnedList(ctx, uc.store, pins); err != nil {
		return err
	}

	log.Info().Str("identity", id.String()).Msg("property unpinned")
	return nil
}

// Reorder moves the dragged pin so it sits immediately before the target's
// original position. Nothing happens when either pin cannot be found.
// It reports whether the list changed.
func (uc *ManagePinsUseCase) Reorder(ctx context.Context, dragged, target entity.PropertyIdentity) (bool, error) {
	log := logging.FromContext(ctx)
	log.Debug().
		Str("dragged", dragged.String()).
		Str("target", target.String()).
		Msg("reordering pins")

	pins, err := loadPinnedList(ctx, uc.store)
	if err != nil {
		return false, err
	}

	from := indexOf(pins, dragged)
	to := indexOf(pins, target)
	if from < 0 || to < 0 || from == to {
		log.Debug().Int("from", from).Int("to", to).Msg("reorder skipped")
		return false, nil
	}

	pins = MovePin(pins, from, to)
	if err := savePinnedList(ctx, uc.store, pins); err != nil {
		return false, err
	}

	log.Info().Int("from", from).Int("to", to).Msg("pins reordered")
	return true, nil
}

// MovePin splices the entry at from out of the list and re-inserts it
// immediately before the entry that was at position to.
func MovePin(pins []entity.PinnedProperty, from, to int) []entity.PinnedProperty {
	if from == to || from < 0 || to < 0 || from >= len(pins) || to >= len(pins) {
		return pins
	}
	moved := pins[from]
	pins = slices.Delete(pins, from, from+1)
	if from < to {
		// the target shifted left by one
		to--
	}
	return slices.Insert(pins, to, moved)
}

// Rename changes the alias of a pin. An empty alias resets it to the key.
func (uc *ManagePinsUseCase) Rename(ctx context.Context, id entity.PropertyIdentity, alias string) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("identity", id.String()).Str("alias", alias).Msg("renaming pin")

	pins, err := loadPinnedList(ctx, uc.store)
	if err != nil {
		return err
	}

	idx := indexOf(pins, id)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrPinNotFound, id)
	}

	alias = strings.TrimSpace(alias)
	if alias == "" {
		alias = pins[idx].Key
	}
	pins[idx].Alias = alias

	if err := savePinnedList(ctx, uc.store, pins); err != nil {
		return err
	}

	log.Info().Str("identity", id.String()).Msg("pin renamed")
	return nil
}

// ListAll returns the full persisted list, unfiltered, in stored order.
func (uc *ManagePinsUseCase) ListAll(ctx context.Context) ([]entity.PinnedProperty, error) {
	log := logging.FromContext(ctx)
	log.Debug().Msg("listing pinned properties")

	pins, err := loadPinnedList(ctx, uc.store)
	if err != nil {
		return nil, err
	}

	log.Debug().Int("count", len(pins)).Msg("retrieved pinned properties")
	return pins, nil
}

func indexOf(pins []entity.PinnedProperty, id entity.PropertyIdentity) int {
	return slices.IndexFunc(pins, func(p entity.PinnedProperty) bool {
		return p.Matches(id)
	})
}
