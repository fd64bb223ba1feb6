package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bnema/pinboard/internal/domain/entity"
	"github.com/bnema/pinboard/internal/domain/repository"
	"github.com/bnema/pinboard/internal/logging"
)

// loadPinnedList reads the whole pinned list. When the list has never been
// written on its own, the copy embedded in the dashboard config is used.
func loadPinnedList(ctx context.Context, store repository.BlobStore) ([]entity.PinnedProperty, error) {
	data, err := store.Get(ctx, repository.KeyPinnedProperties)
	if err != nil {
		return nil, fmt.Errorf("failed to read pinned properties: %w", err)
	}

	var pins []entity.PinnedProperty
	if data != nil {
		if err := json.Unmarshal(data, &pins); err != nil {
			return nil, fmt.Errorf("failed to decode pinned properties: %w", err)
		}
	} else {
		cfg, err := loadDashboardConfig(ctx, store)
		if err != nil {
			return nil, err
		}
		if len(cfg.PinnedProperties) > 0 {
			logging.FromContext(ctx).Debug().
				Int("count", len(cfg.PinnedProperties)).
				Msg("using pinned properties from dashboard config")
		}
		pins = cfg.PinnedProperties
	}

	if pins == nil {
		pins = make([]entity.PinnedProperty, 0)
	}
	backfillSeq(pins)
	return pins, nil
}

// backfillSeq gives entries written without a sequence one that keeps
// their relative list order and sorts after nothing already sequenced.
func backfillSeq(pins []entity.PinnedProperty) {
	next := maxSeq(pins)
	for i := range pins {
		if pins[i].Seq == 0 {
			next++
			pins[i].Seq = next
		}
	}
}

func maxSeq(pins []entity.PinnedProperty) int64 {
	var m int64
	for _, p := range pins {
		if p.Seq > m {
			m = p.Seq
		}
	}
	return m
}

// savePinnedList replaces the whole pinned list.
func savePinnedList(ctx context.Context, store repository.BlobStore, pins []entity.PinnedProperty) error {
	if pins == nil {
		pins = make([]entity.PinnedProperty, 0)
	}
	data, err := json.Marshal(pins)
	if err != nil {
		return fmt.Errorf("failed to encode pinned properties: %w", err)
	}
	if err := store.Set(ctx, repository.KeyPinnedProperties, data); err != nil {
		return fmt.Errorf("failed to save pinned properties: %w", err)
	}
	return nil
}

func loadDashboardConfig(ctx context.Context, store repository.BlobStore) (entity.DashboardConfig, error) {
	return loadDashboardConfigOr(ctx, store, entity.DefaultDashboardConfig())
}

// loadDashboardConfigOr returns defaults when nothing was saved yet.
func loadDashboardConfigOr(
	ctx context.Context,
	store repository.BlobStore,
	defaults entity.DashboardConfig,
) (entity.DashboardConfig, error) {
	cfg := defaults

	data, err := store.Get(ctx, repository.KeyDashboardConfig)
	if err != nil {
		return cfg, fmt.Errorf("failed to read dashboard config: %w", err)
	}
	if data == nil {
		return cfg, nil
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return defaults, fmt.Errorf("failed to decode dashboard config: %w", err)
	}

	if _, err := entity.ParseTheme(string(cfg.Theme)); err != nil {
		cfg.Theme = defaults.Theme
	}
	if _, err := entity.ParseOrganizationMode(string(cfg.OrganizationMode)); err != nil {
		cfg.OrganizationMode = entity.OrganizeDefault
	}
	return cfg, nil
}

func saveDashboardConfig(ctx context.Context, store repository.BlobStore, cfg entity.DashboardConfig) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode dashboard config: %w", err)
	}
	if err := store.Set(ctx, repository.KeyDashboardConfig, data); err != nil {
		return fmt.Errorf("failed to save dashboard config: %w", err)
	}
	return nil
}
