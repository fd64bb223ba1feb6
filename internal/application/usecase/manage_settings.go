package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/pinboard/internal/domain/entity"
	"github.com/bnema/pinboard/internal/domain/repository"
	"github.com/bnema/pinboard/internal/logging"
)

var (
	// ErrInvalidMode is returned for an unknown organization mode.
	ErrInvalidMode = errors.New("invalid organization mode")

	// ErrInvalidTheme is returned for an unknown theme.
	ErrInvalidTheme = errors.New("invalid theme")
)

// DashboardSettings is the user-facing part of the dashboard config.
type DashboardSettings struct {
	Theme            entity.Theme
	OrganizationMode entity.OrganizationMode
}

// ManageSettingsUseCase persists the theme and organization mode.
type ManageSettingsUseCase struct {
	store    repository.BlobStore
	defaults entity.DashboardConfig
}

// NewManageSettingsUseCase creates a new settings use case.
func NewManageSettingsUseCase(store repository.BlobStore) *ManageSettingsUseCase {
	return &ManageSettingsUseCase{store: store, defaults: entity.DefaultDashboardConfig()}
}

// WithInitialTheme sets the theme reported until one is saved. Unknown
// names are ignored.
func (uc *ManageSettingsUseCase) WithInitialTheme(theme string) *ManageSettingsUseCase {
	if t, err := entity.ParseTheme(theme); err == nil {
		uc.defaults.Theme = t
	}
	return uc
}

func (uc *ManageSettingsUseCase) load(ctx context.Context) (entity.DashboardConfig, error) {
	return loadDashboardConfigOr(ctx, uc.store, uc.defaults)
}

// Get returns the stored settings, or the defaults when none were saved.
func (uc *ManageSettingsUseCase) Get(ctx context.Context) (DashboardSettings, error) {
	logging.FromContext(ctx).Debug().Msg("loading dashboard settings")

	cfg, err := uc.load(ctx)
	if err != nil {
		return DashboardSettings{}, err
	}
	return DashboardSettings{Theme: cfg.Theme, OrganizationMode: cfg.OrganizationMode}, nil
}

// SetTheme stores the theme and returns the parsed value.
func (uc *ManageSettingsUseCase) SetTheme(ctx context.Context, theme string) (entity.Theme, error) {
	log := logging.FromContext(ctx)
	log.Debug().Str("theme", theme).Msg("setting theme")

	t, err := entity.ParseTheme(theme)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidTheme, err)
	}

	cfg, err := uc.load(ctx)
	if err != nil {
		return "", err
	}
	if cfg.Theme == t {
		return t, nil
	}
	cfg.Theme = t
	if err := saveDashboardConfig(ctx, uc.store, cfg); err != nil {
		return "", err
	}

	log.Info().Str("theme", string(t)).Msg("theme changed")
	return t, nil
}

// ToggleTheme flips between light and dark.
func (uc *ManageSettingsUseCase) ToggleTheme(ctx context.Context) (entity.Theme, error) {
	cfg, err := uc.load(ctx)
	if err != nil {
		return "", err
	}
	return uc.SetTheme(ctx, string(cfg.Theme.Toggle()))
}

// SetOrganizationMode stores the mode and returns the parsed value.
func (uc *ManageSettingsUseCase) SetOrganizationMode(ctx context.Context, mode string) (entity.OrganizationMode, error) {
	log := logging.FromContext(ctx)
	log.Debug().Str("mode", mode).Msg("setting organization mode")

	m, err := entity.ParseOrganizationMode(mode)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidMode, err)
	}

	cfg, err := uc.load(ctx)
	if err != nil {
		return "", err
	}
	if cfg.OrganizationMode == m {
		return m, nil
	}
	cfg.OrganizationMode = m
	if err := saveDashboardConfig(ctx, uc.store, cfg); err != nil {
		return "", err
	}

	log.Info().Str("mode", string(m)).Msg("organization mode changed")
	return m, nil
}

// Reset drops the stored dashboard config so the defaults apply again.
// Pins still kept only in the config are moved to their own record first.
func (uc *ManageSettingsUseCase) Reset(ctx context.Context) (DashboardSettings, error) {
	log := logging.FromContext(ctx)
	log.Debug().Msg("resetting dashboard settings")

	data, err := uc.store.Get(ctx, repository.KeyPinnedProperties)
	if err != nil {
		return DashboardSettings{}, fmt.Errorf("failed to read pinned properties: %w", err)
	}
	if data == nil {
		pins, err := loadPinnedList(ctx, uc.store)
		if err != nil {
			return DashboardSettings{}, err
		}
		if len(pins) > 0 {
			if err := savePinnedList(ctx, uc.store, pins); err != nil {
				return DashboardSettings{}, err
			}
			log.Info().Int("count", len(pins)).Msg("moved pinned properties out of dashboard config")
		}
	}

	if err := uc.store.Delete(ctx, repository.KeyDashboardConfig); err != nil {
		return DashboardSettings{}, fmt.Errorf("failed to delete dashboard config: %w", err)
	}

	log.Info().Msg("dashboard settings reset")
	return DashboardSettings{Theme: uc.defaults.Theme, OrganizationMode: uc.defaults.OrganizationMode}, nil
}
