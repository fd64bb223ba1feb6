package config

import (
	"context"
	"fmt"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/bnema/pinboard/internal/logging"
)

// Watch reloads the configuration whenever the file changes on disk and
// hands the new values to every OnConfigChange subscriber. Calling it
// again only replaces the logger.
func (m *Manager) Watch(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.log = logging.FromContext(ctx)
	switch {
	case m.watching:
		return nil
	case m.viper.ConfigFileUsed() == "":
		return fmt.Errorf("watch config: no file loaded")
	}

	m.viper.OnConfigChange(m.handleChange)
	m.viper.WatchConfig()
	m.watching = true
	return nil
}

// OnConfigChange subscribes fn to reloaded configurations. fn receives a
// private copy.
func (m *Manager) OnConfigChange(fn func(*Config)) {
	m.mu.Lock()
	m.callbacks = append(m.callbacks, fn)
	m.mu.Unlock()
}

func (m *Manager) handleChange(e fsnotify.Event) {
	log := m.logger().With().Str("file", e.Name).Str("op", e.Op.String()).Logger()

	m.mu.Lock()
	var err error
	if m.pendingSelfWrite {
		// m.config already holds what Save wrote.
		m.pendingSelfWrite = false
		err = m.viper.ReadInConfig()
		if err != nil {
			log.Warn().Err(err).Msg("config resync after save failed")
			err = nil
		}
	} else if err = m.reload(); err != nil {
		log.Warn().Err(err).Msg("config reload rejected, keeping previous values")
	}
	if err != nil {
		m.mu.Unlock()
		return
	}
	snapshot := *m.config
	subscribers := append(([]func(*Config))(nil), m.callbacks...)
	m.mu.Unlock()

	log.Debug().Int("subscribers", len(subscribers)).Msg("config reloaded")
	for _, fn := range subscribers {
		c := snapshot
		fn(&c)
	}
}

func (m *Manager) logger() *zerolog.Logger {
	if m.log != nil {
		return m.log
	}
	nop := zerolog.Nop()
	return &nop
}

// reload rereads the file into a fresh Config. Callers hold m.mu.
func (m *Manager) reload() error {
	if err := m.viper.ReadInConfig(); err != nil {
		return err
	}
	return m.reloadFromViper()
}
