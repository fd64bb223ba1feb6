package config

import (
	"os"
	"path/filepath"
)

const (
	appName      = "pinboard"
	databaseName = "pinboard.sqlite"
	configName   = "config.toml"
	schemaName   = "config.schema.json"

	// homeEnv relocates every pinboard directory, mostly for development.
	homeEnv = "PINBOARD_HOME"

	dirPerm  = 0o755
	filePerm = 0o644
)

type baseDir int

const (
	configBase baseDir = iota
	dataBase
	stateBase
)

var baseDirs = map[baseDir]struct {
	env      string
	fallback []string
}{
	configBase: {"XDG_CONFIG_HOME", []string{".config"}},
	dataBase:   {"XDG_DATA_HOME", []string{".local", "share"}},
	stateBase:  {"XDG_STATE_HOME", []string{".local", "state"}},
}

// xdgHome resolves an XDG base directory without the app suffix.
func xdgHome(b baseDir) (string, error) {
	d := baseDirs[b]
	if v := os.Getenv(d.env); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(append([]string{home}, d.fallback...)...), nil
}

// appDir is the pinboard directory under an XDG base, or $PINBOARD_HOME.
func appDir(b baseDir) (string, error) {
	if root := os.Getenv(homeEnv); root != "" {
		return root, nil
	}
	base, err := xdgHome(b)
	if err != nil {
		return "", err
	}
	return filepath.Join(base, appName), nil
}

// GetConfigDir returns $XDG_CONFIG_HOME/pinboard.
func GetConfigDir() (string, error) {
	return appDir(configBase)
}

// GetConfigFile returns the default config.toml path.
func GetConfigFile() (string, error) {
	dir, err := appDir(configBase)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configName), nil
}

// GetDatabaseFile returns the default database path. Pins are user data,
// so it lives under XDG_DATA_HOME.
func GetDatabaseFile() (string, error) {
	dir, err := appDir(dataBase)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, databaseName), nil
}

// GetLogDir returns the directory holding pinboard.log.
func GetLogDir() (string, error) {
	return appDir(stateBase)
}

// EnsureDirectories creates the config, data and state directories.
func EnsureDirectories() error {
	for _, b := range []baseDir{configBase, dataBase, stateBase} {
		dir, err := appDir(b)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return err
		}
	}
	return nil
}

// GetManDir returns the user man page directory for section 1.
func GetManDir() (string, error) {
	base, err := xdgHome(dataBase)
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "man", "man1"), nil
}
