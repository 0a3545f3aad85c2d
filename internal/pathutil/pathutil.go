// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"

	"github.com/ayoisaiah/tally/internal/osutil"
)

const envName = "TALLY_ENV"

// Paths holds all application path configurations.
type Paths struct {
	configDir      string
	configFileName string
	dbFileName     string
	sqlFileName    string
	authFileName   string
	logFileName    string

	// Computed absolute paths
	configFilePath string
	dbFilePath     string
	sqlFilePath    string
	authFilePath   string
	logFilePath    string
}

var (
	paths *Paths
	once  sync.Once
)

// Initialize must be called once at program startup.
func Initialize() error {
	var initErr error

	once.Do(func() {
		paths = &Paths{
			configDir:      "tally",
			configFileName: "config.yml",
			dbFileName:     "tally.db",
			sqlFileName:    "tally.sqlite",
			authFileName:   "auth.json",
			logFileName:    "tally.log",
		}

		paths.applyEnvironmentOverrides()
		initErr = paths.computePaths()
	})

	return initErr
}

// Must panics if paths haven't been initialized.
func Must() *Paths {
	if paths == nil {
		panic("pathutil.Initialize() must be called before accessing paths")
	}

	return paths
}

func ConfigFilePath() string {
	return Must().configFilePath
}

// DBFilePath returns the default database location for the storage driver.
func DBFilePath(driver string) string {
	if driver == "sqlite" {
		return Must().sqlFilePath
	}

	return Must().dbFilePath
}

func AuthFilePath() string {
	return Must().authFilePath
}

func LogFilePath() string {
	return Must().logFilePath
}

func (p *Paths) applyEnvironmentOverrides() {
	env := strings.TrimSpace(os.Getenv(envName))
	if env != "" {
		p.configFileName = fmt.Sprintf("config_%s.yml", env)
		p.dbFileName = fmt.Sprintf("tally_%s.db", env)
		p.sqlFileName = fmt.Sprintf("tally_%s.sqlite", env)
		p.authFileName = fmt.Sprintf("auth_%s.json", env)
		p.logFileName = fmt.Sprintf("tally_%s.log", env)
	}
}

func (p *Paths) computePaths() error {
	var err error

	relPath := filepath.Join(p.configDir, p.configFileName)

	p.configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		return fmt.Errorf("resolving config file path: %w", err)
	}

	dataDir, err := xdg.DataFile(p.configDir)
	if err != nil {
		return fmt.Errorf("resolving data directory: %w", err)
	}

	err = os.MkdirAll(dataDir, osutil.DirPermission)
	if err != nil {
		return err
	}

	p.dbFilePath = filepath.Join(dataDir, p.dbFileName)

	p.sqlFilePath = filepath.Join(dataDir, p.sqlFileName)

	p.authFilePath = filepath.Join(dataDir, p.authFileName)

	p.logFilePath = filepath.Join(dataDir, "log", p.logFileName)

	return nil
}
