// Package config loads the LiteTable configuration file: key=value lines with # comments,
// read from litetable.conf in the LiteTable directory. Keys absent from the file, or the file
// itself, fall back to defaults.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/litetable/litetable-go/internal/litetable"
)

const (
	configFileName = "litetable.conf"

	defaultServerAddress      = "127.0.0.1"
	defaultServerPort         = 9443
	defaultDialTimeout        = 5
	defaultScannerCaching     = 100
	defaultMaxVersions        = 5
	defaultSnapshotTimer      = 300
	defaultMaxSnapshotLimit   = 3
	defaultGarbageCollection  = 30
	defaultScannerLease       = 60
	defaultCDCPort            = 32496
	defaultMetricsPort        = 2112
	defaultServerStopDeadline = 10
)

type Config struct {
	ServerAddress string
	ServerPort    int
	// Embedded runs the store in-process instead of dialing ServerAddress:ServerPort.
	Embedded bool
	DataDir  string

	// Timers are in seconds.
	DialTimeout            int
	SnapshotTimer          int
	GarbageCollectionTimer int
	ScannerLease           int
	StopTimeout            int

	ScannerCaching     int
	DefaultMaxVersions int
	MaxSnapshotLimit   int

	// A zero port disables the listener.
	CDCPort     int
	MetricsPort int

	Debug bool
}

// Default returns the configuration used when no file is present.
func Default() (*Config, error) {
	dir, err := litetable.GetLitetableDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get LiteTable directory: %w", err)
	}
	return &Config{
		ServerAddress:          defaultServerAddress,
		ServerPort:             defaultServerPort,
		Embedded:               true,
		DataDir:                dir,
		DialTimeout:            defaultDialTimeout,
		SnapshotTimer:          defaultSnapshotTimer,
		GarbageCollectionTimer: defaultGarbageCollection,
		ScannerLease:           defaultScannerLease,
		StopTimeout:            defaultServerStopDeadline,
		ScannerCaching:         defaultScannerCaching,
		DefaultMaxVersions:     defaultMaxVersions,
		MaxSnapshotLimit:       defaultMaxSnapshotLimit,
		CDCPort:                defaultCDCPort,
		MetricsPort:            defaultMetricsPort,
	}, nil
}

// NewConfig loads litetable.conf from the LiteTable directory.
func NewConfig() (*Config, error) {
	liteTableDir, err := litetable.GetLitetableDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get LiteTable directory: %w", err)
	}
	return Load(filepath.Join(liteTableDir, configFileName))
}

// Load reads the configuration file at path on top of the defaults.
func Load(path string) (*Config, error) {
	config, err := Default()
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())

		// Skip comments and empty lines
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		key, value, ok := strings.Cut(text, "=")
		if !ok {
			return nil, fmt.Errorf("line %d: expected key=value", line)
		}
		if err := config.set(strings.TrimSpace(key), strings.TrimSpace(value)); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) set(key, value string) error {
	switch key {
	case "server_address":
		c.ServerAddress = value
	case "server_port":
		return setInt(&c.ServerPort, key, value)
	case "embedded":
		return setBool(&c.Embedded, key, value)
	case "data_dir":
		c.DataDir = value
	case "dial_timeout":
		return setInt(&c.DialTimeout, key, value)
	case "scanner_caching":
		return setInt(&c.ScannerCaching, key, value)
	case "default_max_versions":
		return setInt(&c.DefaultMaxVersions, key, value)
	case "snapshot_timer":
		return setInt(&c.SnapshotTimer, key, value)
	case "max_snapshot_limit":
		return setInt(&c.MaxSnapshotLimit, key, value)
	case "garbage_collection_timer":
		return setInt(&c.GarbageCollectionTimer, key, value)
	case "scanner_lease":
		return setInt(&c.ScannerLease, key, value)
	case "stop_timeout":
		return setInt(&c.StopTimeout, key, value)
	case "cdc_port":
		return setInt(&c.CDCPort, key, value)
	case "metrics_port":
		return setInt(&c.MetricsPort, key, value)
	case "debug":
		return setBool(&c.Debug, key, value)
	}
	// unknown keys are ignored so older binaries accept newer files
	return nil
}

func setInt(dst *int, key, value string) error {
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("invalid %s value: %w", key, err)
	}
	*dst = n
	return nil
}

func setBool(dst *bool, key, value string) error {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid %s value: %w", key, err)
	}
	*dst = b
	return nil
}

func (c *Config) validate() error {
	var errGrp []error
	if c.ServerPort <= 0 || c.ServerPort > 65535 {
		errGrp = append(errGrp, errors.New("server_port must be between 1 and 65535"))
	}
	if !c.Embedded && c.ServerAddress == "" {
		errGrp = append(errGrp, errors.New("server_address required when not embedded"))
	}
	if c.DataDir == "" {
		errGrp = append(errGrp, errors.New("data_dir required"))
	}
	if c.DialTimeout <= 0 {
		errGrp = append(errGrp, errors.New("dial_timeout must be greater than 0"))
	}
	if c.ScannerCaching <= 0 {
		errGrp = append(errGrp, errors.New("scanner_caching must be greater than 0"))
	}
	if c.DefaultMaxVersions < 1 {
		errGrp = append(errGrp, errors.New("default_max_versions must be at least 1"))
	}
	if c.SnapshotTimer <= 0 {
		errGrp = append(errGrp, errors.New("snapshot_timer must be greater than 0"))
	}
	if c.MaxSnapshotLimit < 1 || c.MaxSnapshotLimit > 50 {
		errGrp = append(errGrp, errors.New("max_snapshot_limit must be between 1 and 50"))
	}
	if c.GarbageCollectionTimer <= 0 {
		errGrp = append(errGrp, errors.New("garbage_collection_timer must be greater than 0"))
	}
	if c.ScannerLease <= 0 {
		errGrp = append(errGrp, errors.New("scanner_lease must be greater than 0"))
	}
	if c.StopTimeout <= 0 {
		errGrp = append(errGrp, errors.New("stop_timeout must be greater than 0"))
	}
	if c.CDCPort < 0 || c.MetricsPort < 0 {
		errGrp = append(errGrp, errors.New("ports cannot be negative"))
	}
	return errors.Join(errGrp...)
}

// ServerTarget is the host:port clients dial.
func (c *Config) ServerTarget() string {
	return fmt.Sprintf("%s:%d", c.ServerAddress, c.ServerPort)
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}

func (c *Config) DialTimeoutDuration() time.Duration {
	return seconds(c.DialTimeout)
}

func (c *Config) SnapshotInterval() time.Duration {
	return seconds(c.SnapshotTimer)
}

func (c *Config) ScannerLeaseDuration() time.Duration {
	return seconds(c.ScannerLease)
}

func (c *Config) StopTimeoutDuration() time.Duration {
	return seconds(c.StopTimeout)
}
