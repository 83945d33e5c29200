package cfg

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPath     = "/"
	DefaultLabel    = "/"
	DefaultInterval = 20 * time.Second
)

type Config struct {
	Monitors []Monitor `yaml:"monitors"`
}

type Monitor struct {
	// Name is only used to identify the monitor in the logs and the status bar
	Name string `yaml:"name"`
	// Path of the directory containing the mail files
	Path string `yaml:"path"`
	// Label displayed in front of the number of mails
	Label string `yaml:"label"`
	// Interval between two scans
	Interval Duration `yaml:"interval"`
	// RateLimit of reading the mail files, in bytes per second. Zero means no limit.
	RateLimit float64 `yaml:"rate-limit"`
}

// NewMonitor returns a monitor configuration with all the default values
func NewMonitor() Monitor {
	return Monitor{
		Path:     DefaultPath,
		Label:    DefaultLabel,
		Interval: Duration(DefaultInterval),
	}
}

// UnmarshalYAML fills in the default values for the fields missing from the node.
// Unknown fields are rejected.
func (m *Monitor) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i].Value
			if !isMonitorField(key) {
				return fmt.Errorf("line %d: field %q not found in monitor configuration", node.Content[i].Line, key)
			}
		}
	}
	type plain Monitor
	monitor := plain(NewMonitor())
	err := node.Decode(&monitor)
	if err != nil {
		return err
	}
	*m = Monitor(monitor)
	return nil
}

func isMonitorField(key string) bool {
	switch key {
	case "name", "path", "label", "interval", "rate-limit":
		return true
	default:
		return false
	}
}

func newConfig() *Config {
	return &Config{
		Monitors: make([]Monitor, 0),
	}
}

// LoadFromFile loads the configuration from the file
func LoadFromFile(fileName string) (*Config, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	config, err := Load(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}
	return config, nil
}

// Load configuration from a io.ReadCloser
func Load(reader io.ReadCloser) (*Config, error) {
	defer reader.Close()
	decoder := yaml.NewDecoder(reader)
	decoder.KnownFields(true)
	config := newConfig()
	err := decoder.Decode(config)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	err = validateConfiguration(config)
	if err != nil {
		return nil, err
	}
	return config, nil
}

// LoadString is a shortcut to load the configuration from a yaml string
func LoadString(content string) (*Config, error) {
	return Load(io.NopCloser(bytes.NewBufferString(content)))
}

func validateConfiguration(config *Config) error {
	for i := range config.Monitors {
		monitor := &config.Monitors[i]
		if monitor.Name == "" {
			monitor.Name = fmt.Sprintf("maildir%d", i+1)
		}
		if monitor.Path == "" {
			return fmt.Errorf("monitor %q: empty path", monitor.Name)
		}
		monitor.Path = expandHome(monitor.Path)
		if monitor.Interval <= 0 {
			return fmt.Errorf("monitor %q: interval must be positive, found %s", monitor.Name, monitor.Interval)
		}
		if monitor.RateLimit < 0 {
			return fmt.Errorf("monitor %q: rate-limit cannot be negative", monitor.Name)
		}
	}
	return nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
