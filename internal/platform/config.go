package platform

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the optional site configuration filename looked up in
// the content root.
const ConfigFile = "folio.yaml"

// Duration wraps time.Duration so config files can use readable values
// like "5m" or "90s".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// FileConfig mirrors the folio.yaml schema. All fields are optional;
// explicit functional options win over file values.
type FileConfig struct {
	ContentDir string   `yaml:"contentDir"`
	Pattern    string   `yaml:"pattern"`
	TTL        Duration `yaml:"ttl"`
	DateTTL    Duration `yaml:"dateTTL"`
}

// LoadConfig reads a folio.yaml. A missing file is not an error: it
// returns an empty config so defaults apply.
func LoadConfig(path string) (FileConfig, error) {
	var cfg FileConfig

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// merge fills unset options from the file config.
func (c FileConfig) merge(o *options) {
	if o.pattern == "" {
		o.pattern = c.Pattern
	}
	if o.ttl == 0 {
		o.ttl = time.Duration(c.TTL)
	}
	if o.dateTTL == 0 {
		o.dateTTL = time.Duration(c.DateTTL)
	}
}
