package fs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/tiagrib/webeater"
	"gopkg.in/yaml.v3"
)

// LoadConfig reads the main configuration file. YAML is used for .yaml and
// .yml paths, JSON otherwise. A missing file is not an error: defaults are
// returned so a fresh checkout works without setup. A file that exists but
// does not parse or validate returns ECONFIG.
func LoadConfig(path string) (webeater.Config, error) {
	if path == "" {
		path = webeater.DefaultConfigFile
	}

	cfg := webeater.DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, webeater.Errorf(webeater.ECONFIG, "reading config %q: %v", path, err)
	}

	if isYAML(path) {
		err = yaml.Unmarshal(data, &cfg)
	} else {
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return webeater.DefaultConfig(), webeater.Errorf(webeater.ECONFIG, "invalid config %q: %v", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return webeater.DefaultConfig(), webeater.Errorf(webeater.ECONFIG, "invalid config %q: %s", path, webeater.ErrorMessage(err))
	}
	return cfg, nil
}

// SaveConfig writes the configuration back to path in the format implied by
// its extension, creating parent directories as needed.
func SaveConfig(path string, cfg webeater.Config) error {
	if path == "" {
		path = webeater.DefaultConfigFile
	}

	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(cfg)
	} else {
		data, err = json.MarshalIndent(cfg, "", "    ")
	}
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
