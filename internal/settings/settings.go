// Package settings loads the optional sbmltab.yaml project file.
// JSON and HCL are accepted as well, chosen by file extension.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/sbmltab/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultFile is looked up in the working directory when no --settings is given.
const DefaultFile = "sbmltab.yaml"

// Settings are the knobs that are not part of the positional command line.
type Settings struct {
	Output      string         `mapstructure:"output"`
	FoldTagCase bool           `mapstructure:"fold_tag_case"`
	LogLevel    string         `mapstructure:"log_level"`
	LogFormat   string         `mapstructure:"log_format"`
	Colors      domain.Palette `mapstructure:"colors"`
	MetricsFile string         `mapstructure:"metrics_file"`
}

// Default returns the settings used when no file is present.
func Default() Settings {
	return Settings{
		Output:    domain.DefaultOutputFile,
		LogFormat: "text",
		Colors:    domain.DefaultPalette(),
	}
}

// Load reads path (YAML, or JSON/HCL by extension) on top of Default.
// A missing file is only an error when explicit is true.
func Load(path string, explicit bool) (Settings, error) {
	s := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return s, nil
		}
		return s, fmt.Errorf("failed to read settings: %w", err)
	}

	raw := map[string]any{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return s, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case ".hcl":
		if raw, err = decodeHCL(path, data); err != nil {
			return s, err
		}
	default:
		// Default to YAML
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return s, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	if err := Decode(raw, &s); err != nil {
		return s, fmt.Errorf("invalid settings in %s: %w", path, err)
	}
	return s, nil
}

// Decode applies raw onto s. Keys not present in raw keep their current value;
// unknown keys are rejected.
func Decode(raw map[string]any, s *Settings) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           s,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}
