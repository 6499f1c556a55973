package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"
)

// LoadFrogger loads and validates the Frogger configuration.
// Search order: customPath -> ~/.arcade/configs/frogger.yaml -> ./configs/frogger.yaml -> embedded default
//
// Files overlay the built-in defaults, so they only need the keys they change.
// A custom path that cannot be read or parsed is an error. The user and local
// files are optional and skipped when unreadable.
func LoadFrogger(customPath string) (FroggerConfig, error) {
	cfg := DefaultFroggerConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, validated(cfg, customPath)
	}

	if userCfgPath := userConfigPath("frogger.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, validated(cfg, userCfgPath)
			}
			cfg = DefaultFroggerConfig()
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "frogger.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, validated(cfg, "configs/frogger.yaml")
		}
		cfg = DefaultFroggerConfig()
	}

	cfg = FroggerConfig{}
	if err := yaml.Unmarshal(defaultFroggerYAML, &cfg); err != nil {
		return DefaultFroggerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, validated(cfg, "embedded defaults")
}

func validated(cfg FroggerConfig, source string) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config %s: %w", source, err)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Dump renders the config as YAML.
func Dump(cfg FroggerConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal yaml: %w", err)
	}
	return data, nil
}

// Schema returns an indented JSON Schema describing frogger.yaml.
func Schema() ([]byte, error) {
	// Files may leave out any key, so nothing is required.
	reflector := jsonschema.Reflector{
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: true,
	}
	schema := reflector.Reflect(new(FroggerConfig))
	numericBounds(schema)
	schema.Title = "Frogger Config"
	schema.Description = "Tunables for a Frogger session (configs/frogger.yaml)"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("config: marshal schema: %w", err)
	}
	return append(data, '\n'), nil
}

// numericBounds turns the exclusive bounds set through jsonschema_extras
// into numbers; the reflector keeps them as strings.
func numericBounds(s *jsonschema.Schema) {
	if s == nil {
		return
	}
	for _, key := range []string{"exclusiveMinimum", "exclusiveMaximum"} {
		if v, ok := s.Extras[key].(string); ok {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				s.Extras[key] = f
			}
		}
	}
	if s.Properties != nil {
		for _, name := range s.Properties.Keys() {
			v, _ := s.Properties.Get(name)
			if prop, ok := v.(*jsonschema.Schema); ok {
				numericBounds(prop)
			}
		}
	}
	numericBounds(s.Items)
}
