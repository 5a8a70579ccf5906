package mock

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// LoadConfig loads a mock configuration from a file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	case ".json", ".jsonc":
		if err := json.Unmarshal(jsonc.ToJSON(data), &config); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file format: %s (use .yaml, .yml, .json or .jsonc)", ext)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// validateConfig validates the mock configuration
func validateConfig(config *Config) error {
	if config.Port < 0 || config.Port > 65535 {
		return fmt.Errorf("port %d out of range", config.Port)
	}

	for i, resp := range config.Responses {
		switch resp.Match {
		case "", "exact", "prefix", "any":
		case "regex":
			if _, err := regexp.Compile(resp.Pattern); err != nil {
				return fmt.Errorf("response %d: invalid regex: %w", i, err)
			}
		default:
			return fmt.Errorf("response %d: match must be 'exact', 'prefix', 'regex' or 'any'", i)
		}
		if resp.Body != "" && resp.BodyFile != "" {
			return fmt.Errorf("response %d: body and bodyFile are mutually exclusive", i)
		}
		if resp.Delay < 0 || resp.SplitWait < 0 {
			return fmt.Errorf("response %d: delays must not be negative", i)
		}
		if resp.SplitAt < 0 {
			return fmt.Errorf("response %d: splitAt must not be negative", i)
		}
	}

	return nil
}

// SaveConfig saves a mock configuration to a file
func SaveConfig(config *Config, path string) error {
	var data []byte
	var err error

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(config)
		if err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
	case ".json":
		data, err = json.MarshalIndent(config, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
	default:
		return fmt.Errorf("unsupported config file format: %s (use .yaml, .yml, or .json)", ext)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// SampleConfig returns a starter configuration showing each match type
func SampleConfig() *Config {
	return &Config{
		Port:    8080,
		Host:    "127.0.0.1",
		Logging: true,
		Responses: []Response{
			{Name: "ping", Match: "exact", Pattern: "ping", Body: `{"pong": true}`},
			{Name: "user lookup", Match: "prefix", Pattern: "user ", Body: `{"id": 42, "name": "Ada", "tags": ["admin", "ops"]}`},
			{Name: "numbers", Match: "regex", Pattern: `^[0-9]+$`, Body: `[1, 2.5, -3e-7, 1e21]`},
			{Name: "slow", Match: "exact", Pattern: "slow", Body: `{"slow": true}`, Delay: 1500},
			{Name: "split", Match: "exact", Pattern: "split", Body: `{"part": "one", "more": "two"}`, SplitAt: 10, SplitWait: 200},
			{Name: "broken", Match: "exact", Pattern: "broken", Body: `{"unterminated": `},
		},
	}
}
