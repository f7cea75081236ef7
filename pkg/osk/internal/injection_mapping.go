package internal

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BrandonKowalski/osk/pkg/osk/constants"
	"github.com/BurntSushi/toml"
)

var injectionMappingBytes []byte

func SetInjectionMappingBytes(data []byte) {
	injectionMappingBytes = data
}

// InjectionMapping holds the token forwarded to the host's native key
// injection for each special key. Literal keys are forwarded as their text.
type InjectionMapping struct {
	Backspace string `json:"backspace" toml:"backspace"`
	Delete    string `json:"delete" toml:"delete"`
	Clear     string `json:"clear" toml:"clear"`
	Space     string `json:"space" toml:"space"`
}

func DefaultInjectionMapping() *InjectionMapping {
	return &InjectionMapping{
		Backspace: constants.TokenBackspace,
		Delete:    constants.TokenDelete,
		Clear:     constants.TokenClear,
		Space:     " ",
	}
}

// GetInjectionMapping returns the mapping from embedded bytes if set,
// from the environment variable path if set, otherwise the default mapping.
func GetInjectionMapping() *InjectionMapping {
	logger := GetInternalLogger()

	if len(injectionMappingBytes) > 0 {
		mapping, err := LoadInjectionMappingFromBytes(injectionMappingBytes)
		if err == nil {
			logger.Info("Loaded custom injection mapping from embedded bytes")
			return mapping
		}
		logger.Warn("Failed to load custom injection mapping from bytes, trying file path", "error", err)
	}

	mappingPath := os.Getenv(constants.InjectionMappingEnvVar)
	if mappingPath != "" {
		mapping, err := LoadInjectionMappingFromFile(mappingPath)
		if err == nil {
			logger.Info("Loaded custom injection mapping from environment variable", "path", mappingPath)
			return mapping
		}
		logger.Warn("Failed to load custom injection mapping, using default", "path", mappingPath, "error", err)
	}

	return DefaultInjectionMapping()
}

// LoadInjectionMappingFromFile reads JSON, or TOML when the file ends in .toml.
func LoadInjectionMappingFromFile(filePath string) (*InjectionMapping, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping file: %w", err)
	}

	if strings.EqualFold(filepath.Ext(filePath), ".toml") {
		return LoadInjectionMappingFromTOML(data)
	}
	return LoadInjectionMappingFromBytes(data)
}

// LoadInjectionMappingFromBytes parses a JSON mapping. Missing entries keep
// their default token.
func LoadInjectionMappingFromBytes(data []byte) (*InjectionMapping, error) {
	mapping := DefaultInjectionMapping()
	if err := json.Unmarshal(data, mapping); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}
	return mapping, nil
}

func LoadInjectionMappingFromTOML(data []byte) (*InjectionMapping, error) {
	mapping := DefaultInjectionMapping()
	if _, err := toml.Decode(string(data), mapping); err != nil {
		return nil, fmt.Errorf("failed to decode TOML: %w", err)
	}
	return mapping, nil
}

func (im *InjectionMapping) ToJSON() ([]byte, error) {
	return json.MarshalIndent(im, "", "  ")
}

func (im *InjectionMapping) SaveToJSON(filePath string) error {
	data, err := im.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal mapping to JSON: %w", err)
	}

	err = os.WriteFile(filePath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write JSON file: %w", err)
	}

	return nil
}
