package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/BrandonKowalski/osk/pkg/osk/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultInjectionMapping(t *testing.T) {
	m := DefaultInjectionMapping()
	assert.Equal(t, constants.TokenBackspace, m.Backspace)
	assert.Equal(t, constants.TokenDelete, m.Delete)
	assert.Equal(t, constants.TokenClear, m.Clear)
	assert.Equal(t, " ", m.Space)
}

func TestLoadInjectionMappingFromBytes_KeepsDefaults(t *testing.T) {
	m, err := LoadInjectionMappingFromBytes([]byte(`{"backspace": "\b"}`))
	require.NoError(t, err)
	assert.Equal(t, "\b", m.Backspace)
	assert.Equal(t, constants.TokenClear, m.Clear)

	_, err = LoadInjectionMappingFromBytes([]byte(`{`))
	assert.Error(t, err)
}

func TestLoadInjectionMappingFromFile(t *testing.T) {
	dir := t.TempDir()

	tomlPath := filepath.Join(dir, "mapping.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte("clear = \"^A^H\"\n"), 0644))
	m, err := LoadInjectionMappingFromFile(tomlPath)
	require.NoError(t, err)
	assert.Equal(t, "^A^H", m.Clear)
	assert.Equal(t, constants.TokenDelete, m.Delete)

	jsonPath := filepath.Join(dir, "mapping.json")
	custom := DefaultInjectionMapping()
	custom.Space = "{SPACE}"
	require.NoError(t, custom.SaveToJSON(jsonPath))
	m, err = LoadInjectionMappingFromFile(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, custom, m)

	_, err = LoadInjectionMappingFromFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestGetInjectionMapping_Precedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mapping.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"delete": "DEL"}`), 0644))
	t.Setenv(constants.InjectionMappingEnvVar, path)

	assert.Equal(t, "DEL", GetInjectionMapping().Delete)

	SetInjectionMappingBytes([]byte(`{"delete": "SUPR"}`))
	t.Cleanup(func() { SetInjectionMappingBytes(nil) })
	assert.Equal(t, "SUPR", GetInjectionMapping().Delete)

	SetInjectionMappingBytes([]byte(`not json`))
	assert.Equal(t, "DEL", GetInjectionMapping().Delete)

	t.Setenv(constants.InjectionMappingEnvVar, filepath.Join(dir, "missing.json"))
	assert.Equal(t, DefaultInjectionMapping(), GetInjectionMapping())
}
