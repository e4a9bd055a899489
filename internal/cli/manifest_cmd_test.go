package cli

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ytplugin-labs/ytplugin/internal/manifest"
	"go.yaml.in/yaml/v3"
)

func TestInit_WritesTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "plugin.json")

	out, err := execute(t, "init", path)
	require.NoError(t, err)
	assert.Equal(t, "Template written to "+path+"\n", out)

	m, err := manifest.ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Sample YouTube Plugin", m.Name)
}

func TestInit_RequiresPath(t *testing.T) {
	_, err := execute(t, "init")
	assert.Error(t, err)
}

func TestValidate_PrintsSummary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plugin.json")
	writeFile(t, path, `{
  "name": "Clips",
  "description": "Cuts highlights",
  "version": "1.0.0",
  "author": "Acme",
  "entry_point": "clips:run",
  "permissions": ["youtube.readonly"],
  "zeta": 1,
  "alpha": {"nested": true}
}`)

	out, err := execute(t, "validate", path)
	require.NoError(t, err)

	var summary manifest.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.Equal(t, manifest.Summary{
		Name:        "Clips",
		EntryPoint:  "clips:run",
		Permissions: []string{"youtube.readonly"},
		ExtraKeys:   []string{"alpha", "zeta"},
	}, summary)
}

func TestValidate_TemplateHasEmptyExtraKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plugin.json")
	_, err := execute(t, "init", path)
	require.NoError(t, err)

	out, err := execute(t, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, `"extra_keys": []`)
}

func TestValidate_YAMLOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plugin.json")
	_, err := execute(t, "init", path)
	require.NoError(t, err)

	out, err := execute(t, "validate", "--output", "yaml", path)
	require.NoError(t, err)

	var summary manifest.Summary
	require.NoError(t, yaml.Unmarshal([]byte(out), &summary))
	assert.Equal(t, "plugin:handler", summary.EntryPoint)
	assert.Equal(t, []string{"youtube.readonly", "youtube.upload"}, summary.Permissions)
}

func TestValidate_UnknownOutputFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plugin.json")
	_, err := execute(t, "init", path)
	require.NoError(t, err)

	_, err = execute(t, "validate", "--output", "toml", path)
	assert.ErrorContains(t, err, "unknown output format")
}

func TestValidate_Failures(t *testing.T) {
	dir := t.TempDir()

	missing := filepath.Join(dir, "missing.json")
	_, err := execute(t, "validate", missing)
	var de *manifest.DecodeError
	assert.True(t, errors.As(err, &de), "error = %v", err)

	invalid := filepath.Join(dir, "invalid.json")
	writeFile(t, invalid, `{"name": "x"}`)
	_, err = execute(t, "validate", invalid)
	var se *manifest.SchemaError
	require.True(t, errors.As(err, &se), "error = %v", err)
	assert.Equal(t, []string{"author", "description", "entry_point", "version"}, se.Fields)
}

func TestLint_CleanAndInvalid(t *testing.T) {
	dir := t.TempDir()

	clean := filepath.Join(dir, "clean.json")
	_, err := execute(t, "init", clean)
	require.NoError(t, err)
	out, err := execute(t, "lint", clean)
	require.NoError(t, err)
	assert.Contains(t, out, "[ OK ] Valid manifest")

	doc := manifest.DefaultTemplate()
	doc["quality_profile"] = map[string]any{"audio": "cassette", "video": "8k"}
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, data, 0644))

	out, err = execute(t, "lint", bad)
	assert.Error(t, err)
	assert.Contains(t, out, "[FAIL]")
	assert.Contains(t, out, "/quality_profile/audio")
}

func TestLint_WarningsDoNotFail(t *testing.T) {
	doc := manifest.DefaultTemplate()
	doc["version"] = "v1"
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "plugin.json")
	require.NoError(t, os.WriteFile(path, data, 0644))

	out, err := execute(t, "lint", path)
	require.NoError(t, err)
	assert.Contains(t, out, "[WARN] 1 issue(s)")
	assert.Contains(t, out, "warning /version")
}
