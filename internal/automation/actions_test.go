package automation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestListQuickActions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "pr_review_checklist.md"), "\n# Review\n- tests pass\n\n")
	writeFile(t, filepath.Join(dir, "notification_triage_prompt.md"), "Triage my inbox.")
	writeFile(t, filepath.Join(dir, "notes.txt"), "ignored")
	writeFile(t, filepath.Join(dir, "nested", "deep.md"), "ignored")

	actions, err := ListQuickActions(dir)
	require.NoError(t, err)

	require.Len(t, actions, 2)
	assert.Equal(t, "notification_triage_prompt", actions[0].Name)
	assert.Equal(t, "Triage my inbox.", actions[0].Payload)
	assert.Equal(t, "pr_review_checklist", actions[1].Name)
	assert.Equal(t, "# Review\n- tests pass", actions[1].Payload)
}

func TestListQuickActions_MissingDir(t *testing.T) {
	actions, err := ListQuickActions(filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	assert.NotNil(t, actions)
	assert.Empty(t, actions)
}

func TestListQuickActions_PathIsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "resources")
	writeFile(t, file, "x")

	_, err := ListQuickActions(file)
	assert.Error(t, err)
}
