//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir string // HOME, holds ~/.ytplugin/config.yaml
	RepoDir string // a starter repository checkout
	WorkDir string // where manifests are written
}

// setupTestEnv creates isolated temp directories and points HOME and the
// repository root setting at them so nothing touches the real user config.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir: t.TempDir(),
		RepoDir: t.TempDir(),
		WorkDir: t.TempDir(),
	}

	t.Setenv("HOME", env.HomeDir)
	t.Setenv("USERPROFILE", env.HomeDir)
	t.Setenv("YTPLUGIN_REPO_ROOT", env.RepoDir)
	t.Setenv("NOVFLUX_API_BASE", "")
	t.Setenv("NOVFLUX_API_KEY", "")

	return env
}

// setupStarterRepo writes a starter repository that passes every layout
// check. Returns the repository root.
func setupStarterRepo(t *testing.T, root string) string {
	t.Helper()

	writeFile(t, filepath.Join(root, "README.md"), `# GitHub Starter

Open GitHubStarter.playground in Xcode to try the assistant.
Repository checks run with pytest.
`)
	writeFile(t, filepath.Join(root, "REFRESH_RATE.md"), `# Refresh rate

Scrolling targets 80Hz on standard panels and 120Hz on ProMotion.
`)
	writeFile(t, filepath.Join(root, "ROADMAP.md"), "# Roadmap\n\n- Offline review queue\n")

	playground := filepath.Join(root, "GitHubStarter.playground")
	writeFile(t, filepath.Join(playground, "Contents.swift"), `import PlaygroundSupport

let view = GitHubStarterView()
PlaygroundPage.current.setLiveView(view)
`)
	writeFile(t, filepath.Join(playground, "Resources", "pr_review_checklist.md"),
		"\nReview the open pull request for tests and docs.\n\n")
	writeFile(t, filepath.Join(playground, "Resources", "notification_triage_prompt.md"),
		"Group unread notifications by repository.\n")

	return root
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
