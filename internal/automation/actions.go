package automation

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// QuickAction is a bundled prompt that can be sent to an assistant as-is.
type QuickAction struct {
	Name    string `json:"name"`
	Payload string `json:"payload"`
}

// quickActionPattern matches Markdown prompts directly inside the resources
// directory; nested folders are not scanned.
const quickActionPattern = "*.md"

// ListQuickActions returns every Markdown file in dir as a QuickAction,
// sorted by file name. A missing dir yields an empty list.
func ListQuickActions(dir string) ([]QuickAction, error) {
	actions := []QuickAction{}

	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return actions, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading resources directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("resources path %s is not a directory", dir)
	}

	fsys := os.DirFS(dir)
	matches, err := doublestar.Glob(fsys, quickActionPattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("globbing %s in %s: %w", quickActionPattern, dir, err)
	}
	sort.Strings(matches)

	for _, name := range matches {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("reading quick action %s: %w", name, err)
		}
		actions = append(actions, QuickAction{
			Name:    strings.TrimSuffix(path.Base(name), path.Ext(name)),
			Payload: strings.TrimSpace(string(data)),
		})
	}
	return actions, nil
}
