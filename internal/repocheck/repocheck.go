package repocheck

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// CheckResult is the outcome of one repository check.
type CheckResult struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail"`
}

// DocumentCheck requires a file to exist and, optionally, to mention each
// of Contains.
type DocumentCheck struct {
	Path     string
	Detail   string
	Contains []string
}

// Layout describes what a starter repository must contain. Paths are
// slash-separated and relative to the repository root.
type Layout struct {
	Readme        string
	ReadmePhrases []string
	Documents     []DocumentCheck
	ResourcesDir  string
	Resources     []string
}

// Playground paths shared with the quick-action listing.
const (
	PlaygroundDir = "GitHubStarter.playground"
	ResourcesDir  = PlaygroundDir + "/Resources"
)

// DefaultLayout returns the layout of the GitHub starter repository.
func DefaultLayout() Layout {
	return Layout{
		Readme:        "README.md",
		ReadmePhrases: []string{PlaygroundDir, "pytest"},
		Documents: []DocumentCheck{
			{Path: "REFRESH_RATE.md", Detail: "refresh-rate guidance present", Contains: []string{"80Hz", "120Hz"}},
			{Path: "ROADMAP.md", Detail: "roadmap present"},
			{
				Path:     PlaygroundDir + "/Contents.swift",
				Detail:   "playground entry present",
				Contains: []string{"GitHubStarterView", "PlaygroundPage.current.setLiveView"},
			},
		},
		ResourcesDir: ResourcesDir,
		Resources:    []string{"pr_review_checklist.md", "notification_triage_prompt.md"},
	}
}

// Verify runs the default layout against root.
func Verify(root string) []CheckResult {
	return VerifyLayout(root, DefaultLayout())
}

// VerifyLayout checks root against layout. Results come back in layout
// order: README, documents, then resources.
func VerifyLayout(root string, layout Layout) []CheckResult {
	var results []CheckResult

	if layout.Readme != "" {
		results = append(results, checkReadme(root, layout.Readme, layout.ReadmePhrases))
	}

	for _, doc := range layout.Documents {
		results = append(results, checkDocument(root, doc))
	}

	for _, resource := range layout.Resources {
		rel := resource
		if layout.ResourcesDir != "" {
			rel = layout.ResourcesDir + "/" + resource
		}
		results = append(results, CheckResult{
			Name:   rel,
			Passed: isFile(filepath.Join(root, filepath.FromSlash(rel))),
			Detail: "quick-action prompt available",
		})
	}

	return results
}

// AllPassed reports whether every result passed.
func AllPassed(results []CheckResult) bool {
	for _, r := range results {
		if !r.Passed {
			return false
		}
	}
	return true
}

// Failed returns the results that did not pass.
func Failed(results []CheckResult) []CheckResult {
	var failed []CheckResult
	for _, r := range results {
		if !r.Passed {
			failed = append(failed, r)
		}
	}
	return failed
}

// Print writes results to w, either as an indented JSON array or as one
// status line per check.
func Print(w io.Writer, results []CheckResult, asJSON bool) error {
	if asJSON {
		if results == nil {
			results = []CheckResult{}
		}
		out, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling check results: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	}

	for _, r := range results {
		status := "[ OK ]"
		if !r.Passed {
			status = "[FAIL]"
		}
		if _, err := fmt.Fprintf(w, "%s %s: %s\n", status, r.Name, r.Detail); err != nil {
			return err
		}
	}
	return nil
}

func checkReadme(root, rel string, phrases []string) CheckResult {
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		return CheckResult{Name: rel, Passed: false, Detail: "README missing"}
	}
	return CheckResult{
		Name:   rel,
		Passed: containsAll(string(data), phrases),
		Detail: "README includes playground reference and testing instructions",
	}
}

func checkDocument(root string, doc DocumentCheck) CheckResult {
	path := filepath.Join(root, filepath.FromSlash(doc.Path))
	result := CheckResult{Name: doc.Path, Detail: doc.Detail}
	if !isFile(path) {
		return result
	}
	if len(doc.Contains) == 0 {
		result.Passed = true
		return result
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return result
	}
	result.Passed = containsAll(string(data), doc.Contains)
	return result
}

func containsAll(text string, phrases []string) bool {
	for _, p := range phrases {
		if !strings.Contains(text, p) {
			return false
		}
	}
	return true
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
