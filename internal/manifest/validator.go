package manifest

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/Masterminds/semver/v3"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/manifest.schema.json
var schemaBytes []byte

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

// Severity grades a lint issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// LintResult contains the outcome of Lint.
type LintResult struct {
	Valid  bool
	Issues []Issue
}

// Issue is a single lint finding.
type Issue struct {
	Path     string   // Instance location (e.g., "/name", "/quality_profile/audio")
	Message  string   // Human-readable message
	Keyword  string   // Schema keyword that failed, or the advisory check name
	Severity Severity
}

// Errors returns the number of error-severity issues.
func (r *LintResult) Errors() int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			n++
		}
	}
	return n
}

// getSchema compiles the embedded JSON schema once and returns it.
func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("manifest.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("manifest.schema.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// Lint checks doc against the manifest JSON schema and runs advisory checks
// (SemVer version, duplicate permissions, entry point shape). Schema
// violations are errors; advisories are warnings. The error return is for
// schema compilation or conversion failures only.
func Lint(doc Document) (*LintResult, error) {
	schema, err := getSchema()
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	// Round-trip through JSON so Go-native numbers and slices reach the
	// validator in the form it expects.
	jsonData, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("converting to JSON: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("preparing JSON for validation: %w", err)
	}

	var issues []Issue
	if err := schema.Validate(inst); err != nil {
		validationErr, ok := err.(*jsonschema.ValidationError)
		if !ok {
			return nil, fmt.Errorf("unexpected validation error type: %w", err)
		}
		issues = append(issues, extractIssues(validationErr)...)
	}
	issues = append(issues, advisories(doc)...)

	result := &LintResult{Issues: issues}
	result.Valid = result.Errors() == 0
	return result, nil
}

// LintFile reads a manifest file and lints it. Unreadable or malformed
// files are returned as *DecodeError.
func LintFile(path string) (*LintResult, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	raw, err := decodeJSON(data)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	doc, ok := raw.(map[string]any)
	if !ok {
		return &LintResult{Issues: []Issue{{
			Message:  "manifest must be a JSON object",
			Keyword:  "type",
			Severity: SeverityError,
		}}}, nil
	}
	return Lint(doc)
}

// readFile reads a manifest as UTF-8 text. Invalid byte sequences are
// rejected rather than left for the JSON decoder to replace with U+FFFD.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return nil, &DecodeError{Path: path, Err: errInvalidUTF8}
	}
	return data, nil
}

// advisories flags manifest choices that are legal but likely mistakes.
func advisories(doc Document) []Issue {
	var issues []Issue

	if v, ok := doc[FieldVersion].(string); ok && strings.TrimSpace(v) != "" {
		if _, err := semver.StrictNewVersion(v); err != nil {
			issues = append(issues, Issue{
				Path:     "/" + FieldVersion,
				Message:  fmt.Sprintf("version %q is not a semantic version (MAJOR.MINOR.PATCH)", v),
				Keyword:  "semver",
				Severity: SeverityWarning,
			})
		}
	}

	if list, ok := doc[FieldPermissions].([]any); ok {
		seen := make(map[string]int)
		for i, item := range list {
			s, ok := item.(string)
			if !ok {
				continue
			}
			if first, dup := seen[s]; dup {
				issues = append(issues, Issue{
					Path:     fmt.Sprintf("/%s/%d", FieldPermissions, i),
					Message:  fmt.Sprintf("permission %q duplicates entry %d", s, first),
					Keyword:  "duplicate",
					Severity: SeverityWarning,
				})
				continue
			}
			seen[s] = i
		}
	}

	if ep, ok := doc[FieldEntryPoint].(string); ok && strings.TrimSpace(ep) != "" {
		module, fn, found := strings.Cut(ep, ":")
		if !found || strings.TrimSpace(module) == "" || strings.TrimSpace(fn) == "" {
			issues = append(issues, Issue{
				Path:     "/" + FieldEntryPoint,
				Message:  fmt.Sprintf("entry point %q should have the form module:function", ep),
				Keyword:  "entry_point",
				Severity: SeverityWarning,
			})
		}
	}

	return issues
}

// extractIssues walks the ValidationError tree and returns leaf-level issues.
func extractIssues(ve *jsonschema.ValidationError) []Issue {
	var issues []Issue
	collectValidationIssues(ve, &issues)

	if len(issues) == 0 {
		return []Issue{{
			Message:  ve.Error(),
			Severity: SeverityError,
		}}
	}
	return deduplicateIssues(issues)
}

// collectValidationIssues recursively walks the error tree to find leaf
// errors with specific property information.
func collectValidationIssues(ve *jsonschema.ValidationError, issues *[]Issue) {
	if len(ve.Causes) == 0 {
		path := "/" + strings.Join(ve.InstanceLocation, "/")
		if len(ve.InstanceLocation) == 0 {
			path = ""
		}

		keyword := ""
		msg := ""
		if ve.ErrorKind != nil {
			kwPath := ve.ErrorKind.KeywordPath()
			if len(kwPath) > 0 {
				keyword = kwPath[len(kwPath)-1]
			}
			msg = ve.ErrorKind.LocalizedString(printer)
		}

		// Container keywords only wrap more specific causes.
		if keyword == "allOf" || keyword == "$ref" || keyword == "" {
			return
		}

		*issues = append(*issues, Issue{
			Path:     path,
			Message:  msg,
			Keyword:  keyword,
			Severity: SeverityError,
		})
		return
	}

	for _, cause := range ve.Causes {
		collectValidationIssues(cause, issues)
	}
}

// deduplicateIssues removes duplicate issues (same path + keyword + message).
func deduplicateIssues(issues []Issue) []Issue {
	seen := make(map[string]bool)
	var result []Issue
	for _, issue := range issues {
		key := issue.Path + "|" + issue.Keyword + "|" + issue.Message
		if !seen[key] {
			seen[key] = true
			result = append(result, issue)
		}
	}
	return result
}
