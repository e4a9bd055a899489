// Package repocheck verifies that a starter repository still carries the
// documentation, playground scaffold, and quick-action resources that
// contributors rely on.
package repocheck
