// Package platform provides cross-platform filesystem helpers. Permission
// changes are applied with chmod on Unix systems and skipped on Windows,
// which has no Unix-style permission bits.
package platform
