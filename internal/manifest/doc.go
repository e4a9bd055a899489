// Package manifest parses, validates, and writes YouTube plugin manifests.
//
// A manifest is a JSON object with five required string fields (name,
// description, version, author, entry_point), an optional permissions list,
// an optional quality_profile pair, and any number of extra keys that are
// carried through untouched. Parse and ParseFile enforce the rules and
// return *SchemaError or *DecodeError on failure. Lint runs the embedded
// JSON Schema and a few advisory checks without rejecting the manifest.
package manifest
