package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Parse validates a decoded manifest document and builds a Manifest.
// Checks run in a fixed order: missing required fields, required field
// types, permissions, quality_profile. The first failure is returned as a
// *SchemaError and no Manifest is produced. doc is never modified.
func Parse(doc Document) (*Manifest, error) {
	if err := checkRequired(doc); err != nil {
		return nil, err
	}

	permissions, err := parsePermissions(doc)
	if err != nil {
		return nil, err
	}

	profile, err := parseQualityProfile(doc)
	if err != nil {
		return nil, err
	}

	extra, err := collectExtra(doc)
	if err != nil {
		return nil, err
	}

	return &Manifest{
		Name:           doc[FieldName].(string),
		Description:    doc[FieldDescription].(string),
		Version:        doc[FieldVersion].(string),
		Author:         doc[FieldAuthor].(string),
		EntryPoint:     doc[FieldEntryPoint].(string),
		Permissions:    permissions,
		QualityProfile: profile,
		Extra:          extra,
	}, nil
}

// ParseFile reads a JSON manifest from path and validates it with Parse.
// Read and JSON syntax failures are returned as *DecodeError; rule
// violations as *SchemaError.
func ParseFile(path string) (*Manifest, error) {
	doc, err := readDocument(path)
	if err != nil {
		return nil, err
	}
	return Parse(doc)
}

// checkRequired runs the missing-field check, then the per-field string
// check in RequiredFields order.
func checkRequired(doc Document) error {
	var missing []string
	for _, field := range RequiredFields {
		if _, ok := doc[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return missingFieldsError(missing)
	}

	for _, field := range RequiredFields {
		s, ok := doc[field].(string)
		if !ok || strings.TrimSpace(s) == "" {
			return fieldError(field, "field '%s' must be a non-empty string", field)
		}
	}
	return nil
}

func parsePermissions(doc Document) ([]string, error) {
	raw, ok := doc[FieldPermissions]
	if !ok {
		return []string{}, nil
	}

	invalid := fieldError(FieldPermissions, "'%s' must be a list of non-empty strings", FieldPermissions)

	var items []any
	switch list := raw.(type) {
	case []any:
		items = list
	case []string:
		items = make([]any, len(list))
		for i, s := range list {
			items[i] = s
		}
	default:
		return nil, invalid
	}

	permissions := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok || strings.TrimSpace(s) == "" {
			return nil, invalid
		}
		permissions = append(permissions, s)
	}
	return permissions, nil
}

func parseQualityProfile(doc Document) (*QualityProfile, error) {
	raw, ok := doc[FieldQualityProfile]
	if !ok {
		return nil, nil
	}

	var profile map[string]any
	switch p := raw.(type) {
	case map[string]any:
		profile = p
	case map[string]string:
		profile = make(map[string]any, len(p))
		for k, v := range p {
			profile[k] = v
		}
	default:
		return nil, fieldError(FieldQualityProfile, "'%s' must be an object with 'audio' and 'video' keys", FieldQualityProfile)
	}

	audio, ok := profile[fieldAudio].(string)
	if !ok || !validAudio(AudioQuality(audio)) {
		return nil, fieldError(FieldQualityProfile+"."+fieldAudio,
			"'%s.%s' must be one of: %s", FieldQualityProfile, fieldAudio, joinAudio())
	}

	video, ok := profile[fieldVideo].(string)
	if !ok || !validVideo(VideoQuality(video)) {
		return nil, fieldError(FieldQualityProfile+"."+fieldVideo,
			"'%s.%s' must be one of: %s", FieldQualityProfile, fieldVideo, joinVideo())
	}

	return &QualityProfile{
		Audio: AudioQuality(audio),
		Video: VideoQuality(video),
	}, nil
}

func collectExtra(doc Document) (map[string]Value, error) {
	extra := make(map[string]Value)
	for key, raw := range doc {
		if IsKnownField(key) {
			continue
		}
		v, err := ValueOf(raw)
		if err != nil {
			return nil, fieldError(key, "field '%s' is not a JSON value: %v", key, err)
		}
		extra[key] = v
	}
	return extra, nil
}

func validAudio(a AudioQuality) bool {
	for _, v := range ValidAudioQualities {
		if v == a {
			return true
		}
	}
	return false
}

func validVideo(q VideoQuality) bool {
	for _, v := range ValidVideoQualities {
		if v == q {
			return true
		}
	}
	return false
}

func joinAudio() string {
	names := make([]string, len(ValidAudioQualities))
	for i, v := range ValidAudioQualities {
		names[i] = string(v)
	}
	return strings.Join(names, ", ")
}

func joinVideo() string {
	names := make([]string, len(ValidVideoQualities))
	for i, v := range ValidVideoQualities {
		names[i] = string(v)
	}
	return strings.Join(names, ", ")
}

// readDocument reads path and decodes exactly one JSON object from it.
func readDocument(path string) (Document, error) {
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
		return nil, &SchemaError{Msg: fmt.Sprintf("manifest %s must be a JSON object", path)}
	}
	return doc, nil
}

// decodeJSON decodes a single JSON value with numbers kept as json.Number
// and rejects anything after it.
func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty document")
		}
		return nil, err
	}

	var trailing any
	if err := dec.Decode(&trailing); err != io.EOF {
		if err == nil {
			return nil, errors.New("unexpected data after top-level value")
		}
		return nil, err
	}
	return raw, nil
}
