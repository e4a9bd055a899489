package manifest

import (
	"encoding/json"
	"sort"
)

// Document renders m back into a manifest document. Parsing the result
// yields a Manifest equal to m.
func (m *Manifest) Document() Document {
	doc := Document{
		FieldName:        m.Name,
		FieldDescription: m.Description,
		FieldVersion:     m.Version,
		FieldAuthor:      m.Author,
		FieldEntryPoint:  m.EntryPoint,
	}

	permissions := make([]any, len(m.Permissions))
	for i, p := range m.Permissions {
		permissions[i] = p
	}
	doc[FieldPermissions] = permissions

	if m.QualityProfile != nil {
		doc[FieldQualityProfile] = map[string]any{
			fieldAudio: string(m.QualityProfile.Audio),
			fieldVideo: string(m.QualityProfile.Video),
		}
	}

	for key, v := range m.Extra {
		doc[key] = v.Interface()
	}
	return doc
}

// MarshalJSON implements json.Marshaler using the document form.
func (m *Manifest) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Document())
}

// ExtraKeys returns the keys of m.Extra in sorted order.
func (m *Manifest) ExtraKeys() []string {
	keys := make([]string, 0, len(m.Extra))
	for k := range m.Extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Summary returns the fields reported by the validate command.
func (m *Manifest) Summary() Summary {
	permissions := make([]string, len(m.Permissions))
	copy(permissions, m.Permissions)
	return Summary{
		Name:        m.Name,
		EntryPoint:  m.EntryPoint,
		Permissions: permissions,
		ExtraKeys:   m.ExtraKeys(),
	}
}
