package manifest

// Document is a decoded manifest JSON object before validation.
type Document = map[string]any

// Manifest is a validated plugin manifest. Values are only produced by
// Parse and ParseFile; every field satisfies the manifest rules.
type Manifest struct {
	Name           string
	Description    string
	Version        string
	Author         string
	EntryPoint     string
	Permissions    []string
	QualityProfile *QualityProfile
	Extra          map[string]Value
}

// QualityProfile pins the audio and video quality tiers a plugin targets.
type QualityProfile struct {
	Audio AudioQuality `json:"audio" yaml:"audio"`
	Video VideoQuality `json:"video" yaml:"video"`
}

// AudioQuality is an allowed quality_profile.audio value.
type AudioQuality string

// VideoQuality is an allowed quality_profile.video value.
type VideoQuality string

const (
	AudioLossless AudioQuality = "lossless"
	AudioHigh     AudioQuality = "high"
)

const (
	Video8K    VideoQuality = "8k"
	Video4K    VideoQuality = "4k"
	Video1080p VideoQuality = "1080p"
)

// ValidAudioQualities lists the accepted audio tiers in display order.
var ValidAudioQualities = []AudioQuality{AudioLossless, AudioHigh}

// ValidVideoQualities lists the accepted video tiers in display order.
var ValidVideoQualities = []VideoQuality{Video8K, Video4K, Video1080p}

// Manifest field names.
const (
	FieldName           = "name"
	FieldDescription    = "description"
	FieldVersion        = "version"
	FieldAuthor         = "author"
	FieldEntryPoint     = "entry_point"
	FieldPermissions    = "permissions"
	FieldQualityProfile = "quality_profile"

	fieldAudio = "audio"
	fieldVideo = "video"
)

// RequiredFields holds the required field names, sorted. Missing-field
// errors and the per-field type checks both follow this order.
var RequiredFields = [...]string{
	FieldAuthor,
	FieldDescription,
	FieldEntryPoint,
	FieldName,
	FieldVersion,
}

// OptionalFields holds the known optional field names.
var OptionalFields = [...]string{
	FieldPermissions,
	FieldQualityProfile,
}

// IsKnownField reports whether key is a required or optional field name.
func IsKnownField(key string) bool {
	for _, f := range RequiredFields {
		if f == key {
			return true
		}
	}
	for _, f := range OptionalFields {
		if f == key {
			return true
		}
	}
	return false
}

// Summary is the short report printed by the validate command.
type Summary struct {
	Name        string   `json:"name" yaml:"name"`
	EntryPoint  string   `json:"entry_point" yaml:"entry_point"`
	Permissions []string `json:"permissions" yaml:"permissions"`
	ExtraKeys   []string `json:"extra_keys" yaml:"extra_keys"`
}
