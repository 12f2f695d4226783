package topic

// Topic is a named subject area that articles are filed under. The slug is
// the primary identifier and is immutable once an article references it.
type Topic struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// Field names for validation
const (
	FieldSlug        = "slug"
	FieldDescription = "description"
)
