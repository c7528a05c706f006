package model

// RawRecord is one loosely-shaped activity record as it arrives from an
// upstream feed. Keys, nesting and value encodings vary per feed; the
// reconcile package is responsible for making sense of it. A RawRecord is
// never mutated after ingestion.
type RawRecord map[string]interface{}

// SourceKind identifies which upstream feed a batch of records came from.
type SourceKind string

const (
	SourceRoster   SourceKind = "roster"
	SourceLikes    SourceKind = "likes"
	SourceComments SourceKind = "comments"
)

// Source tags a batch of raw records with the feed it came from.
// A nil entry in Records marks an input element that was not a JSON
// object; it is kept so positional fallback keys stay aligned with the
// original payload.
type Source struct {
	Kind    SourceKind
	Records []RawRecord
}
