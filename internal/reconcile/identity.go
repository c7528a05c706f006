package reconcile

import (
	"encoding/json"
	"strings"

	"engagement-srv/internal/model"
)

// Identity key prefixes. The prefix keeps an id "7" from colliding with
// a username "7".
const (
	identityKindID       = "id"
	identityKindUsername = "username"
	identityKindName     = "name"
)

// ResolveIdentity computes the canonical identity key for a record.
// Categories are tried in fixed priority order (government/user id,
// then social username, then display name); the first category with any
// present field wins and categories are never merged for one record.
// When nothing is present the caller-supplied fallback key is returned
// verbatim, so the function is total: it always yields a non-empty key
// and the same record always yields the same key.
func ResolveIdentity(rec model.RawRecord, fallbackKey string) string {
	if v := ResolveString(rec, IDFieldPaths); v != "" {
		return identityKindID + ":" + normalizeIdentity(v)
	}
	if v := ResolveString(rec, UsernameFieldPaths); v != "" {
		return identityKindUsername + ":" + normalizeIdentity(v)
	}
	if v := ResolveString(rec, NameFieldPaths); v != "" {
		return identityKindName + ":" + normalizeIdentity(v)
	}
	return fallbackKey
}

func normalizeIdentity(v string) string {
	return strings.ToUpper(strings.TrimSpace(v))
}

// Status token vocabulary. Tokens are matched lowercased; exact matches
// are tried before the substring fallback.
var (
	positiveStatusTokens = []string{
		"aktif", "active", "enabled", "on", "ya", "yes", "true", "1",
	}
	negativeStatusTokens = []string{
		"nonaktif", "non aktif", "non-aktif", "tidak aktif", "inaktif",
		"inactive", "disabled", "off", "tidak", "no", "false", "0",
		"resign", "keluar",
	}
)

// ResolveStatus reads the roster's explicit activity status from a
// record. Paths are walked in order; the first value that classifies to
// a polarity wins. Records without a classifiable status field yield
// StatusUnknown.
func ResolveStatus(rec model.RawRecord) model.ActivityStatus {
	for _, path := range StatusFieldPaths {
		v, ok := lookupPath(rec, path)
		if !ok {
			continue
		}
		if st := ClassifyStatus(v); st != model.StatusUnknown {
			return st
		}
	}
	return model.StatusUnknown
}

// ClassifyStatus maps a raw status value to a polarity. Booleans and
// numbers map directly; strings are matched against the token vocabulary
// with a substring fallback. The fallback checks negative tokens first,
// so an ambiguous token like "tidak aktif" (which contains both
// polarities) classifies as inactive. That bias is a known heuristic of
// the upstream vocabulary; keep it unless the feeds change.
func ClassifyStatus(v interface{}) model.ActivityStatus {
	switch val := v.(type) {
	case bool:
		if val {
			return model.StatusActive
		}
		return model.StatusInactive
	case float64:
		return numericStatus(val)
	case int:
		return numericStatus(float64(val))
	case int64:
		return numericStatus(float64(val))
	case json.Number:
		if n, err := val.Float64(); err == nil {
			return numericStatus(n)
		}
		return model.StatusUnknown
	case string:
		return classifyStatusToken(val)
	default:
		return model.StatusUnknown
	}
}

func numericStatus(n float64) model.ActivityStatus {
	if n != 0 {
		return model.StatusActive
	}
	return model.StatusInactive
}

func classifyStatusToken(s string) model.ActivityStatus {
	token := strings.ToLower(strings.TrimSpace(s))
	if token == "" {
		return model.StatusUnknown
	}

	for _, neg := range negativeStatusTokens {
		if token == neg {
			return model.StatusInactive
		}
	}
	for _, pos := range positiveStatusTokens {
		if token == pos {
			return model.StatusActive
		}
	}

	// Substring fallback, negative first. Tokens shorter than three
	// characters ("1", "on", "no") are exact-match only; as substrings
	// they would fire on nearly anything.
	for _, neg := range negativeStatusTokens {
		if len(neg) >= 3 && strings.Contains(token, neg) {
			return model.StatusInactive
		}
	}
	for _, pos := range positiveStatusTokens {
		if len(pos) >= 3 && strings.Contains(token, pos) {
			return model.StatusActive
		}
	}
	return model.StatusUnknown
}
