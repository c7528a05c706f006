package reconcile

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"engagement-srv/internal/model"
	"engagement-srv/pkg/util"
)

// The field resolver is the one place that knows how to read a value out
// of a loosely-shaped record. Everything here is a pure function of its
// inputs and never panics on malformed data.

// ResolveNumeric walks paths in order and returns the first value that
// parses to a finite number. Missing or unparseable values yield 0.
func ResolveNumeric(rec model.RawRecord, paths FieldPathSet) float64 {
	n, _ := resolveNumeric(rec, paths, false)
	return n
}

// ResolveMetric is ResolveNumeric for metric fields: an array value
// counts as its length (a feed may ship the individual like/comment
// events instead of a total).
func ResolveMetric(rec model.RawRecord, paths FieldPathSet) float64 {
	n, _ := resolveNumeric(rec, paths, true)
	return n
}

// ResolveString walks paths in order and returns the first value that
// renders to a non-empty trimmed string. Numbers are formatted without a
// trailing ".0" so numeric ids keep their canonical text form.
func ResolveString(rec model.RawRecord, paths FieldPathSet) string {
	for _, path := range paths {
		v, ok := lookupPath(rec, path)
		if !ok {
			continue
		}
		if s := stringify(v); s != "" {
			return s
		}
	}
	return ""
}

// ResolveDate walks paths in order and returns the first value that
// parses to a date. The second return is false when no path yields one;
// callers must treat that as "unknown date", never as "now".
func ResolveDate(rec model.RawRecord, paths FieldPathSet) (time.Time, bool) {
	for _, path := range paths {
		v, ok := lookupPath(rec, path)
		if !ok {
			continue
		}
		if t, ok := coerceDate(v); ok {
			return t, true
		}
	}
	return time.Time{}, false
}

// lookupPath traverses the dotted segments of path. Traversal stops (and
// the caller moves to the next path) when an intermediate segment is
// missing, nil, or not an object. An intermediate string that holds a
// stringified JSON object is parsed and traversed; on parse failure the
// path is abandoned and the original string stays untouched for string
// resolvers.
func lookupPath(rec model.RawRecord, path string) (interface{}, bool) {
	if rec == nil {
		return nil, false
	}
	segments := strings.Split(path, ".")
	var current interface{} = map[string]interface{}(rec)
	for _, seg := range segments {
		if s, isString := current.(string); isString {
			parsed, ok := parseEmbeddedObject(s)
			if !ok {
				return nil, false
			}
			current = parsed
		}
		m, ok := current.(map[string]interface{})
		if !ok {
			return nil, false
		}
		current, ok = m[seg]
		if !ok || current == nil {
			return nil, false
		}
	}
	return current, true
}

func resolveNumeric(rec model.RawRecord, paths FieldPathSet, countArrays bool) (float64, bool) {
	for _, path := range paths {
		v, ok := lookupPath(rec, path)
		if !ok {
			continue
		}
		if n, ok := coerceNumeric(v, countArrays, true); ok {
			return n, true
		}
	}
	return 0, false
}

// coerceNumeric turns a raw value into a finite float64. unwrap allows a
// single {value: ...} unwrap so wrapped metrics like {"value": 12} parse.
func coerceNumeric(v interface{}, countArrays, unwrap bool) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return finite(val)
	case float32:
		return finite(float64(val))
	case int:
		return float64(val), true
	case int32:
		return float64(val), true
	case int64:
		return float64(val), true
	case json.Number:
		n, err := val.Float64()
		if err != nil {
			return 0, false
		}
		return finite(n)
	case string:
		if n, ok := parseNumericString(val); ok {
			return n, true
		}
		// Some feeds ship a stringified JSON object where a number
		// belongs, e.g. "{\"value\": 12}".
		if parsed, ok := parseEmbeddedObject(val); ok {
			return coerceNumeric(parsed, countArrays, unwrap)
		}
		return 0, false
	case bool:
		if val {
			return 1, true
		}
		return 0, true
	case []interface{}:
		if countArrays {
			return float64(len(val)), true
		}
		return 0, false
	case map[string]interface{}:
		if !unwrap {
			return 0, false
		}
		if inner, ok := val["value"]; ok {
			return coerceNumeric(inner, countArrays, false)
		}
		return 0, false
	default:
		return 0, false
	}
}

// parseEmbeddedObject attempts to decode a stringified JSON object
// embedded in a field value. Only strings that look like objects are
// attempted; on failure the caller keeps the original string.
func parseEmbeddedObject(s string) (map[string]interface{}, bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "{") {
		return nil, false
	}
	var m map[string]interface{}
	if err := json.Unmarshal([]byte(s), &m); err != nil {
		return nil, false
	}
	return m, true
}

func finite(n float64) (float64, bool) {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// parseNumericString parses a numeric literal that may use either the
// id-ID convention ("1.234,5") or the en-US convention ("1,234.5").
// When both separators appear, the rightmost one is the decimal mark.
// A lone dot followed by exactly three-digit groups is read as a
// thousands separator, matching the upstream locale; any other lone dot
// is a decimal point.
func parseNumericString(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "%")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return 0, false
	}

	normalized := normalizeSeparators(s)
	n, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return 0, false
	}
	return finite(n)
}

func normalizeSeparators(s string) string {
	lastComma := strings.LastIndexByte(s, ',')
	lastDot := strings.LastIndexByte(s, '.')

	switch {
	case lastComma >= 0 && lastDot >= 0:
		if lastComma > lastDot {
			// "1.234,5": dots group thousands, comma is decimal.
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			// "1,234.5": commas group thousands.
			s = strings.ReplaceAll(s, ",", "")
		}
	case lastComma >= 0:
		if strings.Count(s, ",") == 1 && len(s)-lastComma-1 <= 2 {
			// "12,5" reads as a decimal.
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case lastDot >= 0:
		if dotGroupsThousands(s) {
			s = strings.ReplaceAll(s, ".", "")
		}
	}
	return s
}

// dotGroupsThousands reports whether every dot-separated group after the
// first has exactly three digits, e.g. "1.234" or "12.345.678".
func dotGroupsThousands(s string) bool {
	s = strings.TrimLeft(s, "+-")
	groups := strings.Split(s, ".")
	if len(groups) < 2 {
		return false
	}
	for i, g := range groups {
		if g == "" {
			return false
		}
		if i > 0 && len(g) != 3 {
			return false
		}
		for _, r := range g {
			if r < '0' || r > '9' {
				return false
			}
		}
	}
	return true
}

func stringify(v interface{}) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case float64:
		return formatFloat(val)
	case float32:
		return formatFloat(float64(val))
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case json.Number:
		return val.String()
	default:
		return ""
	}
}

func formatFloat(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return ""
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// epochThreshold separates epoch seconds from epoch milliseconds: any
// absolute value at or above 10^12 is read as milliseconds.
const epochThreshold = 1e12

func coerceDate(v interface{}) (time.Time, bool) {
	switch val := v.(type) {
	case time.Time:
		return val.UTC(), true
	case float64:
		return epochToTime(val)
	case int:
		return epochToTime(float64(val))
	case int64:
		return epochToTime(float64(val))
	case json.Number:
		n, err := val.Float64()
		if err != nil {
			return time.Time{}, false
		}
		return epochToTime(n)
	case string:
		return parseDateString(val)
	case map[string]interface{}:
		if inner, ok := val["value"]; ok {
			if _, nested := inner.(map[string]interface{}); !nested {
				return coerceDate(inner)
			}
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

func epochToTime(n float64) (time.Time, bool) {
	if math.IsNaN(n) || math.IsInf(n, 0) || n <= 0 {
		return time.Time{}, false
	}
	if n < epochThreshold {
		return util.SecondsToTime(int64(n)), true
	}
	return util.MillisecondsToTime(int64(n)), true
}

// dateLayouts are tried in order for string dates. All parse as UTC.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"02/01/2006",
	"02-01-2006",
}

func parseDateString(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return epochToTime(n)
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
