package reconcile

import (
	"sort"
	"time"

	"engagement-srv/internal/model"
	"engagement-srv/pkg/util"
)

// DateExtractor is a caller-supplied fallback for records whose activity
// date does not live under any of the standard DateFieldPaths.
type DateExtractor func(model.RawRecord) (time.Time, bool)

// BucketByWeek groups records into Monday-start UTC calendar weeks.
// Records whose date cannot be resolved are dropped; callers that need
// to distinguish "no data" from "unparseable date" must pre-filter.
func BucketByWeek(records []model.RawRecord, extractor DateExtractor) []model.TimeBucket {
	return bucketBy(records, extractor, func(t time.Time) (string, time.Time, time.Time) {
		start := WeekStart(t)
		return util.DateToStr(start), start, start.AddDate(0, 0, 6)
	})
}

// BucketByMonth groups records into UTC calendar months, keyed YYYY-MM.
func BucketByMonth(records []model.RawRecord, extractor DateExtractor) []model.TimeBucket {
	return bucketBy(records, extractor, func(t time.Time) (string, time.Time, time.Time) {
		u := t.UTC()
		start := time.Date(u.Year(), u.Month(), 1, 0, 0, 0, 0, time.UTC)
		return start.Format(util.MonthFormat), start, start.AddDate(0, 1, -1)
	})
}

// WeekStart returns UTC midnight of the Monday on or before t. Sunday
// rolls back six days, never forward.
func WeekStart(t time.Time) time.Time {
	day := util.StartOfDay(t)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// ResolveActivityDate resolves the activity timestamp for a record,
// trying the standard date paths before the caller's fallback extractor.
func ResolveActivityDate(rec model.RawRecord, extractor DateExtractor) (time.Time, bool) {
	if t, ok := ResolveDate(rec, DateFieldPaths); ok {
		return t, true
	}
	if extractor != nil {
		return extractor(rec)
	}
	return time.Time{}, false
}

func bucketBy(records []model.RawRecord, extractor DateExtractor, window func(time.Time) (string, time.Time, time.Time)) []model.TimeBucket {
	byKey := make(map[string]*model.TimeBucket)
	for _, rec := range records {
		if rec == nil {
			continue
		}
		t, ok := ResolveActivityDate(rec, extractor)
		if !ok {
			continue
		}

		key, start, end := window(t)
		b, exists := byKey[key]
		if !exists {
			b = &model.TimeBucket{Key: key, Start: start, End: end}
			byKey[key] = b
		}
		b.Records = append(b.Records, rec)
		b.Count++
	}

	buckets := make([]model.TimeBucket, 0, len(byKey))
	for _, b := range byKey {
		buckets = append(buckets, *b)
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Start.Before(buckets[j].Start)
	})
	return buckets
}
