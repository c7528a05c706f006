package usecase

import (
	"context"
	"sort"
	"time"

	"engagement-srv/internal/model"
	"engagement-srv/internal/reconcile"
	"engagement-srv/internal/stats"

	"github.com/google/uuid"
)

// Trend buckets the likes and comments feeds into calendar weeks or
// months and derives the period-over-period delta between the two most
// recent buckets. Records without a resolvable date are dropped by the
// bucketer.
func (uc *implUseCase) Trend(ctx context.Context, input stats.TrendInput) (stats.TrendOutput, error) {
	bucket, err := bucketerFor(input.Period)
	if err != nil {
		return stats.TrendOutput{}, err
	}

	likeBuckets := bucket(input.Sources.Likes, nil)
	commentBuckets := bucket(input.Sources.Comments, nil)
	points := mergeTrendPoints(likeBuckets, commentBuckets)

	out := stats.TrendOutput{
		ReportID:    uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Period:      input.Period,
		Points:      points,
	}

	if len(points) > 0 {
		latest := points[len(points)-1]
		out.Latest = &latest
	}
	if len(points) > 1 {
		previous := points[len(points)-2]
		out.Previous = &previous
		out.Delta = &stats.TrendDelta{
			Records:  deltaBetween(float64(out.Latest.Records), float64(previous.Records)),
			Likes:    deltaBetween(out.Latest.Likes, previous.Likes),
			Comments: deltaBetween(out.Latest.Comments, previous.Comments),
		}
	}

	uc.l.Debugf(ctx, "stats.usecase.Trend: %d %s buckets", len(points), input.Period)
	return out, nil
}

type bucketer func([]model.RawRecord, reconcile.DateExtractor) []model.TimeBucket

func bucketerFor(period stats.Period) (bucketer, error) {
	switch period {
	case stats.PeriodWeek:
		return reconcile.BucketByWeek, nil
	case stats.PeriodMonth:
		return reconcile.BucketByMonth, nil
	default:
		return nil, stats.ErrInvalidPeriod
	}
}

// mergeTrendPoints joins the per-feed bucket sets on bucket key. Metric
// sums stay per-feed: like-feed records only contribute to Likes,
// comment-feed records only to Comments.
func mergeTrendPoints(likeBuckets, commentBuckets []model.TimeBucket) []stats.TrendPoint {
	byKey := make(map[string]*stats.TrendPoint)

	ensure := func(b model.TimeBucket) *stats.TrendPoint {
		p, ok := byKey[b.Key]
		if !ok {
			p = &stats.TrendPoint{Key: b.Key, Start: b.Start, End: b.End}
			byKey[b.Key] = p
		}
		return p
	}

	for _, b := range likeBuckets {
		p := ensure(b)
		p.Records += b.Count
		for _, rec := range b.Records {
			p.Likes += reconcile.ResolveMetric(rec, reconcile.LikeFieldPaths)
		}
	}
	for _, b := range commentBuckets {
		p := ensure(b)
		p.Records += b.Count
		for _, rec := range b.Records {
			p.Comments += reconcile.ResolveMetric(rec, reconcile.CommentFieldPaths)
		}
	}

	points := make([]stats.TrendPoint, 0, len(byKey))
	for _, p := range byKey {
		points = append(points, *p)
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Start.Before(points[j].Start)
	})
	return points
}
