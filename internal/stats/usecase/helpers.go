package usecase

import (
	"sort"
	"time"

	"engagement-srv/internal/model"
	"engagement-srv/internal/reconcile"
	"engagement-srv/internal/stats"
)

// rankParticipants orders participants by likes desc, comments desc,
// identity asc. The final identity tie-break keeps the output
// deterministic for identical metric values.
func rankParticipants(set reconcile.ParticipantSet) []*model.Participant {
	ranked := make([]*model.Participant, 0, len(set))
	for _, p := range set {
		ranked = append(ranked, p)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Likes != ranked[j].Likes {
			return ranked[i].Likes > ranked[j].Likes
		}
		if ranked[i].Comments != ranked[j].Comments {
			return ranked[i].Comments > ranked[j].Comments
		}
		return ranked[i].Identity < ranked[j].Identity
	})
	return ranked
}

// clampPercent keeps percentage outputs finite and within [0,100].
func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// percentage returns part/total as a clamped percentage, 0 when total
// is 0. Never divides by zero.
func percentage(part, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return clampPercent(part / total * 100)
}

// latestActivityDate scans records for the newest resolvable activity
// date. Returns nil when no record carries a parseable date.
func latestActivityDate(batches ...[]model.RawRecord) *time.Time {
	var latest *time.Time
	for _, records := range batches {
		for _, rec := range records {
			if rec == nil {
				continue
			}
			t, ok := reconcile.ResolveActivityDate(rec, nil)
			if !ok {
				continue
			}
			if latest == nil || t.After(*latest) {
				v := t
				latest = &v
			}
		}
	}
	return latest
}

// deltaBetween computes the period-over-period change from previous to
// latest. Percent is nil when previous is zero.
func deltaBetween(latest, previous float64) stats.MetricDelta {
	d := stats.MetricDelta{Absolute: latest - previous}
	if previous != 0 {
		pct := (latest - previous) / previous * 100
		d.Percent = &pct
	}
	return d
}
