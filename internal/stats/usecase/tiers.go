package usecase

import (
	"context"
	"math"
	"time"

	"engagement-srv/internal/model"
	"engagement-srv/internal/reconcile"
	"engagement-srv/internal/stats"

	"github.com/google/uuid"
)

// tierDefinitions fixes the order and wording of the four classification
// bands. Counts are filled per call.
var tierDefinitions = []stats.TierCategory{
	{Key: stats.TierMostActive, Label: "Most Active", Description: "Engaged with at least 90% of published content"},
	{Key: stats.TierModerate, Label: "Moderate", Description: "Engaged with at least 50% of published content"},
	{Key: stats.TierLow, Label: "Low", Description: "Engaged with some content, below 50%"},
	{Key: stats.TierInactive, Label: "Inactive", Description: "No recorded engagement in the period"},
}

// ActivityTiers classifies roster members into the four activity bands
// by their metric-to-content ratio.
func (uc *implUseCase) ActivityTiers(ctx context.Context, input stats.TiersInput) (stats.TiersOutput, error) {
	participants := reconcile.Merge(input.Sources.Sources())

	totalContent := input.TotalPostsLikes + input.TotalPostsComments
	counts := make(map[string]int, len(tierDefinitions))
	evaluated := 0

	for _, p := range participants {
		if !p.FromRoster {
			continue
		}
		evaluated++
		ratio := engagementRatio(p, input.TotalPostsLikes, input.TotalPostsComments)
		counts[tierFor(ratio)]++
	}

	categories := make([]stats.TierCategory, len(tierDefinitions))
	for i, def := range tierDefinitions {
		def.Count = counts[def.Key]
		categories[i] = def
	}

	uc.l.Debugf(ctx, "stats.usecase.ActivityTiers: classified %d of %d participants against %.0f posts",
		evaluated, len(participants), totalContent)

	return stats.TiersOutput{
		ReportID:              uuid.NewString(),
		GeneratedAt:           time.Now().UTC(),
		TotalParticipants:     len(participants),
		EvaluatedParticipants: evaluated,
		TotalContent:          totalContent,
		Categories:            categories,
	}, nil
}

// engagementRatio computes the 0-1 engagement ratio for one participant.
// Each metric with a positive denominator contributes
// min(metric, posts)/posts; when both apply the two are averaged.
//
// The zero-denominator case is deliberate legacy behavior: when no
// content was posted at all, anyone with any recorded metric counts as
// fully engaged (ratio 1) rather than N/A. Downstream reports depend on
// that reading; do not change it silently.
func engagementRatio(p *model.Participant, postsLikes, postsComments float64) float64 {
	if postsLikes <= 0 && postsComments <= 0 {
		if p.Likes > 0 || p.Comments > 0 {
			return 1
		}
		return 0
	}

	var sum float64
	var n int
	if postsLikes > 0 {
		sum += math.Min(p.Likes, postsLikes) / postsLikes
		n++
	}
	if postsComments > 0 {
		sum += math.Min(p.Comments, postsComments) / postsComments
		n++
	}
	return sum / float64(n)
}

func tierFor(ratio float64) string {
	switch {
	case ratio >= stats.TierMostActiveRatio:
		return stats.TierMostActive
	case ratio >= stats.TierModerateRatio:
		return stats.TierModerate
	case ratio > 0:
		return stats.TierLow
	default:
		return stats.TierInactive
	}
}
