package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"engagement-srv/internal/model"
	"engagement-srv/internal/reconcile"
	"engagement-srv/internal/stats"
	"engagement-srv/pkg/util"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Summary merges all sources and produces the dashboard aggregate:
// global totals, per-client breakdown with compliance rates, and the
// ranked participant list. The independent aggregations fan out over the
// immutable merged set.
func (uc *implUseCase) Summary(ctx context.Context, input stats.SummaryInput) (stats.SummaryOutput, error) {
	participants := reconcile.Merge(input.Sources.Sources())

	var (
		totals      stats.Totals
		clients     []stats.ClientBreakdown
		top         []stats.RankedParticipant
		lastUpdated *time.Time
	)

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		totals = computeTotals(participants)
		return nil
	})

	g.Go(func() error {
		clients = computeClientBreakdown(participants)
		return nil
	})

	g.Go(func() error {
		top = computeTopParticipants(participants, uc.cfg.TopParticipants)
		return nil
	})

	g.Go(func() error {
		lastUpdated = latestActivityDate(input.Sources.Likes, input.Sources.Comments)
		return nil
	})

	if err := g.Wait(); err != nil {
		return stats.SummaryOutput{}, err
	}

	uc.l.Debugf(ctx, "stats.usecase.Summary: %d participants, %d clients", totals.Participants, len(clients))

	return stats.SummaryOutput{
		ReportID:        uuid.NewString(),
		GeneratedAt:     time.Now().UTC(),
		Totals:          totals,
		Clients:         clients,
		TopParticipants: top,
		LastUpdated:     lastUpdated,
	}, nil
}

func computeTotals(set reconcile.ParticipantSet) stats.Totals {
	var t stats.Totals
	t.Participants = len(set)
	for _, p := range set {
		t.Likes += p.Likes
		t.Comments += p.Comments
		if p.Active {
			t.ActiveParticipants++
		}
		if p.ExplicitStatus == model.StatusInactive {
			t.ExplicitInactive++
		}
	}
	return t
}

// computeClientBreakdown groups participants by their client/unit.
// Participants with neither a client id nor a client name stay out of
// the breakdown (they still count in the global totals). Group totals
// are recomputed from the members on every call, never carried over.
func computeClientBreakdown(set reconcile.ParticipantSet) []stats.ClientBreakdown {
	type group struct {
		breakdown stats.ClientBreakdown
	}
	groups := make(map[string]*group)

	for _, p := range set {
		key := clientKey(p)
		if key == "" {
			continue
		}
		g, ok := groups[key]
		if !ok {
			g = &group{breakdown: stats.ClientBreakdown{
				ClientID:   p.ClientID,
				ClientName: p.ClientName,
			}}
			groups[key] = g
		}
		b := &g.breakdown
		if b.ClientName == "" {
			b.ClientName = p.ClientName
		}
		b.Members++
		if p.Active {
			b.ActiveMembers++
		}
		b.Likes += p.Likes
		b.Comments += p.Comments
	}

	clients := make([]stats.ClientBreakdown, 0, len(groups))
	for _, g := range groups {
		b := g.breakdown
		b.ComplianceRate = percentage(float64(b.ActiveMembers), float64(b.Members))
		clients = append(clients, b)
	}
	sort.Slice(clients, func(i, j int) bool {
		if clients[i].Likes != clients[j].Likes {
			return clients[i].Likes > clients[j].Likes
		}
		if clients[i].ClientName != clients[j].ClientName {
			return clients[i].ClientName < clients[j].ClientName
		}
		return clients[i].ClientID < clients[j].ClientID
	})
	return clients
}

// clientKey normalizes the client identifier/name pair into one grouping
// key. The id wins when present so renamed units keep one group.
func clientKey(p *model.Participant) string {
	if p.ClientID != "" {
		return "id:" + strings.ToUpper(p.ClientID)
	}
	if p.ClientName != "" {
		return "name:" + strings.ToUpper(p.ClientName)
	}
	return ""
}

func computeTopParticipants(set reconcile.ParticipantSet, limit int) []stats.RankedParticipant {
	ranked := rankParticipants(set)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return util.MapSlice(ranked, func(p *model.Participant) *stats.RankedParticipant {
		return &stats.RankedParticipant{
			Identity:   p.Identity,
			Name:       p.Name,
			Username:   p.Username,
			ClientName: p.ClientName,
			Likes:      p.Likes,
			Comments:   p.Comments,
		}
	})
}
