package usecase

import (
	"context"
	"testing"
	"time"

	"engagement-srv/internal/model"
	"engagement-srv/internal/reconcile"
	"engagement-srv/internal/stats"
	"engagement-srv/pkg/log"
)

func reconcileSet(participants ...*model.Participant) reconcile.ParticipantSet {
	set := make(reconcile.ParticipantSet, len(participants))
	for _, p := range participants {
		set[p.Identity] = p
	}
	return set
}

func TestSummary(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()

	t.Run("totals cover every participant including non-roster", func(t *testing.T) {
		input := stats.SummaryInput{
			Sources: stats.SourcesInput{
				Roster: []model.RawRecord{
					{"id": "1", "nama": "A"},
					{"id": "2", "nama": "B", "status": "nonaktif"},
				},
				Likes: []model.RawRecord{
					{"user_id": "1", "jumlah_like": float64(5)},
					{"user_id": "3", "jumlah_like": float64(2)},
				},
				Comments: []model.RawRecord{
					{"user_id": "1", "total_komentar": float64(4)},
				},
			},
		}

		out, err := uc.Summary(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		tt := out.Totals
		if tt.Participants != 3 {
			t.Errorf("participants = %d, want 3", tt.Participants)
		}
		if tt.ActiveParticipants != 2 {
			t.Errorf("active = %d, want 2", tt.ActiveParticipants)
		}
		if tt.ExplicitInactive != 1 {
			t.Errorf("explicit inactive = %d, want 1", tt.ExplicitInactive)
		}
		if tt.Likes != 7 || tt.Comments != 4 {
			t.Errorf("metrics = %v/%v, want 7/4", tt.Likes, tt.Comments)
		}
	})

	t.Run("client breakdown groups by id and recomputes compliance", func(t *testing.T) {
		input := stats.SummaryInput{
			Sources: stats.SourcesInput{
				Roster: []model.RawRecord{
					{"id": "1", "skpd_id": "D01", "skpd": "Dinas A"},
					{"id": "2", "skpd_id": "D01", "skpd": "Dinas A"},
					{"id": "3", "skpd": "Dinas B"},
					{"id": "4"}, // no client, excluded from breakdown
				},
				Likes: []model.RawRecord{
					{"user_id": "1", "jumlah_like": float64(6)},
					{"user_id": "3", "jumlah_like": float64(1)},
				},
			},
		}

		out, err := uc.Summary(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Clients) != 2 {
			t.Fatalf("got %d clients, want 2", len(out.Clients))
		}

		first := out.Clients[0]
		if first.ClientName != "Dinas A" {
			t.Errorf("first client = %q, want \"Dinas A\" (most likes first)", first.ClientName)
		}
		if first.Members != 2 || first.ActiveMembers != 1 {
			t.Errorf("members = %d/%d active, want 2/1", first.Members, first.ActiveMembers)
		}
		if first.ComplianceRate != 50 {
			t.Errorf("compliance = %v, want 50", first.ComplianceRate)
		}

		second := out.Clients[1]
		if second.ComplianceRate != 100 {
			t.Errorf("compliance = %v, want 100", second.ComplianceRate)
		}
	})

	t.Run("top participants ranked and capped", func(t *testing.T) {
		small := New(log.NewNop(), Config{TopParticipants: 2})
		input := stats.SummaryInput{
			Sources: stats.SourcesInput{
				Likes: []model.RawRecord{
					{"user_id": "a", "jumlah_like": float64(1)},
					{"user_id": "b", "jumlah_like": float64(9)},
					{"user_id": "c", "jumlah_like": float64(5)},
				},
			},
		}

		out, err := small.Summary(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.TopParticipants) != 2 {
			t.Fatalf("got %d ranked, want 2", len(out.TopParticipants))
		}
		if out.TopParticipants[0].Identity != "id:B" || out.TopParticipants[1].Identity != "id:C" {
			t.Errorf("ranking = %q, %q; want id:B, id:C",
				out.TopParticipants[0].Identity, out.TopParticipants[1].Identity)
		}
	})

	t.Run("last updated is the newest activity date", func(t *testing.T) {
		input := stats.SummaryInput{
			Sources: stats.SourcesInput{
				Likes: []model.RawRecord{
					{"user_id": "a", "tanggal": "2024-03-01"},
				},
				Comments: []model.RawRecord{
					{"user_id": "a", "tanggal": "2024-03-15"},
					{"user_id": "a", "tanggal": "bukan tanggal"},
				},
			},
		}

		out, err := uc.Summary(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.LastUpdated == nil {
			t.Fatal("expected a last-updated date")
		}
		want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
		if !out.LastUpdated.Equal(want) {
			t.Errorf("last updated = %v, want %v", out.LastUpdated, want)
		}
	})

	t.Run("last updated nil without any parseable date", func(t *testing.T) {
		input := stats.SummaryInput{
			Sources: stats.SourcesInput{
				Likes: []model.RawRecord{{"user_id": "a", "jumlah_like": float64(1)}},
			},
		}

		out, err := uc.Summary(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.LastUpdated != nil {
			t.Errorf("last updated = %v, want nil", out.LastUpdated)
		}
	})

	t.Run("empty sources produce an empty report, not an error", func(t *testing.T) {
		out, err := uc.Summary(ctx, stats.SummaryInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Totals.Participants != 0 || len(out.Clients) != 0 || len(out.TopParticipants) != 0 {
			t.Errorf("expected empty report, got %+v", out)
		}
		if out.ReportID == "" {
			t.Error("report id must always be set")
		}
	})
}

func TestRankParticipantsTieBreak(t *testing.T) {
	set := reconcileSet(
		&model.Participant{Identity: "id:B", Likes: 5, Comments: 2},
		&model.Participant{Identity: "id:A", Likes: 5, Comments: 2},
		&model.Participant{Identity: "id:C", Likes: 5, Comments: 3},
	)
	ranked := rankParticipants(set)
	want := []string{"id:C", "id:A", "id:B"}
	for i, id := range want {
		if ranked[i].Identity != id {
			t.Errorf("ranked[%d] = %q, want %q", i, ranked[i].Identity, id)
		}
	}
}

func TestPercentage(t *testing.T) {
	cases := []struct {
		name        string
		part, total float64
		want        float64
	}{
		{"zero total never divides", 5, 0, 0},
		{"plain ratio", 1, 2, 50},
		{"clamped above hundred", 3, 2, 100},
		{"negative clamped to zero", -1, 2, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := percentage(tc.part, tc.total); got != tc.want {
				t.Errorf("percentage(%v, %v) = %v, want %v", tc.part, tc.total, got, tc.want)
			}
		})
	}
}
