package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"engagement-srv/internal/model"
	"engagement-srv/internal/stats"
)

func TestTrend(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()

	t.Run("unknown period rejected", func(t *testing.T) {
		_, err := uc.Trend(ctx, stats.TrendInput{Period: "quarter"})
		if !errors.Is(err, stats.ErrInvalidPeriod) {
			t.Errorf("got %v, want ErrInvalidPeriod", err)
		}
	})

	t.Run("weekly points with per-feed metrics and delta", func(t *testing.T) {
		input := stats.TrendInput{
			Period: stats.PeriodWeek,
			Sources: stats.SourcesInput{
				Likes: []model.RawRecord{
					{"tanggal": "2024-01-02", "jumlah_like": float64(4)},
					{"tanggal": "2024-01-03", "jumlah_like": float64(6)},
					{"tanggal": "2024-01-09", "jumlah_like": float64(5)},
				},
				Comments: []model.RawRecord{
					{"tanggal": "2024-01-04", "total_komentar": float64(3)},
				},
			},
		}

		out, err := uc.Trend(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Points) != 2 {
			t.Fatalf("got %d points, want 2", len(out.Points))
		}

		first := out.Points[0]
		if first.Key != "2024-01-01" {
			t.Errorf("first key = %q, want 2024-01-01", first.Key)
		}
		if first.Likes != 10 || first.Comments != 3 || first.Records != 3 {
			t.Errorf("first point = %v likes, %v comments, %d records; want 10, 3, 3",
				first.Likes, first.Comments, first.Records)
		}

		if out.Latest == nil || out.Previous == nil || out.Delta == nil {
			t.Fatal("expected latest, previous and delta with two points")
		}
		if out.Latest.Key != "2024-01-08" {
			t.Errorf("latest key = %q, want 2024-01-08", out.Latest.Key)
		}
		if out.Delta.Likes.Absolute != -5 {
			t.Errorf("likes delta = %v, want -5", out.Delta.Likes.Absolute)
		}
		if out.Delta.Likes.Percent == nil || *out.Delta.Likes.Percent != -50 {
			t.Errorf("likes delta percent = %v, want -50", out.Delta.Likes.Percent)
		}
	})

	t.Run("percent delta nil when previous was zero", func(t *testing.T) {
		input := stats.TrendInput{
			Period: stats.PeriodWeek,
			Sources: stats.SourcesInput{
				Likes: []model.RawRecord{
					{"tanggal": "2024-01-02", "jumlah_like": float64(4)},
					{"tanggal": "2024-01-09", "jumlah_like": float64(5)},
				},
				Comments: []model.RawRecord{
					{"tanggal": "2024-01-10", "total_komentar": float64(2)},
				},
			},
		}

		out, err := uc.Trend(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Delta == nil {
			t.Fatal("expected a delta")
		}
		if out.Delta.Comments.Absolute != 2 {
			t.Errorf("comments delta = %v, want 2", out.Delta.Comments.Absolute)
		}
		if out.Delta.Comments.Percent != nil {
			t.Errorf("comments delta percent = %v, want nil (previous was zero)", *out.Delta.Comments.Percent)
		}
	})

	t.Run("monthly buckets join feeds on month key", func(t *testing.T) {
		input := stats.TrendInput{
			Period: stats.PeriodMonth,
			Sources: stats.SourcesInput{
				Likes: []model.RawRecord{
					{"tanggal": "2024-02-03", "jumlah_like": float64(7)},
				},
				Comments: []model.RawRecord{
					{"tanggal": "2024-02-20", "total_komentar": float64(2)},
				},
			},
		}

		out, err := uc.Trend(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Points) != 1 {
			t.Fatalf("got %d points, want 1", len(out.Points))
		}
		p := out.Points[0]
		if p.Key != "2024-02" {
			t.Errorf("key = %q, want 2024-02", p.Key)
		}
		if p.Likes != 7 || p.Comments != 2 || p.Records != 2 {
			t.Errorf("point = %v likes, %v comments, %d records; want 7, 2, 2", p.Likes, p.Comments, p.Records)
		}
		if out.Previous != nil || out.Delta != nil {
			t.Error("single point must not carry previous or delta")
		}
	})

	t.Run("no dated records yields an empty trend", func(t *testing.T) {
		input := stats.TrendInput{
			Period: stats.PeriodWeek,
			Sources: stats.SourcesInput{
				Likes: []model.RawRecord{{"jumlah_like": float64(3)}},
			},
		}

		out, err := uc.Trend(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Points) != 0 || out.Latest != nil {
			t.Errorf("expected empty trend, got %d points", len(out.Points))
		}
	})
}

func TestDeltaBetween(t *testing.T) {
	t.Run("regular change carries a percent", func(t *testing.T) {
		d := deltaBetween(15, 10)
		if d.Absolute != 5 {
			t.Errorf("absolute = %v, want 5", d.Absolute)
		}
		if d.Percent == nil || *d.Percent != 50 {
			t.Errorf("percent = %v, want 50", d.Percent)
		}
	})

	t.Run("zero previous yields nil percent", func(t *testing.T) {
		d := deltaBetween(15, 0)
		if d.Absolute != 15 {
			t.Errorf("absolute = %v, want 15", d.Absolute)
		}
		if d.Percent != nil {
			t.Errorf("percent = %v, want nil", *d.Percent)
		}
	})
}

func TestMergeTrendPointsKeepsWindow(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 6)
	likeBuckets := []model.TimeBucket{{
		Key: "2024-01-01", Start: start, End: end,
		Records: []model.RawRecord{{"jumlah_like": float64(2)}},
		Count:   1,
	}}
	points := mergeTrendPoints(likeBuckets, nil)
	if len(points) != 1 {
		t.Fatalf("got %d points, want 1", len(points))
	}
	if !points[0].Start.Equal(start) || !points[0].End.Equal(end) {
		t.Errorf("window = %v..%v, want %v..%v", points[0].Start, points[0].End, start, end)
	}
}
