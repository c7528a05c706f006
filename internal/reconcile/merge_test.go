package reconcile

import (
	"fmt"
	"testing"

	"engagement-srv/internal/model"
)

func TestMerge(t *testing.T) {
	t.Run("links likes to roster by id, comments stay separate", func(t *testing.T) {
		// The comments record shares no id with roster entry "7", so it
		// must become its own participant: identity categories are
		// never merged for a single record.
		sources := []model.Source{
			{Kind: model.SourceRoster, Records: []model.RawRecord{
				{"id": "7", "nama": "Budi"},
			}},
			{Kind: model.SourceLikes, Records: []model.RawRecord{
				{"user_id": "7", "jumlah_like": "3"},
			}},
			{Kind: model.SourceComments, Records: []model.RawRecord{
				{"username": "budi_x", "total_komentar": float64(2)},
			}},
		}

		set := Merge(sources)
		if len(set) != 2 {
			t.Fatalf("got %d participants, want 2", len(set))
		}

		budi := set["id:7"]
		if budi == nil {
			t.Fatal("missing participant id:7")
		}
		if budi.Name != "Budi" {
			t.Errorf("name = %q, want \"Budi\"", budi.Name)
		}
		if budi.Likes != 3 {
			t.Errorf("likes = %v, want 3", budi.Likes)
		}
		if !budi.FromRoster {
			t.Error("id:7 should be marked as roster member")
		}

		commenter := set["username:BUDI_X"]
		if commenter == nil {
			t.Fatal("missing participant username:BUDI_X")
		}
		if commenter.Comments != 2 {
			t.Errorf("comments = %v, want 2", commenter.Comments)
		}
		if commenter.FromRoster {
			t.Error("comment-only participant must not count as roster member")
		}
	})

	t.Run("metric totals independent of source order", func(t *testing.T) {
		roster := []model.RawRecord{{"id": "1", "nama": "A"}}
		likes := []model.RawRecord{
			{"user_id": "1", "jumlah_like": float64(2)},
			{"user_id": "1", "jumlah_like": "1.000"},
		}
		comments := []model.RawRecord{{"user_id": "1", "total_komentar": float64(4)}}

		forward := Merge([]model.Source{
			{Kind: model.SourceRoster, Records: roster},
			{Kind: model.SourceLikes, Records: likes},
			{Kind: model.SourceComments, Records: comments},
		})
		reversed := Merge([]model.Source{
			{Kind: model.SourceComments, Records: comments},
			{Kind: model.SourceLikes, Records: likes},
			{Kind: model.SourceRoster, Records: roster},
		})

		f, r := forward["id:1"], reversed["id:1"]
		if f == nil || r == nil {
			t.Fatal("missing participant id:1")
		}
		if f.Likes != r.Likes || f.Comments != r.Comments {
			t.Errorf("totals differ by order: forward %v/%v, reversed %v/%v",
				f.Likes, f.Comments, r.Likes, r.Comments)
		}
		if f.Likes != 1002 {
			t.Errorf("likes = %v, want 1002", f.Likes)
		}
	})

	t.Run("metrics are monotonically non-decreasing", func(t *testing.T) {
		likes := []model.RawRecord{{"user_id": "9", "jumlah_like": float64(5)}}
		before := Merge([]model.Source{{Kind: model.SourceLikes, Records: likes}})

		likes = append(likes, model.RawRecord{"user_id": "9", "jumlah_like": float64(0)})
		likes = append(likes, model.RawRecord{"user_id": "9", "jumlah_like": float64(2)})
		after := Merge([]model.Source{{Kind: model.SourceLikes, Records: likes}})

		if after["id:9"].Likes < before["id:9"].Likes {
			t.Errorf("likes decreased: %v -> %v", before["id:9"].Likes, after["id:9"].Likes)
		}
	})

	t.Run("descriptive attributes fill first-source-wins", func(t *testing.T) {
		set := Merge([]model.Source{
			{Kind: model.SourceRoster, Records: []model.RawRecord{
				{"id": "3", "nama": "Sari", "skpd": "Dinas A"},
			}},
			{Kind: model.SourceLikes, Records: []model.RawRecord{
				{"user_id": "3", "nama": "S. Dewi", "jumlah_like": float64(1)},
			}},
		})
		p := set["id:3"]
		if p.Name != "Sari" {
			t.Errorf("name = %q, want \"Sari\" (first source wins)", p.Name)
		}
		if p.ClientName != "Dinas A" {
			t.Errorf("client name = %q, want \"Dinas A\"", p.ClientName)
		}
	})

	t.Run("explicit roster status independent of metric activity", func(t *testing.T) {
		set := Merge([]model.Source{
			{Kind: model.SourceRoster, Records: []model.RawRecord{
				{"id": "4", "status": "nonaktif"},
			}},
			{Kind: model.SourceLikes, Records: []model.RawRecord{
				{"user_id": "4", "jumlah_like": float64(10)},
			}},
		})
		p := set["id:4"]
		if p.ExplicitStatus != model.StatusInactive {
			t.Errorf("explicit status = %v, want StatusInactive", p.ExplicitStatus)
		}
		if !p.Active {
			t.Error("metric-based active flag should still be true")
		}
	})

	t.Run("active union across likes and comments", func(t *testing.T) {
		// 10 roster entries; likes for 6, comments for 4 with 2
		// overlapping the likes set. Union of active = 8.
		roster := make([]model.RawRecord, 0, 10)
		for i := 1; i <= 10; i++ {
			roster = append(roster, model.RawRecord{"id": fmt.Sprintf("%d", i)})
		}
		likes := make([]model.RawRecord, 0, 6)
		for i := 1; i <= 6; i++ {
			likes = append(likes, model.RawRecord{"user_id": fmt.Sprintf("%d", i), "jumlah_like": float64(1)})
		}
		comments := make([]model.RawRecord, 0, 4)
		for i := 5; i <= 8; i++ {
			comments = append(comments, model.RawRecord{"user_id": fmt.Sprintf("%d", i), "total_komentar": float64(1)})
		}

		set := Merge([]model.Source{
			{Kind: model.SourceRoster, Records: roster},
			{Kind: model.SourceLikes, Records: likes},
			{Kind: model.SourceComments, Records: comments},
		})

		if len(set) != 10 {
			t.Fatalf("got %d participants, want 10", len(set))
		}
		active, evaluated := 0, 0
		for _, p := range set {
			if p.Active {
				active++
			}
			if p.FromRoster {
				evaluated++
			}
		}
		if evaluated != 10 {
			t.Errorf("evaluated = %d, want 10", evaluated)
		}
		if active != 8 {
			t.Errorf("active = %d, want 8", active)
		}
	})
}

func TestNormalizeRecords(t *testing.T) {
	values := []interface{}{
		map[string]interface{}{"id": "1"},
		"junk",
		float64(42),
		nil,
		map[string]interface{}{"id": "2"},
	}
	records := NormalizeRecords(values)

	if len(records) != 5 {
		t.Fatalf("got %d entries, want 5 (positions preserved)", len(records))
	}
	if records[0] == nil || records[4] == nil {
		t.Error("object elements must survive normalization")
	}
	if records[1] != nil || records[2] != nil || records[3] != nil {
		t.Error("non-object elements must become nil entries")
	}

	set := Merge([]model.Source{{Kind: model.SourceRoster, Records: records}})
	if len(set) != 2 {
		t.Errorf("got %d participants, want 2 (non-objects skipped silently)", len(set))
	}
}
