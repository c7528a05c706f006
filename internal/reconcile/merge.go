package reconcile

import (
	"fmt"

	"engagement-srv/internal/model"
)

// ParticipantSet is the merged, canonical view of all sources, keyed by
// identity.
type ParticipantSet map[string]*model.Participant

// NormalizeRecords converts a freshly-decoded JSON array into raw
// records. Elements that are not objects become nil entries so the
// positional fallback keys of the remaining records stay stable; Merge
// skips nil entries silently, per the "adversarial shape" input policy.
func NormalizeRecords(values []interface{}) []model.RawRecord {
	records := make([]model.RawRecord, len(values))
	for i, v := range values {
		if m, ok := v.(map[string]interface{}); ok {
			records[i] = model.RawRecord(m)
		}
	}
	return records
}

// Merge folds one or more tagged record batches into canonical
// participant accumulators. Inputs are never mutated. Descriptive
// attributes are filled first-source-wins; metric totals are strictly
// additive, so the per-identity sums do not depend on source order.
func Merge(sources []model.Source) ParticipantSet {
	participants := make(ParticipantSet)
	for _, src := range sources {
		for i, rec := range src.Records {
			if rec == nil {
				continue
			}
			fallback := fmt.Sprintf("%s:%d", src.Kind, i)
			key := ResolveIdentity(rec, fallback)

			p, ok := participants[key]
			if !ok {
				p = &model.Participant{Identity: key}
				participants[key] = p
			}

			fillDescriptive(p, rec)
			applyMetrics(p, rec, src.Kind)
			p.RecordCount++
		}
	}
	return participants
}

// fillDescriptive sets descriptive attributes only when still empty.
func fillDescriptive(p *model.Participant, rec model.RawRecord) {
	if p.Name == "" {
		p.Name = ResolveString(rec, NameFieldPaths)
	}
	if p.Username == "" {
		p.Username = ResolveString(rec, UsernameFieldPaths)
	}
	if p.ClientID == "" {
		p.ClientID = ResolveString(rec, ClientIDFieldPaths)
	}
	if p.ClientName == "" {
		p.ClientName = ResolveString(rec, ClientNameFieldPaths)
	}
	if p.Division == "" {
		p.Division = ResolveString(rec, DivisionFieldPaths)
	}
}

// applyMetrics contributes a record's metrics according to its source
// kind: the likes feed only adds to the like total, the comments feed
// only to the comment total. The roster is a directory, not a metric
// feed; it contributes the explicit activity status instead.
func applyMetrics(p *model.Participant, rec model.RawRecord, kind model.SourceKind) {
	switch kind {
	case model.SourceLikes:
		p.Likes += ResolveMetric(rec, LikeFieldPaths)
	case model.SourceComments:
		p.Comments += ResolveMetric(rec, CommentFieldPaths)
	case model.SourceRoster:
		p.FromRoster = true
		if st := ResolveStatus(rec); st != model.StatusUnknown {
			p.ExplicitStatus = st
		}
	}
	if p.Likes > 0 || p.Comments > 0 {
		p.Active = true
	}
}
