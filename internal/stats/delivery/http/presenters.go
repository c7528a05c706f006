package http

import (
	"engagement-srv/internal/reconcile"
	"engagement-srv/internal/stats"
	"engagement-srv/pkg/response"
)

// =====================================================
// Request DTOs
// =====================================================

// sourcesReq carries the three raw arrays exactly as fetched upstream.
// Elements are decoded as untyped values so a stray non-object element
// invalidates only itself, not the whole payload.
type sourcesReq struct {
	Roster   []interface{} `json:"roster"`
	Likes    []interface{} `json:"likes"`
	Comments []interface{} `json:"comments"`
}

func (r sourcesReq) toInput() stats.SourcesInput {
	return stats.SourcesInput{
		Roster:   reconcile.NormalizeRecords(r.Roster),
		Likes:    reconcile.NormalizeRecords(r.Likes),
		Comments: reconcile.NormalizeRecords(r.Comments),
	}
}

type tiersReq struct {
	Sources            sourcesReq `json:"sources"`
	TotalPostsLikes    float64    `json:"total_posts_likes"`
	TotalPostsComments float64    `json:"total_posts_comments"`
}

func (r tiersReq) toInput() stats.TiersInput {
	return stats.TiersInput{
		Sources:            r.Sources.toInput(),
		TotalPostsLikes:    r.TotalPostsLikes,
		TotalPostsComments: r.TotalPostsComments,
	}
}

type summaryReq struct {
	Sources sourcesReq `json:"sources"`
}

func (r summaryReq) toInput() stats.SummaryInput {
	return stats.SummaryInput{Sources: r.Sources.toInput()}
}

type trendReq struct {
	Sources sourcesReq `json:"sources"`
	Period  string     `json:"period"`
}

func (r trendReq) toInput() stats.TrendInput {
	return stats.TrendInput{
		Sources: r.Sources.toInput(),
		Period:  stats.Period(r.Period),
	}
}

// =====================================================
// Response DTOs
// =====================================================

type tierCategoryResp struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Count       int    `json:"count"`
}

type tiersResp struct {
	ReportID              string             `json:"report_id"`
	GeneratedAt           response.DateTime  `json:"generated_at"`
	TotalParticipants     int                `json:"total_participants"`
	EvaluatedParticipants int                `json:"evaluated_participants"`
	TotalContent          float64            `json:"total_content"`
	Categories            []tierCategoryResp `json:"categories"`
}

func (h *handler) newTiersResp(output stats.TiersOutput) tiersResp {
	resp := tiersResp{
		ReportID:              output.ReportID,
		GeneratedAt:           response.DateTime(output.GeneratedAt),
		TotalParticipants:     output.TotalParticipants,
		EvaluatedParticipants: output.EvaluatedParticipants,
		TotalContent:          output.TotalContent,
	}
	resp.Categories = make([]tierCategoryResp, len(output.Categories))
	for i, cat := range output.Categories {
		resp.Categories[i] = tierCategoryResp{
			Key:         cat.Key,
			Label:       cat.Label,
			Description: cat.Description,
			Count:       cat.Count,
		}
	}
	return resp
}

type totalsResp struct {
	Participants       int     `json:"participants"`
	ActiveParticipants int     `json:"active_participants"`
	ExplicitInactive   int     `json:"explicit_inactive"`
	Likes              float64 `json:"likes"`
	Comments           float64 `json:"comments"`
}

type clientResp struct {
	ClientID       string  `json:"client_id,omitempty"`
	ClientName     string  `json:"client_name"`
	Members        int     `json:"members"`
	ActiveMembers  int     `json:"active_members"`
	Likes          float64 `json:"likes"`
	Comments       float64 `json:"comments"`
	ComplianceRate float64 `json:"compliance_rate"`
}

type participantResp struct {
	Identity   string  `json:"identity"`
	Name       string  `json:"name,omitempty"`
	Username   string  `json:"username,omitempty"`
	ClientName string  `json:"client_name,omitempty"`
	Likes      float64 `json:"likes"`
	Comments   float64 `json:"comments"`
}

type summaryResp struct {
	ReportID        string             `json:"report_id"`
	GeneratedAt     response.DateTime  `json:"generated_at"`
	Totals          totalsResp         `json:"totals"`
	Clients         []clientResp       `json:"clients"`
	TopParticipants []participantResp  `json:"top_participants"`
	LastUpdated     *response.DateTime `json:"last_updated"`
}

func (h *handler) newSummaryResp(output stats.SummaryOutput) summaryResp {
	resp := summaryResp{
		ReportID:    output.ReportID,
		GeneratedAt: response.DateTime(output.GeneratedAt),
		Totals: totalsResp{
			Participants:       output.Totals.Participants,
			ActiveParticipants: output.Totals.ActiveParticipants,
			ExplicitInactive:   output.Totals.ExplicitInactive,
			Likes:              output.Totals.Likes,
			Comments:           output.Totals.Comments,
		},
	}
	if output.LastUpdated != nil {
		d := response.DateTime(*output.LastUpdated)
		resp.LastUpdated = &d
	}

	resp.Clients = make([]clientResp, len(output.Clients))
	for i, cl := range output.Clients {
		resp.Clients[i] = clientResp{
			ClientID:       cl.ClientID,
			ClientName:     cl.ClientName,
			Members:        cl.Members,
			ActiveMembers:  cl.ActiveMembers,
			Likes:          cl.Likes,
			Comments:       cl.Comments,
			ComplianceRate: cl.ComplianceRate,
		}
	}
	resp.TopParticipants = make([]participantResp, len(output.TopParticipants))
	for i, p := range output.TopParticipants {
		resp.TopParticipants[i] = participantResp{
			Identity:   p.Identity,
			Name:       p.Name,
			Username:   p.Username,
			ClientName: p.ClientName,
			Likes:      p.Likes,
			Comments:   p.Comments,
		}
	}
	return resp
}

type trendPointResp struct {
	Key      string        `json:"key"`
	Start    response.Date `json:"start"`
	End      response.Date `json:"end"`
	Records  int           `json:"records"`
	Likes    float64       `json:"likes"`
	Comments float64       `json:"comments"`
}

type metricDeltaResp struct {
	Absolute float64  `json:"absolute"`
	Percent  *float64 `json:"percent"`
}

type trendDeltaResp struct {
	Records  metricDeltaResp `json:"records"`
	Likes    metricDeltaResp `json:"likes"`
	Comments metricDeltaResp `json:"comments"`
}

type trendResp struct {
	ReportID    string            `json:"report_id"`
	GeneratedAt response.DateTime `json:"generated_at"`
	Period      string           `json:"period"`
	Points      []trendPointResp `json:"points"`
	Latest      *trendPointResp  `json:"latest,omitempty"`
	Previous    *trendPointResp  `json:"previous,omitempty"`
	Delta       *trendDeltaResp  `json:"delta,omitempty"`
}

func (h *handler) newTrendResp(output stats.TrendOutput) trendResp {
	resp := trendResp{
		ReportID:    output.ReportID,
		GeneratedAt: response.DateTime(output.GeneratedAt),
		Period:      string(output.Period),
	}
	resp.Points = make([]trendPointResp, len(output.Points))
	for i, p := range output.Points {
		resp.Points[i] = newTrendPointResp(p)
	}
	if output.Latest != nil {
		p := newTrendPointResp(*output.Latest)
		resp.Latest = &p
	}
	if output.Previous != nil {
		p := newTrendPointResp(*output.Previous)
		resp.Previous = &p
	}
	if output.Delta != nil {
		resp.Delta = &trendDeltaResp{
			Records:  metricDeltaResp(output.Delta.Records),
			Likes:    metricDeltaResp(output.Delta.Likes),
			Comments: metricDeltaResp(output.Delta.Comments),
		}
	}
	return resp
}

func newTrendPointResp(p stats.TrendPoint) trendPointResp {
	return trendPointResp{
		Key:      p.Key,
		Start:    response.Date(p.Start),
		End:      response.Date(p.End),
		Records:  p.Records,
		Likes:    p.Likes,
		Comments: p.Comments,
	}
}
