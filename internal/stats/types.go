package stats

import (
	"time"

	"engagement-srv/internal/model"
)

// Activity-tier thresholds over the metric-to-content ratio. A
// participant at or above TierMostActiveRatio of the published content
// is "most active"; anything above zero but below TierModerateRatio is
// "low".
const (
	TierMostActiveRatio = 0.9
	TierModerateRatio   = 0.5
)

// Tier keys, in descending order of engagement.
const (
	TierMostActive = "most_active"
	TierModerate   = "moderate"
	TierLow        = "low"
	TierInactive   = "inactive"
)

const DefaultTopParticipants = 10

// Period selects the trend bucket size.
type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// SourcesInput carries the three independently-fetched raw arrays, one
// per feed. Arrays may be empty or hold arbitrarily-shaped objects.
type SourcesInput struct {
	Roster   []model.RawRecord
	Likes    []model.RawRecord
	Comments []model.RawRecord
}

// Sources returns the input as tagged sources in roster-first order.
func (s SourcesInput) Sources() []model.Source {
	return []model.Source{
		{Kind: model.SourceRoster, Records: s.Roster},
		{Kind: model.SourceLikes, Records: s.Likes},
		{Kind: model.SourceComments, Records: s.Comments},
	}
}

type TiersInput struct {
	Sources SourcesInput

	// TotalPostsLikes and TotalPostsComments are the content
	// denominators: how many posts were published that participants
	// could have liked / commented on in the period.
	TotalPostsLikes    float64
	TotalPostsComments float64
}

type TierCategory struct {
	Key         string
	Label       string
	Description string
	Count       int
}

type TiersOutput struct {
	ReportID              string
	GeneratedAt           time.Time
	TotalParticipants     int
	EvaluatedParticipants int
	TotalContent          float64
	Categories            []TierCategory
}

type SummaryInput struct {
	Sources SourcesInput
}

type Totals struct {
	Participants       int
	ActiveParticipants int
	ExplicitInactive   int
	Likes              float64
	Comments           float64
}

type ClientBreakdown struct {
	ClientID      string
	ClientName    string
	Members       int
	ActiveMembers int
	Likes         float64
	Comments      float64

	// ComplianceRate is activeMembers/members as a percentage, clamped
	// to [0,100]; 0 for an empty group.
	ComplianceRate float64
}

type RankedParticipant struct {
	Identity   string
	Name       string
	Username   string
	ClientName string
	Likes      float64
	Comments   float64
}

type SummaryOutput struct {
	ReportID        string
	GeneratedAt     time.Time
	Totals          Totals
	Clients         []ClientBreakdown
	TopParticipants []RankedParticipant

	// LastUpdated is the latest resolvable activity date across the
	// likes and comments feeds, or nil when none parses.
	LastUpdated *time.Time
}

type TrendInput struct {
	Sources SourcesInput
	Period  Period
}

type TrendPoint struct {
	Key      string
	Start    time.Time
	End      time.Time
	Records  int
	Likes    float64
	Comments float64
}

// MetricDelta is a period-over-period change. Percent is nil when the
// previous value was zero; there is no meaningful percentage in that
// case and callers render "no comparison available".
type MetricDelta struct {
	Absolute float64
	Percent  *float64
}

type TrendDelta struct {
	Records  MetricDelta
	Likes    MetricDelta
	Comments MetricDelta
}

type TrendOutput struct {
	ReportID    string
	GeneratedAt time.Time
	Period      Period
	Points      []TrendPoint
	Latest      *TrendPoint
	Previous    *TrendPoint
	Delta       *TrendDelta
}
