package stats

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	ActivityTiers(ctx context.Context, input TiersInput) (TiersOutput, error)
	Summary(ctx context.Context, input SummaryInput) (SummaryOutput, error)
	Trend(ctx context.Context, input TrendInput) (TrendOutput, error)
}
