package usecase

import (
	"engagement-srv/internal/stats"
	"engagement-srv/pkg/log"
)

// Config - aggregation tuning
type Config struct {
	TopParticipants int // size of the ranked list in Summary (default 10)
}

// DefaultConfig - default tuning
func DefaultConfig() Config {
	return Config{
		TopParticipants: stats.DefaultTopParticipants,
	}
}

// implUseCase - Implementation of the stats UseCase interface
type implUseCase struct {
	l   log.Logger
	cfg Config
}

// New - Factory function
func New(l log.Logger, cfg Config) stats.UseCase {
	if cfg.TopParticipants <= 0 {
		cfg.TopParticipants = stats.DefaultTopParticipants
	}
	return &implUseCase{l: l, cfg: cfg}
}
