package service

import (
	"context"
	"math"
	"time"

	"finbuddy/internal/dto"
	"finbuddy/internal/repository"

	"go.uber.org/zap"
)

const (
	trailingWindowDays   = 90
	trailingWindowMonths = 3
)

// ProjectionService extrapolates future spending linearly from the
// trailing 90-day average. Deliberately naive: no seasonality, trend or
// variance modeling, and the average always divides by 3 months even when
// the window holds less data.
type ProjectionService struct {
	expenses *repository.ExpenseRepository
	logger   *zap.Logger
}

func NewProjectionService(expenses *repository.ExpenseRepository, logger *zap.Logger) *ProjectionService {
	return &ProjectionService{
		expenses: expenses,
		logger:   logger,
	}
}

// Project forecasts the next months of spending. With no expenses in the
// trailing window it returns an empty list and an informational message
// instead of a zero projection.
func (s *ProjectionService) Project(ctx context.Context, months int) (*dto.ProjectionResponse, error) {
	now := time.Now()
	cutoff := now.AddDate(0, 0, -trailingWindowDays).Format(dateLayout)

	expenses, err := s.expenses.ListSince(ctx, cutoff)
	if err != nil {
		return nil, err
	}

	var total float64
	for _, exp := range expenses {
		total += exp.Amount
	}

	s.logger.Debug("Projection window collected",
		zap.String("cutoff", cutoff),
		zap.Int("expenses", len(expenses)),
		zap.Float64("total", total),
	)

	return buildProjection(total, len(expenses), months, now), nil
}

func buildProjection(total float64, count, months int, now time.Time) *dto.ProjectionResponse {
	if count == 0 {
		return &dto.ProjectionResponse{
			Projections: []dto.ProjectionMonth{},
			Message:     "Not enough data for projections",
		}
	}

	avgMonthly := total / trailingWindowMonths

	projections := make([]dto.ProjectionMonth, 0, months)
	for i := 1; i <= months; i++ {
		future := now.AddDate(0, 0, 30*i)
		projections = append(projections, dto.ProjectionMonth{
			Month:             future.Format("Jan 2006"),
			ProjectedExpenses: round2(avgMonthly * float64(i)),
		})
	}

	rounded := round2(avgMonthly)
	return &dto.ProjectionResponse{
		Projections: projections,
		AvgMonthly:  &rounded,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
