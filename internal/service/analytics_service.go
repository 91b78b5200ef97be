package service

import (
	"context"
	"time"

	"finbuddy/internal/dto"
	"finbuddy/internal/repository"

	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// AnalyticsService aggregates expense totals over a trailing window.
// Read-only.
type AnalyticsService struct {
	expenses *repository.ExpenseRepository
	logger   *zap.Logger
}

func NewAnalyticsService(expenses *repository.ExpenseRepository, logger *zap.Logger) *AnalyticsService {
	return &AnalyticsService{
		expenses: expenses,
		logger:   logger,
	}
}

// Summary returns the window total partitioned by category and by payment
// method. Both partitions sum back to the total.
func (s *AnalyticsService) Summary(ctx context.Context, period string) (*dto.AnalyticsSummary, error) {
	cutoff := periodCutoff(period, time.Now())

	total, err := s.expenses.TotalSince(ctx, cutoff)
	if err != nil {
		return nil, err
	}

	byCategory, err := s.expenses.TotalsByCategorySince(ctx, cutoff)
	if err != nil {
		return nil, err
	}

	byPayment, err := s.expenses.TotalsByPaymentSince(ctx, cutoff)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Analytics summary computed",
		zap.String("period", period),
		zap.String("cutoff", cutoff),
		zap.Float64("total", total),
	)

	return &dto.AnalyticsSummary{
		Total:      total,
		ByCategory: byCategory,
		ByPayment:  byPayment,
	}, nil
}

// periodCutoff maps the period selector to an inclusive lower-bound date
// string. Unrecognized selectors fall back to the 365-day window.
func periodCutoff(period string, now time.Time) string {
	days := 365
	switch period {
	case "week":
		days = 7
	case "month":
		days = 30
	}
	return now.AddDate(0, 0, -days).Format(dateLayout)
}
