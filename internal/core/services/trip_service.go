package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/mongo_analytics_app/internal/apperrors"
	"github.com/SscSPs/mongo_analytics_app/internal/core/domain"
	portsrepo "github.com/SscSPs/mongo_analytics_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/mongo_analytics_app/internal/core/ports/services"
)

// tripService implements the TripSvcFacade interface.
type tripService struct {
	BaseService
	tripRepo portsrepo.TripRepository
}

// NewTripService creates a new trip service.
func NewTripService(repo portsrepo.TripRepository) portssvc.TripSvcFacade {
	return &tripService{
		tripRepo: repo,
	}
}

// Ensure tripService implements the TripSvcFacade interface
var _ portssvc.TripSvcFacade = (*tripService)(nil)

// UserTypeDistribution generates the rider distribution report.
func (s *tripService) UserTypeDistribution(ctx context.Context) ([]domain.UserTypeDistribution, error) {
	rows, err := s.tripRepo.UserTypeDistribution(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve user type distribution")
		return nil, fmt.Errorf("failed to retrieve user type distribution: %w", err)
	}

	s.LogInfo(ctx, "User type distribution report generated", slog.Int("row_count", len(rows)))
	return rows, nil
}

// TripsByHour generates the trips-by-hour report for a single hour of day.
func (s *tripService) TripsByHour(ctx context.Context, hour int) ([]domain.HourlyTrips, error) {
	if hour < domain.MinHour || hour > domain.MaxHour {
		return nil, fmt.Errorf("%w: hour must be between %d and %d, got %d",
			apperrors.ErrValidation, domain.MinHour, domain.MaxHour, hour)
	}

	rows, err := s.tripRepo.TripsByHour(ctx, hour)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve trips by hour", slog.Int("hour", hour))
		return nil, fmt.Errorf("failed to retrieve trips by hour: %w", err)
	}

	s.LogInfo(ctx, "Trips by hour report generated", slog.Int("hour", hour), slog.Int("row_count", len(rows)))
	return rows, nil
}

// TripsByDay generates the trips-by-day report.
func (s *tripService) TripsByDay(ctx context.Context) ([]domain.DailyTrips, error) {
	rows, err := s.tripRepo.TripsByDay(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve trips by day")
		return nil, fmt.Errorf("failed to retrieve trips by day: %w", err)
	}

	s.LogInfo(ctx, "Trips by day report generated", slog.Int("row_count", len(rows)))
	return rows, nil
}

// TopStartStations generates the most popular start stations report.
func (s *tripService) TopStartStations(ctx context.Context, limit int) ([]domain.StationPopularity, error) {
	if limit < 1 {
		return nil, fmt.Errorf("%w: limit must be at least 1, got %d", apperrors.ErrValidation, limit)
	}

	rows, err := s.tripRepo.TopStartStations(ctx, limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve top start stations", slog.Int("limit", limit))
		return nil, fmt.Errorf("failed to retrieve top start stations: %w", err)
	}

	s.LogInfo(ctx, "Top start stations report generated", slog.Int("limit", limit), slog.Int("row_count", len(rows)))
	return rows, nil
}

// PeakHours generates the peak hours report for one (hour, day-of-week) pair.
func (s *tripService) PeakHours(ctx context.Context, filter domain.PeakHourFilter) ([]domain.PeakHour, error) {
	if filter.Hour < domain.MinHour || filter.Hour > domain.MaxHour {
		return nil, fmt.Errorf("%w: hour must be between %d and %d, got %d",
			apperrors.ErrValidation, domain.MinHour, domain.MaxHour, filter.Hour)
	}
	if filter.DayOfWeek < domain.MinDayOfWeek || filter.DayOfWeek > domain.MaxDayOfWeek {
		return nil, fmt.Errorf("%w: dayOfWeek must be between %d and %d, got %d",
			apperrors.ErrValidation, domain.MinDayOfWeek, domain.MaxDayOfWeek, filter.DayOfWeek)
	}

	rows, err := s.tripRepo.PeakHours(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve peak hours",
			slog.Int("hour", filter.Hour), slog.Int("day_of_week", filter.DayOfWeek))
		return nil, fmt.Errorf("failed to retrieve peak hours: %w", err)
	}

	s.LogInfo(ctx, "Peak hours report generated",
		slog.Int("hour", filter.Hour),
		slog.Int("day_of_week", filter.DayOfWeek),
		slog.Int("row_count", len(rows)))
	return rows, nil
}
