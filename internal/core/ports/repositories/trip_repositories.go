package repositories

import (
	"context"

	"github.com/SscSPs/mongo_analytics_app/internal/core/domain"
)

// TripRepository defines the bike-share trip report queries.
type TripRepository interface {
	// UserTypeDistribution groups trips by rider category.
	UserTypeDistribution(ctx context.Context) ([]domain.UserTypeDistribution, error)

	// TripsByHour groups trips by start hour and keeps the requested hour.
	TripsByHour(ctx context.Context, hour int) ([]domain.HourlyTrips, error)

	// TripsByDay groups trips by calendar date, ascending.
	TripsByDay(ctx context.Context) ([]domain.DailyTrips, error)

	// TopStartStations returns the limit most popular start stations by
	// departure count, descending.
	TopStartStations(ctx context.Context, limit int) ([]domain.StationPopularity, error)

	// PeakHours groups trips by (hour, day-of-week) and keeps the requested
	// pair.
	PeakHours(ctx context.Context, filter domain.PeakHourFilter) ([]domain.PeakHour, error)
}
