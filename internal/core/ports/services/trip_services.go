package services

import (
	"context"

	"github.com/SscSPs/mongo_analytics_app/internal/core/domain"
)

// TripSvcFacade exposes the trip analytics reports to the handler layer.
type TripSvcFacade interface {
	UserTypeDistribution(ctx context.Context) ([]domain.UserTypeDistribution, error)
	TripsByHour(ctx context.Context, hour int) ([]domain.HourlyTrips, error)
	TripsByDay(ctx context.Context) ([]domain.DailyTrips, error)
	TopStartStations(ctx context.Context, limit int) ([]domain.StationPopularity, error)
	PeakHours(ctx context.Context, filter domain.PeakHourFilter) ([]domain.PeakHour, error)
}
