package mongodb

import (
	"context"

	"github.com/SscSPs/mongo_analytics_app/internal/core/domain"
	portsrepo "github.com/SscSPs/mongo_analytics_app/internal/core/ports/repositories"
	"go.mongodb.org/mongo-driver/mongo"
)

// tripRepository implements the TripRepository interface.
type tripRepository struct {
	BaseRepository
}

// newTripRepository creates a new trip repository.
func newTripRepository(db *mongo.Database) portsrepo.TripRepository {
	return &tripRepository{
		BaseRepository: BaseRepository{DB: db},
	}
}

// UserTypeDistribution groups trips by rider category.
func (r *tripRepository) UserTypeDistribution(ctx context.Context) ([]domain.UserTypeDistribution, error) {
	var rows []struct {
		UserType        string  `bson:"usertype"`
		TotalTrips      int64   `bson:"total_trips"`
		AverageDuration float64 `bson:"average_duration"`
	}
	if err := r.aggregate(ctx, tripsCollection, userDistributionPipeline(), &rows); err != nil {
		return nil, err
	}

	result := make([]domain.UserTypeDistribution, len(rows))
	for i, row := range rows {
		result[i] = domain.UserTypeDistribution{
			UserType:        row.UserType,
			TotalTrips:      row.TotalTrips,
			AverageDuration: row.AverageDuration,
		}
	}
	return result, nil
}

// TripsByHour groups trips by start hour and keeps the requested hour.
func (r *tripRepository) TripsByHour(ctx context.Context, hour int) ([]domain.HourlyTrips, error) {
	var rows []struct {
		Hour            int     `bson:"hour"`
		TotalTrips      int64   `bson:"total_trips"`
		AverageDuration float64 `bson:"average_duration"`
	}
	if err := r.aggregate(ctx, tripsCollection, tripsByHourPipeline(hour), &rows); err != nil {
		return nil, err
	}

	result := make([]domain.HourlyTrips, len(rows))
	for i, row := range rows {
		result[i] = domain.HourlyTrips{
			Hour:            row.Hour,
			TotalTrips:      row.TotalTrips,
			AverageDuration: row.AverageDuration,
		}
	}
	return result, nil
}

// TripsByDay groups trips by calendar date.
func (r *tripRepository) TripsByDay(ctx context.Context) ([]domain.DailyTrips, error) {
	var rows []struct {
		Day        string `bson:"day"`
		TotalTrips int64  `bson:"total_trips"`
	}
	if err := r.aggregate(ctx, tripsCollection, tripsByDayPipeline(), &rows); err != nil {
		return nil, err
	}

	result := make([]domain.DailyTrips, len(rows))
	for i, row := range rows {
		result[i] = domain.DailyTrips{
			Day:        row.Day,
			TotalTrips: row.TotalTrips,
		}
	}
	return result, nil
}

// TopStartStations returns the most popular start stations by departures.
func (r *tripRepository) TopStartStations(ctx context.Context, limit int) ([]domain.StationPopularity, error) {
	var rows []struct {
		StationID       int64   `bson:"start_station_id"`
		StationName     string  `bson:"station_name"`
		AverageDuration float64 `bson:"average_duration"`
		TotalTrips      int64   `bson:"total_trips"`
	}
	if err := r.aggregate(ctx, tripsCollection, topStationsPipeline(limit), &rows); err != nil {
		return nil, err
	}

	result := make([]domain.StationPopularity, len(rows))
	for i, row := range rows {
		result[i] = domain.StationPopularity{
			StationID:       row.StationID,
			StationName:     row.StationName,
			AverageDuration: row.AverageDuration,
			TotalTrips:      row.TotalTrips,
		}
	}
	return result, nil
}

// PeakHours groups trips by (hour, day-of-week) and keeps the requested pair.
func (r *tripRepository) PeakHours(ctx context.Context, filter domain.PeakHourFilter) ([]domain.PeakHour, error) {
	var rows []struct {
		Hour       int   `bson:"hour"`
		DayOfWeek  int   `bson:"day_of_week"`
		TotalTrips int64 `bson:"total_trips"`
	}
	if err := r.aggregate(ctx, tripsCollection, peakHoursPipeline(filter), &rows); err != nil {
		return nil, err
	}

	result := make([]domain.PeakHour, len(rows))
	for i, row := range rows {
		result[i] = domain.PeakHour{
			Hour:       row.Hour,
			DayOfWeek:  row.DayOfWeek,
			TotalTrips: row.TotalTrips,
		}
	}
	return result, nil
}
