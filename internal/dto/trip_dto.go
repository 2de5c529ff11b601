package dto

import (
	"github.com/SscSPs/mongo_analytics_app/internal/core/domain"
)

// TripsByHourParams defines query parameters for the trips-by-hour report.
type TripsByHourParams struct {
	Hour *int `form:"hour" binding:"required,min=0,max=23"`
}

// TopStationsParams defines query parameters for the top stations report.
type TopStationsParams struct {
	Limit *int `form:"limit" binding:"omitempty,min=1"`
}

// DefaultTopStations is the station count returned when the caller does not
// ask for a specific limit.
const DefaultTopStations = 10

// EffectiveLimit returns the requested limit or the default.
func (p TopStationsParams) EffectiveLimit() int {
	if p.Limit != nil {
		return *p.Limit
	}
	return DefaultTopStations
}

// PeakHoursParams defines query parameters for the peak hours report.
// Day-of-week follows the store convention: 1 = Sunday through 7 = Saturday.
type PeakHoursParams struct {
	Hour      *int `form:"hour" binding:"required,min=0,max=23"`
	DayOfWeek *int `form:"dayOfWeek" binding:"required,min=1,max=7"`
}

// ToFilter converts the bound parameters into filter criteria.
func (p PeakHoursParams) ToFilter() domain.PeakHourFilter {
	return domain.PeakHourFilter{Hour: *p.Hour, DayOfWeek: *p.DayOfWeek}
}

// UserTypeDistributionResponse is one row of the rider distribution report.
type UserTypeDistributionResponse struct {
	UserType        string  `json:"usertype"`
	TotalTrips      int64   `json:"total_trips"`
	AverageDuration float64 `json:"average_duration"`
}

// ToUserTypeDistributionResponses converts the domain report rows.
func ToUserTypeDistributionResponses(rows []domain.UserTypeDistribution) []UserTypeDistributionResponse {
	responses := make([]UserTypeDistributionResponse, len(rows))
	for i, row := range rows {
		responses[i] = UserTypeDistributionResponse{
			UserType:        row.UserType,
			TotalTrips:      row.TotalTrips,
			AverageDuration: row.AverageDuration,
		}
	}
	return responses
}

// HourlyTripsResponse is one row of the trips-by-hour report.
type HourlyTripsResponse struct {
	Hour            int     `json:"hour"`
	TotalTrips      int64   `json:"total_trips"`
	AverageDuration float64 `json:"average_duration"`
}

// ToHourlyTripsResponses converts the domain report rows.
func ToHourlyTripsResponses(rows []domain.HourlyTrips) []HourlyTripsResponse {
	responses := make([]HourlyTripsResponse, len(rows))
	for i, row := range rows {
		responses[i] = HourlyTripsResponse{
			Hour:            row.Hour,
			TotalTrips:      row.TotalTrips,
			AverageDuration: row.AverageDuration,
		}
	}
	return responses
}

// DailyTripsResponse is one row of the trips-by-day report.
type DailyTripsResponse struct {
	Day        string `json:"day"`
	TotalTrips int64  `json:"total_trips"`
}

// ToDailyTripsResponses converts the domain report rows.
func ToDailyTripsResponses(rows []domain.DailyTrips) []DailyTripsResponse {
	responses := make([]DailyTripsResponse, len(rows))
	for i, row := range rows {
		responses[i] = DailyTripsResponse{
			Day:        row.Day,
			TotalTrips: row.TotalTrips,
		}
	}
	return responses
}

// StationPopularityResponse is one row of the top stations report.
type StationPopularityResponse struct {
	StartStationID  int64   `json:"start_station_id"`
	StationName     string  `json:"station_name"`
	AverageDuration float64 `json:"average_duration"`
	TotalTrips      int64   `json:"total_trips"`
}

// ToStationPopularityResponses converts the domain report rows.
func ToStationPopularityResponses(rows []domain.StationPopularity) []StationPopularityResponse {
	responses := make([]StationPopularityResponse, len(rows))
	for i, row := range rows {
		responses[i] = StationPopularityResponse{
			StartStationID:  row.StationID,
			StationName:     row.StationName,
			AverageDuration: row.AverageDuration,
			TotalTrips:      row.TotalTrips,
		}
	}
	return responses
}

// PeakHourResponse is one row of the peak hours report.
type PeakHourResponse struct {
	Hour       int   `json:"hour"`
	DayOfWeek  int   `json:"day_of_week"`
	TotalTrips int64 `json:"total_trips"`
}

// ToPeakHourResponses converts the domain report rows.
func ToPeakHourResponses(rows []domain.PeakHour) []PeakHourResponse {
	responses := make([]PeakHourResponse, len(rows))
	for i, row := range rows {
		responses[i] = PeakHourResponse{
			Hour:       row.Hour,
			DayOfWeek:  row.DayOfWeek,
			TotalTrips: row.TotalTrips,
		}
	}
	return responses
}
