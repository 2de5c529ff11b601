package domain

// Hour and day-of-week domains for the trip reports. Day-of-week follows the
// store's convention: 1 = Sunday through 7 = Saturday.
const (
	MinHour      = 0
	MaxHour      = 23
	MinDayOfWeek = 1
	MaxDayOfWeek = 7
)

// UserTypeDistribution is one row of the rider distribution report.
type UserTypeDistribution struct {
	UserType        string
	TotalTrips      int64
	AverageDuration float64
}

// HourlyTrips is one row of the trips-by-hour report.
type HourlyTrips struct {
	Hour            int
	TotalTrips      int64
	AverageDuration float64
}

// DailyTrips is one row of the trips-by-day report. Day is a calendar date
// formatted YYYY-MM-DD.
type DailyTrips struct {
	Day        string
	TotalTrips int64
}

// StationPopularity is one row of the top start stations report.
type StationPopularity struct {
	StationID       int64
	StationName     string
	AverageDuration float64
	TotalTrips      int64
}

// PeakHourFilter holds the normalized criteria for the peak hours report.
type PeakHourFilter struct {
	Hour      int
	DayOfWeek int
}

// PeakHour is one row of the peak hours report.
type PeakHour struct {
	Hour       int
	DayOfWeek  int
	TotalTrips int64
}
