package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/mongo_analytics_app/internal/apperrors"
	portssvc "github.com/SscSPs/mongo_analytics_app/internal/core/ports/services"
	"github.com/SscSPs/mongo_analytics_app/internal/dto"
	"github.com/SscSPs/mongo_analytics_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// tripHandler handles HTTP requests for the bike trip reports.
type tripHandler struct {
	tripService portssvc.TripSvcFacade
}

// newTripHandler creates a new tripHandler.
func newTripHandler(ts portssvc.TripSvcFacade) *tripHandler {
	return &tripHandler{
		tripService: ts,
	}
}

// registerTripRoutes registers the trip analytics routes.
func registerTripRoutes(rg *gin.RouterGroup, tripService portssvc.TripSvcFacade) {
	h := newTripHandler(tripService)

	trips := rg.Group("/trips")
	{
		trips.GET("/user_distribution", h.userDistribution)
		trips.GET("/trips_by_hour", h.tripsByHour)
		trips.GET("/trips_by_day", h.tripsByDay)
		trips.GET("/top_station", h.topStartStations)
		trips.GET("/peak_hours", h.peakHours)
	}
}

// userDistribution godoc
// @Summary Trip counts per rider type
// @Description Groups trips by usertype with total count and average duration, busiest type first
// @Tags trips
// @Produce json
// @Success 200 {array} dto.UserTypeDistributionResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /trips/user_distribution [get]
func (h *tripHandler) userDistribution(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request for user distribution report")

	rows, err := h.tripService.UserTypeDistribution(c.Request.Context())
	if err != nil {
		h.respondTripError(c, logger, err, "user distribution")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserTypeDistributionResponses(rows))
}

// tripsByHour godoc
// @Summary Trips starting within a given hour
// @Description Counts trips whose start time falls in the requested hour of day
// @Tags trips
// @Produce json
// @Param hour query int true "Hour of day" minimum(0) maximum(23)
// @Success 200 {array} dto.HourlyTripsResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} dto.ErrorResponse
// @Router /trips/trips_by_hour [get]
func (h *tripHandler) tripsByHour(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.TripsByHourParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for TripsByHour", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid query parameters: "+err.Error()))
		return
	}

	logger.Info("Received request for trips by hour report", slog.Int("hour", *params.Hour))

	rows, err := h.tripService.TripsByHour(c.Request.Context(), *params.Hour)
	if err != nil {
		h.respondTripError(c, logger, err, "trips by hour")
		return
	}

	c.JSON(http.StatusOK, dto.ToHourlyTripsResponses(rows))
}

// tripsByDay godoc
// @Summary Trips per calendar day
// @Description Counts trips per start date in chronological order
// @Tags trips
// @Produce json
// @Success 200 {array} dto.DailyTripsResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /trips/trips_by_day [get]
func (h *tripHandler) tripsByDay(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request for trips by day report")

	rows, err := h.tripService.TripsByDay(c.Request.Context())
	if err != nil {
		h.respondTripError(c, logger, err, "trips by day")
		return
	}

	c.JSON(http.StatusOK, dto.ToDailyTripsResponses(rows))
}

// topStartStations godoc
// @Summary Most used start stations
// @Description Ranks start stations by trip count, defaulting to the top 10
// @Tags trips
// @Produce json
// @Param limit query int false "Number of stations to return, defaults to 10" minimum(1)
// @Success 200 {array} dto.StationPopularityResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} dto.ErrorResponse
// @Router /trips/top_station [get]
func (h *tripHandler) topStartStations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.TopStationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for TopStartStations", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid query parameters: "+err.Error()))
		return
	}

	limit := params.EffectiveLimit()
	logger.Info("Received request for top stations report", slog.Int("limit", limit))

	rows, err := h.tripService.TopStartStations(c.Request.Context(), limit)
	if err != nil {
		h.respondTripError(c, logger, err, "top stations")
		return
	}

	c.JSON(http.StatusOK, dto.ToStationPopularityResponses(rows))
}

// peakHours godoc
// @Summary Trip volume for an hour and weekday
// @Description Counts trips matching both the requested hour and day of week, 1 = Sunday through 7 = Saturday
// @Tags trips
// @Produce json
// @Param hour query int true "Hour of day" minimum(0) maximum(23)
// @Param dayOfWeek query int true "Day of week, 1 = Sunday" minimum(1) maximum(7)
// @Success 200 {array} dto.PeakHourResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} dto.ErrorResponse
// @Router /trips/peak_hours [get]
func (h *tripHandler) peakHours(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.PeakHoursParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for PeakHours", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid query parameters: "+err.Error()))
		return
	}

	logger.Info("Received request for peak hours report",
		slog.Int("hour", *params.Hour), slog.Int("day_of_week", *params.DayOfWeek))

	rows, err := h.tripService.PeakHours(c.Request.Context(), params.ToFilter())
	if err != nil {
		h.respondTripError(c, logger, err, "peak hours")
		return
	}

	c.JSON(http.StatusOK, dto.ToPeakHourResponses(rows))
}

// respondTripError maps service errors for the trip reports.
func (h *tripHandler) respondTripError(c *gin.Context, logger *slog.Logger, err error, report string) {
	if errors.Is(err, apperrors.ErrValidation) {
		logger.Warn("Validation error in "+report+" report", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}
	logger.Error("Failed to run "+report+" report", slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(err.Error()))
}
