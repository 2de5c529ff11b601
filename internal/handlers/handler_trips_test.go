package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/mongo_analytics_app/internal/core/domain"
	portssvc "github.com/SscSPs/mongo_analytics_app/internal/core/ports/services"
	"github.com/SscSPs/mongo_analytics_app/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TripService ---
type MockTripService struct {
	mock.Mock
}

func (m *MockTripService) UserTypeDistribution(ctx context.Context) ([]domain.UserTypeDistribution, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserTypeDistribution), args.Error(1)
}

func (m *MockTripService) TripsByHour(ctx context.Context, hour int) ([]domain.HourlyTrips, error) {
	args := m.Called(ctx, hour)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HourlyTrips), args.Error(1)
}

func (m *MockTripService) TripsByDay(ctx context.Context) ([]domain.DailyTrips, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyTrips), args.Error(1)
}

func (m *MockTripService) TopStartStations(ctx context.Context, limit int) ([]domain.StationPopularity, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StationPopularity), args.Error(1)
}

func (m *MockTripService) PeakHours(ctx context.Context, filter domain.PeakHourFilter) ([]domain.PeakHour, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PeakHour), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.TripSvcFacade = (*MockTripService)(nil)

// --- Test Suite ---
type TripHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockEmployeeService *MockEmployeeService
	mockBankingService  *MockBankingService
	mockTripService     *MockTripService
}

func (suite *TripHandlerTestSuite) SetupTest() {
	suite.mockEmployeeService = new(MockEmployeeService)
	suite.mockBankingService = new(MockBankingService)
	suite.mockTripService = new(MockTripService)
	suite.router = newTestRouter(suite.mockEmployeeService, suite.mockBankingService, suite.mockTripService)
}

func (suite *TripHandlerTestSuite) serve(url string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *TripHandlerTestSuite) TestUserDistribution_Success() {
	expected := []domain.UserTypeDistribution{
		{UserType: "Subscriber", TotalTrips: 4500, AverageDuration: 820.5},
		{UserType: "Customer", TotalTrips: 500, AverageDuration: 1650.2},
	}

	suite.mockTripService.On("UserTypeDistribution", mock.Anything).Return(expected, nil).Once()

	w := suite.serve("/api/v1/trips/user_distribution")

	suite.Equal(http.StatusOK, w.Code)
	var rows []dto.UserTypeDistributionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &rows))
	suite.Require().Len(rows, 2)
	suite.Equal("Subscriber", rows[0].UserType)
	suite.Equal(int64(4500), rows[0].TotalTrips)
	suite.mockTripService.AssertExpectations(suite.T())
}

func (suite *TripHandlerTestSuite) TestTripsByHour_Success() {
	expected := []domain.HourlyTrips{
		{Hour: 8, TotalTrips: 412, AverageDuration: 640.1},
	}

	suite.mockTripService.On("TripsByHour", mock.Anything, 8).Return(expected, nil).Once()

	w := suite.serve("/api/v1/trips/trips_by_hour?hour=8")

	suite.Equal(http.StatusOK, w.Code)
	var rows []dto.HourlyTripsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &rows))
	suite.Require().Len(rows, 1)
	suite.Equal(8, rows[0].Hour)
	suite.mockTripService.AssertExpectations(suite.T())
}

func (suite *TripHandlerTestSuite) TestTripsByHour_MissingHour() {
	w := suite.serve("/api/v1/trips/trips_by_hour")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTripService.AssertNotCalled(suite.T(), "TripsByHour")
}

func (suite *TripHandlerTestSuite) TestTripsByHour_HourOutOfRange() {
	w := suite.serve("/api/v1/trips/trips_by_hour?hour=24")

	suite.Equal(http.StatusBadRequest, w.Code)
	var resp dto.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.False(resp.Success)
	suite.mockTripService.AssertNotCalled(suite.T(), "TripsByHour")
}

func (suite *TripHandlerTestSuite) TestTripsByDay_Success() {
	expected := []domain.DailyTrips{
		{Day: "2016-01-01", TotalTrips: 229},
	}

	suite.mockTripService.On("TripsByDay", mock.Anything).Return(expected, nil).Once()

	w := suite.serve("/api/v1/trips/trips_by_day")

	suite.Equal(http.StatusOK, w.Code)
	var rows []dto.DailyTripsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &rows))
	suite.Require().Len(rows, 1)
	suite.Equal("2016-01-01", rows[0].Day)
	suite.mockTripService.AssertExpectations(suite.T())
}

func (suite *TripHandlerTestSuite) TestTopStation_DefaultLimit() {
	suite.mockTripService.On("TopStartStations", mock.Anything, dto.DefaultTopStations).Return([]domain.StationPopularity{}, nil).Once()

	w := suite.serve("/api/v1/trips/top_station")

	suite.Equal(http.StatusOK, w.Code)
	suite.mockTripService.AssertExpectations(suite.T())
}

func (suite *TripHandlerTestSuite) TestTopStation_ExplicitLimit() {
	expected := []domain.StationPopularity{
		{StationID: 519, StationName: "Pershing Square North", AverageDuration: 712.4, TotalTrips: 98},
	}

	suite.mockTripService.On("TopStartStations", mock.Anything, 5).Return(expected, nil).Once()

	w := suite.serve("/api/v1/trips/top_station?limit=5")

	suite.Equal(http.StatusOK, w.Code)
	var rows []dto.StationPopularityResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &rows))
	suite.Require().Len(rows, 1)
	suite.Equal(int64(519), rows[0].StartStationID)
	suite.mockTripService.AssertExpectations(suite.T())
}

func (suite *TripHandlerTestSuite) TestTopStation_InvalidLimit() {
	w := suite.serve("/api/v1/trips/top_station?limit=0")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTripService.AssertNotCalled(suite.T(), "TopStartStations")
}

func (suite *TripHandlerTestSuite) TestPeakHours_Success() {
	filter := domain.PeakHourFilter{Hour: 17, DayOfWeek: 6}
	expected := []domain.PeakHour{
		{Hour: 17, DayOfWeek: 6, TotalTrips: 87},
	}

	suite.mockTripService.On("PeakHours", mock.Anything, filter).Return(expected, nil).Once()

	w := suite.serve("/api/v1/trips/peak_hours?hour=17&dayOfWeek=6")

	suite.Equal(http.StatusOK, w.Code)
	var rows []dto.PeakHourResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &rows))
	suite.Require().Len(rows, 1)
	suite.Equal(17, rows[0].Hour)
	suite.Equal(6, rows[0].DayOfWeek)
	suite.mockTripService.AssertExpectations(suite.T())
}

func (suite *TripHandlerTestSuite) TestPeakHours_MissingDayOfWeek() {
	w := suite.serve("/api/v1/trips/peak_hours?hour=17")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTripService.AssertNotCalled(suite.T(), "PeakHours")
}

func (suite *TripHandlerTestSuite) TestPeakHours_DayOfWeekOutOfRange() {
	w := suite.serve("/api/v1/trips/peak_hours?hour=17&dayOfWeek=8")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTripService.AssertNotCalled(suite.T(), "PeakHours")
}

func TestTripHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TripHandlerTestSuite))
}
