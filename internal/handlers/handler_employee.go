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

// employeeHandler handles HTTP requests for the employee collection.
type employeeHandler struct {
	employeeService portssvc.EmployeeSvcFacade
}

// newEmployeeHandler creates a new employeeHandler.
func newEmployeeHandler(es portssvc.EmployeeSvcFacade) *employeeHandler {
	return &employeeHandler{
		employeeService: es,
	}
}

// registerEmployeeRoutes registers the employee CRUD and report routes.
func registerEmployeeRoutes(rg *gin.RouterGroup, employeeService portssvc.EmployeeSvcFacade) {
	h := newEmployeeHandler(employeeService)

	rg.GET("/", h.listEmployees)
	rg.POST("/", h.createEmployee)
	rg.GET("/:id", h.getEmployeeByID)
	rg.PUT("/:id", h.updateEmployee)
	rg.DELETE("/:id", h.deleteEmployee)
	rg.GET("/employees/salaries_by_dept", h.salariesByDepartment)
}

// listEmployees godoc
// @Summary List all employees
// @Description Retrieves every employee document in the collection
// @Tags employees
// @Produce json
// @Success 200 {object} dto.ListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router / [get]
func (h *employeeHandler) listEmployees(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to list employees")

	employees, err := h.employeeService.ListEmployees(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list employees", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(len(employees), dto.ToEmployeeResponses(employees)))
}

// createEmployee godoc
// @Summary Create a new employee
// @Description Inserts a new employee document
// @Tags employees
// @Accept json
// @Produce json
// @Param employee body dto.CreateEmployeeRequest true "Employee details"
// @Success 201 {object} dto.EmployeeCreatedResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse
// @Router / [post]
func (h *employeeHandler) createEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateEmployee", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request format: "+err.Error()))
		return
	}

	logger.Info("Received request to create employee", slog.String("email", req.Email))

	created, err := h.employeeService.CreateEmployee(c.Request.Context(), req.ToDomain())
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating employee", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		} else {
			logger.Error("Failed to create employee", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(err.Error()))
		}
		return
	}

	logger.Info("Employee created successfully", slog.String("employee_id", created.EmployeeID))
	c.JSON(http.StatusCreated, dto.EmployeeCreatedResponse{
		Success: true,
		Message: "Employee created",
		Data:    dto.ToEmployeeResponse(created),
	})
}

// getEmployeeByID godoc
// @Summary Get an employee by id
// @Description Retrieves a single employee document by its object id
// @Tags employees
// @Produce json
// @Param id path string true "Employee object id"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 404 {object} dto.MessageResponse "Employee not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /{id} [get]
func (h *employeeHandler) getEmployeeByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("id")
	logger = logger.With(slog.String("employee_id", id))
	logger.Info("Received request to get employee")

	employee, err := h.employeeService.GetEmployeeByID(c.Request.Context(), id)
	if err != nil {
		h.respondEmployeeError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

// updateEmployee godoc
// @Summary Update an employee
// @Description Applies a partial update to an employee document
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "Employee object id"
// @Param employee body dto.UpdateEmployeeRequest true "Fields to update"
// @Success 200 {object} dto.EmployeeUpdatedResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid id or empty update"
// @Failure 404 {object} dto.MessageResponse "Employee not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /{id} [put]
func (h *employeeHandler) updateEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("id")
	logger = logger.With(slog.String("employee_id", id))

	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateEmployee", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request format: "+err.Error()))
		return
	}

	logger.Info("Received request to update employee")

	modified, err := h.employeeService.UpdateEmployee(c.Request.Context(), id, req.ToDomain())
	if err != nil {
		h.respondEmployeeError(c, logger, err)
		return
	}

	logger.Info("Employee updated successfully", slog.Int64("modified_count", modified))
	c.JSON(http.StatusOK, dto.EmployeeUpdatedResponse{
		Success:       true,
		Message:       "Employee updated",
		ModifiedCount: modified,
	})
}

// deleteEmployee godoc
// @Summary Delete an employee
// @Description Removes an employee document by its object id
// @Tags employees
// @Produce json
// @Param id path string true "Employee object id"
// @Success 200 {object} dto.EmployeeDeletedResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 404 {object} dto.MessageResponse "Employee not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /{id} [delete]
func (h *employeeHandler) deleteEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("id")
	logger = logger.With(slog.String("employee_id", id))
	logger.Info("Received request to delete employee")

	if err := h.employeeService.DeleteEmployee(c.Request.Context(), id); err != nil {
		h.respondEmployeeError(c, logger, err)
		return
	}

	logger.Info("Employee deleted successfully")
	c.JSON(http.StatusOK, dto.EmployeeDeletedResponse{
		Success:      true,
		Message:      "Employee deleted",
		DeletedCount: 1,
	})
}

// salariesByDepartment godoc
// @Summary Average salaries per department
// @Description Groups employees by department and reports the average, maximum and minimum salary
// @Tags employees
// @Produce json
// @Success 200 {array} dto.DeptSalarySummaryResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /employees/salaries_by_dept [get]
func (h *employeeHandler) salariesByDepartment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request for salaries by department report")

	summaries, err := h.employeeService.SalariesByDepartment(c.Request.Context())
	if err != nil {
		logger.Error("Failed to run salaries by department report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.ToDeptSalarySummaryResponses(summaries))
}

// respondEmployeeError maps service errors for single-document operations.
func (h *employeeHandler) respondEmployeeError(c *gin.Context, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Employee not found")
		c.JSON(http.StatusNotFound, dto.MessageResponse{Success: false, Message: "Employee not found"})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
	default:
		logger.Error("Employee operation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(err.Error()))
	}
}
