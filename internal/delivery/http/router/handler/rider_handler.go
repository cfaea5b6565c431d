package handler

import (
	"net/http"
	"strconv"

	"fleetcheck/internal/delivery/http/response"
	"fleetcheck/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RiderHandler holds dependencies for rider management handlers.
type RiderHandler struct {
	riderUsecase usecase.RiderUsecase
}

// NewRiderHandler is the constructor for RiderHandler, injected by Fx.
func NewRiderHandler(riderUsecase usecase.RiderUsecase) *RiderHandler {
	return &RiderHandler{riderUsecase: riderUsecase}
}

type riderRequest struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	IDNumber    string `json:"idNumber" validate:"required"`
	CityCode    string `json:"cityCode"`
	VehicleType string `json:"vehicleType"`
}

type riderUpdateRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	IDNumber    string `json:"idNumber"`
	CityCode    string `json:"cityCode"`
	VehicleType string `json:"vehicleType"`
}

func riderIDParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "rider id must be an integer")
	}

	return id, nil
}

// Create handles rider enrollment.
func (h *RiderHandler) Create(c echo.Context) error {
	var req riderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rider input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	rider, err := h.riderUsecase.Create(c.Request().Context(), &usecase.CreateRiderInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		IDNumber:    req.IDNumber,
		CityCode:    req.CityCode,
		VehicleType: req.VehicleType,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, rider, "Rider enrolled")
}

// Get handles a single rider lookup.
func (h *RiderHandler) Get(c echo.Context) error {
	id, err := riderIDParam(c)
	if err != nil {
		return err
	}

	rider, err := h.riderUsecase.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rider, "")
}

// List handles the rider listing request.
func (h *RiderHandler) List(c echo.Context) error {
	riders, err := h.riderUsecase.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, riders, "")
}

// Update handles a rider update.
func (h *RiderHandler) Update(c echo.Context) error {
	id, err := riderIDParam(c)
	if err != nil {
		return err
	}

	var req riderUpdateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rider input")
	}

	rider, err := h.riderUsecase.Update(c.Request().Context(), &usecase.UpdateRiderInput{
		ID:          id,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		IDNumber:    req.IDNumber,
		CityCode:    req.CityCode,
		VehicleType: req.VehicleType,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rider, "Rider updated")
}

// Delete handles a rider removal.
func (h *RiderHandler) Delete(c echo.Context) error {
	id, err := riderIDParam(c)
	if err != nil {
		return err
	}

	if err := h.riderUsecase.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Rider deleted")
}
