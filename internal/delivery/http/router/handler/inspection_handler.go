package handler

import (
	"net/http"
	"strconv"

	"fleetcheck/internal/delivery/http/middleware"
	"fleetcheck/internal/delivery/http/response"
	"fleetcheck/internal/domain/repository"
	"fleetcheck/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// InspectionHandler holds dependencies for inspection handlers.
type InspectionHandler struct {
	inspectionUsecase usecase.InspectionUsecase
}

// NewInspectionHandler is the constructor for InspectionHandler, injected by Fx.
func NewInspectionHandler(inspectionUsecase usecase.InspectionUsecase) *InspectionHandler {
	return &InspectionHandler{inspectionUsecase: inspectionUsecase}
}

type inspectionRequest struct {
	RiderID     *int64 `json:"riderId"`
	IDNumber    string `json:"idNumber"`
	HelmetOK    bool   `json:"helmetOk"`
	BoxOK       bool   `json:"boxOk"`
	IDOK        bool   `json:"idOk"`
	ZoneOK      bool   `json:"zoneOk"`
	ClothesOK   bool   `json:"clothesOk"`
	WellBehaved bool   `json:"wellBehaved"`
	City        string `json:"city"`
	Location    string `json:"location"`
	ImageURL    string `json:"imageUrl"`
	Comments    string `json:"comments"`
}

func inspectionIDParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "inspection id must be an integer")
	}

	return id, nil
}

// Create handles recording a new inspection.
func (h *InspectionHandler) Create(c echo.Context) error {
	var req inspectionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid inspection input")
	}

	inspection, err := h.inspectionUsecase.Create(c.Request().Context(), middleware.GetAccount(c), &usecase.CreateInspectionInput{
		RiderID:     req.RiderID,
		IDNumber:    req.IDNumber,
		HelmetOK:    req.HelmetOK,
		BoxOK:       req.BoxOK,
		IDOK:        req.IDOK,
		ZoneOK:      req.ZoneOK,
		ClothesOK:   req.ClothesOK,
		WellBehaved: req.WellBehaved,
		City:        req.City,
		Location:    req.Location,
		ImageURL:    req.ImageURL,
		Comments:    req.Comments,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, inspection, "Inspection recorded")
}

// Get handles a single inspection lookup.
func (h *InspectionHandler) Get(c echo.Context) error {
	id, err := inspectionIDParam(c)
	if err != nil {
		return err
	}

	inspection, err := h.inspectionUsecase.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, inspection, "")
}

// List handles inspection listing, optionally filtered by city or location
// via query parameters.
func (h *InspectionHandler) List(c echo.Context) error {
	filter := repository.InspectionFilter{
		City:     c.QueryParam("city"),
		Location: c.QueryParam("location"),
	}

	inspections, err := h.inspectionUsecase.List(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, inspections, "")
}

// Update handles amending an inspection.
func (h *InspectionHandler) Update(c echo.Context) error {
	id, err := inspectionIDParam(c)
	if err != nil {
		return err
	}

	var req inspectionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid inspection input")
	}

	inspection, err := h.inspectionUsecase.Update(c.Request().Context(), middleware.GetAccount(c), &usecase.UpdateInspectionInput{
		ID:          id,
		RiderID:     req.RiderID,
		IDNumber:    req.IDNumber,
		HelmetOK:    req.HelmetOK,
		BoxOK:       req.BoxOK,
		IDOK:        req.IDOK,
		ZoneOK:      req.ZoneOK,
		ClothesOK:   req.ClothesOK,
		WellBehaved: req.WellBehaved,
		City:        req.City,
		Location:    req.Location,
		ImageURL:    req.ImageURL,
		Comments:    req.Comments,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, inspection, "Inspection updated")
}

// Delete handles removing an inspection.
func (h *InspectionHandler) Delete(c echo.Context) error {
	id, err := inspectionIDParam(c)
	if err != nil {
		return err
	}

	if err := h.inspectionUsecase.Delete(c.Request().Context(), middleware.GetAccount(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Inspection deleted")
}
