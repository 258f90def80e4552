package http

import (
	"net/http"

	domainProperty "rentdesk-backend/internal/domain/property"
	propertyuc "rentdesk-backend/internal/usecase/property"

	"github.com/labstack/echo/v4"
)

type PropertyHandler struct{ uc *propertyuc.Usecase }

func NewPropertyHandler(uc *propertyuc.Usecase) *PropertyHandler { return &PropertyHandler{uc: uc} }

type createPropertyReq struct {
	Name    string   `json:"name" validate:"required"`
	Address string   `json:"address"`
	City    string   `json:"city"`
	Country string   `json:"country"`
	Images  []string `json:"images"`
	Notes   string   `json:"notes"`
}

func (h *PropertyHandler) CreateProperty(c echo.Context) error {
	var req createPropertyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	p, err := h.uc.CreateProperty(c.Request().Context(), propertyuc.CreatePropertyInput(req))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *PropertyHandler) ListProperties(c echo.Context) error {
	out, err := h.uc.ListProperties(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PropertyHandler) GetProperty(c echo.Context) error {
	p, err := h.uc.GetProperty(c.Request().Context(), c.Param("property_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PropertyHandler) UpdateProperty(c echo.Context) error {
	var req propertyuc.UpdatePropertyInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	p, err := h.uc.UpdateProperty(c.Request().Context(), c.Param("property_id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PropertyHandler) DeleteProperty(c echo.Context) error {
	if err := h.uc.DeleteProperty(c.Request().Context(), c.Param("property_id")); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

type createUnitReq struct {
	PropertyID  string  `json:"property_id" validate:"required,hex32"`
	UnitNumber  string  `json:"unit_number" validate:"required"`
	Bedrooms    int     `json:"bedrooms" validate:"gte=0"`
	Bathrooms   int     `json:"bathrooms" validate:"gte=0"`
	SizeSqm     float64 `json:"size_sqm" validate:"gte=0"`
	MonthlyRent float64 `json:"monthly_rent" validate:"gte=0,dec2"`
	Type        string  `json:"type" validate:"required,oneof=studio 1BR 2BR 3BR 4BR penthouse villa"`
}

func (h *PropertyHandler) CreateUnit(c echo.Context) error {
	var req createUnitReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	unit, err := h.uc.CreateUnit(c.Request().Context(), propertyuc.CreateUnitInput{
		PropertyID:  req.PropertyID,
		UnitNumber:  req.UnitNumber,
		Bedrooms:    req.Bedrooms,
		Bathrooms:   req.Bathrooms,
		SizeSqm:     req.SizeSqm,
		MonthlyRent: req.MonthlyRent,
		Type:        domainProperty.UnitType(req.Type),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, unit)
}

func (h *PropertyHandler) ListUnits(c echo.Context) error {
	out, err := h.uc.ListUnits(c.Request().Context(), c.QueryParam("property_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PropertyHandler) GetUnit(c echo.Context) error {
	unit, err := h.uc.GetUnit(c.Request().Context(), c.Param("unit_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, unit)
}

func (h *PropertyHandler) UpdateUnit(c echo.Context) error {
	var req propertyuc.UpdateUnitInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	unit, err := h.uc.UpdateUnit(c.Request().Context(), c.Param("unit_id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, unit)
}

func (h *PropertyHandler) DeleteUnit(c echo.Context) error {
	if err := h.uc.DeleteUnit(c.Request().Context(), c.Param("unit_id")); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
