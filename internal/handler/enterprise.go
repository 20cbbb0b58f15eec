package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/juanfer112/reservaPlaza-back-end/internal/model"
	"github.com/juanfer112/reservaPlaza-back-end/internal/repository"
)

// EnterpriseHandler exposes account administration. Listing and
// deleting accounts is admin-only; an enterprise may read and edit its
// own profile. The hours balance is not editable through this surface:
// only the booking path moves it.
type EnterpriseHandler struct {
	Enterprises *repository.EnterpriseRepo
}

func NewEnterpriseHandler(e *repository.EnterpriseRepo) *EnterpriseHandler {
	return &EnterpriseHandler{Enterprises: e}
}

type enterpriseView struct {
	ID           uint64 `json:"id"`
	Name         string `json:"name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	CIF          string `json:"cif"`
	Phone        string `json:"phone"`
	TotHours     int    `json:"tot_hours"`
	CurrentHours int    `json:"current_hours"`
}

func toEnterpriseView(e model.Enterprise) enterpriseView {
	return enterpriseView{
		ID: e.ID, Name: e.Name, LastName: e.LastName, Email: e.Email,
		CIF: e.CIF, Phone: e.Phone, TotHours: e.TotHours, CurrentHours: e.CurrentHours,
	}
}

// List handles GET /v1/enterprises (admin).
func (h *EnterpriseHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	ents, err := h.Enterprises.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	items := make([]enterpriseView, 0, len(ents))
	for _, e := range ents {
		items = append(items, toEnterpriseView(e))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// Get handles GET /v1/enterprises/:id. Non-admins may only read their
// own account.
func (h *EnterpriseHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	entID, err := currentEnterpriseID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	if id != entID && !isAdmin(c) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	ent, err := h.Enterprises.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "enterprise not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, toEnterpriseView(ent))
}

// Update handles PATCH /v1/enterprises/:id and edits profile fields.
// Email, password and the hours columns are deliberately not editable
// here.
func (h *EnterpriseHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	entID, err := currentEnterpriseID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	if id != entID && !isAdmin(c) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}

	var body struct {
		Name     string `json:"name"`
		LastName string `json:"last_name"`
		CIF      string `json:"cif"`
		Phone    string `json:"phone"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	name := strings.TrimSpace(body.Name)
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Enterprises.UpdateProfile(ctx, id, name, strings.TrimSpace(body.LastName), strings.TrimSpace(body.CIF), strings.TrimSpace(body.Phone)); err != nil {
		switch err {
		case repository.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "enterprise not found"})
		case repository.ErrPhoneExists:
			return c.JSON(http.StatusConflict, echo.Map{"error": "phone already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	updated, err := h.Enterprises.GetByID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, toEnterpriseView(updated))
}

// Delete handles DELETE /v1/enterprises/:id (admin). Brands, schedules
// and refresh tokens cascade with the account.
func (h *EnterpriseHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Enterprises.Delete(ctx, id); err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "enterprise not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
