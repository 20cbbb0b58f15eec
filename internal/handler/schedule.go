package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/juanfer112/reservaPlaza-back-end/internal/booking"
	"github.com/juanfer112/reservaPlaza-back-end/internal/repository"
	queue_publisher "github.com/juanfer112/reservaPlaza-back-end/internal/service"

	q "github.com/juanfer112/reservaPlaza-back-end/internal/queue"
)

// ScheduleHandler exposes the booking surface: the three-week
// availability window, atomic batch creation and slot edits.
type ScheduleHandler struct {
	Coordinator *booking.Coordinator
	Schedules   *repository.ScheduleRepo
}

func NewScheduleHandler(co *booking.Coordinator, repo *repository.ScheduleRepo) *ScheduleHandler {
	return &ScheduleHandler{Coordinator: co, Schedules: repo}
}

type bookReq struct {
	EnterpriseID uint64         `json:"enterprise_id,omitempty"` // admin only; defaults to caller
	Schedules    []booking.Item `json:"schedules"`
}

// bookingStatus maps a coordinator rejection to its HTTP status code.
// Unknown errors fall through to 500.
func bookingStatus(err error) int {
	switch {
	case errors.Is(err, booking.ErrMalformedDate),
		errors.Is(err, booking.ErrEmptyBatch),
		errors.Is(err, booking.ErrMixedEnterprises):
		return http.StatusBadRequest
	case errors.Is(err, booking.ErrEnterpriseNotFound),
		errors.Is(err, booking.ErrScheduleNotFound):
		return http.StatusNotFound
	case errors.Is(err, booking.ErrSlotTaken):
		return http.StatusConflict
	case errors.Is(err, booking.ErrPastDate):
		return http.StatusUnprocessableEntity
	case errors.Is(err, booking.ErrInsufficientHours):
		return http.StatusFailedDependency
	}
	return http.StatusInternalServerError
}

// Window returns every schedule inside the three-week window anchored
// on the ?date= query parameter: the full week before the anchor's week
// plus the two weeks after it. Clients render this as the availability
// calendar.
func (h *ScheduleHandler) Window(c echo.Context) error {
	anchor := c.QueryParam("date")
	if anchor == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date query parameter required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	views, err := h.Coordinator.Window(ctx, anchor)
	if err != nil {
		if errors.Is(err, booking.ErrMalformedDate) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "malformed date"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"schedules": views})
}

// Book commits a booking batch atomically. Every slot must be free,
// strictly in the future and covered by the enterprise's hours balance;
// otherwise the whole batch is rejected and nothing is persisted. On
// success the hours balance is debited by the batch size and a
// ScheduleBookedEvent is published best-effort.
func (h *ScheduleHandler) Book(c echo.Context) error {
	entID, err := currentEnterpriseID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	var req bookReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	// Admins may book on behalf of another enterprise.
	if req.EnterpriseID != 0 && req.EnterpriseID != entID {
		if !isAdmin(c) {
			return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
		}
		entID = req.EnterpriseID
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	views, err := h.Coordinator.Book(ctx, booking.Request{EnterpriseID: entID, Items: req.Schedules})
	if err != nil {
		status := bookingStatus(err)
		if status == http.StatusInternalServerError {
			return c.JSON(status, echo.Map{"error": "booking failed"})
		}
		return c.JSON(status, echo.Map{"error": err.Error()})
	}

	go publishBatch(entID, views)

	return c.JSON(http.StatusCreated, echo.Map{"schedules": views})
}

// Mine lists every schedule held by the authenticated enterprise,
// oldest first.
func (h *ScheduleHandler) Mine(c echo.Context) error {
	entID, err := currentEnterpriseID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	views, err := h.Schedules.ListByEnterprise(ctx, entID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"schedules": views})
}

type patchReq struct {
	Date    *string `json:"date"`
	SpaceID *uint64 `json:"space_id"`
}

// Update edits the slot of one schedule. Only date and space may
// change; the new slot is conflict-checked against every other row.
func (h *ScheduleHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req patchReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Date == nil && req.SpaceID == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "nothing to update"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	view, err := h.Coordinator.Update(ctx, id, booking.Patch{Date: req.Date, SpaceID: req.SpaceID})
	if err != nil {
		status := bookingStatus(err)
		if status == http.StatusInternalServerError {
			return c.JSON(status, echo.Map{"error": "update failed"})
		}
		return c.JSON(status, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, view)
}

// publishBatch emits the booked event after the transaction has
// committed. The request does not wait on the broker; failures are
// logged by the publisher and otherwise ignored.
func publishBatch(enterpriseID uint64, views []booking.View) {
	if len(views) == 0 {
		return
	}
	ev := q.ScheduleBookedEvent{
		BatchID:      uuid.NewString(),
		EnterpriseID: enterpriseID,
		HoursDebited: len(views),
		BookedAt:     booking.Now().Format(booking.DateLayout),
	}
	for _, v := range views {
		ev.EnterpriseName = v.EnterpriseName
		ev.ScheduleIDs = append(ev.ScheduleIDs, v.ID)
		ev.Slots = append(ev.Slots, q.Slot{SpaceID: v.SpaceID, SpaceName: v.SpaceName, Date: v.Date})
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = queue_publisher.PublishScheduleBooked(ctx, ev)
}
