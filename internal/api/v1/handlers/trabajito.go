package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/trabajitos-sv/trabajitos-api/internal/api/v1/middleware"
	"github.com/trabajitos-sv/trabajitos-api/internal/db/models"
	"github.com/trabajitos-sv/trabajitos-api/internal/services"
)

// TrabajitoHandler handles HTTP requests for the job lifecycle
type TrabajitoHandler struct {
	service *services.Trabajito
}

// NewTrabajitoHandler creates a new trabajito handler instance
func NewTrabajitoHandler(s *services.Trabajito) *TrabajitoHandler {
	return &TrabajitoHandler{service: s}
}

// CreateTrabajitoParams is the body of the create request
type CreateTrabajitoParams struct {
	Description string    `json:"description" validate:"required,max=280"`
	DateInit    time.Time `json:"dateInit" validate:"required"`
	StatusID    uint      `json:"status" validate:"required"`
	HiredID     uint      `json:"id_hired" validate:"required"`
}

// StartTrabajitoParams is the body of the start request. DateFinish and
// StatusID are optional patch fields: absent means untouched.
type StartTrabajitoParams struct {
	ID         uint       `json:"id" validate:"required"`
	DateFinish *time.Time `json:"dateFinish,omitempty"`
	StatusID   *uint      `json:"status,omitempty"`
}

// FinishTrabajitoParams is the body of the finish request
type FinishTrabajitoParams struct {
	ID        uint   `json:"id" validate:"required"`
	EndNumber string `json:"endNumber" validate:"required"`
}

// ConfirmTrabajitoParams is the body of the finalization request
type ConfirmTrabajitoParams struct {
	ID        uint   `json:"id" validate:"required"`
	EndNumber string `json:"endNumber" validate:"required"`
	StatusID  uint   `json:"status" validate:"required"`
}

// BillLineParams is the body of the bill append request
type BillLineParams struct {
	Item string  `json:"item" validate:"required"`
	Cost float64 `json:"cost" validate:"gte=0"`
}

// Create handles the solicitor's request to create a trabajito
func (h *TrabajitoHandler) Create(c *fiber.Ctx) error {
	params, err := parseBody[CreateTrabajitoParams](c)
	if err != nil {
		return errInvalidInput(c, err.Error())
	}

	actor := middleware.CurrentUser(c)
	t, err := h.service.Create(c.Context(), actor.ID, &services.CreateTrabajitoParams{
		Description: params.Description,
		DateInit:    params.DateInit,
		StatusID:    params.StatusID,
		HiredID:     params.HiredID,
	})
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, t)
}

// Start handles the hired worker's request to start a trabajito
func (h *TrabajitoHandler) Start(c *fiber.Ctx) error {
	params, err := parseBody[StartTrabajitoParams](c)
	if err != nil {
		return errInvalidInput(c, err.Error())
	}

	actor := middleware.CurrentUser(c)
	t, err := h.service.Start(c.Context(), actor.ID, params.ID, &models.TrabajitoStartPatch{
		DateFinish: params.DateFinish,
		StatusID:   params.StatusID,
	})
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, t)
}

// Finish handles the hired worker's request to register the end number
func (h *TrabajitoHandler) Finish(c *fiber.Ctx) error {
	params, err := parseBody[FinishTrabajitoParams](c)
	if err != nil {
		return errInvalidInput(c, err.Error())
	}

	actor := middleware.CurrentUser(c)
	t, err := h.service.Finish(c.Context(), actor.ID, params.ID, params.EndNumber)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, t)
}

// Confirm handles the solicitor's request to close out a trabajito
func (h *TrabajitoHandler) Confirm(c *fiber.Ctx) error {
	params, err := parseBody[ConfirmTrabajitoParams](c)
	if err != nil {
		return errInvalidInput(c, err.Error())
	}

	actor := middleware.CurrentUser(c)
	t, err := h.service.Confirm(c.Context(), actor.ID, params.ID, params.EndNumber, params.StatusID)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, t)
}

// ToggleHidden handles the solicitor's soft-delete request
func (h *TrabajitoHandler) ToggleHidden(c *fiber.Ctx) error {
	id, err := c.ParamsInt("identifier")
	if err != nil || id < 1 {
		return errInvalidInput(c, "invalid trabajito id")
	}

	actor := middleware.CurrentUser(c)
	t, err := h.service.ToggleHidden(c.Context(), actor.ID, uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, t)
}

// AppendBillLine handles the hired worker's request to add a bill entry
func (h *TrabajitoHandler) AppendBillLine(c *fiber.Ctx) error {
	id, err := c.ParamsInt("identifier")
	if err != nil || id < 1 {
		return errInvalidInput(c, "invalid trabajito id")
	}
	params, err := parseBody[BillLineParams](c)
	if err != nil {
		return errInvalidInput(c, err.Error())
	}

	actor := middleware.CurrentUser(c)
	t, err := h.service.AppendBillLine(c.Context(), actor.ID, uint(id), params.Item, params.Cost)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, t)
}

// List handles the admin listing of all trabajitos
func (h *TrabajitoHandler) List(c *fiber.Ctx) error {
	opts := paginationOptions(c)
	opts.IncludeHidden = c.QueryBool("include_hidden", false)

	page, err := h.service.List(c.Context(), opts)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, page)
}

// ListRequests handles the solicitor's listing of their own requests
func (h *TrabajitoHandler) ListRequests(c *fiber.Ctx) error {
	actor := middleware.CurrentUser(c)
	page, err := h.service.ListRequests(c.Context(), actor.ID, paginationOptions(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, page)
}

// GetRequest handles the solicitor's fetch of one of their requests
func (h *TrabajitoHandler) GetRequest(c *fiber.Ctx) error {
	id, err := c.ParamsInt("identifier")
	if err != nil || id < 1 {
		return errInvalidInput(c, "invalid trabajito id")
	}

	actor := middleware.CurrentUser(c)
	t, err := h.service.GetRequest(c.Context(), actor.ID, uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, t)
}

// ListJobs handles the hired worker's listing of their assigned jobs
func (h *TrabajitoHandler) ListJobs(c *fiber.Ctx) error {
	actor := middleware.CurrentUser(c)
	page, err := h.service.ListJobs(c.Context(), actor.ID, paginationOptions(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, page)
}

// GetJob handles the hired worker's fetch of one of their assigned jobs
func (h *TrabajitoHandler) GetJob(c *fiber.Ctx) error {
	id, err := c.ParamsInt("identifier")
	if err != nil || id < 1 {
		return errInvalidInput(c, "invalid trabajito id")
	}

	actor := middleware.CurrentUser(c)
	t, err := h.service.GetJob(c.Context(), actor.ID, uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, t)
}
