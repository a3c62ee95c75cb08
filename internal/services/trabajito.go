package services

import (
	"context"
	"time"

	"github.com/trabajitos-sv/trabajitos-api/internal/db/models"
	"github.com/trabajitos-sv/trabajitos-api/internal/db/repos"
)

// CreateTrabajitoParams carries the solicitor's creation request.
type CreateTrabajitoParams struct {
	Description string    `json:"description"`
	DateInit    time.Time `json:"date_init"`
	StatusID    uint      `json:"status"`
	HiredID     uint      `json:"id_hired"`
}

// Trabajito provides the business logic for the job lifecycle
type Trabajito struct {
	trabajitoRepo *repos.TrabajitoRepository
	userRepo      *repos.UserRepository
	statusRepo    *repos.StatusRepository
}

// NewTrabajitoService creates a new trabajito service instance
func NewTrabajitoService(trabajitoRepo *repos.TrabajitoRepository, userRepo *repos.UserRepository, statusRepo *repos.StatusRepository) *Trabajito {
	return &Trabajito{
		trabajitoRepo: trabajitoRepo,
		userRepo:      userRepo,
		statusRepo:    statusRepo,
	}
}

// Create creates a new trabajito requested by the solicitor. The hired user
// and the status must both resolve.
func (s *Trabajito) Create(ctx context.Context, solicitorID uint, params *CreateTrabajitoParams) (*models.Trabajito, error) {
	if _, err := s.userRepo.GetByID(ctx, params.HiredID); err != nil {
		return nil, err
	}
	if _, err := s.statusRepo.GetByID(ctx, params.StatusID); err != nil {
		return nil, err
	}

	t := &models.Trabajito{
		Description: params.Description,
		DateInit:    params.DateInit,
		StatusID:    params.StatusID,
		SolicitorID: solicitorID,
		HiredID:     params.HiredID,
	}
	if err := s.trabajitoRepo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Start lets the hired worker start the job and set its projected finish date.
func (s *Trabajito) Start(ctx context.Context, hiredID, id uint, patch *models.TrabajitoStartPatch) (*models.Trabajito, error) {
	return s.trabajitoRepo.Start(ctx, hiredID, id, patch)
}

// Finish lets the hired worker register the confirmation number.
func (s *Trabajito) Finish(ctx context.Context, hiredID, id uint, endNumber string) (*models.Trabajito, error) {
	return s.trabajitoRepo.Finish(ctx, hiredID, id, endNumber)
}

// Confirm lets the solicitor close out the job with the worker's number.
func (s *Trabajito) Confirm(ctx context.Context, solicitorID, id uint, endNumber string, statusID uint) (*models.Trabajito, error) {
	if _, err := s.statusRepo.GetByID(ctx, statusID); err != nil {
		return nil, err
	}
	return s.trabajitoRepo.Confirm(ctx, solicitorID, id, endNumber, statusID)
}

// ToggleHidden flips the solicitor's soft-delete flag.
func (s *Trabajito) ToggleHidden(ctx context.Context, solicitorID, id uint) (*models.Trabajito, error) {
	return s.trabajitoRepo.ToggleHidden(ctx, solicitorID, id)
}

// AppendBillLine adds a bill entry while the job is open.
func (s *Trabajito) AppendBillLine(ctx context.Context, hiredID, id uint, item string, cost float64) (*models.Trabajito, error) {
	return s.trabajitoRepo.AppendBillLine(ctx, hiredID, id, item, cost)
}

// List returns a page of all trabajitos (admin surface).
func (s *Trabajito) List(ctx context.Context, opts *models.ListOptions) (*models.Page[models.Trabajito], error) {
	return s.trabajitoRepo.List(ctx, opts)
}

// ListRequests returns the solicitor's non-hidden requests.
func (s *Trabajito) ListRequests(ctx context.Context, solicitorID uint, opts *models.ListOptions) (*models.Page[models.Trabajito], error) {
	return s.trabajitoRepo.ListBySolicitor(ctx, solicitorID, opts)
}

// ListJobs returns the worker's assigned jobs.
func (s *Trabajito) ListJobs(ctx context.Context, hiredID uint, opts *models.ListOptions) (*models.Page[models.Trabajito], error) {
	return s.trabajitoRepo.ListByHired(ctx, hiredID, opts)
}

// GetRequest returns one of the solicitor's requests, hidden or not.
func (s *Trabajito) GetRequest(ctx context.Context, solicitorID, id uint) (*models.Trabajito, error) {
	return s.trabajitoRepo.GetBySolicitor(ctx, solicitorID, id)
}

// GetJob returns one of the worker's assigned jobs.
func (s *Trabajito) GetJob(ctx context.Context, hiredID, id uint) (*models.Trabajito, error) {
	return s.trabajitoRepo.GetByHired(ctx, hiredID, id)
}
