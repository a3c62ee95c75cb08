package repos

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/trabajitos-sv/trabajitos-api/internal/db/models"
)

// TrabajitoRepository provides access to trabajito database operations.
//
// Every participant-facing lookup folds the expected ownership relation into
// the query predicate: a record that exists but belongs to someone else is
// reported exactly like a record that does not exist.
type TrabajitoRepository struct {
	db *gorm.DB
}

// NewTrabajitoRepository creates a new trabajito repository instance
func NewTrabajitoRepository(db *gorm.DB) *TrabajitoRepository {
	return &TrabajitoRepository{db: db}
}

// Create persists a new trabajito after checking its creation invariants.
func (r *TrabajitoRepository) Create(ctx context.Context, t *models.Trabajito) error {
	if err := t.Validate(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(t).Error
}

// GetBySolicitor retrieves a trabajito by id, scoped to its solicitor.
func (r *TrabajitoRepository) GetBySolicitor(ctx context.Context, solicitorID, id uint) (*models.Trabajito, error) {
	return r.getScoped(ctx, &models.Trabajito{Model: gorm.Model{ID: id}, SolicitorID: solicitorID})
}

// GetByHired retrieves a trabajito by id, scoped to its hired worker.
func (r *TrabajitoRepository) GetByHired(ctx context.Context, hiredID, id uint) (*models.Trabajito, error) {
	return r.getScoped(ctx, &models.Trabajito{Model: gorm.Model{ID: id}, HiredID: hiredID})
}

func (r *TrabajitoRepository) getScoped(ctx context.Context, qry *models.Trabajito) (*models.Trabajito, error) {
	var t models.Trabajito
	err := r.db.WithContext(ctx).
		Preload("BillLines", func(db *gorm.DB) *gorm.DB {
			return db.Order("bill_lines.id")
		}).
		Where(qry).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrTrabajitoNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get trabajito: %w", err)
	}
	return &t, nil
}

// List returns a page of all trabajitos. Hidden records are excluded unless
// the options ask for them; this listing is an admin surface.
func (r *TrabajitoRepository) List(ctx context.Context, opts *models.ListOptions) (*models.Page[models.Trabajito], error) {
	opts.Normalize()
	db := r.db.WithContext(ctx).Model(&models.Trabajito{})
	if !opts.IncludeHidden {
		db = db.Where("hidden = ?", false)
	}
	return r.page(db, opts)
}

// ListBySolicitor returns a page of the solicitor's requests, excluding
// hidden records. A hidden record stays reachable through GetBySolicitor.
func (r *TrabajitoRepository) ListBySolicitor(ctx context.Context, solicitorID uint, opts *models.ListOptions) (*models.Page[models.Trabajito], error) {
	opts.Normalize()
	db := r.db.WithContext(ctx).Model(&models.Trabajito{}).
		Where(&models.Trabajito{SolicitorID: solicitorID}).
		Where("hidden = ?", false)
	return r.page(db, opts)
}

// ListByHired returns a page of the worker's assigned jobs. Hidden records
// are NOT excluded: hiding is the solicitor's history pruning and must not
// erase the record from the worker's view.
func (r *TrabajitoRepository) ListByHired(ctx context.Context, hiredID uint, opts *models.ListOptions) (*models.Page[models.Trabajito], error) {
	opts.Normalize()
	db := r.db.WithContext(ctx).Model(&models.Trabajito{}).
		Where(&models.Trabajito{HiredID: hiredID})
	return r.page(db, opts)
}

func (r *TrabajitoRepository) page(db *gorm.DB, opts *models.ListOptions) (*models.Page[models.Trabajito], error) {
	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count trabajitos: %w", err)
	}

	var items []models.Trabajito
	err := db.Limit(opts.PageSize).Offset(opts.Offset()).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list trabajitos: %w", err)
	}
	return models.NewPage(items, opts, total), nil
}

// Start applies the worker's start patch to an open trabajito. Only fields
// present in the patch are written. The confirmed_at guard on the write makes
// the read-modify-write safe against a concurrent confirmation.
func (r *TrabajitoRepository) Start(ctx context.Context, hiredID, id uint, patch *models.TrabajitoStartPatch) (*models.Trabajito, error) {
	t, err := r.GetByHired(ctx, hiredID, id)
	if err != nil {
		return nil, err
	}
	if t.ConfirmedAt != nil {
		return nil, models.ErrAlreadyConfirmed
	}

	updates := map[string]interface{}{}
	if patch.DateFinish != nil {
		if patch.DateFinish.Before(t.DateInit) {
			return nil, models.ErrDateFinishBeforeInit
		}
		updates["date_finish"] = *patch.DateFinish
	}
	if patch.StatusID != nil {
		updates["status_id"] = *patch.StatusID
	}
	if len(updates) == 0 {
		return t, nil
	}

	res := r.db.WithContext(ctx).Model(&models.Trabajito{}).
		Where("id = ? AND hired_id = ? AND confirmed_at IS NULL", id, hiredID).
		Updates(updates)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to start trabajito: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		// The record was confirmed or removed between read and write.
		return nil, models.ErrAlreadyConfirmed
	}
	return r.GetByHired(ctx, hiredID, id)
}

// Finish stores the worker's end number, moving the record into the
// awaiting-confirmation state.
func (r *TrabajitoRepository) Finish(ctx context.Context, hiredID, id uint, endNumber string) (*models.Trabajito, error) {
	t, err := r.GetByHired(ctx, hiredID, id)
	if err != nil {
		return nil, err
	}
	if t.ConfirmedAt != nil {
		return nil, models.ErrAlreadyConfirmed
	}

	res := r.db.WithContext(ctx).Model(&models.Trabajito{}).
		Where("id = ? AND hired_id = ? AND confirmed_at IS NULL", id, hiredID).
		Update("end_number", endNumber)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to finish trabajito: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, models.ErrAlreadyConfirmed
	}
	return r.GetByHired(ctx, hiredID, id)
}

// Confirm closes the handshake: the solicitor's end number must match the
// pending one exactly. On mismatch the record is left untouched. The matching
// end number is part of the write predicate, so two racing confirmations
// cannot both succeed.
func (r *TrabajitoRepository) Confirm(ctx context.Context, solicitorID, id uint, endNumber string, statusID uint) (*models.Trabajito, error) {
	t, err := r.GetBySolicitor(ctx, solicitorID, id)
	if err != nil {
		return nil, err
	}
	switch {
	case t.ConfirmedAt != nil:
		return nil, models.ErrAlreadyConfirmed
	case t.EndNumber == "":
		return nil, models.ErrNotAwaitingConfirmation
	case t.EndNumber != endNumber:
		return nil, models.ErrEndNumberMismatch
	}

	res := r.db.WithContext(ctx).Model(&models.Trabajito{}).
		Where("id = ? AND solicitor_id = ? AND end_number = ? AND confirmed_at IS NULL",
			id, solicitorID, endNumber).
		Updates(map[string]interface{}{
			"status_id":    statusID,
			"end_number":   "",
			"confirmed_at": time.Now(),
		})
	if res.Error != nil {
		return nil, fmt.Errorf("failed to confirm trabajito: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, models.ErrEndNumberMismatch
	}
	return r.GetBySolicitor(ctx, solicitorID, id)
}

// ToggleHidden flips the solicitor's soft-delete flag in a single statement.
// This is the only deletion mechanism; records are never removed.
func (r *TrabajitoRepository) ToggleHidden(ctx context.Context, solicitorID, id uint) (*models.Trabajito, error) {
	res := r.db.WithContext(ctx).Model(&models.Trabajito{}).
		Where("id = ? AND solicitor_id = ?", id, solicitorID).
		Update("hidden", gorm.Expr("NOT hidden"))
	if res.Error != nil {
		return nil, fmt.Errorf("failed to toggle trabajito visibility: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, models.ErrTrabajitoNotFound
	}
	return r.GetBySolicitor(ctx, solicitorID, id)
}

// AppendBillLine adds one {item, cost} entry to an open trabajito's bill.
func (r *TrabajitoRepository) AppendBillLine(ctx context.Context, hiredID, id uint, item string, cost float64) (*models.Trabajito, error) {
	t, err := r.GetByHired(ctx, hiredID, id)
	if err != nil {
		return nil, err
	}
	if t.ConfirmedAt != nil {
		return nil, models.ErrAlreadyConfirmed
	}

	line := models.BillLine{TrabajitoID: t.ID, Item: item, Cost: cost}
	if err := r.db.WithContext(ctx).Create(&line).Error; err != nil {
		return nil, fmt.Errorf("failed to append bill line: %w", err)
	}
	return r.GetByHired(ctx, hiredID, id)
}
