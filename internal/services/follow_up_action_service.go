package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AloysioLvy/ReportTracker/backend/internal/models"
	"gorm.io/gorm"
)

// ErrReportNotFound is returned when a follow-up action is created for a
// report id that does not exist. Unlike the other lookups, which return
// nil or false, this is a hard error.
var ErrReportNotFound = errors.New("report not found")

// FollowUpActionService defines business operations related to the
// remediation actions attached to a report.
type FollowUpActionService interface {
	CreateFollowUpAction(ctx context.Context, in *models.CreateFollowUpActionInput) (*models.FollowUpAction, error)
	GetFollowUpActions(ctx context.Context) ([]models.FollowUpAction, error)
	GetFollowUpActionsByReportID(ctx context.Context, reportID uint) ([]models.FollowUpAction, error)
	GetPendingFollowUpActions(ctx context.Context) ([]models.FollowUpAction, error)
	UpdateFollowUpAction(ctx context.Context, in *models.UpdateFollowUpActionInput) (*models.FollowUpAction, error)
	DeleteFollowUpAction(ctx context.Context, id uint) (bool, error)
}

type followUpActionService struct {
	db *gorm.DB
}

// NewFollowUpActionService creates a new instance of FollowUpActionService
func NewFollowUpActionService(db *gorm.DB) FollowUpActionService {
	return &followUpActionService{db: db}
}

// CreateFollowUpAction checks that the report exists and inserts the
// action as not_started with no completion date, in one transaction.
func (s *followUpActionService) CreateFollowUpAction(ctx context.Context, in *models.CreateFollowUpActionInput) (*models.FollowUpAction, error) {
	now := s.db.NowFunc()
	a := &models.FollowUpAction{
		ReportID:          in.ReportID,
		ActionDescription: in.ActionDescription,
		AssignedTo:        in.AssignedTo,
		Status:            models.FollowUpStatusNotStarted,
		DueDate:           utc(in.DueDate),
		CompletionDate:    nil,
		Notes:             in.Notes,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Report{}).Where("id = ?", in.ReportID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return fmt.Errorf("report with ID %d: %w", in.ReportID, ErrReportNotFound)
		}
		return tx.Create(a).Error
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}

// GetFollowUpActions returns every follow-up action ordered by id.
func (s *followUpActionService) GetFollowUpActions(ctx context.Context) ([]models.FollowUpAction, error) {
	actions := []models.FollowUpAction{}
	if err := s.db.WithContext(ctx).Order("id").Find(&actions).Error; err != nil {
		return nil, err
	}
	return actions, nil
}

// GetFollowUpActionsByReportID returns the report's actions oldest first.
// An unknown report yields an empty list.
func (s *followUpActionService) GetFollowUpActionsByReportID(ctx context.Context, reportID uint) ([]models.FollowUpAction, error) {
	actions := []models.FollowUpAction{}
	err := s.db.WithContext(ctx).
		Where("report_id = ?", reportID).
		Order("created_at, id").
		Find(&actions).Error
	if err != nil {
		return nil, err
	}
	return actions, nil
}

// GetPendingFollowUpActions returns the actions that are not completed,
// earliest due date first and undated actions last.
func (s *followUpActionService) GetPendingFollowUpActions(ctx context.Context) ([]models.FollowUpAction, error) {
	pending := []string{
		string(models.FollowUpStatusNotStarted),
		string(models.FollowUpStatusInProgress),
	}

	actions := []models.FollowUpAction{}
	err := s.db.WithContext(ctx).
		Where("status IN ?", pending).
		Order("CASE WHEN due_date IS NULL THEN 1 ELSE 0 END, due_date, id").
		Find(&actions).Error
	if err != nil {
		return nil, err
	}
	return actions, nil
}

func (s *followUpActionService) UpdateFollowUpAction(ctx context.Context, in *models.UpdateFollowUpActionInput) (*models.FollowUpAction, error) {
	now := s.db.NowFunc()

	updates := map[string]interface{}{
		"updated_at": now,
	}
	if in.ActionDescription.Set {
		updates["action_description"] = in.ActionDescription.Value
	}
	if in.AssignedTo.Set {
		updates["assigned_to"] = in.AssignedTo.Ptr()
	}
	if in.Status.Set {
		updates["status"] = string(in.Status.Value)
	}
	if in.DueDate.Set {
		updates["due_date"] = utc(in.DueDate.Ptr())
	}
	if in.CompletionDate.Set {
		updates["completion_date"] = utc(in.CompletionDate.Ptr())
	}
	if in.Notes.Set {
		updates["notes"] = in.Notes.Ptr()
	}

	stampCompletion(updates, in, now)

	var updated *models.FollowUpAction
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.FollowUpAction{}).Where("id = ?", in.ID).Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}

		var a models.FollowUpAction
		if err := tx.First(&a, in.ID).Error; err != nil {
			return err
		}
		updated = &a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// stampCompletion sets completion_date to now whenever the update marks
// the action completed, replacing any completion date sent with it.
// Moving away from completed leaves completion_date as it is.
func stampCompletion(updates map[string]interface{}, in *models.UpdateFollowUpActionInput, now time.Time) {
	if in.Status.Set && in.Status.Valid && in.Status.Value == models.FollowUpStatusCompleted {
		updates["completion_date"] = now
	}
}

// utc normalizes caller-supplied dates so they sort correctly in stores
// that keep timestamps as text.
func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

func (s *followUpActionService) DeleteFollowUpAction(ctx context.Context, id uint) (bool, error) {
	res := s.db.WithContext(ctx).Delete(&models.FollowUpAction{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
