package services

import (
	"context"
	"errors"

	"github.com/AloysioLvy/ReportTracker/backend/internal/models"
	"gorm.io/gorm"
)

// ReportService defines business operations
// related to oversight, audit and review reports.
type ReportService interface {
	// CreateReport inserts a new pending report and returns it with its
	// generated id and timestamps.
	CreateReport(ctx context.Context, in *models.CreateReportInput) (*models.Report, error)
	// GetReports lists reports matching every non-empty filter field.
	// A nil filter returns all reports.
	GetReports(ctx context.Context, filter *models.GetReportsInput) ([]models.Report, error)
	// GetReportByID returns the report and its follow-up actions, or nil
	// when no report has that id.
	GetReportByID(ctx context.Context, id uint) (*models.ReportWithFollowUps, error)
	// UpdateReport writes only the fields present in the input and returns
	// nil when no report has that id.
	UpdateReport(ctx context.Context, in *models.UpdateReportInput) (*models.Report, error)
	// DeleteReport removes the report; the store cascades to its follow-up
	// actions. It reports whether a row was removed.
	DeleteReport(ctx context.Context, id uint) (bool, error)
}

// reportService is the concrete implementation of ReportService.
// It has the GORM instance to persist data in the database.
type reportService struct {
	db *gorm.DB
}

// NewReportService injects the *gorm.DB dependency and returns
// a ReportService instance ready for use.
func NewReportService(db *gorm.DB) ReportService {
	return &reportService{db: db}
}

func (s *reportService) CreateReport(ctx context.Context, in *models.CreateReportInput) (*models.Report, error) {
	now := s.db.NowFunc()
	r := &models.Report{
		Title:       in.Title,
		Description: in.Description,
		ReportType:  in.ReportType,
		Status:      models.ReportStatusPending,
		FileURL:     in.FileURL,
		FileName:    in.FileName,
		UploadedBy:  in.UploadedBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.db.WithContext(ctx).Create(r).Error; err != nil {
		return nil, err
	}
	return r, nil
}

func (s *reportService) GetReports(ctx context.Context, filter *models.GetReportsInput) ([]models.Report, error) {
	q := s.db.WithContext(ctx).Model(&models.Report{})
	if filter != nil {
		if filter.ReportType != "" {
			q = q.Where("report_type = ?", string(filter.ReportType))
		}
		if filter.Status != "" {
			q = q.Where("status = ?", string(filter.Status))
		}
		if filter.UploadedBy != "" {
			q = q.Where("uploaded_by = ?", filter.UploadedBy)
		}
	}

	reports := []models.Report{}
	if err := q.Order("id").Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (s *reportService) GetReportByID(ctx context.Context, id uint) (*models.ReportWithFollowUps, error) {
	var r models.Report
	err := s.db.WithContext(ctx).
		Preload("FollowUpActions", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at, id")
		}).
		First(&r, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	actions := r.FollowUpActions
	if actions == nil {
		actions = []models.FollowUpAction{}
	}
	r.FollowUpActions = nil

	return &models.ReportWithFollowUps{Report: r, FollowUpActions: actions}, nil
}

func (s *reportService) UpdateReport(ctx context.Context, in *models.UpdateReportInput) (*models.Report, error) {
	updates := map[string]interface{}{
		"updated_at": s.db.NowFunc(),
	}
	if in.Title.Set {
		updates["title"] = in.Title.Value
	}
	if in.Description.Set {
		updates["description"] = in.Description.Ptr()
	}
	if in.ReportType.Set {
		updates["report_type"] = string(in.ReportType.Value)
	}
	if in.Status.Set {
		updates["status"] = string(in.Status.Value)
	}
	if in.FileURL.Set {
		updates["file_url"] = in.FileURL.Ptr()
	}
	if in.FileName.Set {
		updates["file_name"] = in.FileName.Ptr()
	}

	var updated *models.Report
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Report{}).Where("id = ?", in.ID).Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}

		var r models.Report
		if err := tx.First(&r, in.ID).Error; err != nil {
			return err
		}
		updated = &r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *reportService) DeleteReport(ctx context.Context, id uint) (bool, error) {
	res := s.db.WithContext(ctx).Delete(&models.Report{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
