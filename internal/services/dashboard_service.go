package services

import (
	"context"

	"github.com/AloysioLvy/ReportTracker/backend/internal/dashboard"
	"github.com/AloysioLvy/ReportTracker/backend/internal/models"
	"gorm.io/gorm"
)

// DashboardService computes the dashboard figures from the full report and
// follow-up action lists.
type DashboardService interface {
	GetDashboardStats(ctx context.Context) (*dashboard.Stats, error)
}

type dashboardService struct {
	db *gorm.DB
}

// NewDashboardService creates a new instance of DashboardService
func NewDashboardService(db *gorm.DB) DashboardService {
	return &dashboardService{db: db}
}

func (s *dashboardService) GetDashboardStats(ctx context.Context) (*dashboard.Stats, error) {
	var reports []models.Report
	if err := s.db.WithContext(ctx).Find(&reports).Error; err != nil {
		return nil, err
	}

	var actions []models.FollowUpAction
	if err := s.db.WithContext(ctx).Find(&actions).Error; err != nil {
		return nil, err
	}

	stats := dashboard.Compute(reports, actions, s.db.NowFunc())
	return &stats, nil
}
