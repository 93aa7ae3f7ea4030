package models

import "time"

// ReportType classifies the kind of oversight activity a report documents.
type ReportType string

const (
	ReportTypeOversight ReportType = "oversight"
	ReportTypeAudit     ReportType = "audit"
	ReportTypeReview    ReportType = "review"
)

// ReportStatus is the lifecycle status of a report. Any transition is allowed.
type ReportStatus string

const (
	ReportStatusPending    ReportStatus = "pending"
	ReportStatusInProgress ReportStatus = "in_progress"
	ReportStatusCompleted  ReportStatus = "completed"
)

// ReportTypes lists every accepted report type, in display order.
var ReportTypes = []ReportType{ReportTypeOversight, ReportTypeAudit, ReportTypeReview}

// ReportStatuses lists every accepted report status, in display order.
var ReportStatuses = []ReportStatus{ReportStatusPending, ReportStatusInProgress, ReportStatusCompleted}

// Valid reports whether t is one of the known report types.
func (t ReportType) Valid() bool {
	for _, v := range ReportTypes {
		if v == t {
			return true
		}
	}
	return false
}

// Valid reports whether s is one of the known report statuses.
func (s ReportStatus) Valid() bool {
	for _, v := range ReportStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Report represents an oversight, audit or review document being tracked.
// FollowUpActions is only declared so the store creates the cascading
// foreign key; it is never serialized as part of a plain Report.
type Report struct {
	ID              uint             `json:"id" gorm:"primaryKey"`
	Title           string           `json:"title" gorm:"not null"`
	Description     *string          `json:"description"`
	ReportType      ReportType       `json:"report_type" gorm:"type:varchar(20);not null;index"`
	Status          ReportStatus     `json:"status" gorm:"type:varchar(20);not null;default:pending;index"`
	FileURL         *string          `json:"file_url"`
	FileName        *string          `json:"file_name"`
	UploadedBy      string           `json:"uploaded_by" gorm:"not null;index"`
	CreatedAt       time.Time        `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time        `json:"updated_at" gorm:"autoUpdateTime"`
	FollowUpActions []FollowUpAction `json:"-" gorm:"foreignKey:ReportID;constraint:OnDelete:CASCADE"`
}

func (Report) TableName() string {
	return "reports"
}

// ReportWithFollowUps is a report together with every follow-up action
// that belongs to it. FollowUpActions is never nil.
type ReportWithFollowUps struct {
	Report
	FollowUpActions []FollowUpAction `json:"follow_up_actions"`
}
