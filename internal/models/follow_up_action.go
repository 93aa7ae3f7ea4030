package models

import "time"

// FollowUpStatus is the progress state of a follow-up action.
type FollowUpStatus string

const (
	FollowUpStatusNotStarted FollowUpStatus = "not_started"
	FollowUpStatusInProgress FollowUpStatus = "in_progress"
	FollowUpStatusCompleted  FollowUpStatus = "completed"
)

// FollowUpStatuses lists every accepted follow-up status, in display order.
var FollowUpStatuses = []FollowUpStatus{FollowUpStatusNotStarted, FollowUpStatusInProgress, FollowUpStatusCompleted}

// Valid reports whether s is one of the known follow-up statuses.
func (s FollowUpStatus) Valid() bool {
	for _, v := range FollowUpStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// FollowUpAction is a remediation task owned by exactly one Report.
type FollowUpAction struct {
	ID                uint           `json:"id" gorm:"primaryKey"`
	ReportID          uint           `json:"report_id" gorm:"not null;index"`
	ActionDescription string         `json:"action_description" gorm:"not null"`
	AssignedTo        *string        `json:"assigned_to"`
	Status            FollowUpStatus `json:"status" gorm:"type:varchar(20);not null;default:not_started;index"`
	DueDate           *time.Time     `json:"due_date"`
	CompletionDate    *time.Time     `json:"completion_date"`
	Notes             *string        `json:"notes"`
	CreatedAt         time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt         time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

func (FollowUpAction) TableName() string {
	return "follow_up_actions"
}
