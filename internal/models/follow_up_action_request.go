package models

import "time"

// CreateFollowUpActionInput is the payload of createFollowUpAction.
// Status and completion date are always reset on creation.
type CreateFollowUpActionInput struct {
	ReportID          uint       `json:"report_id" validate:"required"`
	ActionDescription string     `json:"action_description" validate:"required"`
	AssignedTo        *string    `json:"assigned_to"`
	DueDate           *time.Time `json:"due_date"`
	Notes             *string    `json:"notes"`
}

// UpdateFollowUpActionInput is the payload of updateFollowUpAction.
// Setting Status to completed overrides CompletionDate with the current time.
type UpdateFollowUpActionInput struct {
	ID                uint                     `json:"id" validate:"required"`
	ActionDescription Optional[string]         `json:"action_description,omitzero"`
	AssignedTo        Optional[string]         `json:"assigned_to,omitzero"`
	Status            Optional[FollowUpStatus] `json:"status,omitzero"`
	DueDate           Optional[time.Time]      `json:"due_date,omitzero"`
	CompletionDate    Optional[time.Time]      `json:"completion_date,omitzero"`
	Notes             Optional[string]         `json:"notes,omitzero"`
}

// Check validates the patch fields that struct tags cannot express.
func (in *UpdateFollowUpActionInput) Check() []FieldError {
	var errs []FieldError
	errs = appendRequiredText(errs, "action_description", in.ActionDescription)
	if in.Status.Set && (!in.Status.Valid || !in.Status.Value.Valid()) {
		errs = append(errs, oneOfError("status", FollowUpStatuses))
	}
	return errs
}
