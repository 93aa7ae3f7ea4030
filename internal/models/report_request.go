package models

import (
	"fmt"
	"strings"
)

// FieldError describes one rejected input field, keyed by its JSON name.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// CreateReportInput is the payload of createReport. Status is not accepted;
// every new report starts as pending.
type CreateReportInput struct {
	Title       string     `json:"title" validate:"required"`
	Description *string    `json:"description"`
	ReportType  ReportType `json:"report_type" validate:"required,oneof=oversight audit review"`
	FileURL     *string    `json:"file_url"`
	FileName    *string    `json:"file_name"`
	UploadedBy  string     `json:"uploaded_by" validate:"required"`
}

// GetReportsInput holds the optional exact-match filters of getReports.
// Empty fields do not filter; set fields are combined with AND.
type GetReportsInput struct {
	ReportType ReportType   `json:"report_type,omitempty" validate:"omitempty,oneof=oversight audit review"`
	Status     ReportStatus `json:"status,omitempty" validate:"omitempty,oneof=pending in_progress completed"`
	UploadedBy string       `json:"uploaded_by,omitempty"`
}

// UpdateReportInput is the payload of updateReport. Only fields present in
// the request are written; nullable fields may be cleared with null.
type UpdateReportInput struct {
	ID          uint                   `json:"id" validate:"required"`
	Title       Optional[string]       `json:"title,omitzero"`
	Description Optional[string]       `json:"description,omitzero"`
	ReportType  Optional[ReportType]   `json:"report_type,omitzero"`
	Status      Optional[ReportStatus] `json:"status,omitzero"`
	FileURL     Optional[string]       `json:"file_url,omitzero"`
	FileName    Optional[string]       `json:"file_name,omitzero"`
}

// Check validates the patch fields that struct tags cannot express.
func (in *UpdateReportInput) Check() []FieldError {
	var errs []FieldError
	errs = appendRequiredText(errs, "title", in.Title)
	if in.ReportType.Set && (!in.ReportType.Valid || !in.ReportType.Value.Valid()) {
		errs = append(errs, oneOfError("report_type", ReportTypes))
	}
	if in.Status.Set && (!in.Status.Valid || !in.Status.Value.Valid()) {
		errs = append(errs, oneOfError("status", ReportStatuses))
	}
	return errs
}

// IDInput carries the id of getReportById, deleteReport and
// deleteFollowUpAction.
type IDInput struct {
	ID uint `json:"id" validate:"required"`
}

// ReportIDInput carries the report id of getFollowUpActionsByReportId.
type ReportIDInput struct {
	ReportID uint `json:"reportId" validate:"required"`
}

func appendRequiredText(errs []FieldError, field string, v Optional[string]) []FieldError {
	if !v.Set {
		return errs
	}
	if !v.Valid {
		return append(errs, FieldError{Field: field, Message: "cannot be null"})
	}
	if v.Value == "" {
		return append(errs, FieldError{Field: field, Message: "is required"})
	}
	return errs
}

func oneOfError[T ~string](field string, allowed []T) FieldError {
	names := make([]string, len(allowed))
	for i, a := range allowed {
		names[i] = string(a)
	}
	return FieldError{Field: field, Message: fmt.Sprintf("must be one of: %s", strings.Join(names, " "))}
}
