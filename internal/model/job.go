package model

import "time"

// Job application statuses. The status is a user-editable label with no
// enforced transition order.
const (
	StatusApplied   = "applied"
	StatusInterview = "interview"
	StatusOffer     = "offer"
	StatusRejected  = "rejected"
	StatusSaved     = "saved"
)

// Job represents a tracked job application. Every job is owned by exactly one
// user; UserID is set at creation and never changes. JSON keys are camelCase
// to match the consuming client.
type Job struct {
	ID          string    `json:"id"`
	UserID      string    `json:"-"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location,omitempty"`
	Status      string    `json:"status"`
	DateApplied time.Time `json:"dateApplied"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateJobRequest represents a job creation request. Status defaults to
// "applied" when omitted.
type CreateJobRequest struct {
	Title    string `json:"title" validate:"required"`
	Company  string `json:"company" validate:"required"`
	Location string `json:"location"`
	Status   string `json:"status" validate:"omitempty,oneof=applied interview offer rejected saved"`
	Notes    string `json:"notes"`
}

// UpdateJobRequest represents a partial job update. Nil fields are left
// untouched; only the five mutable fields are accepted.
type UpdateJobRequest struct {
	Title    *string `json:"title" validate:"omitempty,min=1"`
	Company  *string `json:"company" validate:"omitempty,min=1"`
	Location *string `json:"location"`
	Status   *string `json:"status" validate:"omitempty,oneof=applied interview offer rejected saved"`
	Notes    *string `json:"notes"`
}

// StatsResponse summarizes a user's job applications. ByStatus omits statuses
// with zero jobs; clients treat a missing key as zero.
type StatsResponse struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"byStatus"`
}
