package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jobtrack/jobtrack-go/internal/model"
)

var (
	// ErrValidation wraps every bad-input failure; the detail is appended to
	// the message and is safe to show to clients.
	ErrValidation = errors.New("validation failed")

	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid password")
	ErrJobNotFound        = errors.New("job not found")
)

// UserStore is the credential store consumed by the auth service. The MySQL
// repository and the in-memory store both satisfy it.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
}

// JobStore is the job store consumed by the job service.
type JobStore interface {
	Create(ctx context.Context, job *model.Job) error
	GetByID(ctx context.Context, userID, jobID string) (*model.Job, error)
	ListByUser(ctx context.Context, userID string) ([]model.Job, error)
	Update(ctx context.Context, job *model.Job) error
	Delete(ctx context.Context, userID, jobID string) error
	CountByStatus(ctx context.Context, userID string) (map[string]int, error)
}

// validationError converts validator output into an ErrValidation with a
// short human-readable message. Non-validator errors pass through unchanged.
func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required", "min":
			msgs = append(msgs, field+" is required")
		case "oneof":
			msgs = append(msgs, field+" must be one of: "+strings.Join(strings.Fields(fe.Param()), ", "))
		default:
			msgs = append(msgs, field+" is invalid")
		}
	}

	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(msgs, "; "))
}
