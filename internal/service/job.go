package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jobtrack/jobtrack-go/internal/model"
	"github.com/jobtrack/jobtrack-go/internal/repository"
)

// JobService handles job application CRUD and statistics. Every operation
// takes the authenticated user ID and scopes all store access to it; a job
// owned by another user is indistinguishable from a missing one.
type JobService struct {
	store    JobStore
	validate *validator.Validate
}

// NewJobService creates a new JobService.
func NewJobService(store JobStore) *JobService {
	return &JobService{
		store:    store,
		validate: validator.New(),
	}
}

// Create stores a new job application. Title and company are required, the
// status must be one of the five known values and defaults to "applied", and
// dateApplied defaults to the creation time.
func (s *JobService) Create(ctx context.Context, userID string, req model.CreateJobRequest) (*model.Job, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, validationError(err)
	}

	status := req.Status
	if status == "" {
		status = model.StatusApplied
	}

	now := time.Now().UTC()
	job := &model.Job{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		Status:      status,
		DateApplied: now,
		Notes:       req.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.store.Create(ctx, job); err != nil {
		return nil, err
	}

	return job, nil
}

// List returns all jobs owned by the user, most recently applied first. The
// result is never nil so it serializes as an empty JSON array.
func (s *JobService) List(ctx context.Context, userID string) ([]model.Job, error) {
	jobs, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if jobs == nil {
		jobs = []model.Job{}
	}
	return jobs, nil
}

// Get returns a single job owned by the user.
func (s *JobService) Get(ctx context.Context, userID, jobID string) (*model.Job, error) {
	job, err := s.store.GetByID(ctx, userID, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return job, nil
}

// Update applies a partial update to a job and returns the updated record.
// Only title, company, location, status and notes are mutable; the owner and
// dateApplied never change. Concurrent updates are last-write-wins.
func (s *JobService) Update(ctx context.Context, userID, jobID string, req model.UpdateJobRequest) (*model.Job, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, validationError(err)
	}

	job, err := s.Get(ctx, userID, jobID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Company != nil {
		job.Company = *req.Company
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.Status != nil {
		job.Status = *req.Status
	}
	if req.Notes != nil {
		job.Notes = *req.Notes
	}
	job.UpdatedAt = time.Now().UTC()

	if err := s.store.Update(ctx, job); err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}

	return job, nil
}

// Delete removes a job owned by the user.
func (s *JobService) Delete(ctx context.Context, userID, jobID string) error {
	err := s.store.Delete(ctx, userID, jobID)
	if errors.Is(err, repository.ErrJobNotFound) {
		return ErrJobNotFound
	}
	return err
}

// Stats summarizes the user's jobs grouped by status. The total always equals
// the sum of the per-status counts; statuses with zero jobs are omitted.
func (s *JobService) Stats(ctx context.Context, userID string) (model.StatsResponse, error) {
	counts, err := s.store.CountByStatus(ctx, userID)
	if err != nil {
		return model.StatsResponse{}, err
	}

	total := 0
	for _, n := range counts {
		total += n
	}

	return model.StatsResponse{Total: total, ByStatus: counts}, nil
}
