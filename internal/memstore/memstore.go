// Package memstore provides an in-memory implementation of the user and job
// stores. It backs the test suites and is handy for local development without
// a MySQL instance; it is not meant for production use.
package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/jobtrack/jobtrack-go/internal/model"
	"github.com/jobtrack/jobtrack-go/internal/repository"
)

// Store keeps users and jobs in maps guarded by a single mutex. Its Users and
// Jobs views expose the same API and sentinel errors as the MySQL
// repositories.
type Store struct {
	mu           sync.RWMutex
	users        map[string]model.User
	userIDByMail map[string]string
	jobs         map[string]model.Job
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		users:        make(map[string]model.User),
		userIDByMail: make(map[string]string),
		jobs:         make(map[string]model.Job),
	}
}

// Users returns the credential-store view of the Store.
func (s *Store) Users() *Users { return &Users{s} }

// Jobs returns the job-store view of the Store.
func (s *Store) Jobs() *Jobs { return &Jobs{s} }

// Users implements the user store API over a Store.
type Users struct {
	s *Store
}

// Create inserts a user, enforcing email uniqueness.
func (u *Users) Create(_ context.Context, user *model.User) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()

	if _, exists := u.s.userIDByMail[user.Email]; exists {
		return repository.ErrDuplicateEmail
	}

	u.s.users[user.ID] = *user
	u.s.userIDByMail[user.Email] = user.ID
	return nil
}

// GetByEmail retrieves a user by exact email match.
func (u *Users) GetByEmail(_ context.Context, email string) (*model.User, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()

	id, ok := u.s.userIDByMail[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	user := u.s.users[id]
	return &user, nil
}

// GetByID retrieves a user by ID.
func (u *Users) GetByID(_ context.Context, id string) (*model.User, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()

	user, ok := u.s.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return &user, nil
}

// Jobs implements the job store API over a Store.
type Jobs struct {
	s *Store
}

// Create inserts a job.
func (j *Jobs) Create(_ context.Context, job *model.Job) error {
	j.s.mu.Lock()
	defer j.s.mu.Unlock()

	j.s.jobs[job.ID] = *job
	return nil
}

// GetByID retrieves a job owned by the given user. A job owned by someone
// else reports not-found, exactly like the MySQL implementation.
func (j *Jobs) GetByID(_ context.Context, userID, jobID string) (*model.Job, error) {
	j.s.mu.RLock()
	defer j.s.mu.RUnlock()

	job, ok := j.s.jobs[jobID]
	if !ok || job.UserID != userID {
		return nil, repository.ErrJobNotFound
	}
	return &job, nil
}

// ListByUser retrieves all jobs owned by a user, most recently applied first.
func (j *Jobs) ListByUser(_ context.Context, userID string) ([]model.Job, error) {
	j.s.mu.RLock()
	defer j.s.mu.RUnlock()

	var jobs []model.Job
	for _, job := range j.s.jobs {
		if job.UserID == userID {
			jobs = append(jobs, job)
		}
	}

	sort.Slice(jobs, func(a, b int) bool {
		return jobs[a].DateApplied.After(jobs[b].DateApplied)
	})

	return jobs, nil
}

// Update writes a job back, preserving the ownership check.
func (j *Jobs) Update(_ context.Context, job *model.Job) error {
	j.s.mu.Lock()
	defer j.s.mu.Unlock()

	existing, ok := j.s.jobs[job.ID]
	if !ok || existing.UserID != job.UserID {
		return repository.ErrJobNotFound
	}

	j.s.jobs[job.ID] = *job
	return nil
}

// Delete removes a job owned by the given user.
func (j *Jobs) Delete(_ context.Context, userID, jobID string) error {
	j.s.mu.Lock()
	defer j.s.mu.Unlock()

	job, ok := j.s.jobs[jobID]
	if !ok || job.UserID != userID {
		return repository.ErrJobNotFound
	}

	delete(j.s.jobs, jobID)
	return nil
}

// CountByStatus groups a user's jobs by status, omitting zero counts.
func (j *Jobs) CountByStatus(_ context.Context, userID string) (map[string]int, error) {
	j.s.mu.RLock()
	defer j.s.mu.RUnlock()

	counts := make(map[string]int)
	for _, job := range j.s.jobs {
		if job.UserID == userID {
			counts[job.Status]++
		}
	}

	return counts, nil
}
