package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jobtrack/jobtrack-go/internal/model"
)

var ErrJobNotFound = errors.New("job not found")

// JobRepository persists job applications in MySQL. Every query is scoped by
// user_id, so a job owned by someone else is indistinguishable from a job
// that does not exist.
type JobRepository struct {
	db *sql.DB
}

// NewJobRepository creates a new JobRepository.
func NewJobRepository(db *sql.DB) *JobRepository {
	return &JobRepository{db: db}
}

const jobColumns = `id, user_id, title, company, location, status, date_applied, notes, created_at, updated_at`

// Create inserts a new job row.
func (r *JobRepository) Create(ctx context.Context, job *model.Job) error {
	query := `INSERT INTO jobs (id, user_id, title, company, location, status, date_applied, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		job.ID, job.UserID, job.Title, job.Company, job.Location,
		job.Status, job.DateApplied, job.Notes, job.CreatedAt, job.UpdatedAt,
	)
	return err
}

// GetByID retrieves a job owned by the given user.
func (r *JobRepository) GetByID(ctx context.Context, userID, jobID string) (*model.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = ? AND user_id = ?`

	job := &model.Job{}
	err := r.db.QueryRowContext(ctx, query, jobID, userID).Scan(
		&job.ID, &job.UserID, &job.Title, &job.Company, &job.Location,
		&job.Status, &job.DateApplied, &job.Notes, &job.CreatedAt, &job.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}

	return job, nil
}

// ListByUser retrieves all jobs owned by a user, most recently applied first.
func (r *JobRepository) ListByUser(ctx context.Context, userID string) ([]model.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE user_id = ? ORDER BY date_applied DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []model.Job
	for rows.Next() {
		var j model.Job
		if err := rows.Scan(
			&j.ID, &j.UserID, &j.Title, &j.Company, &j.Location,
			&j.Status, &j.DateApplied, &j.Notes, &j.CreatedAt, &j.UpdatedAt,
		); err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}

	return jobs, rows.Err()
}

// Update writes the mutable fields of a job back to its row. Ownership is
// checked by the WHERE clause; the caller has already fetched the job, so a
// zero rows-affected result (identical values) is not an error.
func (r *JobRepository) Update(ctx context.Context, job *model.Job) error {
	query := `UPDATE jobs SET title = ?, company = ?, location = ?, status = ?, notes = ?, updated_at = ?
		WHERE id = ? AND user_id = ?`

	_, err := r.db.ExecContext(ctx, query,
		job.Title, job.Company, job.Location, job.Status, job.Notes, job.UpdatedAt,
		job.ID, job.UserID,
	)
	return err
}

// Delete removes a job owned by the given user.
func (r *JobRepository) Delete(ctx context.Context, userID, jobID string) error {
	query := `DELETE FROM jobs WHERE id = ? AND user_id = ?`

	result, err := r.db.ExecContext(ctx, query, jobID, userID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrJobNotFound
	}

	return nil
}

// CountByStatus groups a user's jobs by status. Statuses with no jobs are
// absent from the result.
func (r *JobRepository) CountByStatus(ctx context.Context, userID string) (map[string]int, error) {
	query := `SELECT status, COUNT(*) FROM jobs WHERE user_id = ? GROUP BY status`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}

	return counts, rows.Err()
}
