package enrollmentrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/coursehub/internal/domain"
	"github.com/GlebRadaev/coursehub/internal/pg"
)

const columns = `id, user_id, course_id, status, progress, completed_lessons, expiry_date, last_accessed_at, history, is_deleted, created_at, updated_at`

var ErrDuplicate = errors.New("enrollment already exists")

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scanEnrollment(row pgx.Row) (*domain.Enrollment, error) {
	var e domain.Enrollment
	err := row.Scan(&e.ID, &e.UserID, &e.CourseID, &e.Status, &e.Progress, &e.CompletedLessons,
		&e.ExpiryDate, &e.LastAccessedAt, &e.History, &e.IsDeleted, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// jsonb columns are NOT NULL, so nil slices go out as empty arrays.
func lessonsOf(e *domain.Enrollment) []uuid.UUID {
	if e.CompletedLessons == nil {
		return []uuid.UUID{}
	}
	return e.CompletedLessons
}

func historyOf(e *domain.Enrollment) []domain.HistoryEntry {
	if e.History == nil {
		return []domain.HistoryEntry{}
	}
	return e.History
}

func (r *Repository) findOne(ctx context.Context, query string, args ...any) (*domain.Enrollment, error) {
	enrollment, err := scanEnrollment(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find enrollment", zap.Error(err))
		return nil, err
	}
	return enrollment, nil
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Enrollment, error) {
	query := `
        SELECT ` + columns + `
        FROM enrollments
        WHERE id = $1 AND is_deleted = FALSE
    `
	return r.findOne(ctx, query, id)
}

// FindByUserAndCourse locks the row when called inside a transaction.
func (r *Repository) FindByUserAndCourse(ctx context.Context, userID, courseID uuid.UUID) (*domain.Enrollment, error) {
	query := `
        SELECT ` + columns + `
        FROM enrollments
        WHERE user_id = $1 AND course_id = $2 AND is_deleted = FALSE
        FOR UPDATE
    `
	return r.findOne(ctx, query, userID, courseID)
}

func (r *Repository) FindActiveByUserAndCourse(ctx context.Context, userID, courseID uuid.UUID) (*domain.Enrollment, error) {
	query := `
        SELECT ` + columns + `
        FROM enrollments
        WHERE user_id = $1 AND course_id = $2 AND status = 'ACTIVE' AND is_deleted = FALSE
    `
	return r.findOne(ctx, query, userID, courseID)
}

func (r *Repository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Enrollment, error) {
	query := `
        SELECT ` + columns + `
        FROM enrollments
        WHERE user_id = $1 AND is_deleted = FALSE
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get enrollments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var enrollments []domain.Enrollment
	for rows.Next() {
		enrollment, err := scanEnrollment(rows)
		if err != nil {
			zap.L().Error("can't scan enrollment row", zap.Error(err))
			return nil, err
		}
		enrollments = append(enrollments, *enrollment)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate enrollment rows", zap.Error(err))
		return nil, err
	}
	return enrollments, nil
}

// Save returns ErrDuplicate when a live enrollment for the same user and
// course already exists.
func (r *Repository) Save(ctx context.Context, e *domain.Enrollment) error {
	query := `
        INSERT INTO enrollments (` + columns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, e.ID, e.UserID, e.CourseID, e.Status, e.Progress, lessonsOf(e),
			e.ExpiryDate, e.LastAccessedAt, historyOf(e), e.IsDeleted, e.CreatedAt, e.UpdatedAt)
		if pg.IsUniqueViolation(err) {
			return ErrDuplicate
		}
		if err != nil {
			zap.L().Error("can't save enrollment", zap.Error(err))
			return err
		}
		return nil
	})
}

func (r *Repository) Update(ctx context.Context, e *domain.Enrollment) error {
	query := `
        UPDATE enrollments
        SET status = $1, progress = $2, completed_lessons = $3, expiry_date = $4,
            last_accessed_at = $5, history = $6, is_deleted = $7, updated_at = $8
        WHERE id = $9
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, e.Status, e.Progress, lessonsOf(e), e.ExpiryDate,
			e.LastAccessedAt, historyOf(e), e.IsDeleted, e.UpdatedAt, e.ID)
		if err != nil {
			zap.L().Error("failed to update enrollment", zap.Error(err))
			return err
		}
		return nil
	})
}
