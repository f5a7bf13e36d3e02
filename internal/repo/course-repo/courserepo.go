package courserepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/coursehub/internal/domain"
	"github.com/GlebRadaev/coursehub/internal/pg"
)

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

func (r *Repository) FindCourseByID(ctx context.Context, id uuid.UUID) (*domain.Course, error) {
	query := `
        SELECT id, instructor_id, title, description, price, published, created_at, updated_at
        FROM courses
        WHERE id = $1
    `
	var c domain.Course
	err := r.db.QueryRow(ctx, query, id).Scan(&c.ID, &c.InstructorID, &c.Title, &c.Description,
		&c.Price, &c.Published, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find course", zap.Error(err))
		return nil, err
	}
	return &c, nil
}

func (r *Repository) SaveCourse(ctx context.Context, c *domain.Course) error {
	query := `
        INSERT INTO courses (id, instructor_id, title, description, price, published, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
	_, err := r.db.Exec(ctx, query, c.ID, c.InstructorID, c.Title, c.Description, c.Price, c.Published, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save course", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) UpdateCourse(ctx context.Context, c *domain.Course) error {
	query := `
        UPDATE courses
        SET title = $1, description = $2, price = $3, published = $4, updated_at = $5
        WHERE id = $6
    `
	_, err := r.db.Exec(ctx, query, c.Title, c.Description, c.Price, c.Published, c.UpdatedAt, c.ID)
	if err != nil {
		zap.L().Error("failed to update course", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindSectionByID(ctx context.Context, id uuid.UUID) (*domain.Section, error) {
	query := `
        SELECT id, course_id, title, sort_order, created_at
        FROM sections
        WHERE id = $1
    `
	var s domain.Section
	err := r.db.QueryRow(ctx, query, id).Scan(&s.ID, &s.CourseID, &s.Title, &s.Order, &s.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find section", zap.Error(err))
		return nil, err
	}
	return &s, nil
}

// SaveSection assigns the next order in the course when Order is zero.
func (r *Repository) SaveSection(ctx context.Context, s *domain.Section) error {
	next := `
        SELECT COALESCE(MAX(sort_order), 0) + 1
        FROM sections
        WHERE course_id = $1
    `
	insert := `
        INSERT INTO sections (id, course_id, title, sort_order, created_at)
        VALUES ($1, $2, $3, $4, $5)
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		if s.Order == 0 {
			if err := r.db.QueryRow(ctx, next, s.CourseID).Scan(&s.Order); err != nil {
				zap.L().Error("can't get next section order", zap.Error(err))
				return err
			}
		}
		if _, err := r.db.Exec(ctx, insert, s.ID, s.CourseID, s.Title, s.Order, s.CreatedAt); err != nil {
			zap.L().Error("can't save section", zap.Error(err))
			return err
		}
		return nil
	})
}

// SaveLesson assigns the next order in the section when Order is zero.
func (r *Repository) SaveLesson(ctx context.Context, l *domain.Lesson) error {
	next := `
        SELECT COALESCE(MAX(sort_order), 0) + 1
        FROM lessons
        WHERE section_id = $1
    `
	insert := `
        INSERT INTO lessons (id, section_id, title, content, sort_order, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		if l.Order == 0 {
			if err := r.db.QueryRow(ctx, next, l.SectionID).Scan(&l.Order); err != nil {
				zap.L().Error("can't get next lesson order", zap.Error(err))
				return err
			}
		}
		if _, err := r.db.Exec(ctx, insert, l.ID, l.SectionID, l.Title, l.Content, l.Order, l.CreatedAt); err != nil {
			zap.L().Error("can't save lesson", zap.Error(err))
			return err
		}
		return nil
	})
}

func (r *Repository) FindSectionsByCourseID(ctx context.Context, courseID uuid.UUID) ([]domain.Section, error) {
	query := `
        SELECT id, course_id, title, sort_order, created_at
        FROM sections
        WHERE course_id = $1
        ORDER BY sort_order ASC
    `
	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		zap.L().Error("can't get sections", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var sections []domain.Section
	for rows.Next() {
		var s domain.Section
		if err := rows.Scan(&s.ID, &s.CourseID, &s.Title, &s.Order, &s.CreatedAt); err != nil {
			zap.L().Error("can't scan section row", zap.Error(err))
			return nil, err
		}
		sections = append(sections, s)
	}
	return sections, rows.Err()
}

func (r *Repository) FindLessonsByCourseID(ctx context.Context, courseID uuid.UUID) ([]domain.Lesson, error) {
	query := `
        SELECT l.id, l.section_id, l.title, l.content, l.sort_order, l.created_at
        FROM lessons l
        JOIN sections s ON s.id = l.section_id
        WHERE s.course_id = $1
        ORDER BY s.sort_order ASC, l.sort_order ASC
    `
	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		zap.L().Error("can't get lessons", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var lessons []domain.Lesson
	for rows.Next() {
		var l domain.Lesson
		if err := rows.Scan(&l.ID, &l.SectionID, &l.Title, &l.Content, &l.Order, &l.CreatedAt); err != nil {
			zap.L().Error("can't scan lesson row", zap.Error(err))
			return nil, err
		}
		lessons = append(lessons, l)
	}
	return lessons, rows.Err()
}

func (r *Repository) CountLessons(ctx context.Context, courseID uuid.UUID) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM lessons l
        JOIN sections s ON s.id = l.section_id
        WHERE s.course_id = $1
    `
	var count int
	if err := r.db.QueryRow(ctx, query, courseID).Scan(&count); err != nil {
		zap.L().Error("can't count lessons", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) LessonInCourse(ctx context.Context, courseID, lessonID uuid.UUID) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1
            FROM lessons l
            JOIN sections s ON s.id = l.section_id
            WHERE s.course_id = $1 AND l.id = $2
        )
    `
	var exists bool
	if err := r.db.QueryRow(ctx, query, courseID, lessonID).Scan(&exists); err != nil {
		zap.L().Error("can't check lesson", zap.Error(err))
		return false, err
	}
	return exists, nil
}
