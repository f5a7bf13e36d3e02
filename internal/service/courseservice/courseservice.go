package courseservice

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/coursehub/internal/domain"
	"github.com/GlebRadaev/coursehub/internal/pg"
	"github.com/GlebRadaev/coursehub/internal/service/accessservice"
	"github.com/GlebRadaev/coursehub/pkg/apperr"
)

type Repo interface {
	FindCourseByID(ctx context.Context, id uuid.UUID) (*domain.Course, error)
	SaveCourse(ctx context.Context, course *domain.Course) error
	UpdateCourse(ctx context.Context, course *domain.Course) error
	FindSectionByID(ctx context.Context, id uuid.UUID) (*domain.Section, error)
	SaveSection(ctx context.Context, section *domain.Section) error
	SaveLesson(ctx context.Context, lesson *domain.Lesson) error
	FindSectionsByCourseID(ctx context.Context, courseID uuid.UUID) ([]domain.Section, error)
	FindLessonsByCourseID(ctx context.Context, courseID uuid.UUID) ([]domain.Lesson, error)
	CountLessons(ctx context.Context, courseID uuid.UUID) (int, error)
	LessonInCourse(ctx context.Context, courseID, lessonID uuid.UUID) (bool, error)
}

type Gate interface {
	RequireAuthAndRoles(ctx context.Context, p *domain.Principal, roles []domain.Role, opts ...accessservice.Option) (domain.Principal, error)
}

var (
	ErrCourseNotFound  = apperr.NotFoundErr("COURSE_NOT_FOUND", "Course not found")
	ErrSectionNotFound = apperr.NotFoundErr("SECTION_NOT_FOUND", "Section not found")
	ErrTitleRequired   = apperr.InvalidErr("Title is required")
	ErrInvalidPrice    = apperr.InvalidErr("Price must be a non-negative amount")
	ErrInvalidOrder    = apperr.InvalidErr("Order must not be negative")
	ErrDuplicateOrder  = apperr.ConflictErr("DUPLICATE_ORDER", "Order is already taken in this parent")
	ErrNotCourseOwner  = apperr.ForbiddenErr("Only the course instructor can change this course")
)

var authorRoles = []domain.Role{domain.RoleInstructor, domain.RoleAdmin}

// Prices are kept in cents.
const maxPriceExponent = -2

type Service struct {
	repo Repo
	gate Gate
	now  func() time.Time
}

func New(repo Repo, gate Gate) *Service {
	return &Service{
		repo: repo,
		gate: gate,
		now:  time.Now,
	}
}

func (s *Service) CreateCourse(ctx context.Context, actor *domain.Principal, title, description, price string) (*domain.Course, error) {
	p, err := s.gate.RequireAuthAndRoles(ctx, actor, authorRoles)
	if err != nil {
		return nil, err
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	amount, err := decimal.NewFromString(price)
	if err != nil || amount.IsNegative() || amount.Exponent() < maxPriceExponent {
		return nil, ErrInvalidPrice
	}

	now := s.now().UTC()
	course := &domain.Course{
		ID:           uuid.New(),
		InstructorID: p.UserID,
		Title:        title,
		Description:  strings.TrimSpace(description),
		Price:        amount,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.SaveCourse(ctx, course); err != nil {
		return nil, apperr.Wrap(err)
	}
	zap.L().Info("course created", zap.String("course_id", course.ID.String()))
	return course, nil
}

// ownedCourse loads the course and checks that an instructor edits only
// their own courses.
func (s *Service) ownedCourse(ctx context.Context, p domain.Principal, courseID uuid.UUID) (*domain.Course, error) {
	course, err := s.repo.FindCourseByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}
	if p.Role != domain.RoleAdmin && course.InstructorID != p.UserID {
		return nil, ErrNotCourseOwner
	}
	return course, nil
}

// CreateSection appends a section to the course. Zero order places it after
// the last section.
func (s *Service) CreateSection(ctx context.Context, actor *domain.Principal, courseID, title string, order int) (*domain.Section, error) {
	p, err := s.gate.RequireAuthAndRoles(ctx, actor, authorRoles)
	if err != nil {
		return nil, err
	}
	cid, err := uuid.Parse(courseID)
	if err != nil {
		return nil, ErrCourseNotFound
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	if order < 0 {
		return nil, ErrInvalidOrder
	}

	if _, err := s.ownedCourse(ctx, p, cid); err != nil {
		return nil, apperr.Wrap(err)
	}
	section := &domain.Section{
		ID:        uuid.New(),
		CourseID:  cid,
		Title:     title,
		Order:     order,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.SaveSection(ctx, section); err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, ErrDuplicateOrder
		}
		return nil, apperr.Wrap(err)
	}
	return section, nil
}

func (s *Service) CreateLesson(ctx context.Context, actor *domain.Principal, sectionID, title, content string, order int) (*domain.Lesson, error) {
	p, err := s.gate.RequireAuthAndRoles(ctx, actor, authorRoles)
	if err != nil {
		return nil, err
	}
	sid, err := uuid.Parse(sectionID)
	if err != nil {
		return nil, ErrSectionNotFound
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	if order < 0 {
		return nil, ErrInvalidOrder
	}

	section, err := s.repo.FindSectionByID(ctx, sid)
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	if section == nil {
		return nil, ErrSectionNotFound
	}
	if _, err := s.ownedCourse(ctx, p, section.CourseID); err != nil {
		return nil, apperr.Wrap(err)
	}

	lesson := &domain.Lesson{
		ID:        uuid.New(),
		SectionID: sid,
		Title:     title,
		Content:   content,
		Order:     order,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.SaveLesson(ctx, lesson); err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, ErrDuplicateOrder
		}
		return nil, apperr.Wrap(err)
	}
	return lesson, nil
}

// GetCourse returns the course with its ordered sections and lessons.
// Unpublished courses are visible to their instructor and admins only.
func (s *Service) GetCourse(ctx context.Context, actor *domain.Principal, courseID string) (*domain.Course, error) {
	cid, err := uuid.Parse(courseID)
	if err != nil {
		return nil, ErrCourseNotFound
	}
	course, err := s.repo.FindCourseByID(ctx, cid)
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	if course == nil || !visible(course, actor) {
		return nil, ErrCourseNotFound
	}

	sections, err := s.repo.FindSectionsByCourseID(ctx, cid)
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	lessons, err := s.repo.FindLessonsByCourseID(ctx, cid)
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	course.Sections = buildTree(sections, lessons)
	return course, nil
}

func visible(course *domain.Course, actor *domain.Principal) bool {
	if course.Published {
		return true
	}
	if actor == nil {
		return false
	}
	return actor.Role == domain.RoleAdmin || actor.UserID == course.InstructorID
}

func buildTree(sections []domain.Section, lessons []domain.Lesson) []domain.Section {
	index := make(map[uuid.UUID]int, len(sections))
	for i := range sections {
		sections[i].Lessons = []domain.Lesson{}
		index[sections[i].ID] = i
	}
	for _, l := range lessons {
		if i, ok := index[l.SectionID]; ok {
			sections[i].Lessons = append(sections[i].Lessons, l)
		}
	}
	if sections == nil {
		return []domain.Section{}
	}
	return sections
}

func (s *Service) PublishCourse(ctx context.Context, actor *domain.Principal, courseID string) (*domain.Course, error) {
	p, err := s.gate.RequireAuthAndRoles(ctx, actor, authorRoles)
	if err != nil {
		return nil, err
	}
	cid, err := uuid.Parse(courseID)
	if err != nil {
		return nil, ErrCourseNotFound
	}

	course, err := s.ownedCourse(ctx, p, cid)
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	course.Published = true
	course.UpdatedAt = s.now().UTC()
	if err := s.repo.UpdateCourse(ctx, course); err != nil {
		return nil, apperr.Wrap(err)
	}
	zap.L().Info("course published", zap.String("course_id", course.ID.String()))
	return course, nil
}
