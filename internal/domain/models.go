package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/coursehub/pkg/auth"
)

// Role and Principal are defined next to the token code in pkg/auth.
type (
	Role      = auth.Role
	Principal = auth.Principal
)

const (
	RoleStudent    = auth.RoleStudent
	RoleInstructor = auth.RoleInstructor
	RoleAdmin      = auth.RoleAdmin
)

// SystemPrincipal is the identity background jobs act under.
func SystemPrincipal() Principal { return auth.SystemPrincipal() }

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentApproved PaymentStatus = "APPROVED"
	PaymentFailed   PaymentStatus = "FAILED"
	PaymentRefunded PaymentStatus = "REFUNDED"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentApproved, PaymentFailed, PaymentRefunded:
		return true
	}
	return false
}

type PaymentMethod string

const (
	MethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	MethodCard         PaymentMethod = "CARD"
	MethodTelegram     PaymentMethod = "TELEGRAM"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodBankTransfer, MethodCard, MethodTelegram:
		return true
	}
	return false
}

type EnrollmentStatus string

const (
	EnrollmentActive    EnrollmentStatus = "ACTIVE"
	EnrollmentCompleted EnrollmentStatus = "COMPLETED"
	EnrollmentCancelled EnrollmentStatus = "CANCELLED"
	EnrollmentPending   EnrollmentStatus = "PENDING"
)

type User struct {
	ID           uuid.UUID `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	Role         Role      `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}

type Course struct {
	ID           uuid.UUID       `db:"id"`
	InstructorID uuid.UUID       `db:"instructor_id"`
	Title        string          `db:"title"`
	Description  string          `db:"description"`
	Price        decimal.Decimal `db:"price"`
	Published    bool            `db:"published"`
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at"`

	Sections []Section `db:"-"`
}

type Section struct {
	ID        uuid.UUID `db:"id"`
	CourseID  uuid.UUID `db:"course_id"`
	Title     string    `db:"title"`
	Order     int       `db:"sort_order"`
	CreatedAt time.Time `db:"created_at"`

	Lessons []Lesson `db:"-"`
}

type Lesson struct {
	ID        uuid.UUID `db:"id"`
	SectionID uuid.UUID `db:"section_id"`
	Title     string    `db:"title"`
	Content   string    `db:"content"`
	Order     int       `db:"sort_order"`
	CreatedAt time.Time `db:"created_at"`
}

type Payment struct {
	ID              uuid.UUID       `db:"id"`
	UserID          uuid.UUID       `db:"user_id"`
	CourseID        uuid.UUID       `db:"course_id"`
	Amount          decimal.Decimal `db:"amount"`
	Status          PaymentStatus   `db:"status"`
	Method          PaymentMethod   `db:"method"`
	Reference       string          `db:"reference"`
	TransactionNote string          `db:"transaction_note"`
	RefundReason    *string         `db:"refund_reason"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
}

type HistoryEntry struct {
	Status    EnrollmentStatus `json:"status"`
	Progress  int              `json:"progress"`
	Timestamp time.Time        `json:"timestamp"`
}

type Enrollment struct {
	ID               uuid.UUID        `db:"id"`
	UserID           uuid.UUID        `db:"user_id"`
	CourseID         uuid.UUID        `db:"course_id"`
	Status           EnrollmentStatus `db:"status"`
	Progress         int              `db:"progress"`
	CompletedLessons []uuid.UUID      `db:"completed_lessons"`
	ExpiryDate       *time.Time       `db:"expiry_date"`
	LastAccessedAt   *time.Time       `db:"last_accessed_at"`
	History          []HistoryEntry   `db:"history"`
	IsDeleted        bool             `db:"is_deleted"`
	CreatedAt        time.Time        `db:"created_at"`
	UpdatedAt        time.Time        `db:"updated_at"`
}

// Snapshot appends the current status and progress to the audit history.
func (e *Enrollment) Snapshot(at time.Time) {
	e.History = append(e.History, HistoryEntry{
		Status:    e.Status,
		Progress:  e.Progress,
		Timestamp: at,
	})
}

func (e *Enrollment) HasCompleted(lessonID uuid.UUID) bool {
	for _, id := range e.CompletedLessons {
		if id == lessonID {
			return true
		}
	}
	return false
}
