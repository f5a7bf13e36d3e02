package accessservice

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/coursehub/internal/domain"
	"github.com/GlebRadaev/coursehub/pkg/apperr"
)

func NewMock(t *testing.T) (*Service, *MockEnrollmentRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockEnrollmentRepo(ctrl)
	return New(repo), repo
}

func TestRequireAuthAndRoles(t *testing.T) {
	service, repo := NewMock(t)
	courseID := uuid.New()
	student := &domain.Principal{UserID: uuid.New(), Role: domain.RoleStudent}
	admin := &domain.Principal{UserID: uuid.New(), Role: domain.RoleAdmin}
	instructor := &domain.Principal{UserID: uuid.New(), Role: domain.RoleInstructor}

	tests := []struct {
		name          string
		principal     *domain.Principal
		roles         []domain.Role
		opts          []Option
		prepareMock   func()
		expectedError error
	}{
		{
			name:          "Anonymous caller",
			principal:     nil,
			roles:         []domain.Role{domain.RoleAdmin},
			expectedError: ErrUnauthenticated,
		},
		{
			name:          "Role not accepted",
			principal:     student,
			roles:         []domain.Role{domain.RoleAdmin},
			expectedError: ErrForbidden,
		},
		{
			name:      "Role accepted",
			principal: admin,
			roles:     []domain.Role{domain.RoleAdmin},
		},
		{
			name:      "Enrollment check skipped for instructors",
			principal: instructor,
			roles:     []domain.Role{domain.RoleStudent, domain.RoleInstructor},
			opts:      []Option{WithEnrollment(courseID)},
		},
		{
			name:      "Student with active enrollment",
			principal: student,
			roles:     []domain.Role{domain.RoleStudent},
			opts:      []Option{WithEnrollment(courseID)},
			prepareMock: func() {
				repo.EXPECT().FindActiveByUserAndCourse(gomock.Any(), student.UserID, courseID).
					Return(&domain.Enrollment{Status: domain.EnrollmentActive}, nil)
			},
		},
		{
			name:      "Student without enrollment",
			principal: student,
			roles:     []domain.Role{domain.RoleStudent},
			opts:      []Option{WithEnrollment(courseID)},
			prepareMock: func() {
				repo.EXPECT().FindActiveByUserAndCourse(gomock.Any(), student.UserID, courseID).Return(nil, nil)
			},
			expectedError: ErrNotEnrolled,
		},
		{
			name:      "Enrollment lookup fails",
			principal: student,
			roles:     []domain.Role{domain.RoleStudent},
			opts:      []Option{WithEnrollment(courseID)},
			prepareMock: func() {
				repo.EXPECT().FindActiveByUserAndCourse(gomock.Any(), student.UserID, courseID).Return(nil, errors.New("db error"))
			},
			expectedError: apperr.Wrap(errors.New("db error")),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			p, err := service.RequireAuthAndRoles(context.Background(), tt.principal, tt.roles, tt.opts...)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, *tt.principal, p)
		})
	}
}
