package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/Santy1924/Online-Course-Platform/internal/db/model"
	"github.com/Santy1924/Online-Course-Platform/internal/db/repo"
)

// stubTxRunner runs the unit of work without a real transaction; mocks hand
// back themselves from WithTx, so expectations set on the mock cover the
// transactional path too.
type stubTxRunner struct{}

func (stubTxRunner) Transaction(_ context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

type MockCourseRepository struct {
	mock.Mock
}

var _ repo.CourseRepositoryInterface = (*MockCourseRepository)(nil)

func (m *MockCourseRepository) WithTx(tx *gorm.DB) repo.CourseRepositoryInterface {
	return m
}

func (m *MockCourseRepository) Create(ctx context.Context, course *model.Course) error {
	args := m.Called(ctx, course)
	return args.Error(0)
}

func (m *MockCourseRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Course), args.Error(1)
}

func (m *MockCourseRepository) GetAnyByID(ctx context.Context, id uuid.UUID) (*model.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Course), args.Error(1)
}

func (m *MockCourseRepository) List(ctx context.Context, search string, status *model.CourseStatus, page, pageSize int) ([]model.Course, error) {
	args := m.Called(ctx, search, status, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Course), args.Error(1)
}

func (m *MockCourseRepository) Count(ctx context.Context, search string, status *model.CourseStatus) (int64, error) {
	args := m.Called(ctx, search, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCourseRepository) Update(ctx context.Context, course *model.Course) error {
	args := m.Called(ctx, course)
	return args.Error(0)
}

func (m *MockCourseRepository) Touch(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCourseRepository) SoftDelete(ctx context.Context, course *model.Course) error {
	args := m.Called(ctx, course)
	return args.Error(0)
}

func (m *MockCourseRepository) HardDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCourseRepository) CountActive(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCourseRepository) CountActiveByStatus(ctx context.Context, status model.CourseStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

type MockLessonRepository struct {
	mock.Mock
}

var _ repo.LessonRepositoryInterface = (*MockLessonRepository)(nil)

func (m *MockLessonRepository) WithTx(tx *gorm.DB) repo.LessonRepositoryInterface {
	return m
}

func (m *MockLessonRepository) Create(ctx context.Context, lesson *model.Lesson) error {
	args := m.Called(ctx, lesson)
	return args.Error(0)
}

func (m *MockLessonRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Lesson, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Lesson), args.Error(1)
}

func (m *MockLessonRepository) GetAnyByID(ctx context.Context, id uuid.UUID) (*model.Lesson, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Lesson), args.Error(1)
}

func (m *MockLessonRepository) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]model.Lesson, error) {
	args := m.Called(ctx, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Lesson), args.Error(1)
}

func (m *MockLessonRepository) Update(ctx context.Context, lesson *model.Lesson) error {
	args := m.Called(ctx, lesson)
	return args.Error(0)
}

func (m *MockLessonRepository) UpdateOrder(ctx context.Context, id uuid.UUID, order int) error {
	args := m.Called(ctx, id, order)
	return args.Error(0)
}

func (m *MockLessonRepository) SoftDelete(ctx context.Context, lesson *model.Lesson) error {
	args := m.Called(ctx, lesson)
	return args.Error(0)
}

func (m *MockLessonRepository) HardDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLessonRepository) HardDeleteByCourse(ctx context.Context, courseID uuid.UUID) error {
	args := m.Called(ctx, courseID)
	return args.Error(0)
}

func (m *MockLessonRepository) IsOrderUnique(ctx context.Context, courseID uuid.UUID, order int) (bool, error) {
	args := m.Called(ctx, courseID, order)
	return args.Bool(0), args.Error(1)
}

func (m *MockLessonRepository) MaxOrder(ctx context.Context, courseID uuid.UUID) (int, error) {
	args := m.Called(ctx, courseID)
	return args.Int(0), args.Error(1)
}

func (m *MockLessonRepository) CountActiveByCourse(ctx context.Context, courseID uuid.UUID) (int64, error) {
	args := m.Called(ctx, courseID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLessonRepository) CountActive(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func draftCourse(id uuid.UUID, title string) *model.Course {
	now := time.Now().UTC()
	return &model.Course{
		ID:        id,
		Title:     title,
		Status:    model.CourseStatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
