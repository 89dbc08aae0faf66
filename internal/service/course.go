package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Santy1924/Online-Course-Platform/internal/db/model"
	"github.com/Santy1924/Online-Course-Platform/internal/db/repo"
)

// TxRunner executes a unit of work inside a single database transaction.
// Satisfied by db.Client.
type TxRunner interface {
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// CourseInfo is a course projection enriched with its active lesson count.
type CourseInfo struct {
	Course      model.Course
	LessonCount int64
}

type CourseSummary struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	TotalLessons int64     `json:"total_lessons"`
	LastModified time.Time `json:"last_modified"`
}

type DashboardMetrics struct {
	TotalCourses     int64 `json:"total_courses"`
	PublishedCourses int64 `json:"published_courses"`
	DraftCourses     int64 `json:"draft_courses"`
	TotalLessons     int64 `json:"total_lessons"`
}

type CourseServiceInterface interface {
	List(ctx context.Context, search string, status *model.CourseStatus, page, pageSize int) ([]CourseInfo, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*CourseInfo, error)
	Create(ctx context.Context, title string) (*model.Course, error)
	Update(ctx context.Context, id uuid.UUID, title string) (*model.Course, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
	HardDelete(ctx context.Context, id uuid.UUID) error
	Publish(ctx context.Context, id uuid.UUID) error
	Unpublish(ctx context.Context, id uuid.UUID) error
	Summary(ctx context.Context, id uuid.UUID) (*CourseSummary, error)
	Metrics(ctx context.Context) (*DashboardMetrics, error)
}

type CourseService struct {
	tx      TxRunner
	courses repo.CourseRepositoryInterface
	lessons repo.LessonRepositoryInterface
}

var _ CourseServiceInterface = (*CourseService)(nil)

func NewCourseService(tx TxRunner, courses repo.CourseRepositoryInterface, lessons repo.LessonRepositoryInterface) CourseServiceInterface {
	return &CourseService{
		tx:      tx,
		courses: courses,
		lessons: lessons,
	}
}

// resolve loads a visible course, translating the storage miss into the
// domain's NotFound. Soft-deleted courses are invisible here, which is what
// makes repeated soft deletes surface as NotFound.
func (s *CourseService) resolve(ctx context.Context, courses repo.CourseRepositoryInterface, id uuid.UUID) (*model.Course, error) {
	course, err := courses.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("course not found")
		}
		return nil, err
	}
	return course, nil
}

func (s *CourseService) List(ctx context.Context, search string, status *model.CourseStatus, page, pageSize int) ([]CourseInfo, int64, error) {
	total, err := s.courses.Count(ctx, search, status)
	if err != nil {
		return nil, 0, err
	}

	courses, err := s.courses.List(ctx, search, status, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	infos := make([]CourseInfo, 0, len(courses))
	for _, course := range courses {
		count, err := s.lessons.CountActiveByCourse(ctx, course.ID)
		if err != nil {
			return nil, 0, err
		}
		infos = append(infos, CourseInfo{Course: course, LessonCount: count})
	}

	return infos, total, nil
}

func (s *CourseService) GetByID(ctx context.Context, id uuid.UUID) (*CourseInfo, error) {
	course, err := s.resolve(ctx, s.courses, id)
	if err != nil {
		return nil, err
	}

	count, err := s.lessons.CountActiveByCourse(ctx, course.ID)
	if err != nil {
		return nil, err
	}

	return &CourseInfo{Course: *course, LessonCount: count}, nil
}

func (s *CourseService) Create(ctx context.Context, title string) (*model.Course, error) {
	course := &model.Course{
		Title:  title,
		Status: model.CourseStatusDraft,
	}

	if err := s.courses.Create(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

func (s *CourseService) Update(ctx context.Context, id uuid.UUID, title string) (*model.Course, error) {
	course, err := s.resolve(ctx, s.courses, id)
	if err != nil {
		return nil, err
	}

	course.Title = title
	if err := s.courses.Update(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

func (s *CourseService) SoftDelete(ctx context.Context, id uuid.UUID) error {
	course, err := s.resolve(ctx, s.courses, id)
	if err != nil {
		return err
	}

	return s.courses.SoftDelete(ctx, course)
}

// HardDelete permanently removes a course and all of its lessons. The cascade
// is an explicit two-step deletion inside one transaction: lessons first, then
// the course. Soft-deleted courses are still reachable here.
func (s *CourseService) HardDelete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.courses.GetAnyByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFound("course not found")
		}
		return err
	}

	return s.tx.Transaction(ctx, func(tx *gorm.DB) error {
		if err := s.lessons.WithTx(tx).HardDeleteByCourse(ctx, id); err != nil {
			return err
		}
		return s.courses.WithTx(tx).HardDelete(ctx, id)
	})
}

// Publish transitions a course to Published. A course with no active lessons
// cannot be published; publishing an already-published course re-asserts the
// status without error.
func (s *CourseService) Publish(ctx context.Context, id uuid.UUID) error {
	course, err := s.resolve(ctx, s.courses, id)
	if err != nil {
		return err
	}

	count, err := s.lessons.CountActiveByCourse(ctx, course.ID)
	if err != nil {
		return err
	}
	if count == 0 {
		return InvalidState("cannot publish a course with no active lessons")
	}

	course.Status = model.CourseStatusPublished
	return s.courses.Update(ctx, course)
}

func (s *CourseService) Unpublish(ctx context.Context, id uuid.UUID) error {
	course, err := s.resolve(ctx, s.courses, id)
	if err != nil {
		return err
	}

	course.Status = model.CourseStatusDraft
	return s.courses.Update(ctx, course)
}

func (s *CourseService) Summary(ctx context.Context, id uuid.UUID) (*CourseSummary, error) {
	course, err := s.resolve(ctx, s.courses, id)
	if err != nil {
		return nil, err
	}

	count, err := s.lessons.CountActiveByCourse(ctx, course.ID)
	if err != nil {
		return nil, err
	}

	return &CourseSummary{
		ID:           course.ID,
		Title:        course.Title,
		TotalLessons: count,
		LastModified: course.UpdatedAt,
	}, nil
}

// Metrics aggregates across all non-deleted courses. An empty corpus yields
// zeros, not an error.
func (s *CourseService) Metrics(ctx context.Context) (*DashboardMetrics, error) {
	total, err := s.courses.CountActive(ctx)
	if err != nil {
		return nil, err
	}

	published, err := s.courses.CountActiveByStatus(ctx, model.CourseStatusPublished)
	if err != nil {
		return nil, err
	}

	draft, err := s.courses.CountActiveByStatus(ctx, model.CourseStatusDraft)
	if err != nil {
		return nil, err
	}

	lessons, err := s.lessons.CountActive(ctx)
	if err != nil {
		return nil, err
	}

	return &DashboardMetrics{
		TotalCourses:     total,
		PublishedCourses: published,
		DraftCourses:     draft,
		TotalLessons:     lessons,
	}, nil
}
