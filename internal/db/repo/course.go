package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Santy1924/Online-Course-Platform/internal/db/model"
)

type CourseRepositoryInterface interface {
	Create(ctx context.Context, course *model.Course) error
	// GetByID resolves only visible (non-deleted) courses.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Course, error)
	// GetAnyByID resolves a course regardless of its soft-delete flag. Used by
	// the administrative hard-delete path, which must reach rows that standard
	// lookups no longer see.
	GetAnyByID(ctx context.Context, id uuid.UUID) (*model.Course, error)
	List(ctx context.Context, search string, status *model.CourseStatus, page, pageSize int) ([]model.Course, error)
	Count(ctx context.Context, search string, status *model.CourseStatus) (int64, error)
	Update(ctx context.Context, course *model.Course) error
	Touch(ctx context.Context, id uuid.UUID) error
	SoftDelete(ctx context.Context, course *model.Course) error
	HardDelete(ctx context.Context, id uuid.UUID) error
	CountActive(ctx context.Context) (int64, error)
	CountActiveByStatus(ctx context.Context, status model.CourseStatus) (int64, error)

	WithTx(tx *gorm.DB) CourseRepositoryInterface
}

type CourseRepository struct {
	db *gorm.DB
}

var _ CourseRepositoryInterface = (*CourseRepository)(nil)

func NewCourseRepository(db *gorm.DB) CourseRepositoryInterface {
	return &CourseRepository{db: db}
}

func (r *CourseRepository) WithTx(tx *gorm.DB) CourseRepositoryInterface {
	return &CourseRepository{db: tx}
}

func (r *CourseRepository) Create(ctx context.Context, course *model.Course) error {
	return r.db.WithContext(ctx).Create(course).Error
}

func (r *CourseRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Course, error) {
	var course model.Course
	err := r.db.WithContext(ctx).
		First(&course, "id = ? AND is_deleted = ?", id, false).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *CourseRepository) GetAnyByID(ctx context.Context, id uuid.UUID) (*model.Course, error) {
	var course model.Course
	err := r.db.WithContext(ctx).First(&course, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *CourseRepository) List(ctx context.Context, search string, status *model.CourseStatus, page, pageSize int) ([]model.Course, error) {
	var courses []model.Course
	err := r.listQuery(ctx, search, status).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&courses).Error
	if err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *CourseRepository) Count(ctx context.Context, search string, status *model.CourseStatus) (int64, error) {
	var count int64
	err := r.listQuery(ctx, search, status).Count(&count).Error
	return count, err
}

func (r *CourseRepository) listQuery(ctx context.Context, search string, status *model.CourseStatus) *gorm.DB {
	query := r.db.WithContext(ctx).
		Model(&model.Course{}).
		Where("is_deleted = ?", false)

	if search != "" {
		query = query.Where("title ILIKE ?", "%"+search+"%")
	}

	if status != nil {
		query = query.Where("status = ?", *status)
	}

	return query
}

func (r *CourseRepository) Update(ctx context.Context, course *model.Course) error {
	return r.db.WithContext(ctx).Save(course).Error
}

// Touch bumps the course's modification timestamp without changing anything
// else. Called by the lesson side whenever a lesson mutation succeeds.
func (r *CourseRepository) Touch(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&model.Course{}).
		Where("id = ?", id).
		Update("updated_at", time.Now().UTC()).Error
}

func (r *CourseRepository) SoftDelete(ctx context.Context, course *model.Course) error {
	course.IsDeleted = true
	return r.db.WithContext(ctx).Save(course).Error
}

// HardDelete removes the course row permanently. The lesson cascade is
// orchestrated by the service inside the same transaction, not by the schema.
func (r *CourseRepository) HardDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Course{}, "id = ?", id).Error
}

func (r *CourseRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Course{}).
		Where("is_deleted = ?", false).
		Count(&count).Error
	return count, err
}

func (r *CourseRepository) CountActiveByStatus(ctx context.Context, status model.CourseStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Course{}).
		Where("is_deleted = ? AND status = ?", false, status).
		Count(&count).Error
	return count, err
}
