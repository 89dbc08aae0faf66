package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Santy1924/Online-Course-Platform/internal/db/model"
)

type LessonRepositoryInterface interface {
	Create(ctx context.Context, lesson *model.Lesson) error
	// GetByID resolves only visible (non-deleted) lessons.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Lesson, error)
	GetAnyByID(ctx context.Context, id uuid.UUID) (*model.Lesson, error)
	// ListByCourse returns the course's non-deleted lessons ascending by order.
	ListByCourse(ctx context.Context, courseID uuid.UUID) ([]model.Lesson, error)
	Update(ctx context.Context, lesson *model.Lesson) error
	UpdateOrder(ctx context.Context, id uuid.UUID, order int) error
	SoftDelete(ctx context.Context, lesson *model.Lesson) error
	HardDelete(ctx context.Context, id uuid.UUID) error
	HardDeleteByCourse(ctx context.Context, courseID uuid.UUID) error
	IsOrderUnique(ctx context.Context, courseID uuid.UUID, order int) (bool, error)
	MaxOrder(ctx context.Context, courseID uuid.UUID) (int, error)
	CountActiveByCourse(ctx context.Context, courseID uuid.UUID) (int64, error)
	CountActive(ctx context.Context) (int64, error)

	WithTx(tx *gorm.DB) LessonRepositoryInterface
}

type LessonRepository struct {
	db *gorm.DB
}

var _ LessonRepositoryInterface = (*LessonRepository)(nil)

func NewLessonRepository(db *gorm.DB) LessonRepositoryInterface {
	return &LessonRepository{db: db}
}

func (r *LessonRepository) WithTx(tx *gorm.DB) LessonRepositoryInterface {
	return &LessonRepository{db: tx}
}

func (r *LessonRepository) Create(ctx context.Context, lesson *model.Lesson) error {
	return r.db.WithContext(ctx).Create(lesson).Error
}

func (r *LessonRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Lesson, error) {
	var lesson model.Lesson
	err := r.db.WithContext(ctx).
		First(&lesson, "id = ? AND is_deleted = ?", id, false).Error
	if err != nil {
		return nil, err
	}
	return &lesson, nil
}

func (r *LessonRepository) GetAnyByID(ctx context.Context, id uuid.UUID) (*model.Lesson, error) {
	var lesson model.Lesson
	err := r.db.WithContext(ctx).First(&lesson, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &lesson, nil
}

func (r *LessonRepository) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]model.Lesson, error) {
	var lessons []model.Lesson
	err := r.db.WithContext(ctx).
		Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("position ASC").
		Find(&lessons).Error
	if err != nil {
		return nil, err
	}
	return lessons, nil
}

func (r *LessonRepository) Update(ctx context.Context, lesson *model.Lesson) error {
	return r.db.WithContext(ctx).Save(lesson).Error
}

// UpdateOrder writes a single lesson's order value. The reorder flow uses it
// for its two-pass position assignment inside a transaction.
func (r *LessonRepository) UpdateOrder(ctx context.Context, id uuid.UUID, order int) error {
	return r.db.WithContext(ctx).
		Model(&model.Lesson{}).
		Where("id = ?", id).
		Update("position", order).Error
}

func (r *LessonRepository) SoftDelete(ctx context.Context, lesson *model.Lesson) error {
	lesson.IsDeleted = true
	return r.db.WithContext(ctx).Save(lesson).Error
}

func (r *LessonRepository) HardDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Lesson{}, "id = ?", id).Error
}

// HardDeleteByCourse removes every lesson row of a course, deleted or not.
// First step of the course hard-delete cascade.
func (r *LessonRepository) HardDeleteByCourse(ctx context.Context, courseID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Lesson{}, "course_id = ?", courseID).Error
}

func (r *LessonRepository) IsOrderUnique(ctx context.Context, courseID uuid.UUID, order int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Lesson{}).
		Where("course_id = ? AND position = ? AND is_deleted = ?", courseID, order, false).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

func (r *LessonRepository) MaxOrder(ctx context.Context, courseID uuid.UUID) (int, error) {
	var max *int
	err := r.db.WithContext(ctx).
		Model(&model.Lesson{}).
		Where("course_id = ? AND is_deleted = ?", courseID, false).
		Select("MAX(position)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if max == nil {
		return 0, nil
	}
	return *max, nil
}

func (r *LessonRepository) CountActiveByCourse(ctx context.Context, courseID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Lesson{}).
		Where("course_id = ? AND is_deleted = ?", courseID, false).
		Count(&count).Error
	return count, err
}

func (r *LessonRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Lesson{}).
		Where("is_deleted = ?", false).
		Count(&count).Error
	return count, err
}
