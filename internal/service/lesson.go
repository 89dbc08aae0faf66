package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Santy1924/Online-Course-Platform/internal/db/model"
	"github.com/Santy1924/Online-Course-Platform/internal/db/repo"
)

type LessonServiceInterface interface {
	ListByCourse(ctx context.Context, courseID uuid.UUID) ([]model.Lesson, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Lesson, error)
	Create(ctx context.Context, courseID uuid.UUID, title string, order int) (*model.Lesson, error)
	Update(ctx context.Context, id uuid.UUID, title string, order int) (*model.Lesson, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
	HardDelete(ctx context.Context, id uuid.UUID) error
	Reorder(ctx context.Context, courseID uuid.UUID, orderedIDs []uuid.UUID) error
	NextOrder(ctx context.Context, courseID uuid.UUID) (int, error)
}

type LessonService struct {
	tx      TxRunner
	lessons repo.LessonRepositoryInterface
	courses repo.CourseRepositoryInterface
}

var _ LessonServiceInterface = (*LessonService)(nil)

func NewLessonService(tx TxRunner, lessons repo.LessonRepositoryInterface, courses repo.CourseRepositoryInterface) LessonServiceInterface {
	return &LessonService{
		tx:      tx,
		lessons: lessons,
		courses: courses,
	}
}

// ListByCourse returns the course's non-deleted lessons ascending by order.
// An unknown course yields an empty list; ownership checks belong to the
// caller on this read path.
func (s *LessonService) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]model.Lesson, error) {
	return s.lessons.ListByCourse(ctx, courseID)
}

func (s *LessonService) GetByID(ctx context.Context, id uuid.UUID) (*model.Lesson, error) {
	lesson, err := s.lessons.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("lesson not found")
		}
		return nil, err
	}
	return lesson, nil
}

// Create adds a lesson at a caller-supplied order. The occupied-order check
// happens in the same transaction as the insert; the partial unique index on
// (course_id, position) backstops concurrent writers that both pass it.
func (s *LessonService) Create(ctx context.Context, courseID uuid.UUID, title string, order int) (*model.Lesson, error) {
	lesson := &model.Lesson{
		CourseID: courseID,
		Title:    title,
		Position: order,
	}

	err := s.tx.Transaction(ctx, func(tx *gorm.DB) error {
		courses := s.courses.WithTx(tx)
		lessons := s.lessons.WithTx(tx)

		if _, err := courses.GetByID(ctx, courseID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFound("course not found")
			}
			return err
		}

		unique, err := lessons.IsOrderUnique(ctx, courseID, order)
		if err != nil {
			return err
		}
		if !unique {
			return Conflict(fmt.Sprintf("lesson with order %d already exists in this course", order))
		}

		if err := lessons.Create(ctx, lesson); err != nil {
			return err
		}

		return courses.Touch(ctx, courseID)
	})
	if err != nil {
		return nil, err
	}

	return lesson, nil
}

func (s *LessonService) Update(ctx context.Context, id uuid.UUID, title string, order int) (*model.Lesson, error) {
	var updated *model.Lesson

	err := s.tx.Transaction(ctx, func(tx *gorm.DB) error {
		courses := s.courses.WithTx(tx)
		lessons := s.lessons.WithTx(tx)

		lesson, err := lessons.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFound("lesson not found")
			}
			return err
		}

		// The uniqueness check only runs when the order actually changes;
		// re-saving a lesson with its own order is not a collision.
		if lesson.Position != order {
			unique, err := lessons.IsOrderUnique(ctx, lesson.CourseID, order)
			if err != nil {
				return err
			}
			if !unique {
				return Conflict(fmt.Sprintf("lesson with order %d already exists in this course", order))
			}
		}

		lesson.Title = title
		lesson.Position = order
		if err := lessons.Update(ctx, lesson); err != nil {
			return err
		}

		updated = lesson
		return courses.Touch(ctx, lesson.CourseID)
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *LessonService) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return s.tx.Transaction(ctx, func(tx *gorm.DB) error {
		courses := s.courses.WithTx(tx)
		lessons := s.lessons.WithTx(tx)

		lesson, err := lessons.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFound("lesson not found")
			}
			return err
		}

		if err := lessons.SoftDelete(ctx, lesson); err != nil {
			return err
		}

		return courses.Touch(ctx, lesson.CourseID)
	})
}

// HardDelete removes the lesson row permanently. Lessons are the leaf of the
// ownership chain, so nothing cascades from here.
func (s *LessonService) HardDelete(ctx context.Context, id uuid.UUID) error {
	return s.tx.Transaction(ctx, func(tx *gorm.DB) error {
		courses := s.courses.WithTx(tx)
		lessons := s.lessons.WithTx(tx)

		lesson, err := lessons.GetAnyByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFound("lesson not found")
			}
			return err
		}

		if err := lessons.HardDelete(ctx, lesson.ID); err != nil {
			return err
		}

		return courses.Touch(ctx, lesson.CourseID)
	})
}

// Reorder assigns dense 1..N orders to the course's lessons following the
// given id sequence. The input must be an exact permutation of the course's
// current non-deleted lesson ids: same length, every id a member, no
// duplicates. A duplicated id with a matching length would otherwise leave
// some lesson unassigned, so it is rejected rather than silently dropped.
//
// Existing order values are arbitrary, so orders are written in two passes
// inside one transaction: first every row is parked on a negative order no
// live row can hold, then the final 1..N values are assigned. Neither pass can
// collide with a not-yet-updated row, which keeps the per-row unique
// constraint quiet mid-sequence.
func (s *LessonService) Reorder(ctx context.Context, courseID uuid.UUID, orderedIDs []uuid.UUID) error {
	return s.tx.Transaction(ctx, func(tx *gorm.DB) error {
		courses := s.courses.WithTx(tx)
		lessons := s.lessons.WithTx(tx)

		current, err := lessons.ListByCourse(ctx, courseID)
		if err != nil {
			return err
		}

		if len(orderedIDs) != len(current) {
			return InvalidState("lesson count mismatch for reordering")
		}

		members := make(map[uuid.UUID]bool, len(current))
		for _, lesson := range current {
			members[lesson.ID] = true
		}

		seen := make(map[uuid.UUID]bool, len(orderedIDs))
		for _, id := range orderedIDs {
			if seen[id] {
				return InvalidState("duplicate lesson IDs provided")
			}
			seen[id] = true

			if !members[id] {
				return InvalidState("invalid lesson IDs provided")
			}
		}

		for i, id := range orderedIDs {
			if err := lessons.UpdateOrder(ctx, id, -(i + 1)); err != nil {
				return err
			}
		}

		for i, id := range orderedIDs {
			if err := lessons.UpdateOrder(ctx, id, i+1); err != nil {
				return err
			}
		}

		return courses.Touch(ctx, courseID)
	})
}

// NextOrder returns the first order value past the course's current maximum.
// Used when a create request leaves the order unspecified.
func (s *LessonService) NextOrder(ctx context.Context, courseID uuid.UUID) (int, error) {
	max, err := s.lessons.MaxOrder(ctx, courseID)
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}
