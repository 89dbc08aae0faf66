package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/Santy1924/Online-Course-Platform/internal/db/model"
)

var (
	lessonCourseID = uuid.MustParse("33333333-3333-3333-3333-333333333333")
	testLessonID   = uuid.MustParse("44444444-4444-4444-4444-444444444444")
	testLessonID2  = uuid.MustParse("55555555-5555-5555-5555-555555555555")
)

func newLessonService(lessons *MockLessonRepository, courses *MockCourseRepository) LessonServiceInterface {
	return NewLessonService(stubTxRunner{}, lessons, courses)
}

func activeLesson(id uuid.UUID, order int) model.Lesson {
	return model.Lesson{
		ID:       id,
		CourseID: lessonCourseID,
		Title:    "Lesson",
		Position: order,
	}
}

func TestLessonCreateTouchesOwningCourse(t *testing.T) {
	courses := new(MockCourseRepository)
	lessons := new(MockLessonRepository)

	courses.On("GetByID", mock.Anything, lessonCourseID).Return(draftCourse(lessonCourseID, "C"), nil)
	lessons.On("IsOrderUnique", mock.Anything, lessonCourseID, 1).Return(true, nil)
	lessons.On("Create", mock.Anything, mock.AnythingOfType("*model.Lesson")).Return(nil)
	courses.On("Touch", mock.Anything, lessonCourseID).Return(nil)

	lesson, err := newLessonService(lessons, courses).Create(context.Background(), lessonCourseID, "Basics", 1)

	assert.NoError(t, err)
	assert.Equal(t, lessonCourseID, lesson.CourseID)
	assert.Equal(t, 1, lesson.Position)
	courses.AssertCalled(t, "Touch", mock.Anything, lessonCourseID)
}

func TestLessonCreateOrderConflict(t *testing.T) {
	courses := new(MockCourseRepository)
	lessons := new(MockLessonRepository)

	courses.On("GetByID", mock.Anything, lessonCourseID).Return(draftCourse(lessonCourseID, "C"), nil)
	lessons.On("IsOrderUnique", mock.Anything, lessonCourseID, 1).Return(false, nil)

	_, err := newLessonService(lessons, courses).Create(context.Background(), lessonCourseID, "Dup", 1)

	assert.True(t, IsConflict(err))
	assert.EqualError(t, err, "lesson with order 1 already exists in this course")
	lessons.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	courses.AssertNotCalled(t, "Touch", mock.Anything, mock.Anything)
}

func TestLessonCreateCourseNotFound(t *testing.T) {
	courses := new(MockCourseRepository)
	lessons := new(MockLessonRepository)

	courses.On("GetByID", mock.Anything, lessonCourseID).Return(nil, gorm.ErrRecordNotFound)

	_, err := newLessonService(lessons, courses).Create(context.Background(), lessonCourseID, "Orphan", 1)

	assert.True(t, IsNotFound(err))
	lessons.AssertNotCalled(t, "IsOrderUnique", mock.Anything, mock.Anything, mock.Anything)
}

func TestLessonUpdateSameOrderSkipsUniquenessCheck(t *testing.T) {
	courses := new(MockCourseRepository)
	lessons := new(MockLessonRepository)

	lesson := activeLesson(testLessonID, 2)
	lessons.On("GetByID", mock.Anything, testLessonID).Return(&lesson, nil)
	lessons.On("Update", mock.Anything, &lesson).Return(nil)
	courses.On("Touch", mock.Anything, lessonCourseID).Return(nil)

	updated, err := newLessonService(lessons, courses).Update(context.Background(), testLessonID, "Renamed", 2)

	assert.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	lessons.AssertNotCalled(t, "IsOrderUnique", mock.Anything, mock.Anything, mock.Anything)
}

func TestLessonUpdateOrderConflict(t *testing.T) {
	courses := new(MockCourseRepository)
	lessons := new(MockLessonRepository)

	lesson := activeLesson(testLessonID, 2)
	lessons.On("GetByID", mock.Anything, testLessonID).Return(&lesson, nil)
	lessons.On("IsOrderUnique", mock.Anything, lessonCourseID, 5).Return(false, nil)

	_, err := newLessonService(lessons, courses).Update(context.Background(), testLessonID, "Moved", 5)

	assert.True(t, IsConflict(err))
	assert.Equal(t, 2, lesson.Position)
	lessons.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	courses.AssertNotCalled(t, "Touch", mock.Anything, mock.Anything)
}

func TestLessonUpdateNotFound(t *testing.T) {
	courses := new(MockCourseRepository)
	lessons := new(MockLessonRepository)

	lessons.On("GetByID", mock.Anything, testLessonID).Return(nil, gorm.ErrRecordNotFound)

	_, err := newLessonService(lessons, courses).Update(context.Background(), testLessonID, "Ghost", 1)

	assert.True(t, IsNotFound(err))
}

func TestLessonSoftDeleteTouchesOwningCourse(t *testing.T) {
	courses := new(MockCourseRepository)
	lessons := new(MockLessonRepository)

	lesson := activeLesson(testLessonID, 1)
	lessons.On("GetByID", mock.Anything, testLessonID).Return(&lesson, nil)
	lessons.On("SoftDelete", mock.Anything, &lesson).Return(nil)
	courses.On("Touch", mock.Anything, lessonCourseID).Return(nil)

	err := newLessonService(lessons, courses).SoftDelete(context.Background(), testLessonID)

	assert.NoError(t, err)
	courses.AssertCalled(t, "Touch", mock.Anything, lessonCourseID)
}

func TestLessonHardDeleteReachesSoftDeletedRow(t *testing.T) {
	courses := new(MockCourseRepository)
	lessons := new(MockLessonRepository)

	lesson := activeLesson(testLessonID, 1)
	lesson.IsDeleted = true
	lessons.On("GetAnyByID", mock.Anything, testLessonID).Return(&lesson, nil)
	lessons.On("HardDelete", mock.Anything, testLessonID).Return(nil)
	courses.On("Touch", mock.Anything, lessonCourseID).Return(nil)

	err := newLessonService(lessons, courses).HardDelete(context.Background(), testLessonID)

	assert.NoError(t, err)
	lessons.AssertCalled(t, "HardDelete", mock.Anything, testLessonID)
}

func TestLessonReorderAssignsDenseOrders(t *testing.T) {
	courses := new(MockCourseRepository)
	lessons := new(MockLessonRepository)

	current := []model.Lesson{
		activeLesson(testLessonID, 1),
		activeLesson(testLessonID2, 2),
	}
	lessons.On("ListByCourse", mock.Anything, lessonCourseID).Return(current, nil)

	// Pass one parks both rows on negative orders, pass two assigns 1..N.
	lessons.On("UpdateOrder", mock.Anything, testLessonID2, -1).Return(nil)
	lessons.On("UpdateOrder", mock.Anything, testLessonID, -2).Return(nil)
	lessons.On("UpdateOrder", mock.Anything, testLessonID2, 1).Return(nil)
	lessons.On("UpdateOrder", mock.Anything, testLessonID, 2).Return(nil)
	courses.On("Touch", mock.Anything, lessonCourseID).Return(nil)

	err := newLessonService(lessons, courses).Reorder(context.Background(), lessonCourseID,
		[]uuid.UUID{testLessonID2, testLessonID})

	assert.NoError(t, err)
	lessons.AssertExpectations(t)
	courses.AssertCalled(t, "Touch", mock.Anything, lessonCourseID)
}

func TestLessonReorderCountMismatch(t *testing.T) {
	courses := new(MockCourseRepository)
	lessons := new(MockLessonRepository)

	current := []model.Lesson{
		activeLesson(testLessonID, 1),
		activeLesson(testLessonID2, 2),
	}
	lessons.On("ListByCourse", mock.Anything, lessonCourseID).Return(current, nil)

	err := newLessonService(lessons, courses).Reorder(context.Background(), lessonCourseID,
		[]uuid.UUID{testLessonID})

	assert.True(t, IsInvalidState(err))
	assert.EqualError(t, err, "lesson count mismatch for reordering")
	lessons.AssertNotCalled(t, "UpdateOrder", mock.Anything, mock.Anything, mock.Anything)
}

func TestLessonReorderForeignID(t *testing.T) {
	courses := new(MockCourseRepository)
	lessons := new(MockLessonRepository)

	current := []model.Lesson{
		activeLesson(testLessonID, 1),
		activeLesson(testLessonID2, 2),
	}
	lessons.On("ListByCourse", mock.Anything, lessonCourseID).Return(current, nil)

	stranger := uuid.MustParse("66666666-6666-6666-6666-666666666666")
	err := newLessonService(lessons, courses).Reorder(context.Background(), lessonCourseID,
		[]uuid.UUID{testLessonID, stranger})

	assert.True(t, IsInvalidState(err))
	assert.EqualError(t, err, "invalid lesson IDs provided")
	lessons.AssertNotCalled(t, "UpdateOrder", mock.Anything, mock.Anything, mock.Anything)
}

func TestLessonReorderDuplicateIDs(t *testing.T) {
	courses := new(MockCourseRepository)
	lessons := new(MockLessonRepository)

	current := []model.Lesson{
		activeLesson(testLessonID, 1),
		activeLesson(testLessonID2, 2),
	}
	lessons.On("ListByCourse", mock.Anything, lessonCourseID).Return(current, nil)

	// A duplicated id with a matching length would leave one lesson without an
	// order assignment; it must be rejected, not silently dropped.
	err := newLessonService(lessons, courses).Reorder(context.Background(), lessonCourseID,
		[]uuid.UUID{testLessonID, testLessonID})

	assert.True(t, IsInvalidState(err))
	assert.EqualError(t, err, "duplicate lesson IDs provided")
	lessons.AssertNotCalled(t, "UpdateOrder", mock.Anything, mock.Anything, mock.Anything)
	courses.AssertNotCalled(t, "Touch", mock.Anything, mock.Anything)
}

func TestLessonListByCourseUnknownCourseIsEmpty(t *testing.T) {
	courses := new(MockCourseRepository)
	lessons := new(MockLessonRepository)

	lessons.On("ListByCourse", mock.Anything, lessonCourseID).Return([]model.Lesson{}, nil)

	got, err := newLessonService(lessons, courses).ListByCourse(context.Background(), lessonCourseID)

	assert.NoError(t, err)
	assert.Empty(t, got)
}

func TestLessonGetByIDNotFound(t *testing.T) {
	courses := new(MockCourseRepository)
	lessons := new(MockLessonRepository)

	lessons.On("GetByID", mock.Anything, testLessonID).Return(nil, gorm.ErrRecordNotFound)

	_, err := newLessonService(lessons, courses).GetByID(context.Background(), testLessonID)

	assert.True(t, IsNotFound(err))
}

func TestLessonNextOrder(t *testing.T) {
	courses := new(MockCourseRepository)
	lessons := new(MockLessonRepository)

	lessons.On("MaxOrder", mock.Anything, lessonCourseID).Return(4, nil)

	next, err := newLessonService(lessons, courses).NextOrder(context.Background(), lessonCourseID)

	assert.NoError(t, err)
	assert.Equal(t, 5, next)
}
