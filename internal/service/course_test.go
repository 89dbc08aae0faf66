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

var testCourseID = uuid.MustParse("11111111-1111-1111-1111-111111111111")

func newCourseService(courses *MockCourseRepository, lessons *MockLessonRepository) CourseServiceInterface {
	return NewCourseService(stubTxRunner{}, courses, lessons)
}

func TestCourseCreateStartsAsDraft(t *testing.T) {
	courses := new(MockCourseRepository)
	lessons := new(MockLessonRepository)

	courses.On("Create", mock.Anything, mock.AnythingOfType("*model.Course")).Return(nil)

	course, err := newCourseService(courses, lessons).Create(context.Background(), "Intro to Go")

	assert.NoError(t, err)
	assert.Equal(t, "Intro to Go", course.Title)
	assert.Equal(t, model.CourseStatusDraft, course.Status)
	assert.False(t, course.IsDeleted)
	courses.AssertExpectations(t)
}

func TestCoursePublishFailsWithoutActiveLessons(t *testing.T) {
	courses := new(MockCourseRepository)
	lessons := new(MockLessonRepository)

	course := draftCourse(testCourseID, "Empty course")
	courses.On("GetByID", mock.Anything, testCourseID).Return(course, nil)
	lessons.On("CountActiveByCourse", mock.Anything, testCourseID).Return(int64(0), nil)

	err := newCourseService(courses, lessons).Publish(context.Background(), testCourseID)

	assert.True(t, IsInvalidState(err))
	assert.EqualError(t, err, "cannot publish a course with no active lessons")
	assert.Equal(t, model.CourseStatusDraft, course.Status)
	courses.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCoursePublishSucceedsWithActiveLesson(t *testing.T) {
	courses := new(MockCourseRepository)
	lessons := new(MockLessonRepository)

	course := draftCourse(testCourseID, "Course with content")
	courses.On("GetByID", mock.Anything, testCourseID).Return(course, nil)
	lessons.On("CountActiveByCourse", mock.Anything, testCourseID).Return(int64(1), nil)
	courses.On("Update", mock.Anything, course).Return(nil)

	err := newCourseService(courses, lessons).Publish(context.Background(), testCourseID)

	assert.NoError(t, err)
	assert.Equal(t, model.CourseStatusPublished, course.Status)
	courses.AssertExpectations(t)
}

func TestCoursePublishAlreadyPublishedReasserts(t *testing.T) {
	courses := new(MockCourseRepository)
	lessons := new(MockLessonRepository)

	course := draftCourse(testCourseID, "Live course")
	course.Status = model.CourseStatusPublished
	courses.On("GetByID", mock.Anything, testCourseID).Return(course, nil)
	lessons.On("CountActiveByCourse", mock.Anything, testCourseID).Return(int64(3), nil)
	courses.On("Update", mock.Anything, course).Return(nil)

	err := newCourseService(courses, lessons).Publish(context.Background(), testCourseID)

	assert.NoError(t, err)
	assert.Equal(t, model.CourseStatusPublished, course.Status)
}

func TestCoursePublishSoftDeletedIsNotFound(t *testing.T) {
	courses := new(MockCourseRepository)
	lessons := new(MockLessonRepository)

	// Soft-deleted courses are filtered from standard lookups, so the storage
	// layer reports a miss.
	courses.On("GetByID", mock.Anything, testCourseID).Return(nil, gorm.ErrRecordNotFound)

	err := newCourseService(courses, lessons).Publish(context.Background(), testCourseID)

	assert.True(t, IsNotFound(err))
}

func TestCourseUnpublishHasNoPrecondition(t *testing.T) {
	courses := new(MockCourseRepository)
	lessons := new(MockLessonRepository)

	course := draftCourse(testCourseID, "Live course")
	course.Status = model.CourseStatusPublished
	courses.On("GetByID", mock.Anything, testCourseID).Return(course, nil)
	courses.On("Update", mock.Anything, course).Return(nil)

	err := newCourseService(courses, lessons).Unpublish(context.Background(), testCourseID)

	assert.NoError(t, err)
	assert.Equal(t, model.CourseStatusDraft, course.Status)
	lessons.AssertNotCalled(t, "CountActiveByCourse", mock.Anything, mock.Anything)
}

func TestCourseUpdateNotFound(t *testing.T) {
	courses := new(MockCourseRepository)
	lessons := new(MockLessonRepository)

	courses.On("GetByID", mock.Anything, testCourseID).Return(nil, gorm.ErrRecordNotFound)

	_, err := newCourseService(courses, lessons).Update(context.Background(), testCourseID, "New title")

	assert.True(t, IsNotFound(err))
	courses.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCourseSoftDelete(t *testing.T) {
	courses := new(MockCourseRepository)
	lessons := new(MockLessonRepository)

	course := draftCourse(testCourseID, "Old course")
	courses.On("GetByID", mock.Anything, testCourseID).Return(course, nil)
	courses.On("SoftDelete", mock.Anything, course).Return(nil)

	err := newCourseService(courses, lessons).SoftDelete(context.Background(), testCourseID)

	assert.NoError(t, err)
	courses.AssertExpectations(t)
}

func TestCourseSoftDeleteTwiceIsNotFound(t *testing.T) {
	courses := new(MockCourseRepository)
	lessons := new(MockLessonRepository)

	courses.On("GetByID", mock.Anything, testCourseID).Return(nil, gorm.ErrRecordNotFound)

	err := newCourseService(courses, lessons).SoftDelete(context.Background(), testCourseID)

	assert.True(t, IsNotFound(err))
	courses.AssertNotCalled(t, "SoftDelete", mock.Anything, mock.Anything)
}

func TestCourseHardDeleteCascadesToLessons(t *testing.T) {
	courses := new(MockCourseRepository)
	lessons := new(MockLessonRepository)

	course := draftCourse(testCourseID, "Doomed course")
	course.IsDeleted = true
	courses.On("GetAnyByID", mock.Anything, testCourseID).Return(course, nil)
	lessons.On("HardDeleteByCourse", mock.Anything, testCourseID).Return(nil)
	courses.On("HardDelete", mock.Anything, testCourseID).Return(nil)

	err := newCourseService(courses, lessons).HardDelete(context.Background(), testCourseID)

	assert.NoError(t, err)
	lessons.AssertCalled(t, "HardDeleteByCourse", mock.Anything, testCourseID)
	courses.AssertCalled(t, "HardDelete", mock.Anything, testCourseID)
}

func TestCourseHardDeleteUnknownCourse(t *testing.T) {
	courses := new(MockCourseRepository)
	lessons := new(MockLessonRepository)

	courses.On("GetAnyByID", mock.Anything, testCourseID).Return(nil, gorm.ErrRecordNotFound)

	err := newCourseService(courses, lessons).HardDelete(context.Background(), testCourseID)

	assert.True(t, IsNotFound(err))
	lessons.AssertNotCalled(t, "HardDeleteByCourse", mock.Anything, mock.Anything)
}

func TestCourseSummary(t *testing.T) {
	courses := new(MockCourseRepository)
	lessons := new(MockLessonRepository)

	course := draftCourse(testCourseID, "Summarized course")
	courses.On("GetByID", mock.Anything, testCourseID).Return(course, nil)
	lessons.On("CountActiveByCourse", mock.Anything, testCourseID).Return(int64(4), nil)

	summary, err := newCourseService(courses, lessons).Summary(context.Background(), testCourseID)

	assert.NoError(t, err)
	assert.Equal(t, testCourseID, summary.ID)
	assert.Equal(t, "Summarized course", summary.Title)
	assert.Equal(t, int64(4), summary.TotalLessons)
	assert.Equal(t, course.UpdatedAt, summary.LastModified)
}

func TestCourseMetricsEmptyCorpusYieldsZeros(t *testing.T) {
	courses := new(MockCourseRepository)
	lessons := new(MockLessonRepository)

	courses.On("CountActive", mock.Anything).Return(int64(0), nil)
	courses.On("CountActiveByStatus", mock.Anything, model.CourseStatusPublished).Return(int64(0), nil)
	courses.On("CountActiveByStatus", mock.Anything, model.CourseStatusDraft).Return(int64(0), nil)
	lessons.On("CountActive", mock.Anything).Return(int64(0), nil)

	metrics, err := newCourseService(courses, lessons).Metrics(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, &DashboardMetrics{}, metrics)
}

func TestCourseMetricsAggregates(t *testing.T) {
	courses := new(MockCourseRepository)
	lessons := new(MockLessonRepository)

	courses.On("CountActive", mock.Anything).Return(int64(7), nil)
	courses.On("CountActiveByStatus", mock.Anything, model.CourseStatusPublished).Return(int64(2), nil)
	courses.On("CountActiveByStatus", mock.Anything, model.CourseStatusDraft).Return(int64(5), nil)
	lessons.On("CountActive", mock.Anything).Return(int64(31), nil)

	metrics, err := newCourseService(courses, lessons).Metrics(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(7), metrics.TotalCourses)
	assert.Equal(t, int64(2), metrics.PublishedCourses)
	assert.Equal(t, int64(5), metrics.DraftCourses)
	assert.Equal(t, int64(31), metrics.TotalLessons)
}

func TestCourseListReturnsTotalAndLessonCounts(t *testing.T) {
	courses := new(MockCourseRepository)
	lessons := new(MockLessonRepository)

	first := draftCourse(testCourseID, "First")
	second := draftCourse(uuid.MustParse("22222222-2222-2222-2222-222222222222"), "Second")

	courses.On("Count", mock.Anything, "go", (*model.CourseStatus)(nil)).Return(int64(12), nil)
	courses.On("List", mock.Anything, "go", (*model.CourseStatus)(nil), 1, 2).
		Return([]model.Course{*first, *second}, nil)
	lessons.On("CountActiveByCourse", mock.Anything, first.ID).Return(int64(3), nil)
	lessons.On("CountActiveByCourse", mock.Anything, second.ID).Return(int64(0), nil)

	infos, total, err := newCourseService(courses, lessons).List(context.Background(), "go", nil, 1, 2)

	assert.NoError(t, err)
	assert.Equal(t, int64(12), total)
	assert.Len(t, infos, 2)
	assert.Equal(t, int64(3), infos[0].LessonCount)
	assert.Equal(t, int64(0), infos[1].LessonCount)
}
