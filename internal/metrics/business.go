package metrics

// BusinessMetrics records the content-lifecycle events the platform cares
// about, on top of whatever MetricsClient is wired in.
type BusinessMetrics struct {
	client MetricsClient
}

func NewBusinessMetrics(mc MetricsClient) *BusinessMetrics {
	return &BusinessMetrics{
		client: mc,
	}
}

func (bm *BusinessMetrics) CourseCreated() {
	bm.client.Inc("courses_created_total", nil)
}

func (bm *BusinessMetrics) CoursePublished(courseID string) {
	bm.client.Inc("courses_published_total", map[string]string{"course": courseID})
}

func (bm *BusinessMetrics) CourseUnpublished(courseID string) {
	bm.client.Inc("courses_unpublished_total", map[string]string{"course": courseID})
}

func (bm *BusinessMetrics) CourseDeleted(courseID, mode string) {
	bm.client.Inc("courses_deleted_total", map[string]string{
		"course": courseID,
		"mode":   mode,
	})
}

func (bm *BusinessMetrics) LessonCreated(courseID string) {
	bm.client.Inc("lessons_created_total", map[string]string{"course": courseID})
}

func (bm *BusinessMetrics) LessonDeleted(courseID, mode string) {
	bm.client.Inc("lessons_deleted_total", map[string]string{
		"course": courseID,
		"mode":   mode,
	})
}

func (bm *BusinessMetrics) LessonsReordered(courseID string, count int) {
	bm.client.Add("lessons_reordered_total", float64(count), map[string]string{"course": courseID})
}
