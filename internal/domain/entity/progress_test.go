package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCourseProgress_RecordLecture(t *testing.T) {
	progress := &CourseProgress{}

	changed := progress.RecordLecture("lec-1", 2)
	assert.True(t, changed)
	assert.Equal(t, []string{"lec-1"}, progress.LecturesCompleted)
	assert.False(t, progress.Completed)

	// Re-recording the same lecture mutates nothing.
	changed = progress.RecordLecture("lec-1", 2)
	assert.False(t, changed)
	assert.Equal(t, []string{"lec-1"}, progress.LecturesCompleted)

	changed = progress.RecordLecture("lec-2", 2)
	assert.True(t, changed)
	assert.True(t, progress.Completed)
}

func TestCourseProgress_RecordLecture_ZeroLectureCourseNeverCompletes(t *testing.T) {
	progress := &CourseProgress{}

	progress.RecordLecture("stray", 0)
	assert.False(t, progress.Completed)
}

func TestCourseProgress_HasLecture(t *testing.T) {
	progress := &CourseProgress{LecturesCompleted: []string{"lec-1"}}

	assert.True(t, progress.HasLecture("lec-1"))
	assert.False(t, progress.HasLecture("lec-2"))
}
