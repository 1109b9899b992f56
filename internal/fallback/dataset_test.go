package fallback

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/eduverse-api/internal/models"
)

func TestDatasetTasksRelativeToClock(t *testing.T) {
	now := time.Date(2024, 3, 12, 8, 0, 0, 0, time.UTC)
	d := New(now)

	tasks := d.Tasks()
	require.Len(t, tasks, 3)
	assert.Equal(t, now.AddDate(0, 0, 1), tasks[0].DueDate)
	assert.Equal(t, models.TaskStatusCompleted, tasks[2].Status)
	assert.True(t, tasks[2].DueDate.Before(now))
	for _, task := range tasks {
		assert.Equal(t, models.ProvenanceSeeded, task.Provenance)
	}
}

func TestDatasetReturnsCopies(t *testing.T) {
	d := New(time.Now())

	habits := d.Habits()
	habits[0].Streak = 99
	habits[0].CompletedDates = append(habits[0].CompletedDates, "2024-01-01")

	fresh := d.Habits()
	assert.Equal(t, 12, fresh[0].Streak)
	assert.Empty(t, fresh[0].CompletedDates)

	users := d.Users()
	*users[0].Level = 42
	assert.Equal(t, 5, *d.Users()[0].Level)

	anns := d.Announcements()
	anns[0].Tags[0] = "changed"
	assert.Equal(t, "Events", d.Announcements()[0].Tags[0])
}

func TestDatasetMessagesByConversation(t *testing.T) {
	d := New(time.Now())

	assert.Len(t, d.Messages("c1"), 3)
	assert.Len(t, d.Messages("c2"), 1)
	missing := d.Messages("nope")
	assert.NotNil(t, missing)
	assert.Empty(t, missing)
}

func TestDatasetIsSeeded(t *testing.T) {
	d := New(time.Now())

	assert.True(t, d.IsSeeded(KindHabit, "h1"))
	assert.True(t, d.IsSeeded(KindMessage, "m3"))
	assert.False(t, d.IsSeeded(KindHabit, "t1"))
	assert.False(t, d.IsSeeded(KindTask, "7a1c0b0e-uuid"))

	var nilSet *Dataset
	assert.False(t, nilSet.IsSeeded(KindTask, "t1"))
}
