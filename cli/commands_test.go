// ABOUTME: Tests for CLI commands end to end against an in-memory store
// ABOUTME: Commands build operations, dispatch them, and the store persists
package cli

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"culturadesk/models"
	"culturadesk/storage"
	"culturadesk/store"
)

func newTestStore(t *testing.T) (*store.Store, *storage.MemorySlot) {
	t.Helper()
	slot := storage.NewMemorySlot()
	return store.New(slot, log.New(io.Discard)), slot
}

func TestAddEventCommand(t *testing.T) {
	st, slot := newTestStore(t)

	err := AddEventCommand(st, []string{
		"--title", "Spring Concert",
		"--date", "2026-03-14 19:00",
		"--type", models.EventTypeConcert,
		"--discipline", models.DisciplineMusic,
		"--price", "12.50",
		"--tags", "music,spring",
	})
	require.NoError(t, err)

	doc := st.State()
	require.Len(t, doc.Events, 1)
	ev := doc.Events[0]
	assert.NotEmpty(t, ev.ID)
	assert.Equal(t, "Spring Concert", ev.Title)
	assert.Equal(t, models.CostPaid, ev.Cost.Type)
	assert.Equal(t, []string{"music", "spring"}, ev.Tags)
	assert.Equal(t, models.ZeroReactions(), ev.Reactions)

	require.Len(t, doc.Notifications, 1, "adding an event also raises a notification")
	assert.Equal(t, models.NotificationEvent, doc.Notifications[0].Kind)
	assert.Equal(t, ev.ID, doc.Notifications[0].RelatedID)

	_, found, err := slot.Get()
	require.NoError(t, err)
	assert.True(t, found, "command result must be persisted")
}

func TestAddEventCommandRequiresTitleAndDate(t *testing.T) {
	st, _ := newTestStore(t)

	err := AddEventCommand(st, []string{"--date", "2026-01-01"})
	require.Error(t, err)

	err = AddEventCommand(st, []string{"--title", "No date"})
	require.Error(t, err)

	assert.Empty(t, st.State().Events)
}

func TestTaskCommandsScenario(t *testing.T) {
	st, _ := newTestStore(t)

	require.NoError(t, AddTaskCommand(st, []string{
		"--title", "Book venue",
		"--due", "2026-06-01",
		"--checklist", "call theater,sign contract",
	}))

	doc := st.State()
	require.Len(t, doc.Tasks, 1)
	task := doc.Tasks[0]
	assert.Equal(t, models.TaskStatusPending, task.Status)
	require.Len(t, task.Checklist, 2)
	assert.False(t, task.Checklist[0].Completed)

	require.NoError(t, SetTaskStatusCommand(st, []string{
		"--id", task.ID,
		"--status", models.TaskStatusInProgress,
	}))

	got := st.State().Tasks[0]
	assert.Equal(t, models.TaskStatusInProgress, got.Status)
	assert.Equal(t, task.Title, got.Title)
	assert.Equal(t, task.Checklist, got.Checklist)
}

func TestPostAndReactCommands(t *testing.T) {
	st, _ := newTestStore(t)

	require.NoError(t, PostCommand(st, []string{
		"--content", "opening night at https://example.com/teatro",
	}))

	doc := st.State()
	require.Len(t, doc.Posts, 1)
	post := doc.Posts[0]
	assert.Equal(t, models.BootstrapUserID, post.AuthorID)
	require.Len(t, post.Links, 1)
	assert.Equal(t, "https://example.com/teatro", post.Links[0].URL)

	require.NoError(t, ReactCommand(st, []string{"--id", post.ID, "--kind", "love"}))
	require.NoError(t, ReactCommand(st, []string{"--id", post.ID, "--kind", "love"}))

	assert.Equal(t, 2, st.State().Posts[0].Reactions[models.ReactionLove])

	err := ReactCommand(st, []string{"--id", post.ID, "--kind", "dislike"})
	require.Error(t, err, "unknown reactions are rejected at the form")
}

func TestPostCommandRejectsOversizedContent(t *testing.T) {
	st, _ := newTestStore(t)

	long := make([]rune, models.MaxPostLength+1)
	for i := range long {
		long[i] = 'a'
	}

	err := PostCommand(st, []string{"--content", string(long)})
	require.Error(t, err)
	assert.Empty(t, st.State().Posts)
}

func TestEditAndDeletePostCommands(t *testing.T) {
	st, _ := newTestStore(t)

	require.NoError(t, PostCommand(st, []string{"--content", "first draft"}))
	id := st.State().Posts[0].ID

	require.NoError(t, EditPostCommand(st, []string{
		"--id", id, "--content", "final version, see https://example.com/review",
	}))

	post := st.State().Posts[0]
	assert.Equal(t, "final version, see https://example.com/review", post.Content)
	require.Len(t, post.Links, 1, "links are re-extracted on edit")

	err := EditPostCommand(st, []string{"--id", "missing", "--content", "x"})
	require.Error(t, err)

	require.NoError(t, DeletePostCommand(st, []string{"--id", id}))
	assert.Empty(t, st.State().Posts)
}

func TestCommentCommand(t *testing.T) {
	st, _ := newTestStore(t)

	require.NoError(t, AddBirthdayCommand(st, []string{
		"--name", "Frida", "--date", "1907-07-06",
	}))
	id := st.State().Birthdays[0].ID

	require.NoError(t, CommentCommand(st, []string{"--id", id, "--text", "Happy birthday!"}))

	comments := st.State().Birthdays[0].Comments
	require.Len(t, comments, 1)
	assert.Equal(t, "Happy birthday!", comments[0].Text)
	assert.Equal(t, id, comments[0].EntityID)
	assert.False(t, comments[0].Date.IsZero(), "the form stamps the comment date")
}

func TestFollowCommands(t *testing.T) {
	st, _ := newTestStore(t)

	require.NoError(t, FollowCommand(st, []string{"--id", "u-2"}))
	assert.Contains(t, st.State().CurrentUser.Following, "u-2")

	require.NoError(t, UnfollowCommand(st, []string{"--id", "u-2"}))
	assert.NotContains(t, st.State().CurrentUser.Following, "u-2")
}

func TestNotificationCommands(t *testing.T) {
	st, _ := newTestStore(t)

	require.NoError(t, AddTaskCommand(st, []string{"--title", "T", "--due", "2026-01-01"}))
	require.Len(t, st.State().Notifications, 1)
	n := st.State().Notifications[0]
	assert.False(t, n.Read)

	require.NoError(t, ReadNotificationCommand(st, []string{"--id", n.ID}))
	assert.True(t, st.State().Notifications[0].Read)
}
