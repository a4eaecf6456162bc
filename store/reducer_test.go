// ABOUTME: Tests for the mutation reducer
// ABOUTME: Purity, per-operation semantics, and edge policies
package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"culturadesk/models"
)

func newEvent(id, title string) models.CulturalEvent {
	return models.CulturalEvent{
		ID:         id,
		Title:      title,
		EventType:  models.EventTypePerformance,
		Discipline: models.DisciplineTheater,
		Date:       time.Date(2026, time.May, 1, 20, 0, 0, 0, time.UTC),
		Cost:       models.EventCost{Type: models.CostFree},
	}
}

func newPost(id, content string) models.Post {
	return models.Post{
		ID:       id,
		AuthorID: models.BootstrapUserID,
		Content:  content,
		Date:     time.Date(2026, time.May, 2, 9, 0, 0, 0, time.UTC),
	}
}

func TestApplyIsPure(t *testing.T) {
	doc := fixtureDocument()
	before := fixtureDocument()

	ops := []Operation{
		AddEvent{Event: newEvent("ev-new", "New")},
		UpdateEvent{Event: newEvent("ev-1", "Renamed")},
		DeleteEvent{ID: "ev-1"},
		SetTaskStatus{ID: "t-1", Status: models.TaskStatusCompleted},
		AddReaction{EntityID: "post-1", Kind: models.ReactionLove},
		AddComment{EntityID: "ev-1", Comment: models.Comment{ID: "c-x", EntityID: "ev-1", Author: "Z", Text: "hi"}},
		ToggleFavorite{EntityID: "a-1"},
		Follow{TargetUserID: "u-2"},
		Unfollow{TargetUserID: "u-2"},
		MarkNotificationRead{ID: "n-1"},
	}

	for _, op := range ops {
		first, c1 := Apply(doc, op)
		second, c2 := Apply(doc, op)
		assert.Equal(t, first, second, "double apply must agree for %T", op)
		assert.Equal(t, c1, c2)
		assert.Equal(t, before, doc, "input document must never be mutated by %T", op)
	}
}

func TestAddEventPrependsWithZeroedEngagement(t *testing.T) {
	doc := fixtureDocument()

	next, changed := Apply(doc, AddEvent{Event: newEvent("ev-2", "Second")})
	require.True(t, changed)
	require.Len(t, next.Events, 2)

	first := next.Events[0]
	assert.Equal(t, "ev-2", first.ID, "new events go to the front of the feed")
	assert.Equal(t, models.ZeroReactions(), first.Reactions)
	assert.Empty(t, first.Comments)
	assert.False(t, first.IsFavorite)

	assert.Equal(t, "ev-1", next.Events[1].ID)
}

func TestAddPostPreservesSuppliedEngagement(t *testing.T) {
	doc := models.EmptyDocument()

	p := newPost("p-seed", "imported")
	p.Reactions = models.Reactions{models.ReactionLike: 7}
	p.Comments = []models.Comment{{ID: "c-seed", EntityID: "p-seed", Author: "A", Text: "old"}}
	p.IsFavorite = true

	next, changed := Apply(doc, AddPost{Post: p})
	require.True(t, changed)
	require.Len(t, next.Posts, 1)

	got := next.Posts[0]
	assert.Equal(t, 7, got.Reactions[models.ReactionLike], "supplied counts preserved")
	assert.Equal(t, 0, got.Reactions[models.ReactionCelebrate], "absent kinds zero-filled")
	assert.Len(t, got.Comments, 1, "supplied comments preserved")
	assert.False(t, got.IsFavorite, "favorite flag always starts false")
}

func TestUpdateEventReplacesWholesale(t *testing.T) {
	doc := fixtureDocument()

	replacement := newEvent("ev-1", "Renamed Concert")
	next, changed := Apply(doc, UpdateEvent{Event: replacement})
	require.True(t, changed)
	require.Len(t, next.Events, 1)
	assert.Equal(t, replacement, next.Events[0])
}

func TestUpdateUnknownIDIsNoOp(t *testing.T) {
	doc := fixtureDocument()

	next, changed := Apply(doc, UpdateEvent{Event: newEvent("does-not-exist", "Ghost")})
	assert.False(t, changed)
	assert.Equal(t, doc, next)

	next, changed = Apply(doc, UpdateTask{Task: models.CulturalTask{ID: "nope"}})
	assert.False(t, changed)
	assert.Equal(t, doc, next)
}

func TestDeleteIsIdempotent(t *testing.T) {
	doc := fixtureDocument()

	once, changed := Apply(doc, DeleteEvent{ID: "ev-1"})
	require.True(t, changed)
	assert.Empty(t, once.Events)

	twice, changed := Apply(once, DeleteEvent{ID: "ev-1"})
	assert.False(t, changed)
	assert.Equal(t, once, twice)
}

func TestReactionMonotonicity(t *testing.T) {
	doc := fixtureDocument()
	start := doc.Events[0].Reactions[models.ReactionLike]

	const n = 5
	for i := 0; i < n; i++ {
		var changed bool
		doc, changed = Apply(doc, AddReaction{EntityID: "ev-1", Kind: models.ReactionLike})
		require.True(t, changed)
	}

	assert.Equal(t, start+n, doc.Events[0].Reactions[models.ReactionLike])
}

func TestAddReactionUnknownIDIsNoOp(t *testing.T) {
	doc := fixtureDocument()
	next, changed := Apply(doc, AddReaction{EntityID: "ghost", Kind: models.ReactionLike})
	assert.False(t, changed)
	assert.Equal(t, doc, next)
}

func TestAddReactionInvalidKindIsNoOp(t *testing.T) {
	doc := fixtureDocument()
	next, changed := Apply(doc, AddReaction{EntityID: "ev-1", Kind: "dislike"})
	assert.False(t, changed)
	assert.Equal(t, doc, next)
}

func TestAddReactionReachesEveryCollection(t *testing.T) {
	doc := fixtureDocument()

	for _, id := range []string{"ev-1", "b-1", "post-1", "a-1"} {
		next, changed := Apply(doc, AddReaction{EntityID: id, Kind: models.ReactionCelebrate})
		require.True(t, changed, "reaction must land on %s", id)
		doc = next
	}

	assert.Equal(t, 1, doc.Events[0].Reactions[models.ReactionCelebrate])
	assert.Equal(t, 1, doc.Birthdays[0].Reactions[models.ReactionCelebrate])
	assert.Equal(t, 1, doc.Posts[0].Reactions[models.ReactionCelebrate])
	assert.Equal(t, 1, doc.PressArticles[0].Reactions[models.ReactionCelebrate])
}

func TestAddCommentAppendsChronologically(t *testing.T) {
	doc := fixtureDocument()

	c := models.Comment{
		ID: "c-2", EntityID: "ev-1", Author: "Marta", Text: "Count me in",
		Date: time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC),
	}
	next, changed := Apply(doc, AddComment{EntityID: "ev-1", Comment: c})
	require.True(t, changed)

	comments := next.Events[0].Comments
	require.Len(t, comments, 2)
	assert.Equal(t, "c-1", comments[0].ID, "existing comments keep their order")
	assert.Equal(t, "c-2", comments[1].ID, "new comments append at the end")
}

func TestToggleFavoriteFlips(t *testing.T) {
	doc := fixtureDocument()
	require.True(t, doc.Events[0].IsFavorite)

	next, changed := Apply(doc, ToggleFavorite{EntityID: "ev-1"})
	require.True(t, changed)
	assert.False(t, next.Events[0].IsFavorite)

	again, changed := Apply(next, ToggleFavorite{EntityID: "ev-1"})
	require.True(t, changed)
	assert.True(t, again.Events[0].IsFavorite)
}

// Add a task, move it on the board, everything else stays.
func TestTaskStatusScenario(t *testing.T) {
	doc := models.EmptyDocument()

	task := models.CulturalTask{
		ID:       "t1",
		Title:    "Book venue",
		Status:   models.TaskStatusPending,
		Priority: models.PriorityMedium,
		DueDate:  time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC),
	}
	doc, changed := Apply(doc, AddTask{Task: task})
	require.True(t, changed)

	doc, changed = Apply(doc, SetTaskStatus{ID: "t1", Status: models.TaskStatusInProgress})
	require.True(t, changed)

	require.Len(t, doc.Tasks, 1)
	got := doc.Tasks[0]
	assert.Equal(t, models.TaskStatusInProgress, got.Status)

	want := task
	want.Status = models.TaskStatusInProgress
	assert.Equal(t, want, got, "only the status may differ from creation")
}

func TestSetTaskStatusMatchesFullUpdate(t *testing.T) {
	doc := fixtureDocument()

	viaStatus, changed := Apply(doc, SetTaskStatus{ID: "t-1", Status: models.TaskStatusCompleted})
	require.True(t, changed)

	full := doc.Tasks[0]
	full.Status = models.TaskStatusCompleted
	viaUpdate, changed := Apply(doc, UpdateTask{Task: full})
	require.True(t, changed)

	assert.Equal(t, viaUpdate.Tasks, viaStatus.Tasks,
		"board move and full update must land in the same place")
}

func TestSetTaskStatusUnknownIDIsNoOp(t *testing.T) {
	doc := fixtureDocument()
	next, changed := Apply(doc, SetTaskStatus{ID: "ghost", Status: models.TaskStatusCompleted})
	assert.False(t, changed)
	assert.Equal(t, doc, next)
}

// Two loves on a fresh post land only on love.
func TestPostReactionScenario(t *testing.T) {
	doc := models.EmptyDocument()

	doc, changed := Apply(doc, AddPost{Post: newPost("p1", "hello")})
	require.True(t, changed)

	doc, _ = Apply(doc, AddReaction{EntityID: "p1", Kind: models.ReactionLove})
	doc, _ = Apply(doc, AddReaction{EntityID: "p1", Kind: models.ReactionLove})

	got := doc.Posts[0].Reactions
	assert.Equal(t, 2, got[models.ReactionLove])
	assert.Equal(t, 0, got[models.ReactionLike])
	assert.Equal(t, 0, got[models.ReactionCelebrate])
	assert.Equal(t, 0, got[models.ReactionInteresting])
}

func TestEditAndDeletePost(t *testing.T) {
	doc := models.EmptyDocument()
	doc, _ = Apply(doc, AddPost{Post: newPost("p1", "hello")})
	doc, _ = Apply(doc, AddReaction{EntityID: "p1", Kind: models.ReactionLike})

	edited := doc.Posts[0]
	edited.Content = "hello again"
	doc, changed := Apply(doc, UpdatePost{Post: edited})
	require.True(t, changed)
	assert.Equal(t, "hello again", doc.Posts[0].Content)
	assert.Equal(t, 1, doc.Posts[0].Reactions[models.ReactionLike], "reactions survive an edit")

	doc, changed = Apply(doc, DeletePost{ID: "p1"})
	require.True(t, changed)
	assert.Empty(t, doc.Posts)
}

func TestDeleteTaskRemovesOnlyTarget(t *testing.T) {
	doc := models.EmptyDocument()
	doc.Tasks = []models.CulturalTask{
		{ID: "t-1", Title: "Book venue", Status: models.TaskStatusPending},
		{ID: "t-2", Title: "Print flyers", Status: models.TaskStatusPending},
	}

	doc, changed := Apply(doc, DeleteTask{ID: "t-1"})
	require.True(t, changed)
	require.Len(t, doc.Tasks, 1)
	assert.Equal(t, "t-2", doc.Tasks[0].ID)
}

func TestFollowUpdatesBothSides(t *testing.T) {
	doc := models.EmptyDocument()
	doc.Users = []models.User{{
		ID: "u-2", Username: "ana",
		Followers: []string{}, Following: []string{}, PostIDs: []string{},
	}}

	next, changed := Apply(doc, Follow{TargetUserID: "u-2"})
	require.True(t, changed)
	assert.Contains(t, next.CurrentUser.Following, "u-2")
	assert.Contains(t, next.Users[0].Followers, models.BootstrapUserID)

	// Following again is a no-op.
	again, changed := Apply(next, Follow{TargetUserID: "u-2"})
	assert.False(t, changed)
	assert.Equal(t, next, again)
}

func TestFollowMissingPeerUpdatesCurrentUserOnly(t *testing.T) {
	doc := models.EmptyDocument()

	next, changed := Apply(doc, Follow{TargetUserID: "stranger"})
	require.True(t, changed)
	assert.Contains(t, next.CurrentUser.Following, "stranger")
	assert.Empty(t, next.Users, "no peer record is invented")
}

func TestUnfollowReversesFollow(t *testing.T) {
	doc := models.EmptyDocument()
	doc.Users = []models.User{{
		ID: "u-2", Username: "ana",
		Followers: []string{}, Following: []string{}, PostIDs: []string{},
	}}

	followed, _ := Apply(doc, Follow{TargetUserID: "u-2"})
	unfollowed, changed := Apply(followed, Unfollow{TargetUserID: "u-2"})
	require.True(t, changed)

	assert.NotContains(t, unfollowed.CurrentUser.Following, "u-2")
	assert.NotContains(t, unfollowed.Users[0].Followers, models.BootstrapUserID)

	// Unfollowing someone never followed is a no-op.
	next, changed := Apply(unfollowed, Unfollow{TargetUserID: "u-2"})
	assert.False(t, changed)
	assert.Equal(t, unfollowed, next)
}

func TestNotificationLifecycle(t *testing.T) {
	doc := models.EmptyDocument()

	n := models.Notification{
		ID: "n-1", Title: "New event", Kind: models.NotificationEvent,
		Date: time.Date(2026, time.May, 1, 8, 0, 0, 0, time.UTC), RelatedID: "ev-1",
	}
	doc, changed := Apply(doc, AddNotification{Notification: n})
	require.True(t, changed)
	require.Len(t, doc.Notifications, 1)
	assert.False(t, doc.Notifications[0].Read)

	doc, changed = Apply(doc, MarkNotificationRead{ID: "n-1"})
	require.True(t, changed)
	assert.True(t, doc.Notifications[0].Read)

	// Marking an already-read notification changes nothing.
	next, changed := Apply(doc, MarkNotificationRead{ID: "n-1"})
	assert.False(t, changed)
	assert.Equal(t, doc, next)
}

func TestBirthdayContactArticleCRUD(t *testing.T) {
	doc := models.EmptyDocument()

	b := models.ArtistBirthday{
		ID: "b-1", Name: "Pablo",
		BirthDate: time.Date(1881, time.October, 25, 0, 0, 0, 0, time.UTC),
	}
	doc, changed := Apply(doc, AddBirthday{Birthday: b})
	require.True(t, changed)
	assert.Equal(t, "b-1", doc.Birthdays[0].ID)
	assert.Equal(t, models.ZeroReactions(), doc.Birthdays[0].Reactions)

	b.Role = "sculptor"
	doc, changed = Apply(doc, UpdateBirthday{Birthday: b})
	require.True(t, changed)
	assert.Equal(t, "sculptor", doc.Birthdays[0].Role)

	c := models.Contact{ID: "p-1", Name: "Marta"}
	doc, changed = Apply(doc, AddContact{Contact: c})
	require.True(t, changed)

	c.Phone = "555-0199"
	doc, changed = Apply(doc, UpdateContact{Contact: c})
	require.True(t, changed)
	assert.Equal(t, "555-0199", doc.Contacts[0].Phone)

	doc, changed = Apply(doc, DeleteContact{ID: "p-1"})
	require.True(t, changed)
	assert.Empty(t, doc.Contacts)

	a := models.PressArticle{ID: "a-1", Title: "Review", Date: time.Date(2026, time.May, 3, 0, 0, 0, 0, time.UTC)}
	doc, changed = Apply(doc, AddPressArticle{Article: a})
	require.True(t, changed)
	assert.Equal(t, models.ZeroReactions(), doc.PressArticles[0].Reactions)

	a.Title = "Season review"
	doc, changed = Apply(doc, UpdatePressArticle{Article: a})
	require.True(t, changed)
	assert.Equal(t, "Season review", doc.PressArticles[0].Title)

	doc, changed = Apply(doc, DeletePressArticle{ID: "a-1"})
	require.True(t, changed)
	assert.Empty(t, doc.PressArticles)

	doc, changed = Apply(doc, DeleteBirthday{ID: "b-1"})
	require.True(t, changed)
	assert.Empty(t, doc.Birthdays)
}

func TestApplyUnknownOperationIsNoOp(t *testing.T) {
	doc := fixtureDocument()

	next, changed := Apply(doc, nil)
	assert.False(t, changed)
	assert.Equal(t, doc, next)
}
