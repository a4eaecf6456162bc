// ABOUTME: Pure reducer mapping (Document, Operation) to the next Document
// ABOUTME: Copy-on-write throughout; unknown ids and malformed payloads are no-ops
package store

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/log"

	"culturadesk/models"
)

var reducerLog = log.Default().WithPrefix("store")

// entity constrains the generic helpers to record types carrying an id.
type entity interface {
	EntityID() string
}

func prepend[T any](items []T, item T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, item)
	return append(out, items...)
}

// replaceByID swaps in item wherever its id already exists. The input
// slice is never written to; a fresh slice is returned on a match.
func replaceByID[T entity](items []T, item T) ([]T, bool) {
	for i := range items {
		if items[i].EntityID() == item.EntityID() {
			out := make([]T, len(items))
			copy(out, items)
			out[i] = item
			return out, true
		}
	}
	return items, false
}

func removeByID[T entity](items []T, id string) ([]T, bool) {
	for i := range items {
		if items[i].EntityID() == id {
			out := make([]T, 0, len(items)-1)
			out = append(out, items[:i]...)
			return append(out, items[i+1:]...), true
		}
	}
	return items, false
}

func patchByID[T entity](items []T, id string, patch func(T) T) ([]T, bool) {
	for i := range items {
		if items[i].EntityID() == id {
			out := make([]T, len(items))
			copy(out, items)
			out[i] = patch(out[i])
			return out, true
		}
	}
	return items, false
}

// patchEngagement applies patch to the first entity with the given id,
// scanning events, birthdays, posts, then press articles. Ids are
// globally unique by construction, so the first match is assumed to be
// the only one.
func patchEngagement(doc *models.Document, id string, patch func(models.Engagement) models.Engagement) bool {
	if out, ok := patchByID(doc.Events, id, func(e models.CulturalEvent) models.CulturalEvent {
		e.Engagement = patch(e.Engagement)
		return e
	}); ok {
		doc.Events = out
		return true
	}
	if out, ok := patchByID(doc.Birthdays, id, func(b models.ArtistBirthday) models.ArtistBirthday {
		b.Engagement = patch(b.Engagement)
		return b
	}); ok {
		doc.Birthdays = out
		return true
	}
	if out, ok := patchByID(doc.Posts, id, func(p models.Post) models.Post {
		p.Engagement = patch(p.Engagement)
		return p
	}); ok {
		doc.Posts = out
		return true
	}
	if out, ok := patchByID(doc.PressArticles, id, func(a models.PressArticle) models.PressArticle {
		a.Engagement = patch(a.Engagement)
		return a
	}); ok {
		doc.PressArticles = out
		return true
	}
	return false
}

// engagementForAdd keeps caller-supplied reactions and comments, fills
// the gaps with zeroes, and always clears the favorite flag.
func engagementForAdd(e models.Engagement) models.Engagement {
	e = e.Normalized()
	e.IsFavorite = false
	return e
}

func appendUnique(ids []string, id string) []string {
	out := make([]string, len(ids), len(ids)+1)
	copy(out, ids)
	if !slices.Contains(out, id) {
		out = append(out, id)
	}
	return out
}

func removeID(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// Apply computes the next document for one operation. It never mutates
// doc, never panics past its own boundary, and reports whether anything
// actually changed; callers keep the old document when it did not.
func Apply(doc models.Document, op Operation) (next models.Document, changed bool) {
	defer func() {
		if r := recover(); r != nil {
			reducerLog.Warn("operation dropped after internal error", "op", fmt.Sprintf("%T", op), "err", r)
			next, changed = doc, false
		}
	}()

	switch op := op.(type) {
	case AddEvent:
		ev := op.Event
		ev.Engagement = engagementForAdd(ev.Engagement)
		doc.Events = prepend(doc.Events, ev)
		return doc, true

	case UpdateEvent:
		out, ok := replaceByID(doc.Events, op.Event)
		doc.Events = out
		return doc, ok

	case DeleteEvent:
		out, ok := removeByID(doc.Events, op.ID)
		doc.Events = out
		return doc, ok

	case AddBirthday:
		b := op.Birthday
		b.Engagement = engagementForAdd(b.Engagement)
		doc.Birthdays = prepend(doc.Birthdays, b)
		return doc, true

	case UpdateBirthday:
		out, ok := replaceByID(doc.Birthdays, op.Birthday)
		doc.Birthdays = out
		return doc, ok

	case DeleteBirthday:
		out, ok := removeByID(doc.Birthdays, op.ID)
		doc.Birthdays = out
		return doc, ok

	case AddTask:
		doc.Tasks = prepend(doc.Tasks, op.Task)
		return doc, true

	case UpdateTask:
		out, ok := replaceByID(doc.Tasks, op.Task)
		doc.Tasks = out
		return doc, ok

	case DeleteTask:
		out, ok := removeByID(doc.Tasks, op.ID)
		doc.Tasks = out
		return doc, ok

	case SetTaskStatus:
		out, ok := patchByID(doc.Tasks, op.ID, func(t models.CulturalTask) models.CulturalTask {
			t.Status = op.Status
			return t
		})
		doc.Tasks = out
		return doc, ok

	case AddContact:
		doc.Contacts = prepend(doc.Contacts, op.Contact)
		return doc, true

	case UpdateContact:
		out, ok := replaceByID(doc.Contacts, op.Contact)
		doc.Contacts = out
		return doc, ok

	case DeleteContact:
		out, ok := removeByID(doc.Contacts, op.ID)
		doc.Contacts = out
		return doc, ok

	case AddPressArticle:
		a := op.Article
		a.Engagement = engagementForAdd(a.Engagement)
		doc.PressArticles = prepend(doc.PressArticles, a)
		return doc, true

	case UpdatePressArticle:
		out, ok := replaceByID(doc.PressArticles, op.Article)
		doc.PressArticles = out
		return doc, ok

	case DeletePressArticle:
		out, ok := removeByID(doc.PressArticles, op.ID)
		doc.PressArticles = out
		return doc, ok

	case AddPost:
		p := op.Post
		p.Engagement = engagementForAdd(p.Engagement)
		doc.Posts = prepend(doc.Posts, p)
		return doc, true

	case UpdatePost:
		out, ok := replaceByID(doc.Posts, op.Post)
		doc.Posts = out
		return doc, ok

	case DeletePost:
		out, ok := removeByID(doc.Posts, op.ID)
		doc.Posts = out
		return doc, ok

	case AddReaction:
		if !op.Kind.IsValid() {
			reducerLog.Warn("unknown reaction kind ignored", "kind", op.Kind)
			return doc, false
		}
		ok := patchEngagement(&doc, op.EntityID, func(e models.Engagement) models.Engagement {
			return e.WithReaction(op.Kind)
		})
		return doc, ok

	case AddComment:
		ok := patchEngagement(&doc, op.EntityID, func(e models.Engagement) models.Engagement {
			return e.WithComment(op.Comment)
		})
		return doc, ok

	case ToggleFavorite:
		ok := patchEngagement(&doc, op.EntityID, func(e models.Engagement) models.Engagement {
			e.IsFavorite = !e.IsFavorite
			return e
		})
		return doc, ok

	case Follow:
		target := op.TargetUserID
		if target == "" || slices.Contains(doc.CurrentUser.Following, target) {
			return doc, false
		}
		cu := doc.CurrentUser
		cu.Following = appendUnique(cu.Following, target)
		doc.CurrentUser = cu
		out, ok := patchByID(doc.Users, target, func(u models.User) models.User {
			u.Followers = appendUnique(u.Followers, cu.ID)
			return u
		})
		if ok {
			doc.Users = out
		} else {
			// Known asymmetry: the peer profile is absent, so only the
			// current user's side is recorded.
			reducerLog.Debug("follow target not in users; follower side skipped", "user", target)
		}
		return doc, true

	case Unfollow:
		target := op.TargetUserID
		if target == "" || !slices.Contains(doc.CurrentUser.Following, target) {
			return doc, false
		}
		cu := doc.CurrentUser
		cu.Following = removeID(cu.Following, target)
		doc.CurrentUser = cu
		out, ok := patchByID(doc.Users, target, func(u models.User) models.User {
			u.Followers = removeID(u.Followers, cu.ID)
			return u
		})
		if ok {
			doc.Users = out
		} else {
			reducerLog.Debug("unfollow target not in users; follower side skipped", "user", target)
		}
		return doc, true

	case AddNotification:
		doc.Notifications = prepend(doc.Notifications, op.Notification)
		return doc, true

	case MarkNotificationRead:
		already := false
		out, ok := patchByID(doc.Notifications, op.ID, func(n models.Notification) models.Notification {
			already = n.Read
			n.Read = true
			return n
		})
		if !ok || already {
			return doc, false
		}
		doc.Notifications = out
		return doc, true

	default:
		reducerLog.Warn("unrecognized operation ignored", "op", fmt.Sprintf("%T", op))
		return doc, false
	}
}
