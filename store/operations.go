// ABOUTME: Closed set of mutation operations accepted by the reducer
// ABOUTME: One payload struct per operation kind, sealed by a marker method
package store

import "culturadesk/models"

// Operation is a single named request to change the Document. The set
// is closed: only types in this package implement it, so the reducer's
// type switch covers every kind.
type Operation interface {
	isOperation()
}

type AddEvent struct{ Event models.CulturalEvent }
type UpdateEvent struct{ Event models.CulturalEvent }
type DeleteEvent struct{ ID string }

type AddBirthday struct{ Birthday models.ArtistBirthday }
type UpdateBirthday struct{ Birthday models.ArtistBirthday }
type DeleteBirthday struct{ ID string }

type AddTask struct{ Task models.CulturalTask }
type UpdateTask struct{ Task models.CulturalTask }
type DeleteTask struct{ ID string }

// SetTaskStatus replaces only the status of the matching task. Used by
// board interactions; a full UpdateTask with the same status must land
// the document in the same place.
type SetTaskStatus struct {
	ID     string
	Status string
}

type AddContact struct{ Contact models.Contact }
type UpdateContact struct{ Contact models.Contact }
type DeleteContact struct{ ID string }

type AddPressArticle struct{ Article models.PressArticle }
type UpdatePressArticle struct{ Article models.PressArticle }
type DeletePressArticle struct{ ID string }

type AddPost struct{ Post models.Post }
type UpdatePost struct{ Post models.Post }
type DeletePost struct{ ID string }

// AddReaction increments one reaction counter by exactly one on
// whichever reactable collection holds the entity.
type AddReaction struct {
	EntityID string
	Kind     models.ReactionKind
}

// AddComment appends a comment to the matching entity. The comment's
// id and date are the caller's responsibility.
type AddComment struct {
	EntityID string
	Comment  models.Comment
}

// ToggleFavorite flips the favorite flag on the matching entity.
type ToggleFavorite struct{ EntityID string }

type Follow struct{ TargetUserID string }
type Unfollow struct{ TargetUserID string }

type AddNotification struct{ Notification models.Notification }
type MarkNotificationRead struct{ ID string }

func (AddEvent) isOperation()             {}
func (UpdateEvent) isOperation()          {}
func (DeleteEvent) isOperation()          {}
func (AddBirthday) isOperation()          {}
func (UpdateBirthday) isOperation()       {}
func (DeleteBirthday) isOperation()       {}
func (AddTask) isOperation()              {}
func (UpdateTask) isOperation()           {}
func (DeleteTask) isOperation()           {}
func (SetTaskStatus) isOperation()        {}
func (AddContact) isOperation()           {}
func (UpdateContact) isOperation()        {}
func (DeleteContact) isOperation()        {}
func (AddPressArticle) isOperation()      {}
func (UpdatePressArticle) isOperation()   {}
func (DeletePressArticle) isOperation()   {}
func (AddPost) isOperation()              {}
func (UpdatePost) isOperation()           {}
func (DeletePost) isOperation()           {}
func (AddReaction) isOperation()          {}
func (AddComment) isOperation()           {}
func (ToggleFavorite) isOperation()       {}
func (Follow) isOperation()               {}
func (Unfollow) isOperation()             {}
func (AddNotification) isOperation()      {}
func (MarkNotificationRead) isOperation() {}
