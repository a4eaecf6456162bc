// ABOUTME: Shared interaction fields for reactable entities
// ABOUTME: Defines ReactionKind, Reactions, Comment, and the Engagement mixin
package models

import "time"

// ReactionKind names one of the four supported reactions.
type ReactionKind string

const (
	ReactionLike        ReactionKind = "like"
	ReactionLove        ReactionKind = "love"
	ReactionCelebrate   ReactionKind = "celebrate"
	ReactionInteresting ReactionKind = "interesting"
)

// ReactionKinds lists every supported kind in display order.
func ReactionKinds() []ReactionKind {
	return []ReactionKind{ReactionLike, ReactionLove, ReactionCelebrate, ReactionInteresting}
}

func (k ReactionKind) IsValid() bool {
	switch k {
	case ReactionLike, ReactionLove, ReactionCelebrate, ReactionInteresting:
		return true
	default:
		return false
	}
}

// Reactions maps each reaction kind to its count. Counts never decrease.
type Reactions map[ReactionKind]int

// ZeroReactions returns a map with every kind present at zero.
func ZeroReactions() Reactions {
	r := make(Reactions, 4)
	for _, k := range ReactionKinds() {
		r[k] = 0
	}
	return r
}

// Normalized returns a copy with every kind present, zero where absent.
// Unknown keys from older stored documents are dropped.
func (r Reactions) Normalized() Reactions {
	out := ZeroReactions()
	for _, k := range ReactionKinds() {
		if r != nil {
			out[k] = r[k]
		}
	}
	return out
}

// Total returns the sum of all counts.
func (r Reactions) Total() int {
	n := 0
	for _, c := range r {
		n += c
	}
	return n
}

type Comment struct {
	ID       string    `json:"id"`
	EntityID string    `json:"entity_id"`
	Author   string    `json:"author"`
	Text     string    `json:"text"`
	Date     time.Time `json:"date"`
}

// Engagement carries the interaction fields shared by events, birthdays,
// posts, and press articles. Comments are append-only and chronological.
type Engagement struct {
	Reactions  Reactions `json:"reactions"`
	Comments   []Comment `json:"comments"`
	IsFavorite bool      `json:"is_favorite"`
}

// Normalized returns a copy with a full reaction map and non-nil comments.
func (e Engagement) Normalized() Engagement {
	e.Reactions = e.Reactions.Normalized()
	if e.Comments == nil {
		e.Comments = []Comment{}
	}
	return e
}

// WithReaction returns a copy with the given kind incremented by one.
// The underlying map is cloned so the receiver is left untouched.
func (e Engagement) WithReaction(kind ReactionKind) Engagement {
	e.Reactions = e.Reactions.Normalized()
	e.Reactions[kind]++
	return e
}

// WithComment returns a copy with the comment appended.
func (e Engagement) WithComment(c Comment) Engagement {
	comments := make([]Comment, len(e.Comments), len(e.Comments)+1)
	copy(comments, e.Comments)
	e.Comments = append(comments, c)
	return e
}
