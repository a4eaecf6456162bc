// ABOUTME: Root document type holding the entire organizer state
// ABOUTME: Provides EmptyDocument and the bootstrap current-user profile
package models

// BootstrapUserID identifies the profile created when no prior state exists.
const BootstrapUserID = "me"

// Document is the single root object the store owns. Feed collections
// (events, posts) are most-recent-first; everything else keeps
// insertion order. Holders of a Document must treat it as a snapshot that
// gets replaced, never edited in place.
type Document struct {
	Events        []CulturalEvent  `json:"events"`
	Birthdays     []ArtistBirthday `json:"birthdays"`
	Tasks         []CulturalTask   `json:"tasks"`
	Contacts      []Contact        `json:"contacts"`
	Notifications []Notification   `json:"notifications"`
	PressArticles []PressArticle   `json:"press_articles"`
	Posts         []Post           `json:"posts"`
	CurrentUser   User             `json:"current_user"`
	Users         []User           `json:"users"`
}

// BootstrapUser returns the default current-user profile: empty
// follower, following, and post lists.
func BootstrapUser() User {
	return User{
		ID:        BootstrapUserID,
		Username:  "me",
		Followers: []string{},
		Following: []string{},
		PostIDs:   []string{},
	}
}

// EmptyDocument returns the canonical empty state: all collections
// empty (not nil, so it round-trips through the codec unchanged) and a
// bootstrap current user.
func EmptyDocument() Document {
	return Document{
		Events:        []CulturalEvent{},
		Birthdays:     []ArtistBirthday{},
		Tasks:         []CulturalTask{},
		Contacts:      []Contact{},
		Notifications: []Notification{},
		PressArticles: []PressArticle{},
		Posts:         []Post{},
		CurrentUser:   BootstrapUser(),
		Users:         []User{},
	}
}
