// ABOUTME: Data models for cultural organizer entities
// ABOUTME: Defines CulturalEvent, ArtistBirthday, CulturalTask, Contact, PressArticle, Post, User
package models

import (
	"time"
)

// Artistic discipline constants.
const (
	DisciplineTheater    = "theater"
	DisciplineDance      = "dance"
	DisciplineVisualArts = "visual_arts"
	DisciplineMusic      = "music"
	DisciplineLiterature = "literature"
)

// Event type constants.
const (
	EventTypeWorkshop    = "workshop"
	EventTypePerformance = "performance"
	EventTypeExhibition  = "exhibition"
	EventTypeConcert     = "concert"
	EventTypeConference  = "conference"
)

// Target audience constants.
const (
	AudienceChildren = "children"
	AudienceAdults   = "adults"
	AudienceAll      = "all"
)

// Cost type constants.
const (
	CostFree = "free"
	CostPaid = "paid"
)

type EventCost struct {
	Type   string  `json:"type"`
	Amount float64 `json:"amount,omitempty"`
}

type ResponsiblePerson struct {
	Name        string `json:"name"`
	Phone       string `json:"phone,omitempty"`
	SocialMedia string `json:"social_media,omitempty"`
}

// Image is an inline image payload (base64 data plus its MIME type).
type Image struct {
	Data     string `json:"data"`
	MIMEType string `json:"mime_type"`
}

// Recurrence type constants.
const (
	RecurrenceNone    = "none"
	RecurrenceDaily   = "daily"
	RecurrenceWeekly  = "weekly"
	RecurrenceMonthly = "monthly"
	RecurrenceCustom  = "custom"
)

type RecurrenceRule struct {
	Type       string         `json:"type"`
	Interval   int            `json:"interval,omitempty"`
	EndDate    *time.Time     `json:"end_date,omitempty"`
	DaysOfWeek []time.Weekday `json:"days_of_week,omitempty"`
}

// ReminderRule configures a pre-event reminder, minutes before the date.
type ReminderRule struct {
	Enabled       bool `json:"enabled"`
	MinutesBefore int  `json:"minutes_before"`
}

// CalendarMetadata carries display hints for calendar views.
type CalendarMetadata struct {
	Color string `json:"color,omitempty"`
	Icon  string `json:"icon,omitempty"`
}

type CulturalEvent struct {
	ID                    string             `json:"id"`
	Title                 string             `json:"title"`
	Description           string             `json:"description,omitempty"`
	EventType             string             `json:"event_type"`
	Discipline            string             `json:"discipline"`
	Date                  time.Time          `json:"date"`
	Location              string             `json:"location,omitempty"`
	MapURL                string             `json:"map_url,omitempty"`
	TargetAudience        string             `json:"target_audience,omitempty"`
	Cost                  EventCost          `json:"cost"`
	ResponsiblePerson     ResponsiblePerson  `json:"responsible_person"`
	TechnicalRequirements []string           `json:"technical_requirements,omitempty"`
	Image                 *Image             `json:"image,omitempty"`
	Tags                  []string           `json:"tags,omitempty"`
	Recurrence            *RecurrenceRule    `json:"recurrence,omitempty"`
	Reminder              *ReminderRule      `json:"reminder,omitempty"`
	Calendar              *CalendarMetadata  `json:"calendar,omitempty"`
	Engagement
}

func (e CulturalEvent) EntityID() string { return e.ID }

type ContactInfo struct {
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type ArtistBirthday struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	BirthDate   time.Time     `json:"birth_date"`
	Role        string        `json:"role,omitempty"`
	Discipline  string        `json:"discipline,omitempty"`
	Trajectory  string        `json:"trajectory,omitempty"`
	ContactInfo ContactInfo   `json:"contact_info"`
	Image       *Image        `json:"image,omitempty"`
	Reminder    *ReminderRule `json:"reminder,omitempty"`
	Engagement
}

func (b ArtistBirthday) EntityID() string { return b.ID }

// OccursOn reports whether the birthday falls on the given day,
// comparing month and day only; the stored year is ignored.
func (b ArtistBirthday) OccursOn(t time.Time) bool {
	return b.BirthDate.Month() == t.Month() && b.BirthDate.Day() == t.Day()
}

// IsToday reports whether the birthday falls on the current day.
func (b ArtistBirthday) IsToday() bool {
	return b.OccursOn(time.Now())
}

// Task status constants. Any status may move to any other.
const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in-progress"
	TaskStatusCompleted  = "completed"
)

// Task priority constants.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

type ChecklistItem struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Completed bool   `json:"completed"`
}

type CulturalTask struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	Description    string          `json:"description,omitempty"`
	Status         string          `json:"status"`
	Priority       string          `json:"priority"`
	AssignedTo     string          `json:"assigned_to,omitempty"`
	DueDate        time.Time       `json:"due_date"`
	RelatedEventID string          `json:"related_event_id,omitempty"`
	Checklist      []ChecklistItem `json:"checklist,omitempty"`
	IsFavorite     bool            `json:"is_favorite"`
	Reminder       *ReminderRule   `json:"reminder,omitempty"`
}

func (t CulturalTask) EntityID() string { return t.ID }

type Contact struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Role       string            `json:"role,omitempty"`
	Discipline string            `json:"discipline,omitempty"`
	Email      string            `json:"email,omitempty"`
	Phone      string            `json:"phone,omitempty"`
	Notes      string            `json:"notes,omitempty"`
	Image      *Image            `json:"image,omitempty"`
	Socials    map[string]string `json:"socials,omitempty"`
	IsFavorite bool              `json:"is_favorite"`
}

func (c Contact) EntityID() string { return c.ID }

type PressArticle struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Author   string    `json:"author,omitempty"`
	Summary  string    `json:"summary,omitempty"`
	Content  string    `json:"content,omitempty"`
	Date     time.Time `json:"date"`
	Category string    `json:"category,omitempty"`
	Tags     []string  `json:"tags,omitempty"`
	Image    *Image    `json:"image,omitempty"`
	Engagement
}

func (a PressArticle) EntityID() string { return a.ID }

// MaxPostLength bounds post content, in runes.
const MaxPostLength = 500

// Media kind constants.
const (
	MediaImage    = "image"
	MediaVideo    = "video"
	MediaDocument = "document"
	MediaVoice    = "voice"
	MediaSticker  = "sticker"
)

type MediaAttachment struct {
	Kind            string `json:"kind"`
	URL             string `json:"url"`
	ThumbnailURL    string `json:"thumbnail_url,omitempty"`
	DurationSeconds int    `json:"duration_seconds,omitempty"`
}

// LinkPreview is a hyperlink extracted from post content. Preview
// metadata is filled lazily by the UI, so every field but URL may be empty.
type LinkPreview struct {
	URL         string `json:"url"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}

type Post struct {
	ID         string            `json:"id"`
	AuthorID   string            `json:"author_id"`
	AuthorName string            `json:"author_name,omitempty"`
	Content    string            `json:"content"`
	Date       time.Time         `json:"date"`
	Media      []MediaAttachment `json:"media,omitempty"`
	Links      []LinkPreview     `json:"links,omitempty"`
	Engagement
}

func (p Post) EntityID() string { return p.ID }

type Achievement struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
}

type Work struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	ImageURL    string    `json:"image_url,omitempty"`
}

type Portfolio struct {
	Category     string        `json:"category,omitempty"`
	Discipline   string        `json:"discipline,omitempty"`
	Trajectory   string        `json:"trajectory,omitempty"`
	Achievements []Achievement `json:"achievements,omitempty"`
	Works        []Work        `json:"works,omitempty"`
}

// User is a profile. Followers and Following hold user ids; the
// relationship is directed, so following someone does not imply they
// follow back.
type User struct {
	ID          string            `json:"id"`
	Username    string            `json:"username"`
	DisplayName string            `json:"display_name,omitempty"`
	AvatarURL   string            `json:"avatar_url,omitempty"`
	CoverURL    string            `json:"cover_url,omitempty"`
	Bio         string            `json:"bio,omitempty"`
	ExtendedBio string            `json:"extended_bio,omitempty"`
	Followers   []string          `json:"followers"`
	Following   []string          `json:"following"`
	PostIDs     []string          `json:"post_ids"`
	Portfolio   *Portfolio        `json:"portfolio,omitempty"`
	Socials     map[string]string `json:"socials,omitempty"`
}

func (u User) EntityID() string { return u.ID }

// Normalized returns a copy with nil id lists replaced by empty ones.
func (u User) Normalized() User {
	if u.Followers == nil {
		u.Followers = []string{}
	}
	if u.Following == nil {
		u.Following = []string{}
	}
	if u.PostIDs == nil {
		u.PostIDs = []string{}
	}
	return u
}

// Notification kind constants.
const (
	NotificationEvent    = "event"
	NotificationBirthday = "birthday"
	NotificationTask     = "task"
	NotificationPost     = "post"
)

type Notification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message,omitempty"`
	Kind      string    `json:"kind"`
	Read      bool      `json:"read"`
	Date      time.Time `json:"date"`
	RelatedID string    `json:"related_id,omitempty"`
}

func (n Notification) EntityID() string { return n.ID }
