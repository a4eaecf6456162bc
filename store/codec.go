// ABOUTME: Persistence codec converting the Document to and from stored JSON
// ABOUTME: Decode repairs documents written by older versions (missing fields, nil collections)
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"culturadesk/models"
)

// ErrMalformedDocument is returned by Decode when the stored text is
// not valid JSON. Callers recover by falling back to EmptyDocument.
var ErrMalformedDocument = errors.New("malformed document")

// Encode serializes the full document. Date fields round-trip through
// RFC 3339 text, losslessly to the nanosecond.
func Encode(doc models.Document) ([]byte, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return data, nil
}

// Decode parses stored text back into a Document and repairs anything
// an older version of the program left out: absent reaction maps become
// all-zero counts, absent comment lists become empty, absent top-level
// collections become empty, and an absent current user becomes the
// bootstrap profile. Empty input decodes to EmptyDocument.
func Decode(data []byte) (doc models.Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc = models.Document{}
			err = fmt.Errorf("%w: %v", ErrMalformedDocument, r)
		}
	}()

	if len(bytes.TrimSpace(data)) == 0 {
		return models.EmptyDocument(), nil
	}

	if err := json.Unmarshal(data, &doc); err != nil {
		return models.Document{}, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	return repair(doc), nil
}

// repair backfills defaults onto records stored by older versions.
func repair(doc models.Document) models.Document {
	if doc.Events == nil {
		doc.Events = []models.CulturalEvent{}
	}
	if doc.Birthdays == nil {
		doc.Birthdays = []models.ArtistBirthday{}
	}
	if doc.Tasks == nil {
		doc.Tasks = []models.CulturalTask{}
	}
	if doc.Contacts == nil {
		doc.Contacts = []models.Contact{}
	}
	if doc.Notifications == nil {
		doc.Notifications = []models.Notification{}
	}
	if doc.PressArticles == nil {
		doc.PressArticles = []models.PressArticle{}
	}
	if doc.Posts == nil {
		doc.Posts = []models.Post{}
	}
	if doc.Users == nil {
		doc.Users = []models.User{}
	}

	for i := range doc.Events {
		doc.Events[i].Engagement = doc.Events[i].Engagement.Normalized()
	}
	for i := range doc.Birthdays {
		doc.Birthdays[i].Engagement = doc.Birthdays[i].Engagement.Normalized()
	}
	for i := range doc.Posts {
		doc.Posts[i].Engagement = doc.Posts[i].Engagement.Normalized()
	}
	for i := range doc.PressArticles {
		doc.PressArticles[i].Engagement = doc.PressArticles[i].Engagement.Normalized()
	}

	if doc.CurrentUser.ID == "" {
		doc.CurrentUser = models.BootstrapUser()
	} else {
		doc.CurrentUser = doc.CurrentUser.Normalized()
	}
	for i := range doc.Users {
		doc.Users[i] = doc.Users[i].Normalized()
	}

	return doc
}
