// ABOUTME: Social post CLI commands
// ABOUTME: Compose posts with media and extracted links; browse the feed
package cli

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"
	"unicode/utf8"

	"culturadesk/models"
	"culturadesk/store"
)

// PostCommand publishes a post as the current user.
func PostCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("post", flag.ExitOnError)
	content := fs.String("content", "", "Post text (required)")
	image := fs.String("image", "", "Image URL to attach")
	video := fs.String("video", "", "Video URL to attach")
	document := fs.String("document", "", "Document URL to attach")
	_ = fs.Parse(args)

	if *content == "" {
		return fmt.Errorf("--content is required")
	}
	if utf8.RuneCountInString(*content) > models.MaxPostLength {
		return fmt.Errorf("post content exceeds %d characters", models.MaxPostLength)
	}

	var media []models.MediaAttachment
	if *image != "" {
		media = append(media, models.MediaAttachment{Kind: models.MediaImage, URL: *image})
	}
	if *video != "" {
		media = append(media, models.MediaAttachment{Kind: models.MediaVideo, URL: *video})
	}
	if *document != "" {
		media = append(media, models.MediaAttachment{Kind: models.MediaDocument, URL: *document})
	}

	me := st.State().CurrentUser
	post := models.Post{
		ID:         newEntityID(),
		AuthorID:   me.ID,
		AuthorName: me.DisplayName,
		Content:    *content,
		Date:       time.Now(),
		Media:      media,
		Links:      extractLinks(*content),
	}

	st.Dispatch(store.AddPost{Post: post})
	st.Dispatch(store.AddNotification{Notification: models.Notification{
		ID:        newSortableID(),
		Title:     "New post",
		Kind:      models.NotificationPost,
		Date:      post.Date,
		RelatedID: post.ID,
	}})

	fmt.Printf("✓ Posted (ID: %s)\n", post.ID)
	if len(post.Links) > 0 {
		fmt.Printf("  Links: %d extracted\n", len(post.Links))
	}
	return nil
}

// FeedCommand prints the post feed, newest first.
func FeedCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("feed", flag.ExitOnError)
	limit := fs.Int("limit", 20, "Maximum posts to show")
	_ = fs.Parse(args)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tWHEN\tAUTHOR\tCONTENT\t❤\t💬")
	for i, p := range st.State().Posts {
		if i >= *limit {
			break
		}
		text := p.Content
		if utf8.RuneCountInString(text) > 48 {
			text = string([]rune(text)[:45]) + "..."
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\n",
			p.ID, p.Date.Format("Jan 2 15:04"), p.AuthorName, text,
			p.Reactions.Total(), len(p.Comments))
	}
	return w.Flush()
}

// EditPostCommand rewrites a post's content, re-extracting links.
func EditPostCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("edit-post", flag.ExitOnError)
	id := fs.String("id", "", "Post id (required)")
	content := fs.String("content", "", "New post text (required)")
	_ = fs.Parse(args)

	if *id == "" {
		return fmt.Errorf("--id is required")
	}
	if *content == "" {
		return fmt.Errorf("--content is required")
	}
	if utf8.RuneCountInString(*content) > models.MaxPostLength {
		return fmt.Errorf("post content exceeds %d characters", models.MaxPostLength)
	}

	var post *models.Post
	for _, p := range st.State().Posts {
		if p.ID == *id {
			post = &p
			break
		}
	}
	if post == nil {
		return fmt.Errorf("post not found: %s", *id)
	}

	post.Content = *content
	post.Links = extractLinks(*content)
	st.Dispatch(store.UpdatePost{Post: *post})

	fmt.Printf("✓ Post updated: %s\n", post.ID)
	return nil
}

// DeletePostCommand removes a post by id.
func DeletePostCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("delete-post", flag.ExitOnError)
	id := fs.String("id", "", "Post id (required)")
	_ = fs.Parse(args)

	if *id == "" {
		return fmt.Errorf("--id is required")
	}

	st.Dispatch(store.DeletePost{ID: *id})
	fmt.Printf("✓ Post deleted: %s\n", *id)
	return nil
}
