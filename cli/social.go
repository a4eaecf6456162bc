// ABOUTME: Reaction, comment, favorite, and follow CLI commands
// ABOUTME: Interactions that work across events, birthdays, posts, and articles
package cli

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"culturadesk/models"
	"culturadesk/store"
)

// ReactCommand adds one reaction to any reactable entity.
func ReactCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("react", flag.ExitOnError)
	id := fs.String("id", "", "Entity id (required)")
	kind := fs.String("kind", string(models.ReactionLike), "Reaction (like|love|celebrate|interesting)")
	_ = fs.Parse(args)

	if *id == "" {
		return fmt.Errorf("--id is required")
	}
	k := models.ReactionKind(*kind)
	if !k.IsValid() {
		return fmt.Errorf("unknown reaction %q", *kind)
	}

	st.Dispatch(store.AddReaction{EntityID: *id, Kind: k})
	fmt.Printf("✓ Reacted %s to %s\n", k, *id)
	return nil
}

// CommentCommand appends a comment to any reactable entity.
func CommentCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("comment", flag.ExitOnError)
	id := fs.String("id", "", "Entity id (required)")
	text := fs.String("text", "", "Comment text (required)")
	_ = fs.Parse(args)

	if *id == "" || *text == "" {
		return fmt.Errorf("--id and --text are required")
	}

	me := st.State().CurrentUser
	author := me.DisplayName
	if author == "" {
		author = me.Username
	}

	st.Dispatch(store.AddComment{
		EntityID: *id,
		Comment: models.Comment{
			ID:       newSortableID(),
			EntityID: *id,
			Author:   author,
			Text:     *text,
			Date:     time.Now(),
		},
	})
	fmt.Printf("✓ Comment added to %s\n", *id)
	return nil
}

// FavoriteCommand flips the favorite flag on any reactable entity.
func FavoriteCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("favorite", flag.ExitOnError)
	id := fs.String("id", "", "Entity id (required)")
	_ = fs.Parse(args)

	if *id == "" {
		return fmt.Errorf("--id is required")
	}

	st.Dispatch(store.ToggleFavorite{EntityID: *id})
	fmt.Printf("✓ Favorite toggled on %s\n", *id)
	return nil
}

// FollowCommand follows another profile.
func FollowCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("follow", flag.ExitOnError)
	id := fs.String("id", "", "User id to follow (required)")
	_ = fs.Parse(args)

	if *id == "" {
		return fmt.Errorf("--id is required")
	}

	st.Dispatch(store.Follow{TargetUserID: *id})
	fmt.Printf("✓ Following %s\n", *id)
	return nil
}

// UnfollowCommand unfollows a profile.
func UnfollowCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("unfollow", flag.ExitOnError)
	id := fs.String("id", "", "User id to unfollow (required)")
	_ = fs.Parse(args)

	if *id == "" {
		return fmt.Errorf("--id is required")
	}

	st.Dispatch(store.Unfollow{TargetUserID: *id})
	fmt.Printf("✓ Unfollowed %s\n", *id)
	return nil
}

// ProfileCommand shows the current user and peer profiles.
func ProfileCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("profile", flag.ExitOnError)
	_ = fs.Parse(args)

	doc := st.State()
	me := doc.CurrentUser

	name := me.DisplayName
	if name == "" {
		name = me.Username
	}
	fmt.Printf("%s (@%s)\n", name, me.Username)
	if me.Bio != "" {
		fmt.Printf("  %s\n", me.Bio)
	}
	fmt.Printf("  Following: %d  Followers: %d  Posts: %d\n",
		len(me.Following), len(me.Followers), len(me.PostIDs))

	if len(doc.Users) == 0 {
		return nil
	}

	fmt.Println("\nKnown profiles:")
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tUSERNAME\tNAME\tFOLLOWERS")
	for _, u := range doc.Users {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", u.ID, u.Username, u.DisplayName, len(u.Followers))
	}
	return w.Flush()
}
