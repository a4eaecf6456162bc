// ABOUTME: Artist birthday CLI commands
// ABOUTME: Create, list (with today highlighting), update, delete
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

// AddBirthdayCommand records an artist birthday.
func AddBirthdayCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("add-birthday", flag.ExitOnError)
	name := fs.String("name", "", "Artist name (required)")
	date := fs.String("date", "", "Birth date, YYYY-MM-DD (required; year kept but ignored for matching)")
	role := fs.String("role", "", "Artist role")
	discipline := fs.String("discipline", "", "Artistic discipline")
	trajectory := fs.String("trajectory", "", "Career notes")
	email := fs.String("email", "", "Contact email")
	phone := fs.String("phone", "", "Contact phone")
	_ = fs.Parse(args)

	if *name == "" {
		return fmt.Errorf("--name is required")
	}
	if *date == "" {
		return fmt.Errorf("--date is required")
	}

	when, err := parseDate(*date)
	if err != nil {
		return err
	}

	b := models.ArtistBirthday{
		ID:         newEntityID(),
		Name:       *name,
		BirthDate:  when,
		Role:       *role,
		Discipline: *discipline,
		Trajectory: *trajectory,
		ContactInfo: models.ContactInfo{
			Email: *email,
			Phone: *phone,
		},
		Engagement: models.Engagement{
			Reactions: models.ZeroReactions(),
			Comments:  []models.Comment{},
		},
	}

	st.Dispatch(store.AddBirthday{Birthday: b})
	st.Dispatch(store.AddNotification{Notification: models.Notification{
		ID:        newSortableID(),
		Title:     "New birthday",
		Message:   b.Name,
		Kind:      models.NotificationBirthday,
		Date:      time.Now(),
		RelatedID: b.ID,
	}})

	fmt.Printf("✓ Birthday recorded: %s (ID: %s)\n", b.Name, b.ID)
	return nil
}

// ListBirthdaysCommand lists birthdays; today's are marked.
func ListBirthdaysCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("list-birthdays", flag.ExitOnError)
	today := fs.Bool("today", false, "Only birthdays falling today")
	_ = fs.Parse(args)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tBIRTH DATE\tROLE\tTODAY")
	for _, b := range st.State().Birthdays {
		isToday := b.IsToday()
		if *today && !isToday {
			continue
		}
		mark := ""
		if isToday {
			mark = "🎂"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			b.ID, b.Name, b.BirthDate.Format("01-02"), b.Role, mark)
	}
	return w.Flush()
}

// UpdateBirthdayCommand replaces a birthday wholesale.
func UpdateBirthdayCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("update-birthday", flag.ExitOnError)
	id := fs.String("id", "", "Birthday id (required)")
	name := fs.String("name", "", "New name")
	role := fs.String("role", "", "New role")
	trajectory := fs.String("trajectory", "", "New career notes")
	_ = fs.Parse(args)

	if *id == "" {
		return fmt.Errorf("--id is required")
	}

	var b *models.ArtistBirthday
	for _, candidate := range st.State().Birthdays {
		if candidate.ID == *id {
			candidate := candidate
			b = &candidate
			break
		}
	}
	if b == nil {
		return fmt.Errorf("birthday %s not found", *id)
	}

	if *name != "" {
		b.Name = *name
	}
	if *role != "" {
		b.Role = *role
	}
	if *trajectory != "" {
		b.Trajectory = *trajectory
	}

	st.Dispatch(store.UpdateBirthday{Birthday: *b})
	fmt.Printf("✓ Birthday updated: %s\n", b.Name)
	return nil
}

// DeleteBirthdayCommand removes a birthday by id.
func DeleteBirthdayCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("delete-birthday", flag.ExitOnError)
	id := fs.String("id", "", "Birthday id (required)")
	_ = fs.Parse(args)

	if *id == "" {
		return fmt.Errorf("--id is required")
	}

	st.Dispatch(store.DeleteBirthday{ID: *id})
	fmt.Printf("✓ Birthday deleted: %s\n", *id)
	return nil
}
