// ABOUTME: Contact CLI commands
// ABOUTME: Human-friendly commands for managing the cultural contact book
package cli

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"culturadesk/models"
	"culturadesk/store"
)

// AddContactCommand adds a new contact.
func AddContactCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("add-contact", flag.ExitOnError)
	name := fs.String("name", "", "Contact name (required)")
	role := fs.String("role", "", "Role, e.g. producer, curator")
	discipline := fs.String("discipline", "", "Artistic discipline")
	email := fs.String("email", "", "Email address")
	phone := fs.String("phone", "", "Phone number")
	notes := fs.String("notes", "", "Notes about the contact")
	_ = fs.Parse(args)

	if *name == "" {
		return fmt.Errorf("--name is required")
	}

	contact := models.Contact{
		ID:         newEntityID(),
		Name:       *name,
		Role:       *role,
		Discipline: *discipline,
		Email:      *email,
		Phone:      *phone,
		Notes:      *notes,
	}

	st.Dispatch(store.AddContact{Contact: contact})

	fmt.Printf("✓ Contact created: %s (ID: %s)\n", contact.Name, contact.ID)
	if contact.Email != "" {
		fmt.Printf("  Email: %s\n", contact.Email)
	}
	if contact.Phone != "" {
		fmt.Printf("  Phone: %s\n", contact.Phone)
	}
	return nil
}

// ListContactsCommand lists all contacts.
func ListContactsCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("list-contacts", flag.ExitOnError)
	favorites := fs.Bool("favorites", false, "Only favorites")
	_ = fs.Parse(args)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tROLE\tEMAIL\tPHONE\tFAV")
	for _, c := range st.State().Contacts {
		if *favorites && !c.IsFavorite {
			continue
		}
		fav := ""
		if c.IsFavorite {
			fav = "★"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", c.ID, c.Name, c.Role, c.Email, c.Phone, fav)
	}
	return w.Flush()
}

// UpdateContactCommand replaces a contact wholesale. Toggling the
// favorite star on a contact goes through here too: contacts carry no
// engagement, so a full update is the only write path.
func UpdateContactCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("update-contact", flag.ExitOnError)
	id := fs.String("id", "", "Contact id (required)")
	name := fs.String("name", "", "New name")
	role := fs.String("role", "", "New role")
	email := fs.String("email", "", "New email")
	phone := fs.String("phone", "", "New phone")
	notes := fs.String("notes", "", "New notes")
	favorite := fs.Bool("toggle-favorite", false, "Flip the favorite star")
	_ = fs.Parse(args)

	if *id == "" {
		return fmt.Errorf("--id is required")
	}

	var contact *models.Contact
	for _, candidate := range st.State().Contacts {
		if candidate.ID == *id {
			candidate := candidate
			contact = &candidate
			break
		}
	}
	if contact == nil {
		return fmt.Errorf("contact %s not found", *id)
	}

	if *name != "" {
		contact.Name = *name
	}
	if *role != "" {
		contact.Role = *role
	}
	if *email != "" {
		contact.Email = *email
	}
	if *phone != "" {
		contact.Phone = *phone
	}
	if *notes != "" {
		contact.Notes = *notes
	}
	if *favorite {
		contact.IsFavorite = !contact.IsFavorite
	}

	st.Dispatch(store.UpdateContact{Contact: *contact})
	fmt.Printf("✓ Contact updated: %s\n", contact.Name)
	return nil
}

// DeleteContactCommand removes a contact by id.
func DeleteContactCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("delete-contact", flag.ExitOnError)
	id := fs.String("id", "", "Contact id (required)")
	_ = fs.Parse(args)

	if *id == "" {
		return fmt.Errorf("--id is required")
	}

	st.Dispatch(store.DeleteContact{ID: *id})
	fmt.Printf("✓ Contact deleted: %s\n", *id)
	return nil
}
