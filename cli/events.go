// ABOUTME: Cultural event CLI commands
// ABOUTME: Forms that build event operations and dispatch them to the store
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

// AddEventCommand creates a new event.
func AddEventCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("add-event", flag.ExitOnError)
	title := fs.String("title", "", "Event title (required)")
	description := fs.String("description", "", "Event description")
	eventType := fs.String("type", models.EventTypePerformance, "Event type (workshop|performance|exhibition|concert|conference)")
	discipline := fs.String("discipline", "", "Artistic discipline")
	date := fs.String("date", "", "Event date, YYYY-MM-DD [HH:MM] (required)")
	location := fs.String("location", "", "Venue")
	mapURL := fs.String("map-url", "", "Map link for the venue")
	audience := fs.String("audience", models.AudienceAll, "Target audience (children|adults|all)")
	paid := fs.Float64("price", 0, "Ticket price; omit for a free event")
	responsible := fs.String("responsible", "", "Responsible person name")
	phone := fs.String("phone", "", "Responsible person phone")
	requirements := fs.String("requirements", "", "Comma-separated technical requirements")
	tags := fs.String("tags", "", "Comma-separated tags")
	_ = fs.Parse(args)

	if *title == "" {
		return fmt.Errorf("--title is required")
	}
	if *date == "" {
		return fmt.Errorf("--date is required")
	}

	when, err := parseDate(*date)
	if err != nil {
		return err
	}

	cost := models.EventCost{Type: models.CostFree}
	if *paid > 0 {
		cost = models.EventCost{Type: models.CostPaid, Amount: *paid}
	}

	ev := models.CulturalEvent{
		ID:             newEntityID(),
		Title:          *title,
		Description:    *description,
		EventType:      *eventType,
		Discipline:     *discipline,
		Date:           when,
		Location:       *location,
		MapURL:         *mapURL,
		TargetAudience: *audience,
		Cost:           cost,
		ResponsiblePerson: models.ResponsiblePerson{
			Name:  *responsible,
			Phone: *phone,
		},
		TechnicalRequirements: splitList(*requirements),
		Tags:                  splitList(*tags),
	}

	st.Dispatch(store.AddEvent{Event: ev})
	st.Dispatch(store.AddNotification{Notification: models.Notification{
		ID:        newSortableID(),
		Title:     "New event",
		Message:   ev.Title,
		Kind:      models.NotificationEvent,
		Date:      time.Now(),
		RelatedID: ev.ID,
	}})

	fmt.Printf("✓ Event created: %s (ID: %s)\n", ev.Title, ev.ID)
	fmt.Printf("  Date: %s\n", formatDate(ev.Date))
	if ev.Location != "" {
		fmt.Printf("  Location: %s\n", ev.Location)
	}
	return nil
}

// ListEventsCommand lists events, newest first.
func ListEventsCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("list-events", flag.ExitOnError)
	favorites := fs.Bool("favorites", false, "Only favorites")
	discipline := fs.String("discipline", "", "Filter by discipline")
	_ = fs.Parse(args)

	events := st.State().Events
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tTITLE\tDISCIPLINE\tREACTIONS\tFAV")
	for _, ev := range events {
		if *favorites && !ev.IsFavorite {
			continue
		}
		if *discipline != "" && ev.Discipline != *discipline {
			continue
		}
		fav := ""
		if ev.IsFavorite {
			fav = "★"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
			ev.ID, formatDate(ev.Date), ev.Title, ev.Discipline, ev.Reactions.Total(), fav)
	}
	return w.Flush()
}

// UpdateEventCommand replaces an event wholesale, starting from the
// stored record and applying any flags that were set.
func UpdateEventCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("update-event", flag.ExitOnError)
	id := fs.String("id", "", "Event id (required)")
	title := fs.String("title", "", "New title")
	description := fs.String("description", "", "New description")
	date := fs.String("date", "", "New date")
	location := fs.String("location", "", "New venue")
	_ = fs.Parse(args)

	if *id == "" {
		return fmt.Errorf("--id is required")
	}

	var ev *models.CulturalEvent
	for _, e := range st.State().Events {
		if e.ID == *id {
			e := e
			ev = &e
			break
		}
	}
	if ev == nil {
		return fmt.Errorf("event %s not found", *id)
	}

	if *title != "" {
		ev.Title = *title
	}
	if *description != "" {
		ev.Description = *description
	}
	if *location != "" {
		ev.Location = *location
	}
	if *date != "" {
		when, err := parseDate(*date)
		if err != nil {
			return err
		}
		ev.Date = when
	}

	st.Dispatch(store.UpdateEvent{Event: *ev})
	fmt.Printf("✓ Event updated: %s\n", ev.Title)
	return nil
}

// DeleteEventCommand removes an event by id.
func DeleteEventCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("delete-event", flag.ExitOnError)
	id := fs.String("id", "", "Event id (required)")
	_ = fs.Parse(args)

	if *id == "" {
		return fmt.Errorf("--id is required")
	}

	st.Dispatch(store.DeleteEvent{ID: *id})
	fmt.Printf("✓ Event deleted: %s\n", *id)
	return nil
}
