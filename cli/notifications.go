// ABOUTME: Notification CLI commands
// ABOUTME: Browse and acknowledge notifications generated by other commands
package cli

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"culturadesk/store"
)

// ListNotificationsCommand lists notifications, newest first.
func ListNotificationsCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("notifications", flag.ExitOnError)
	unread := fs.Bool("unread", false, "Only unread")
	_ = fs.Parse(args)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tWHEN\tKIND\tTITLE\tMESSAGE\tREAD")
	for _, n := range st.State().Notifications {
		if *unread && n.Read {
			continue
		}
		read := ""
		if n.Read {
			read = "✓"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			n.ID, n.Date.Format("Jan 2 15:04"), n.Kind, n.Title, n.Message, read)
	}
	return w.Flush()
}

// ReadNotificationCommand marks a notification as read.
func ReadNotificationCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("read-notification", flag.ExitOnError)
	id := fs.String("id", "", "Notification id (required)")
	_ = fs.Parse(args)

	if *id == "" {
		return fmt.Errorf("--id is required")
	}

	st.Dispatch(store.MarkNotificationRead{ID: *id})
	fmt.Printf("✓ Notification %s marked read\n", *id)
	return nil
}
