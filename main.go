// ABOUTME: Entry point for the culturadesk organizer CLI and TUI
// ABOUTME: Routes commands, wires config, storage slot, and the state store
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"culturadesk/cli"
	"culturadesk/config"
	"culturadesk/storage"
	"culturadesk/store"
	"culturadesk/tui"
)

const version = "0.1.0"

type commandFunc func(*store.Store, []string) error

var commands = map[string]commandFunc{
	"add-event":    cli.AddEventCommand,
	"list-events":  cli.ListEventsCommand,
	"update-event": cli.UpdateEventCommand,
	"delete-event": cli.DeleteEventCommand,

	"add-birthday":    cli.AddBirthdayCommand,
	"list-birthdays":  cli.ListBirthdaysCommand,
	"update-birthday": cli.UpdateBirthdayCommand,
	"delete-birthday": cli.DeleteBirthdayCommand,

	"add-task":        cli.AddTaskCommand,
	"list-tasks":      cli.ListTasksCommand,
	"set-task-status": cli.SetTaskStatusCommand,
	"update-task":     cli.UpdateTaskCommand,
	"delete-task":     cli.DeleteTaskCommand,

	"add-contact":    cli.AddContactCommand,
	"list-contacts":  cli.ListContactsCommand,
	"update-contact": cli.UpdateContactCommand,
	"delete-contact": cli.DeleteContactCommand,

	"add-article":    cli.AddArticleCommand,
	"list-articles":  cli.ListArticlesCommand,
	"update-article": cli.UpdateArticleCommand,
	"delete-article": cli.DeleteArticleCommand,

	"post":        cli.PostCommand,
	"feed":        cli.FeedCommand,
	"edit-post":   cli.EditPostCommand,
	"delete-post": cli.DeletePostCommand,

	"react":    cli.ReactCommand,
	"comment":  cli.CommentCommand,
	"favorite": cli.FavoriteCommand,
	"follow":   cli.FollowCommand,
	"unfollow": cli.UnfollowCommand,
	"profile":  cli.ProfileCommand,

	"notifications":     cli.ListNotificationsCommand,
	"read-notification": cli.ReadNotificationCommand,
}

func main() {
	showVersion := flag.Bool("version", false, "Show version and exit")
	dataDir := flag.String("data-dir", "", "Data directory (default: XDG data home)")
	verbose := flag.Bool("verbose", false, "Debug logging")
	_ = flag.CommandLine.Parse(os.Args[1:])

	if *showVersion {
		fmt.Printf("culturadesk version %s\n", version)
		os.Exit(0)
	}

	// A .env next to the binary can set CULTURADESK_* overrides in dev.
	_ = godotenv.Load()

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: config.AppName})
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", "err", err)
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(0)
	}
	command := args[0]
	commandArgs := args[1:]

	slot := openSlot(cfg, logger)
	defer func() { _ = slot.Close() }()

	st := store.New(slot, logger.WithPrefix("store"))

	if command == "board" || command == "tui" {
		if err := tui.Run(st, cfg.Theme); err != nil {
			logger.Fatal("TUI failed", "err", err)
		}
		return
	}

	cmd, ok := commands[command]
	if !ok {
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}

	if err := cmd(st, commandArgs); err != nil {
		logger.Fatal(command, "err", err)
	}
}

// openSlot opens the on-disk store, degrading to an in-memory slot
// when the directory cannot be opened. State then lives only for this
// run; the failure is logged, never fatal.
func openSlot(cfg *config.Config, logger *log.Logger) storage.Slot {
	slot, err := storage.OpenBadger(cfg.StateDir())
	if err != nil {
		logger.Warn("opening storage failed; changes will not be saved", "err", err)
		return storage.NewMemorySlot()
	}
	return slot
}

func printUsage() {
	fmt.Println(`culturadesk - personal organizer for cultural work

Usage: culturadesk [flags] <command> [args]

Views:
  board | tui            Interactive task board and post feed

Events:
  add-event --title T --date D     list-events
  update-event --id I              delete-event --id I

Birthdays:
  add-birthday --name N --date D   list-birthdays [--today]
  update-birthday --id I           delete-birthday --id I

Tasks:
  add-task --title T --due D       list-tasks [--status S]
  set-task-status --id I --status S
  update-task --id I               delete-task --id I

Contacts:
  add-contact --name N             list-contacts
  update-contact --id I            delete-contact --id I

Press:
  add-article --title T            list-articles
  update-article --id I            delete-article --id I

Social:
  post --content C                 feed
  react --id I --kind K            comment --id I --text T
  favorite --id I                  follow/unfollow --id I
  profile                          edit-post --id I --content C
  delete-post --id I

Notifications:
  notifications [--unread]         read-notification --id I

Flags:
  -version     Show version
  -data-dir    Override the data directory
  -verbose     Debug logging`)
}
