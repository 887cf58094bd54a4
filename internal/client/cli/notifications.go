package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/azhukov/campus-navigator/internal/client/services"
)

// Inbox prints the notification feed, unread first marker style.
func (a *App) Inbox(ctx context.Context) error {
	items, err := a.notifications.List(ctx)
	if err != nil {
		return err
	}
	a.unread.Store(int64(services.Unread(items)))

	if len(items) == 0 {
		printlnFn("Inbox is empty.")
		return nil
	}

	for _, n := range items {
		marker := " "
		if !n.Read {
			marker = "*"
		}
		printlnFn(fmt.Sprintf("%s #%-3d %-30s %s", marker, n.ID, n.Title, n.Message))
	}
	return nil
}

// MarkRead handles: read <id>
func (a *App) MarkRead(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: read <id>")
		return nil
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("bad notification id %q", args[0])
	}
	return a.notifications.MarkRead(ctx, id)
}

// MarkAllRead clears the whole unread counter.
func (a *App) MarkAllRead(ctx context.Context) error {
	if err := a.notifications.MarkAllRead(ctx); err != nil {
		return err
	}
	a.unread.Store(0)
	printlnFn("All notifications marked read.")
	return nil
}
