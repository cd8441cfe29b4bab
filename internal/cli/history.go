package cli

import (
	"context"
	"fmt"
)

func (a *App) history(ctx context.Context, args []string) {
	id, ok := parseID(args, "Usage: history <id>", a.out)
	if !ok {
		return
	}

	entries, err := a.store.ListHistory(ctx, id)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	if len(entries) == 0 {
		fmt.Fprintln(a.out, "No history for", id)
		return
	}

	for _, e := range entries {
		fmt.Fprintf(a.out, "%s  %s\n", e.CreatedAt.Format("2006-01-02 15:04:05"), e.Action)
	}
}
