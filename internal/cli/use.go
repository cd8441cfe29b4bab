package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/passvault/internal/common"
)

func (a *App) use(ctx context.Context, args []string) {
	id, ok := parseID(args, "Usage: use <id>", a.out)
	if !ok {
		return
	}

	if err := a.store.RecordUsage(ctx, id); err != nil {
		if errors.Is(err, common.ErrRecordNotFound) {
			fmt.Fprintln(a.out, "No record with id", id)
			return
		}
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	fmt.Fprintln(a.out, "Usage recorded for", id)
}
