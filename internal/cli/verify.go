package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/dmitrijs2005/passvault/internal/common"
)

func parseID(args []string, usage string, w io.Writer) (int64, bool) {
	if len(args) == 0 {
		fmt.Fprintln(w, usage)
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintln(w, "Not a record id:", args[0])
		return 0, false
	}
	return id, true
}

func (a *App) verify(ctx context.Context, args []string) {
	id, ok := parseID(args, "Usage: verify <id>", a.out)
	if !ok {
		return
	}

	candidate, err := GetPassword("Enter the password to verify", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}

	match, err := a.store.VerifyPassword(ctx, id, candidate)
	if err != nil {
		if errors.Is(err, common.ErrRecordNotFound) {
			fmt.Fprintln(a.out, "No record with id", id)
			return
		}
		fmt.Fprintln(a.out, "Error:", err)
		return
	}

	if match {
		fmt.Fprintln(a.out, "Match: the candidate is the password stored under this record")
	} else {
		fmt.Fprintln(a.out, "No match")
	}
}
