package cli

import (
	"context"
	"fmt"
	"strings"
)

// Root runs the interactive command loop until exit or end of input.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to PassVault (type 'help' for commands)")

	for {
		fmt.Fprintf(a.out, "pv (%s)> ", a.config.VaultName)

		line, err := a.reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			fmt.Fprintln(a.out, "Available commands: generate, list [weak|medium|strong], verify <id>, use <id>, history <id>, export <json|csv>, exit")
		case "generate":
			a.generate(ctx)
		case "list":
			a.list(ctx, args)
		case "verify":
			a.verify(ctx, args)
		case "use":
			a.use(ctx, args)
		case "history":
			a.history(ctx, args)
		case "export":
			a.export(ctx, args)
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}
