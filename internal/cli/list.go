package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/passvault/internal/vault/models"
	"github.com/dmitrijs2005/passvault/internal/vault/repositories/records"
)

func (a *App) list(ctx context.Context, args []string) {
	var f records.Filter
	if len(args) > 0 {
		switch strings.ToLower(args[0]) {
		case "weak":
			f.Strength = models.RatingWeak
		case "medium":
			f.Strength = models.RatingMedium
		case "strong":
			f.Strength = models.RatingStrong
		default:
			fmt.Fprintln(a.out, "Usage: list [weak|medium|strong]")
			return
		}
	}

	recs, err := a.store.ListRecords(ctx, f)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	if len(recs) == 0 {
		fmt.Fprintln(a.out, "No records")
		return
	}

	fmt.Fprintf(a.out, "%-5s %-14s %-8s %-6s %-8s %-6s %-20s %s\n",
		"ID", "NAME", "RATING", "SCORE", "ENTROPY", "USED", "GENERATED", "LAST USED")
	for _, r := range recs {
		lastUsed := "-"
		if r.LastUsedAt != nil {
			lastUsed = r.LastUsedAt.Format("2006-01-02 15:04:05")
		}
		fmt.Fprintf(a.out, "%-5d %-14s %-8s %-6d %-8.2f %-6d %-20s %s\n",
			r.ID, r.Name, r.StrengthRating, r.ComplexityScore, r.Entropy, r.UsageCount,
			r.GeneratedAt.Format("2006-01-02 15:04:05"), lastUsed)
	}
}
