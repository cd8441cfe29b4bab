package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/passvault/internal/vault/profile"
	"github.com/dmitrijs2005/passvault/internal/vault/service"
)

func (a *App) generate(ctx context.Context) {
	count, err := GetInt(a.reader, "How many passwords?", 5, a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	minLength, err := GetInt(a.reader, "Minimum length", 12, a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	maxLength, err := GetInt(a.reader, "Maximum length", 24, a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	profileText, err := GetSimpleText(a.reader, "Complexity profile (low/balanced/high) [balanced]", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	if profileText == "" {
		profileText = string(profile.Balanced)
	}

	items, err := a.service.GenerateBatch(ctx, service.GenerationRequest{
		Count:     count,
		MinLength: minLength,
		MaxLength: maxLength,
		Profile:   profile.ID(profileText),
	})

	for _, item := range items {
		m := item.Metrics
		fmt.Fprintf(a.out, "[%d] %s: %s\n", item.ID, item.Name, item.Password)
		fmt.Fprintf(a.out, "    length=%d upper=%d lower=%d digit=%d special=%d entropy=%.2f score=%d rating=%s\n",
			m.TotalLength, m.UppercaseCount, m.LowercaseCount, m.DigitCount, m.SpecialCharCount,
			m.Entropy, m.ComplexityScore, m.StrengthRating)
	}

	if err != nil {
		fmt.Fprintln(a.out, "Some items failed:")
		fmt.Fprintln(a.out, err)
	}
	fmt.Fprintf(a.out, "%d password(s) stored\n", len(items))
}
