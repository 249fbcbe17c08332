package cli

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/wheel/internal/wire"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var money = message.NewPrinter(language.English)

func formatPrice(v float64) string {
	return money.Sprintf("$%.0f", v)
}

func formatMonthly(v float64) string {
	return money.Sprintf("$%.2f/mo", v)
}

func title(v wire.Vehicle) string {
	return fmt.Sprintf("%d %s %s", v.Year, v.Make, v.Model)
}

// formatCard renders one vehicle the way the swipe screen shows it.
func formatCard(v wire.Vehicle, width int) string {
	rule := strings.Repeat("-", width)

	var b strings.Builder
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "#%d %s\n", v.ID, title(v))
	fmt.Fprintf(&b, "%s | %s\n", formatPrice(v.Price), formatMonthly(v.MonthlyPayment))
	if v.Description != "" {
		b.WriteString(v.Description + "\n")
	}
	if len(v.Features) > 0 {
		b.WriteString("Features: " + strings.Join(v.Features, ", ") + "\n")
	}
	if v.Image != "" {
		b.WriteString("Photo: " + v.Image + "\n")
	}
	b.WriteString(rule)
	return b.String()
}

func formatRow(v wire.Vehicle) string {
	return fmt.Sprintf("#%d %s, %s (%s)", v.ID, title(v), formatPrice(v.Price), formatMonthly(v.MonthlyPayment))
}
