package utils

import (
	"fmt"
	"net/url"
	"strings"

	"computer-aid/models"

	"github.com/shopspring/decimal"
)

// WhatsAppLink builds a wa.me deep link with the message pre-filled. An empty
// recipient yields an empty link so callers can skip rendering it.
func WhatsAppLink(number, message string) string {
	if number == "" {
		return ""
	}
	return "https://wa.me/" + number + "?text=" + url.QueryEscape(message)
}

func InquiryMessage(name string, price float64) string {
	return fmt.Sprintf("Hi! I'm interested in %s priced at MWK %s. Is it available?", name, FormatMWK(price))
}

// CheckoutMessage itemizes the cart, one line per entry, then the total.
func CheckoutMessage(items []models.CartItem) string {
	var b strings.Builder
	b.WriteString("Hello! I'd like to order the following items:\n")
	total := decimal.Zero
	for _, item := range items {
		fmt.Fprintf(&b, "- %s (MWK %s)\n", item.Name, FormatMWK(item.Price))
		total = total.Add(decimal.NewFromFloat(item.Price))
	}
	fmt.Fprintf(&b, "Total: MWK %s", FormatMWK(total.InexactFloat64()))
	return b.String()
}
