package utils

import (
	"net/url"
	"testing"

	"computer-aid/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhatsAppLink(t *testing.T) {
	link := WhatsAppLink("265991234567", "Hi! Is it available?")
	assert.Contains(t, link, "https://wa.me/265991234567?text=")

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "Hi! Is it available?", parsed.Query().Get("text"))
}

func TestWhatsAppLinkWithoutRecipient(t *testing.T) {
	assert.Empty(t, WhatsAppLink("", "hello"))
}

func TestInquiryMessage(t *testing.T) {
	msg := InquiryMessage("ThinkPad X1", 850000)
	assert.Equal(t, "Hi! I'm interested in ThinkPad X1 priced at MWK 850,000. Is it available?", msg)
}

func TestCheckoutMessage(t *testing.T) {
	items := []models.CartItem{
		{Name: "ThinkPad X1", Price: 850000},
		{Name: "USB-C Hub", Price: 45000},
	}

	msg := CheckoutMessage(items)
	assert.Contains(t, msg, "- ThinkPad X1 (MWK 850,000)")
	assert.Contains(t, msg, "- USB-C Hub (MWK 45,000)")
	assert.Contains(t, msg, "Total: MWK 895,000")
}

func TestCheckoutMessageEmpty(t *testing.T) {
	assert.Contains(t, CheckoutMessage(nil), "Total: MWK 0")
}
