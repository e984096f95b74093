package models

import "time"

type Product struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"created_at"`
}

type Admin struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}

// CartItem is the add-time snapshot kept in the session. It deliberately does
// not track the live product row: the quote shown at checkout is the quote
// seen when the item was added.
type CartItem struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}

const DefaultCategory = "accessories"

type CategoryInfo struct {
	Key  string
	Name string
	Icon string
}

var Categories = []CategoryInfo{
	{Key: "laptops", Name: "Laptops", Icon: "fas fa-laptop"},
	{Key: "consoles", Name: "Gaming Consoles", Icon: "fas fa-gamepad"},
	{Key: "phones", Name: "Phones", Icon: "fas fa-mobile-alt"},
	{Key: "accessories", Name: "Accessories", Icon: "fas fa-keyboard"},
}

func ValidCategory(key string) bool {
	_, ok := CategoryByKey(key)
	return ok
}

func CategoryByKey(key string) (CategoryInfo, bool) {
	for _, c := range Categories {
		if c.Key == key {
			return c, true
		}
	}
	return CategoryInfo{}, false
}

// NormalizeCategory applies the catalog default for omitted or unknown keys.
func NormalizeCategory(key string) string {
	if ValidCategory(key) {
		return key
	}
	return DefaultCategory
}
