package session

import (
	"encoding/json"
	"log"
	"strings"

	"computer-aid/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
)

const (
	sessionName = "computer_aid_session"
	cartKey     = "cart"
)

type FlashMessage struct {
	Level string
	Text  string
}

// Manager wraps a signed cookie store. It carries the per-browser cart and
// flash messages; nothing in it is durable.
type Manager struct {
	store *sessions.CookieStore
}

func NewManager(secret string) *Manager {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
	}
	return &Manager{store: store}
}

func (m *Manager) session(c *gin.Context) *sessions.Session {
	// Get never fails fatally: a broken cookie just yields a fresh session.
	s, _ := m.store.Get(c.Request, sessionName)
	return s
}

// Cart returns the session cart, an empty map when none exists yet.
func (m *Manager) Cart(c *gin.Context) map[string]models.CartItem {
	cart := map[string]models.CartItem{}
	raw, ok := m.session(c).Values[cartKey].(string)
	if !ok || raw == "" {
		return cart
	}
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		return map[string]models.CartItem{}
	}
	return cart
}

func (m *Manager) SaveCart(c *gin.Context, cart map[string]models.CartItem) error {
	raw, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	s := m.session(c)
	s.Values[cartKey] = string(raw)
	return s.Save(c.Request, c.Writer)
}

func (m *Manager) ClearCart(c *gin.Context) error {
	s := m.session(c)
	delete(s.Values, cartKey)
	return s.Save(c.Request, c.Writer)
}

// Flash queues a one-shot message; level is a bootstrap-ish class like
// "success", "danger" or "info".
func (m *Manager) Flash(c *gin.Context, level, text string) {
	s := m.session(c)
	s.AddFlash(level + "|" + text)
	if err := s.Save(c.Request, c.Writer); err != nil {
		log.Println("Failed to save session:", err)
	}
}

// TakeFlashes returns queued messages and clears them.
func (m *Manager) TakeFlashes(c *gin.Context) []FlashMessage {
	s := m.session(c)
	raw := s.Flashes()
	if len(raw) > 0 {
		if err := s.Save(c.Request, c.Writer); err != nil {
			log.Println("Failed to save session:", err)
		}
	}
	messages := make([]FlashMessage, 0, len(raw))
	for _, f := range raw {
		text, ok := f.(string)
		if !ok {
			continue
		}
		level, msg, found := strings.Cut(text, "|")
		if !found {
			level, msg = "info", text
		}
		messages = append(messages, FlashMessage{Level: level, Text: msg})
	}
	return messages
}
