// Package session holds the per-client authentication state and the
// notifications queued for the next rendered page.
package session

import "gudang/internal/models"

// Category classifies a notification for display.
type Category string

const (
	Success Category = "success"
	Info    Category = "info"
	Warning Category = "warning"
	Danger  Category = "danger"
)

// Notification is a one-shot message shown on the next rendered page.
type Notification struct {
	Category Category `json:"category"`
	Message  string   `json:"message"`
}

// Session is the state carried in the signed client cookie.
// Username and Role are either both set (logged in) or both empty (anonymous).
type Session struct {
	Username string         `json:"username,omitempty"`
	Role     models.Role    `json:"role,omitempty"`
	Flashes  []Notification `json:"flashes,omitempty"`
}

// IsAuthenticated reports whether a user is logged in.
func (s *Session) IsAuthenticated() bool {
	return s.Username != ""
}

// CurrentRole returns the role of the logged-in user.
func (s *Session) CurrentRole() (models.Role, bool) {
	if !s.IsAuthenticated() {
		return "", false
	}
	return s.Role, true
}

// IsAdmin reports whether the logged-in user holds the admin role.
func (s *Session) IsAdmin() bool {
	role, ok := s.CurrentRole()
	return ok && role == models.RoleAdmin
}

// Establish logs username in with role. Both fields change together.
func (s *Session) Establish(username string, role models.Role) {
	if username == "" || !role.Valid() {
		s.Clear()
		return
	}
	s.Username, s.Role = username, role
}

// Clear logs the user out. Pending notifications are kept.
func (s *Session) Clear() {
	s.Username, s.Role = "", ""
}

// Flash queues a notification for the next rendered page.
func (s *Session) Flash(category Category, message string) {
	s.Flashes = append(s.Flashes, Notification{Category: category, Message: message})
}

// PopFlashes returns and removes all queued notifications.
func (s *Session) PopFlashes() []Notification {
	flashes := s.Flashes
	s.Flashes = nil
	return flashes
}

// normalize restores the both-or-neither invariant on decoded input.
func (s *Session) normalize() {
	if s.Username == "" || !s.Role.Valid() {
		s.Clear()
	}
}
