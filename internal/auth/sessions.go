package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// userIDKey is the only value the pipeline stores in a session.
const userIDKey = "user_id"

// Sessions wraps the server-side session store. It is injected rather than
// ambient so the pipeline can be tested with an isolated store.
type Sessions struct {
	store *session.Store
}

// NewSessions creates a Sessions over the given store.
func NewSessions(store *session.Store) *Sessions {
	return &Sessions{store: store}
}

// Bind scopes the store to one request's session token.
func (s *Sessions) Bind(c *fiber.Ctx) *Session {
	return &Session{store: s.store, ctx: c}
}

// Session is the per-request view of the caller's session. A missing or
// expired session simply evaluates as anonymous.
type Session struct {
	store *session.Store
	ctx   *fiber.Ctx
}

// UserID returns the authenticated user id, or ok=false when the caller is
// anonymous.
func (s *Session) UserID() (string, bool) {
	sess, err := s.store.Get(s.ctx)
	if err != nil {
		return "", false
	}
	userID, ok := sess.Get(userIDKey).(string)
	return userID, ok && userID != ""
}

// Establish transitions the session to the authenticated state. Called only
// from the login path after the credentials have been verified.
func (s *Session) Establish(userID string) error {
	sess, err := s.store.Get(s.ctx)
	if err != nil {
		return err
	}
	sess.Set(userIDKey, userID)
	return sess.Save()
}

// Destroy clears the session state and expires the session cookie.
func (s *Session) Destroy() error {
	sess, err := s.store.Get(s.ctx)
	if err != nil {
		return err
	}
	return sess.Destroy()
}
