package core

import (
	"net/http"
	"sync"
)

// SessionCookie is the cookie name the server issues on login and expects
// back on every authenticated call.
const SessionCookie = "id"

// SessionCredential is the one mutable slot shared by all resource
// clients. A single instance is passed by reference into each client, so
// a mutation by one of them (login, logout, account deletion) is visible
// to the rest immediately. Reads and writes are serialized; racing
// logins remain last-write-wins.
type SessionCredential struct {
	mu    sync.RWMutex
	token string
	held  bool
}

func (s *SessionCredential) Set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.held = true
}

func (s *SessionCredential) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.held = false
}

// Token returns the stored token and whether one is held.
func (s *SessionCredential) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token, s.held
}

// Attach decorates req with the session cookie. Without a token it does
// nothing at all - endpoints that tolerate anonymous access stay
// reachable, and ones that require a session answer with their own
// authentication error rather than a client-side precondition failure.
func (s *SessionCredential) Attach(req *http.Request) {
	token, held := s.Token()
	if !held {
		return
	}

	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
}
