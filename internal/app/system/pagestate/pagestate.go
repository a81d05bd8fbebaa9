// Package pagestate remembers, per visitor, which report page was viewed last
// and which category was selected on each page. It is kept in a signed
// cookie, so no server-side session storage is involved.
package pagestate

import (
	"encoding/gob"
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const (
	currentPageKey = "current_page"
	selectionsKey  = "selections"
)

func init() {
	// securecookie gob-encodes session values held as interface{}.
	gob.Register(map[string]string{})
}

// State is what the cookie holds for one visitor.
type State struct {
	Page       string            // key of the page viewed last
	Selections map[string]string // page key -> selected label
}

// Selection returns the remembered label for page, or "".
func (s State) Selection(page string) string {
	if s.Selections == nil {
		return ""
	}
	return s.Selections[page]
}

// Manager reads and writes page state cookies.
type Manager struct {
	store *sessions.CookieStore
	name  string
	log   *zap.Logger
}

// NewManager builds a Manager signing cookies with key.
//
// In production (secure=true), cookies are Secure; in local dev over
// http://localhost use secure=false so the browser accepts them.
func NewManager(key, name, domain string, secure bool, logger *zap.Logger) (*Manager, error) {
	if key == "" {
		return nil, fmt.Errorf("session key is empty; provide ≥32 random chars")
	}
	if len(key) < 32 {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(key)))
	}
	if name == "" {
		return nil, fmt.Errorf("session name is empty")
	}

	store := sessions.NewCookieStore([]byte(key))
	store.Options = &sessions.Options{
		Domain:   domain,
		Path:     "/",
		MaxAge:   30 * 24 * 60 * 60,
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	logger.Info("page state store initialized",
		zap.String("name", name),
		zap.Bool("secure", secure),
		zap.String("domain", domain))

	return &Manager{store: store, name: name, log: logger}, nil
}

// Name returns the cookie name.
func (m *Manager) Name() string { return m.name }

// Current returns the visitor's state. A missing or tampered cookie yields
// an empty State.
func (m *Manager) Current(r *http.Request) State {
	sess, err := m.store.Get(r, m.name)
	if err != nil {
		m.log.Debug("page state cookie ignored", zap.Error(err))
	}

	st := State{Selections: map[string]string{}}
	if sess == nil {
		return st
	}
	if v, ok := sess.Values[currentPageKey].(string); ok {
		st.Page = v
	}
	if v, ok := sess.Values[selectionsKey].(map[string]string); ok {
		for k, label := range v {
			st.Selections[k] = label
		}
	}
	return st
}

// Remember records page as the current page and label as its selection.
// An empty label only updates the current page. Failing to write the cookie
// is logged and otherwise ignored; the page still renders.
func (m *Manager) Remember(w http.ResponseWriter, r *http.Request, page, label string) {
	sess, _ := m.store.Get(r, m.name)

	selections := map[string]string{}
	if v, ok := sess.Values[selectionsKey].(map[string]string); ok {
		for k, l := range v {
			selections[k] = l
		}
	}
	if label != "" {
		selections[page] = label
	}

	sess.Values[currentPageKey] = page
	sess.Values[selectionsKey] = selections

	if err := sess.Save(r, w); err != nil {
		m.log.Warn("page state save failed",
			zap.String("page", page),
			zap.Error(err))
	}
}
