package ui

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

// Navigator maps browser sessions to their currently Active page and
// drives transitions: the outgoing page's Cleanup always runs before the
// incoming page's Init, so only one controller occupies the container at
// a time.
type Navigator struct {
	log *logrus.Logger

	mu     sync.Mutex
	active map[string]Page
}

func NewNavigator(log *logrus.Logger) *Navigator {
	return &Navigator{
		log:    log,
		active: make(map[string]Page),
	}
}

// Navigate swaps the session's active page. A repeated navigation to the
// page instance already active re-runs Init with the new params after a
// full Cleanup, matching a fresh render.
func (n *Navigator) Navigate(ctx context.Context, sessionID string, page Page, params Params) {
	n.mu.Lock()
	prev := n.active[sessionID]
	n.active[sessionID] = page
	n.mu.Unlock()

	if prev != nil {
		prev.Cleanup()
	}
	page.Init(ctx, params)

	if n.log != nil {
		n.log.WithFields(logrus.Fields{
			"session": sessionID,
			"feature": page.Feature(),
			"page":    page.PageID(),
		}).Debug("navigated")
	}
}

// Deactivate cleans up and forgets the session's active page, e.g. when
// the session expires. Unknown sessions are a no-op.
func (n *Navigator) Deactivate(sessionID string) {
	n.mu.Lock()
	page := n.active[sessionID]
	delete(n.active, sessionID)
	n.mu.Unlock()

	if page != nil {
		page.Cleanup()
	}
}

// Active returns the session's current page, if any.
func (n *Navigator) Active(sessionID string) (Page, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	page, ok := n.active[sessionID]
	return page, ok
}
