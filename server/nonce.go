package server

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// nonces issues single use form tokens which expire after ttl.
type nonces struct {
	mu     sync.Mutex
	ttl    time.Duration
	now    func() time.Time
	issued map[uuid.UUID]time.Time
}

func newNonces(ttl time.Duration) *nonces {
	return &nonces{ttl: ttl, now: time.Now, issued: make(map[uuid.UUID]time.Time)}
}

func (n *nonces) issue() string {
	id := uuid.New()

	n.mu.Lock()
	defer n.mu.Unlock()

	now := n.now()
	for k, expires := range n.issued {
		if now.After(expires) {
			delete(n.issued, k)
		}
	}
	n.issued[id] = now.Add(n.ttl)
	return id.String()
}

// consume reports whether token was issued and is still valid, token is
// forgotten either way.
func (n *nonces) consume(token string) bool {
	id, err := uuid.Parse(token)
	if err != nil {
		return false
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	expires, ok := n.issued[id]
	if !ok {
		return false
	}
	delete(n.issued, id)
	return !n.now().After(expires)
}

func (n *nonces) len() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.issued)
}
