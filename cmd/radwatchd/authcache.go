package main

import (
	"sync"
)

// pendingRequests tracks the authenticator of outstanding requests so
// that obscured attribute values in the matching response can be
// decrypted against the request authenticator they were computed with.
//
// Entries are keyed by client address and packet identifier.  The
// identifier space is 8 bits, so a retransmitted or reused identifier
// simply replaces the tracked authenticator.  Each client is bounded
// to max entries; when the bound is exceeded the oldest entry is
// evicted.
type pendingRequests struct {
	mu      sync.Mutex
	max     int
	clients map[string]*clientPending
}

type clientPending struct {
	auths map[uint8][16]byte
	// identifiers in insertion order, oldest first.  May contain
	// identifiers already taken; eviction skips those.
	order []uint8
}

func newPendingRequests(max int) *pendingRequests {
	return &pendingRequests{
		max:     max,
		clients: make(map[string]*clientPending),
	}
}

// store records the authenticator for a request from the given client.
func (p *pendingRequests) store(client string, id uint8, auth [16]byte) {
	p.mu.Lock()
	defer p.mu.Unlock()

	cp := p.clients[client]
	if cp == nil {
		cp = &clientPending{auths: make(map[uint8][16]byte)}
		p.clients[client] = cp
	}

	if _, ok := cp.auths[id]; !ok {
		cp.order = append(cp.order, id)
	}
	cp.auths[id] = auth

	// Identifiers taken by responses leave stale order entries behind:
	// compact once they dominate the slice.
	if len(cp.order) > 2*len(cp.auths) {
		live := cp.order[:0]
		for _, id := range cp.order {
			if _, ok := cp.auths[id]; ok {
				live = append(live, id)
			}
		}
		cp.order = live
	}

	for len(cp.auths) > p.max {
		victim := cp.order[0]
		cp.order = cp.order[1:]
		if _, ok := cp.auths[victim]; ok {
			delete(cp.auths, victim)
			pendingEvictions.Inc()
		}
	}
}

// take returns and removes the tracked authenticator for the given
// client and identifier.
func (p *pendingRequests) take(client string, id uint8) ([16]byte, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	cp := p.clients[client]
	if cp == nil {
		return [16]byte{}, false
	}
	auth, ok := cp.auths[id]
	if ok {
		delete(cp.auths, id)
	}
	return auth, ok
}
