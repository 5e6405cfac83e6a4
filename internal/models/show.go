package models

import "sync"

// Show is one running reveal screen: a host driving a machine and the
// viewers watching it
type Show struct {
	Code    string
	Host    string
	Viewers map[string]*Viewer // viewerID -> Viewer
	Reveal  Revealer

	mu          sync.RWMutex
	sseClients  map[chan SSEMessage]string // channel -> viewerID
	pubMu       sync.Mutex
	lastVersion uint64
}

// Viewer is someone watching a show
type Viewer struct {
	ID   string
	Name string
}

// SSEMessage represents a message sent via Server-Sent Events
type SSEMessage struct {
	Event string // Event type (e.g., "grid-update", "nav-redirect")
	Data  string // HTML content or data to send
}

// Lock acquires the show's write lock
func (s *Show) Lock() {
	s.mu.Lock()
}

// Unlock releases the show's write lock
func (s *Show) Unlock() {
	s.mu.Unlock()
}

// RLock acquires the show's read lock
func (s *Show) RLock() {
	s.mu.RLock()
}

// RUnlock releases the show's read lock
func (s *Show) RUnlock() {
	s.mu.RUnlock()
}

// GetSSEClients returns a copy of the SSE clients map (must be called with lock held)
func (s *Show) GetSSEClients() map[chan SSEMessage]string {
	clients := make(map[chan SSEMessage]string, len(s.sseClients))
	for k, v := range s.sseClients {
		clients[k] = v
	}
	return clients
}

// AddSSEClient adds a new SSE client to the show
func (s *Show) AddSSEClient(client chan SSEMessage, viewerID string) {
	if s.sseClients == nil {
		s.sseClients = make(map[chan SSEMessage]string)
	}
	s.sseClients[client] = viewerID
}

// RemoveSSEClient removes an SSE client from the show
func (s *Show) RemoveSSEClient(client chan SSEMessage) {
	delete(s.sseClients, client)
}

// SSEClientCount returns the number of connected SSE clients
func (s *Show) SSEClientCount() int {
	return len(s.sseClients)
}

// PublishIfNewer runs send for snapshot version v unless a version at least
// as new was already published. Publishes are serialized so clients never
// see an older snapshot after a newer one.
func (s *Show) PublishIfNewer(v uint64, send func()) bool {
	s.pubMu.Lock()
	defer s.pubMu.Unlock()
	if v <= s.lastVersion {
		return false
	}
	s.lastVersion = v
	send()
	return true
}
