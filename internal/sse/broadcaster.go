package sse

import (
	"log"
	"os"
	"time"

	"github.com/yjb94/CulinaryClassWars/internal/game"
	"github.com/yjb94/CulinaryClassWars/internal/models"
)

var debug bool

func init() {
	debug = os.Getenv("DEBUG") != ""
}

// AddClient adds a new SSE client to the show
func AddClient(show *models.Show, client chan models.SSEMessage, viewerID string) {
	show.Lock()
	defer show.Unlock()

	// Warn if the same viewer has multiple SSE connections
	dup := 0
	for _, vid := range show.GetSSEClients() {
		if vid == viewerID {
			dup++
		}
	}
	if dup > 0 {
		log.Printf("WARN: viewer %s opened %d additional SSE connection(s)", viewerID, dup)
	}
	show.AddSSEClient(client, viewerID)
}

// RemoveClient removes an SSE client from the show
func RemoveClient(show *models.Show, client chan models.SSEMessage) {
	show.Lock()
	defer show.Unlock()
	show.RemoveSSEClient(client)
	log.Printf("removeSSEClient: show %s now has %d clients", show.Code, show.SSEClientCount())
}

// Broadcast sends a message to all connected SSE clients, waiting up to
// SSETimeoutSeconds for each one
func Broadcast(show *models.Show, event, data string) {
	show.RLock()
	// Collect all client channels while holding the lock
	clients := show.GetSSEClients()
	show.RUnlock()

	// Send messages WITHOUT holding the lock
	msg := models.SSEMessage{Event: event, Data: data}
	successCount := 0
	for client := range clients {
		select {
		case client <- msg:
			successCount++
		case <-time.After(time.Duration(game.SSETimeoutSeconds) * time.Second):
			if debug {
				log.Printf("broadcastSSE: timeout sending %s to client", event)
			}
		}
	}
	if debug {
		log.Printf("broadcastSSE: event=%s sent to %d/%d clients", event, successCount, len(clients))
	}
}

// BroadcastFrame sends one animation frame to every client that has room
// for all of its messages. Clients that are behind skip the frame. Only use
// it for frames that a later broadcast supersedes; the settled state goes
// through Broadcast.
func BroadcastFrame(show *models.Show, msgs ...models.SSEMessage) {
	show.RLock()
	clients := show.GetSSEClients()
	show.RUnlock()

	skipped := 0
	for client := range clients {
		if cap(client)-len(client) < len(msgs) {
			skipped++
			continue
		}
		for _, msg := range msgs {
			select {
			case client <- msg:
			default:
				// raced with another sender; the rest of the frame is dropped
			}
		}
	}
	if debug && skipped > 0 {
		log.Printf("broadcastFrame: show %s skipped %d/%d slow clients", show.Code, skipped, len(clients))
	}
}
