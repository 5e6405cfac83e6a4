package sse

// SSE event type constants
const (
	EventNavRedirect    = "nav-redirect"
	EventGridUpdate     = "grid-update"
	EventMessageUpdate  = "message-update"
	EventControlsUpdate = "controls-update"
	EventViewerUpdate   = "viewer-update"
)
