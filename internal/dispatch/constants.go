package dispatch

import "time"

// DefaultSendTimeout bounds a single delivery attempt
const DefaultSendTimeout = 10 * time.Second

// Log messages
const (
	LogMsgReplyEnqueued = "Reply enqueued for dispatch"
	LogMsgQueueFull     = "Dispatch queue full, reply dropped"
)
