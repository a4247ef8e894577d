package server

import "time"

// Header names and values for security middleware
const (
	HeaderContentType               = "X-Content-Type-Options"
	HeaderValueNoSniff              = "nosniff"
	HeaderFrameOptions              = "X-Frame-Options"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderXSSProtection             = "X-XSS-Protection"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderReferrerPolicy            = "Referrer-Policy"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// MaxRequestBodySize limits webhook payloads. Bitrix24 events are small;
// anything near this size is not a legitimate delivery.
const MaxRequestBodySize = 1 << 20 // 1MB

// ReadHeaderTimeout bounds how long a client may take to send headers
const ReadHeaderTimeout = 5 * time.Second

// Log messages
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
)
