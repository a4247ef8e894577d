package handler

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	// defaultDedupSize bounds the number of remembered deliveries
	defaultDedupSize = 4096
	// defaultDedupTTL is how long a delivery is remembered. Bitrix24
	// retries failed deliveries within minutes, so a short window is
	// enough to absorb them.
	defaultDedupTTL = 5 * time.Minute
)

// DeliveryGuard suppresses duplicate webhook deliveries. Bitrix24 retries
// a delivery when it does not receive a timely 200, which would otherwise
// produce duplicate replies in the chat.
type DeliveryGuard struct {
	seen *expirable.LRU[string, struct{}]
}

// NewDeliveryGuard creates a guard remembering deliveries for ttl. Zero
// values fall back to defaults.
func NewDeliveryGuard(size int, ttl time.Duration) *DeliveryGuard {
	if size <= 0 {
		size = defaultDedupSize
	}
	if ttl <= 0 {
		ttl = defaultDedupTTL
	}
	return &DeliveryGuard{
		seen: expirable.NewLRU[string, struct{}](size, nil, ttl),
	}
}

// Seen records the delivery and reports whether it was already seen.
// Deliveries without a message id cannot be distinguished and are never
// treated as duplicates.
func (g *DeliveryGuard) Seen(dialogID, messageID string) bool {
	if messageID == "" {
		return false
	}
	key := dialogID + "|" + messageID
	if _, ok := g.seen.Get(key); ok {
		return true
	}
	g.seen.Add(key, struct{}{})
	return false
}
