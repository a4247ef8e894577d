package domain

// ExtractedFields is what the extractor derives from one IncomingEvent.
// Links preserve first-occurrence order and keep duplicates. DealID is empty
// when the message carries no deal reference; that is a normal outcome.
type ExtractedFields struct {
	Text        string   `json:"text"`
	DialogID    string   `json:"dialog_id"`
	UserID      string   `json:"user_id"`
	Links       []string `json:"links"`
	DealID      string   `json:"deal_id,omitempty"`
	AccessToken string   `json:"-"`
}

// HasDeal reports whether a deal reference was found.
func (f ExtractedFields) HasDeal() bool { return f.DealID != "" }

// ReplyMessage is the outbound payload for im.message.add.
// Built fresh per request; nothing outlives the request/response cycle.
type ReplyMessage struct {
	DialogID    string
	Message     string
	AccessToken string
}
