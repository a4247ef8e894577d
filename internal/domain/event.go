package domain

import "encoding/json"

// IncomingEvent is the Bitrix24 bot webhook envelope (ONIMBOTMESSAGEADD and
// friends). It exists only for the lifetime of one request.
type IncomingEvent struct {
	Event string     `json:"event"`
	Data  EventData  `json:"data"`
	Auth  EventAuth  `json:"auth"`
}

// EventData is the "data" section of the event envelope.
type EventData struct {
	Params MessageParams `json:"PARAMS"`
	Bot    BotList       `json:"BOT"`
}

// MessageParams carries the message fields the bridge consumes.
// DIALOG_ID and FROM_USER_ID are the minimum a processable event must have.
type MessageParams struct {
	DialogID        string `json:"DIALOG_ID" validate:"required"`
	FromUserID      string `json:"FROM_USER_ID" validate:"required"`
	Message         string `json:"MESSAGE"`
	MessageID       string `json:"MESSAGE_ID"`
	ChatEntityData1 string `json:"CHAT_ENTITY_DATA_1"`
}

// BotCredential is one entry of the event's BOT section.
type BotCredential struct {
	BotID       string `json:"BOT_ID"`
	BotCode     string `json:"BOT_CODE"`
	AccessToken string `json:"access_token"`
}

// BotList accepts both shapes Bitrix24 sends for the BOT section:
// an array of credential objects, or a single object.
type BotList []BotCredential

// UnmarshalJSON implements the array-or-object tolerance. The object form is
// wrapped into a single-element list so callers only deal with a slice.
func (b *BotList) UnmarshalJSON(data []byte) error {
	var list []BotCredential
	if err := json.Unmarshal(data, &list); err == nil {
		*b = list
		return nil
	}

	var single BotCredential
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	*b = BotList{single}
	return nil
}

// EventAuth is the portal-level auth envelope attached to every event.
// Field set follows Bitrix24's outgoing-hook format.
type EventAuth struct {
	AccessToken      string `json:"access_token"`
	Domain           string `json:"domain"`
	MemberID         string `json:"member_id"`
	ApplicationToken string `json:"application_token"`
}
