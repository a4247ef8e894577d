package handler

import (
	"net/http"

	"github.com/cultiv-ai/b24bridge/internal/dispatch"
	"github.com/cultiv-ai/b24bridge/internal/domain"
	"github.com/cultiv-ai/b24bridge/internal/extract"
	"github.com/cultiv-ai/b24bridge/internal/logger"
	"github.com/cultiv-ai/b24bridge/internal/metrics"
)

// Reporter writes a human-readable summary of a received message.
type Reporter interface {
	Report(fields *domain.ExtractedFields)
}

// HandleBotMessage processes an ONIMBOTMESSAGEADD delivery: extract the
// message fields, report them, and enqueue an echo reply. The portal
// always gets a 200 once the payload parses; reply delivery failures are
// contained in the dispatcher.
// @Summary Bot message webhook
// @Description Receives ONIMBOTMESSAGEADD events from Bitrix24
// @Tags webhook
// @Accept json
// @Produce json
// @Success 200 {object} ResultResponse
// @Failure 400 {object} ErrorResponse
// @Router /bot/message [post]
func HandleBotMessage(reporter Reporter, dispatcher dispatch.Dispatcher, guard *DeliveryGuard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		if r.Method != http.MethodPost {
			log.Warn("Method not allowed", "method", r.Method)
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		evt, err := DecodeEvent(r)
		if err != nil {
			log.Error("Failed to decode event payload", "error", err)
			metrics.MalformedPayloads.Inc()
			respondError(w, http.StatusBadRequest, ErrMsgMalformedPayload)
			return
		}

		metrics.WebhookEventsTotal.WithLabelValues(evt.Event).Inc()
		log.Debug("Decoded event", "event", evt.Event, "dialog_id", evt.Data.Params.DialogID)

		fields, err := extract.FromEvent(evt)
		if err != nil {
			log.Warn("Rejected malformed event", "error", err)
			metrics.MalformedPayloads.Inc()
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		if guard.Seen(fields.DialogID, evt.Data.Params.MessageID) {
			log.Info("Duplicate delivery suppressed",
				"dialog_id", fields.DialogID,
				"message_id", evt.Data.Params.MessageID)
			metrics.DuplicateDeliveries.Inc()
			respondOK(w)
			return
		}

		reporter.Report(fields)

		log.Info("Bot message received",
			"dialog_id", fields.DialogID,
			"user_id", fields.UserID,
			"links", len(fields.Links),
			"deal_id", fields.DealID)

		switch {
		case fields.AccessToken == "":
			log.Warn("No access token in event, skipping reply", "dialog_id", fields.DialogID)
		case fields.Text == "":
			log.Warn("Empty message, skipping reply", "dialog_id", fields.DialogID)
		default:
			dispatcher.Dispatch(r.Context(), &domain.ReplyMessage{
				DialogID:    fields.DialogID,
				Message:     fields.Text,
				AccessToken: fields.AccessToken,
			})
		}

		respondOK(w)
	}
}
