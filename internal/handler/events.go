package handler

import (
	"net/http"

	"github.com/cultiv-ai/b24bridge/internal/logger"
	"github.com/cultiv-ai/b24bridge/internal/metrics"
)

// HandleBotWelcome acknowledges EVENT_WELCOME_MESSAGE deliveries, sent
// when a user first opens a dialog with the bot. The event is logged and
// acknowledged; no reply is sent.
// @Summary Bot welcome webhook
// @Description Receives EVENT_WELCOME_MESSAGE events from Bitrix24
// @Tags webhook
// @Accept json
// @Produce json
// @Success 200 {object} ResultResponse
// @Router /bot/welcome [post]
func HandleBotWelcome() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		if r.Method != http.MethodPost {
			log.Warn("Method not allowed", "method", r.Method)
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		evt, err := DecodeEvent(r)
		if err != nil {
			// Welcome payload shapes vary; acknowledge regardless
			log.Warn("Unparseable welcome event", "error", err)
			respondOK(w)
			return
		}

		metrics.WebhookEventsTotal.WithLabelValues(evt.Event).Inc()
		log.Info("Welcome event received", "dialog_id", evt.Data.Params.DialogID)

		respondOK(w)
	}
}

// HandleBotDelete acknowledges EVENT_BOT_DELETE deliveries, sent when the
// bot is removed from the portal.
// @Summary Bot delete webhook
// @Description Receives EVENT_BOT_DELETE events from Bitrix24
// @Tags webhook
// @Accept json
// @Produce json
// @Success 200 {object} ResultResponse
// @Router /bot/delete [post]
func HandleBotDelete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		if r.Method != http.MethodPost {
			log.Warn("Method not allowed", "method", r.Method)
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		evt, err := DecodeEvent(r)
		if err != nil {
			log.Warn("Unparseable delete event", "error", err)
			respondOK(w)
			return
		}

		metrics.WebhookEventsTotal.WithLabelValues(evt.Event).Inc()
		log.Info("Bot delete event received")

		respondOK(w)
	}
}
