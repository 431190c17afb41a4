package delivery

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/talkmate/talkmate-backend/internal/ai"
	"github.com/talkmate/talkmate-backend/internal/ports"
)

type ChatHandler struct {
	chat ai.ChatService
	log  *logger.ZapLogger
}

func NewChatHandler(chat ai.ChatService, log *logger.ZapLogger) *ChatHandler {
	return &ChatHandler{
		chat: chat,
		log:  log,
	}
}

type historyItem struct {
	MessageID   int64     `json:"message_id"`
	UserMessage string    `json:"user_message"`
	AIResponse  string    `json:"ai_response"`
	Corrected   *string   `json:"corrected_message"`
	CreatedAt   time.Time `json:"created_at"`
}

func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	result, err := h.chat.Send(r.Context(), userID, req.Text)

	w.Header().Set("Content-Type", "application/json")

	switch {
	case errors.Is(err, ports.ErrEmptyInput):
		_ = json.NewEncoder(w).Encode(map[string]any{"reply": ""})
		return
	case errors.Is(err, ports.ErrGenerationUnavailable):
		h.log.Log(logger.LogEntry{Level: "error", Message: "generation failed", Error: err})
		http.Error(w, "ai service unavailable", http.StatusBadGateway)
		return
	case err != nil:
		h.log.Log(logger.LogEntry{Level: "error", Message: "send failed", Error: err})
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	_ = json.NewEncoder(w).Encode(map[string]any{
		"reply":      result.Reply,
		"message_id": result.MessageID,
	})
}

func (h *ChatHandler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	turns, err := h.chat.History(r.Context(), userID)
	if err != nil {
		h.log.Log(logger.LogEntry{Level: "error", Message: "history failed", Error: err})
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	items := make([]historyItem, 0, len(turns))
	for _, turn := range turns {
		items = append(items, historyItem{
			MessageID:   turn.ID,
			UserMessage: turn.Message,
			AIResponse:  turn.Response,
			Corrected:   turn.Corrected,
			CreatedAt:   turn.CreatedAt,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(items)
}

func (h *ChatHandler) CheckGrammar(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req struct {
		MessageID int64 `json:"message_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	if req.MessageID == 0 {
		http.Error(w, "message id is required", http.StatusBadRequest)
		return
	}

	correction, err := h.chat.CheckGrammar(r.Context(), userID, req.MessageID)

	switch {
	case errors.Is(err, ports.ErrNotFound):
		http.Error(w, "message not found", http.StatusNotFound)
		return
	case errors.Is(err, ports.ErrGenerationUnavailable):
		h.log.Log(logger.LogEntry{Level: "error", Message: "grammar check failed", Error: err})
		http.Error(w, "ai service unavailable", http.StatusBadGateway)
		return
	case err != nil:
		h.log.Log(logger.LogEntry{Level: "error", Message: "grammar check failed", Error: err})
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"original":  correction.Original,
		"corrected": correction.Corrected,
	})
}
