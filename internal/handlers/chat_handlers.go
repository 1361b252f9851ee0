package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"pizzachat-backend/internal/models"
	"pizzachat-backend/internal/services"
	"pizzachat-backend/internal/store"
	"pizzachat-backend/pkg/httputil"

	"github.com/go-chi/chi/v5"
)

// User-facing response strings, carried over from the widget's
// expectations. The apology is what the visitor sees whenever the
// completion API fails, regardless of the cause.
const (
	apologyReply       = "申し訳ありません。現在ご返答できません。"
	invalidMessageText = "無効なメッセージです。"
)

// ChatHandlers handles HTTP requests for the chat relay.
type ChatHandlers struct {
	chatService *services.ChatService
}

// NewChatHandlers creates a new ChatHandlers instance.
func NewChatHandlers(chatService *services.ChatService) *ChatHandlers {
	return &ChatHandlers{
		chatService: chatService,
	}
}

// HandleChat handles POST /api/chat: one visitor message in, one
// generated reply out.
func (h *ChatHandlers) HandleChat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Message == "" {
		// Fails fast: no history mutation, no model call.
		httputil.RespondJSON(w, http.StatusBadRequest, models.ClientErrorResponse{Message: invalidMessageText})
		return
	}

	reply, err := h.chatService.HandleMessage(r.Context(), req.SessionID, req.Message)
	if err != nil {
		// Any upstream failure maps to the fixed apology; details were
		// already logged by the service.
		httputil.RespondJSON(w, http.StatusInternalServerError, models.ChatResponse{Reply: apologyReply})
		return
	}

	httputil.RespondJSON(w, http.StatusOK, models.ChatResponse{Reply: reply})
}

// HandleGetConversation handles GET /api/conversations/{conversationID}.
func (h *ChatHandlers) HandleGetConversation(w http.ResponseWriter, r *http.Request) {
	conversationID := chi.URLParam(r, "conversationID")

	messages, err := h.chatService.GetConversation(r.Context(), conversationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httputil.RespondJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Conversation not found"})
			return
		}
		httputil.RespondJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to fetch conversation"})
		return
	}

	httputil.RespondJSON(w, http.StatusOK, models.GetConversationResponse{Conversation: messages})
}

// HandleListConversations handles GET /api/conversations.
func (h *ChatHandlers) HandleListConversations(w http.ResponseWriter, r *http.Request) {
	records, err := h.chatService.ListConversations(r.Context())
	if err != nil {
		httputil.RespondJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to fetch conversations"})
		return
	}

	httputil.RespondJSON(w, http.StatusOK, models.ListConversationsResponse{Conversations: records})
}
