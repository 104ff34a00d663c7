package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"bms-server/repositories"
	"bms-server/services"
	"bms-server/usecases"
	"bms-server/ws"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Incoming chat payload from a connected session.
type incomingChat struct {
	Text string `json:"text"`
}

// Outgoing broadcast envelope.
type outgoingChat struct {
	ID        string `json:"id"`
	Sender    string `json:"sender"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
}

// ChatHandler groups dependencies for the chat websocket and its history
// endpoint.
type ChatHandler struct {
	hub    *ws.Hub
	chat   *usecases.ChatUseCase
	tokens *services.TokenService
	users  repositories.UserRepository
}

func NewChatHandler(hub *ws.Hub, chat *usecases.ChatUseCase, tokens *services.TokenService, users repositories.UserRepository) *ChatHandler {
	return &ChatHandler{hub: hub, chat: chat, tokens: tokens, users: users}
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// HandleChatWS upgrades to websocket and relays messages to all connected
// sessions. The bearer token is passed as a query parameter because browser
// websocket clients cannot set headers; it is validated exactly like the
// REST endpoints before the upgrade.
// GET /ws?token=<bearer>
func (h *ChatHandler) HandleChatWS(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "token is required"})
		return
	}
	claims, err := h.tokens.Validate(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}
	user, err := h.users.GetByID(claims.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unknown user"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	sessionID := uuid.New().String()
	h.hub.Register(sessionID, conn)
	log.Printf("chat session connected: %s (%s)", sessionID, user.Email)

	defer func() {
		h.hub.Unregister(sessionID)
		log.Printf("chat session disconnected: %s", sessionID)
	}()

	for {
		mt, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("session %s closed connection", sessionID)
			} else {
				log.Printf("read error from %s: %v", sessionID, err)
			}
			return
		}
		if mt != websocket.TextMessage {
			continue
		}

		var incoming incomingChat
		if err := json.Unmarshal(message, &incoming); err != nil {
			log.Printf("invalid json from %s: %v", sessionID, err)
			continue
		}
		if incoming.Text == "" {
			continue
		}

		// Archive first, then fan out to everyone including the sender.
		stored, err := h.chat.Post(user.FullName, incoming.Text)
		if err != nil {
			log.Printf("failed to archive message from %s: %v", sessionID, err)
			continue
		}

		out := outgoingChat{
			ID:        stored.ID,
			Sender:    stored.Sender,
			Text:      stored.Text,
			CreatedAt: stored.CreatedAt,
		}
		b, _ := json.Marshal(out)
		h.hub.Broadcast(b)
	}
}

// FetchRecent handles GET /api/v1/chat/recent, returning the last messages
// oldest first.
func (h *ChatHandler) FetchRecent(c *gin.Context) {
	messages, err := h.chat.Recent()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch chat history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages, "count": len(messages)})
}

// ConnectedSessions handles GET /api/v1/chat/sessions (admin), reporting how
// many sessions the hub currently tracks.
func (h *ChatHandler) ConnectedSessions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"count": h.hub.Count()})
}
