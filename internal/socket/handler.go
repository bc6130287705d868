package socket

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins in development
		// In production, restrict to your domains
		return true
	},
}

// Handler handles WebSocket connections
type Handler struct {
	Hub       *Hub
	JWTSecret string
	access    func(projectID, clientID string) bool
}

// NewHandler creates a new WebSocket handler. jwtSecret validates tokens
// from query params; access gates portal clients joining project rooms.
func NewHandler(hub *Hub, jwtSecret string, access func(projectID, clientID string) bool) *Handler {
	return &Handler{
		Hub:       hub,
		JWTSecret: jwtSecret,
		access:    access,
	}
}

// HandleWebSocket handles WebSocket upgrade requests. The JWT comes from a
// query parameter because the browser WebSocket API cannot set custom
// headers.
func (h *Handler) HandleWebSocket(c *gin.Context) {
	tokenString := c.Query("token")
	if tokenString == "" {
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}
	}

	if tokenString == "" {
		log.Println("[WebSocket] No token provided")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No token provided"})
		return
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(h.JWTSecret), nil
	})
	if err != nil {
		log.Printf("[WebSocket] Token parse error: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}
	if !token.Valid {
		log.Println("[WebSocket] Token is not valid")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		log.Println("[WebSocket] Invalid token claims")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
		return
	}

	if exp, ok := claims["exp"].(float64); ok {
		if time.Now().Unix() > int64(exp) {
			log.Println("[WebSocket] Token expired")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token expired"})
			return
		}
	}

	accountID, ok := claims["sub"].(string)
	if !ok || accountID == "" {
		log.Println("[WebSocket] No account ID in token")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No account ID in token"})
		return
	}

	isAdmin, _ := claims["admin"].(bool)
	clientID, _ := claims["clientId"].(string)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[WebSocket] Upgrade error: %v", err)
		return
	}

	log.Printf("[WebSocket] ✅ Client connected: accountID=%s, admin=%v", accountID, isAdmin)

	client := h.newClient(accountID, clientID, isAdmin, conn)
	h.Hub.register <- client

	go client.WritePump()
	go client.ReadPump()
}

func (h *Handler) newClient(accountID, clientID string, isAdmin bool, conn *websocket.Conn) *Client {
	client := &Client{
		ID:        uuid.New().String(),
		AccountID: accountID,
		ClientID:  clientID,
		IsAdmin:   isAdmin,
		Conn:      conn,
		Hub:       h.Hub,
		Send:      make(chan []byte, 256),
		Rooms:     make(map[string]bool),
		lastPing:  time.Now(),
	}
	if h.access != nil && clientID != "" {
		client.canJoin = func(projectID string) bool {
			return h.access(projectID, clientID)
		}
	}
	return client
}
