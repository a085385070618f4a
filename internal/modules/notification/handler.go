package notification

import (
	"log"
	"net/http"

	"pubdesk/internal/pkg/jwt"
	"pubdesk/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origin is enforced by the CORS layer on the REST API; the socket
	// itself authenticates with a token.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handler upgrades authenticated clients onto the notification hub
type Handler struct {
	hub *Hub
	jwt *jwt.Service
}

func NewHandler(hub *Hub, jwtSvc *jwt.Service) *Handler {
	return &Handler{hub: hub, jwt: jwtSvc}
}

func (h *Handler) RegisterRoutes(v1 *gin.RouterGroup) {
	v1.GET("/ws/notifications", h.Connect)
}

// Connect authenticates via the token query parameter because browsers
// cannot set Authorization headers on websocket dials.
func (h *Handler) Connect(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "token query parameter is required")
		return
	}

	claims, err := h.jwt.ValidateToken(token)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid or expired token")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed user_id=%s error=%v", claims.UserID, err)
		return
	}

	h.hub.Register(claims.UserID, conn)

	// Drain the connection; clients only listen, but reading surfaces
	// close frames so the hub entry is cleaned up.
	go func() {
		defer h.hub.Unregister(claims.UserID)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
