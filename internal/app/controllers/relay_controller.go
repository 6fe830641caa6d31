package controllers

import (
	"log"
	"net/http"
	"strings"

	"github.com/endri-fradomos/local-api/internal/domain/services"
	"github.com/endri-fradomos/local-api/internal/domain/services/container"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var relayUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The API serves a trusted local network, browsers on any origin may connect.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// RelayController bridges websocket clients to the MQTT broker
type RelayController struct {
	Container *container.ServiceContainer
}

// NewRelayController creates a new relay controller
func NewRelayController(container *container.ServiceContainer) *RelayController {
	return &RelayController{Container: container}
}

// relayToken pulls the JWT from the query string or the Authorization
// header. Browsers cannot set headers on websocket dials, so the query
// parameter is the primary channel.
func relayToken(ctx *gin.Context) string {
	if token := ctx.Query("token"); token != "" {
		return token
	}
	auth := ctx.GetHeader("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

// HandleRelayFunc returns the websocket upgrade handler for GET /ws
// @Summary Command relay websocket
// @Description Upgrades to a websocket; each text frame is a device command forwarded to MQTT
// @Tags relay
// @Param token query string true "JWT"
// @Success 101 {string} string "switching protocols"
// @Failure 401 {object} response.Response
// @Router /ws [get]
func HandleRelayFunc(container *container.ServiceContainer) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewRelayController(container)
		controller.Serve(ctx)
	}
}

// Serve authenticates the dialer, upgrades the connection and pumps
// inbound frames through the relay until the client disconnects.
func (c *RelayController) Serve(ctx *gin.Context) {
	token := relayToken(ctx)
	if token == "" {
		ctx.JSON(http.StatusUnauthorized, gin.H{
			"code":    401,
			"message": "missing token",
			"data":    nil,
		})
		return
	}

	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)
	claims, err := jwtService.ExtractClaims(token)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{
			"code":    401,
			"message": "invalid token",
			"data":    nil,
		})
		return
	}

	conn, err := relayUpgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		log.Printf("[relay] upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	log.Printf("[relay] client connected, user %d", claims.UserID)

	relayService := c.Container.GetService("relay").(services.InterfaceRelayService)
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[relay] read error: %v", err)
			}
			break
		}
		relayService.HandleInbound(conn, claims.UserID, raw)
	}

	log.Printf("[relay] client disconnected, user %d", claims.UserID)
}
