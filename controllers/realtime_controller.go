package controllers

import (
	"net/http"

	"github.com/CJR1981/Macro-Tracker/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type RealtimeController struct {
	hub *services.RealtimeHub
}

func NewRealtimeController(hub *services.RealtimeHub) *RealtimeController {
	return &RealtimeController{hub: hub}
}

// Subscribe upgrades the connection and streams profile_changed events for
// the user until the peer hangs up. The read loop only exists to notice the
// close; clients never send anything meaningful.
func (rc *RealtimeController) Subscribe(c *gin.Context) {
	user := c.GetString("user")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client := &services.WSClient{User: user, Conn: conn}
	rc.hub.Register(client)
	defer rc.hub.Unregister(client)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
