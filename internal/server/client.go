package server

import (
	"net/http"
	"time"

	"terminus-veil/internal/engine"
	"terminus-veil/internal/network"
	"terminus-veil/pkg/api"
	"terminus-veil/pkg/logger"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Настройки WebSocket
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 1024
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client - посредник между Websocket и игровой сессией
type Client struct {
	server  *Server
	Conn    *websocket.Conn
	Session *engine.Session
	Send    <-chan api.ServerResponse
}

func newClient(s *Server, conn *websocket.Conn) *Client {
	cfg := s.Config
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	session := engine.NewSession(network.NewSessionID(), cfg)
	session.AutoAdvance = true

	return &Client{
		server:  s,
		Conn:    conn,
		Session: session,
		Send:    s.Hub.Register(session.ID, session),
	}
}

func (c *Client) log() *logrus.Entry {
	return logger.Log.WithFields(logrus.Fields{
		"component":  "ws_client",
		"session_id": c.Session.ID,
	})
}

// readPump читает команды от клиента
func (c *Client) readPump() {
	defer func() {
		c.server.Hub.Unregister(c.Session.ID)
		if err := c.Conn.Close(); err != nil {
			c.log().WithError(err).Debug("failed to close websocket connection")
		}
		c.server.saveJournal(c.Session)
		c.log().Info("Client disconnected")
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.log().WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		return c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	c.log().Info("Client connected")
	c.server.Hub.SendTo(c.Session.ID, *c.Session.Snapshot())

	for {
		var cmd api.ClientCommand
		if err := c.Conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.log().WithError(err).Error("WS read error")
			}
			return
		}

		resp, err := c.Session.Execute(cmd)
		if err != nil {
			c.server.Hub.SendTo(c.Session.ID, api.ServerResponse{
				Type:      "ERROR",
				SessionID: c.Session.ID,
				Error:     err.Error(),
			})
			continue
		}
		c.server.Hub.SendTo(c.Session.ID, *resp)
	}
}

// writePump отправляет данные клиенту + Ping
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.Conn.Close(); err != nil {
			c.log().WithError(err).Debug("failed to close websocket connection in writePump")
		}
	}()

	for {
		select {
		case message, ok := <-c.Send:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.log().WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				if err := c.Conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					c.log().WithError(err).Debug("write close message failed")
				}
				return
			}
			if err := c.Conn.WriteJSON(message); err != nil {
				c.log().WithError(err).Debug("write json message failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.log().WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.log().WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
