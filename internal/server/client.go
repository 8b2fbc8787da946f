package server

import (
	"net/http"
	"tactics-core/internal/network"
	"tactics-core/pkg/api"
	"tactics-core/pkg/logger"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Настройки WebSocket
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client - подписчик ленты событий на другом конце websocket
type Client struct {
	Conn *websocket.Conn
	Name string

	hub    *network.Broadcaster
	events <-chan network.Envelope
}

func NewClient(conn *websocket.Conn, hub *network.Broadcaster, name string) *Client {
	return &Client{
		Conn:   conn,
		Name:   name,
		hub:    hub,
		events: hub.Register(name),
	}
}

// readPump нужен только для pong и закрытия: входящие сообщения игнорируются
func (c *Client) readPump() {
	defer func() {
		c.hub.Unregister(c.Name)
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("failed to close websocket connection")
		}
		logger.Log.WithField("client", c.Name).Info("Client disconnected")
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logger.Log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			logger.Log.WithError(err).Warn("failed to set pong read deadline")
		}
		return nil
	})

	logger.Log.WithField("client", c.Name).Info("Client subscribed")

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.WithFields(logrus.Fields{"client": c.Name}).WithError(err).Warn("WS error")
			}
			return
		}
	}
}

// writePump отправляет события клиенту + Ping
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("failed to close websocket connection in writePump")
		}
	}()

	for {
		select {
		case env, ok := <-c.events:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				// Хаб закрыл канал (отписка)
				if err := c.Conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					logger.Log.WithError(err).Debug("write close message failed")
				}
				return
			}
			if err := c.Conn.WriteJSON(toEventMessage(env)); err != nil {
				logger.Log.WithError(err).Debug("write json message failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				logger.Log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}

func toEventMessage(env network.Envelope) api.EventMessage {
	ev := env.Event
	msg := api.EventMessage{
		Type:     "EVENT",
		Seq:      env.Seq,
		Event:    ev.Type.String(),
		ObjectID: uint64(ev.ObjectID),
		TargetID: uint64(ev.TargetID),
		MapID:    uint32(ev.MapID),
		From:     api.Position{X: ev.From.X, Y: ev.From.Y},
		To:       api.Position{X: ev.To.X, Y: ev.To.Y},
		Player:   uint8(ev.Player),
		Count:    ev.Count,
		Amount:   ev.Amount,
	}
	if ev.Command != 0 {
		msg.Command = ev.Command.String()
	}
	return msg
}
