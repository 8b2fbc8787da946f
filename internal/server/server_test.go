package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"tactics-core/internal/config"
	"tactics-core/internal/domain"
	"tactics-core/internal/engine"
	"tactics-core/internal/network"
	"tactics-core/pkg/api"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*engine.Runner, *httptest.Server) {
	t.Helper()

	rules, err := config.DefaultRules().Build()
	require.NoError(t, err)
	g := engine.NewGame(engine.NewConfig(), rules)

	mapID, err := g.SpawnMapLayout("river")
	require.NoError(t, err)
	_, err = g.SpawnObject("rifleman", 1, mapID, domain.TilePos{X: 3, Y: 2})
	require.NoError(t, err)

	runner := engine.NewRunner(g, 0)
	ctx, cancel := context.WithCancel(context.Background())
	go func() { _ = runner.Run(ctx) }()

	ts := httptest.NewServer(New(runner, "").Handler())
	t.Cleanup(func() {
		ts.Close()
		cancel()
	})
	return runner, ts
}

func getJSON(t *testing.T, url string, out any) int {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestServer_HealthAndState(t *testing.T) {
	_, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))

	var summary api.StateSummary
	require.Equal(t, http.StatusOK, getJSON(t, ts.URL+"/state", &summary))
	assert.Equal(t, 1, summary.Maps)
	assert.Equal(t, 1, summary.Objects)
	assert.Equal(t, 2, summary.HistoryLength)
	assert.Equal(t, uint8(1), summary.CurrentPlayer)
}

func TestServer_DebugRoutes(t *testing.T) {
	_, ts := newTestServer(t)

	var history struct {
		Cursor  int `json:"cursor"`
		Entries []struct {
			Kind   string `json:"kind"`
			Status string `json:"status"`
		} `json:"entries"`
	}
	require.Equal(t, http.StatusOK, getJSON(t, ts.URL+"/debug/history", &history))
	assert.Equal(t, 2, history.Cursor)
	require.Len(t, history.Entries, 2)
	assert.Equal(t, "SPAWN_MAP", history.Entries[0].Kind)
	assert.Equal(t, "EXECUTED", history.Entries[1].Status)

	var moves []struct {
		X    int `json:"x"`
		Y    int `json:"y"`
		Cost int `json:"cost"`
	}
	require.Equal(t, http.StatusOK, getJSON(t, ts.URL+"/debug/moves?object=1", &moves))
	assert.NotEmpty(t, moves)
	for _, m := range moves {
		assert.NotEqual(t, 5, m.X, "Без моста реку не перейти")
		assert.LessOrEqual(t, m.Cost, 3)
	}

	assert.Equal(t, http.StatusBadRequest, getJSON(t, ts.URL+"/debug/moves", nil))
	assert.Equal(t, http.StatusNotFound, getJSON(t, ts.URL+"/debug/moves?object=42", nil))

	var objects []map[string]any
	require.Equal(t, http.StatusOK, getJSON(t, ts.URL+"/debug/objects", &objects))
	require.Len(t, objects, 1)
	assert.Equal(t, "rifleman", objects[0]["template"])
}

func TestServer_WebsocketStreamsEvents(t *testing.T) {
	runner, ts := newTestServer(t)
	hub := runner.Game().Hub

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.SubscriberCount() == 1 }, time.Second, 10*time.Millisecond)

	payload, err := json.Marshal(api.MovePayload{ObjectID: 1, To: api.Position{X: 4, Y: 2}})
	require.NoError(t, err)
	resp, err := runner.Submit(context.Background(), api.IntentRequest{Action: "MOVE", Player: 1, Payload: payload})
	require.NoError(t, err)
	require.True(t, resp.OK, resp.Error)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg api.EventMessage
	require.NoError(t, conn.ReadJSON(&msg))

	assert.Equal(t, "EVENT", msg.Type)
	assert.Equal(t, "MOVE_COMPLETE", msg.Event)
	assert.Equal(t, uint64(1), msg.ObjectID)
	assert.Equal(t, api.Position{X: 3, Y: 2}, msg.From)
	assert.Equal(t, api.Position{X: 4, Y: 2}, msg.To)

	// Клиент отключился - подписка снимается
	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return hub.SubscriberCount() == 0 }, time.Second, 10*time.Millisecond)
}

func TestToEventMessage(t *testing.T) {
	msg := toEventMessage(network.Envelope{Seq: 9, Event: domain.Event{
		Type:     domain.EventObjectAttacked,
		ObjectID: 3,
		TargetID: 2,
		Amount:   6,
		Command:  domain.CommandAttackObject,
	}})

	assert.Equal(t, uint64(9), msg.Seq)
	assert.Equal(t, "OBJECT_ATTACKED", msg.Event)
	assert.Equal(t, uint64(2), msg.TargetID)
	assert.Equal(t, "ATTACK", msg.Command)
	assert.Equal(t, 6, msg.Amount)
}
