package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"tactics-core/internal/domain"
	"tactics-core/internal/engine"
)

// DebugHandler предоставляет доступ к внутреннему состоянию партии (только чтение)
type DebugHandler struct {
	Runner *engine.Runner
}

func NewDebugHandler(r *engine.Runner) *DebugHandler {
	return &DebugHandler{Runner: r}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/history", h.handleHistory)
	mux.HandleFunc("/debug/objects", h.handleObjects)
	mux.HandleFunc("/debug/moves", h.handleMoves)
}

// /debug/history - лог команд с курсором
func (h *DebugHandler) handleHistory(w http.ResponseWriter, r *http.Request) {
	type historyView struct {
		Cursor  int                   `json:"cursor"`
		Entries []engine.HistoryEntry `json:"entries"`
	}

	var view historyView
	err := h.Runner.Read(r.Context(), func(g *engine.Game) {
		view = historyView{Cursor: g.HistoryCursor(), Entries: g.History()}
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, view)
}

// /debug/objects - все объекты партии со всеми компонентами
func (h *DebugHandler) handleObjects(w http.ResponseWriter, r *http.Request) {
	var objects []*domain.Object
	err := h.Runner.Read(r.Context(), func(g *engine.Game) {
		objects = g.Objects()
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, objects)
}

// /debug/moves?object=3 - куда объект может пойти
func (h *DebugHandler) handleMoves(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(r.URL.Query().Get("object"), 10, 64)
	if err != nil {
		http.Error(w, "object query parameter is required", http.StatusBadRequest)
		return
	}

	type moveView struct {
		X     int `json:"x"`
		Y     int `json:"y"`
		Cost  int `json:"cost"`
		Prior struct {
			X int `json:"x"`
			Y int `json:"y"`
		} `json:"prior"`
	}

	var moveErr error
	views := make([]moveView, 0)
	err = h.Runner.Read(r.Context(), func(g *engine.Game) {
		moves, err := g.AvailableMoves(domain.ObjectID(id))
		if err != nil {
			moveErr = err
			return
		}
		for _, m := range moves.Destinations() {
			v := moveView{X: m.Pos.X, Y: m.Pos.Y, Cost: m.Cost}
			v.Prior.X, v.Prior.Y = m.Prior.X, m.Prior.Y
			views = append(views, v)
		}
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	if moveErr != nil {
		http.Error(w, moveErr.Error(), http.StatusNotFound)
		return
	}
	writeJSON(w, views)
}

func writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	w.Header().Set("Content-Type", "application/json")

	json.NewEncoder(w).Encode(data)
}
