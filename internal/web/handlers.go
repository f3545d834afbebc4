package web

import (
	"errors"
	"io"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/logx"

	"dotsandboxes/internal/app"
	"dotsandboxes/pkg/models/game"
	"dotsandboxes/pkg/models/grid"
)

type handlers struct {
	svc *app.Service
}

type createRequest struct {
	Rows    int `json:"rows"`
	Cols    int `json:"cols"`
	Players int `json:"players"`
}

// moveRequest names an edge by the grid coordinates of its two dots.
// The adapter owns pixel-to-dot resolution; only canonical coordinates
// cross this boundary.
type moveRequest struct {
	R1 int `json:"r1"`
	C1 int `json:"c1"`
	R2 int `json:"r2"`
	C2 int `json:"c2"`
}

type edgeJSON struct {
	R1 int `json:"r1"`
	C1 int `json:"c1"`
	R2 int `json:"r2"`
	C2 int `json:"c2"`
}

type boxJSON struct {
	Row    int `json:"row"`
	Col    int `json:"col"`
	Player int `json:"player"`
}

type resultJSON struct {
	Winners []int `json:"winners"`
	Score   int   `json:"score"`
	Tie     bool  `json:"tie"`
}

type stateResponse struct {
	ID      string      `json:"id"`
	Rows    int         `json:"rows"`
	Cols    int         `json:"cols"`
	Players int         `json:"players"`
	Drawn   []edgeJSON  `json:"drawn"`
	Owned   []boxJSON   `json:"owned"`
	Scores  []int       `json:"scores"`
	Current int         `json:"current"`
	Over    bool        `json:"over"`
	Result  *resultJSON `json:"result,omitempty"`
}

type moveResponse struct {
	Player    int           `json:"player"`
	Completed []boxJSON     `json:"completed"`
	State     stateResponse `json:"state"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func newEdgeJSON(e grid.Edge) edgeJSON {
	d1, d2 := e.Dot1(), e.Dot2()
	return edgeJSON{R1: d1.Row(), C1: d1.Col(), R2: d2.Row(), C2: d2.Col()}
}

func newStateResponse(st app.State) stateResponse {
	resp := stateResponse{
		ID:      st.ID,
		Rows:    st.Rows,
		Cols:    st.Cols,
		Players: st.Players,
		Drawn:   make([]edgeJSON, 0, len(st.Drawn)),
		Owned:   make([]boxJSON, 0, len(st.Owned)),
		Scores:  st.Scores,
		Current: st.Current,
		Over:    st.Over,
	}
	for _, e := range st.Drawn {
		resp.Drawn = append(resp.Drawn, newEdgeJSON(e))
	}
	for _, ob := range st.Owned {
		resp.Owned = append(resp.Owned, boxJSON{Row: ob.Box.Row(), Col: ob.Box.Col(), Player: ob.Player})
	}
	if st.Result != nil {
		resp.Result = &resultJSON{Winners: st.Result.Winners, Score: st.Result.Score, Tie: st.Result.Tie()}
	}
	return resp
}

func writeJSON(c *gin.Context, code int, v any) {
	data, err := sonic.Marshal(v)
	if err != nil {
		logx.WithContext(c.Request.Context()).Errorf("marshal response: %v", err)
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Data(code, "application/json; charset=utf-8", data)
}

func readJSON(c *gin.Context, v any) bool {
	body, err := io.ReadAll(c.Request.Body)
	if err == nil {
		err = sonic.Unmarshal(body, v)
	}
	if err != nil {
		writeJSON(c, http.StatusBadRequest, errorResponse{Error: "malformed request body"})
		return false
	}
	return true
}

// writeError maps domain errors onto HTTP statuses: rejected moves are
// conflicts, bad configuration is a bad request, unknown games are 404.
func writeError(c *gin.Context, err error) {
	var code int
	switch {
	case errors.Is(err, app.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, grid.ErrTooSmall), errors.Is(err, game.ErrPlayerCount):
		code = http.StatusBadRequest
	case errors.Is(err, game.ErrGameOver),
		errors.Is(err, game.ErrAlreadyDrawn),
		errors.Is(err, grid.ErrInvalidEdge),
		errors.Is(err, grid.ErrOutOfBounds):
		code = http.StatusConflict
	default:
		logx.WithContext(c.Request.Context()).Errorf("unexpected error: %v", err)
		code = http.StatusInternalServerError
	}
	writeJSON(c, code, errorResponse{Error: err.Error()})
}

func (h *handlers) create(c *gin.Context) {
	var req createRequest
	if !readJSON(c, &req) {
		return
	}

	st, err := h.svc.Create(req.Rows, req.Cols, req.Players)
	if err != nil {
		writeError(c, err)
		return
	}

	logx.WithContext(c.Request.Context()).Infof("game %s created: %dx%d, %d players", st.ID, st.Rows, st.Cols, st.Players)
	writeJSON(c, http.StatusCreated, newStateResponse(st))
}

func (h *handlers) get(c *gin.Context) {
	st, err := h.svc.Get(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, newStateResponse(st))
}

func (h *handlers) move(c *gin.Context) {
	var req moveRequest
	if !readJSON(c, &req) {
		return
	}

	e := grid.NewEdge(grid.NewDot(req.R1, req.C1), grid.NewDot(req.R2, req.C2))
	res, st, err := h.svc.Move(c.Param("id"), e)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := moveResponse{
		Player:    res.Player,
		Completed: make([]boxJSON, 0, len(res.Completed)),
		State:     newStateResponse(st),
	}
	for _, b := range res.Completed {
		resp.Completed = append(resp.Completed, boxJSON{Row: b.Row(), Col: b.Col(), Player: res.Player})
	}
	writeJSON(c, http.StatusOK, resp)
}

func (h *handlers) reset(c *gin.Context) {
	st, err := h.svc.Reset(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	logx.WithContext(c.Request.Context()).Infof("game %s reset", st.ID)
	writeJSON(c, http.StatusOK, newStateResponse(st))
}
