package web

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"

	"dotsandboxes/internal/app"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer() http.Handler {
	return NewServer(app.NewService())
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		data, err := sonic.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		buf.Write(data)
	}
	req := httptest.NewRequest(method, path, &buf)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := sonic.Unmarshal(rr.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response %q: %v", rr.Body.String(), err)
	}
}

func createGame(t *testing.T, h http.Handler, rows, cols, players int) stateResponse {
	t.Helper()
	rr := doJSON(t, h, "POST", "/api/games", createRequest{Rows: rows, Cols: cols, Players: players})
	if rr.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	var st stateResponse
	decode(t, rr, &st)
	if st.ID == "" {
		t.Fatalf("create: missing game id")
	}
	return st
}

func TestCreateAndFetchGame(t *testing.T) {
	h := newTestServer()
	st := createGame(t, h, 3, 4, 2)

	rr := doJSON(t, h, "GET", "/api/games/"+st.ID, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var got stateResponse
	decode(t, rr, &got)
	if got.Rows != 3 || got.Cols != 4 || got.Players != 2 || len(got.Drawn) != 0 || got.Over {
		t.Fatalf("unexpected state: %+v", got)
	}
}

func TestCreateRejectsBadConfig(t *testing.T) {
	h := newTestServer()
	rr := doJSON(t, h, "POST", "/api/games", createRequest{Rows: 1, Cols: 4, Players: 2})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a 1-row grid, got %d", rr.Code)
	}
	rr = doJSON(t, h, "POST", "/api/games", createRequest{Rows: 3, Cols: 3, Players: 1})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a single player, got %d", rr.Code)
	}
}

func TestUnknownGameIs404(t *testing.T) {
	h := newTestServer()
	rr := doJSON(t, h, "GET", "/api/games/missing", nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestPlayFullSingleBoxGame(t *testing.T) {
	h := newTestServer()
	st := createGame(t, h, 2, 2, 2)

	moves := []moveRequest{
		{R1: 0, C1: 0, R2: 0, C2: 1}, // top
		{R1: 1, C1: 0, R2: 1, C2: 1}, // bottom
		{R1: 0, C1: 0, R2: 1, C2: 0}, // left
	}
	for i, m := range moves {
		rr := doJSON(t, h, "POST", "/api/games/"+st.ID+"/moves", m)
		if rr.Code != http.StatusOK {
			t.Fatalf("move %d: expected 200, got %d: %s", i, rr.Code, rr.Body.String())
		}
		var resp moveResponse
		decode(t, rr, &resp)
		if len(resp.Completed) != 0 || resp.State.Over {
			t.Fatalf("move %d: unexpected completion or game over", i)
		}
	}

	// Last edge closes the box for player 1 and ends the game.
	rr := doJSON(t, h, "POST", "/api/games/"+st.ID+"/moves", moveRequest{R1: 0, C1: 1, R2: 1, C2: 1})
	if rr.Code != http.StatusOK {
		t.Fatalf("final move: expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var resp moveResponse
	decode(t, rr, &resp)
	if resp.Player != 1 || len(resp.Completed) != 1 {
		t.Fatalf("expected player 1 to complete the box, got %+v", resp)
	}
	if !resp.State.Over || resp.State.Result == nil {
		t.Fatalf("expected game over with a result, got %+v", resp.State)
	}
	if resp.State.Result.Tie || len(resp.State.Result.Winners) != 1 || resp.State.Result.Winners[0] != 1 {
		t.Fatalf("expected player 1 as sole winner, got %+v", resp.State.Result)
	}

	// The finished game rejects further moves.
	rr = doJSON(t, h, "POST", "/api/games/"+st.ID+"/moves", moveRequest{R1: 0, C1: 0, R2: 0, C2: 1})
	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409 after game over, got %d", rr.Code)
	}
}

func TestRejectedMovesAreConflicts(t *testing.T) {
	h := newTestServer()
	st := createGame(t, h, 3, 3, 2)

	m := moveRequest{R1: 0, C1: 0, R2: 0, C2: 1}
	if rr := doJSON(t, h, "POST", "/api/games/"+st.ID+"/moves", m); rr.Code != http.StatusOK {
		t.Fatalf("first move: expected 200, got %d", rr.Code)
	}

	cases := []struct {
		name string
		move moveRequest
	}{
		{"already drawn", m},
		{"diagonal", moveRequest{R1: 0, C1: 0, R2: 1, C2: 1}},
		{"out of bounds", moveRequest{R1: 2, C1: 2, R2: 2, C2: 3}},
	}
	for _, c := range cases {
		rr := doJSON(t, h, "POST", "/api/games/"+st.ID+"/moves", c.move)
		if rr.Code != http.StatusConflict {
			t.Fatalf("%s: expected 409, got %d", c.name, rr.Code)
		}
		var er errorResponse
		decode(t, rr, &er)
		if er.Error == "" {
			t.Fatalf("%s: expected an error reason", c.name)
		}
	}

	// Rejections leave the drawn count unchanged.
	rr := doJSON(t, h, "GET", "/api/games/"+st.ID, nil)
	var got stateResponse
	decode(t, rr, &got)
	if len(got.Drawn) != 1 {
		t.Fatalf("expected 1 drawn edge after rejections, got %d", len(got.Drawn))
	}
}

func TestResetEndpoint(t *testing.T) {
	h := newTestServer()
	st := createGame(t, h, 2, 3, 2)

	doJSON(t, h, "POST", "/api/games/"+st.ID+"/moves", moveRequest{R1: 0, C1: 0, R2: 0, C2: 1})

	rr := doJSON(t, h, "POST", "/api/games/"+st.ID+"/reset", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("reset: expected 200, got %d", rr.Code)
	}
	var got stateResponse
	decode(t, rr, &got)
	if len(got.Drawn) != 0 || got.Current != 0 || got.Over || got.Result != nil {
		t.Fatalf("expected a fresh state after reset, got %+v", got)
	}
}
