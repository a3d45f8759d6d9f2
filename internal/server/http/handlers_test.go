package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"xiangqi/internal/server/game"
	"xiangqi/internal/translate"
	"xiangqi/internal/xiangqi"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	h := NewHandler(translate.New(translate.DefaultOptions(), nil), game.NewManager(), nil)
	srv := httptest.NewServer(NewRouter(h))
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, srv *httptest.Server, path string, body any, out any) int {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	resp, err := http.Post(srv.URL+path, "application/json", strings.NewReader(string(data)))
	if err != nil {
		t.Fatalf("post %s: %v", path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusOK && out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s: %v", path, err)
		}
	}
	return resp.StatusCode
}

func TestInitial(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/api/initial")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	var out InitialResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.FEN != xiangqi.InitialFEN {
		t.Fatalf("got %s", out.FEN)
	}
}

func TestTranslateEndpoints(t *testing.T) {
	srv := newTestServer(t)

	var res translate.Result
	if code := post(t, srv, "/api/translate", TranslateRequest{Move: "炮二平五"}, &res); code != http.StatusOK {
		t.Fatalf("status %d", code)
	}
	if !res.Success || res.ICCSMove != "h2e2" {
		t.Fatalf("translate: %+v", res)
	}

	res = translate.Result{}
	post(t, srv, "/api/translate", TranslateRequest{FEN: xiangqi.InitialFEN, Move: "帅五进二"}, &res)
	if res.Success || res.ErrorMessage == "" {
		t.Fatalf("illegal move should fail with a message: %+v", res)
	}

	var seq TranslateSequenceResponse
	post(t, srv, "/api/translate_sequence", TranslateSequenceRequest{Moves: []string{"炮二平五", "马8进7"}}, &seq)
	if len(seq.Results) != 2 || seq.Results[1].ICCSMove != "h9g7" || seq.FEN != seq.Results[1].FENAfter {
		t.Fatalf("sequence: %+v", seq)
	}
	if code := post(t, srv, "/api/translate_sequence", TranslateSequenceRequest{FEN: "bad", Moves: []string{"炮二平五"}}, nil); code != http.StatusBadRequest {
		t.Fatalf("bad fen status %d", code)
	}

	var v ValidateResponse
	post(t, srv, "/api/validate", ValidateRequest{From: "h2", To: "e2"}, &v)
	if !v.Valid {
		t.Fatalf("h2e2 should be valid: %+v", v)
	}
	post(t, srv, "/api/validate", ValidateRequest{From: "e0", To: "e2"}, &v)
	if v.Valid || v.ErrorMessage == "" {
		t.Fatalf("e0e2 should be invalid: %+v", v)
	}

	var lm LegalMovesResponse
	post(t, srv, "/api/legal_moves", LegalMovesRequest{}, &lm)
	if len(lm.Moves) != 44 {
		t.Fatalf("got %d legal moves", len(lm.Moves))
	}

	var d DescribeResponse
	post(t, srv, "/api/describe", DescribeRequest{Move: "h2e2"}, &d)
	if d.Notation != "炮二平五" {
		t.Fatalf("describe: %+v", d)
	}
	if code := post(t, srv, "/api/describe", DescribeRequest{Move: "e5e4"}, nil); code != http.StatusBadRequest {
		t.Fatalf("describe empty square status %d", code)
	}

	resp, err := http.Post(srv.URL+"/api/translate", "application/json", strings.NewReader("{"))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad json status %d", resp.StatusCode)
	}
}

func TestGameFlow(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/new_game", "application/json", nil)
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	var ng NewGameResponse
	if err := json.NewDecoder(resp.Body).Decode(&ng); err != nil {
		t.Fatalf("decode: %v", err)
	}
	resp.Body.Close()
	if ng.GameID == "" || ng.FEN != xiangqi.InitialFEN || ng.ToMove != 0 || len(ng.LegalMoves) != 44 || ng.Status != "ongoing" {
		t.Fatalf("new game: %+v", ng)
	}

	var pr PlayResponse
	post(t, srv, "/api/play", PlayRequest{GameID: ng.GameID, Move: "炮二平五"}, &pr)
	if !pr.Result.Success || pr.ToMove != 1 || pr.FEN != pr.Result.FENAfter {
		t.Fatalf("play: %+v", pr)
	}

	var st StateResponse
	post(t, srv, "/api/state", StateRequest{GameID: ng.GameID}, &st)
	if st.FEN != pr.FEN || st.ToMove != 1 {
		t.Fatalf("state: %+v", st)
	}

	if code := post(t, srv, "/api/play", PlayRequest{GameID: "missing", Move: "炮二平五"}, nil); code != http.StatusNotFound {
		t.Fatalf("missing game status %d", code)
	}
	if code := post(t, srv, "/api/state", StateRequest{GameID: "missing"}, nil); code != http.StatusNotFound {
		t.Fatalf("missing game status %d", code)
	}

	// 一步将死：黑将 d9 被车将，e9 与红帅对脸
	var mate NewGameResponse
	post(t, srv, "/api/new_game", NewGameRequest{FEN: "3k5/9/9/9/9/3R5/9/9/9/4K4 w"}, &mate)
	post(t, srv, "/api/play", PlayRequest{GameID: mate.GameID, Move: "车六进一"}, &pr)
	if !pr.Result.Success || pr.Status != "checkmate" || len(pr.LegalMoves) != 0 {
		t.Fatalf("expected checkmate: %+v", pr)
	}
}

func TestOversizedBody(t *testing.T) {
	srv := newTestServer(t)
	big := TranslateRequest{FEN: strings.Repeat("9/", maxBodyBytes), Move: "炮二平五"}
	if code := post(t, srv, "/api/translate", big, nil); code != http.StatusBadRequest {
		t.Fatalf("oversized translate status %d", code)
	}
	if code := post(t, srv, "/api/new_game", NewGameRequest{FEN: big.FEN}, nil); code != http.StatusBadRequest {
		t.Fatalf("oversized new_game status %d", code)
	}
	var res translate.Result
	if code := post(t, srv, "/api/translate", TranslateRequest{Move: "炮二平五"}, &res); code != http.StatusOK || !res.Success {
		t.Fatalf("small body: status %d %+v", code, res)
	}
}
