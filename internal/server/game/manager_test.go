package game

import (
	"errors"
	"sync"
	"testing"

	"xiangqi/internal/translate"
	"xiangqi/internal/xiangqi"
)

func TestManagerPlay(t *testing.T) {
	m := NewManager()
	tr := translate.New(translate.DefaultOptions(), nil)
	g := m.NewGame(nil)
	if g.ID == "" || g.Pos.FEN() != xiangqi.InitialFEN {
		t.Fatalf("unexpected new game: %+v", g)
	}

	res, st, err := m.Play(g.ID, tr, "炮二平五")
	if err != nil || !res.Success || res.ICCSMove != "h2e2" {
		t.Fatalf("play: %v %+v", err, res)
	}
	if st.Plies != 1 || st.Pos.SideToMove != xiangqi.Black || st.Pos.FEN() != res.FENAfter {
		t.Fatalf("state after play: %+v", st)
	}

	res, st, err = m.Play(g.ID, tr, "车五进一")
	if err != nil || res.Success {
		t.Fatalf("bad move should fail without error: %v %+v", err, res)
	}
	if st.Plies != 1 {
		t.Fatalf("failed move must not change the game")
	}

	if _, _, err := m.Play("nope", tr, "炮二平五"); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("unknown game: %v", err)
	}
	if _, err := m.Get("nope"); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("unknown game: %v", err)
	}
}

func TestManagerConcurrentGames(t *testing.T) {
	m := NewManager()
	tr := translate.New(translate.DefaultOptions(), nil)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			g := m.NewGame(nil)
			if res, _, err := m.Play(g.ID, tr, "马二进三"); err != nil || !res.Success {
				t.Errorf("play: %v %+v", err, res)
			}
		}()
	}
	wg.Wait()
	if m.Len() != 16 {
		t.Fatalf("got %d games", m.Len())
	}
}
