package export

import (
	"path/filepath"
	"testing"

	"xiangqi/internal/record"
	"xiangqi/internal/translate"
)

func TestRecords(t *testing.T) {
	g, err := record.Parse("1. 炮二平五 马8进7 2. 马二进三 车五进一")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	recs, err := Records("g1", g, translate.New(translate.DefaultOptions(), nil))
	if err != nil {
		t.Fatalf("records: %v", err)
	}
	if len(recs) != 4 {
		t.Fatalf("got %d records", len(recs))
	}
	if recs[0].ICCS != "h2e2" || recs[0].Side != "red" || recs[1].Side != "black" {
		t.Fatalf("unexpected first plies: %+v %+v", recs[0], recs[1])
	}
	if recs[1].FENBefore != recs[0].FENAfter {
		t.Fatalf("plies are not chained")
	}
	if recs[3].Success || recs[3].Error == "" {
		t.Fatalf("last ply should fail: %+v", recs[3])
	}
}

func TestWriteReadParquet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "moves.parquet")
	in := []MoveRecord{
		{GameID: "g1", Ply: 1, Side: "red", Notation: "炮二平五", ICCS: "h2e2", Success: true},
		{GameID: "g1", Ply: 2, Side: "black", Notation: "车五进一", Error: "找不到符合条件的棋子"},
	}
	ch := make(chan MoveRecord, len(in))
	for _, r := range in {
		ch <- r
	}
	close(ch)
	if err := WriteParquet(path, ch, 1); err != nil {
		t.Fatalf("write: %v", err)
	}

	out, err := ReadParquet(path, 1)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("got %d rows", len(out))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Fatalf("row %d: got %+v want %+v", i, out[i], in[i])
		}
	}
}
