// Package export 把逐步翻译结果写成 parquet，便于批量分析棋谱。
package export

import (
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/reader"
	"github.com/xitongsys/parquet-go/writer"

	"xiangqi/internal/record"
	"xiangqi/internal/translate"
)

// MoveRecord 是一步棋的翻译结果，一行一步
type MoveRecord struct {
	GameID    string `parquet:"name=game_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	Ply       int32  `parquet:"name=ply, type=INT32"`
	Side      string `parquet:"name=side, type=BYTE_ARRAY, convertedtype=UTF8"`
	Notation  string `parquet:"name=notation, type=BYTE_ARRAY, convertedtype=UTF8"`
	ICCS      string `parquet:"name=iccs, type=BYTE_ARRAY, convertedtype=UTF8"`
	FENBefore string `parquet:"name=fen_before, type=BYTE_ARRAY, convertedtype=UTF8"`
	FENAfter  string `parquet:"name=fen_after, type=BYTE_ARRAY, convertedtype=UTF8"`
	Success   bool   `parquet:"name=success, type=BOOLEAN"`
	Error     string `parquet:"name=error, type=BYTE_ARRAY, convertedtype=UTF8"`
}

// Records 翻译整局棋谱；遇到第一步翻不出来就停，失败那一步也记一行
func Records(gameID string, g *record.Game, tr *translate.Translator) ([]MoveRecord, error) {
	start, err := tr.Position(g.FEN())
	if err != nil {
		return nil, err
	}
	results, _ := tr.TranslateSequence(start, g.Moves)

	out := make([]MoveRecord, 0, len(results))
	before := start.FEN()
	side := start.SideToMove
	for i, res := range results {
		out = append(out, MoveRecord{
			GameID:    gameID,
			Ply:       int32(i + 1),
			Side:      side.String(),
			Notation:  g.Moves[i],
			ICCS:      res.ICCSMove,
			FENBefore: before,
			FENAfter:  res.FENAfter,
			Success:   res.Success,
			Error:     res.ErrorMessage,
		})
		before = res.FENAfter
		side = side.Opposite()
	}
	return out, nil
}

func WriteParquet(path string, records <-chan MoveRecord, parallel int64) error {
	fileWriter, err := local.NewLocalFileWriter(path)
	if err != nil {
		return err
	}
	defer fileWriter.Close()

	parquetWriter, err := writer.NewParquetWriter(fileWriter, new(MoveRecord), parallel)
	if err != nil {
		return err
	}
	parquetWriter.CompressionType = parquet.CompressionCodec_SNAPPY

	for rec := range records {
		if err := parquetWriter.Write(rec); err != nil {
			return err
		}
	}
	if err := parquetWriter.WriteStop(); err != nil {
		return err
	}
	return fileWriter.Close()
}

func ReadParquet(path string, parallel int64) ([]MoveRecord, error) {
	fileReader, err := local.NewLocalFileReader(path)
	if err != nil {
		return nil, err
	}
	defer fileReader.Close()

	parquetReader, err := reader.NewParquetReader(fileReader, new(MoveRecord), parallel)
	if err != nil {
		return nil, err
	}
	defer parquetReader.ReadStop()

	num := int(parquetReader.GetNumRows())
	records := make([]MoveRecord, num)
	if num == 0 {
		return records, nil
	}
	if err := parquetReader.Read(&records); err != nil {
		return nil, err
	}
	return records, nil
}
