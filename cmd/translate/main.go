package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"xiangqi/internal/config"
	"xiangqi/internal/export"
	"xiangqi/internal/logging"
	"xiangqi/internal/record"
	"xiangqi/internal/translate"
	"xiangqi/internal/xiangqi"
)

// 用法：
//
//	translate [-fen FEN] 炮二平五 马8进7 ...
//	translate -record game.txt [-record other.txt] [-parquet out.parquet]
func main() {
	cfgPath := flag.String("config", "", "path to config file")
	fen := flag.String("fen", xiangqi.InitialFEN, "start position for moves given as arguments")
	board := flag.Bool("board", false, "print the board after each move")
	parquetPath := flag.String("parquet", "", "write translated record moves to this parquet file")
	parallel := flag.Int64("parallel", 4, "parquet write parallelism")
	var records stringList
	flag.Var(&records, "record", "game record file, may repeat")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger, err := logging.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	tr := translate.New(cfg.Translate.Options(), logger)

	if len(records) > 0 {
		if err := runRecords(tr, logger, records, *parquetPath, *parallel); err != nil {
			logger.Fatalw("translate records", "err", err)
		}
		return
	}

	pos, err := tr.Position(*fen)
	if err != nil {
		log.Fatal(err)
	}
	results, last := tr.TranslateSequence(pos, flag.Args())
	for i, res := range results {
		if !res.Success {
			fmt.Printf("%d. %s\t%s\n", i+1, flag.Arg(i), res.ErrorMessage)
			os.Exit(1)
		}
		fmt.Printf("%d. %s\t%s\n", i+1, flag.Arg(i), res.ICCSMove)
	}
	if *board {
		fmt.Println(last)
	}
	fmt.Println("FEN:", last.FEN())
}

func runRecords(tr *translate.Translator, logger *zap.SugaredLogger, paths []string, parquetPath string, parallel int64) error {
	var all []export.MoveRecord
	for _, path := range paths {
		g, err := record.ReadFile(path)
		if err != nil {
			return err
		}
		id := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		recs, err := export.Records(id, g, tr)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		for _, r := range recs {
			if r.Success {
				fmt.Printf("%s %d. %s\t%s\n", id, r.Ply, r.Notation, r.ICCS)
			} else {
				fmt.Printf("%s %d. %s\t%s\n", id, r.Ply, r.Notation, r.Error)
			}
		}
		logger.Infow("record translated", "file", path, "plies", len(recs), "moves", len(g.Moves))
		all = append(all, recs...)
	}

	if parquetPath == "" {
		return nil
	}
	ch := make(chan export.MoveRecord, len(all))
	for _, r := range all {
		ch <- r
	}
	close(ch)
	if err := export.WriteParquet(parquetPath, ch, parallel); err != nil {
		return err
	}
	logger.Infow("parquet written", "path", parquetPath, "rows", len(all))
	return nil
}

type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}
