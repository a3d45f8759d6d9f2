// Package record 读取中文棋谱文本：[Key "Value"] 头、带回合号的着法列表、{} 注释和结果。
package record

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"xiangqi/internal/notation"
	"xiangqi/internal/xiangqi"
)

type Game struct {
	Headers map[string]string
	Moves   []string
	Result  string
}

var (
	headerLineRe = regexp.MustCompile(`^\s*\[(\w+)\s+"(.*)"\]\s*$`)
	commentRe    = regexp.MustCompile(`(?s)\{.*?\}`)
	moveNumberRe = regexp.MustCompile(`^\d*\.+`)
)

var resultTokens = map[string]string{
	"1-0":     "1-0",
	"0-1":     "0-1",
	"1/2-1/2": "1/2-1/2",
	"*":       "*",
	"红胜":      "1-0",
	"紅勝":      "1-0",
	"黑胜":      "0-1",
	"黑勝":      "0-1",
	"和棋":      "1/2-1/2",
}

// FEN 返回起始局面，没有 [FEN] 头时用开局
func (g *Game) FEN() string {
	if fen := strings.TrimSpace(g.Headers["FEN"]); fen != "" {
		return fen
	}
	return xiangqi.InitialFEN
}

// Parse 解析已解码的棋谱文本；着法只做记谱格式检查，不落子
func Parse(text string) (*Game, error) {
	g := &Game{Headers: make(map[string]string)}

	var body []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if m := headerLineRe.FindStringSubmatch(line); m != nil {
			g.Headers[m[1]] = m[2]
			continue
		}
		body = append(body, line)
	}

	moves := commentRe.ReplaceAllString(strings.Join(body, "\n"), " ")
	for _, tok := range strings.Fields(moves) {
		tok = moveNumberRe.ReplaceAllString(tok, "")
		if tok == "" {
			continue
		}
		if res, ok := resultTokens[tok]; ok {
			g.Result = res
			break
		}
		if _, err := notation.Parse(tok); err != nil {
			return nil, fmt.Errorf("move %d: %w", len(g.Moves)+1, err)
		}
		g.Moves = append(g.Moves, tok)
	}

	if g.Result == "" {
		g.Result = g.Headers["Result"]
	}
	return g, nil
}

func ReadFile(path string) (*Game, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	text, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	g, err := Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}
