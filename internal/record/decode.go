package record

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/transform"
)

var ErrUndecodable = errors.New("record is not UTF-8, GB18030 or Big5 text")

// Decode 把棋谱文件内容转成 UTF-8：先认 UTF-8（去 BOM），再依次试 GB18030、Big5
func Decode(data []byte) (string, error) {
	if bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}) {
		data = data[3:]
	}
	if utf8.Valid(data) {
		return string(data), nil
	}
	for _, enc := range []encoding.Encoding{simplifiedchinese.GB18030, traditionalchinese.Big5} {
		text, err := decodeWith(data, enc)
		if err == nil {
			return text, nil
		}
	}
	return "", ErrUndecodable
}

func decodeWith(data []byte, enc encoding.Encoding) (string, error) {
	reader := transform.NewReader(bytes.NewReader(data), enc.NewDecoder())
	decoded, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	// 解不出来的字节会变成 U+FFFD
	if !utf8.Valid(decoded) || strings.ContainsRune(string(decoded), utf8.RuneError) {
		return "", ErrUndecodable
	}
	return string(decoded), nil
}
