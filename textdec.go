package fileconv

import (
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

// decodeText turns raw txt/md bytes into a UTF-8 string. Valid UTF-8 passes
// through; anything else goes through charset detection so legacy uploads
// (Windows-125x, Shift-JIS, GBK...) still convert instead of producing
// mojibake.
func decodeText(data []byte) string {
	if utf8.Valid(data) {
		s := string(data)
		if !strings.ContainsRune(s, '�') {
			return s
		}
	}

	detector := chardet.NewTextDetector()
	results, err := detector.DetectAll(data)
	if err == nil {
		for _, r := range results {
			enc := lookupEncoding(r.Charset)
			if enc == nil {
				continue
			}
			decoded, decErr := enc.NewDecoder().Bytes(data)
			if decErr != nil {
				continue
			}
			s := string(decoded)
			if utf8.ValidString(s) && !strings.ContainsRune(s, '�') {
				return s
			}
		}
	}

	// Last resort: treat as UTF-8 and drop invalid sequences.
	return strings.ToValidUTF8(string(data), "")
}

// lookupEncoding maps detector charset names to Go encodings.
func lookupEncoding(charset string) encoding.Encoding {
	key := strings.ToLower(strings.ReplaceAll(strings.ReplaceAll(charset, "-", ""), "_", ""))
	switch key {
	case "utf8", "utf8bom", "ascii", "usascii":
		return unicode.UTF8
	case "utf16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	case "utf16be":
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	case "iso88591", "latin1":
		return charmap.ISO8859_1
	case "iso885915":
		return charmap.ISO8859_15
	case "windows1250", "cp1250":
		return charmap.Windows1250
	case "windows1251", "cp1251":
		return charmap.Windows1251
	case "windows1252", "cp1252":
		return charmap.Windows1252
	case "koi8r":
		return charmap.KOI8R
	case "shiftjis", "sjis", "cp932", "windows31j":
		return japanese.ShiftJIS
	case "eucjp":
		return japanese.EUCJP
	case "euckr", "cp949":
		return korean.EUCKR
	case "gb2312", "gbk", "cp936", "gb18030":
		return simplifiedchinese.GBK
	case "big5", "cp950":
		return traditionalchinese.Big5
	}
	return nil
}
