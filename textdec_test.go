package fileconv

import (
	"strings"
	"testing"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

func TestDecodeTextUTF8PassThrough(t *testing.T) {
	in := "plain ascii\nand some UTF-8: héllo, 世界\n"
	if got := decodeText([]byte(in)); got != in {
		t.Errorf("decodeText altered valid UTF-8: %q", got)
	}
}

func TestDecodeTextUTF16(t *testing.T) {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	data, err := enc.Bytes([]byte("hello utf-16 world, this line is long enough for detection"))
	if err != nil {
		t.Fatal(err)
	}

	got := decodeText(data)
	if !strings.Contains(got, "hello utf-16 world") {
		t.Errorf("decodeText(%d UTF-16 bytes) = %q, want the original text back", len(data), got)
	}
}

func TestDecodeTextNeverReturnsInvalidUTF8(t *testing.T) {
	inputs := [][]byte{
		{0xFF, 0xFE, 0xFD},
		{0x80, 0x81, 0x82, 0x83},
		[]byte("mixed valid \xC3 and broken"),
		nil,
	}
	for _, in := range inputs {
		got := decodeText(in)
		if !utf8.ValidString(got) {
			t.Errorf("decodeText(%x) produced invalid UTF-8", in)
		}
	}
}
