package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	fileconv "github.com/fileconvd/fileconv-go"
)

func testServer(t *testing.T) *server {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return &server{
		engine: fileconv.New(fileconv.WithLogger(log)),
		log:    log,
		cfg: config{
			Port:           "0",
			CORSOrigin:     "*",
			ConvertTimeout: time.Minute,
			MaxUploadMB:    10,
		},
	}
}

func multipartBody(t *testing.T, filename, format string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fw.Write(data); err != nil {
		t.Fatal(err)
	}
	if err := mw.WriteField("format", format); err != nil {
		t.Fatal(err)
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}
	return &buf, mw.FormDataContentType()
}

func TestHandleConvertSuccess(t *testing.T) {
	s := testServer(t)
	body, contentType := multipartBody(t, "note.txt", "pdf", []byte("hello server"))

	req := httptest.NewRequest(http.MethodPost, "/api/convert", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	s.handleConvert(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var env fileconv.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatal(err)
	}
	if !env.Success {
		t.Errorf("Success = false: %s", env.Error)
	}
	if env.Filename != "note.pdf" {
		t.Errorf("Filename = %q, want note.pdf", env.Filename)
	}
	if env.ContentType != "application/pdf" {
		t.Errorf("ContentType = %q, want application/pdf", env.ContentType)
	}
	if env.Size == 0 || env.Data == "" {
		t.Error("envelope carries no data")
	}
}

func TestHandleConvertUnsupportedPair(t *testing.T) {
	s := testServer(t)
	body, contentType := multipartBody(t, "table.csv", "pdf", []byte("a,b\n1,2\n"))

	req := httptest.NewRequest(http.MethodPost, "/api/convert", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	s.handleConvert(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var env fileconv.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatal(err)
	}
	if env.Success || env.Error == "" {
		t.Errorf("failure envelope malformed: %+v", env)
	}
}

func TestHandleConvertMissingInputs(t *testing.T) {
	s := testServer(t)

	t.Run("no file", func(t *testing.T) {
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		if err := mw.WriteField("format", "pdf"); err != nil {
			t.Fatal(err)
		}
		mw.Close()

		req := httptest.NewRequest(http.MethodPost, "/api/convert", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		rec := httptest.NewRecorder()
		s.handleConvert(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("no format", func(t *testing.T) {
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		fw, _ := mw.CreateFormFile("file", "a.txt")
		fw.Write([]byte("x"))
		mw.Close()

		req := httptest.NewRequest(http.MethodPost, "/api/convert", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		rec := httptest.NewRecorder()
		s.handleConvert(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})
}

func TestHandleFormats(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/formats", nil)
	rec := httptest.NewRecorder()
	s.handleFormats(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp formatsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Categories) != 4 {
		t.Errorf("got %d categories, want 4", len(resp.Categories))
	}
	txtOuts, ok := resp.Outputs["txt"]
	if !ok || len(txtOuts) == 0 {
		t.Fatalf("outputs map has no entry for txt: %v", resp.Outputs)
	}
	for _, out := range txtOuts {
		if out == "txt" {
			t.Error("outputs for txt include txt itself")
		}
	}
}

func TestStatusForKind(t *testing.T) {
	tests := []struct {
		kind fileconv.Kind
		want int
	}{
		{fileconv.KindUnsupportedConversion, http.StatusBadRequest},
		{fileconv.KindEnvironmentUnsupported, http.StatusBadRequest},
		{fileconv.KindConversionFailed, http.StatusBadRequest},
		{fileconv.KindTimeout, http.StatusGatewayTimeout},
		{fileconv.KindNone, http.StatusBadRequest},
	}
	for _, tt := range tests {
		if got := statusForKind(tt.kind); got != tt.want {
			t.Errorf("statusForKind(%v) = %d, want %d", tt.kind, got, tt.want)
		}
	}
}
