// Command fileconvd serves the conversion engine over HTTP: multipart
// uploads in, base64 JSON envelopes out.
package main

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	fileconv "github.com/fileconvd/fileconv-go"
)

var conversionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "fileconv_conversions_total",
	Help: "Conversion outcomes by failure kind (ok for success).",
}, []string{"outcome"})

type server struct {
	engine *fileconv.Engine
	log    *slog.Logger
	cfg    config
}

func main() {
	_ = godotenv.Load()
	cfg := loadConfig()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(log)

	engine := fileconv.New(
		fileconv.WithLogger(log),
		fileconv.WithFFmpegPath(cfg.FFmpegPath),
		fileconv.WithTimeout(cfg.ConvertTimeout),
	)
	s := &server{engine: engine, log: log, cfg: cfg}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/convert", s.handleConvert)
	mux.HandleFunc("GET /api/formats", s.handleFormats)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("OK"))
	})
	mux.Handle("GET /metrics", promhttp.Handler())

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{cfg.CORSOrigin},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
	}).Handler(mux)

	addr := ":" + cfg.Port
	log.Info("fileconvd listening", "addr", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func (s *server) handleConvert(w http.ResponseWriter, r *http.Request) {
	maxBytes := s.cfg.MaxUploadMB << 20
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	if err := r.ParseMultipartForm(maxBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, fileconv.Envelope{Error: "invalid form data or upload failed"})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, fileconv.Envelope{Error: "no file provided"})
		return
	}
	defer file.Close()

	format := r.FormValue("format")
	if format == "" {
		writeJSON(w, http.StatusBadRequest, fileconv.Envelope{Error: "no target format provided"})
		return
	}
	quality, _ := strconv.Atoi(r.FormValue("quality"))

	data, err := io.ReadAll(file)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, fileconv.Envelope{Error: "upload read failed"})
		return
	}

	res, err := s.engine.Convert(r.Context(), fileconv.Request{
		Data:         data,
		Filename:     header.Filename,
		TargetFormat: format,
		Quality:      quality,
	})
	if err != nil {
		kind := fileconv.KindOf(err)
		conversionsTotal.WithLabelValues(kind.String()).Inc()
		writeJSON(w, statusForKind(kind), fileconv.EncodeError(err))
		return
	}

	conversionsTotal.WithLabelValues("ok").Inc()
	writeJSON(w, http.StatusOK, fileconv.EncodeResult(res))
}

type formatsResponse struct {
	Categories []fileconv.CapabilityEntry `json:"categories"`
	Outputs    map[string][]string        `json:"outputs"`
}

// handleFormats serves the format-picker data: the capability table plus the
// full per-extension output set the dispatcher accepts (registry + bridges).
func (s *server) handleFormats(w http.ResponseWriter, _ *http.Request) {
	resp := formatsResponse{
		Categories: fileconv.Capabilities(),
		Outputs:    map[string][]string{},
	}
	for _, entry := range resp.Categories {
		for _, in := range entry.Inputs {
			if _, ok := resp.Outputs[in]; !ok {
				resp.Outputs[in] = fileconv.SupportedOutputs(in)
			}
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func statusForKind(kind fileconv.Kind) int {
	switch kind {
	case fileconv.KindUnsupportedConversion,
		fileconv.KindEnvironmentUnsupported,
		fileconv.KindConversionFailed:
		return http.StatusBadRequest
	case fileconv.KindTimeout:
		return http.StatusGatewayTimeout
	}
	// Validation errors and anything untyped.
	return http.StatusBadRequest
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil && !errors.Is(err, http.ErrHandlerTimeout) {
		slog.Debug("write response", "error", err)
	}
}
