package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Meghali54/Aquilia-AI-sub000/internal/models"
	"github.com/Meghali54/Aquilia-AI-sub000/internal/service"
	"github.com/Meghali54/Aquilia-AI-sub000/internal/state"

	"github.com/dustin/go-humanize"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultMaxUploadBytes = 10 * 1024 * 1024
	DefaultMaxTopN        = 50
	previewLength         = 200
	maxJSONBody           = 1 << 20
)

// fastaExtensions are the upload types the analyzer accepts
var fastaExtensions = map[string]bool{
	".fasta": true,
	".fa":    true,
	".fas":   true,
	".txt":   true,
}

type Handler struct {
	Store          *state.Store
	Logger         *zap.Logger
	MaxTopN        int
	MaxUploadBytes int64
}

func NewHandler(store *state.Store, logger *zap.Logger, maxTopN int, maxUploadBytes int64) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxTopN <= 0 {
		maxTopN = DefaultMaxTopN
	}
	if maxUploadBytes <= 0 {
		maxUploadBytes = DefaultMaxUploadBytes
	}
	return &Handler{
		Store:          store,
		Logger:         logger,
		MaxTopN:        maxTopN,
		MaxUploadBytes: maxUploadBytes,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/health", h.HealthCheck)
	r.Get("/api/status", h.GetStatus)

	// Analysis
	r.Post("/api/fasta/analyze", h.Analyze)
	r.Post("/api/fasta/upload", h.Upload)
	r.Post("/api/fasta/demo/{species}", h.AnalyzeDemo)

	// Catalogue
	r.Get("/api/references", h.ListReferences)
	r.Get("/api/references/{species}", h.GetReference)
	r.Post("/api/references/reload", h.ReloadReferences)
}

// ============================================================================
// Health
// ============================================================================

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("OK"))
}

// GetStatus reports which catalogue is loaded
func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Store.Status())
}

// ============================================================================
// Analysis
// ============================================================================

// Analyze ranks a raw or FASTA formatted sequence from a JSON body
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req models.AnalyzeRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxJSONBody)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	h.analyze(w, req.Sequence, req.TopN)
}

// Upload ranks the first record of an uploaded FASTA file
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.MaxUploadBytes)
	if err := r.ParseMultipartForm(h.MaxUploadBytes); err != nil {
		if isTooLarge(err) {
			writeError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("File exceeds %s", humanize.Bytes(uint64(h.MaxUploadBytes))))
			return
		}
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Missing file field")
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !fastaExtensions[ext] {
		writeError(w, http.StatusUnsupportedMediaType, "Supported formats: .fasta, .fa, .fas, .txt")
		return
	}

	content, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Could not read file")
		return
	}

	h.Logger.Info("fasta upload",
		zap.String("filename", header.Filename),
		zap.String("size", humanize.Bytes(uint64(len(content)))))

	raw := string(content)
	if strings.HasPrefix(strings.TrimSpace(raw), ">") {
		record, err := service.FirstFASTARecord(r.Context(), strings.NewReader(raw))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid FASTA file")
			return
		}
		raw = record.String()
	}

	topN, _ := strconv.Atoi(r.FormValue("topN"))
	h.analyze(w, raw, topN)
}

// AnalyzeDemo runs a catalogue entry's own sequence through the matcher
func (h *Handler) AnalyzeDemo(w http.ResponseWriter, r *http.Request) {
	species := speciesParam(r)
	ref, err := h.Store.Matcher().Reference(species)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	h.analyze(w, ">"+ref.ID+"\n"+ref.Sequence, 0)
}

func (h *Handler) analyze(w http.ResponseWriter, raw string, topN int) {
	matcher := h.Store.Matcher()

	query, err := service.Parse(raw)
	if err != nil {
		if errors.Is(err, service.ErrEmptyInput) {
			writeError(w, http.StatusBadRequest, "sequence is required")
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	topN = h.clampTopN(topN, matcher.TopN())
	matches := matcher.Rank(query, topN)

	resp := models.AnalyzeResponse{
		AnalysisID: uuid.NewString(),
		Header:     query.Header,
		Length:     len(query.Sequence),
		Preview:    preview(query.Sequence),
		Matches:    matches,
	}

	fields := []zap.Field{
		zap.String("analysis_id", resp.AnalysisID),
		zap.Int("length", resp.Length),
		zap.Int("matches", len(matches)),
	}
	if len(matches) > 0 {
		fields = append(fields,
			zap.String("top_species", matches[0].ReferenceID),
			zap.Float64("top_similarity", matches[0].Similarity))
	}
	h.Logger.Info("sequence analyzed", fields...)

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) clampTopN(requested, fallback int) int {
	if requested <= 0 {
		requested = fallback
	}
	if requested > h.MaxTopN {
		requested = h.MaxTopN
	}
	return requested
}

// ============================================================================
// Catalogue
// ============================================================================

// ListReferences returns the catalogue; sequences only with ?sequences=true
func (h *Handler) ListReferences(w http.ResponseWriter, r *http.Request) {
	refs := h.Store.Matcher().References()
	if r.URL.Query().Get("sequences") != "true" {
		for i := range refs {
			refs[i].Sequence = ""
		}
	}

	writeJSON(w, http.StatusOK, models.ReferenceListResponse{
		Count:      len(refs),
		References: refs,
	})
}

func (h *Handler) GetReference(w http.ResponseWriter, r *http.Request) {
	ref, err := h.Store.Matcher().Reference(speciesParam(r))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, ref)
}

// ReloadReferences re-reads the configured source; the old catalogue stays on failure
func (h *Handler) ReloadReferences(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Reload(r.Context()); err != nil {
		h.Logger.Error("reference reload failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, h.Store.Status())
}

// ============================================================================
// Helpers
// ============================================================================

func speciesParam(r *http.Request) string {
	species := chi.URLParam(r, "species")
	if unescaped, err := url.PathUnescape(species); err == nil {
		species = unescaped
	}
	return species
}

func preview(seq string) string {
	if len(seq) <= previewLength {
		return seq
	}
	return seq[:previewLength] + "..."
}

func isTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return true
	}
	return strings.Contains(err.Error(), "request body too large")
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, models.ErrorResponse{Error: msg})
}
