package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/jonathan/portfolio-builder/internal/catalog"
	"github.com/jonathan/portfolio-builder/internal/docparse"
	"github.com/jonathan/portfolio-builder/internal/render"
	"github.com/jonathan/portfolio-builder/internal/types"
)

// parseResponse is the JSON body of a successful parse
type parseResponse struct {
	Data       *types.ParsedData       `json:"data"`
	Confidence *types.ConfidenceReport `json:"confidence"`
}

// generateRequest is the JSON body of POST /generate
type generateRequest struct {
	Data       *types.ParsedData   `json:"data" validate:"required"`
	Theme      types.ThemeSettings `json:"theme"`
	TemplateID string              `json:"template_id" validate:"required"`
}

func (s *Server) handleTemplates(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, catalog.List())
}

// readUpload validates and reads the multipart "resume" part, enforcing
// the 5 MB size limit and PDF content type before the parser ever runs.
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "upload exceeds the 5 MB limit")
		return nil, false
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing 'resume' file field")
		return nil, false
	}
	defer func() { _ = file.Close() }()

	contentType := header.Header.Get("Content-Type")
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if contentType != "application/pdf" && ext != ".pdf" {
		writeError(w, http.StatusUnsupportedMediaType, "only application/pdf uploads are supported")
		return nil, false
	}

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read upload")
		return nil, false
	}
	return data, true
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	data, ok := s.readUpload(w, r)
	if !ok {
		return
	}

	parser := docparse.NewParser(nil)
	parsed, report, err := parser.Parse(r.Context(), data)
	if err != nil {
		var malformed *docparse.MalformedError
		if errors.As(err, &malformed) {
			writeError(w, http.StatusUnprocessableEntity, "failed to parse PDF; please upload a valid PDF document")
			return
		}
		writeError(w, http.StatusInternalServerError, "parse failed")
		return
	}

	writeJSON(w, http.StatusOK, parseResponse{Data: parsed, Confidence: report})
}

// handleParseStream parses the upload while streaming progress events,
// then a final result event, over SSE.
func (s *Server) handleParseStream(w http.ResponseWriter, r *http.Request) {
	data, ok := s.readUpload(w, r)
	if !ok {
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	parser := docparse.NewParser(func(p types.Progress) {
		_ = sse.WriteEvent("progress", p)
	})

	parsed, report, err := parser.Parse(r.Context(), data)
	if err != nil {
		sse.WriteError("failed to parse PDF; please upload a valid PDF document")
		return
	}

	_ = sse.WriteEvent("result", parseResponse{Data: parsed, Confidence: report})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	portfolio, err := s.generator.Generate(req.Data, req.Theme, req.TemplateID)
	if err != nil {
		var notFound *render.TemplateNotFoundError
		if errors.As(err, &notFound) {
			writeError(w, http.StatusNotFound, notFound.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "generation failed")
		return
	}

	writeJSON(w, http.StatusOK, portfolio)
}
