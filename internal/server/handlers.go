package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/Naiitikk/cv-creator/internal/document"
	"github.com/Naiitikk/cv-creator/internal/types"
)

// GenerateCVResponse is the success envelope for /api/cv/generate.
type GenerateCVResponse struct {
	Success bool               `json:"success"`
	CV      *document.Document `json:"cv"`
}

// CoverLetterResponse is the success envelope for /api/cv/cover-letter.
type CoverLetterResponse struct {
	Success     bool   `json:"success"`
	CoverLetter string `json:"coverLetter"`
}

// decodeJSON decodes a request body into dst, enforcing the configured body
// size ceiling (inlined profile and project images make bodies large).
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(dst)
}

// failureResponse writes an error envelope with the underlying message
// attached for diagnostics.
func (s *Server) failureResponse(w http.ResponseWriter, status int, message string, err error) {
	s.jsonResponse(w, status, map[string]string{
		"error":   message,
		"details": err.Error(),
	})
}

// handleGenerateCV validates the submission, generates the three content
// sections, and returns the merged CV document. Validation happens before
// any completion call; an upstream failure yields a 500 with no partial cv.
func (s *Server) handleGenerateCV(w http.ResponseWriter, r *http.Request) {
	var req types.CVRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	content, err := s.generator.GenerateSections(r.Context(), &req)
	if err != nil {
		log.Printf("Error generating CV content: %v", err)
		s.failureResponse(w, HTTPStatus(err), "Failed to generate CV content", err)
		return
	}

	s.jsonResponse(w, http.StatusOK, GenerateCVResponse{
		Success: true,
		CV:      document.Merge(&req, content),
	})
}

// handleCoverLetter generates a cover-letter opening paragraph.
func (s *Server) handleCoverLetter(w http.ResponseWriter, r *http.Request) {
	var req types.CoverLetterRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	letter, err := s.generator.GenerateCoverLetter(r.Context(), &req)
	if err != nil {
		log.Printf("Error generating cover letter: %v", err)
		s.failureResponse(w, HTTPStatus(err), "Failed to generate cover letter", err)
		return
	}

	s.jsonResponse(w, http.StatusOK, CoverLetterResponse{
		Success:     true,
		CoverLetter: letter,
	})
}

// handleExport renders a merged CV document to a paginated image-based PDF.
// Failures are surfaced to the caller rather than swallowed.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	var doc document.Document
	if err := s.decodeJSON(w, r, &doc); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if doc.FirstName == "" || doc.LastName == "" {
		s.errorResponse(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	pdf, filename, err := s.exporter.Export(r.Context(), &doc)
	if err != nil {
		log.Printf("Error exporting CV: %v", err)
		s.failureResponse(w, HTTPStatus(err), "Failed to export CV", err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		log.Printf("Error writing PDF response: %v", err)
	}
}
