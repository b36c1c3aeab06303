package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/session"
	"github.com/jonathan/resume-builder/internal/types"
)

// MaxBodyBytes caps request bodies for snapshots and actions
const MaxBodyBytes = 1 << 20

// DownloadFilename is the attachment name of the generated LaTeX source
const DownloadFilename = "resume.tex"

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleCreateSession starts a new editing session from the blank form state
func (s *Server) handleCreateSession(w http.ResponseWriter, _ *http.Request) {
	sess := s.store.Create()
	w.Header().Set("Location", "/sessions/"+sess.ID.String())
	s.jsonResponse(w, http.StatusCreated, sess)
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		s.failure(w, err)
		return
	}
	sess, err := s.store.Get(id)
	if err != nil {
		s.failure(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, sess)
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		s.failure(w, err)
		return
	}
	if err := s.store.Delete(id); err != nil {
		s.failure(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleDispatch applies one action to a session and returns the new state
func (s *Server) handleDispatch(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		s.failure(w, err)
		return
	}

	body, err := readBody(w, r)
	if err != nil {
		s.failure(w, err)
		return
	}
	if err := schemas.ValidateAction(body); err != nil {
		s.failure(w, err)
		return
	}
	action, err := session.DecodeAction(body)
	if err != nil {
		s.failure(w, err)
		return
	}

	sess, err := s.store.Dispatch(id, action)
	if err != nil {
		s.failure(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, sess)
}

// handleDownload serves the session's LaTeX source as a file download
func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	snap, err := s.sessionSnapshot(r)
	if err != nil {
		s.failure(w, err)
		return
	}
	s.writeLaTeX(w, snap)
}

// handlePreview serves the session's HTML preview fragment
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	snap, err := s.sessionSnapshot(r)
	if err != nil {
		s.failure(w, err)
		return
	}
	s.writePreview(w, r, snap)
}

// handleRenderLaTeX renders a posted snapshot without creating a session
func (s *Server) handleRenderLaTeX(w http.ResponseWriter, r *http.Request) {
	snap, err := decodeSnapshot(w, r)
	if err != nil {
		s.failure(w, err)
		return
	}
	s.writeLaTeX(w, snap)
}

// handleRenderPreview previews a posted snapshot without creating a session
func (s *Server) handleRenderPreview(w http.ResponseWriter, r *http.Request) {
	snap, err := decodeSnapshot(w, r)
	if err != nil {
		s.failure(w, err)
		return
	}
	s.writePreview(w, r, snap)
}

func (s *Server) writeLaTeX(w http.ResponseWriter, snap *types.Snapshot) {
	var source string
	if s.templatePath == "" {
		source = rendering.GenerateLaTeX(snap)
	} else {
		var err error
		if source, err = rendering.RenderTemplate(s.templatePath, snap); err != nil {
			s.failure(w, err)
			return
		}
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", DownloadFilename))
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, source)
}

func (s *Server) writePreview(w http.ResponseWriter, r *http.Request, snap *types.Snapshot) {
	view, err := rendering.ParseView(r.URL.Query().Get("view"))
	if err != nil {
		s.failure(w, &ErrValidation{Field: "view", Message: err.Error()})
		return
	}

	html, err := rendering.RenderPreview(snap, rendering.PreviewOptions{View: view})
	if err != nil {
		s.failure(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, html)
}

func (s *Server) sessionSnapshot(r *http.Request) (*types.Snapshot, error) {
	id, err := sessionID(r)
	if err != nil {
		return nil, err
	}
	sess, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	return sess.State.Snapshot(), nil
}

func sessionID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, &ErrValidation{Field: "id", Message: "invalid session id"}
	}
	return id, nil
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, &ErrPayloadTooLarge{Limit: maxErr.Limit}
		}
		return nil, &ErrValidation{Field: "body", Message: err.Error()}
	}
	if len(body) == 0 {
		return nil, &ErrValidation{Field: "body", Message: "request body is empty"}
	}
	return body, nil
}

// decodeSnapshot reads a snapshot body, checks it against the resume schema,
// then decodes and validates the section order.
func decodeSnapshot(w http.ResponseWriter, r *http.Request) (*types.Snapshot, error) {
	body, err := readBody(w, r)
	if err != nil {
		return nil, err
	}
	if err := schemas.ValidateSnapshot(body); err != nil {
		return nil, err
	}

	var snap types.Snapshot
	if err := json.Unmarshal(body, &snap); err != nil {
		return nil, &ErrValidation{Field: "body", Message: "Invalid request body: " + err.Error()}
	}
	if err := snap.Validate(); err != nil {
		return nil, err
	}
	return &snap, nil
}
