package server

import (
	"context"
	"net/http"
	"regexp"
	"strconv"

	"go.uber.org/zap"

	"github.com/jonathan/cv-online/internal/binding"
	"github.com/jonathan/cv-online/internal/fetch"
	"github.com/jonathan/cv-online/internal/types"
)

var dataFilePattern = regexp.MustCompile(`^/data_([A-Za-z]+)\.json$`)

// languageResponse is the body of GET /lang
type languageResponse struct {
	Lang     types.Language `json:"lang"`
	Sequence uint64         `json:"sequence"`
}

// handleRoot serves the live page at "/" and the content records at /data_<lang>.json.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/" {
		s.handlePage(w, r)
		return
	}
	if m := dataFilePattern.FindStringSubmatch(r.URL.Path); m != nil {
		s.handleDataFile(w, r, m[1])
		return
	}
	s.errorResponse(w, http.StatusNotFound, "not found")
}

// handlePage renders the live page in its current language.
func (s *Server) handlePage(w http.ResponseWriter, _ *http.Request) {
	html, err := s.page.HTML()
	if err != nil {
		s.logger.Error("failed to render page", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to render page")
		return
	}
	s.htmlResponse(w, html)
}

// handleDataFile serves data_<lang>.json from the data directory.
func (s *Server) handleDataFile(w http.ResponseWriter, r *http.Request, tag string) {
	if s.dataDir == "" {
		s.errorResponse(w, http.StatusNotFound, "not found")
		return
	}
	lang, err := types.ParseLanguage(tag)
	if err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	http.ServeFile(w, r, fetch.NewDirSource(s.dataDir).Path(lang))
}

// handleGetLanguage returns the active language of the live page.
func (s *Server) handleGetLanguage(w http.ResponseWriter, _ *http.Request) {
	lang, seq := s.page.Active()
	s.jsonResponse(w, http.StatusOK, languageResponse{Lang: lang, Sequence: seq})
}

// handleSwitchLanguage fetches a record and binds it into the live page.
func (s *Server) handleSwitchLanguage(w http.ResponseWriter, r *http.Request) {
	lang, err := types.ParseLanguage(r.PathValue("lang"))
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	result, err := s.page.Switch(r.Context(), lang)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

// handleRender binds one record into a fresh copy of the skeleton.
// The live page is not touched.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	lang, err := types.ParseLanguage(r.PathValue("lang"))
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	html, report, err := s.render(r.Context(), lang)
	if err != nil {
		s.logger.Error("failed to render language", zap.String("lang", lang.String()), zap.Error(err))
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	w.Header().Set("X-Binding-Applied", strconv.Itoa(report.Count(binding.Applied)))
	s.htmlResponse(w, html)
}

func (s *Server) render(ctx context.Context, lang types.Language) (string, *binding.Report, error) {
	record, err := s.source.Fetch(ctx, lang)
	if err != nil {
		return "", nil, err
	}
	doc, err := s.skeleton.Document()
	if err != nil {
		return "", nil, err
	}
	binding.DedupeContacts(doc)
	report := s.binder.Apply(doc, record, lang)
	binding.MarkActiveLanguage(doc, lang)

	html, err := fetch.RenderDocument(doc)
	if err != nil {
		return "", nil, err
	}
	return html, report, nil
}
