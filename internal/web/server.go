package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"bluechips/internal/domain"
	"bluechips/internal/page"
	"bluechips/internal/services/allocate"
)

const (
	defaultRows = 3
	maxRows     = 50
	maxBody     = 1 << 20
)

// Options configures a Server.
type Options struct {
	Split     domain.SplitService
	Allocator domain.Allocator
	Logger    *zap.Logger
	// Gatherer backs /metrics; nil disables the endpoint.
	Gatherer prometheus.Gatherer
}

// Server serves the split form and its JSON API.
type Server struct {
	split    domain.SplitService
	alloc    domain.Allocator
	log      *zap.Logger
	gatherer prometheus.Gatherer
	tmpl     *template.Template
	static   fs.FS
}

// NewServer parses the embedded page template and returns a server.
func NewServer(opts Options) (*Server, error) {
	if opts.Split == nil {
		return nil, errors.New("web: missing split service")
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	tmpl, err := template.ParseFS(assets, "assets/index.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("web: parsing template: %w", err)
	}
	static, err := fs.Sub(assets, "assets/static")
	if err != nil {
		return nil, err
	}
	return &Server{
		split:    opts.Split,
		alloc:    opts.Allocator,
		log:      log.Named("web"),
		gatherer: opts.Gatherer,
		tmpl:     tmpl,
		static:   static,
	}, nil
}

// Handler returns the server's routes wrapped in access logging and
// security headers.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /{$}", s.handleForm)
	mux.HandleFunc("POST /api/split", s.handleSplit)
	mux.HandleFunc("POST /api/eval", s.handleEval)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok\n"))
	})
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(s.static)))
	if s.gatherer != nil {
		mux.Handle("GET /metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}
	return s.withAccessLog(withSecurityHeaders(mux))
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	rows := defaultRows
	if v := r.URL.Query().Get("rows"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > maxRows {
			http.Error(w, fmt.Sprintf("rows must be between 1 and %d", maxRows), http.StatusBadRequest)
			return
		}
		rows = n
	}
	entries := make([]domain.ShareEntry, rows)
	for i := range entries {
		entries[i].ID = domain.ShareID("share-" + strconv.Itoa(i+1))
	}
	s.renderPage(w, r, page.NewStatic("", entries))
}

func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBody)
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	ids, shares := r.PostForm["id"], r.PostForm["share"]
	if len(ids) != len(shares) {
		http.Error(w, "each share needs an id", http.StatusBadRequest)
		return
	}
	if len(ids) > maxRows {
		http.Error(w, fmt.Sprintf("at most %d shares", maxRows), http.StatusBadRequest)
		return
	}
	entries := make([]domain.ShareEntry, len(ids))
	for i := range ids {
		entries[i] = domain.ShareEntry{ID: domain.ShareID(ids[i]), Expression: shares[i]}
	}
	s.renderPage(w, r, page.NewStatic(r.PostForm.Get("amount"), entries))
}

func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, p *page.Static) {
	res, err := s.split.Apply(r.Context(), p)
	if err != nil {
		s.log.Error("applying split", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	model := pageModel{Amount: p.Amount, Total: res.Total}
	for _, a := range res.Allocations {
		row := pageRow{ID: string(a.Entry.ID), Expression: a.Entry.Expression, Output: a.Display}
		if !a.Share.Valid() {
			row.Error = a.Share.Err.Error()
		}
		model.Rows = append(model.Rows, row)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.Execute(w, model); err != nil {
		s.log.Warn("rendering page", zap.Error(err))
	}
}

type pageRow struct {
	ID         string
	Expression string
	Output     string
	Error      string
}

type pageModel struct {
	Amount string
	Total  float64
	Rows   []pageRow
}

func (s *Server) handleSplit(w http.ResponseWriter, r *http.Request) {
	var req SplitRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if len(req.Shares) > maxRows {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("at most %d shares", maxRows))
		return
	}

	res := s.split.Calculate(req.Amount, req.Shares)
	resp := NewSplitResponse(res)
	if req.Exact {
		s.addPortions(&resp, res)
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) addPortions(resp *SplitResponse, res domain.Result) {
	if s.alloc == nil {
		resp.PortionsError = "exact allocation is not available"
		return
	}
	amount, ok := amountDecimal(res)
	if !ok {
		resp.PortionsError = "amount is not a number"
		return
	}
	ps, err := s.alloc.Allocate(amount, allocate.WeightsFromResult(res))
	if err != nil {
		resp.PortionsError = err.Error()
		return
	}
	resp.Portions = NewPortionResponses(ps)
}

func (s *Server) handleEval(w http.ResponseWriter, r *http.Request) {
	var req EvalRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	s.writeJSON(w, http.StatusOK, NewEvalResponse(s.split.Validate(req.Expression)))
}

func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBody)
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return false
	}
	return true
}

// writeJSON encodes v before touching w, so an encoding failure still
// reaches the client as a 500 with a JSON error body.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		s.log.Error("encoding response", zap.Error(err))
		status = http.StatusInternalServerError
		b = []byte(`{"error":"internal error"}`)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(b, '\n')); err != nil {
		s.log.Debug("writing response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, struct {
		Error string `json:"error"`
	}{Error: msg})
}
