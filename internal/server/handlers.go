package server

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/matzehuels/domino/pkg/buildinfo"
	"github.com/matzehuels/domino/pkg/domino"
	"github.com/matzehuels/domino/pkg/errors"
	tabio "github.com/matzehuels/domino/pkg/io"
	"github.com/matzehuels/domino/pkg/lr"
	"github.com/matzehuels/domino/pkg/partition"
	"github.com/matzehuels/domino/pkg/pipeline"
	"github.com/matzehuels/domino/pkg/tableau"
)

// =============================================================================
// Request and Response Types
// =============================================================================

type partitionRequest struct {
	Partition string `json:"partition"`
}

type validateResponse struct {
	Valid     bool                `json:"valid"`
	Partition partition.Partition `json:"partition,omitempty"`
	Size      int                 `json:"size"`
	Error     *errorDetail        `json:"error,omitempty"`
}

type transposeResponse struct {
	Partition partition.Partition `json:"partition"`
	Transpose partition.Partition `json:"transpose"`
}

// renderFields selects an optional rendering of a computed tableau.
type renderFields struct {
	Format   string `json:"format,omitempty"`
	Style    string `json:"style,omitempty"`
	CellSize int    `json:"cell_size,omitempty"`
	Labels   bool   `json:"labels,omitempty"`
}

type fillRequest struct {
	Partition string `json:"partition"`
	renderFields
}

type combineRequest struct {
	Left  string `json:"left"`
	Right string `json:"right"`
	renderFields
}

type tableauResponse struct {
	Shape    partition.Partition `json:"shape"`
	Boxes    int                 `json:"boxes"`
	Dominoes int                 `json:"dominoes"`
	Cached   bool                `json:"cached"`
	Tableau  json.RawMessage     `json:"tableau"`
	Rendered string              `json:"rendered,omitempty"`
}

type combineLRRequest struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}

type combinedTerm struct {
	Left        partition.Partition `json:"left"`
	Right       partition.Partition `json:"right"`
	Coefficient int                 `json:"coefficient"`
	Shape       partition.Partition `json:"shape"`
	Tableau     json.RawMessage     `json:"tableau"`
}

type combineLRResponse struct {
	Terms []combinedTerm `json:"terms"`
}

type lrRequest struct {
	First       string `json:"first"`
	Second      string `json:"second"`
	MaxFillings int    `json:"max_fillings,omitempty"`
}

type lrResponse struct {
	*pipeline.LRResult
	Cached bool `json:"cached"`
}

type renderRequest struct {
	Tableau json.RawMessage `json:"tableau"`
	renderFields
}

type treeRequest struct {
	First    string `json:"first"`
	Second   string `json:"second"`
	Format   string `json:"format,omitempty"`
	Detailed bool   `json:"detailed,omitempty"`
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, buildinfo.Current())
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req partitionRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	p, err := pipeline.ParsePartition(req.Partition)
	if err != nil {
		writeJSON(w, http.StatusOK, validateResponse{
			Error: &errorDetail{Code: errors.GetCode(err), Message: errors.UserMessage(err)},
		})
		return
	}
	writeJSON(w, http.StatusOK, validateResponse{Valid: true, Partition: p, Size: p.Size()})
}

func (s *Server) handleTranspose(w http.ResponseWriter, r *http.Request) {
	var req partitionRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	p, err := pipeline.ParsePartition(req.Partition)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := pipeline.CheckCells(s.maxCells(), p); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, transposeResponse{Partition: p, Transpose: partition.Transpose(p)})
}

func (s *Server) handleFill(w http.ResponseWriter, r *http.Request) {
	var req fillRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	p, err := pipeline.ParsePartition(req.Partition)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	res, err := s.runner.Fill(r.Context(), p, s.defaults)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeTableau(w, r, res, req.renderFields)
}

func (s *Server) handleCombine(w http.ResponseWriter, r *http.Request) {
	var req combineRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	left, err := pipeline.ParsePartition(req.Left)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	right, err := pipeline.ParsePartition(req.Right)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	res, err := s.runner.Combine(r.Context(), left, right, s.defaults)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeTableau(w, r, res, req.renderFields)
}

func (s *Server) handleCombineLR(w http.ResponseWriter, r *http.Request) {
	var req combineLRRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	left, err := domino.ParseTerms(req.Left)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	right, err := domino.ParseTerms(req.Right)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	combined, err := s.runner.CombineTerms(r.Context(), left, right, s.defaults)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := combineLRResponse{Terms: make([]combinedTerm, 0, len(combined))}
	for _, c := range combined {
		data, err := encodeTableau(c.Tableau)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		resp.Terms = append(resp.Terms, combinedTerm{
			Left:        c.Left,
			Right:       c.Right,
			Coefficient: c.Coefficient,
			Shape:       c.Tableau.Shape(),
			Tableau:     data,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleLR(w http.ResponseWriter, r *http.Request) {
	var req lrRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	first, second, err := parsePair(req.First, req.Second)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts := s.defaults
	if req.MaxFillings != 0 {
		opts.MaxFillings = req.MaxFillings
	}
	res, err := s.runner.Enumerate(r.Context(), first, second, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if res.Fillings == nil {
		res.Fillings = []lr.Filling{}
	}
	writeJSON(w, http.StatusOK, lrResponse{LRResult: res, Cached: res.Stats.CacheHit})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req renderRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if len(req.Tableau) == 0 {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "tableau is required"))
		return
	}
	t, err := tabio.ReadJSON(bytes.NewReader(req.Tableau))
	if err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid tableau: %v", err))
		return
	}
	opts := s.renderOptions(req.renderFields)
	if opts.Format == "" {
		opts.Format = pipeline.FormatSVG
	}
	data, err := s.runner.Render(r.Context(), t, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", contentType(opts.Format))
	_, _ = w.Write(data)
}

func (s *Server) handleTree(w http.ResponseWriter, r *http.Request) {
	var req treeRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	first, second, err := parsePair(req.First, req.Second)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts := s.defaults
	opts.Format = req.Format
	if opts.Format == "" {
		opts.Format = pipeline.FormatDOT
	}
	opts.Detailed = req.Detailed

	nodes, err := s.runner.Tree(r.Context(), first, second, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	data, err := s.runner.RenderTree(r.Context(), nodes, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", contentType(opts.Format))
	_, _ = w.Write(data)
}

// =============================================================================
// Helpers
// =============================================================================

func (s *Server) writeTableau(w http.ResponseWriter, r *http.Request, res *pipeline.TableauResult, rf renderFields) {
	data, err := encodeTableau(res.Tableau)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	resp := tableauResponse{
		Shape:    res.Shape,
		Boxes:    res.Boxes,
		Dominoes: res.Dominoes,
		Cached:   res.Stats.CacheHit,
		Tableau:  data,
	}
	if rf.Format != "" {
		opts := s.renderOptions(rf)
		if err := errors.ValidateFormat(opts.Format, pipeline.FormatText, pipeline.FormatSVG); err != nil {
			s.writeError(w, r, err)
			return
		}
		out, err := s.runner.Render(r.Context(), res.Tableau, opts)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		resp.Rendered = string(out)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) renderOptions(rf renderFields) pipeline.Options {
	opts := s.defaults
	opts.Format = rf.Format
	if rf.Style != "" {
		opts.Style = rf.Style
	}
	if rf.CellSize != 0 {
		opts.CellSize = rf.CellSize
	}
	opts.Labels = opts.Labels || rf.Labels
	return opts
}

func (s *Server) maxCells() int {
	if s.defaults.MaxCells > 0 {
		return s.defaults.MaxCells
	}
	return pipeline.DefaultMaxCells
}

func parsePair(a, b string) (partition.Partition, partition.Partition, error) {
	first, err := pipeline.ParsePartition(a)
	if err != nil {
		return nil, nil, err
	}
	second, err := pipeline.ParsePartition(b)
	if err != nil {
		return nil, nil, err
	}
	return first, second, nil
}

func encodeTableau(t *tableau.Tableau) (json.RawMessage, error) {
	var buf bytes.Buffer
	if err := tabio.WriteJSON(t, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode tableau")
	}
	return bytes.TrimSpace(buf.Bytes()), nil
}

func contentType(format string) string {
	switch format {
	case pipeline.FormatSVG:
		return "image/svg+xml"
	case pipeline.FormatPNG:
		return "image/png"
	case pipeline.FormatPDF:
		return "application/pdf"
	case pipeline.FormatJSON:
		return "application/json"
	case pipeline.FormatDOT:
		return "text/vnd.graphviz; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}
