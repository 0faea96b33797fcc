package main

import (
	"encoding/json"
	"net/http"

	opentracing "github.com/opentracing/opentracing-go"
	"golang.org/x/xerrors"

	"github.com/retro-framework/go-archglob/framework/archglob"
	"github.com/retro-framework/go-archglob/framework/cast"
	"github.com/retro-framework/go-archglob/framework/ctxkey"
	"github.com/retro-framework/go-archglob/framework/matcher"
	"github.com/retro-framework/go-archglob/framework/projections"
	"github.com/retro-framework/go-archglob/framework/types"
)

type globResponse struct {
	Pattern string   `json:"pattern"`
	Outcome string   `json:"outcome,omitempty"`
	Matches []string `json:"matches"`
	Error   string   `json:"error,omitempty"`
}

type globServer struct {
	g   *archglob.Glob
	obs projections.Observer
	log types.Logger
}

func (gs globServer) ServeHTTP(w http.ResponseWriter, req *http.Request) {

	var ctx = req.Context()

	spnGlob, ctx := opentracing.StartSpanFromContext(ctx, "/glob")
	defer spnGlob.Finish()

	var (
		q    = req.URL.Query()
		resp = globResponse{Pattern: q.Get("pattern"), Matches: []string{}}
	)

	if resp.Pattern == "" {
		resp.Error = "pattern is required"
		writeJSON(w, http.StatusBadRequest, resp)
		return
	}

	excludes, err := matcher.CompileExcludes(q["exclude"])
	if err != nil {
		resp.Error = err.Error()
		writeJSON(w, http.StatusBadRequest, resp)
		return
	}

	limit, err := cast.Int(q.Get("limit"))
	if err != nil {
		resp.Error = "limit: " + err.Error()
		writeJSON(w, http.StatusBadRequest, resp)
		return
	}
	if limit < 0 {
		resp.Error = "limit must not be negative"
		writeJSON(w, http.StatusBadRequest, resp)
		return
	}

	res, err := gs.g.Find(ctx, resp.Pattern)
	if xerrors.Is(err, archglob.ErrInvalidPattern) {
		resp.Error = err.Error()
		writeJSON(w, http.StatusBadRequest, resp)
		return
	}
	if err != nil {
		gs.log.Errorf("glob[%s]: %s", ctxkey.RequestID(ctx), err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	gs.obs.Observe(ctx, res)

	resp.Outcome = res.Outcome.String()
	resp.Matches = excludes.Filter(res.Paths)
	if limit > 0 && int64(len(resp.Matches)) > limit {
		resp.Matches = resp.Matches[:limit]
	}
	if res.Err != nil {
		resp.Error = res.Err.Error()
	}
	spnGlob.SetTag("matches", len(resp.Matches))

	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
