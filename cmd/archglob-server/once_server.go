package main

import (
	"net/http"

	"github.com/gorilla/mux"
	opentracing "github.com/opentracing/opentracing-go"

	"github.com/retro-framework/go-archglob/framework/cast"
	"github.com/retro-framework/go-archglob/framework/ctxkey"
	"github.com/retro-framework/go-archglob/framework/once"
	"github.com/retro-framework/go-archglob/framework/types"
)

type onceResponse struct {
	Key     string `json:"key"`
	Session string `json:"session"`
	Ran     bool   `json:"ran"`
}

// onceServer lets clients claim a key, the first claim (per process, or
// per session with ?across=true) gets ran=true, every later one false.
type onceServer struct {
	o   *once.Once
	log types.Logger
}

func (ons onceServer) ServeHTTP(w http.ResponseWriter, req *http.Request) {

	var ctx = req.Context()

	spnOnce, ctx := opentracing.StartSpanFromContext(ctx, "/once")
	defer spnOnce.Finish()

	var (
		key = mux.Vars(req)["key"]
		sid = ctxkey.Session(ctx)
	)

	across, err := cast.Bool(req.URL.Query().Get("across"))
	if err != nil {
		http.Error(w, "across must be a boolean", http.StatusBadRequest)
		return
	}

	ran, err := ons.o.Do(ctx, key, func() error {
		ons.log.Infof("once[%s]: %s claimed by session %s", ctxkey.RequestID(ctx), key, sid)
		return nil
	}, across)
	if err != nil {
		ons.log.Errorf("once[%s]: %s", ctxkey.RequestID(ctx), err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	spnOnce.SetTag("ran", ran)

	writeJSON(w, http.StatusOK, onceResponse{Key: key, Session: string(sid), Ran: ran})
}
