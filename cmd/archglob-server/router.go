package main

import (
	"io"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/retro-framework/go-archglob/framework/archglob"
	"github.com/retro-framework/go-archglob/framework/once"
	"github.com/retro-framework/go-archglob/framework/projections"
	"github.com/retro-framework/go-archglob/framework/types"
)

type server struct {
	glob     *archglob.Glob
	once     *once.Once
	observer projections.Observer
	log      types.Logger
}

func newRouter(s server, accessLog io.Writer) http.Handler {
	rMux := mux.NewRouter()

	rMux.Handle("/glob", globServer{s.glob, s.observer, s.log}).Methods("GET")
	rMux.Handle("/once/{key}", onceServer{s.once, s.log}).Methods("POST")
	rMux.HandleFunc("/healthz", healthz).Methods("GET")

	rMux.Use(requestIDMiddleware{newRequestID}.Middleware)
	rMux.Use(sessionMiddleware)

	var cors = handlers.CORS(
		handlers.AllowedMethods([]string{"GET", "POST"}),
		handlers.AllowedHeaders([]string{sessionHeader}),
	)
	return handlers.CombinedLoggingHandler(accessLog, cors(rMux))
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "ok\n")
}
