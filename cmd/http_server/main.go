package main

import (
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/baibikov/base-http/internal/http"
)

var addr = flag.String("addr", "127.0.0.1:5437", "address to listen on")

const routeThreeBody = `{
	"method": "that is number 3 POST router"
}
`

func routes() *http.Router {
	return http.NewRouter().
		HandleGet("/ping", func(r *http.Response) {
			if err := r.Write("pong"); err != nil {
				slog.Error("writing response", "err", err)
			}
		}).
		HandleGet("/api/v1/route-number-1", func(r *http.Response) {
			r.WithStatus(http.StatusOK).Headers().Set("base-", "router-1")
			if err := r.Write("that is number 1 GET router\n"); err != nil {
				slog.Error("writing response", "err", err)
			}
		}).
		HandleGet("/api/v1/route-number-2", func(r *http.Response) {
			r.Headers().Set("base-", "router-2")
			if err := r.Write("that is number 2 GET router\n"); err != nil {
				slog.Error("writing response", "err", err)
			}
		}).
		HandlePost("/api/v1/route-number-3", func(r *http.Response) {
			r.Headers().Set("Content-Type", http.ContentTypeJSON.String())
			if err := r.WithStatus(http.StatusBadRequest).Write(routeThreeBody); err != nil {
				slog.Error("writing response", "err", err)
			}
		})
}

func main() {
	flag.Parse()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	server, err := http.ListenAndServe(*addr, routes())
	if err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
	defer server.Close()
	slog.Info("Server started",
		"addr", server.Addr().String(),
	)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	slog.Info("Server gracefully stopped")
}
