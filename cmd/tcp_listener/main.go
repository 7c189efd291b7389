package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net"
	"os"

	"github.com/fatih/color"

	"github.com/baibikov/base-http/internal/http"
)

var addr = flag.String("addr", "127.0.0.1:42069", "address to listen on")

// Prints every request it receives. Connections are closed without a response.
func main() {
	flag.Parse()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	sock, err := net.Listen("tcp", *addr)
	if err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
	defer sock.Close()
	slog.Info("Listening", "addr", sock.Addr().String())

	method := color.New(color.FgCyan, color.Bold)
	for {
		conn, err := sock.Accept()
		if err != nil {
			slog.Error(err.Error())
			continue
		}
		slog.Info("Connection accepted", "remote", conn.RemoteAddr().String())

		r, err := http.RequestFromReader(conn)
		conn.Close()
		if err != nil {
			slog.Error(err.Error())
			continue
		}

		fmt.Printf("Request line:\n- Method: %s (%s)\n- Target: %s\n- Version: %s\n",
			method.Sprint(r.RequestLine.Method),
			r.Method(),
			r.RequestLine.Target,
			r.RequestLine.Version,
		)
		fmt.Printf("Headers:\n")
		fmt.Println(r.Headers.WireString())
	}
}
