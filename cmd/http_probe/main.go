package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	addr   = flag.String("addr", "127.0.0.1:5437", "server address")
	method = flag.String("method", "GET", "request method")
	path   = flag.String("path", "/ping", "request target")
)

// Sends one request and prints the raw response. The status line is coloured
// by status class.
func main() {
	flag.Parse()
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	conn, err := net.Dial("tcp", *addr)
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
	defer conn.Close()

	request := fmt.Sprintf("%s %s HTTP/1.1\r\nHost: %s\r\n\r\n", *method, *path, *addr)
	if _, err := io.WriteString(conn, request); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}

	reader := bufio.NewReader(conn)
	statusLine, err := reader.ReadString('\n')
	if err != nil && statusLine == "" {
		if err == io.EOF {
			color.Yellow("connection closed without a response")
			return
		}
		logger.Error(err.Error())
		os.Exit(1)
	}
	statusColor(statusLine).Print(statusLine)

	if _, err := io.Copy(os.Stdout, reader); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
	fmt.Println()
}

func statusColor(statusLine string) *color.Color {
	parts := strings.Fields(statusLine)
	if len(parts) < 2 || len(parts[1]) == 0 {
		return color.New(color.FgWhite)
	}
	switch parts[1][0] {
	case '2':
		return color.New(color.FgGreen)
	case '4':
		return color.New(color.FgYellow)
	case '5':
		return color.New(color.FgRed)
	default:
		return color.New(color.FgWhite)
	}
}
