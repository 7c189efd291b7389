package http

import (
	"io"
	"strconv"
	"strings"
)

// Response is handed to a Handler for a single request. The handler sets the
// status and headers, then calls Write once.
//
// Write and WriteRaw go to the same connection. Write emits a whole message
// (status line, headers, Content-Length, body); WriteRaw emits bytes as they
// are. Using both on one Response, or calling Write twice, sends an invalid or
// duplicated HTTP message. Neither case is guarded.
type Response struct {
	status  Status
	headers Headers
	writer  io.Writer
	req     *Request
}

// NewResponse binds a Response to w with empty headers and status OK.
func NewResponse(w io.Writer) *Response {
	return newResponse(w, Headers{}, nil)
}

func newResponse(w io.Writer, headers Headers, req *Request) *Response {
	return &Response{
		status:  StatusOK,
		headers: headers,
		writer:  w,
		req:     req,
	}
}

// WithStatus replaces the status and returns r for chaining. Write sends a
// status outside the declared set as 500 Internal Server Error.
func (r *Response) WithStatus(s Status) *Response {
	r.status = s
	return r
}

func (r *Response) Status() Status { return r.status }

// Headers returns the headers that Write will send.
func (r *Response) Headers() Headers { return r.headers }

// Request returns the request being answered. It is nil for a Response built
// with NewResponse.
func (r *Response) Request() *Request { return r.req }

// Write sends the status line, the headers, a Content-Length equal to the
// byte length of body, the blank line and body in a single write to the
// connection. A Content-Length header set by the handler is replaced.
func (r *Response) Write(body string) error {
	var sb strings.Builder
	sb.Grow(len(body) + 128)

	sb.WriteString(r.status.statusLine())
	sb.WriteString("\r\n")
	for _, name := range r.headers.names() {
		if strings.EqualFold(name, headerContentLength) {
			continue
		}
		sb.WriteString(name + ": " + r.headers[name] + "\r\n")
	}
	sb.WriteString(headerContentLength + ": " + strconv.Itoa(len(body)) + "\r\n")
	sb.WriteString("\r\n")
	sb.WriteString(body)

	_, err := io.WriteString(r.writer, sb.String())
	return err
}

// WriteRaw writes p to the connection unchanged. No status line, headers or
// Content-Length are added.
func (r *Response) WriteRaw(p []byte) error {
	_, err := r.writer.Write(p)
	return err
}
