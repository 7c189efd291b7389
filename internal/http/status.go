package http

import (
	"strconv"
)

// Status is an HTTP response status. Only the values declared below are
// produced by this package.
type Status int

const (
	StatusOK                  Status = 200
	StatusBadRequest          Status = 400
	StatusNotFound            Status = 404
	StatusInternalServerError Status = 500
)

// Code returns the numeric status code.
func (s Status) Code() int { return int(s) }

// Reason returns the canonical reason phrase, or "" for a status outside the
// declared set.
func (s Status) Reason() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusBadRequest:
		return "Bad Request"
	case StatusNotFound:
		return "Not Found"
	case StatusInternalServerError:
		return "Internal Server Error"
	default:
		return ""
	}
}

func (s Status) String() string {
	return strconv.Itoa(s.Code()) + " " + s.Reason()
}

// statusLine renders "HTTP/1.1 <code> <reason>" without the line terminator.
// A status outside the declared set is sent as 500 Internal Server Error.
func (s Status) statusLine() string {
	if s.Reason() == "" {
		s = StatusInternalServerError
	}
	return "HTTP/1.1 " + s.String()
}
