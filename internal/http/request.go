package http

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

var (
	ErrEmptyRequest         = errors.New("connection closed before a request line was sent")
	ErrMalformedRequestLine = errors.New("malformed request line")
	ErrRequestTooLarge      = errors.New("request head too large")
)

type State int

const (
	ParsingRequestLine State = iota
	ParsingHeaders
	Done
)

// Request holds the request line and headers of one request. Request bodies
// are never read.
type Request struct {
	RequestLine RequestLine
	Headers     Headers
	state       State
}

// Method returns the parsed method of the request line.
func (r *Request) Method() Method {
	return ParseMethod(r.RequestLine.Method)
}

const buffer_size = 8

// DefaultMaxRequestBytes bounds the request line plus headers.
const DefaultMaxRequestBytes = 1 << 20

// RequestFromReader reads a request line and headers up to the first blank
// line or the end of the stream, whichever comes first.
func RequestFromReader(reader io.Reader) (*Request, error) {
	return readRequest(reader, DefaultMaxRequestBytes)
}

func readRequest(reader io.Reader, maxBytes int) (*Request, error) {
	r := &Request{
		Headers: Headers{},
		state:   ParsingRequestLine,
	}

	unconsumed_bytes := 0
	consumed_bytes := 0
	buf := make([]byte, buffer_size)
	for r.state != Done {
		if unconsumed_bytes == len(buf) {
			// buffer is full, double size of buffer
			buf = grow(buf)
		}

		new_bytes, err := reader.Read(buf[unconsumed_bytes:])
		unconsumed_bytes += new_bytes

		parsed_bytes, perr := r.parse(buf[:unconsumed_bytes])
		if perr != nil {
			return nil, perr
		}
		if parsed_bytes != 0 {
			// remove parsed bytes from buffer
			copy(buf, buf[parsed_bytes:unconsumed_bytes])
			unconsumed_bytes -= parsed_bytes
			consumed_bytes += parsed_bytes
		}
		if r.state == Done {
			break
		}

		if consumed_bytes+unconsumed_bytes > maxBytes {
			return nil, fmt.Errorf("%w: more than %d bytes", ErrRequestTooLarge, maxBytes)
		}

		if errors.Is(err, io.EOF) {
			if err := r.finish(buf[:unconsumed_bytes]); err != nil {
				return nil, err
			}
			break
		} else if err != nil {
			return nil, err
		}
	}
	return r, nil
}

// parse consumes every complete line in data and returns the number of bytes
// consumed. Lines end in "\n" with an optional preceding "\r".
func (r *Request) parse(data []byte) (int, error) {
	total_consumed_bytes := 0
	for r.state != Done {
		idx := bytes.IndexByte(data[total_consumed_bytes:], '\n')
		if idx == -1 {
			break // need more data
		}

		line := bytes.TrimSuffix(data[total_consumed_bytes:total_consumed_bytes+idx], []byte("\r"))
		if err := r.parseLine(string(line)); err != nil {
			return 0, err
		}
		total_consumed_bytes += idx + 1
	}
	return total_consumed_bytes, nil
}

func (r *Request) parseLine(line string) error {
	switch r.state {
	case ParsingRequestLine:
		if err := r.RequestLine.parse(line); err != nil {
			return err
		}
		r.state = ParsingHeaders
		return nil
	case ParsingHeaders:
		if line == "" {
			r.state = Done
			return nil
		}
		r.Headers.parseLine(line)
		return nil
	default:
		return fmt.Errorf("request is in unknown state %d", r.state)
	}
}

// finish handles end of stream. A trailing line without a terminator still
// counts, and the end of the stream also ends the header block.
func (r *Request) finish(rest []byte) error {
	if r.state == ParsingRequestLine && len(rest) == 0 {
		return ErrEmptyRequest
	}
	if len(rest) > 0 {
		if err := r.parseLine(string(bytes.TrimSuffix(rest, []byte("\r")))); err != nil {
			return err
		}
	}
	r.state = Done
	return nil
}
