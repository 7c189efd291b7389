package http

import (
	"io"
)

type chunkReader struct {
	data            string
	numBytesPerRead int
	pos             int
}

// Read reads up to len(p) or numBytesPerRead bytes from the string per call
func (cr *chunkReader) Read(p []byte) (n int, err error) {
	if cr.pos >= len(cr.data) {
		return 0, io.EOF
	}
	endIndex := cr.pos + cr.numBytesPerRead
	endIndex = min(endIndex, len(cr.data))
	n = copy(p, cr.data[cr.pos:endIndex])
	cr.pos += n
	return n, nil
}

// failingWriter fails every write after the first `after` bytes.
type failingWriter struct {
	after   int
	written int
}

func (fw *failingWriter) Write(p []byte) (int, error) {
	if fw.written+len(p) > fw.after {
		return 0, io.ErrClosedPipe
	}
	fw.written += len(p)
	return len(p), nil
}
