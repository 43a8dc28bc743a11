package testutil

import "errors"

// ErrMockWrite is the default error returned by FailingWriter
var ErrMockWrite = errors.New("mock write failure")

// FailingWriter is an io.Writer that accepts a limited number of bytes and
// then fails
type FailingWriter struct {
	Limit   int   // Bytes accepted before failing
	Err     error // Error to return, ErrMockWrite if nil
	Written []byte
}

// Write records p until Limit is reached, then returns Err
func (w *FailingWriter) Write(p []byte) (int, error) {
	err := w.Err
	if err == nil {
		err = ErrMockWrite
	}

	room := w.Limit - len(w.Written)
	if room <= 0 {
		return 0, err
	}
	if len(p) > room {
		w.Written = append(w.Written, p[:room]...)
		return room, err
	}

	w.Written = append(w.Written, p...)
	return len(p), nil
}
