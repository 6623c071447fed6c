package alignedalloc

import "fmt"

// ErrOutOfMemory indicates the operating system could not provide the
// requested region. On Windows this includes losing the reserved address
// range to another thread between release and commit.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrOutOfMemory struct {
	Size  int
	Align int
	cause error
}

func (e *ErrOutOfMemory) Error() string {
	return fmt.Sprintf("out of memory: %d bytes aligned to %d", e.Size, e.Align)
}

func (e *ErrOutOfMemory) Unwrap() error { return e.cause }
