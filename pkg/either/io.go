package either

import "io"

// BufferedReader is a reader with an inspectable buffer, as *bufio.Reader is.
type BufferedReader interface {
	io.Reader
	Peek(n int) ([]byte, error)
	Discard(n int) (int, error)
	Buffered() int
}

// FlushWriter is a writer that holds data back until flushed, as
// *bufio.Writer is.
type FlushWriter interface {
	io.Writer
	Flush() error
}

// Reader reads from whichever reader e holds.
type Reader[L, R io.Reader] struct {
	Either[L, R]
}

func NewReader[L, R io.Reader](e Either[L, R]) Reader[L, R] {
	return Reader[L, R]{Either: e}
}

func (r Reader[L, R]) live() io.Reader {
	return Fold(r.Either,
		func(l L) io.Reader { return l },
		func(r R) io.Reader { return r })
}

func (r Reader[L, R]) Read(p []byte) (int, error) {
	return r.live().Read(p)
}

// WriteTo drains the live reader into w. A payload that implements
// io.WriterTo does the copy itself.
func (r Reader[L, R]) WriteTo(w io.Writer) (int64, error) {
	return io.Copy(w, r.live())
}

// ReadAll reads the live reader to its end.
func (r Reader[L, R]) ReadAll() ([]byte, error) {
	return io.ReadAll(r.live())
}

// ReadCloser reads from and closes whichever reader e holds.
type ReadCloser[L, R io.ReadCloser] struct {
	Reader[L, R]
}

func NewReadCloser[L, R io.ReadCloser](e Either[L, R]) ReadCloser[L, R] {
	return ReadCloser[L, R]{Reader: Reader[L, R]{Either: e}}
}

func (r ReadCloser[L, R]) Close() error {
	return Fold(r.Either,
		func(l L) error { return l.Close() },
		func(r R) error { return r.Close() })
}

// BufReader exposes the buffer of whichever buffered reader e holds.
type BufReader[L, R BufferedReader] struct {
	Either[L, R]
}

func NewBufReader[L, R BufferedReader](e Either[L, R]) BufReader[L, R] {
	return BufReader[L, R]{Either: e}
}

func (b BufReader[L, R]) live() BufferedReader {
	return Fold(b.Either,
		func(l L) BufferedReader { return l },
		func(r R) BufferedReader { return r })
}

func (b BufReader[L, R]) Read(p []byte) (int, error) {
	return b.live().Read(p)
}

// FillBuffer returns the buffered bytes of the live reader, reading from the
// source first when the buffer is empty. The bytes stay buffered until
// Consume.
func (b BufReader[L, R]) FillBuffer() ([]byte, error) {
	br := b.live()
	if br.Buffered() == 0 {
		if _, err := br.Peek(1); err != nil {
			return nil, err
		}
	}
	return br.Peek(br.Buffered())
}

// Consume marks n bytes returned by FillBuffer as read. n must not exceed
// what FillBuffer returned.
func (b BufReader[L, R]) Consume(n int) {
	_, _ = b.live().Discard(n)
}

func (b BufReader[L, R]) Peek(n int) ([]byte, error) {
	return b.live().Peek(n)
}

func (b BufReader[L, R]) Discard(n int) (int, error) {
	return b.live().Discard(n)
}

func (b BufReader[L, R]) Buffered() int {
	return b.live().Buffered()
}

// Writer writes to whichever writer e holds.
type Writer[L, R io.Writer] struct {
	Either[L, R]
}

func NewWriter[L, R io.Writer](e Either[L, R]) Writer[L, R] {
	return Writer[L, R]{Either: e}
}

func (w Writer[L, R]) live() io.Writer {
	return Fold(w.Either,
		func(l L) io.Writer { return l },
		func(r R) io.Writer { return r })
}

func (w Writer[L, R]) Write(p []byte) (int, error) {
	return w.live().Write(p)
}

func (w Writer[L, R]) WriteString(s string) (int, error) {
	return io.WriteString(w.live(), s)
}

// BufWriter writes to and flushes whichever buffered writer e holds.
type BufWriter[L, R FlushWriter] struct {
	Either[L, R]
}

func NewBufWriter[L, R FlushWriter](e Either[L, R]) BufWriter[L, R] {
	return BufWriter[L, R]{Either: e}
}

func (w BufWriter[L, R]) live() FlushWriter {
	return Fold(w.Either,
		func(l L) FlushWriter { return l },
		func(r R) FlushWriter { return r })
}

func (w BufWriter[L, R]) Write(p []byte) (int, error) {
	return w.live().Write(p)
}

func (w BufWriter[L, R]) WriteString(s string) (int, error) {
	return io.WriteString(w.live(), s)
}

func (w BufWriter[L, R]) Flush() error {
	return w.live().Flush()
}
