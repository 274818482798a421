package machine

// DefaultWrite writes p to the console. Output before Init is discarded.
// Safe for concurrent use.
func DefaultWrite(fd int, p []byte) int {
	w := cons.Load()
	if w == nil {
		return len(p)
	}

	mtx.Lock()
	defer mtx.Unlock()
	n, _ := w.Write(p)
	return n
}

type defaultWriter int

// DefaultWriter is an io.Writer for DefaultWrite.
const DefaultWriter defaultWriter = 0

func (v defaultWriter) Write(p []byte) (int, error) {
	return DefaultWrite(int(v), p), nil
}
