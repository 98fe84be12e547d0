package cursor

import "iter"

// Chunker splits the remaining bytes of a cursor into fixed-size windows.
// Each call to Next reads one chunk, so the cursor advances as chunks are
// pulled; stopping early leaves the cursor after the last chunk returned.
// A Chunker is single-use.
//
//	ch := c.Split(512)
//	for ch.Next() {
//	    process(ch.Chunk())
//	}
//	if err := ch.Err(); err != nil {
//	    return err
//	}
type Chunker struct {
	c     *Cursor
	size  int
	chunk []byte
	err   error
	done  bool
}

// Split returns a Chunker producing windows of size bytes. The last window is
// shorter when Remaining() is not a multiple of size; no empty window is ever
// produced.
func (c *Cursor) Split(size int) *Chunker {
	ch := &Chunker{c: c, size: size}
	if size <= 0 {
		ch.err = c.fail(ErrKindReadUnknown, "split", size, ErrInvalidChunkSize)
		ch.done = true
	}
	return ch
}

// Next reads the next chunk. It returns false once the cursor is exhausted or
// a read failed; Err distinguishes the two.
func (ch *Chunker) Next() bool {
	if ch.done {
		return false
	}
	rem := ch.c.Remaining()
	if rem == 0 {
		ch.finish(nil)
		return false
	}
	chunk, err := ch.c.Read(min(ch.size, rem))
	if err != nil {
		ch.finish(err)
		return false
	}
	ch.chunk = chunk
	return true
}

func (ch *Chunker) finish(err error) {
	ch.chunk = nil
	ch.err = err
	ch.done = true
}

// Chunk returns the window read by the last successful Next.
func (ch *Chunker) Chunk() []byte { return ch.chunk }

// Err returns the terminal status: nil after normal exhaustion.
func (ch *Chunker) Err() error { return ch.err }

// Chunks returns a range-over-func sequence of the remaining bytes in
// windows of size bytes. It panics on an invalid size.
func (c *Cursor) Chunks(size int) iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		ch := c.Split(size)
		for ch.Next() {
			if !yield(ch.Chunk()) {
				return
			}
		}
		must(ch.Err())
	}
}

// TryChunks is like Chunks but reports failure as a final (nil, err) pair
// instead of panicking.
func (c *Cursor) TryChunks(size int) iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		ch := c.Split(size)
		for ch.Next() {
			if !yield(ch.Chunk(), nil) {
				return
			}
		}
		if err := ch.Err(); err != nil {
			yield(nil, err)
		}
	}
}

// CollectChunks drains TryChunks into Results. Mostly useful in tests and
// small tools.
func (c *Cursor) CollectChunks(size int) []Result[[]byte] {
	var out []Result[[]byte]
	for chunk, err := range c.TryChunks(size) {
		out = append(out, Try(chunk, err))
	}
	return out
}
