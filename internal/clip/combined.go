package clip

// Combined routes reads and writes to two independently chosen backends.
// Nothing couples their contents: a Get right after a Set may not observe
// the just-written value, because the fork and bin backends commit
// asynchronously after Set returns. That trade is the point — a cheap read
// path next to a persistent write path.
type Combined struct {
	Reader Provider
	Writer Provider
}

// Combine returns a Provider that reads through reader and writes through
// writer.
func Combine(reader, writer Provider) *Combined {
	return &Combined{Reader: reader, Writer: writer}
}

func (c *Combined) Name() string {
	return c.Reader.Name() + "+" + c.Writer.Name()
}

// Persistent reports the writer's persistence; the reader plays no part.
func (c *Combined) Persistent() bool { return c.Writer.Persistent() }

func (c *Combined) Get() (string, error) { return c.Reader.Get() }

func (c *Combined) Set(text string) error { return c.Writer.Set(text) }
