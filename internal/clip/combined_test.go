package clip

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// countingProvider records how often each direction is exercised.
type countingProvider struct {
	name       string
	persistent bool
	text       string
	err        error
	gets       int
	sets       int
}

func (p *countingProvider) Name() string     { return p.name }
func (p *countingProvider) Persistent() bool { return p.persistent }

func (p *countingProvider) Get() (string, error) {
	p.gets++
	return p.text, p.err
}

func (p *countingProvider) Set(text string) error {
	p.sets++
	if p.err != nil {
		return p.err
	}
	p.text = text
	return nil
}

func TestCombinedGetNeverTouchesWriter(t *testing.T) {
	reader := &countingProvider{name: "reader", text: "from reader"}
	writer := &countingProvider{name: "writer", text: "from writer"}
	c := Combine(reader, writer)

	got, err := c.Get()
	require.NoError(t, err)
	require.Equal(t, "from reader", got)
	require.Equal(t, 1, reader.gets)
	require.Zero(t, writer.gets)
	require.Zero(t, writer.sets)
}

func TestCombinedSetNeverTouchesReader(t *testing.T) {
	reader := &countingProvider{name: "reader"}
	writer := &countingProvider{name: "writer"}
	c := Combine(reader, writer)

	require.NoError(t, c.Set("hello"))
	require.Equal(t, 1, writer.sets)
	require.Equal(t, "hello", writer.text)
	require.Zero(t, reader.sets)
	require.Zero(t, reader.gets)
	require.Empty(t, reader.text)
}

func TestCombinedNameAndPersistence(t *testing.T) {
	reader := &countingProvider{name: "native"}
	writer := &countingProvider{name: "fork", persistent: true}
	c := Combine(reader, writer)

	require.Equal(t, "native+fork", c.Name())
	// Persistence is a property of the write path alone.
	require.True(t, c.Persistent())

	c = Combine(writer, reader)
	require.False(t, c.Persistent())
}

func TestOSC52WithReader(t *testing.T) {
	reader := &countingProvider{name: "native", text: "stored"}
	o := &OSC52{out: &discardWriter{}}
	c := o.WithReader(reader)

	got, err := c.Get()
	require.NoError(t, err)
	require.Equal(t, "stored", got)
	require.NoError(t, c.Set("x"))
	require.Equal(t, 1, reader.gets)
	require.Zero(t, reader.sets)
}

type discardWriter struct{}

func (*discardWriter) Write(p []byte) (int, error) { return len(p), nil }
