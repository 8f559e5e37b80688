//go:build !windows

package clip

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"go.klb.dev/cliphold/internal/config"
)

// writeScript drops an executable shell script named name into dir.
func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	script := "#!/bin/sh\n" + body + "\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func TestNewX11BinFailsFastWithoutHelpers(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	_, err := NewX11Bin(config.New())
	require.ErrorIs(t, err, ErrNoBinary)
}

func TestNewX11BinPrefersXclipOverXsel(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "xclip", "exit 0")
	writeScript(t, dir, "xsel", "exit 0")
	t.Setenv("PATH", dir)

	b, err := NewX11Bin(config.New())
	require.NoError(t, err)
	require.Equal(t, "xclip", b.Name())
}

func TestNewX11BinFallsBackToXsel(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "xsel", "exit 0")
	t.Setenv("PATH", dir)

	b, err := NewX11Bin(config.New())
	require.NoError(t, err)
	require.Equal(t, "xsel", b.Name())
}

func TestNewX11BinOverrideWinsOverPATH(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "xclip", "exit 0")
	t.Setenv("PATH", dir)

	override := writeScript(t, t.TempDir(), "xclip-custom", "exit 0")
	cfg := config.New()
	cfg.XclipPath = override

	b, err := NewX11Bin(cfg)
	require.NoError(t, err)
	require.Equal(t, override, b.set.path)
	require.Equal(t, override, b.get.path)
}

func TestBinBogusOverrideFailsOnUse(t *testing.T) {
	// Overrides are trusted at construction; the missing binary surfaces
	// as ErrNoBinary on first invocation, and never hangs.
	cfg := config.New()
	cfg.XclipPath = filepath.Join(t.TempDir(), "does-not-exist")

	b, err := NewX11Bin(cfg)
	require.NoError(t, err)

	_, err = b.Get()
	require.ErrorIs(t, err, ErrNoBinary)
	require.ErrorIs(t, b.Set("x"), ErrNoBinary)
}

func TestBinRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := filepath.Join(dir, "clipboard-store")
	// One fake helper serving both directions, dispatching on the fixed
	// xclip argument lists.
	body := fmt.Sprintf(`case "$*" in
*-out*) cat %q ;;
*) cat > %q ;;
esac`, store, store)
	cfg := config.New()
	cfg.XclipPath = writeScript(t, dir, "xclip", body)

	b, err := NewX11Bin(cfg)
	require.NoError(t, err)

	for _, text := range []string{"hello world", "", "line1\nline2\n", "bell \x07 inside", "snowman ☃"} {
		require.NoError(t, b.Set(text))
		got, err := b.Get()
		require.NoError(t, err)
		require.Equal(t, text, got)
	}
}

func TestBinNonZeroExitIsErrorEvenWithOutput(t *testing.T) {
	dir := t.TempDir()
	cfg := config.New()
	cfg.XclipPath = writeScript(t, dir, "xclip", "echo partial output\nexit 3")

	b, err := NewX11Bin(cfg)
	require.NoError(t, err)

	_, err = b.Get()
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, "xclip", exitErr.Bin)
	require.Equal(t, 3, exitErr.Code)

	err = b.Set("x")
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 3, exitErr.Code)
}

func TestBinInvalidUTF8IsDistinctError(t *testing.T) {
	dir := t.TempDir()
	cfg := config.New()
	cfg.XclipPath = writeScript(t, dir, "xclip", `printf '\377\376\375'`)

	b, err := NewX11Bin(cfg)
	require.NoError(t, err)

	_, err = b.Get()
	require.ErrorIs(t, err, ErrNotUTF8)
	var exitErr *ExitError
	require.False(t, errors.As(err, &exitErr))
}

func TestNewWaylandBinResolvesPair(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "wl-copy", "/bin/cat > /dev/null")
	writeScript(t, dir, "wl-paste", "printf data")
	t.Setenv("PATH", dir)

	b, err := NewWaylandBin(config.New())
	require.NoError(t, err)
	require.Equal(t, "wl-copy", b.Name())
	require.True(t, b.Persistent())

	got, err := b.Get()
	require.NoError(t, err)
	require.Equal(t, "data", got)
	require.NoError(t, b.Set("anything"))
}

func TestNewWaylandBinFailsFastWhenHalfMissing(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "wl-paste", "printf data")
	t.Setenv("PATH", dir)

	_, err := NewWaylandBin(config.New())
	require.ErrorIs(t, err, ErrNoBinary)
}

func TestNewWaylandBinIndependentOverrides(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	dir := t.TempDir()

	cfg := config.New()
	cfg.WlCopyPath = writeScript(t, dir, "my-wl-copy", "/bin/cat > /dev/null")
	cfg.WlPastePath = writeScript(t, dir, "my-wl-paste", "printf overridden")

	b, err := NewWaylandBin(cfg)
	require.NoError(t, err)

	got, err := b.Get()
	require.NoError(t, err)
	require.Equal(t, "overridden", got)
	require.NoError(t, b.Set("x"))
}
