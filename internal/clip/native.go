package clip

import (
	"fmt"
	"runtime"
	"sync"

	"golang.design/x/clipboard"
)

var nativeInit struct {
	once sync.Once
	err  error
}

// initNative initialises golang.design/x/clipboard once per process. Init
// fails when no display connection is available (headless hosts, missing
// DISPLAY), which callers treat as backend construction failure.
func initNative() error {
	nativeInit.once.Do(func() {
		nativeInit.err = clipboard.Init()
	})
	return nativeInit.err
}

// Native is a passthrough over the platform clipboard binding. On macOS and
// Windows the OS owns clipboard contents, so they outlive the process; on
// X11 this process owns the selection and the contents vanish when it
// exits, which is what the fork and bin backends exist to avoid.
type Native struct{}

// NewNative returns the native backend, or an error when no display
// connection could be established.
func NewNative() (*Native, error) {
	if err := initNative(); err != nil {
		return nil, fmt.Errorf("native clipboard: %w", err)
	}
	return &Native{}, nil
}

func (*Native) Name() string { return "native" }

func (*Native) Persistent() bool {
	return runtime.GOOS == "darwin" || runtime.GOOS == "windows"
}

func (*Native) Get() (string, error) {
	return string(clipboard.Read(clipboard.FmtText)), nil
}

func (*Native) Set(text string) error {
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}
