package clipboard

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/andareed/siftly-timepicker/logging"
	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
	"github.com/mattn/go-isatty"
)

var errNoOSC52 = errors.New("clipboard unavailable (OSC52 unsupported by terminal)")

// Copy puts text on the system clipboard. When no native clipboard tool is
// available it falls back to an OSC52 escape on stdout.
func Copy(text string) error {
	if !clipboard.Unsupported {
		err := clipboard.WriteAll(text)
		if err == nil {
			logging.Infof("Clipboard: copied via system clipboard")
			return nil
		}
		logging.Warnf("Clipboard: native copy failed: %v", err)
	}
	if !osc52Supported(os.Stdout, os.Getenv) {
		logging.Warnf("Clipboard: OSC52 unavailable (stdout not TTY or TERM=dumb)")
		return errNoOSC52
	}
	return writeOSC52(os.Stdout, text, os.Getenv)
}

// writeOSC52 emits the clipboard escape for text, wrapped for tmux or
// screen when running inside one.
func writeOSC52(w io.Writer, text string, getenv func(string) string) error {
	seq := osc52.New(text)
	switch {
	case getenv("TMUX") != "":
		seq = seq.Tmux()
	case strings.HasPrefix(getenv("TERM"), "screen"):
		seq = seq.Screen()
	}
	if _, err := seq.WriteTo(w); err != nil {
		logging.Warnf("Clipboard: OSC52 write failed: %v", err)
		return err
	}
	logging.Infof("Clipboard: copied via OSC52")
	return nil
}

func osc52Supported(f *os.File, getenv func(string) string) bool {
	if term := getenv("TERM"); term == "" || strings.EqualFold(term, "dumb") {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
