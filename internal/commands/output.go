// Where: internal/commands/output.go
// What: Output helpers for command adapters.
// Why: Centralize UserInterface usage and raw line output.
package commands

import (
	"io"
	"strings"

	"github.com/openmfp/create-portal/internal/infra/config"
	"github.com/openmfp/create-portal/internal/ports"
)

func newUI(out io.Writer, emoji bool) ports.UserInterface {
	return ports.NewConsoleUI(out, emoji)
}

func emojiPrefix(cfg config.Config, emoji string) string {
	if !cfg.EmojiEnabled() {
		return ""
	}
	return emoji + " "
}

func writeString(out io.Writer, text string) {
	if out == nil || text == "" {
		return
	}
	_, _ = io.WriteString(out, text)
}

func writeLine(out io.Writer, line string) {
	if out == nil {
		return
	}
	if strings.HasSuffix(line, "\n") {
		_, _ = io.WriteString(out, line)
		return
	}
	_, _ = io.WriteString(out, line+"\n")
}
