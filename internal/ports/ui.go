// Where: internal/ports/ui.go
// What: User interface abstraction for commands and the installer.
// Why: Provide a single output surface so callers stay UI-agnostic.
package ports

import (
	"io"

	"github.com/openmfp/create-portal/internal/infra/ui"
)

// KeyValue is a key/value pair rendered inside a block.
type KeyValue struct {
	Key   string
	Value any
}

// UserInterface exposes high-level output helpers.
type UserInterface interface {
	Info(msg string)
	Warn(msg string)
	Error(msg string)
	Success(msg string)
	Block(emoji, title string, rows []KeyValue)
	List(emoji, title string, lines []string)
}

// NewConsoleUI returns a UserInterface backed by the console helper.
func NewConsoleUI(out io.Writer, emoji bool) UserInterface {
	return consoleUI{console: ui.NewWithEmoji(out, emoji)}
}

type consoleUI struct {
	console *ui.Console
}

func (c consoleUI) Info(msg string) {
	c.console.Info(msg)
}

func (c consoleUI) Warn(msg string) {
	c.console.Warn(msg)
}

func (c consoleUI) Error(msg string) {
	c.console.Error(msg)
}

func (c consoleUI) Success(msg string) {
	c.console.Success(msg)
}

func (c consoleUI) Block(emoji, title string, rows []KeyValue) {
	c.console.BlockStart(emoji, title)
	for _, kv := range rows {
		c.console.Item(kv.Key, kv.Value)
	}
	c.console.BlockEnd()
}

func (c consoleUI) List(emoji, title string, lines []string) {
	c.console.BlockStart(emoji, title)
	for _, line := range lines {
		c.console.ItemPlain(line)
	}
	c.console.BlockEnd()
}
