// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"
)

const (
	// Prompt is printed before reading each REPL line.
	Prompt = "Please enter a command (type 'exit' to quit): "

	// Goodbye is printed when the REPL ends on exit or EOF.
	Goodbye = "Exiting the program..."

	// NoLists is printed when enumeration is empty.
	NoLists = "No lists found."

	// clearSequence erases the screen and homes the cursor.
	clearSequence = "\x1b[2J\x1b[1;1H"
)

// FormatListName formats a list name for the show list command.
func FormatListName(w io.Writer, name string) {
	fmt.Fprintln(w, normalizeName(name))
}

// FormatLists prints one name per line, or NoLists when names is empty.
func FormatLists(w io.Writer, names []string) {
	if len(names) == 0 {
		fmt.Fprintln(w, NoLists)
		return
	}
	for _, name := range names {
		FormatListName(w, name)
	}
}

// FormatCreated formats the success line for a created list.
func FormatCreated(w io.Writer, name string) {
	fmt.Fprintf(w, "Successfully created the list: %s\n", name)
}

// FormatRenamed formats the success line for a renamed list.
func FormatRenamed(w io.Writer, from, to string) {
	fmt.Fprintf(w, "Successfully renamed the list: %s -> %s\n", from, to)
}

// FormatDeleted formats the success line for a deleted list.
func FormatDeleted(w io.Writer, name string) {
	fmt.Fprintf(w, "Successfully deleted the list: %s\n", name)
}

// FormatError formats an error line for stderr.
func FormatError(w io.Writer, err error) {
	fmt.Fprintf(w, "error: %v\n", err)
}

// FormatPrompt prints the REPL prompt without a trailing newline.
func FormatPrompt(w io.Writer) {
	fmt.Fprint(w, Prompt)
}

// ClearScreen writes the ANSI sequence that clears the terminal.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, clearSequence)
}

// normalizeName normalizes a list name for display.
// Empty or whitespace-only names become "(untitled)".
func normalizeName(name string) string {
	if strings.TrimSpace(name) == "" {
		return "(untitled)"
	}
	return name
}
