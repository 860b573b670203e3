// Package commands provides the command grammar, the parsed command
// variants, and the parser that maps argument vectors onto them.
package commands

// Program is the sentinel every command line must start with.
const Program = "taskcli"

// InvalidCommandMessage is carried by Undefined for every unmatched input.
const InvalidCommandMessage = "Invalid command! Please use " + Program + " help to check the available commands."

// Command is a parsed user intent.
// The variant set is closed: ShowLists, NewList, RenameList, DeleteList,
// Help and Undefined.
type Command interface {
	command()
}

// ShowLists enumerates every list.
type ShowLists struct{}

// NewList creates a list.
type NewList struct {
	Name string
}

// RenameList renames a list.
type RenameList struct {
	From string
	To   string
}

// DeleteList deletes a list.
type DeleteList struct {
	Name string
}

// Help carries the help text to print.
type Help struct {
	Text string
}

// Undefined is produced when no grammar rule matches.
type Undefined struct {
	Message string
}

func (ShowLists) command()  {}
func (NewList) command()    {}
func (RenameList) command() {}
func (DeleteList) command() {}
func (Help) command()       {}
func (Undefined) command()  {}
