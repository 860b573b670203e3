package commands

import (
	"fmt"
	"strings"
)

func init() {
	Register(HelpRule(DefaultRegistry))
}

// ExitWord ends the interactive session. It is handled before parsing.
const ExitWord = "exit"

// HelpRule returns the "help" production for r. Its text lists r's rules.
func HelpRule(r *Registry) Rule {
	return Rule{
		Keywords: []string{"help"},
		Synopsis: "Show this help message",
		Build:    func([]string) Command { return Help{Text: r.HelpText()} },
	}
}

// HelpText renders every rule's usage and synopsis, followed by the exit word.
func (r *Registry) HelpText() string {
	rules := r.All()

	width := len(ExitWord)
	for _, rule := range rules {
		width = max(width, len(rule.Usage()))
	}

	var b strings.Builder
	b.WriteString("Available commands:\n")
	for _, rule := range rules {
		fmt.Fprintf(&b, "  %-*s  %s\n", width, rule.Usage(), rule.Synopsis)
	}
	fmt.Fprintf(&b, "  %-*s  %s\n", width, ExitWord, "Quit the program")
	return b.String()
}
