package commands

import (
	"strings"
)

// Rule is one grammar production: Program, then Keywords, then one token
// per entry in Params.
type Rule struct {
	// Keywords are the fixed words following Program, e.g. {"new", "list"}.
	Keywords []string

	// Params name the positional tokens, e.g. {"from", "to"}.
	Params []string

	// Synopsis is a short description for help output.
	Synopsis string

	// Build turns the trimmed parameter tokens into a Command.
	Build func(params []string) Command
}

// Name returns the keywords joined by a space. It identifies the rule.
func (r Rule) Name() string {
	return strings.Join(r.Keywords, " ")
}

// Usage returns the usage line for help output.
func (r Rule) Usage() string {
	var b strings.Builder
	b.WriteString(Program)
	for _, k := range r.Keywords {
		b.WriteByte(' ')
		b.WriteString(k)
	}
	for _, p := range r.Params {
		b.WriteString(" <")
		b.WriteString(p)
		b.WriteByte('>')
	}
	return b.String()
}

// Match tries the rule against the tokens following Program.
// Matching is exact and case-sensitive; arity must match.
func (r Rule) Match(args []string) (Command, bool) {
	if len(args) != len(r.Keywords)+len(r.Params) {
		return nil, false
	}
	for i, k := range r.Keywords {
		if args[i] != k {
			return nil, false
		}
	}

	params := make([]string, len(r.Params))
	for i := range r.Params {
		p := strings.TrimSpace(args[len(r.Keywords)+i])
		if p == "" {
			return nil, false
		}
		params[i] = p
	}
	return r.Build(params), true
}
