package commands

// Parse maps an argument vector onto a Command using DefaultRegistry.
// It never fails: unmatched input, including empty input, yields Undefined.
// args is not modified.
func Parse(args []string) Command {
	return DefaultRegistry.Parse(args)
}

// Parse maps an argument vector onto a Command using r's rules.
func (r *Registry) Parse(args []string) Command {
	if len(args) == 0 || args[0] != Program {
		return undefined()
	}
	for _, rule := range r.All() {
		if cmd, ok := rule.Match(args[1:]); ok {
			return cmd
		}
	}
	return undefined()
}

func undefined() Command {
	return Undefined{Message: InvalidCommandMessage}
}
