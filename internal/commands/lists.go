package commands

func init() {
	Register(showListRule)
	Register(newListRule)
	Register(renameListRule)
	Register(deleteListRule)
}

var showListRule = Rule{
	Keywords: []string{"show", "list"},
	Synopsis: "Show all lists",
	Build:    func([]string) Command { return ShowLists{} },
}

var newListRule = Rule{
	Keywords: []string{"new", "list"},
	Params:   []string{"name"},
	Synopsis: "Create a new, empty list",
	Build:    func(p []string) Command { return NewList{Name: p[0]} },
}

var renameListRule = Rule{
	Keywords: []string{"rename", "list"},
	Params:   []string{"from", "to"},
	Synopsis: "Rename a list",
	Build:    func(p []string) Command { return RenameList{From: p[0], To: p[1]} },
}

var deleteListRule = Rule{
	Keywords: []string{"delete", "list"},
	Params:   []string{"name"},
	Synopsis: "Delete a list",
	Build:    func(p []string) Command { return DeleteList{Name: p[0]} },
}
