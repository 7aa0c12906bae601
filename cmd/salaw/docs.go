package main

import "fmt"

// Run executes the docs command.
func (c *DocsCmd) Run(deps *Dependencies) error {
	if err := deps.Store.Init(deps.Ctx); err != nil {
		return err
	}

	for _, st := range deps.Store.Statuses() {
		status := "missing"
		if st.Available {
			status = fmt.Sprintf("available (%d bytes)", st.Size)
		}
		fmt.Fprintf(deps.Stdout, "%-14s %-60s %s\n", st.Category, st.Name, status)
	}
	return nil
}
