package main

import "fmt"

// Run executes the refresh command.
func (c *RefreshCmd) Run(deps *Dependencies) error {
	if err := deps.Store.Refresh(deps.Ctx); err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "refreshed: %d/%d documents available\n",
		len(deps.Store.Available()), len(deps.Store.Statuses()))
	return nil
}
