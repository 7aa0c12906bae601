package main

import (
	"fmt"

	salawgin "github.com/mokoena/salaw/gin"
)

// Run executes the serve command. The catalog pass runs once before the
// server accepts requests; request handling never triggers a full refresh.
func (c *ServeCmd) Run(deps *Dependencies) error {
	if err := deps.Store.Init(deps.Ctx); err != nil {
		return err
	}
	if len(deps.Store.Available()) == 0 {
		deps.Logger.Error("no documents could be loaded; answers will use fallback content")
	}

	addr := c.Addr
	if addr == "" {
		addr = deps.Config.ListenAddr
	}

	server := salawgin.NewServer(
		deps.Store,
		deps.Assembler,
		deps.Classifier,
		deps.Answerer,
		deps.Transcriber,
		deps.Logger,
	)

	fmt.Fprintf(deps.Stdout, "listening on %s\n", addr)
	return server.Run(addr)
}
