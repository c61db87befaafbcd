package main

import (
	"fmt"

	"github.com/mkleven/osloplan"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	fmt.Fprintf(deps.Stdout, "Serving dashboard API on %s\n", c.Addr)

	go func() {
		<-deps.Ctx.Done()
		_ = deps.Server.Shutdown()
	}()

	if err := deps.Server.Listen(c.Addr); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", osloplan.ErrorMessage(err))
		return err
	}

	return nil
}
