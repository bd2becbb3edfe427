// Command planner is the trip-planning client: it creates trips through a
// step-by-step flow, remembers the active trip on the device, and manages
// guests, links, and calendar invites for it.
package main

import (
	"os"

	"github.com/jmoraes/planner/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
