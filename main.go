// Package main is the clipdrop entry point.
package main

import (
	"github.com/clipdrop/clipdrop/cmd"
	"github.com/clipdrop/clipdrop/config"
	"github.com/clipdrop/clipdrop/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())
	cmd.Execute()
}
