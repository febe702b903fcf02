// Package version looks up the latest published release and tells the user when an update exists.
package version

import (
	"context"
	"fmt"

	"github.com/clipdrop/clipdrop/color"
	"github.com/clipdrop/clipdrop/constant"
	"github.com/clipdrop/clipdrop/icon"
	"github.com/clipdrop/clipdrop/key"
	"github.com/clipdrop/clipdrop/style"
	"github.com/clipdrop/clipdrop/util"
	"github.com/spf13/viper"
)

// Notify prints a notice when a newer release exists. It is silent unless cli.version_check is on.
func Notify(ctx context.Context) {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	if ctx == nil {
		ctx = context.Background()
	}

	erase := util.PrintErasable(fmt.Sprintf("%s Checking if new version is available...", icon.Get(icon.Progress)))
	latest, err := Latest(ctx)
	erase()
	if err != nil {
		return
	}

	if !Newer(latest, constant.Version) {
		return
	}

	fmt.Printf(`
%s New version is available %s %s
%s

`,
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(latest),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint(fmt.Sprintf("https://github.com/%s/releases/tag/v%s", constant.Repository, latest)),
	)
}
