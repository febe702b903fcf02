// Package cmd implements the clipdrop command-line interface.
package cmd

import (
	"fmt"
	"io/fs"

	"github.com/clipdrop/clipdrop/filesystem"
	"github.com/clipdrop/clipdrop/icon"
	"github.com/clipdrop/clipdrop/util"
	"github.com/clipdrop/clipdrop/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type clearTarget struct {
	what  string
	flag  string
	short string
	dir   func() string
}

// Downloads are never cleared from here; they belong to the user.
var clearTargets = []clearTarget{
	{"cache", "cache", "c", where.Cache},
	{"logs", "logs", "l", where.Logs},
	{"temp files", "temp", "t", where.Temp},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, t := range clearTargets {
		clearCmd.Flags().BoolP(t.flag, t.short, false, "Clear "+t.what)
	}
	clearCmd.Flags().BoolP("all", "a", false, "Clear everything above")
}

// dirSize sums the regular files under dir; missing directories count as empty.
func dirSize(dir string) (size int64) {
	_ = filesystem.API().Walk(dir, func(_ string, info fs.FileInfo, err error) error {
		if err == nil && info.Mode().IsRegular() {
			size += info.Size()
		}
		return nil
	})
	return
}

func humanSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}

	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove cached data, logs and temporary files",
	Run: func(cmd *cobra.Command, args []string) {
		all := lo.Must(cmd.Flags().GetBool("all"))
		selected := lo.Filter(clearTargets, func(t clearTarget, _ int) bool {
			return all || lo.Must(cmd.Flags().GetBool(t.flag))
		})

		if len(selected) == 0 {
			handleErr(cmd.Help())
			return
		}

		for _, t := range selected {
			dir := t.dir()
			freed := dirSize(dir)

			erase := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), t.what))
			err := filesystem.API().RemoveAll(dir)
			erase()
			handleErr(err)

			fmt.Printf("%s %s cleared (%s)\n", icon.Get(icon.Success), util.Capitalize(t.what), humanSize(freed))
		}
	},
}
