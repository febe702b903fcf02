// Package cmd implements the clipdrop command-line interface.
package cmd

import (
	"encoding/json"
	"os"

	"github.com/clipdrop/clipdrop/color"
	"github.com/clipdrop/clipdrop/style"
	"github.com/clipdrop/clipdrop/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type whereTarget struct {
	name   string
	flag   string
	short  string
	path   func() string
	hidden bool
}

var whereTargets = []whereTarget{
	{name: "Config", flag: "config", short: "c", path: where.Config},
	{name: "Downloads", flag: "downloads", short: "d", path: where.Downloads},
	{name: "Logs", flag: "logs", short: "l", path: where.Logs},
	{name: "Cache", flag: "cache", path: where.Cache, hidden: true},
	{name: "Temp", flag: "temp", path: where.Temp, hidden: true},
}

func init() {
	rootCmd.AddCommand(whereCmd)

	for _, t := range whereTargets {
		whereCmd.Flags().BoolP(t.flag, t.short, false, "Print only the "+t.name+" path")
		if t.hidden {
			lo.Must0(whereCmd.Flags().MarkHidden(t.flag))
		}
	}

	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(whereTargets, func(t whereTarget, _ int) string {
		return t.flag
	})...)
	whereCmd.Flags().BoolP("json", "j", false, "Print all paths as a JSON object")

	whereCmd.SetOut(os.Stdout)
}

var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show where clipdrop keeps its config, logs and downloads",
	Run: func(cmd *cobra.Command, args []string) {
		if t, ok := lo.Find(whereTargets, func(t whereTarget) bool {
			return lo.Must(cmd.Flags().GetBool(t.flag))
		}); ok {
			cmd.Println(t.path())
			return
		}

		visible := lo.Reject(whereTargets, func(t whereTarget, _ int) bool { return t.hidden })

		if lo.Must(cmd.Flags().GetBool("json")) {
			paths := lo.SliceToMap(visible, func(t whereTarget) (string, string) {
				return t.flag, t.path()
			})
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(paths))
			return
		}

		width := lo.Max(lo.Map(visible, func(t whereTarget, _ int) int { return len(t.name) }))
		label := style.New().Bold(true).Foreground(color.HiPurple).Width(width + 2)
		for _, t := range visible {
			cmd.Println(label.Render(t.name) + t.path() + " " + style.Faint("--"+t.flag))
		}
	},
}
