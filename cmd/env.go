// Package cmd implements the clipdrop command-line interface.
package cmd

import (
	"os"

	"github.com/clipdrop/clipdrop/color"
	"github.com/clipdrop/clipdrop/config"
	"github.com/clipdrop/clipdrop/style"
	"github.com/clipdrop/clipdrop/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Only show variables that are set")
	envCmd.Flags().BoolP("unset-only", "u", false, "Only show variables that are not set")
	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
}

type envVar struct {
	name string
	key  string
}

// envVars lists every variable clipdrop reads, sorted by name.
func envVars() []envVar {
	vars := lo.MapToSlice(config.Default, func(k string, f config.Field) envVar {
		return envVar{name: f.Env(), key: k}
	})
	vars = append(vars, envVar{name: where.EnvConfigPath})

	slices.SortFunc(vars, func(a, b envVar) int {
		switch {
		case a.name < b.name:
			return -1
		case a.name > b.name:
			return 1
		default:
			return 0
		}
	})
	return vars
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "List the environment variables clipdrop reads",
	Long:  "List the environment variables clipdrop reads. Each one overrides the config key shown next to it.",
	Run: func(cmd *cobra.Command, args []string) {
		setOnly := lo.Must(cmd.Flags().GetBool("set-only"))
		unsetOnly := lo.Must(cmd.Flags().GetBool("unset-only"))
		name := style.New().Bold(true).Foreground(color.Purple).Render

		for _, v := range envVars() {
			value, present := os.LookupEnv(v.name)
			if (setOnly && !present) || (unsetOnly && present) {
				continue
			}

			line := name(v.name) + "="
			if present {
				line += style.Fg(color.Green)(value)
			} else {
				line += style.Fg(color.Red)("unset")
			}

			if v.key != "" {
				line += " " + style.Faint("("+v.key+")")
			}
			cmd.Println(line)
		}
	},
}
