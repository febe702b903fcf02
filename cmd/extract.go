// Package cmd implements the clipdrop command-line interface.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/clipdrop/clipdrop/color"
	"github.com/clipdrop/clipdrop/icon"
	"github.com/clipdrop/clipdrop/key"
	"github.com/clipdrop/clipdrop/link"
	"github.com/clipdrop/clipdrop/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringP("file", "f", "", "Read the text from a file ('-' for stdin)")
	extractCmd.Flags().BoolP("json", "j", false, "Print the links as a JSON array")
	extractCmd.SetOut(os.Stdout)
}

var extractCmd = &cobra.Command{
	Use:   "extract [text...]",
	Short: "Print the links that would be processed, without contacting the API",
	Run: func(cmd *cobra.Command, args []string) {
		text, err := inlineText(args, lo.Must(cmd.Flags().GetString("file")))
		handleErr(err)

		max := viper.GetInt(key.ExtractMaxLinks)
		if max < 1 {
			max = link.MaxLinks
		}

		candidates, condition := link.ExtractN(text, max)

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(candidates.Strings()))
		} else {
			for _, l := range candidates {
				cmd.Println(l)
			}
		}

		switch condition {
		case link.Empty:
			fmt.Fprintf(os.Stderr, "%s %s\n", style.Fg(color.Yellow)(icon.Get(icon.Warn)), "no links found")
		case link.Truncated:
			fmt.Fprintf(os.Stderr, "%s only the first %d of %d links are kept\n",
				style.Fg(color.Yellow)(icon.Get(icon.Warn)), len(candidates), link.Count(text))
		}
	},
}
