// Package cmd implements the clipdrop command-line interface.
package cmd

import (
	"encoding/json"
	"errors"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/clipdrop/clipdrop/filesystem"
	"github.com/clipdrop/clipdrop/inline"
	"github.com/clipdrop/clipdrop/key"
	"github.com/clipdrop/clipdrop/report"
	"github.com/clipdrop/clipdrop/util"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.Flags().StringP("file", "f", "", "Read the text to extract links from a file ('-' for stdin)")
	inlineCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")
	inlineCmd.Flags().BoolP("download", "d", false, "Download every resolved video without asking")
	inlineCmd.Flags().StringP("select", "s", "", "Narrow the resolved videos by pasted position")
	inlineCmd.Flags().StringP("output", "o", "", "Specify a file path to write the command output")
	inlineCmd.Flags().BoolP("quiet", "q", false, "Do not print progress to stderr")

	inlineCmd.Flags().Int("max", 0, "Maximum number of links to take from the text")
	lo.Must0(viper.BindPFlag(key.ExtractMaxLinks, inlineCmd.Flags().Lookup("max")))
}

var inlineCmd = &cobra.Command{
	Use:   "inline [text...]",
	Short: "Extract and resolve links without the interactive interface",
	Long: `Extract links from text given as arguments, a file or stdin, resolve them one at a time and print the result.

Selectors for --select:
  all - every resolved video
  first - first resolved video
  last - last resolved video
  [number] - the video pasted at that position (starting from 1)
  [from]-[to] - videos pasted in that range`,
	Example: `  clipdrop inline "https://www.tiktok.com/@user/video/7312345678901234567"
  pbpaste | clipdrop inline -j
  clipdrop inline -f links.txt -d`,
	Run: func(cmd *cobra.Command, args []string) {
		text, err := inlineText(args, lo.Must(cmd.Flags().GetString("file")))
		handleErr(err)

		output := lo.Must(cmd.Flags().GetString("output"))
		var writer io.Writer
		if output != "" {
			f, err := filesystem.API().Create(output)
			handleErr(err)
			defer util.Ignore(f.Close)
			writer = f
		} else {
			writer = os.Stdout
		}

		filter := mo.None[inline.RecordFilter]()
		if selection := lo.Must(cmd.Flags().GetString("select")); selection != "" {
			fn, err := inline.ParseFilter(selection)
			handleErr(err)
			filter = mo.Some(fn)
		}

		var reporter report.Reporter = report.Log{}
		if !lo.Must(cmd.Flags().GetBool("quiet")) {
			reporter = report.Multi{report.Log{}, report.Console{Out: os.Stderr}}
		}

		confirm := mo.None[func(int) bool]()
		if util.IsInteractive() && output == "" {
			confirm = mo.Some(confirmDownload)
		}

		options := &inline.Options{
			Out:      writer,
			Text:     text,
			Json:     lo.Must(cmd.Flags().GetBool("json")),
			Download: lo.Must(cmd.Flags().GetBool("download")),
			Filter:   filter,
			Confirm:  confirm,
			Reporter: reporter,
		}

		handleErr(inline.Run(cmd.Context(), options))
	},
}

// inlineText picks the text source: a file, explicit args, or piped stdin.
func inlineText(args []string, file string) (string, error) {
	switch {
	case file == "-":
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	case file != "":
		data, err := filesystem.API().ReadFile(file)
		return string(data), err
	case len(args) > 0:
		return strings.Join(args, " "), nil
	}

	if util.IsInteractive() {
		return "", errors.New("no text given: pass it as arguments, with --file, or through stdin")
	}

	data, err := io.ReadAll(os.Stdin)
	return string(data), err
}

func confirmDownload(count int) bool {
	var ok bool
	prompt := &survey.Confirm{
		Message: "Download " + util.Quantify(count, "video", "videos") + "?",
		Default: true,
	}

	if err := survey.AskOne(prompt, &ok, survey.WithStdio(os.Stdin, os.Stderr, os.Stderr)); err != nil {
		return false
	}
	return ok
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)
}

var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema of the inline output",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "item", "record", "output", "download", "summary":
				return "clipdrop." + name
			}

			return name
		}

		handleErr(json.NewEncoder(os.Stdout).Encode(reflector.Reflect(&inline.Output{})))
	},
}
