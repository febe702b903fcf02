// Package cmd implements the clipdrop command-line interface.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/clipdrop/clipdrop/color"
	"github.com/clipdrop/clipdrop/constant"
	"github.com/clipdrop/clipdrop/icon"
	"github.com/clipdrop/clipdrop/key"
	"github.com/clipdrop/clipdrop/log"
	"github.com/clipdrop/clipdrop/style"
	"github.com/clipdrop/clipdrop/tui"
	"github.com/clipdrop/clipdrop/util"
	"github.com/clipdrop/clipdrop/version"
	"github.com/clipdrop/clipdrop/where"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Icon variant: emoji, nerd, plain, kaomoji or squares")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("endpoint", "E", "", "Metadata API endpoint")
	lo.Must0(viper.BindPFlag(key.ResolveEndpoint, rootCmd.PersistentFlags().Lookup("endpoint")))

	rootCmd.PersistentFlags().Bool("fingerprint", false, "Send metadata requests with a browser TLS fingerprint")
	lo.Must0(viper.BindPFlag(key.NetworkFingerprint, rootCmd.PersistentFlags().Lookup("fingerprint")))

	rootCmd.PersistentFlags().StringP("path", "p", "", "Directory downloaded videos are saved to")
	lo.Must0(viper.BindPFlag(key.DownloadPath, rootCmd.PersistentFlags().Lookup("path")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify(cmd.Context())
	})

	go func() {
		_ = util.Delete(where.Temp())
	}()
}

var rootCmd = &cobra.Command{
	Use:   constant.App,
	Short: "Extract and download short videos from pasted links",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Paste text, get the videos behind every TikTok link in it"),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if variant := viper.GetString(key.IconsVariant); !icon.Valid(variant) {
			handleErr(fmt.Errorf("unknown icons variant %q, expected one of %s", variant, strings.Join(icon.AvailableVariants(), ", ")))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		options := tui.Options{
			Text: piped(),
		}
		handleErr(tui.Run(cmd.Context(), &options))
	},
}

// piped returns stdin when it is not a terminal, so links can be piped into the TUI.
func piped() string {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return ""
	}

	data, err := io.ReadAll(io.LimitReader(os.Stdin, 1<<20))
	if err != nil {
		log.Warnf("read stdin: %v", err)
		return ""
	}
	return string(data)
}

// Execute runs the root command until it finishes or the process is interrupted.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Println(err)
		stop()
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
