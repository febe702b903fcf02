// Package open hands URLs to the system's default handler, usually the web browser.
package open

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/clipdrop/clipdrop/constant"
)

// ErrUnsupported is returned on platforms without a known opener.
var ErrUnsupported = errors.New("no system opener for this platform")

// Start opens the URL with the default handler and returns without waiting.
func Start(input string) error {
	cmd, err := prepare(input)
	if err != nil {
		return err
	}
	return cmd.Start()
}

// Run opens the URL with the default handler and waits for the launcher to exit.
func Run(input string) error {
	cmd, err := prepare(input)
	if err != nil {
		return err
	}
	return cmd.Run()
}

func prepare(input string) (*exec.Cmd, error) {
	if err := validate(input); err != nil {
		return nil, err
	}

	cmd, ok := command(runtime.GOOS, input)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, runtime.GOOS)
	}
	return cmd, nil
}

// validate only lets web URLs through; the input ends up as a launcher argument.
func validate(input string) error {
	u, err := url.Parse(input)
	if err != nil {
		return fmt.Errorf("open %q: %w", input, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("open %q: unsupported scheme %q", input, u.Scheme)
	}

	if u.Host == "" {
		return fmt.Errorf("open %q: missing host", input)
	}

	return nil
}

func command(goos, input string) (*exec.Cmd, bool) {
	switch goos {
	case constant.Windows:
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return exec.Command(rundll, "url.dll,FileProtocolHandler", input), true
	case constant.Darwin:
		return exec.Command("open", input), true
	case constant.Linux, constant.FreeBSD, constant.OpenBSD, constant.NetBSD:
		return exec.Command("xdg-open", input), true
	case constant.Android:
		return exec.Command("termux-open-url", input), true
	default:
		return nil, false
	}
}
