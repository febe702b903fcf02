// Package where resolves the directories clipdrop reads and writes. Every function creates its directory.
package where

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/clipdrop/clipdrop/constant"
	"github.com/clipdrop/clipdrop/filesystem"
	"github.com/clipdrop/clipdrop/key"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// EnvConfigPath overrides the config directory.
const EnvConfigPath = "CLIPDROP_CONFIG_PATH"

// EnvDownloadDir is the XDG user directory for downloads, honored when download.path is empty.
const EnvDownloadDir = "XDG_DOWNLOAD_DIR"

func mkdir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// expand resolves a leading ~ to the home directory.
func expand(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// Config is $CLIPDROP_CONFIG_PATH or the clipdrop directory under os.UserConfigDir.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok && custom != "" {
		return mkdir(expand(custom))
	}

	return mkdir(filepath.Join(lo.Must(os.UserConfigDir()), constant.App))
}

func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = "cache"
	}
	return mkdir(filepath.Join(base, constant.App))
}

func Logs() string {
	return mkdir(filepath.Join(Config(), "logs"))
}

// Downloads is download.path when set. Otherwise it is a clipdrop directory inside
// $XDG_DOWNLOAD_DIR or ~/Downloads, or inside the working directory when there is no home.
func Downloads() string {
	if custom := viper.GetString(key.DownloadPath); custom != "" {
		return mkdir(expand(custom))
	}

	if xdg := os.Getenv(EnvDownloadDir); xdg != "" {
		return mkdir(filepath.Join(expand(xdg), constant.App))
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return mkdir(constant.App)
	}
	return mkdir(filepath.Join(home, "Downloads", constant.App))
}

func Temp() string {
	return mkdir(filepath.Join(os.TempDir(), constant.App))
}
