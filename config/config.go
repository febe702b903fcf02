// Package config registers every setting with its default and wires viper to the config file and environment.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/clipdrop/clipdrop/constant"
	"github.com/clipdrop/clipdrop/filesystem"
	"github.com/clipdrop/clipdrop/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer maps config keys to environment variable names.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup loads defaults, environment overrides and the config file, in increasing priority of the file.
// A missing file is not an error.
func Setup() error {
	viper.SetConfigName(constant.App)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.App)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
		if err := viper.BindEnv(name, field.Env()); err != nil {
			return err
		}
	}

	err := viper.ReadInConfig()

	var notFound viper.ConfigFileNotFoundError
	if err == nil || errors.As(err, &notFound) {
		return nil
	}

	return fmt.Errorf("read %s: %w", viper.ConfigFileUsed(), err)
}
