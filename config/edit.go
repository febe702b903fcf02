// Package config registers every setting with its default and wires viper to the config file and environment.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/clipdrop/clipdrop/constant"
	"github.com/clipdrop/clipdrop/filesystem"
	"github.com/clipdrop/clipdrop/where"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// UnknownKeyError is returned for keys missing from Default.
type UnknownKeyError struct {
	Key     string
	Closest string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("unknown key %s, did you mean %s?", e.Key, e.Closest)
}

// Lookup returns the registered field for k.
func Lookup(k string) (Field, error) {
	field, ok := Default[k]
	if !ok {
		return Field{}, &UnknownKeyError{Key: k, Closest: Closest(k)}
	}

	return field, nil
}

// Closest returns the registered key with the smallest edit distance to k.
func Closest(k string) string {
	return lo.MinBy(lo.Keys(Default), func(a, b string) bool {
		da, db := levenshtein.Distance(k, a), levenshtein.Distance(k, b)
		if da == db {
			return a < b
		}
		return da < db
	})
}

// Parse converts raw command line values to the type of the field's default.
func Parse(k string, raw []string) (any, error) {
	field, err := Lookup(k)
	if err != nil {
		return nil, err
	}

	if len(raw) == 0 {
		return nil, errors.New("value is required")
	}

	switch field.Value.(type) {
	case string:
		return raw[0], nil
	case int:
		n, err := strconv.Atoi(raw[0])
		if err != nil {
			return nil, fmt.Errorf("invalid integer value: %s", raw[0])
		}

		if n < 0 {
			return nil, fmt.Errorf("%s must not be negative", k)
		}

		return n, nil
	case bool:
		b, err := strconv.ParseBool(raw[0])
		if err != nil {
			return nil, fmt.Errorf("invalid boolean value: %s", raw[0])
		}

		return b, nil
	case []string:
		return raw, nil
	default:
		return nil, fmt.Errorf("%s has unsupported type %s", k, field.typeName())
	}
}

// Reset restores the given keys, or every key when none are given.
func Reset(keys ...string) error {
	if len(keys) == 0 {
		keys = lo.Keys(Default)
	}

	for _, k := range keys {
		field, err := Lookup(k)
		if err != nil {
			return err
		}

		viper.Set(k, field.Value)
	}

	return nil
}

// File is the path of the TOML config file.
func File() string {
	return filepath.Join(where.Config(), constant.App+".toml")
}

// Save writes the in-memory configuration, creating the file when it does not exist yet.
func Save() error {
	err := viper.WriteConfig()

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return viper.SafeWriteConfig()
	}

	return err
}

// Delete removes the config file.
func Delete() error {
	return filesystem.API().Remove(File())
}
