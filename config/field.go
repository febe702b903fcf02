// Package config registers every setting with its default and wires viper to the config file and environment.
package config

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/clipdrop/clipdrop/color"
	"github.com/clipdrop/clipdrop/constant"
	"github.com/clipdrop/clipdrop/style"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field is one registered setting.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Env is the variable that overrides the field, e.g. CLIPDROP_QUEUE_DELAY_MS.
func (f *Field) Env() string {
	return strings.ToUpper(constant.App + "_" + EnvKeyReplacer.Replace(f.Key))
}

func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string, int, bool, []string:
		return fmt.Sprintf("%T", f.Value)
	default:
		return "unknown"
	}
}

type fieldJSON struct {
	Key         string `json:"key"`
	Env         string `json:"env"`
	Value       any    `json:"value"`
	Default     any    `json:"default"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

// MarshalJSON includes the current value next to the default.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(fieldJSON{
		Key:         f.Key,
		Env:         f.Env(),
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
	})
}

// Pretty renders the field for "config info".
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(fieldTemplate.Execute(&b, f))
	return b.String()
}

func highlight(v any) string {
	switch value := v.(type) {
	case bool:
		return lo.Ternary(value, style.Fg(color.Green), style.Fg(color.Red))(strconv.FormatBool(value))
	case string:
		if value == "" {
			return style.Faint(`""`)
		}
		return style.Fg(color.Yellow)(value)
	default:
		return style.Fg(color.Cyan)(fmt.Sprint(value))
	}
}

var fieldTemplate = lo.Must(template.New("field").Funcs(template.FuncMap{
	"faint":  style.Faint,
	"label":  style.Fg(color.Blue),
	"key":    style.Fg(color.Purple),
	"hl":     highlight,
	"viper":  viper.Get,
	"indent": func(s string) string { return strings.ReplaceAll(s, "\n", "\n  ") },
}).Parse(`{{ key .Key }} {{ faint .Type }}
  {{ faint (indent .Description) }}
  {{ label "value" }}   {{ hl (viper .Key) }}
  {{ label "default" }} {{ hl .Value }}
  {{ label "env" }}     {{ .Env }}`))
