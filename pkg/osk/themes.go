package osk

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Named styles selectable with --theme.
var themes = map[string]Style{
	"dark": DefaultStyle(),
	"light": {
		BackColor:    HexToColor(0xFFFFFF),
		KeyBackColor: HexToColor(0xE6E6EB),
		ForeColor:    HexToColor(0x000000),
		BorderColor:  HexToColor(0xB4B4BE),
		Font:         Font{Size: 44},
	},
	"teal": {
		BackColor:    HexToColor(0x000000),
		KeyBackColor: HexToColor(0x008080),
		ForeColor:    HexToColor(0xFFFFFF),
		BorderColor:  HexToColor(0x00B3B3),
		Font:         Font{Size: 44},
	},
}

// ThemeNames lists the built-in themes alphabetically.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Theme returns the named built-in style.
func Theme(name string) (Style, error) {
	style, ok := themes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Style{}, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	return style, nil
}

// themeFile is the on-disk form of a style. Colours are hex strings such as
// "#32323C" or "0x32323C"; empty fields keep the base style.
type themeFile struct {
	BackColor    string `json:"back_color"`
	KeyBackColor string `json:"key_back_color"`
	ForeColor    string `json:"fore_color"`
	BorderColor  string `json:"border_color"`
	FontPath     string `json:"font_path"`
	FontSize     int    `json:"font_size"`
}

// LoadThemeFile reads a JSON theme and applies it over base.
func LoadThemeFile(path string, base Style) (Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("error reading theme file: %w", err)
	}

	var tf themeFile
	if err := json.Unmarshal(data, &tf); err != nil {
		return base, fmt.Errorf("error parsing JSON from theme file: %w", err)
	}

	style := base
	colors := []struct {
		value string
		dst   *color.RGBA
	}{
		{tf.BackColor, &style.BackColor},
		{tf.KeyBackColor, &style.KeyBackColor},
		{tf.ForeColor, &style.ForeColor},
		{tf.BorderColor, &style.BorderColor},
	}
	for _, c := range colors {
		if c.value == "" {
			continue
		}
		hex, err := ParseHex(c.value)
		if err != nil {
			return base, err
		}
		*c.dst = HexToColor(hex)
	}

	if tf.FontPath != "" {
		style.Font.Path = tf.FontPath
	}
	if tf.FontSize > 0 {
		style.Font.Size = tf.FontSize
	}

	return style, nil
}

// ParseHex parses an RGB colour written as RRGGBB with an optional # or 0x prefix.
func ParseHex(s string) (uint32, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "#"), "0x")
	hex, err := strconv.ParseUint(s, 16, 32)
	if err != nil || len(s) != 6 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return uint32(hex), nil
}
