package theme

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

var rgbaType = reflect.TypeOf(color.RGBA{})

// NamedColor pairs a theme field name with its value.
type NamedColor struct {
	Name  string
	Color color.RGBA
}

// Colors lists every color field in declaration order.
func (t *Theme) Colors() []NamedColor {
	val := reflect.ValueOf(t).Elem()
	typ := val.Type()
	var out []NamedColor
	for i := 0; i < typ.NumField(); i++ {
		if typ.Field(i).Type != rgbaType {
			continue
		}
		out = append(out, NamedColor{Name: typ.Field(i).Name, Color: val.Field(i).Interface().(color.RGBA)})
	}
	return out
}

// Set assigns a field by case-insensitive name. Unknown keys are ignored so
// older binaries can read newer theme files.
func (t *Theme) Set(key, value string) error {
	if strings.EqualFold(key, "Name") {
		t.Name = value
		return nil
	}
	val := reflect.ValueOf(t).Elem()
	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !strings.EqualFold(f.Name, key) || f.Type != rgbaType {
			continue
		}
		col, err := ParseColor(value)
		if err != nil {
			return fmt.Errorf("invalid color for key %s: %w", key, err)
		}
		val.Field(i).Set(reflect.ValueOf(col))
		return nil
	}
	return nil
}

// Parse reads a theme definition from an io.Reader.
// The format is one "Key: value" pair per line where value is #RRGGBB,
// #RRGGBBAA or an SVG color name.
func Parse(r io.Reader) (*Theme, error) {
	t := Default()
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			continue
		}
		if err := t.Set(strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])); err != nil {
			return nil, err
		}
	}

	return t, scanner.Err()
}

// ParseColor accepts #RRGGBB, #RRGGBBAA or a color name such as "navy".
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}
	if !strings.HasPrefix(s, "#") {
		return color.RGBA{}, fmt.Errorf("unknown color %q", s)
	}
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 6:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, err
		}
		return color.RGBA{
			R: uint8(val >> 16),
			G: uint8((val >> 8) & 0xFF),
			B: uint8(val & 0xFF),
			A: 255,
		}, nil
	case 8:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, err
		}
		return color.RGBA{
			R: uint8(val >> 24),
			G: uint8((val >> 16) & 0xFF),
			B: uint8((val >> 8) & 0xFF),
			A: uint8(val & 0xFF),
		}, nil
	}
	return color.RGBA{}, fmt.Errorf("invalid hex length")
}
