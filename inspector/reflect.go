// Package inspector lists component fields by reflection so a panel can show
// the selected fish. Rendering hints come from `inspect` struct tags.
package inspector

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Widget selects how a field is rendered.
type Widget int

const (
	WidgetAuto Widget = iota
	WidgetLabel
	WidgetBar
	WidgetAngle
	WidgetBool
	WidgetSkip
)

// Field is one exported component field with its rendering hints.
type Field struct {
	Name   string
	Value  any
	Widget Widget
	Format string  // printf verb for labels, empty for the default
	Max    float64 // bar full scale
}

// Section groups the fields of one component under its type name.
type Section struct {
	Title  string
	Fields []Field
}

// ParseTag parses an inspect struct tag of the form
// `inspect:"widget[,option:value...]"`, e.g. "bar,max:3" or "label,fmt:%.1f".
// Unknown widgets fall back to auto detection. Options other than fmt and
// max are ignored.
func ParseTag(tag string) (w Widget, format string, max float64) {
	max = 1
	if tag == "" {
		return WidgetAuto, "", max
	}

	parts := strings.Split(tag, ",")
	switch strings.TrimSpace(parts[0]) {
	case "label":
		w = WidgetLabel
	case "bar":
		w = WidgetBar
	case "angle":
		w = WidgetAngle
	case "bool":
		w = WidgetBool
	case "skip":
		w = WidgetSkip
	}

	for _, part := range parts[1:] {
		key, val, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			continue
		}
		switch key {
		case "fmt":
			format = val
		case "max":
			if m, err := strconv.ParseFloat(val, 64); err == nil && m > 0 {
				max = m
			}
		}
	}
	return w, format, max
}

// ExtractFields lists the exported fields of a struct or struct pointer.
// Anything else yields nil.
func ExtractFields(component any) []Field {
	v := reflect.ValueOf(component)
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}

	t := v.Type()
	var fields []Field
	for i := 0; i < v.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		widget, format, max := ParseTag(sf.Tag.Get("inspect"))
		if widget == WidgetSkip {
			continue
		}
		fv := v.Field(i)
		if widget == WidgetAuto {
			widget = autoWidget(fv.Kind())
		}
		fields = append(fields, Field{
			Name:   sf.Name,
			Value:  fv.Interface(),
			Widget: widget,
			Format: format,
			Max:    max,
		})
	}
	return fields
}

// Sections extracts one section per component, titled by its type name.
func Sections(components ...any) []Section {
	out := make([]Section, 0, len(components))
	for _, c := range components {
		t := reflect.TypeOf(c)
		if t == nil {
			continue
		}
		if t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		out = append(out, Section{Title: t.Name(), Fields: ExtractFields(c)})
	}
	return out
}

func autoWidget(k reflect.Kind) Widget {
	if k == reflect.Bool {
		return WidgetBool
	}
	return WidgetLabel
}

// FormatValue renders a value for a label. Floats default to two decimals.
func FormatValue(value any, format string) string {
	if format != "" {
		return fmt.Sprintf(format, value)
	}
	switch v := value.(type) {
	case float32, float64:
		return fmt.Sprintf("%.2f", v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", value)
	}
}

// Float converts numeric field values for bars and dials.
func Float(value any) (float64, bool) {
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), true
	default:
		return 0, false
	}
}
