// Package inspector renders a panel with the selected object's components.
package inspector

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// Widget selects how a field is drawn.
type Widget int

const (
	WidgetAuto Widget = iota
	WidgetLabel
	WidgetBar
	WidgetVec
	WidgetBool
	WidgetSkip
)

var widgetNames = map[string]Widget{
	"label": WidgetLabel,
	"bar":   WidgetBar,
	"vec":   WidgetVec,
	"bool":  WidgetBool,
	"skip":  WidgetSkip,
}

var vecType = reflect.TypeOf(r3.Vec{})

// Field is one exported struct field with its drawing hints.
type Field struct {
	Name    string
	Value   any
	Widget  Widget
	Options map[string]string
}

// ParseTag parses an `inspect:"widget[,key:value...]"` struct tag,
// e.g. `inspect:"bar,max:5"` or `inspect:"label,fmt:%.2fs"`.
func ParseTag(tag string) (Widget, map[string]string) {
	options := make(map[string]string)
	name, rest, _ := strings.Cut(tag, ",")
	widget := widgetNames[strings.TrimSpace(name)]

	for _, opt := range strings.Split(rest, ",") {
		if k, v, ok := strings.Cut(strings.TrimSpace(opt), ":"); ok {
			options[k] = v
		}
	}
	return widget, options
}

// ExtractFields lists the exported fields of a struct or struct pointer.
func ExtractFields(component any) []Field {
	v := reflect.Indirect(reflect.ValueOf(component))
	if v.Kind() != reflect.Struct {
		return nil
	}

	var fields []Field
	for _, sf := range reflect.VisibleFields(v.Type()) {
		if !sf.IsExported() || sf.Anonymous {
			continue
		}
		widget, options := ParseTag(sf.Tag.Get("inspect"))
		if widget == WidgetSkip {
			continue
		}
		fv := v.FieldByIndex(sf.Index)
		if widget == WidgetAuto {
			widget = autoWidget(fv.Type())
		}
		fields = append(fields, Field{Name: sf.Name, Value: fv.Interface(), Widget: widget, Options: options})
	}
	return fields
}

func autoWidget(t reflect.Type) Widget {
	switch {
	case t == vecType:
		return WidgetVec
	case t.Kind() == reflect.Bool:
		return WidgetBool
	default:
		return WidgetLabel
	}
}

// FormatValue formats value with fmtStr, or with a per-type default when empty.
func FormatValue(value any, fmtStr string) string {
	if fmtStr != "" {
		return fmt.Sprintf(fmtStr, value)
	}
	switch v := value.(type) {
	case float32, float64:
		return fmt.Sprintf("%.2f", v)
	case r3.Vec:
		return fmt.Sprintf("(%.2f, %.2f, %.2f)", v.X, v.Y, v.Z)
	default:
		return fmt.Sprint(v)
	}
}

// GetMax returns the max option, or 1.
func GetMax(options map[string]string) float32 {
	if max, err := strconv.ParseFloat(options["max"], 32); err == nil {
		return float32(max)
	}
	return 1
}

// GetFloatValue converts numeric values to float32.
func GetFloatValue(value any) (float32, bool) {
	v := reflect.ValueOf(value)
	switch {
	case v.CanFloat():
		return float32(v.Float()), true
	case v.CanInt():
		return float32(v.Int()), true
	case v.CanUint():
		return float32(v.Uint()), true
	default:
		return 0, false
	}
}
