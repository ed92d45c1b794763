package command

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Absent is how Describe renders an optional field the operator left empty.
const Absent = "<none>"

// Describe renders cmd on one line, e.g. `GetBalance { address: "0xabc123" }`.
// Every field is listed; absent optional fields render as Absent.
func Describe(cmd Command) string {
	name := cmd.Kind().String()

	v := reflect.ValueOf(cmd)
	if v.Kind() != reflect.Struct || v.NumField() == 0 {
		return name
	}
	t := v.Type()

	parts := make([]string, 0, v.NumField())
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", fieldName(field), formatValue(v.Field(i))))
	}
	return fmt.Sprintf("%s { %s }", name, strings.Join(parts, ", "))
}

type envelope struct {
	Command string  `json:"command"`
	Fields  Command `json:"fields"`
}

// MarshalJSON renders cmd as an indented JSON object. Absent optional fields
// are null.
func MarshalJSON(cmd Command) ([]byte, error) {
	data, err := json.MarshalIndent(envelope{Command: cmd.Kind().String(), Fields: cmd}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal %s: %w", cmd.Kind(), err)
	}
	return data, nil
}

// fieldName uses the json tag so text and JSON renderings agree.
func fieldName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if name, _, _ := strings.Cut(tag, ","); name != "" {
		return name
	}
	return field.Name
}

func formatValue(v reflect.Value) string {
	switch v.Kind() {
	case reflect.Ptr:
		if v.IsNil() {
			return Absent
		}
		return formatValue(v.Elem())
	case reflect.String:
		return strconv.Quote(v.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'f', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64)
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	default:
		return fmt.Sprintf("%v", v.Interface())
	}
}
