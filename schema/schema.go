package schema

import (
	"fmt"
	"reflect"
	"strings"
	"time"
)

// InputSchemaFor returns the JSON schema of the struct pointed by v, for use as a tool input schema.
func InputSchemaFor(v any) (map[string]interface{}, error) {
	t := reflect.TypeOf(v)
	if t == nil {
		return nil, fmt.Errorf("expected a struct type, got nil")
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("expected a struct type, got %s", t.Kind())
	}
	return schemaForType(t, false), nil
}

// schemaForType returns a JSON schema for t; inSlice marks slice elements, which are never nullable.
func schemaForType(t reflect.Type, inSlice bool) map[string]interface{} {
	schema := make(map[string]interface{})
	if t == reflect.TypeOf(time.Time{}) {
		schema["type"] = "string"
		schema["format"] = "date-time"
		return schema
	}
	if t.Kind() == reflect.Ptr {
		schema = schemaForType(t.Elem(), inSlice)
		if !inSlice {
			schema["nullable"] = true
		}
		return schema
	}
	switch t.Kind() {
	case reflect.Bool:
		schema["type"] = "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		schema["type"] = "integer"
	case reflect.Float32, reflect.Float64:
		schema["type"] = "number"
	case reflect.String:
		schema["type"] = "string"
	case reflect.Slice, reflect.Array:
		schema["type"] = "array"
		schema["items"] = schemaForType(t.Elem(), true)
	case reflect.Map:
		schema["type"] = "object"
		schema["additionalProperties"] = schemaForType(t.Elem(), false)
	case reflect.Struct:
		schema["type"] = "object"
		properties, required := structProperties(t)
		schema["properties"] = properties
		if len(required) > 0 {
			schema["required"] = required
		}
	default:
		schema["type"] = "string"
	}
	return schema
}

func structProperties(t reflect.Type) (map[string]interface{}, []string) {
	properties := make(map[string]interface{})
	var required []string
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name, omitempty, ignore := jsonTag(field)
		if ignore {
			continue
		}
		fieldSchema := schemaForType(field.Type, false)
		if description := field.Tag.Get("description"); description != "" {
			fieldSchema["description"] = description
		}
		properties[name] = fieldSchema
		if field.Type.Kind() != reflect.Ptr && !omitempty {
			required = append(required, name)
		}
	}
	return properties, required
}

func jsonTag(field reflect.StructField) (name string, omitempty bool, ignore bool) {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return "", false, true
	}
	parts := strings.Split(tag, ",")
	name = parts[0]
	if name == "" {
		name = field.Name
	}
	for _, option := range parts[1:] {
		if option == "omitempty" {
			omitempty = true
		}
	}
	return name, omitempty, false
}
