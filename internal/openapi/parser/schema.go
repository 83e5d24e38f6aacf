package parser

import (
	"slices"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	pkgopenapi "github.com/goliatone/go-simplequestion/pkg/openapi"
)

const questionExtensionPrefix = "x-question-"

func convertSchema(ref *openapi3.SchemaRef) pkgopenapi.Schema {
	return convert(ref, map[*openapi3.Schema]bool{})
}

// convert walks ref, stopping at schemas already on the current path so
// recursive components keep their $ref instead of looping.
func convert(ref *openapi3.SchemaRef, visiting map[*openapi3.Schema]bool) pkgopenapi.Schema {
	if ref == nil {
		return pkgopenapi.Schema{}
	}
	if ref.Value == nil || visiting[ref.Value] {
		return pkgopenapi.Schema{Ref: ref.Ref}
	}
	visiting[ref.Value] = true
	defer delete(visiting, ref.Value)

	src := ref.Value
	schema := pkgopenapi.Schema{
		Ref:         ref.Ref,
		Type:        firstSchemaType(src.Type),
		Format:      src.Format,
		Title:       src.Title,
		Description: src.Description,
		Default:     src.Default,
		Extensions:  extractExtensions(src.Extensions),
	}
	if len(src.Required) > 0 {
		schema.Required = append([]string(nil), src.Required...)
	}
	if len(src.Enum) > 0 {
		schema.Enum = append([]any(nil), src.Enum...)
	}
	if len(src.Properties) > 0 {
		schema.Properties = make(map[string]pkgopenapi.Schema, len(src.Properties))
		for name, property := range src.Properties {
			schema.Properties[name] = convert(property, visiting)
		}
	}
	if src.Items != nil {
		items := convert(src.Items, visiting)
		schema.Items = &items
	}

	for _, part := range src.AllOf {
		mergeSchema(&schema, convert(part, visiting))
	}
	return schema
}

// mergeSchema folds an allOf member into target. Fields already set on target
// win.
func mergeSchema(target *pkgopenapi.Schema, part pkgopenapi.Schema) {
	if target.Type == "" {
		target.Type = part.Type
	}
	if target.Title == "" {
		target.Title = part.Title
	}
	if target.Description == "" {
		target.Description = part.Description
	}
	if target.Default == nil {
		target.Default = part.Default
	}
	for _, name := range part.Required {
		if !slices.Contains(target.Required, name) {
			target.Required = append(target.Required, name)
		}
	}
	if len(part.Properties) > 0 && target.Properties == nil {
		target.Properties = make(map[string]pkgopenapi.Schema, len(part.Properties))
	}
	for name, property := range part.Properties {
		if _, exists := target.Properties[name]; !exists {
			target.Properties[name] = property
		}
	}
	for key, value := range part.Extensions {
		if target.Extensions == nil {
			target.Extensions = make(map[string]any, len(part.Extensions))
		}
		if _, exists := target.Extensions[key]; !exists {
			target.Extensions[key] = value
		}
	}
}

func firstSchemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	switch len(values) {
	case 0:
		return ""
	case 1:
		return values[0]
	default:
		for _, value := range values {
			if value != "null" {
				return value
			}
		}
		return values[0]
	}
}

// extractExtensions keeps the x-question-* keys only.
func extractExtensions(raw map[string]any) map[string]any {
	if len(raw) == 0 {
		return nil
	}
	result := make(map[string]any)
	for key, value := range raw {
		if strings.HasPrefix(key, questionExtensionPrefix) {
			result[key] = value
		}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}
