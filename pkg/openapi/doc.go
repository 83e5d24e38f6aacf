// Package openapi exposes the loader and parser contracts used to turn an
// OpenAPI operation into a questionnaire. Implementations live under
// internal/openapi so kin-openapi types never leak to callers.
package openapi
