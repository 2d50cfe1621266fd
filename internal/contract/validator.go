// Package contract validates OpenAPI specifications for completeness and
// consistency.
//
// The validator performs shallow structural checks over a parsed OpenAPI
// document: required top-level fields, REST path conventions, response
// completeness, the RFC 7807 ProblemDetails error contract, security
// presence, and schema hygiene. It does not interpret OpenAPI semantics
// beyond key presence and local $ref resolution.
//
// Findings are split into errors (must fix, fail the check) and warnings
// (should fix, reported but passing).
package contract

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrorSchemaName is the canonical RFC 7807 error schema every API must define.
const ErrorSchemaName = "ProblemDetails"

// ErrorSchemaRef is the local reference error responses must point at.
const ErrorSchemaRef = "#/components/schemas/ProblemDetails"

// bodyMethods are the HTTP methods whose operations are checked for
// response completeness.
var bodyMethods = []string{"get", "post", "put", "patch", "delete"}

// Report collects validation findings for one OpenAPI document.
type Report struct {
	Errors   []string
	Warnings []string
}

// Valid reports whether the document passed, i.e. produced zero errors.
// Warnings do not affect validity.
func (r *Report) Valid() bool {
	return len(r.Errors) == 0
}

// Validator checks a single OpenAPI document.
type Validator struct {
	path   string
	spec   map[string]any
	report Report
}

// NewValidator creates a Validator for the OpenAPI file at path.
func NewValidator(path string) *Validator {
	return &Validator{path: path}
}

// Validate loads the document and runs all checks, returning the report.
// A document that cannot be read or parsed yields a report with a single
// load error rather than a Go error; the file content is the thing under
// test, not an environmental failure.
func (v *Validator) Validate() *Report {
	if !v.load() {
		return &v.report
	}

	v.checkRequiredFields()
	v.checkPaths()
	v.checkResponses()
	v.checkErrorContract()
	v.checkSecurity()
	v.checkSchemas()

	return &v.report
}

func (v *Validator) load() bool {
	data, err := os.ReadFile(v.path)
	if err != nil {
		v.errorf("Failed to load API spec: %v", err)
		return false
	}
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		v.errorf("Failed to load API spec: %v", err)
		return false
	}
	spec, ok := doc.(map[string]any)
	if !ok {
		v.errorf("Failed to load API spec: document is not a mapping")
		return false
	}
	v.spec = spec
	return true
}

func (v *Validator) errorf(format string, args ...any) {
	v.report.Errors = append(v.report.Errors, fmt.Sprintf(format, args...))
}

func (v *Validator) warnf(format string, args ...any) {
	v.report.Warnings = append(v.report.Warnings, fmt.Sprintf(format, args...))
}

// asMap returns node as a mapping, or nil if it is anything else.
func asMap(node any) map[string]any {
	m, _ := node.(map[string]any)
	return m
}

// sortedKeys returns the mapping's keys in lexical order so findings are
// deterministic. The YAML decoder does not preserve document order in maps.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// resolveLocalRef resolves a local reference like #/components/schemas/Thing
// against the document root. Returns nil for external or dangling refs.
func (v *Validator) resolveLocalRef(ref string) any {
	if !strings.HasPrefix(ref, "#/") {
		return nil
	}
	var node any = v.spec
	for _, token := range strings.Split(ref[2:], "/") {
		m := asMap(node)
		if m == nil {
			return nil
		}
		child, ok := m[token]
		if !ok {
			return nil
		}
		node = child
	}
	return node
}

// extractResponseSchemaRef resolves a response object (following a $ref if
// present) and returns the $ref of its application/json schema. Missing or
// malformed pieces are reported as errors and yield an empty string.
func (v *Validator) extractResponseSchemaRef(response any, context string) string {
	responseObject := asMap(response)
	if responseObject == nil {
		v.errorf("%s: response must be an object", context)
		return ""
	}

	if ref, ok := responseObject["$ref"].(string); ok {
		responseObject = asMap(v.resolveLocalRef(ref))
		if responseObject == nil {
			v.errorf("%s: invalid response reference %s", context, ref)
			return ""
		}
	}

	jsonContent := asMap(asMap(responseObject["content"])["application/json"])
	if jsonContent == nil {
		v.errorf("%s: error responses must define application/json content", context)
		return ""
	}

	schema := asMap(jsonContent["schema"])
	if schema == nil {
		v.errorf("%s: error responses must define a schema", context)
		return ""
	}

	ref, _ := schema["$ref"].(string)
	if ref == "" {
		v.errorf("%s: error responses must reference %s", context, ErrorSchemaRef)
		return ""
	}
	return ref
}
