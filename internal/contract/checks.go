package contract

import (
	"slices"
	"strings"
)

// containsString reports whether a decoded YAML sequence contains the string.
func containsString(list []any, s string) bool {
	for _, item := range list {
		if value, ok := item.(string); ok && value == s {
			return true
		}
	}
	return false
}

// checkRequiredFields verifies the required OpenAPI top-level fields.
func (v *Validator) checkRequiredFields() {
	for _, field := range []string{"openapi", "info", "paths"} {
		if _, ok := v.spec[field]; !ok {
			v.errorf("Missing required field: %s", field)
		}
	}

	if info := asMap(v.spec["info"]); info != nil {
		for _, field := range []string{"title", "version"} {
			if _, ok := info[field]; !ok {
				v.errorf("Missing required info field: %s", field)
			}
		}
	}
}

// checkPaths verifies API paths follow REST conventions.
func (v *Validator) checkPaths() {
	paths := asMap(v.spec["paths"])
	if paths == nil {
		return
	}

	// Verbs belong in HTTP methods, not in resource paths.
	verbIndicators := []string{"get", "post", "put", "delete", "create", "update", "list"}

	for _, path := range sortedKeys(paths) {
		lower := strings.ToLower(path)
		for _, verb := range verbIndicators {
			if strings.Contains(lower, verb) {
				v.warnf("Path '%s' contains verb '%s' - use HTTP methods instead", path, verb)
			}
		}

		if !strings.HasPrefix(path, "/api/") {
			v.warnf("Path '%s' doesn't start with /api/", path)
		}

		methods := asMap(paths[path])
		for _, method := range sortedKeys(methods) {
			if !slices.Contains([]string{"get", "post", "put", "patch", "delete", "options", "head"}, method) {
				continue
			}

			operation := asMap(methods[method])
			upper := strings.ToUpper(method)

			if _, ok := operation["operationId"]; !ok {
				v.warnf("%s %s: Missing operationId", upper, path)
			}
			if _, ok := operation["summary"]; !ok {
				v.warnf("%s %s: Missing summary", upper, path)
			}
			if _, ok := operation["responses"]; !ok {
				v.errorf("%s %s: Missing responses", upper, path)
			}
		}
	}
}

// checkResponses verifies response definitions are complete.
func (v *Validator) checkResponses() {
	paths := asMap(v.spec["paths"])
	if paths == nil {
		return
	}

	for _, path := range sortedKeys(paths) {
		methods := asMap(paths[path])
		for _, method := range sortedKeys(methods) {
			if !slices.Contains(bodyMethods, method) {
				continue
			}

			operation := asMap(methods[method])
			responses := asMap(operation["responses"])
			if responses == nil {
				continue
			}

			upper := strings.ToUpper(method)

			hasSuccess := false
			for _, code := range []string{"200", "201", "204"} {
				if _, ok := responses[code]; ok {
					hasSuccess = true
					break
				}
			}
			if !hasSuccess {
				v.warnf("%s %s: No success response (200, 201, or 204)", upper, path)
			}

			if method == "post" {
				if _, ok := responses["201"]; !ok {
					v.warnf("POST %s: Should return 201 Created", path)
				}
			}
			if method == "delete" {
				if _, ok := responses["204"]; !ok {
					v.warnf("DELETE %s: Should return 204 No Content", path)
				}
			}

			if _, ok := responses["400"]; !ok {
				v.warnf("%s %s: Missing 400 Bad Request response", upper, path)
			}
			if _, ok := responses["401"]; !ok {
				v.warnf("%s %s: Missing 401 Unauthorized response", upper, path)
			}
			if _, ok := responses["403"]; !ok {
				v.warnf("%s %s: Missing 403 Forbidden response", upper, path)
			}
		}
	}
}

// checkErrorContract verifies the canonical RFC 7807 ProblemDetails schema
// exists, is shaped correctly, and is referenced by every 4xx/5xx response.
func (v *Validator) checkErrorContract() {
	components := asMap(v.spec["components"])
	if components == nil {
		v.warnf("Missing components section - define reusable schemas")
		return
	}

	schemas := asMap(components["schemas"])
	if schemas == nil {
		v.warnf("Missing schemas in components")
		return
	}

	if _, ok := schemas["ErrorResponse"]; ok {
		v.errorf("Found legacy ErrorResponse schema - use canonical ProblemDetails schema only")
	}

	errorSchema := asMap(schemas[ErrorSchemaName])
	if errorSchema == nil {
		v.errorf("Missing %s schema - all APIs should use RFC 7807 format", ErrorSchemaName)
		return
	}

	properties := asMap(errorSchema["properties"])
	for _, field := range []string{"type", "title", "status", "code", "traceId"} {
		if _, ok := properties[field]; !ok {
			v.errorf("%s missing required property: %s", ErrorSchemaName, field)
		}
	}

	required, _ := errorSchema["required"].([]any)
	for _, field := range []string{"type", "title", "status"} {
		if !containsString(required, field) {
			v.errorf("%s should require field: %s", ErrorSchemaName, field)
		}
	}

	paths := asMap(v.spec["paths"])
	for _, path := range sortedKeys(paths) {
		methods := asMap(paths[path])
		for _, method := range sortedKeys(methods) {
			if !slices.Contains(bodyMethods, method) {
				continue
			}

			responses := asMap(asMap(methods[method])["responses"])
			for _, statusCode := range sortedKeys(responses) {
				if statusCode == "" || (statusCode[0] != '4' && statusCode[0] != '5') {
					continue
				}

				context := strings.ToUpper(method) + " " + path + " " + statusCode
				ref := v.extractResponseSchemaRef(responses[statusCode], context)
				if ref != "" && ref != ErrorSchemaRef {
					v.errorf("%s: expected %s, found %s", context, ErrorSchemaRef, ref)
				}
			}
		}
	}
}

// checkSecurity verifies some security scheme is declared.
func (v *Validator) checkSecurity() {
	if _, ok := v.spec["security"]; ok {
		return
	}
	if _, ok := asMap(v.spec["components"])["securitySchemes"]; ok {
		return
	}
	v.warnf("No security defined - all endpoints should require authentication")
}

// checkSchemas verifies schema definitions carry descriptions and required
// field declarations.
func (v *Validator) checkSchemas() {
	schemas := asMap(asMap(v.spec["components"])["schemas"])
	if schemas == nil {
		return
	}

	for _, name := range sortedKeys(schemas) {
		schema := asMap(schemas[name])
		_, hasDescription := schema["description"]
		_, hasProperties := schema["properties"]

		if !hasDescription && !hasProperties {
			v.warnf("Schema '%s' missing description", name)
		}
		if hasProperties {
			if _, ok := schema["required"]; !ok {
				v.warnf("Schema '%s' has properties but no 'required' array", name)
			}
		}
	}
}
