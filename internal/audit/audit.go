// Package audit checks security planning artifacts for completeness.
//
// Light mode validates that the required planning files exist and are not
// effectively empty. Strict mode additionally enforces a non-draft Status
// header, minimum section and content depth, and at least one usable dated
// security review output.
package audit

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// DefaultBaseDir is the conventional location of security planning artifacts.
const DefaultBaseDir = "planning-mds/security"

// RequiredFiles are the artifacts every security planning directory must
// contain.
var RequiredFiles = []string{
	"threat-model.md",
	"authorization-review.md",
	"data-protection.md",
	"secrets-management.md",
	"owasp-top-10-results.md",
}

const (
	minStrictNonEmptyLines = 10
	minStrictSectionCount  = 3
	minReviewNonEmptyLines = 5
)

// draftStatuses are Status values that mark an artifact as unfinished.
var draftStatuses = map[string]bool{
	"draft":       true,
	"placeholder": true,
	"tbd":         true,
	"todo":        true,
}

var (
	reviewFilePattern = regexp.MustCompile(`^security-review-\d{4}-\d{2}-\d{2}\.md$`)
	statusLinePattern = regexp.MustCompile(`(?im)^\s*Status:\s*(.+?)\s*$`)
	reviewDatePattern = regexp.MustCompile(`(?m)^\s*Date:\s*\d{4}-\d{2}-\d{2}\s*$`)
)

// Report collects audit findings. Errors fail the audit; warnings do not.
type Report struct {
	Errors   []string
	Warnings []string
}

// Clean reports whether the audit produced no findings at all.
func (r *Report) Clean() bool {
	return len(r.Errors) == 0 && len(r.Warnings) == 0
}

// Passed reports whether the audit produced no errors.
func (r *Report) Passed() bool {
	return len(r.Errors) == 0
}

// Auditor audits one security planning directory.
type Auditor struct {
	baseDir string
	strict  bool
}

// NewAuditor creates an Auditor for baseDir. In strict mode, empty artifacts
// become errors and the depth and review-evidence checks are enforced.
func NewAuditor(baseDir string, strict bool) *Auditor {
	return &Auditor{baseDir: baseDir, strict: strict}
}

// Audit runs all checks and returns the report. A missing base directory is
// the one environmental condition reported as a Go error.
func (a *Auditor) Audit() (*Report, error) {
	if _, err := os.Stat(a.baseDir); err != nil {
		return nil, fmt.Errorf("security directory not found: %s", a.baseDir)
	}

	report := &Report{}
	for _, name := range RequiredFiles {
		a.auditArtifact(report, filepath.Join(a.baseDir, name))
	}

	if a.strict {
		report.Errors = append(report.Errors, a.validateDatedReviews(filepath.Join(a.baseDir, "reviews"))...)
	}

	return report, nil
}

func (a *Auditor) auditArtifact(report *Report, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		report.Errors = append(report.Errors, fmt.Sprintf("Missing security artifact: %s", path))
		return
	}
	content := string(data)

	if isEffectivelyEmpty(content) {
		message := fmt.Sprintf("Security artifact looks empty: %s", path)
		if a.strict {
			report.Errors = append(report.Errors, message)
		} else {
			report.Warnings = append(report.Warnings, message)
		}
		return
	}

	if !a.strict {
		return
	}

	status := extractStatus(content)
	if status == "" {
		report.Errors = append(report.Errors, fmt.Sprintf("Missing 'Status:' line in strict mode: %s", path))
	} else if draftStatuses[strings.ToLower(status)] {
		report.Errors = append(report.Errors,
			fmt.Sprintf("Security artifact is not finalized (Status: %s): %s", status, path))
	}

	if sectionCount(content) < minStrictSectionCount {
		report.Errors = append(report.Errors, fmt.Sprintf(
			"Security artifact missing minimum section depth (need >= %d '##' sections): %s",
			minStrictSectionCount, path))
	}

	if nonEmptyLineCount(content) < minStrictNonEmptyLines {
		report.Errors = append(report.Errors, fmt.Sprintf(
			"Security artifact missing minimum content depth (need >= %d non-empty lines): %s",
			minStrictNonEmptyLines, path))
	}
}

// validateDatedReviews requires at least one review file matching
// security-review-YYYY-MM-DD.md with minimum content and a Date header.
func (a *Auditor) validateDatedReviews(reviewsDir string) []string {
	info, err := os.Stat(reviewsDir)
	if err != nil || !info.IsDir() {
		return []string{fmt.Sprintf("Security reviews directory not found: %s", reviewsDir)}
	}

	entries, err := os.ReadDir(reviewsDir)
	if err != nil {
		return []string{fmt.Sprintf("Security reviews directory not found: %s", reviewsDir)}
	}

	var candidates []string
	for _, entry := range entries {
		if !entry.IsDir() && reviewFilePattern.MatchString(entry.Name()) {
			candidates = append(candidates, entry.Name())
		}
	}
	if len(candidates) == 0 {
		return []string{fmt.Sprintf(
			"No dated security review output found in %s (expected files like security-review-YYYY-MM-DD.md)",
			reviewsDir)}
	}

	sort.Strings(candidates)
	for _, name := range candidates {
		data, err := os.ReadFile(filepath.Join(reviewsDir, name))
		if err != nil {
			continue
		}
		content := string(data)
		if nonEmptyLineCount(content) < minReviewNonEmptyLines {
			continue
		}
		if reviewDatePattern.MatchString(content) {
			return nil
		}
	}

	return []string{"Dated security review files exist but none contain minimum content and a Date: YYYY-MM-DD header"}
}

// isEffectivelyEmpty treats blank content or a lone heading as empty.
func isEffectivelyEmpty(content string) bool {
	if strings.TrimSpace(content) == "" {
		return true
	}
	return nonEmptyLineCount(content) <= 1
}

func extractStatus(content string) string {
	match := statusLinePattern.FindStringSubmatch(content)
	if match == nil {
		return ""
	}
	return strings.TrimSpace(match[1])
}

func nonEmptyLineCount(content string) int {
	count := 0
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	return count
}

func sectionCount(content string) int {
	count := 0
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "## ") {
			count++
		}
	}
	return count
}
