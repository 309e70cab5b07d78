package stability

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// FindReports returns every file below buildDir whose name ends in ext and
// whose directory path contains one of markers. Results are sorted.
func FindReports(buildDir string, markers []string, ext string) ([]string, error) {
	matches, err := doublestar.Glob(os.DirFS(buildDir), "**/*"+ext, doublestar.WithFilesOnly())
	if err != nil {
		return nil, err
	}

	var reports []string
	for _, m := range matches {
		full := filepath.Join(buildDir, filepath.FromSlash(m))
		if containsAny(filepath.Dir(full), markers) {
			reports = append(reports, full)
		}
	}
	sort.Strings(reports)
	return reports, nil
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// ModuleName derives the module label from a report file name: the stem with
// build variant suffixes removed, e.g. charty_release-classes.txt -> charty-classes.
func ModuleName(reportPath string) string {
	base := filepath.Base(reportPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	stem = strings.ReplaceAll(stem, "_debug", "")
	return strings.ReplaceAll(stem, "_release", "")
}

// ReportTypeFor infers the report layout from the file name.
func ReportTypeFor(reportPath string) ReportType {
	if strings.Contains(filepath.Base(reportPath), "classes") {
		return ReportClasses
	}
	return ReportComposables
}
