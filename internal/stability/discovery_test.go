package stability

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestFindReports(t *testing.T) {
	build := t.TempDir()
	for _, rel := range []string{
		"compose_reports/charty_release-composables.txt",
		"compose_reports/charty_release-classes.txt",
		"compose_metrics/charty_release-module.txt",
		"compose_reports/nested/extra-classes.txt",
		"compose_reports/charty_release-composables.csv",
		"outputs/logs/build.txt",
		"compose_reports.txt",
	} {
		writeFile(t, filepath.Join(build, filepath.FromSlash(rel)), "")
	}

	reports, err := FindReports(build, []string{"compose_reports", "compose_metrics"}, ".txt")
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(build, "compose_metrics", "charty_release-module.txt"),
		filepath.Join(build, "compose_reports", "charty_release-classes.txt"),
		filepath.Join(build, "compose_reports", "charty_release-composables.txt"),
		filepath.Join(build, "compose_reports", "nested", "extra-classes.txt"),
	}, reports)
}

func TestFindReports_NoMatches(t *testing.T) {
	reports, err := FindReports(t.TempDir(), []string{"compose_reports"}, ".txt")
	require.NoError(t, err)
	assert.Empty(t, reports)
}

func TestModuleName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "build/compose_reports/charty_release-classes.txt", want: "charty-classes"},
		{path: "build/compose_reports/composeApp_debug-composables.txt", want: "composeApp-composables"},
		{path: "plain.txt", want: "plain"},
		{path: "a/b/charty_debug_release-module.txt", want: "charty-module"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, ModuleName(filepath.FromSlash(tt.path)))
		})
	}
}

func TestReportTypeFor(t *testing.T) {
	assert.Equal(t, ReportClasses, ReportTypeFor("x/charty_release-classes.txt"))
	assert.Equal(t, ReportComposables, ReportTypeFor("x/charty_release-composables.txt"))
	assert.Equal(t, ReportComposables, ReportTypeFor("x/charty_release-module.txt"))
	assert.Equal(t, ReportComposables, ReportTypeFor("classes/charty-module.txt"))
}
