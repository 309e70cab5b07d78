package logfields

import (
	"errors"
	"log/slog"
	"testing"
)

// TestHelperKeyNames verifies string-based helper key/value stability.
func TestHelperKeyNames(t *testing.T) {
	cases := []struct {
		name    string
		attrKey string
		attrVal string
		attr    slog.Attr
	}{
		{"Path", KeyPath, "/tmp/x", Path("/tmp/x")},
		{"Report", KeyReport, "charty-classes.txt", Report("charty-classes.txt")},
		{"Module", KeyModule, "charty", Module("charty")},
		{"ReportType", KeyReportType, "classes", ReportType("classes")},
		{"BuildDir", KeyBuildDir, "charty/build", BuildDir("charty/build")},
		{"Category", KeyCategory, "bar", Category("bar")},
		{"Stack", KeyStack, "goroutine 1", Stack([]byte("goroutine 1"))},
		{"Error", KeyError, "boom", Error(errors.New("boom"))},
		{"NilError", KeyError, "", Error(nil)},
	}

	for _, tc := range cases {
		if tc.attr.Key != tc.attrKey {
			// Key drift would break log ingestion schemas.
			t.Fatalf("%s: expected key %s, got %s", tc.name, tc.attrKey, tc.attr.Key)
		}
		if got := tc.attr.Value.String(); got != tc.attrVal {
			t.Fatalf("%s: expected value %q, got %q", tc.name, tc.attrVal, got)
		}
	}
}

func TestIntHelpers(t *testing.T) {
	cases := []struct {
		attr slog.Attr
		key  string
		want int64
	}{
		{Issues(3), KeyIssues, 3},
		{Reports(2), KeyReports, 2},
		{Created(20), KeyCreated, 20},
		{Skipped(1), KeySkipped, 1},
	}
	for _, tc := range cases {
		if tc.attr.Key != tc.key || tc.attr.Value.Int64() != tc.want {
			t.Fatalf("unexpected attr %v", tc.attr)
		}
	}
}
