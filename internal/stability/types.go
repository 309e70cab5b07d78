// Package stability analyzes Compose compiler stability reports.
//
// The compiler writes plain-text reports (`*-classes.txt`, `*-composables.txt`)
// whose format is not specified anywhere and changes between compiler
// releases. The parser therefore treats each report as untyped lines and uses
// fixed-size lookahead windows after every header line instead of a grammar.
package stability

// Kind is the component kind of an issue.
type Kind string

const (
	KindClass      Kind = "Class"
	KindInterface  Kind = "Interface"
	KindObject     Kind = "Object"
	KindComposable Kind = "Composable"
)

// IsClassLike reports whether k is one of the declaration kinds found in class reports.
func (k Kind) IsClassLike() bool {
	return k == KindClass || k == KindInterface || k == KindObject
}

// Verdict is the stability verdict of an issue.
type Verdict string

const (
	VerdictUnstable     Verdict = "Unstable"
	VerdictRuntime      Verdict = "Runtime"
	VerdictNotSkippable Verdict = "Not Skippable"
)

// ReportType tells which of the two compiler report layouts a file uses.
type ReportType string

const (
	ReportClasses     ReportType = "classes"
	ReportComposables ReportType = "composables"
)

// Issue is one unstable class or problematic composable.
type Issue struct {
	Module        string  `json:"module"`
	Kind          Kind    `json:"kind"`
	Name          string  `json:"name"`
	QualifiedName string  `json:"qualified_name"`
	Verdict       Verdict `json:"verdict"`
	Reason        string  `json:"reason"`
	// SourceFile is a guess derived from the qualified name; Kotlin does not
	// require file names to match declarations.
	SourceFile string `json:"source_file"`
}
