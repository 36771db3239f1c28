package types

// StyleCode identifies one of the supported citation styles.
type StyleCode string

const (
	StyleChicago   StyleCode = "chicago"
	StyleTurabian  StyleCode = "turabian"
	StyleBluebook  StyleCode = "bluebook"
	StyleAMA       StyleCode = "ama"
	StyleOxford    StyleCode = "oxford"
	StyleOSCOLA    StyleCode = "oscola"
	StyleMHRA      StyleCode = "mhra"
	StyleVancouver StyleCode = "vancouver"
)

// Styles lists the supported style codes in display order.
func Styles() []StyleCode {
	return []StyleCode{
		StyleChicago, StyleTurabian, StyleBluebook, StyleAMA,
		StyleOxford, StyleOSCOLA, StyleMHRA, StyleVancouver,
	}
}

// Emphasis selects how the inline incipit phrase is formatted.
type Emphasis string

const (
	EmphasisBold   Emphasis = "bold"
	EmphasisItalic Emphasis = "italic"
)

// Incipit word count bounds.
const (
	MinIncipitWords = 1
	MaxIncipitWords = 10
)

// StyleConfig holds the per-request processing parameters. Supplied once
// per pass and immutable for its duration.
type StyleConfig struct {
	// Style selects the citation style.
	Style StyleCode `json:"style" yaml:"style"`

	// IncipitWordCount is the maximum incipit length in words (1-10).
	IncipitWordCount int `json:"incipit_word_count" yaml:"incipit_word_count"`

	// Emphasis selects bold or italic for the inline incipit.
	Emphasis Emphasis `json:"emphasis" yaml:"emphasis"`

	// PreviewOnly requests before/after records instead of a rewrite.
	PreviewOnly bool `json:"preview_only" yaml:"preview_only"`
}

// EngineConfig groups the settings the CLI resolves from flags, the config
// file, and the environment.
type EngineConfig struct {
	StyleConfig `yaml:",inline"`

	// JournalsFile optionally overrides the embedded abbreviation table.
	JournalsFile string `json:"journals_file,omitempty" yaml:"journals_file,omitempty"`

	// LedgerPath is the SQLite run-ledger location. Empty disables
	// run recording.
	LedgerPath string `json:"ledger_path,omitempty" yaml:"ledger_path,omitempty"`
}
