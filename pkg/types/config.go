// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// BuildConfig holds settings for the HTML-to-Word build stage.
type BuildConfig struct {
	// HTMLDir is the directory containing the site's HTML pages.
	HTMLDir string `json:"html_dir" yaml:"html_dir"`

	// WordDocsDir is the directory Word documents are written to.
	WordDocsDir string `json:"word_docs_dir" yaml:"word_docs_dir"`

	// ManifestPath optionally points at a YAML page manifest. Empty means
	// the embedded site manifest is used.
	ManifestPath string `json:"manifest_path,omitempty" yaml:"manifest_path,omitempty"`
}

// ExtractConfig holds settings for the Word-to-store extract stage.
type ExtractConfig struct {
	// WordDocsDir is the directory scanned for *.docx files.
	WordDocsDir string `json:"word_docs_dir" yaml:"word_docs_dir"`

	// OutputDir is the site root; extracted images and content.json land
	// under OutputDir/assets/.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// NonInteractive disables the content-key prompt. Documents whose key
	// cannot be inferred are skipped with a warning.
	NonInteractive bool `json:"non_interactive" yaml:"non_interactive"`

	// ChangedOnly skips documents whose modification time matches the last
	// recorded sync in the ledger.
	ChangedOnly bool `json:"changed_only" yaml:"changed_only"`

	// NoLedger disables sync ledger recording for this run.
	NoLedger bool `json:"no_ledger" yaml:"no_ledger"`
}

// PipelineConfig groups the stage configurations.
type PipelineConfig struct {
	Build   BuildConfig   `json:"build" yaml:"build"`
	Extract ExtractConfig `json:"extract" yaml:"extract"`
}
