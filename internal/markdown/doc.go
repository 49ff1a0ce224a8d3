// Package markdown converts raw markdown text into ordered slide sequences.
//
// The pipeline runs in three stages: SplitSections divides the input into
// per-slide chunks using a tiered fallback strategy, the extractors pull
// template-specific fields out of each chunk, and Assemble maps chunks onto a
// cycling list of template kinds. Parsing never fails; ambiguous input falls
// back to deterministic placeholders so every produced slide renders.
//
// The package also hosts the goldmark-backed HTML renderer used for previews
// and the frontmatter-aware importer that turns whole documents into decks.
package markdown
