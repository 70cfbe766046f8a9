// Package export prepares rendered Markdown for static site generators: front
// matter, link and asset rewriting, and SUMMARY.md generation for wiki trees.
package export
