// Package markdown wraps the Markdown toolchain used around the block
// renderer: goldmark for Markdown to HTML conversion of embedded blocks and
// front matter decoding for metadata code blocks and exported files.
package markdown
