// Command docxmd renders Feishu/Lark docx block list JSON as Markdown and
// builds SUMMARY.md files for exported wiki trees.
//
// Usage:
//
//	docxmd render doc.json -o docs/index.md --front-matter
//	docxmd summary nodes.json -o SUMMARY.md --docs-dir docs
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
