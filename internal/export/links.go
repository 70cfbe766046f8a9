package export

import (
	"regexp"
	"strings"
)

// hostedPrefix matches an absolute Feishu or Lark URL up to the token.
const hostedPrefix = `(https?://\w+\.(?:feishu\.cn|larksuite\.com)/.*)?`

var nodeTokenPrefix = regexp.MustCompile(`^wik(?:cn|en)`)

// NormalizeSlug strips the wikcn / wiken prefix from a wiki node token.
func NormalizeSlug(token string) string {
	return nodeTokenPrefix.ReplaceAllString(token, "")
}

// ReplaceLinks points every reference to token at newLink. It rewrites src
// and href attribute values and Markdown link targets that start with the
// token, optionally behind a Feishu or Lark host. The token must end the path:
// only a query string or fragment may follow it, and both are replaced too, so
// a token never matches a longer token it prefixes. An empty token or newLink
// leaves content unchanged.
func ReplaceLinks(content, token, newLink string) string {
	if token == "" || newLink == "" {
		return content
	}
	quoted := regexp.QuoteMeta(token)
	literal := strings.ReplaceAll(newLink, "$", "$$")

	attr := regexp.MustCompile(`((?:src|href)=["|'])` + hostedPrefix + `(` + quoted + `(?:[?#][^"']*)?)("|')`)
	content = attr.ReplaceAllString(content, "${1}"+literal+"${4}")

	link := regexp.MustCompile(`(\]\()` + hostedPrefix + `(` + quoted + `(?:[?#][^)]*)?)(\))`)
	return link.ReplaceAllString(content, "${1}"+literal+"${4}")
}

// AssetURL joins baseURL and token with a single slash.
func AssetURL(baseURL, token string) string {
	if baseURL == "" {
		return token
	}
	return strings.TrimRight(baseURL, "/") + "/" + token
}

// RewriteAssets points the src, href and link targets that reference each
// token at its URL under baseURL. Tokens in plain text are left alone. An
// empty baseURL leaves content unchanged.
func RewriteAssets(content string, tokens []string, baseURL string) string {
	if baseURL == "" {
		return content
	}
	for _, token := range tokens {
		content = ReplaceLinks(content, token, AssetURL(baseURL, token))
	}
	return content
}
