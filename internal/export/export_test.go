package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSlug(t *testing.T) {
	assert.Equal(t, "foo-bar", NormalizeSlug("foo-bar"))
	assert.Equal(t, "foo-bar", NormalizeSlug("wikcnfoo-bar"))
	assert.Equal(t, "foo-bar", NormalizeSlug("wikenfoo-bar"))
	assert.Equal(t, "xwikcnfoo", NormalizeSlug("xwikcnfoo"))
}

func TestReplaceLinks(t *testing.T) {
	raw := `
    ](https://ywh1bkansf.feishu.cn/wiki/aabbdd)
    ](https://ywh1bkansf.feishu.cn/foo/aabbdd)
    ](https://ywh1bkansf.feishu.cn/F8OMwrI3TisTPokQAJHcMG2knBh)
    ](https://ywh1bkansf.feishu.cn/wiki/F8OMwrI3TisTPokQAJHcMG2knBh)
    href="https://ywh1bkansf.feishu.cn/wiki/F8OMwrI3TisTPokQAJHcMG2knBh"
    href="https://ywh1bkansf.larksuite.com/wiki/F8OMwrI3TisTPokQAJHcMG2knBh"
    src="https://ywh1bkansf.feishu.cn/wiki/F8OMwrI3TisTPokQAJHcMG2knBh"
    ](F8OMwrI3TisTPokQAJHcMG2knBh)
    ](flasdjkgajklsdgjklajklsdgjklal)
    href="F8OMwrI3TisTPokQAJHcMG2knBh"
    href="./F8OMwrI3TisTPokQAJHcMG2knBh"
    src="F8OMwrI3TisTPokQAJHcMG2knBh"
    href="/F8OMwrI3TisTPokQAJHcMG2knBh/F8OMwrI3TisTPokQAJHcMG2knBh"
    href="https://ywh1bkansf.feishu.cn/wiki/F8OMwrI3TisTPokQAJHcMG2knBh?foo=bar#hash1"
    `

	expected := `
    ](https://ywh1bkansf.feishu.cn/wiki/aabbdd)
    ](https://ywh1bkansf.feishu.cn/foo/aabbdd)
    ](/new-link)
    ](/new-link)
    href="/new-link"
    href="/new-link"
    src="/new-link"
    ](/new-link)
    ](flasdjkgajklsdgjklajklsdgjklal)
    href="/new-link"
    href="./F8OMwrI3TisTPokQAJHcMG2knBh"
    src="/new-link"
    href="/F8OMwrI3TisTPokQAJHcMG2knBh/F8OMwrI3TisTPokQAJHcMG2knBh"
    href="/new-link"
    `

	assert.Equal(t, expected, ReplaceLinks(raw, "F8OMwrI3TisTPokQAJHcMG2knBh", "/new-link"))
}

func TestReplaceLinksNoTarget(t *testing.T) {
	content := `[doc](tokenA)`
	assert.Equal(t, content, ReplaceLinks(content, "tokenA", ""))
	assert.Equal(t, content, ReplaceLinks(content, "", "/x"))
}

func TestReplaceLinksKeepsDollarLiteral(t *testing.T) {
	assert.Equal(t, `[doc](/price$1)`, ReplaceLinks(`[doc](tokenA)`, "tokenA", "/price$1"))
}

func TestRewriteAssets(t *testing.T) {
	content := `<img src="imgTokenA" src-width="640"/>` + "\n[report.pdf](fileTokenB)\n"

	got := RewriteAssets(content, []string{"imgTokenA", "", "fileTokenB"}, "/assets/")

	assert.Equal(t, `<img src="/assets/imgTokenA" src-width="640"/>`+"\n[report.pdf](/assets/fileTokenB)\n", got)
	assert.Equal(t, content, RewriteAssets(content, []string{"imgTokenA"}, ""))
}

func TestRewriteAssetsLeavesProseAlone(t *testing.T) {
	content := "The upload id imgA was approved.\n<img src=\"imgA\"/>\n"

	got := RewriteAssets(content, []string{"imgA"}, "https://cdn.example.com")

	assert.Equal(t, "The upload id imgA was approved.\n<img src=\"https://cdn.example.com/imgA\"/>\n", got)
}

func TestRewriteAssetsPrefixTokens(t *testing.T) {
	got := RewriteAssets("[f](ab) [g](abc) <img src='abc'/>", []string{"ab", "abc"}, "/a")

	assert.Equal(t, "[f](/a/ab) [g](/a/abc) <img src='/a/abc'/>", got)
}

func TestReplaceLinksRequiresTokenBoundary(t *testing.T) {
	content := `[a](tokenAB) [b](tokenA?x=1#top) <a href="tokenA#frag">c</a>`

	got := ReplaceLinks(content, "tokenA", "/docs/a")

	assert.Equal(t, `[a](tokenAB) [b](/docs/a) <a href="/docs/a">c</a>`, got)
}

func TestAssetURL(t *testing.T) {
	assert.Equal(t, "https://cdn.example.com/a", AssetURL("https://cdn.example.com", "a"))
	assert.Equal(t, "a", AssetURL("", "a"))
}

func TestFrontMatter(t *testing.T) {
	got, err := FrontMatter(map[string]any{
		"tags":             []string{"go", "docs"},
		"sidebar_position": 3,
		"title":            `Say "hi": now`,
		"slug":             "guide/intro",
		"draft":            nil,
	})
	require.NoError(t, err)

	assert.Equal(t, "---\n"+
		"title: 'Say \"hi\": now'\n"+
		"slug: guide/intro\n"+
		"sidebar_position: 3\n"+
		"tags:\n"+
		"  - go\n"+
		"  - docs\n"+
		"---\n", got)
}

func TestFrontMatterEmpty(t *testing.T) {
	got, err := FrontMatter(map[string]any{"draft": nil})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPageFrontMatter(t *testing.T) {
	fields := PageFrontMatter(PageInfo{
		Title:    "Getting Started",
		Slug:     "/docs/getting-started/",
		Position: 2,
		RenderID: "b3c1",
	}, map[string]any{"sidebar_position": 9, "hide": true})

	assert.Equal(t, "Getting Started", fields["title"])
	assert.Equal(t, "docs/getting-started", fields["slug"])
	assert.Equal(t, 9, fields["sidebar_position"])
	assert.Equal(t, "b3c1", fields["render_id"])
	assert.Equal(t, true, fields["hide"])
}

func TestPageFrontMatterIndexPage(t *testing.T) {
	fields := PageFrontMatter(PageInfo{Title: "Home", Position: -1}, nil)

	assert.Equal(t, "", fields["slug"])
	assert.Equal(t, -1, fields["sidebar_position"])
	assert.NotContains(t, fields, "render_id")
}

func TestNormalizePageSlug(t *testing.T) {
	assert.Equal(t, "", NormalizePageSlug(""))
	assert.Equal(t, "foo/bar", NormalizePageSlug("foo//bar/"))
	assert.Equal(t, "hello-world", NormalizePageSlug("Hello World"))
}
