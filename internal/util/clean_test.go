package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripHTML(t *testing.T) {
	in := `<article><p>Stocks climbed on Tuesday.</p><script>track()</script><p>Investors cheered.</p></article>`
	assert.Equal(t, "Stocks climbed on Tuesday. Investors cheered.", StripHTML(in))
}

func TestStripHTMLPlainTextPassthrough(t *testing.T) {
	assert.Equal(t, "no markup here", StripHTML("no markup here"))
}

func TestCleanArticleText(t *testing.T) {
	in := "<p>“Markets” rallied — again…</p>\n\n  extra   spaces"
	assert.Equal(t, `"Markets" rallied -- again... extra spaces`, CleanArticleText(in))
}

func TestCleanArticleTextEmpty(t *testing.T) {
	assert.Equal(t, "", CleanArticleText(""))
	assert.Equal(t, "", CleanArticleText("<div><script>x</script></div>"))
}
