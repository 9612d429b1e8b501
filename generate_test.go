package discordmd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hhhapz/discordmd"
	"github.com/hhhapz/discordmd/builder"
)

func TestMarkdown(t *testing.T) {
	cases := []struct {
		name string
		el   discordmd.Element
		want string
	}{
		{"plain", builder.Plain("plain text"), "plain text"},
		{"italics star", builder.ItalicsStar(builder.Plain("text")), "*text*"},
		{"italics underscore", builder.ItalicsUnderscore(builder.Plain("text")), "_text_"},
		{"bold", builder.Bold(builder.Plain("text")), "**text**"},
		{"underline", builder.Underline(builder.Plain("text")), "__text__"},
		{"strikethrough", builder.Strikethrough(builder.Plain("text")), "~~text~~"},
		{"spoiler", builder.Spoiler(builder.Plain("text")), "||text||"},
		{"one line code", builder.OneLineCode("one line code"), "`one line code`"},
		{
			"multi line code",
			builder.MultiLineCode("\nmulti\nline\ncode\n", ""),
			"```\nmulti\nline\ncode\n```",
		},
		{
			"multi line code leading space",
			builder.MultiLineCode(" multi\nline\ncode\n", ""),
			"``` multi\nline\ncode\n```",
		},
		{
			"multi line code single line",
			builder.MultiLineCode("multi line code", ""),
			"```multi line code```",
		},
		{
			"multi line code with language",
			builder.MultiLineCode("\nmulti\nline\ncode\n", "js"),
			"```js\nmulti\nline\ncode\n```",
		},
		{
			"nested",
			builder.Underline(builder.Bold(builder.Plain("underline bold"))),
			"__**underline bold**__",
		},
		{
			"block quote line per child",
			builder.BlockQuote(builder.Plain("block quote"), builder.Plain("some text")),
			"> block quote\n> some text",
		},
		{
			"block quote multiline child",
			builder.BlockQuote(builder.Plain("block quote\ntext")),
			"> block quote\n> text",
		},
		{
			"block quote styled child",
			builder.BlockQuote(builder.Bold(builder.Plain("bold")), builder.Plain("plain")),
			"> **bold**\n> plain",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.el.Markdown())
		})
	}
}

func TestDocumentMarkdown(t *testing.T) {
	doc := builder.Document(
		builder.Bold(builder.Plain("bold")),
		builder.Plain(" plain "),
		builder.Underline(builder.Bold(builder.Plain("underline bold"))),
	)

	assert.Equal(t, "**bold** plain __**underline bold**__", doc.Markdown())
	assert.Equal(t, "bold plain underline bold", doc.PlainText())
}

func TestGeneratingMarkdownIsEasy(t *testing.T) {
	doc := builder.Document(
		builder.Plain("generating "),
		builder.OneLineCode("markdown"),
		builder.Plain(" is "),
		builder.Underline(
			builder.Bold(builder.Plain("easy")),
			builder.Plain(" and "),
			builder.Bold(builder.Plain("fun!")),
		),
	)

	assert.Equal(t, "generating `markdown` is __**easy** and **fun!**__", doc.Markdown())
}

func TestPlainText(t *testing.T) {
	cases := []struct {
		name string
		el   discordmd.Element
		want string
	}{
		{"plain", builder.Plain("plain text"), "plain text"},
		{"italics", builder.ItalicsStar(builder.Plain("text")), "text"},
		{"bold", builder.Bold(builder.Plain("text")), "text"},
		{"spoiler", builder.Spoiler(builder.Plain("text")), "text"},
		{"one line code", builder.OneLineCode("code"), "code"},
		{"multi line code", builder.MultiLineCode("\ncode\n", "js"), "\ncode\n"},
		{
			"nested",
			builder.Underline(
				builder.ItalicsStar(builder.Plain("nested")),
				builder.Plain(" styles"),
			),
			"nested styles",
		},
		{"block quote", builder.BlockQuote(builder.Plain("block quote\ntext")), "block quote\ntext"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.el.PlainText())
		})
	}
}
