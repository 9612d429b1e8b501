// Package discordmd parses Discord's subset of markdown into a document
// tree and renders document trees back to markdown text.
//
// Parse turns raw chat text into a Document:
//
//	doc := discordmd.Parse("You can write *italics text*, `*inline code*`, and more!")
//
// The builder package assembles a Document by hand, and Markdown renders
// any tree back to canonical text:
//
//	doc := builder.Document(
//		builder.Plain("generating "),
//		builder.OneLineCode("markdown"),
//		builder.Plain(" is "),
//		builder.Underline(builder.Bold(builder.Plain("easy"))),
//	)
//	text := doc.Markdown() // "generating `markdown` is __**easy**__"
//
// The two directions are not inverse in general: no text is ever escaped,
// so a hand-built Plain element containing delimiter characters renders
// to text that Parse reads back as markup.
package discordmd
