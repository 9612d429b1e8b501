// Package builder provides shorthand constructors for assembling a
// markdown document tree by hand.
//
// Constructor names mirror the element type names in the root package,
// which is why they live in a package of their own:
//
//	builder.Bold(builder.Plain("bold"), builder.ItalicsStar(builder.Plain("text")))
//
// Composite constructors require at least one child; calling one with no
// children panics with discordmd.ErrInvalidConstruction.
package builder

import "github.com/hhhapz/discordmd"

// Document assembles a document from its top-level elements.
func Document(content ...discordmd.Element) discordmd.Document {
	return discordmd.NewDocument(discordmd.ElementCollection(content))
}

// Plain creates verbatim text.
func Plain(content string) *discordmd.Plain {
	return discordmd.NewPlain(content)
}

// ItalicsStar creates italics text wrapped in `*`.
func ItalicsStar(content ...discordmd.Element) *discordmd.ItalicsStar {
	return discordmd.NewItalicsStar(discordmd.ElementCollection(content))
}

// ItalicsUnderscore creates italics text wrapped in `_`.
func ItalicsUnderscore(content ...discordmd.Element) *discordmd.ItalicsUnderscore {
	return discordmd.NewItalicsUnderscore(discordmd.ElementCollection(content))
}

// Bold creates bold text wrapped in `**`.
func Bold(content ...discordmd.Element) *discordmd.Bold {
	return discordmd.NewBold(discordmd.ElementCollection(content))
}

// Underline creates underlined text wrapped in `__`.
func Underline(content ...discordmd.Element) *discordmd.Underline {
	return discordmd.NewUnderline(discordmd.ElementCollection(content))
}

// Strikethrough creates struck-through text wrapped in `~~`.
func Strikethrough(content ...discordmd.Element) *discordmd.Strikethrough {
	return discordmd.NewStrikethrough(discordmd.ElementCollection(content))
}

// Spoiler creates spoiler text wrapped in `||`.
func Spoiler(content ...discordmd.Element) *discordmd.Spoiler {
	return discordmd.NewSpoiler(discordmd.ElementCollection(content))
}

// OneLineCode creates an inline code span.
func OneLineCode(content string) *discordmd.OneLineCode {
	return discordmd.NewOneLineCode(content)
}

// MultiLineCode creates a fenced code block. Pass language "" for an
// untagged block.
func MultiLineCode(content, language string) *discordmd.MultiLineCode {
	return discordmd.NewMultiLineCode(content, language)
}

// BlockQuote creates quoted text. Parse never produces one; quotes exist
// only on the builder side.
func BlockQuote(content ...discordmd.Element) *discordmd.BlockQuote {
	return discordmd.NewBlockQuote(discordmd.ElementCollection(content))
}
