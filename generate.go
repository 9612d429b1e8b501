package discordmd

import "strings"

// Markdown returns the canonical markdown rendering of the document.
//
// No escaping is performed: a Plain payload that itself contains
// delimiter characters produces text that Parse reads back differently.
func (d Document) Markdown() string {
	return d.content.Markdown()
}

// PlainText returns the text of the document with all markdown
// delimiters dropped.
func (d Document) PlainText() string {
	return d.content.PlainText()
}

func (d Document) String() string {
	return d.Markdown()
}

func (c ElementCollection) Markdown() string {
	var b strings.Builder
	for _, el := range c {
		b.WriteString(el.Markdown())
	}
	return b.String()
}

func (c ElementCollection) PlainText() string {
	var b strings.Builder
	for _, el := range c {
		b.WriteString(el.PlainText())
	}
	return b.String()
}

func (p *Plain) Markdown() string  { return p.content }
func (p *Plain) PlainText() string { return p.content }
func (p *Plain) String() string    { return p.Markdown() }

func (i *ItalicsStar) Markdown() string  { return "*" + i.content.Markdown() + "*" }
func (i *ItalicsStar) PlainText() string { return i.content.PlainText() }
func (i *ItalicsStar) String() string    { return i.Markdown() }

func (i *ItalicsUnderscore) Markdown() string  { return "_" + i.content.Markdown() + "_" }
func (i *ItalicsUnderscore) PlainText() string { return i.content.PlainText() }
func (i *ItalicsUnderscore) String() string    { return i.Markdown() }

func (b *Bold) Markdown() string  { return "**" + b.content.Markdown() + "**" }
func (b *Bold) PlainText() string { return b.content.PlainText() }
func (b *Bold) String() string    { return b.Markdown() }

func (u *Underline) Markdown() string  { return "__" + u.content.Markdown() + "__" }
func (u *Underline) PlainText() string { return u.content.PlainText() }
func (u *Underline) String() string    { return u.Markdown() }

func (s *Strikethrough) Markdown() string  { return "~~" + s.content.Markdown() + "~~" }
func (s *Strikethrough) PlainText() string { return s.content.PlainText() }
func (s *Strikethrough) String() string    { return s.Markdown() }

func (s *Spoiler) Markdown() string  { return "||" + s.content.Markdown() + "||" }
func (s *Spoiler) PlainText() string { return s.content.PlainText() }
func (s *Spoiler) String() string    { return s.Markdown() }

func (c *OneLineCode) Markdown() string  { return "`" + c.content + "`" }
func (c *OneLineCode) PlainText() string { return c.content }
func (c *OneLineCode) String() string    { return c.Markdown() }

func (c *MultiLineCode) Markdown() string  { return "```" + c.language + c.content + "```" }
func (c *MultiLineCode) PlainText() string { return c.content }
func (c *MultiLineCode) String() string    { return c.Markdown() }

// Markdown renders each child on its own line, prefixed with "> ". A
// child whose own rendering spans multiple lines has every line prefixed.
func (q *BlockQuote) Markdown() string {
	var lines []string
	for _, el := range q.content {
		for _, line := range strings.Split(el.Markdown(), "\n") {
			lines = append(lines, "> "+line)
		}
	}
	return strings.Join(lines, "\n")
}

func (q *BlockQuote) PlainText() string { return q.content.PlainText() }
func (q *BlockQuote) String() string    { return q.Markdown() }
