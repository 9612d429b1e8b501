package discordmd

import (
	"reflect"

	"github.com/pkg/errors"
)

// ErrInvalidConstruction is the error carried by the panic raised when a
// constructor is misused: a composite element with no children, or a
// multiline code block with a language tag that would corrupt the fence.
var ErrInvalidConstruction = errors.New("discordmd: invalid construction")

// Element is a single node of a markdown document tree.
//
// An element is either a leaf holding verbatim text (Plain, OneLineCode,
// MultiLineCode) or a composite owning an ordered, non-empty collection of
// child elements. The set of implementations is closed; elements are
// immutable once constructed.
type Element interface {
	// Markdown returns the canonical markdown rendering of the element.
	Markdown() string

	// PlainText returns the text of the element with all markdown
	// delimiters dropped.
	PlainText() string

	element()
}

// ElementCollection is an ordered sequence of elements. Order is the
// reading order of the original text.
type ElementCollection []Element

// Walk calls fn for every element in the collection in depth-first order,
// children after their parent.
func (c ElementCollection) Walk(fn func(Element)) {
	for _, el := range c {
		fn(el)
		switch v := el.(type) {
		case *ItalicsStar:
			v.content.Walk(fn)
		case *ItalicsUnderscore:
			v.content.Walk(fn)
		case *Bold:
			v.content.Walk(fn)
		case *Underline:
			v.content.Walk(fn)
		case *Strikethrough:
			v.content.Walk(fn)
		case *Spoiler:
			v.content.Walk(fn)
		case *BlockQuote:
			v.content.Walk(fn)
		}
	}
}

// A Document is the root of a markdown tree. It owns its top-level
// elements exclusively and may be empty.
type Document struct {
	content ElementCollection
}

func NewDocument(content ElementCollection) Document {
	return Document{content: content}
}

// Content returns the top-level elements of the document.
func (d Document) Content() ElementCollection {
	return d.content
}

// Equal reports whether both documents hold the same element tree: same
// variants, same payloads, same children, recursively.
func (d Document) Equal(other Document) bool {
	return reflect.DeepEqual(d, other)
}

// Walk calls fn for every element of the document in depth-first order.
func (d Document) Walk(fn func(Element)) {
	d.content.Walk(fn)
}

// Plain is verbatim text with no markup interpretation.
type Plain struct {
	content string
}

func NewPlain(content string) *Plain {
	return &Plain{content: content}
}

func (p *Plain) Content() string {
	return p.content
}

// ItalicsStar is italics text wrapped in `*`.
type ItalicsStar struct {
	content ElementCollection
}

func NewItalicsStar(content ElementCollection) *ItalicsStar {
	mustHaveChildren("italics", content)
	return &ItalicsStar{content: content}
}

func (i *ItalicsStar) Content() ElementCollection {
	return i.content
}

// ItalicsUnderscore is italics text wrapped in `_`.
type ItalicsUnderscore struct {
	content ElementCollection
}

func NewItalicsUnderscore(content ElementCollection) *ItalicsUnderscore {
	mustHaveChildren("italics", content)
	return &ItalicsUnderscore{content: content}
}

func (i *ItalicsUnderscore) Content() ElementCollection {
	return i.content
}

// Bold is bold text wrapped in `**`.
type Bold struct {
	content ElementCollection
}

func NewBold(content ElementCollection) *Bold {
	mustHaveChildren("bold", content)
	return &Bold{content: content}
}

func (b *Bold) Content() ElementCollection {
	return b.content
}

// Underline is underlined text wrapped in `__`.
type Underline struct {
	content ElementCollection
}

func NewUnderline(content ElementCollection) *Underline {
	mustHaveChildren("underline", content)
	return &Underline{content: content}
}

func (u *Underline) Content() ElementCollection {
	return u.content
}

// Strikethrough is struck-through text wrapped in `~~`.
type Strikethrough struct {
	content ElementCollection
}

func NewStrikethrough(content ElementCollection) *Strikethrough {
	mustHaveChildren("strikethrough", content)
	return &Strikethrough{content: content}
}

func (s *Strikethrough) Content() ElementCollection {
	return s.content
}

// Spoiler is spoiler text wrapped in `||`.
type Spoiler struct {
	content ElementCollection
}

func NewSpoiler(content ElementCollection) *Spoiler {
	mustHaveChildren("spoiler", content)
	return &Spoiler{content: content}
}

func (s *Spoiler) Content() ElementCollection {
	return s.content
}

// OneLineCode is an inline code span wrapped in a backtick pair. Its
// content is never interpreted as markup.
type OneLineCode struct {
	content string
}

func NewOneLineCode(content string) *OneLineCode {
	return &OneLineCode{content: content}
}

func (c *OneLineCode) Content() string {
	return c.content
}

// MultiLineCode is a fenced code block. Its content is never interpreted
// as markup. The language tag is optional; "" means none.
type MultiLineCode struct {
	content  string
	language string
}

// NewMultiLineCode creates a fenced code block. The language tag must
// consist of ASCII letters and digits only; anything else would corrupt
// the fence wire format and panics with ErrInvalidConstruction.
func NewMultiLineCode(content, language string) *MultiLineCode {
	for i := 0; i < len(language); i++ {
		if !isAlnum(language[i]) {
			panic(errors.Wrapf(ErrInvalidConstruction, "multiline code: bad language tag %q", language))
		}
	}
	return &MultiLineCode{content: content, language: language}
}

func (c *MultiLineCode) Content() string {
	return c.content
}

// Language returns the language tag of the code block, or "" if the block
// has none.
func (c *MultiLineCode) Language() string {
	return c.language
}

// BlockQuote is quoted text, each line prefixed with "> ". It can only be
// built by hand; Parse never produces one.
type BlockQuote struct {
	content ElementCollection
}

func NewBlockQuote(content ElementCollection) *BlockQuote {
	mustHaveChildren("block quote", content)
	return &BlockQuote{content: content}
}

func (q *BlockQuote) Content() ElementCollection {
	return q.content
}

func (*Plain) element()             {}
func (*ItalicsStar) element()       {}
func (*ItalicsUnderscore) element() {}
func (*Bold) element()              {}
func (*Underline) element()         {}
func (*Strikethrough) element()     {}
func (*Spoiler) element()           {}
func (*OneLineCode) element()       {}
func (*MultiLineCode) element()     {}
func (*BlockQuote) element()        {}

func mustHaveChildren(name string, content ElementCollection) {
	if len(content) == 0 {
		panic(errors.Wrap(ErrInvalidConstruction, name+": no child elements"))
	}
}

func isAlnum(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}
