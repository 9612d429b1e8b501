package discordmd

import "strings"

// maxNestingDepth caps how deeply composite elements may nest. Content at
// the cap is kept as plain text instead of being parsed further, so
// parsing terminates with bounded recursion on any input.
const maxNestingDepth = 100

// Parse reads markdown text into a document tree.
//
// Parse is total: every input produces a document, and syntax that does
// not match any rule is kept as plain text. There is no error channel.
//
// At each position rules are tried longest delimiter first: fenced code,
// inline code, bold, italics (star), underline, italics (underscore),
// strikethrough, spoiler. Code spans are captured verbatim and never
// reinterpreted. An opening delimiter with no matching closer is plain
// text. Block quote syntax ("> " at line start) is not a rule and always
// parses as plain text.
//
// Backslash escapes are not interpreted, and intraword underscores open
// emphasis; both are accepted divergences from the reference client.
func Parse(text string) Document {
	return NewDocument(parseCollection(text, 0))
}

func parseCollection(s string, depth int) ElementCollection {
	if s == "" {
		return nil
	}
	if depth >= maxNestingDepth {
		return ElementCollection{NewPlain(s)}
	}

	var (
		content ElementCollection
		plain   strings.Builder
	)
	flush := func() {
		if plain.Len() > 0 {
			content = append(content, NewPlain(plain.String()))
			plain.Reset()
		}
	}

	for i := 0; i < len(s); {
		el, size := matchElement(s[i:], depth)
		if el == nil {
			// Delimiters are ASCII, so advancing bytewise never
			// splits a multibyte rune across elements.
			plain.WriteByte(s[i])
			i++
			continue
		}
		flush()
		content = append(content, el)
		i += size
	}
	flush()
	return content
}

// styles lists the emphasis-family rules in priority order. Longer
// delimiters come before their prefixes so that `**` is never read as
// two `*` markers.
var styles = []struct {
	delim string
	wrap  func(ElementCollection) Element
}{
	{"**", func(c ElementCollection) Element { return NewBold(c) }},
	{"*", func(c ElementCollection) Element { return NewItalicsStar(c) }},
	{"__", func(c ElementCollection) Element { return NewUnderline(c) }},
	{"_", func(c ElementCollection) Element { return NewItalicsUnderscore(c) }},
	{"~~", func(c ElementCollection) Element { return NewStrikethrough(c) }},
	{"||", func(c ElementCollection) Element { return NewSpoiler(c) }},
}

// matchElement tries every non-plain rule at the start of s. It returns
// the parsed element and the number of input bytes it spans, or nil if no
// rule matches there.
func matchElement(s string, depth int) (Element, int) {
	if el, size := matchMultiLineCode(s); el != nil {
		return el, size
	}
	if el, size := matchOneLineCode(s); el != nil {
		return el, size
	}
	for _, style := range styles {
		inner, size, ok := matchDelimited(s, style.delim)
		if !ok {
			continue
		}
		return style.wrap(parseCollection(inner, depth+1)), size
	}
	return nil, 0
}

// matchDelimited captures the shortest non-empty span wrapped in a pair
// of delim at the start of s.
func matchDelimited(s, delim string) (inner string, size int, ok bool) {
	if !strings.HasPrefix(s, delim) {
		return "", 0, false
	}
	rest := s[len(delim):]
	end := strings.Index(rest, delim)
	if end <= 0 {
		return "", 0, false
	}
	return rest[:end], 2*len(delim) + end, true
}

func matchOneLineCode(s string) (Element, int) {
	inner, size, ok := matchDelimited(s, "`")
	if !ok {
		return nil, 0
	}
	return NewOneLineCode(inner), size
}

func matchMultiLineCode(s string) (Element, int) {
	inner, size, ok := matchDelimited(s, "```")
	if !ok {
		return nil, 0
	}

	// A leading alphanumeric run terminated by a newline is the language
	// tag. The newline itself stays in the content.
	var language string
	i := 0
	for i < len(inner) && isAlnum(inner[i]) {
		i++
	}
	if i > 0 && i < len(inner) && inner[i] == '\n' {
		language, inner = inner[:i], inner[i:]
	}
	return NewMultiLineCode(inner, language), size
}
