package value

import (
	"strings"
	"unicode"
)

const (
	firstSegmentWidth = 8
	segmentWidth      = 4
	minSortLevels     = 4
)

// segment is one run of characters between '.' or '-' separators.
type segment struct {
	text    string
	digits  bool
	letters bool
	upper   bool
	lower   bool
}

func newSegment(text string) segment {
	s := segment{text: text, digits: text != "", letters: text != ""}
	for _, r := range text {
		switch {
		case unicode.IsDigit(r):
			s.letters = false
		case unicode.IsLetter(r):
			s.digits = false
			if unicode.IsUpper(r) {
				s.upper = true
			} else {
				s.lower = true
			}
		default:
			s.digits = false
			s.letters = false
		}
	}
	return s
}

func (s segment) padded(width int) string {
	text := strings.TrimSpace(s.text)
	if len(text) >= width {
		return text
	}
	return strings.Repeat("0", width-len(text)) + text
}

// Sequence is a version-like or outline-like value such as "9", "1.2.3",
// "a.1" or "2024-07".
//
// Sequence is the one value type that may be changed after creation:
// Increment rewrites the receiver in place. Every other Value is immutable
// and is replaced wholesale when a field changes.
type Sequence struct {
	raw        string
	segments   []segment
	separators []byte
}

// NewSequence parses raw into its segments.
func NewSequence(raw string) *Sequence {
	s := &Sequence{}
	s.set(raw)
	return s
}

func (s *Sequence) set(raw string) {
	s.raw = raw
	s.segments = s.segments[:0]
	s.separators = s.separators[:0]
	text := strings.TrimSpace(raw)
	if text == "" {
		return
	}
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '.' || text[i] == '-' {
			s.segments = append(s.segments, newSegment(text[start:i]))
			s.separators = append(s.separators, text[i])
			start = i + 1
		}
	}
	s.segments = append(s.segments, newSegment(text[start:]))
}

func (s *Sequence) Kind() Kind     { return KindSequence }
func (s *Sequence) String() string { return s.raw }
func (s *Sequence) IsEmpty() bool  { return len(s.segments) == 0 }
func (*Sequence) sealed()          {}

// Levels returns the number of segments.
func (s *Sequence) Levels() int { return len(s.segments) }

// Numeric reports whether every segment is made of digits only.
func (s *Sequence) Numeric() bool {
	if len(s.segments) == 0 {
		return false
	}
	for _, seg := range s.segments {
		if !seg.digits {
			return false
		}
	}
	return true
}

// SortKey pads the first segment to 8 characters and the others to 4, so
// that "9" sorts before "10" and "a.1" before "a.2". Missing levels count
// as "0000".
func (s *Sequence) SortKey() string {
	if len(s.segments) == 0 {
		return ""
	}
	levels := len(s.segments)
	if levels < minSortLevels {
		levels = minSortLevels
	}
	parts := make([]string, levels)
	for i := range parts {
		width := segmentWidth
		if i == 0 {
			width = firstSegmentWidth
		}
		if i < len(s.segments) {
			parts[i] = s.segments[i].padded(width)
		} else {
			parts[i] = strings.Repeat("0", width)
		}
	}
	return strings.Join(parts, ".")
}

// Increment bumps the sequence in place.
//
// With onLeft set the first segment is incremented and any later segments
// are dropped ("1.5" becomes "2"). Otherwise the last segment is incremented
// ("a.1" becomes "a.2"). Within the segment digits and letters are bumped
// right to left with carry (9→0, z→a, Z→A); a carry out of the leftmost
// character inserts a new leading one ("9" becomes "10", "z" becomes "aa").
func (s *Sequence) Increment(onLeft bool) {
	if len(s.segments) == 0 {
		s.set("1")
		return
	}
	idx := len(s.segments) - 1
	if onLeft {
		idx = 0
	}
	segs := make([]string, len(s.segments))
	for i, seg := range s.segments {
		segs[i] = seg.text
	}
	segs[idx] = incrementText(segs[idx])
	if onLeft {
		segs = segs[:1]
	}

	var b strings.Builder
	for i, text := range segs {
		if i > 0 {
			b.WriteByte(s.separators[i-1])
		}
		b.WriteString(text)
	}
	s.set(b.String())
}

func incrementText(text string) string {
	chars := []rune(text)
	for i := len(chars) - 1; i >= 0; i-- {
		c := chars[i]
		switch {
		case c >= '0' && c <= '8', c >= 'a' && c <= 'y', c >= 'A' && c <= 'Y':
			chars[i] = c + 1
			return string(chars)
		case c == '9':
			chars[i] = '0'
		case c == 'z':
			chars[i] = 'a'
		case c == 'Z':
			chars[i] = 'A'
		case c == ' ':
			// leading padding absorbs the carry
			chars[i] = '1'
			return string(chars)
		default:
			continue
		}
	}
	return string(leadingFor(chars)) + string(chars)
}

// leadingFor picks the character inserted when a carry runs off the left.
func leadingFor(chars []rune) rune {
	for _, c := range chars {
		switch {
		case c >= '0' && c <= '9':
			return '1'
		case c >= 'a' && c <= 'z':
			return 'a'
		case c >= 'A' && c <= 'Z':
			return 'A'
		}
	}
	return '1'
}
