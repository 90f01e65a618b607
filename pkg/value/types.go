package value

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Tags is a comma or semicolon separated list of tags.
type Tags struct {
	raw  string
	tags []string
}

// NewTags splits raw on ',' and ';'.
func NewTags(raw string) Tags {
	t := Tags{raw: raw}
	for _, part := range strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == ';' }) {
		if tag := strings.TrimSpace(part); tag != "" {
			t.tags = append(t.tags, tag)
		}
	}
	return t
}

func (t Tags) Kind() Kind     { return KindTags }
func (t Tags) String() string { return t.raw }
func (t Tags) IsEmpty() bool  { return len(t.tags) == 0 }
func (Tags) sealed()          {}

func (t Tags) SortKey() string {
	return strings.ToLower(strings.Join(t.tags, ","))
}

// List returns the individual tags in the order written.
func (t Tags) List() []string {
	return append([]string(nil), t.tags...)
}

// Has reports whether tag is present, ignoring case.
func (t Tags) Has(tag string) bool {
	for _, candidate := range t.tags {
		if strings.EqualFold(candidate, tag) {
			return true
		}
	}
	return false
}

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"01/02/2006",
	"1/2/2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
	"Mon, 2 Jan 2006",
	"2006-01",
	"2006",
}

// Date is a calendar date written in any of several common layouts.
type Date struct {
	kind Kind
	raw  string
	t    time.Time
	ok   bool
}

// NewDate parses raw using the first layout that matches.
func NewDate(kind Kind, raw string) Date {
	d := Date{kind: kind, raw: raw}
	text := strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			d.t, d.ok = t, true
			break
		}
	}
	return d
}

func (d Date) Kind() Kind     { return d.kind }
func (d Date) String() string { return d.raw }
func (d Date) IsEmpty() bool  { return strings.TrimSpace(d.raw) == "" }
func (Date) sealed()          {}

// Time returns the parsed date and whether parsing succeeded.
func (d Date) Time() (time.Time, bool) { return d.t, d.ok }

// SortKey is YYYY-MM-DD for recognised dates; unparsable text sorts after
// them by its lowercase form.
func (d Date) SortKey() string {
	if d.ok {
		return d.t.Format("2006-01-02")
	}
	return "~" + strings.ToLower(strings.TrimSpace(d.raw))
}

// Author is a person's name, sorted by last name.
type Author struct {
	raw string
}

// NewAuthor wraps raw.
func NewAuthor(raw string) Author { return Author{raw: raw} }

func (a Author) Kind() Kind     { return KindAuthor }
func (a Author) String() string { return a.raw }
func (a Author) IsEmpty() bool  { return strings.TrimSpace(a.raw) == "" }
func (Author) sealed()          {}

// LastFirst returns the name as "Last, First".
func (a Author) LastFirst() string {
	name := strings.TrimSpace(a.raw)
	if name == "" || strings.Contains(name, ",") {
		return name
	}
	words := strings.Fields(name)
	if len(words) < 2 {
		return name
	}
	last := words[len(words)-1]
	return last + ", " + strings.Join(words[:len(words)-1], " ")
}

func (a Author) SortKey() string {
	return strings.ToLower(a.LastFirst())
}

// Rating is a score from 0 to 5, written as a number or as stars.
type Rating struct {
	raw   string
	score int
}

// NewRating parses a leading digit or counts '*' characters.
func NewRating(raw string) Rating {
	r := Rating{raw: raw}
	text := strings.TrimSpace(raw)
	if stars := strings.Count(text, "*"); stars > 0 {
		r.score = stars
	} else if n, err := strconv.Atoi(strings.SplitN(text, " ", 2)[0]); err == nil {
		r.score = n
	}
	return r
}

func (r Rating) Kind() Kind     { return KindRating }
func (r Rating) String() string { return r.raw }
func (r Rating) IsEmpty() bool  { return strings.TrimSpace(r.raw) == "" }
func (Rating) sealed()          {}

// Score returns the numeric rating.
func (r Rating) Score() int { return r.score }

func (r Rating) SortKey() string {
	return fmt.Sprintf("%02d", r.score)
}
