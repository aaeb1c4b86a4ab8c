// Package i18n resolves UI strings for the supported languages (en, es, fr,
// bn). Lookups fall back to English and then to the message id itself, so a
// missing translation never breaks a view.
package i18n

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Fallback is the language used when a translation is missing.
const Fallback = "en"

// ErrInvalidNumber is returned by ParseNumber for input that is not a number
// written the way the translator's locale writes numbers.
var ErrInvalidNumber = errors.New("invalid number")

// Translator formats messages and numbers for one language.
type Translator struct {
	lang    string
	printer *message.Printer

	// group is 0 when the locale does not group digits.
	group   rune
	decimal rune
}

// New returns a Translator for lang, a base language code such as "es".
// Unknown codes behave like Fallback.
func New(lang string) *Translator {
	if _, ok := messages[lang]; !ok {
		lang = Fallback
	}
	t := &Translator{lang: lang, printer: message.NewPrinter(language.Make(lang))}
	t.group, t.decimal = separators(t.printer)
	return t
}

// separators reads the locale's digit group and decimal separators off a
// formatted sample. Some locales only group from five digits on, hence the
// seven-digit sample.
func separators(p *message.Printer) (group, decimal rune) {
	var marks []rune
	for _, r := range p.Sprint(number.Decimal(1234567.5)) {
		if !unicode.IsDigit(r) {
			marks = append(marks, r)
		}
	}
	switch len(marks) {
	case 0:
		return ',', '.'
	case 1:
		return 0, marks[0]
	}
	return marks[0], marks[len(marks)-1]
}

// Lang returns the language code of t.
func (t *Translator) Lang() string { return t.lang }

// T returns the message id in t's language, formatted with args using the
// locale's number conventions.
func (t *Translator) T(id string, args ...any) string {
	format, ok := Lookup(t.lang, id)
	if !ok {
		format = id
	}
	if len(args) == 0 {
		return format
	}
	return t.printer.Sprintf(format, args...)
}

// Number formats v with locale digit grouping and at most two decimals.
func (t *Translator) Number(v float64) string {
	return t.printer.Sprint(number.Decimal(v, number.MaxFractionDigits(2)))
}

// Amount formats v with locale digit grouping and exactly two decimals.
func (t *Translator) Amount(v float64) string {
	return t.printer.Sprint(number.Decimal(v, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// Plain formats v for an input field: every significant decimal, the
// locale's decimal separator and no grouping. ParseNumber reads it back.
func (t *Translator) Plain(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if t.decimal != '.' {
		s = strings.Replace(s, ".", string(t.decimal), 1)
	}
	return s
}

// ParseNumber reads a number typed in t's locale: ASCII digits, an optional
// leading minus, the locale's decimal separator and, optionally, its digit
// grouping. Grouping must be well formed, so "1,500" is 1500 in English and
// rejected in Spanish, where "1.500" and "10,5" are the accepted forms.
func (t *Translator) ParseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	raw := s

	neg := false
	if rest, ok := strings.CutPrefix(s, "-"); ok {
		neg, s = true, rest
	}

	intPart, frac, hasFrac := strings.Cut(s, string(t.decimal))
	if hasFrac && (frac == "" || !isDigits(frac)) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, raw)
	}

	digits, ok := t.ungroup(intPart)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, raw)
	}
	if hasFrac {
		digits += "." + frac
	}

	v, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, raw)
	}
	if neg {
		v = -v
	}
	return v, nil
}

// ungroup strips well-formed digit grouping from the integer part of a
// number: a leading run of one to three digits followed by runs of exactly
// three.
func (t *Translator) ungroup(s string) (string, bool) {
	if s == "" {
		return "", false
	}
	if isDigits(s) {
		return s, true
	}
	if t.group == 0 {
		return "", false
	}

	sep := string(t.group)
	if isSpace(t.group) {
		s = strings.Map(func(r rune) rune {
			if isSpace(r) {
				return t.group
			}
			return r
		}, s)
	}

	chunks := strings.Split(s, sep)
	for i, c := range chunks {
		if !isDigits(c) || len(c) > 3 || (i > 0 && len(c) != 3) {
			return "", false
		}
	}
	return strings.Join(chunks, ""), true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// isSpace covers the plain, no-break and narrow no-break spaces used as
// group separators.
func isSpace(r rune) bool {
	return r == ' ' || r == '\u00a0' || r == '\u202f'
}

// Lookup returns the raw message for id, trying lang then Fallback.
func Lookup(lang, id string) (string, bool) {
	if s, ok := messages[lang][id]; ok {
		return s, true
	}
	s, ok := messages[Fallback][id]
	return s, ok
}

// LanguageName returns the native name of a language code.
func LanguageName(lang string) string {
	switch lang {
	case "en":
		return "English"
	case "es":
		return "Español"
	case "fr":
		return "Français"
	case "bn":
		return "বাংলা"
	}
	return lang
}
