// Package translit converts Serbian Latin script to Cyrillic and builds the
// spelling variants used by school name search.
//
// Latin "c" is ambiguous for searching: people routinely type it for ц, ћ
// and ч alike, so ExpandAmbiguousVariants returns one Cyrillic rendition per
// reading.
package translit

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// digraphs are matched before single letters. Only title case and all caps
// forms are digraphs; "nJ" is two letters.
var digraphs = map[[2]rune]rune{
	{'l', 'j'}: 'љ', {'L', 'j'}: 'Љ', {'L', 'J'}: 'Љ',
	{'n', 'j'}: 'њ', {'N', 'j'}: 'Њ', {'N', 'J'}: 'Њ',
	{'d', 'ž'}: 'џ', {'D', 'ž'}: 'Џ', {'D', 'Ž'}: 'Џ',
}

// letters holds the one-to-one mappings. c and C are resolved by convert.
var letters = map[rune]rune{
	'a': 'а', 'b': 'б', 'v': 'в', 'g': 'г', 'd': 'д', 'đ': 'ђ', 'e': 'е',
	'ž': 'ж', 'z': 'з', 'i': 'и', 'j': 'ј', 'k': 'к', 'l': 'л', 'm': 'м',
	'n': 'н', 'o': 'о', 'p': 'п', 'r': 'р', 's': 'с', 't': 'т', 'ć': 'ћ',
	'u': 'у', 'f': 'ф', 'h': 'х', 'č': 'ч', 'š': 'ш',

	'A': 'А', 'B': 'Б', 'V': 'В', 'G': 'Г', 'D': 'Д', 'Đ': 'Ђ', 'E': 'Е',
	'Ž': 'Ж', 'Z': 'З', 'I': 'И', 'J': 'Ј', 'K': 'К', 'L': 'Л', 'M': 'М',
	'N': 'Н', 'O': 'О', 'P': 'П', 'R': 'Р', 'S': 'С', 'T': 'Т', 'Ć': 'Ћ',
	'U': 'У', 'F': 'Ф', 'H': 'Х', 'Č': 'Ч', 'Š': 'Ш',
}

// Transliterate maps Serbian Latin text to Cyrillic. The digraphs lj, nj
// and dž become љ, њ and џ, so "Ljubljana" is "Љубљана" rather than
// "Лјублјана". Runes without a mapping (digits, punctuation, Cyrillic, other
// scripts) are copied unchanged.
func Transliterate(text string) string {
	return convert(text, 'ц', 'Ц')
}

// ExpandAmbiguousVariants returns the Cyrillic renditions of text. The first
// element is always Transliterate(text). When text contains c or C, the
// renditions reading every c as ћ and as ч follow. Duplicates are removed
// keeping the first occurrence.
func ExpandAmbiguousVariants(text string) []string {
	variants := []string{Transliterate(text)}
	if !strings.ContainsAny(text, "cC") {
		return variants
	}

	variants = appendUnique(variants, convert(text, 'ћ', 'Ћ'))
	variants = appendUnique(variants, convert(text, 'ч', 'Ч'))

	return variants
}

// Fold returns the lowercased NFC form of text. Stored names and queries are
// both folded before comparison.
func Fold(text string) string {
	// A Caser is stateful and must not be shared between goroutines.
	return cases.Lower(language.Serbian).String(norm.NFC.String(text))
}

// SearchVariants returns the substrings a folded school name is matched
// against for query: every ambiguous Cyrillic variant of the folded query,
// followed by the folded query itself so Cyrillic or literal input still
// matches. An empty query yields nil.
func SearchVariants(query string) []string {
	folded := Fold(query)
	if folded == "" {
		return nil
	}

	return appendUnique(ExpandAmbiguousVariants(folded), folded)
}

// convert is the single left-to-right scan behind every rendition. Each
// position is either a digraph, which consumes two runes, or a single rune.
func convert(text string, cLower, cUpper rune) string {
	src := []rune(norm.NFC.String(text))

	var b strings.Builder
	b.Grow(len(text) * 2)

	for i := 0; i < len(src); i++ {
		if i+1 < len(src) {
			if r, ok := digraphs[[2]rune{src[i], src[i+1]}]; ok {
				b.WriteRune(r)
				i++
				continue
			}
		}

		switch r := src[i]; r {
		case 'c':
			b.WriteRune(cLower)
		case 'C':
			b.WriteRune(cUpper)
		default:
			if mapped, ok := letters[r]; ok {
				b.WriteRune(mapped)
			} else {
				b.WriteRune(r)
			}
		}
	}

	return b.String()
}

func appendUnique(list []string, s string) []string {
	for _, existing := range list {
		if existing == s {
			return list
		}
	}
	return append(list, s)
}
