// Package lexical provides the word-level helpers used by the command
// parser and the game text: phonetic codes, edit distance, and English
// indefinite articles.
package lexical

import "strings"

// soundexDigits maps each lower-case consonant to its Soundex digit.
// Letters absent from the table (vowels, h, w, y) act as separators.
var soundexDigits = map[byte]byte{
	'b': '1', 'f': '1', 'p': '1', 'v': '1',
	'c': '2', 'g': '2', 'j': '2', 'k': '2', 'q': '2', 's': '2', 'x': '2', 'z': '2',
	'd': '3', 't': '3',
	'l': '4',
	'm': '5', 'n': '5',
	'r': '6',
}

const soundexSeparator = '-'

// Soundex returns the four character phonetic code for word: the first
// letter upper-cased followed by three digits.
//
// Non-letter characters are ignored. Adjacent letters sharing a digit
// collapse into one, as do adjacent separators; separators are then
// discarded, so letters with the same digit split by a vowel are kept
// twice. The result is padded with zeros.
//
// Postcondition: returns "" when word contains no ASCII letters, otherwise
// a string of length 4.
func Soundex(word string) string {
	letters := make([]byte, 0, len(word))
	for i := 0; i < len(word); i++ {
		c := word[i]
		switch {
		case c >= 'a' && c <= 'z':
			letters = append(letters, c)
		case c >= 'A' && c <= 'Z':
			letters = append(letters, c+('a'-'A'))
		}
	}
	if len(letters) == 0 {
		return ""
	}

	coded := make([]byte, 0, len(letters))
	coded = append(coded, letters[0])
	for _, c := range letters[1:] {
		d, ok := soundexDigits[c]
		if !ok {
			d = soundexSeparator
		}
		if coded[len(coded)-1] == d {
			continue
		}
		coded = append(coded, d)
	}

	var b strings.Builder
	b.Grow(4)
	b.WriteByte(coded[0] - ('a' - 'A'))
	for _, d := range coded[1:] {
		if b.Len() == 4 {
			break
		}
		if d == soundexSeparator {
			continue
		}
		b.WriteByte(d)
	}
	for b.Len() < 4 {
		b.WriteByte('0')
	}
	return b.String()
}
