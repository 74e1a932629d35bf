package lexical

import "strings"

// Article returns the indefinite article for noun: "an" when it begins
// with a vowel letter, "a" otherwise. Blank nouns get no article.
func Article(noun string) string {
	if noun == "" {
		return ""
	}
	switch Lower(noun[:1]) {
	case "a", "e", "i", "o", "u":
		return "an"
	default:
		return "a"
	}
}

// WithArticle prefixes noun with its indefinite article.
//
// Postcondition: a blank noun is returned unchanged.
func WithArticle(noun string) string {
	if strings.TrimSpace(noun) == "" {
		return noun
	}
	return Article(noun) + " " + noun
}

// Lower folds the ASCII letters of s to lower case and leaves all other
// bytes untouched.
func Lower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// EqualFold reports whether a and b are equal under ASCII case folding.
func EqualFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	return Lower(a) == Lower(b)
}
