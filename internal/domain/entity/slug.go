package entity

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// symbolWords símbolos y letras sin descomposición que se escriben con palabras o
// letras ASCII dentro de la palabra en curso ("100%" queda "100percent").
var symbolWords = map[rune]string{
	'&': "and",
	'%': "percent",
	'$': "dollar",
	'<': "less",
	'>': "greater",
	'|': "or",
	'¢': "cent",
	'£': "pound",
	'¥': "yen",
	'€': "euro",
	'ß': "ss",
	'æ': "ae",
	'Æ': "ae",
	'œ': "oe",
	'Œ': "oe",
	'ø': "o",
	'Ø': "o",
	'đ': "d",
	'Đ': "d",
	'ł': "l",
	'Ł': "l",
	'þ': "th",
	'Þ': "th",
}

// Slugify genera un identificador URL en minúsculas: los acentos se pliegan a ASCII,
// los símbolos de symbolWords se leen como palabra, los espacios y guiones separan
// palabras y el resto se descarta. Un nombre sin letras ni dígitos produce un slug vacío.
func Slugify(name string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), name)
	if err != nil {
		folded = name
	}

	var words []string
	var word strings.Builder
	flush := func() {
		if word.Len() > 0 {
			words = append(words, word.String())
			word.Reset()
		}
	}
	for _, r := range folded {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			word.WriteRune(unicode.ToLower(r))
		case symbolWords[r] != "":
			word.WriteString(symbolWords[r])
		case unicode.IsSpace(r) || r == '-':
			flush()
		}
	}
	flush()
	return strings.Join(words, "-")
}
