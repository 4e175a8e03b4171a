// SPDX-License-Identifier: MIT

package apienum

import (
	"strings"
	"unicode"
)

// Convention derives a wire string from a PascalCase symbol name. Conventions
// run once, at declaration time; the runtime codec only ever sees the wire
// strings they produce.
type Convention func(symbol string) string

// Identity keeps the symbol name as the wire string.
func Identity(symbol string) string {
	return symbol
}

// LowerCamel lowercases the leading rune: "PlainText" becomes "plainText".
func LowerCamel(symbol string) string {
	if symbol == "" {
		return symbol
	}
	runes := []rune(symbol)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

// UpperSnake inserts an underscore before every interior uppercase rune and
// uppercases the whole string: "ReplaceAll" becomes "REPLACE_ALL", "XSmall"
// becomes "X_SMALL".
func UpperSnake(symbol string) string {
	var b strings.Builder
	b.Grow(len(symbol) + 4)
	for i, r := range symbol {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}
