// ABOUTME: Per-format field escaping primitives for CSV and RTF output.
// ABOUTME: Both rules are total functions over the character set with no failure mode.
package export

import "strings"

// escapeCSV wraps a field value in double quotes, doubling any interior quote.
// Newlines inside the quoted field are legal CSV and pass through unmodified.
func escapeCSV(value string) string {
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}

// escapeRTF prefixes backslash and the two group delimiters with a backslash.
// Backslash is rewritten first so the escapes it inserts are not re-escaped.
func escapeRTF(value string) string {
	value = strings.ReplaceAll(value, `\`, `\\`)
	value = strings.ReplaceAll(value, `{`, `\{`)
	value = strings.ReplaceAll(value, `}`, `\}`)
	return value
}
