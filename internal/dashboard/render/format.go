package render

import (
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

const currencySymbol = "₹"

// Capitalize upper-cases the first letter of s.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// StatusLabel turns a snake_case status into words, "in_progress" becomes
// "In Progress".
func StatusLabel(s string) string {
	words := strings.Split(s, "_")
	for i, w := range words {
		words[i] = Capitalize(w)
	}
	return strings.Join(words, " ")
}

// StatusClass is the CSS modifier for a status.
func StatusClass(s string) string {
	return strings.ReplaceAll(s, "_", "-")
}

// ServiceName splits a camelCase subsystem key into words. Runs of capitals
// stay together: "paymentAPI" becomes "Payment API".
func ServiceName(s string) string {
	var sb strings.Builder
	prev := rune(0)
	for _, r := range s {
		if unicode.IsUpper(r) && prev != 0 && unicode.IsLower(prev) {
			sb.WriteByte(' ')
		}
		sb.WriteRune(r)
		prev = r
	}
	return Capitalize(sb.String())
}

// Amount prints an amount with the rupee sign and thousands separators.
func Amount(v int64) string {
	neg := v < 0
	if neg {
		v = -v
	}

	digits := strconv.FormatInt(v, 10)
	var sb strings.Builder
	if neg {
		sb.WriteByte('-')
	}
	sb.WriteString(currencySymbol)
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(d)
	}
	return sb.String()
}

// Clock prints the time of day, "10:30 AM".
func Clock(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("03:04 PM")
}

// Date prints a short date with time, "Aug 15, 09:30 AM".
func Date(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("Jan 2, 03:04 PM")
}
