package guard

import (
	"strings"
	"unicode"
)

// Language is the language a reply is expected to be written in.
type Language string

const (
	Chinese Language = "zh"
	English Language = "en"
)

// MismatchThreshold is the Han-character ratio separating Chinese from
// non-Chinese replies. Must match the mobile client.
const MismatchThreshold = 0.3

// ParseLanguage maps a locale tag such as "zh-CN" or "en_US" to a Language.
// Anything that is not Chinese is treated as English.
func ParseLanguage(tag string) Language {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "zh" || strings.HasPrefix(tag, "zh-") || strings.HasPrefix(tag, "zh_") || tag == "chinese" {
		return Chinese
	}
	return English
}

// ChineseRatio returns the fraction of non-whitespace runes in text that are
// Han characters. Empty text has a ratio of 0.
func ChineseRatio(text string) float64 {
	var han, total int
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if unicode.Is(unicode.Han, r) {
			han++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(han) / float64(total)
}

// Mismatched reports whether a reply with the given Han ratio violates the
// expected language.
func Mismatched(expected Language, ratio float64) bool {
	if expected == Chinese {
		return ratio < MismatchThreshold
	}
	return ratio >= MismatchThreshold
}
