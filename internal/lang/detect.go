package lang

import (
	"strings"
	"unicode"

	"github.com/legalens/legalens/internal/model"
)

// Detection is script-based: Devanagari code points indicate Hindi, Latin
// letters indicate English. Counting letters of each script is reliable
// for the bilingual contracts this tool targets and needs no statistical
// language model.

var devanagariDigits = map[rune]rune{
	'०': '0', '१': '1', '२': '2', '३': '3', '४': '4',
	'५': '5', '६': '6', '७': '7', '८': '8', '९': '9',
}

func isDevanagari(r rune) bool {
	return r >= 0x0900 && r <= 0x097F
}

func isLatinLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// Detect reports the scripts present in the text and the dominant one.
// Confidence is the dominant script's share of counted letters.
func Detect(text string) model.LanguageInfo {
	var devanagari, latin int
	for _, r := range text {
		switch {
		case isDevanagari(r):
			devanagari++
		case isLatinLetter(r):
			latin++
		}
	}

	total := devanagari + latin
	if total == 0 {
		return model.LanguageInfo{PrimaryLanguage: "unknown"}
	}

	info := model.LanguageInfo{
		HasHindi:       devanagari > 0,
		HasEnglish:     latin > 0,
		IsMultilingual: devanagari > 0 && latin > 0,
	}

	if devanagari > latin {
		info.PrimaryLanguage = "hi"
		info.Confidence = float64(devanagari) / float64(total)
	} else {
		info.PrimaryLanguage = "en"
		info.Confidence = float64(latin) / float64(total)
	}

	return info
}

// Normalize prepares multilingual text for analysis: Devanagari numerals
// become ASCII digits and invisible formatting characters are removed.
// Whitespace is left alone so paragraph boundaries survive for
// segmentation.
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	for _, r := range text {
		if ascii, ok := devanagariDigits[r]; ok {
			b.WriteRune(ascii)
			continue
		}
		// zero-width space, BOM, replacement char
		switch r {
		case '\u200B', '\uFEFF', unicode.ReplacementChar:
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}
