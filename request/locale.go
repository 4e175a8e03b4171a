// SPDX-License-Identifier: MIT

package request

import (
	"encoding/json"
	"strings"

	"github.com/jct-tympanon/alexa-go/apienum"
)

// Language is the language half of a locale, an ISO 639-1 code.
type Language string

var languages = apienum.DeclareExplicit[Language](map[string]string{
	"English":    "en",
	"French":     "fr",
	"German":     "de",
	"Hindi":      "hi",
	"Italian":    "it",
	"Japanese":   "ja",
	"Portuguese": "pt",
	"Spanish":    "es",
})

var (
	LanguageEnglish    = languages.Value("English")
	LanguageFrench     = languages.Value("French")
	LanguageGerman     = languages.Value("German")
	LanguageHindi      = languages.Value("Hindi")
	LanguageItalian    = languages.Value("Italian")
	LanguageJapanese   = languages.Value("Japanese")
	LanguagePortuguese = languages.Value("Portuguese")
	LanguageSpanish    = languages.Value("Spanish")
)

// String returns the language code directly.
func (l Language) String() string { return string(l) }

// Known reports whether the language is one Alexa ships.
func (l Language) Known() bool { return languages.Known(l) }

// Region is the region half of a locale, an ISO 3166-1 alpha-2 code.
type Region string

var regions = apienum.DeclareExplicit[Region](map[string]string{
	"Australia":     "AU",
	"Brazil":        "BR",
	"Canada":        "CA",
	"France":        "FR",
	"Germany":       "DE",
	"India":         "IN",
	"Italy":         "IT",
	"Japan":         "JP",
	"Mexico":        "MX",
	"Spain":         "ES",
	"UnitedKingdom": "GB",
	"UnitedStates":  "US",
})

var (
	RegionAustralia     = regions.Value("Australia")
	RegionBrazil        = regions.Value("Brazil")
	RegionCanada        = regions.Value("Canada")
	RegionFrance        = regions.Value("France")
	RegionGermany       = regions.Value("Germany")
	RegionIndia         = regions.Value("India")
	RegionItaly         = regions.Value("Italy")
	RegionJapan         = regions.Value("Japan")
	RegionMexico        = regions.Value("Mexico")
	RegionSpain         = regions.Value("Spain")
	RegionUnitedKingdom = regions.Value("UnitedKingdom")
	RegionUnitedStates  = regions.Value("UnitedStates")
)

// String returns the region code directly.
func (r Region) String() string { return string(r) }

// Known reports whether the region is one Alexa ships.
func (r Region) Known() bool { return regions.Known(r) }

// Locale is the decomposed form of a "language[-REGION]" wire string, for
// example "en-US" or bare "en". Both halves are open enumerations, so a locale
// Alexa introduces tomorrow still parses and reserializes losslessly.
type Locale struct {
	Language Language
	Region   Region // empty when the wire string has no region part
}

// ParseLocale splits a locale string on the first hyphen. Everything after
// that hyphen is the region, embedded hyphens included; this keeps
// ParseLocale and Locale.String exact inverses for every input.
func ParseLocale(s string) Locale {
	lang, region, _ := strings.Cut(s, "-")
	return Locale{
		Language: languages.Decode(lang),
		Region:   regions.Decode(region),
	}
}

// NewLocale builds a locale from typed parts. Pass an empty region for a
// bare language locale.
func NewLocale(lang Language, region Region) Locale {
	return Locale{Language: lang, Region: region}
}

// String recomposes the wire form: the language code, then a hyphen and the
// region code when a region is present.
func (l Locale) String() string {
	if l.Region == "" {
		return string(l.Language)
	}
	return string(l.Language) + "-" + string(l.Region)
}

// Parts returns the language, the region, and whether a region is present.
func (l Locale) Parts() (Language, Region, bool) {
	return l.Language, l.Region, l.Region != ""
}

// IsEnglish reports whether the locale's language is English, whatever the
// region. Unknown languages report false.
func (l Locale) IsEnglish() bool { return l.Language == LanguageEnglish }

// IsFrench reports whether the locale's language is French.
func (l Locale) IsFrench() bool { return l.Language == LanguageFrench }

// IsSpanish reports whether the locale's language is Spanish.
func (l Locale) IsSpanish() bool { return l.Language == LanguageSpanish }

// MarshalJSON writes the locale as its single delimited wire string.
func (l Locale) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON reads a locale wire string. Any string parses; only a
// non-string JSON value is an error.
func (l *Locale) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*l = ParseLocale(s)
	return nil
}
