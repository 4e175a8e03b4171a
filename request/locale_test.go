// SPDX-License-Identifier: MIT

package request

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocale(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		language Language
		region   Region
		hasPart  bool
	}{
		{"language and region", "en-US", LanguageEnglish, RegionUnitedStates, true},
		{"bare language", "en", LanguageEnglish, "", false},
		{"french canada", "fr-CA", LanguageFrench, RegionCanada, true},
		{"unknown language known region", "xx-US", Language("xx"), RegionUnitedStates, true},
		{"unknown both", "xx-ZZ", Language("xx"), Region("ZZ"), true},
		{"hindi quirk region", "hi-HI", LanguageHindi, Region("HI"), true},
		{"empty string", "", Language(""), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc := ParseLocale(tt.in)
			assert.Equal(t, tt.language, loc.Language)
			assert.Equal(t, tt.region, loc.Region)

			lang, region, ok := loc.Parts()
			assert.Equal(t, tt.language, lang)
			assert.Equal(t, tt.region, region)
			assert.Equal(t, tt.hasPart, ok)
		})
	}
}

func TestLocale_RoundTrip(t *testing.T) {
	// format(parse(s)) == s for any language[-region] string, including
	// unknown segments. Splitting on the first hyphen keeps even the
	// malformed multi-hyphen form lossless: the extra hyphen stays inside
	// the region segment.
	inputs := []string{
		"en", "en-US", "en-GB", "fr-CA", "es-MX", "de-DE", "pt-BR",
		"xx", "xx-ZZ", "zz-ZZ-Traditional",
	}
	for _, s := range inputs {
		assert.Equal(t, s, ParseLocale(s).String(), "round trip of %q", s)
	}
}

func TestLocale_LanguagePredicates(t *testing.T) {
	tests := []struct {
		in      string
		english bool
		french  bool
		spanish bool
	}{
		{"en-US", true, false, false},
		{"en-AU", true, false, false},
		{"fr-CA", false, true, false},
		{"fr-FR", false, true, false},
		{"es-MX", false, false, true},
		{"es-ES", false, false, true},
		{"es-US", false, false, true},
		{"ja-JP", false, false, false},
		{"xx-ZZ", false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			loc := ParseLocale(tt.in)
			assert.Equal(t, tt.english, loc.IsEnglish())
			assert.Equal(t, tt.french, loc.IsFrench())
			assert.Equal(t, tt.spanish, loc.IsSpanish())
		})
	}
}

func TestNewLocale(t *testing.T) {
	loc := NewLocale(LanguageEnglish, RegionAustralia)
	assert.Equal(t, "en-AU", loc.String())

	bare := NewLocale(LanguageGerman, "")
	assert.Equal(t, "de", bare.String())
	_, _, ok := bare.Parts()
	assert.False(t, ok)
}

func TestLocale_JSON(t *testing.T) {
	b, err := json.Marshal(NewLocale(LanguageSpanish, RegionMexico))
	require.NoError(t, err)
	assert.Equal(t, `"es-MX"`, string(b))

	var loc Locale
	require.NoError(t, json.Unmarshal([]byte(`"fr-CA"`), &loc))
	assert.Equal(t, LanguageFrench, loc.Language)
	assert.Equal(t, RegionCanada, loc.Region)

	// Only a non-string JSON value is a decode error.
	assert.Error(t, json.Unmarshal([]byte(`17`), &loc))
	require.NoError(t, json.Unmarshal([]byte(`"anything at all"`), &loc))
	assert.Equal(t, "anything at all", loc.String())
}
