// SPDX-License-Identifier: MIT

package response

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimple(t *testing.T) {
	res := Simple("T", "B")

	assert.Equal(t, Version1_0, res.Version)
	assert.True(t, res.Response.ShouldEndSession)

	card := res.Response.Card
	require.NotNil(t, card)
	assert.Equal(t, CardTypeSimple, card.Type)
	assert.Equal(t, "T", card.Title)
	assert.Equal(t, "B", card.Content)

	speech := res.Response.OutputSpeech
	require.NotNil(t, speech)
	assert.Equal(t, SpeechTypePlainText, speech.Type)
	assert.Equal(t, "B", speech.Text)
}

func TestSimple_OmitsUnsetFields(t *testing.T) {
	b, err := json.Marshal(Simple("T", "B"))
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(b, &doc))
	assert.NotContains(t, doc, "sessionAttributes")

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(doc["response"], &body))
	assert.NotContains(t, body, "reprompt")
	assert.NotContains(t, body, "directives")
	assert.Contains(t, body, "shouldEndSession")
}

func TestNew_MinimalSerialization(t *testing.T) {
	// A minimal response carries nothing but the version and the
	// end-of-session flag; unset optionals are omitted, never null.
	b, err := json.Marshal(New(false))
	require.NoError(t, err)
	assert.Equal(t, `{"version":"1.0","response":{"shouldEndSession":false}}`, string(b))

	b, err = json.Marshal(End())
	require.NoError(t, err)
	assert.Equal(t, `{"version":"1.0","response":{"shouldEndSession":true}}`, string(b))
}

func TestAddAttribute(t *testing.T) {
	res := New(false)
	assert.Nil(t, res.SessionAttributes, "attribute map is created lazily")

	res.AddAttribute("k", "v1")
	res.AddAttribute("k", "v2")
	res.AddAttribute("other", "x")

	assert.Len(t, res.SessionAttributes, 2)
	assert.Equal(t, "v2", res.SessionAttributes["k"])
}

func TestBuilderChain(t *testing.T) {
	res := New(false).
		WithCard(StandardCard("foo", "bar",
			NewImage().
				WithSmallImageURL("baaz.png").
				WithLargeImageURL("baazLarge.png"))).
		WithSpeech(PlainSpeech("hello")).
		WithReprompt(SSMLSpeech("<speak>still there?</speak>"))
	res.AddAttribute("attr", "value")

	card := res.Response.Card
	require.NotNil(t, card)
	assert.Equal(t, CardTypeStandard, card.Type)
	assert.Equal(t, "foo", card.Title)
	assert.Equal(t, "bar", card.Text)
	assert.Empty(t, card.Content, "standard cards use text, not content")
	require.NotNil(t, card.Image)
	assert.Equal(t, "baaz.png", card.Image.SmallImageURL)
	assert.Equal(t, "baazLarge.png", card.Image.LargeImageURL)

	require.NotNil(t, res.Response.Reprompt)
	assert.Equal(t, SpeechTypeSSML, res.Response.Reprompt.OutputSpeech.Type)

	assert.Equal(t, "value", res.SessionAttributes["attr"])
}

func TestCardConstructors(t *testing.T) {
	link := LinkAccountCard()
	assert.Equal(t, CardTypeLinkAccount, link.Type)
	assert.Empty(t, link.Title)

	perms := AskForPermissionsCard([]string{"alexa::devices:all:address:full:read"})
	assert.Equal(t, CardTypeAskForPermissions, perms.Type)
	assert.Equal(t, []string{"alexa::devices:all:address:full:read"}, perms.Permissions)

	b, err := json.Marshal(perms)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"AskForPermissionsConsent","permissions":["alexa::devices:all:address:full:read"]}`, string(b))
}

func TestSpeechSerialization(t *testing.T) {
	b, err := json.Marshal(PlainSpeech("hi"))
	require.NoError(t, err)
	assert.Equal(t, `{"type":"PlainText","text":"hi"}`, string(b))

	b, err = json.Marshal(SSMLSpeech("<speak>hi</speak>"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"SSML","ssml":"<speak>hi</speak>"}`, string(b))
}

func TestVersionIsOpen(t *testing.T) {
	assert.Equal(t, "1.0", Version1_0.String())
	assert.True(t, Version1_0.Known())

	var env ResponseEnvelope
	require.NoError(t, json.Unmarshal([]byte(`{"version":"2.0-beta","response":{"shouldEndSession":true}}`), &env))
	assert.Equal(t, Version("2.0-beta"), env.Version)
	assert.False(t, env.Version.Known())
}
