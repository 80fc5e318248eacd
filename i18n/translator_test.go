package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	t.Cleanup(func() { SetLanguage("en") })

	// default is en
	assert.Equal(t, "must not be empty", T("required", nil))
	assert.Equal(t, "must have more than 3 chars", T("too_short", map[string]string{"n": "3"}))

	SetLanguage("ja-JP")
	assert.Equal(t, "空にできません", T("required", nil))
	assert.Equal(t, "3 文字より長い必要があります", T("too_short", map[string]string{"n": "3"}))
}

func TestTranslator_UnknownCodeReturnsCode(t *testing.T) {
	assert.Equal(t, "no_such_code", T("no_such_code", nil))
}

func TestResolve(t *testing.T) {
	assert.Equal(t, "en", Resolve("en"))
	assert.Equal(t, "en", Resolve("en-GB"))
	assert.Equal(t, "ja", Resolve("ja"))
	assert.Equal(t, "en", Resolve("fr"))
	assert.Equal(t, "en", Resolve("not a tag!"))
}

type upper struct{}

func (upper) Message(code string, _ map[string]string) string { return "X:" + code }

func TestSetTranslator(t *testing.T) {
	t.Cleanup(func() { SetTranslator(nil) })

	SetTranslator(upper{})
	assert.Equal(t, "X:required", T("required", nil))

	SetTranslator(nil)
	assert.Equal(t, "must not be empty", T("required", nil))
}
