package i18n

import (
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// Translator retrieves localized messages for Outcome codes.
// data provides optional parameters to embed in the message (for example,
// "n" or "pattern"); placeholders are written as {key}.
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var dictionaries = map[string]map[string]string{
	"en": {
		"required":         "must not be empty",
		"blank":            "must not be blank",
		"not_null":         "must not be null",
		"invalid_type":     "must be a {type}",
		"length":           "must have exactly {n} chars",
		"too_short":        "must have more than {n} chars",
		"too_long":         "must have less than {n} chars",
		"contains":         "must contain \"{s}\"",
		"prefix":           "must start with {s}",
		"suffix":           "must end with {s}",
		"pattern":          "must fully match regex '{pattern}'",
		"pattern_find":     "must contain substring matching regex '{pattern}'",
		"equal":            "must equal {n}",
		"equal_to":         "must be equal to \"{v}\"",
		"too_big":          "must be lower than {n}",
		"too_small":        "must be greater than {n}",
		"at_most":          "must be at most {n}",
		"at_least":         "must be at least {n}",
		"even":             "must be even",
		"odd":              "must be odd",
		"empty_collection": "Collection must not be empty",
		"size":             "Size must be greater than {min} and less than {max}",
		"missing_element":  "Collection must contain Object \"{v}\"",
		"all_match":        "All elements must match the Predicate",
		"any_match":        "At least one element must match the Predicate",
		"none_match":       "No element should match the predicate",
		"nested":           "Validation for {target} failed with {failures} error(s):",
	},
	"ja": {
		"required":         "空にできません",
		"blank":            "空白のみにできません",
		"not_null":         "null にできません",
		"invalid_type":     "{type} である必要があります",
		"length":           "ちょうど {n} 文字である必要があります",
		"too_short":        "{n} 文字より長い必要があります",
		"too_long":         "{n} 文字より短い必要があります",
		"contains":         "\"{s}\" を含む必要があります",
		"prefix":           "{s} で始まる必要があります",
		"suffix":           "{s} で終わる必要があります",
		"pattern":          "正規表現 '{pattern}' に完全一致する必要があります",
		"pattern_find":     "正規表現 '{pattern}' に一致する部分を含む必要があります",
		"equal":            "{n} と等しい必要があります",
		"equal_to":         "\"{v}\" と等しい必要があります",
		"too_big":          "{n} より小さい必要があります",
		"too_small":        "{n} より大きい必要があります",
		"at_most":          "{n} 以下である必要があります",
		"at_least":         "{n} 以上である必要があります",
		"even":             "偶数である必要があります",
		"odd":              "奇数である必要があります",
		"empty_collection": "コレクションを空にできません",
		"size":             "要素数は {min} より大きく {max} より小さい必要があります",
		"missing_element":  "コレクションは \"{v}\" を含む必要があります",
		"all_match":        "すべての要素が条件を満たす必要があります",
		"any_match":        "少なくとも 1 つの要素が条件を満たす必要があります",
		"none_match":       "条件を満たす要素があってはなりません",
		"nested":           "{target} の検証で {failures} 件のエラーが見つかりました:",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	msg, ok := dictionaries[t.lang][code]
	if !ok {
		return code
	}
	if len(data) == 0 {
		return msg
	}
	pairs := make([]string, 0, len(data)*2)
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}

var supported = language.NewMatcher([]language.Tag{language.English, language.Japanese})

var (
	mu                sync.RWMutex
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// SetLanguage switches the built-in Translator language. Any BCP 47 tag is accepted
// ("ja", "ja-JP", "en-GB"); tags that match neither English nor Japanese fall back to English.
func SetLanguage(lang string) {
	tr := dictTranslator{lang: Resolve(lang)}
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// Resolve returns the supported base language ("en" or "ja") closest to lang.
func Resolve(lang string) string {
	tag, err := language.Parse(lang)
	if err != nil {
		return "en"
	}
	_, idx, conf := supported.Match(tag)
	if conf == language.No || idx != 1 {
		return "en"
	}
	return "ja"
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, data)
}
