package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "key" or "expected").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "empty_path":
			return "キーパスが空です"
		case "missing_key":
			return "キーが見つかりません"
		case "invalid_value":
			return "値を変換できません"
		case "invalid_array_element":
			return "配列要素が不正です"
		case "invalid_dictionary_key_type":
			return "辞書キーの型が不正です"
		case "invalid_dictionary_key":
			return "辞書キーが不正です"
		case "invalid_dictionary_value":
			return "辞書の値が不正です"
		case "invalid_element_type":
			return "コレクション要素の型が不正です"
		case "invalid_input":
			return "入力データが不正です"
		case "custom_decode_failed":
			return "カスタムデコードが失敗しました"
		}
	default: // "en"
		switch code {
		case "empty_path":
			return "empty key path"
		case "missing_key":
			return "required key missing"
		case "invalid_value":
			return "cannot convert value"
		case "invalid_array_element":
			return "invalid array element"
		case "invalid_dictionary_key_type":
			return "invalid dictionary key type"
		case "invalid_dictionary_key":
			return "invalid dictionary key"
		case "invalid_dictionary_value":
			return "invalid dictionary value"
		case "invalid_element_type":
			return "invalid collection element type"
		case "invalid_input":
			return "invalid input data"
		case "custom_decode_failed":
			return "custom decode failed"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
