package taxonomy

// Language is a spoken or interpretable language a doctor can consult in.
type Language string

const (
	LanguageChinese    Language = "CHINESE"
	LanguageEnglish    Language = "ENGLISH"
	LanguageSpanish    Language = "SPANISH"
	LanguageArabic     Language = "ARABIC"
	LanguagePortuguese Language = "PORTUGUESE"
	LanguageRussian    Language = "RUSSIAN"
	LanguageJapanese   Language = "JAPANESE"
	LanguageGerman     Language = "GERMAN"
	LanguageFrench     Language = "FRENCH"
	LanguageTurkish    Language = "TURKISH"
	LanguageVietnamese Language = "VIETNAMESE"
	LanguageItalian    Language = "ITALIAN"
	LanguageMalay      Language = "MALAY"
	LanguagePolish     Language = "POLISH"
	LanguageUkrainian  Language = "UKRAINIAN"
	LanguageBurmese    Language = "BURMESE"
	LanguageUzbek      Language = "UZBEK"
	LanguageDutch      Language = "DUTCH"
	LanguageNepali     Language = "NEPALI"
	LanguageThai       Language = "THAI"
	LanguageHungarian  Language = "HUNGARIAN"
	LanguageGreek      Language = "GREEK"
	LanguageCzech      Language = "CZECH"
)

var languageOrder = []Language{
	LanguageChinese,
	LanguageEnglish,
	LanguageSpanish,
	LanguageArabic,
	LanguagePortuguese,
	LanguageRussian,
	LanguageJapanese,
	LanguageGerman,
	LanguageFrench,
	LanguageTurkish,
	LanguageVietnamese,
	LanguageItalian,
	LanguageMalay,
	LanguagePolish,
	LanguageUkrainian,
	LanguageBurmese,
	LanguageUzbek,
	LanguageDutch,
	LanguageNepali,
	LanguageThai,
	LanguageHungarian,
	LanguageGreek,
	LanguageCzech,
}

var languageLabels = map[Language]string{
	LanguageChinese:    "중국어",
	LanguageEnglish:    "영어",
	LanguageSpanish:    "스페인어",
	LanguageArabic:     "아랍어",
	LanguagePortuguese: "포르투갈어",
	LanguageRussian:    "러시아어",
	LanguageJapanese:   "일본어",
	LanguageGerman:     "독일어",
	LanguageFrench:     "프랑스어",
	LanguageTurkish:    "터키어",
	LanguageVietnamese: "베트남어",
	LanguageItalian:    "이탈리아어",
	LanguageMalay:      "말레이어",
	LanguagePolish:     "폴란드어",
	LanguageUkrainian:  "우크라이나어",
	LanguageBurmese:    "미얀마어",
	LanguageUzbek:      "우즈베크어",
	LanguageDutch:      "네덜란드어",
	LanguageNepali:     "네팔어",
	LanguageThai:       "태국어",
	LanguageHungarian:  "헝가리어",
	LanguageGreek:      "그리스어",
	LanguageCzech:      "체코어",
}

// Languages returns every language in declaration order.
func Languages() []Language {
	out := make([]Language, len(languageOrder))
	copy(out, languageOrder)
	return out
}

// Label returns the display label, or the raw code when the language is unknown.
func (l Language) Label() string {
	if label, ok := languageLabels[l]; ok {
		return label
	}
	return string(l)
}

// IsLanguage reports whether s is a known language code.
func IsLanguage(s string) bool {
	_, ok := languageLabels[Language(s)]
	return ok
}
