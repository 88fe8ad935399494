package taxonomy

// CareCategory is a top-level treatment-area classification. A doctor's
// specialized areas may reference a category directly, meaning every care
// area under it.
type CareCategory string

const (
	CareCategoryEyeArea           CareCategory = "EYEAREA"
	CareCategoryMouthArea         CareCategory = "MOUTHAREA"
	CareCategoryJawline           CareCategory = "JAWLINE"
	CareCategoryVolumeStructure   CareCategory = "VOLUMESTRUCTURE"
	CareCategorySkinElasticity    CareCategory = "SKINELASTICITY"
	CareCategorySkinTone          CareCategory = "SKINTONE"
	CareCategoryAcneScar          CareCategory = "ACNESCAR"
	CareCategoryPoreTexture       CareCategory = "PORETEXTURE"
	CareCategorySkinSensitivity   CareCategory = "SKINSENSITIVITY"
	CareCategoryHairScalp         CareCategory = "HAIRSCALP"
	CareCategoryBodyUpper         CareCategory = "BODYUPPER"
	CareCategoryBodyLower         CareCategory = "BODYLOWER"
	CareCategoryBodyElasticity    CareCategory = "BODYELASTICITY"
	CareCategoryBodyShape         CareCategory = "BODYSHAPE"
	CareCategoryOverallImpression CareCategory = "OVERALLIMPRESSION"
)

// Declaration order is the UI listing order and must stay stable.
var careCategoryOrder = []CareCategory{
	CareCategoryEyeArea,
	CareCategoryMouthArea,
	CareCategoryJawline,
	CareCategoryVolumeStructure,
	CareCategorySkinElasticity,
	CareCategorySkinTone,
	CareCategoryAcneScar,
	CareCategoryPoreTexture,
	CareCategorySkinSensitivity,
	CareCategoryHairScalp,
	CareCategoryBodyUpper,
	CareCategoryBodyLower,
	CareCategoryBodyElasticity,
	CareCategoryBodyShape,
	CareCategoryOverallImpression,
}

var careCategoryLabels = map[CareCategory]string{
	CareCategoryEyeArea:           "눈 주변",
	CareCategoryMouthArea:         "입가 · 표정",
	CareCategoryJawline:           "턱선 · 하안면",
	CareCategoryVolumeStructure:   "볼륨 · 구조",
	CareCategorySkinElasticity:    "피부 탄력 · 결",
	CareCategorySkinTone:          "피부 톤 · 인상",
	CareCategoryAcneScar:          "여드름 흔적",
	CareCategoryPoreTexture:       "모공 · 결",
	CareCategorySkinSensitivity:   "피부 민감 · 회복",
	CareCategoryHairScalp:         "모발 · 두피",
	CareCategoryBodyUpper:         "바디 상체 · 중심",
	CareCategoryBodyLower:         "바디 힙 · 하체",
	CareCategoryBodyElasticity:    "바디 탄력 · 처짐",
	CareCategoryBodyShape:         "바디 체형 · 비율",
	CareCategoryOverallImpression: "전체 인상",
}

// CareCategories returns every category in declaration order.
func CareCategories() []CareCategory {
	out := make([]CareCategory, len(careCategoryOrder))
	copy(out, careCategoryOrder)
	return out
}

// Label returns the display label, or the raw code when the category is unknown.
func (c CareCategory) Label() string {
	if label, ok := careCategoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// Areas returns the care areas under this category in declaration order.
func (c CareCategory) Areas() []CareArea {
	areas := categoryAreas[c]
	out := make([]CareArea, len(areas))
	copy(out, areas)
	return out
}

// IsCareCategory reports whether s is a known category code. Callers use this
// to tell a category-level selection apart from an area-level one before
// rendering its label.
func IsCareCategory(s string) bool {
	_, ok := careCategoryLabels[CareCategory(s)]
	return ok
}
