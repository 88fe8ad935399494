package taxonomy

// CareArea is a leaf-level treatment area nested under exactly one
// CareCategory. Codes happen to be prefixed with their category code, but the
// category relation is kept as an explicit mapping below rather than derived
// from the string prefix, so a code typo or an underscore inside a future
// category code cannot silently break it.
type CareArea string

const (
	CareAreaDarkCircles      CareArea = "EYEAREA_DARKCIRCLES"
	CareAreaUnderEyeHollows  CareArea = "EYEAREA_UNDEREYEHOLLOWS"
	CareAreaEyeWrinkles      CareArea = "EYEAREA_WRINKLES"
	CareAreaMouthWrinkles    CareArea = "MOUTHAREA_WRINKLES"
	CareAreaNasolabialFolds  CareArea = "MOUTHAREA_NASOLABIALFOLDS"
	CareAreaPerioralWrinkles CareArea = "MOUTHAREA_PERIORALWRINKLES"
	CareAreaJawlineSagging   CareArea = "JAWLINE_SAGGING"
	CareAreaDoubleChin       CareArea = "JAWLINE_DOUBLECHIN"
	CareAreaSquareJaw        CareArea = "JAWLINE_SQUAREJAW"
)

var careAreaOrder = []CareArea{
	CareAreaDarkCircles,
	CareAreaUnderEyeHollows,
	CareAreaEyeWrinkles,
	CareAreaMouthWrinkles,
	CareAreaNasolabialFolds,
	CareAreaPerioralWrinkles,
	CareAreaJawlineSagging,
	CareAreaDoubleChin,
	CareAreaSquareJaw,
}

var careAreaLabels = map[CareArea]string{
	CareAreaDarkCircles:      "다크서클",
	CareAreaUnderEyeHollows:  "눈 밑 꺼짐",
	CareAreaEyeWrinkles:      "눈가 잔주름",
	CareAreaMouthWrinkles:    "입가 주름",
	CareAreaNasolabialFolds:  "팔자 주름",
	CareAreaPerioralWrinkles: "입 주변 잔주름",
	CareAreaJawlineSagging:   "턱선 처짐",
	CareAreaDoubleChin:       "이중턱",
	CareAreaSquareJaw:        "사각턱",
}

// categoryAreas is the authoritative category -> areas relation. Categories
// without entries simply have no leaf areas yet.
var categoryAreas = map[CareCategory][]CareArea{
	CareCategoryEyeArea:   {CareAreaDarkCircles, CareAreaUnderEyeHollows, CareAreaEyeWrinkles},
	CareCategoryMouthArea: {CareAreaMouthWrinkles, CareAreaNasolabialFolds, CareAreaPerioralWrinkles},
	CareCategoryJawline:   {CareAreaJawlineSagging, CareAreaDoubleChin, CareAreaSquareJaw},
}

// areaCategory is the reverse relation, built once at init.
var areaCategory = make(map[CareArea]CareCategory, len(careAreaOrder))

func init() {
	for category, areas := range categoryAreas {
		for _, area := range areas {
			areaCategory[area] = category
		}
	}
}

// CareAreas returns every care area in declaration order.
func CareAreas() []CareArea {
	out := make([]CareArea, len(careAreaOrder))
	copy(out, careAreaOrder)
	return out
}

// Label returns the display label, or the raw code when the area is unknown.
func (a CareArea) Label() string {
	if label, ok := careAreaLabels[a]; ok {
		return label
	}
	return string(a)
}

// Category returns the parent category of this area. The second return is
// false for unknown area codes.
func (a CareArea) Category() (CareCategory, bool) {
	category, ok := areaCategory[a]
	return category, ok
}

// IsCareArea reports whether s is a known care-area code.
func IsCareArea(s string) bool {
	_, ok := careAreaLabels[CareArea(s)]
	return ok
}

// SpecializedAreaLabel resolves an arbitrary value stored in a doctor's
// specialized areas, which may be either a category code or an area code.
func SpecializedAreaLabel(s string) string {
	if IsCareCategory(s) {
		return CareCategory(s).Label()
	}
	return CareArea(s).Label()
}

// IsSpecializedArea reports whether s is a valid specialized-area value, i.e.
// either a category code or an area code.
func IsSpecializedArea(s string) bool {
	return IsCareCategory(s) || IsCareArea(s)
}
