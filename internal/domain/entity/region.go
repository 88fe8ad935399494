package entity

import "strings"

// Korean administrative suffixes stripped when deriving a canonical region
// token from a postal-lookup province/city name. Longer suffixes first so
// 특별자치도 is not half-stripped by 도.
var regionSuffixes = []string{
	"특별자치시",
	"특별자치도",
	"특별시",
	"광역시",
	"도",
}

// Romanized equivalents, e.g. "Seoul-si" or "Gangwon-do".
var romanizedRegionSuffixes = []string{
	"-si",
	"-do",
}

// NormalizeRegion derives the canonical short region token from an
// administrative province/city name, e.g. "서울특별시" -> "서울" or
// "Seoul-si" -> "Seoul". Already-canonical values pass through unchanged.
func NormalizeRegion(name string) string {
	region := strings.TrimSpace(name)

	for _, suffix := range regionSuffixes {
		if strings.HasSuffix(region, suffix) && len(region) > len(suffix) {
			return strings.TrimSuffix(region, suffix)
		}
	}
	for _, suffix := range romanizedRegionSuffixes {
		if strings.HasSuffix(region, suffix) && len(region) > len(suffix) {
			return strings.TrimSuffix(region, suffix)
		}
	}

	return region
}

// ComposeAddress builds a hospital address from the structured postal-lookup
// parts: base road address, optional unit detail, and optional parenthetical
// extra info.
func ComposeAddress(road, detail, extra string) string {
	address := strings.TrimSpace(road)
	if detail = strings.TrimSpace(detail); detail != "" {
		address += " " + detail
	}
	if extra = strings.TrimSpace(extra); extra != "" {
		address += " (" + extra + ")"
	}
	return address
}
