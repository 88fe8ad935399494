package entity

import "doctor-directory/internal/domain/taxonomy"

// DoctorSearchFilters narrows a doctor search. All fields are optional; empty
// means "no constraint on this dimension".
//
// Region is the one dimension that cannot be pushed into the primary query:
// it lives on the joined hospital row, so repositories apply every
// server-pushable predicate first and then ApplyClientFilters on the fetched
// set. New non-native-column filters belong in ApplyClientFilters as well.
type DoctorSearchFilters struct {
	Region          string
	SpecializedArea string
	Query           string
}

// ServerFilters returns the subset of filters the repository pushes into SQL.
func (f DoctorSearchFilters) ServerFilters() DoctorSearchFilters {
	return DoctorSearchFilters{SpecializedArea: f.SpecializedArea, Query: f.Query}
}

// SpecializedAreaCodes expands the specialized-area filter into the set of
// stored codes it matches: a care-area code matches itself, a care-category
// code matches itself plus every area under it.
func (f DoctorSearchFilters) SpecializedAreaCodes() []string {
	if f.SpecializedArea == "" {
		return nil
	}
	codes := []string{f.SpecializedArea}
	if taxonomy.IsCareCategory(f.SpecializedArea) {
		for _, area := range taxonomy.CareCategory(f.SpecializedArea).Areas() {
			codes = append(codes, string(area))
		}
	}
	return codes
}

// ApplyClientFilters applies the non-pushable predicates to an
// already-fetched doctor set. Today that is region only, matched against the
// joined hospital's region.
func ApplyClientFilters(doctors []Doctor, filters DoctorSearchFilters) []Doctor {
	if filters.Region == "" {
		return doctors
	}

	out := make([]Doctor, 0, len(doctors))
	for _, doctor := range doctors {
		if doctor.Hospital != nil && doctor.Hospital.Region == filters.Region {
			out = append(out, doctor)
		}
	}
	return out
}
