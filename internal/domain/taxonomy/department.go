package taxonomy

// Department is the flat medical-specialty classification. It predates the
// care-category taxonomy and survives as a general search dimension; codes
// double as display labels.
type Department string

const (
	DepartmentPlasticSurgery    Department = "성형외과"
	DepartmentDermatology       Department = "피부과"
	DepartmentOphthalmology     Department = "안과"
	DepartmentDentistry         Department = "치과"
	DepartmentOrthopedics       Department = "정형외과"
	DepartmentInternalMedicine  Department = "내과"
	DepartmentObGyn             Department = "산부인과"
	DepartmentPediatrics        Department = "소아청소년과"
	DepartmentOtolaryngology    Department = "이비인후과"
	DepartmentUrology           Department = "비뇨의학과"
	DepartmentPsychiatry        Department = "정신건강의학과"
	DepartmentCardiology        Department = "심장내과"
	DepartmentFamilyMedicine    Department = "가정의학과"
	DepartmentNeurology         Department = "신경과"
	DepartmentNeurosurgery      Department = "신경외과"
	DepartmentGeneralSurgery    Department = "외과"
	DepartmentAnesthesiology    Department = "마취통증의학과"
	DepartmentRehabilitation    Department = "재활의학과"
)

var departmentOrder = []Department{
	DepartmentPlasticSurgery,
	DepartmentDermatology,
	DepartmentOphthalmology,
	DepartmentDentistry,
	DepartmentOrthopedics,
	DepartmentInternalMedicine,
	DepartmentObGyn,
	DepartmentPediatrics,
	DepartmentOtolaryngology,
	DepartmentUrology,
	DepartmentPsychiatry,
	DepartmentCardiology,
	DepartmentFamilyMedicine,
	DepartmentNeurology,
	DepartmentNeurosurgery,
	DepartmentGeneralSurgery,
	DepartmentAnesthesiology,
	DepartmentRehabilitation,
}

// Departments returns every department in declaration order.
func Departments() []Department {
	out := make([]Department, len(departmentOrder))
	copy(out, departmentOrder)
	return out
}

// Label returns the display label. Department codes are their own labels.
func (d Department) Label() string {
	return string(d)
}

// IsDepartment reports whether s is a known department code.
func IsDepartment(s string) bool {
	for _, d := range departmentOrder {
		if string(d) == s {
			return true
		}
	}
	return false
}
