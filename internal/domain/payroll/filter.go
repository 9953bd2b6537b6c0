package payroll

import "strings"

// AllDepartments disables the department predicate.
const AllDepartments = "ALL"

type Filter struct {
	Search     string
	Department string
}

// Matches ANDs a case-insensitive substring match on name or email with an
// exact department match.
func (f Filter) Matches(e *PayEntity) bool {
	if term := strings.ToLower(strings.TrimSpace(f.Search)); term != "" {
		if !strings.Contains(strings.ToLower(e.Name), term) &&
			!strings.Contains(strings.ToLower(e.Email), term) {
			return false
		}
	}
	if f.Department != "" && f.Department != AllDepartments && e.DepartmentName != f.Department {
		return false
	}
	return true
}

func FilterEntities(entities []*PayEntity, f Filter) []*PayEntity {
	out := make([]*PayEntity, 0, len(entities))
	for _, e := range entities {
		if f.Matches(e) {
			out = append(out, e)
		}
	}
	return out
}
