package domain

// Staff is a single staff-directory record.
type Staff struct {
	ID          int64
	FirstName   string
	LastName    string
	Gender      string
	DOB         string
	Email       string
	JobTitle    string
	Department  string
	DutyStation string
}

// StaffPatch carries optional values for each text field of a Staff record.
// A nil field is left untouched; a pointer to "" clears the field.
type StaffPatch struct {
	FirstName   *string
	LastName    *string
	Gender      *string
	DOB         *string
	Email       *string
	JobTitle    *string
	Department  *string
	DutyStation *string
}

// IsEmpty reports whether the patch supplies no fields.
func (p StaffPatch) IsEmpty() bool {
	return p.FirstName == nil &&
		p.LastName == nil &&
		p.Gender == nil &&
		p.DOB == nil &&
		p.Email == nil &&
		p.JobTitle == nil &&
		p.Department == nil &&
		p.DutyStation == nil
}

// Apply copies every supplied field of the patch onto staff.
func (p StaffPatch) Apply(staff *Staff) {
	setIfPresent(&staff.FirstName, p.FirstName)
	setIfPresent(&staff.LastName, p.LastName)
	setIfPresent(&staff.Gender, p.Gender)
	setIfPresent(&staff.DOB, p.DOB)
	setIfPresent(&staff.Email, p.Email)
	setIfPresent(&staff.JobTitle, p.JobTitle)
	setIfPresent(&staff.Department, p.Department)
	setIfPresent(&staff.DutyStation, p.DutyStation)
}

func setIfPresent(dst *string, val *string) {
	if val != nil {
		*dst = *val
	}
}
