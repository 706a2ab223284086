package contact

// Record is the canonical business-card record produced by every decoder.
// Name is always non-empty on a returned record; a nil optional field means
// the value was not found.
type Record struct {
	Name     string  `json:"name" yaml:"name"`
	Mobile   *string `json:"mobile,omitempty" yaml:"mobile,omitempty"`
	Email    *string `json:"email,omitempty" yaml:"email,omitempty"`
	Website  *string `json:"website,omitempty" yaml:"website,omitempty"`
	JobTitle *string `json:"job_title,omitempty" yaml:"job_title,omitempty"`
	Company  *string `json:"company,omitempty" yaml:"company,omitempty"`
	Address  *string `json:"address,omitempty" yaml:"address,omitempty"`
}

// Clone returns a deep copy of r. A nil receiver yields nil.
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}
	return &Record{
		Name:     r.Name,
		Mobile:   cloneString(r.Mobile),
		Email:    cloneString(r.Email),
		Website:  cloneString(r.Website),
		JobTitle: cloneString(r.JobTitle),
		Company:  cloneString(r.Company),
		Address:  cloneString(r.Address),
	}
}

// Value returns the dereferenced optional field or an empty string.
func Value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func ptr(s string) *string {
	return &s
}

// finish applies the mandatory-name rule shared by the structured decoders.
func (r *Record) finish() *Record {
	if r == nil || r.Name == "" {
		return nil
	}
	return r
}
