package contact

// fieldRule assigns the value of a tagged field to a record. Rules are
// matched on the exact, case-sensitive key.
type fieldRule struct {
	key   string
	apply func(r *Record, value string)
}

// ruleSet is an ordered list of field rules. The first rule with a matching
// key is applied; unknown keys are ignored.
type ruleSet []fieldRule

// apply dispatches key to its rule and reports whether one matched.
func (rs ruleSet) apply(r *Record, key, value string) bool {
	for _, rule := range rs {
		if rule.key == key {
			rule.apply(r, value)
			return true
		}
	}
	return false
}

// keys lists the keys handled by the set, in dispatch order.
func (rs ruleSet) keys() []string {
	out := make([]string, 0, len(rs))
	for _, rule := range rs {
		out = append(out, rule.key)
	}
	return out
}

func setName(r *Record, v string)     { r.Name = v }
func setMobile(r *Record, v string)   { r.Mobile = ptr(v) }
func setEmail(r *Record, v string)    { r.Email = ptr(v) }
func setWebsite(r *Record, v string)  { r.Website = ptr(v) }
func setJobTitle(r *Record, v string) { r.JobTitle = ptr(v) }
func setCompany(r *Record, v string)  { r.Company = ptr(v) }
func setAddress(r *Record, v string)  { r.Address = ptr(v) }
