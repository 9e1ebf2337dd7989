package model

import "strconv"

// UserProfile holds the citizen details forwarded to the remote advisor
// for personalization. The core never interprets these fields; they are
// flattened into a neutral key/value map and passed through verbatim.
type UserProfile struct {
	FullName         string `json:"fullName,omitempty" yaml:"full_name,omitempty"`
	Age              int    `json:"age,omitempty" yaml:"age,omitempty"`
	Gender           string `json:"gender,omitempty" yaml:"gender,omitempty"`
	Occupation       string `json:"occupation,omitempty" yaml:"occupation,omitempty"`
	Income           string `json:"income,omitempty" yaml:"income,omitempty"`
	Category         string `json:"category,omitempty" yaml:"category,omitempty"` // General, SC, ST, OBC
	State            string `json:"state,omitempty" yaml:"state,omitempty"`
	District         string `json:"district,omitempty" yaml:"district,omitempty"`
	Education        string `json:"education,omitempty" yaml:"education,omitempty"`
	EmploymentStatus string `json:"employmentStatus,omitempty" yaml:"employment_status,omitempty"`
	Disability       bool   `json:"disability,omitempty" yaml:"disability,omitempty"`
}

// Context flattens the profile into the string map handed to the remote
// advisor. Empty fields are omitted so the prompt stays compact.
func (p UserProfile) Context() map[string]string {
	ctx := make(map[string]string)
	put := func(key, val string) {
		if val != "" {
			ctx[key] = val
		}
	}
	put("fullName", p.FullName)
	if p.Age > 0 {
		ctx["age"] = strconv.Itoa(p.Age)
	}
	put("gender", p.Gender)
	put("occupation", p.Occupation)
	put("income", p.Income)
	put("category", p.Category)
	put("state", p.State)
	put("district", p.District)
	put("education", p.Education)
	put("employmentStatus", p.EmploymentStatus)
	if p.Disability {
		ctx["disability"] = "true"
	}
	return ctx
}

// IsEmpty reports whether no profile field has been filled in
func (p UserProfile) IsEmpty() bool {
	return len(p.Context()) == 0
}
