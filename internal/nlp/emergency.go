package nlp

import "strings"

// emergencyKeywords is fixed and non-configurable. Matching is substring
// based, so false negatives are expected; this gate favors simplicity over
// recall and is not a scored signal.
var emergencyKeywords = []string{
	"kill myself", "suicide", "end my life", "hurt myself", "panic attack",
	"cannot breathe", "die", "hanging", "overdose", "cutting", "harm",
}

// SupportContact is one entry of the static helpline list returned with the
// safety response.
type SupportContact struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

const EmergencyMessage = "It sounds like you are going through a very difficult time. Please reach out to someone you trust or a professional. Help is available."

// EmergencyContacts is returned verbatim with every safety response.
var EmergencyContacts = []SupportContact{
	{Name: "Aasra (India)", Contact: "9820466726"},
	{Name: "Vandrevala Foundation", Contact: "9999666555"},
	{Name: "SNEHA", Contact: "044-24640050"},
}

// DetectEmergency reports whether the text contains crisis language. Callers
// must short-circuit all further analysis when it returns true: no classifier
// or generation call is made for such input.
func DetectEmergency(text string) bool {
	textLower := strings.ToLower(text)
	return containsAny(textLower, emergencyKeywords)
}
