package nlpearl

import "strings"

// NormalizePhoneNumber prefixes a phone number with "+" when it lacks one.
// Numbers that already start with "+" are returned unchanged.
func NormalizePhoneNumber(phone string) string {
	if strings.HasPrefix(phone, "+") {
		return phone
	}
	return "+" + phone
}
