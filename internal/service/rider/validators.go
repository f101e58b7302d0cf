package rider

import "strings"

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}

func isValidDistrict(district string) bool {
	return strings.TrimSpace(district) != ""
}

func isDecision(status string) bool {
	switch status {
	case "approved", "rejected":
		return true
	default:
		return false
	}
}
