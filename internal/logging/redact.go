package logging

import "strings"

// secretKeyPatterns contains substrings that indicate an attribute key likely
// holds sensitive data. Keys are matched case-insensitively.
var secretKeyPatterns = []string{
	"TOKEN",
	"KEY",
	"SECRET",
	"PASSWORD",
	"AUTH",
	"CREDENTIAL",
	"PRIVATE",
}

// tokenPrefixes contains known API key prefixes that mark a value as
// sensitive regardless of its key.
var tokenPrefixes = []string{
	"sk-ant-", // Anthropic keys
	"sk-",     // OpenAI-style keys
	"AIza",    // Google API keys (Gemini)
	"ghp_",    // GitHub personal access token
	"gho_",    // GitHub OAuth token
	"AKIA",    // AWS access key prefix
}

// MaskValue masks a potentially sensitive string value.
// Values with 4 or fewer characters are fully masked as "********".
// Longer values show the last 4 characters: "****xxxx".
func MaskValue(value string) string {
	if len(value) <= 4 {
		return "********"
	}
	return "****" + value[len(value)-4:]
}

// ShouldMask returns true if the key name suggests it contains sensitive data.
func ShouldMask(key string) bool {
	upper := strings.ToUpper(key)
	for _, pattern := range secretKeyPatterns {
		if strings.Contains(upper, pattern) {
			return true
		}
	}
	return false
}

// ContainsTokenPrefix returns true if the value starts with a known token prefix.
func ContainsTokenPrefix(value string) bool {
	for _, prefix := range tokenPrefixes {
		if strings.HasPrefix(value, prefix) {
			return true
		}
	}
	return false
}
