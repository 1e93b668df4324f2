package convert

import "regexp"

var nameSuffix = regexp.MustCompile(`(?i)[-_](command|skill|agent|plugin)$`)

// NormalizeName strips one trailing -command, -skill, -agent or -plugin
// token (or its _ form), case-insensitively.
//
//	NormalizeName("reviewer-agent") // "reviewer"
//	NormalizeName("Deploy_SKILL")   // "Deploy"
func NormalizeName(name string) string {
	return nameSuffix.ReplaceAllString(name, "")
}
