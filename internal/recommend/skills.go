package recommend

import "strings"

// MatchedSkills returns the skill tokens from a comma-separated skills
// string that appear verbatim (case-insensitive substring) in the user
// text. An explainability signal independent of the semantic score.
func MatchedSkills(skills, userText string) []string {
	lowerText := strings.ToLower(userText)
	var matched []string
	for _, token := range strings.Split(skills, ",") {
		skill := strings.ToLower(strings.TrimSpace(token))
		if skill == "" {
			continue
		}
		if strings.Contains(lowerText, skill) {
			matched = append(matched, skill)
		}
	}
	return matched
}
