package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchedSkills(t *testing.T) {
	matched := MatchedSkills("Python, SQL, Excel", "I know python and excel")
	assert.Equal(t, []string{"python", "excel"}, matched)
}

func TestMatchedSkillsCaseInsensitive(t *testing.T) {
	matched := MatchedSkills("PYTHON, sql", "Python and SQL are my tools")
	assert.Equal(t, []string{"python", "sql"}, matched)
}

func TestMatchedSkillsNoOverlap(t *testing.T) {
	assert.Empty(t, MatchedSkills("Go, Rust", "I paint watercolors"))
}

func TestMatchedSkillsIgnoresEmptyTokens(t *testing.T) {
	matched := MatchedSkills("Python,, , SQL", "python sql")
	assert.Equal(t, []string{"python", "sql"}, matched)
}

func TestMatchedSkillsSubstringSemantics(t *testing.T) {
	// Substring containment, not word match: "java" matches "javascript".
	matched := MatchedSkills("Java", "I write javascript")
	assert.Equal(t, []string{"java"}, matched)
}
