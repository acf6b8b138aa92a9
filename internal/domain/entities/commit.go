package entities

import "strings"

const shortHashLen = 7

// Commit is one source control commit as surfaced by the gateway: an opaque
// hash and the first line of its message.
type Commit struct {
	Hash    string
	Subject string
}

// ShortHash returns the first seven characters of the hash, or the whole hash
// when it is shorter than that.
func (c Commit) ShortHash() string {
	if len(c.Hash) <= shortHashLen {
		return c.Hash
	}
	return c.Hash[:shortHashLen]
}

// CommitCategory is the changelog bucket a commit belongs to. Every commit
// has exactly one category, derived from its subject.
type CommitCategory string

// All categories a commit can classify into.
const (
	CategoryBreaking      CommitCategory = "breaking"
	CategoryFeatures      CommitCategory = "features"
	CategoryBugFixes      CommitCategory = "bugFixes"
	CategoryPerformance   CommitCategory = "performance"
	CategoryRefactoring   CommitCategory = "refactoring"
	CategoryDocumentation CommitCategory = "documentation"
	CategoryTests         CommitCategory = "tests"
	CategoryChores        CommitCategory = "chores"
	CategoryOther         CommitCategory = "other"
)

// classificationRule pairs a subject predicate with the category it selects.
type classificationRule struct {
	matches  func(lowerSubject string) bool
	category CommitCategory
}

// classificationRules is evaluated top to bottom, first match wins. Breaking
// detection outranks every prefix rule.
var classificationRules = []classificationRule{
	{matchesBreaking, CategoryBreaking},
	{hasAnyPrefix("feat:", "feature:"), CategoryFeatures},
	{hasAnyPrefix("fix:"), CategoryBugFixes},
	{hasAnyPrefix("docs:"), CategoryDocumentation},
	{hasAnyPrefix("perf:"), CategoryPerformance},
	{hasAnyPrefix("refactor:"), CategoryRefactoring},
	{hasAnyPrefix("test:"), CategoryTests},
	{hasAnyPrefix("chore:", "build:", "ci:"), CategoryChores},
}

func matchesBreaking(lowerSubject string) bool {
	return strings.Contains(lowerSubject, "breaking") || strings.HasPrefix(lowerSubject, "!:")
}

func hasAnyPrefix(prefixes ...string) func(string) bool {
	return func(lowerSubject string) bool {
		for _, prefix := range prefixes {
			if strings.HasPrefix(lowerSubject, prefix) {
				return true
			}
		}
		return false
	}
}

// Classify maps a commit subject to its changelog category. Matching is
// case-insensitive; subjects matching no rule fall through to CategoryOther.
func Classify(subject string) CommitCategory {
	lower := strings.ToLower(subject)
	for _, rule := range classificationRules {
		if rule.matches(lower) {
			return rule.category
		}
	}
	return CategoryOther
}

// cleanableTokens are the prefixes CleanSubject strips. The list is cosmetic
// and narrower than classification: "feature:" classifies as a feature but
// stays in the rendered entry.
var cleanableTokens = []string{
	"feat:", "fix:", "docs:", "perf:", "refactor:", "test:", "chore:", "build:", "ci:",
}

// CleanSubject strips one recognized prefix token from the front of the
// subject and trims the remainder. Subjects without a recognized prefix are
// returned unchanged.
func CleanSubject(subject string) string {
	lower := strings.ToLower(subject)
	for _, token := range cleanableTokens {
		if strings.HasPrefix(lower, token) {
			return strings.TrimSpace(subject[len(token):])
		}
	}
	return subject
}
