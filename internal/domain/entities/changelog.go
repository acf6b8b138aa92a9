package entities

import (
	"fmt"
	"strings"
)

const (
	versionHeadingPrefix = "## "
	sectionHeadingPrefix = "### "
	entryPrefix          = "- "
)

// changelogSectionOrder fixes the order sections appear in the document,
// independent of input order and of classification precedence.
var changelogSectionOrder = []CommitCategory{
	CategoryBreaking,
	CategoryFeatures,
	CategoryBugFixes,
	CategoryPerformance,
	CategoryRefactoring,
	CategoryDocumentation,
	CategoryTests,
	CategoryChores,
	CategoryOther,
}

// sectionTitles maps each category to its rendered heading.
var sectionTitles = map[CommitCategory]string{
	CategoryBreaking:      "Breaking Changes",
	CategoryFeatures:      "Features",
	CategoryBugFixes:      "Bug Fixes",
	CategoryPerformance:   "Performance",
	CategoryRefactoring:   "Refactoring",
	CategoryDocumentation: "Documentation",
	CategoryTests:         "Tests",
	CategoryChores:        "Chores",
	CategoryOther:         "Other",
}

// RenderChangelog classifies every commit, groups them by category keeping
// the commits' relative order, and renders the markdown document headed by
// the target version label.
//
// Behaviour:
//   - Categories without commits are omitted entirely.
//   - An empty commit list yields the version heading alone.
//   - The same commit sequence always renders byte-identical output.
func RenderChangelog(commits []Commit, targetVersionLabel string) string {
	buckets := make(map[CommitCategory][]Commit, len(changelogSectionOrder))
	for _, commit := range commits {
		category := Classify(commit.Subject)
		buckets[category] = append(buckets[category], commit)
	}

	var doc strings.Builder
	doc.WriteString(versionHeadingPrefix + targetVersionLabel + "\n")

	for _, category := range changelogSectionOrder {
		bucket := buckets[category]
		if len(bucket) == 0 {
			continue
		}

		doc.WriteString("\n" + sectionHeadingPrefix + sectionTitles[category] + "\n\n")
		for _, commit := range bucket {
			doc.WriteString(fmt.Sprintf(
				"%s%s (%s)\n", entryPrefix, CleanSubject(commit.Subject), commit.ShortHash(),
			))
		}
	}

	return doc.String()
}
