package taskpaper

import "regexp"

// Tag is one @name or @name(value) annotation. HasValue distinguishes
// "@tag()" (empty value) from "@tag" (no value at all).
type Tag struct {
	Name     string
	Value    string
	HasValue bool
}

// A tag is "@" preceded by whitespace or start-of-string, a \w+ name, and an
// optional parenthesized value running to the first ")". RE2 has no
// lookahead, so the "followed by whitespace or end" rule is enforced
// manually in ParseTags.
var tagRe = regexp.MustCompile(`(?:^|\s)@(\w+)(?:\(([^)]*)\))?`)

// ParseTags extracts tags from an annotation string, left to right.
// Duplicates are preserved in order. Candidates not followed by whitespace
// or end-of-string (e.g. "@due(" with an unclosed value) are not tags.
func ParseTags(annotation string) []Tag {
	var tags []Tag
	for _, m := range tagRe.FindAllStringSubmatchIndex(annotation, -1) {
		end := m[1]
		if end < len(annotation) && annotation[end] != ' ' && annotation[end] != '\t' {
			continue
		}
		tag := Tag{Name: annotation[m[2]:m[3]]}
		if m[4] >= 0 {
			tag.Value = annotation[m[4]:m[5]]
			tag.HasValue = true
		}
		tags = append(tags, tag)
	}
	return tags
}
