package node

import (
	"regexp"
	"strings"
)

// DefaultTagColor is used for tags without an explicit <color> suffix.
const DefaultTagColor = "blue"

// MaxDisplayTags is how many tags a card shows. The tag string may hold more.
const MaxDisplayTags = 3

// Tag is a single parsed label.
type Tag struct {
	Label string `json:"label"`
	// Color is passed through uninterpreted; renderers validate it.
	Color string `json:"color"`
}

var tagColorPattern = regexp.MustCompile(`^(.+?)<([^>]+)>$`)

// ParseTags splits a "label<color>;label;..." string into at most
// MaxDisplayTags tags. Blank segments are skipped before the cap applies.
func ParseTags(raw string) []Tag {
	var tags []Tag
	for _, segment := range strings.Split(raw, ";") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		tags = append(tags, parseTag(segment))
		if len(tags) == MaxDisplayTags {
			break
		}
	}
	return tags
}

func parseTag(segment string) Tag {
	if m := tagColorPattern.FindStringSubmatch(segment); m != nil {
		return Tag{Label: m[1], Color: m[2]}
	}
	return Tag{Label: segment, Color: DefaultTagColor}
}
