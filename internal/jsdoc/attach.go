package jsdoc

import (
	"strings"

	"github.com/coalmine/jsflow/internal/jsast"
)

// AttachedComment implements spec §6's "a comment belongs to the
// declaration whose node.range[0]-1 equals the last non-whitespace offset
// after the comment" rule: it returns the nearest preceding block comment
// such that everything between the comment's end and declStart is
// whitespace.
func AttachedComment(comments []*jsast.Comment, source string, declStart int) (*jsast.Comment, bool) {
	var best *jsast.Comment
	for _, c := range comments {
		if !c.Block {
			continue
		}
		end := c.Range()[1]
		if end > declStart {
			continue
		}
		if strings.TrimSpace(source[end:declStart]) != "" {
			continue
		}
		if best == nil || end > best.Range()[1] {
			best = c
		}
	}
	return best, best != nil
}
