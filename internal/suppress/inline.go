// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package suppress

import (
	"regexp"
	"strings"

	"github.com/borisyanez/rustor-sub001/internal/issue"
)

// suppressComment matches an "@suppress identifier" annotation inside
// a line comment, with the identifier optional: a bare "@suppress"
// suppresses every issue on the annotated line.
var suppressComment = regexp.MustCompile(`@suppress(?:\s+([A-Za-z0-9_.]+))?`)

// FilterInline drops every issue whose line (or the line above it, by
// convention) carries a matching "@suppress" comment. sources maps
// each issue's File to its full text; an issue whose file is absent
// from sources is never suppressed inline.
func FilterInline(issues *issue.Collection, sources map[string]string) *issue.Collection {
	lineCache := make(map[string][]string, len(sources))
	return issues.Filter(func(iss issue.Issue) bool {
		lines, ok := lineCache[iss.File]
		if !ok {
			source, present := sources[iss.File]
			if !present {
				return true
			}
			lines = strings.Split(source, "\n")
			lineCache[iss.File] = lines
		}
		if lineSuppresses(lines, iss.Line, iss.Identifier) {
			return false
		}
		if lineSuppresses(lines, iss.Line-1, iss.Identifier) {
			return false
		}
		return true
	})
}

// lineSuppresses reports whether the 1-indexed line in lines carries
// an "@suppress" annotation that covers identifier.
func lineSuppresses(lines []string, line int, identifier string) bool {
	if line < 1 || line > len(lines) {
		return false
	}
	m := suppressComment.FindStringSubmatch(lines[line-1])
	if m == nil {
		return false
	}
	annotated := m[1]
	return annotated == "" || annotated == identifier
}
