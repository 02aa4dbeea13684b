// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pattern

import "github.com/borisyanez/rustor-sub001/internal/span"

var span0 = span.Span{}

func sp(start, end int) span.Span { return span.Span{File: 0, Start: start, End: end} }

func newFiles(source string) *span.Set {
	files := span.NewSet()
	files.Add("test.php", source)
	return files
}
