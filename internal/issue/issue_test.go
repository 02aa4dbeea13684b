// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package issue

import "testing"

func TestCollectionPreservesInsertionOrder(t *testing.T) {
	c := New()
	c.Add(Issue{File: "b.php", Line: 1, Identifier: "first"})
	c.Add(Issue{File: "a.php", Line: 1, Identifier: "second"})

	all := c.All()
	if all[0].Identifier != "first" || all[1].Identifier != "second" {
		t.Errorf("All() = %+v, want insertion order preserved", all)
	}
}

func TestCollectionSortedGroupsByFileThenLineThenColumn(t *testing.T) {
	c := New()
	c.Add(Issue{File: "b.php", Line: 5, Column: 1, Identifier: "b5"})
	c.Add(Issue{File: "a.php", Line: 2, Column: 3, Identifier: "a2c3"})
	c.Add(Issue{File: "a.php", Line: 2, Column: 1, Identifier: "a2c1"})
	c.Add(Issue{File: "a.php", Line: 1, Column: 1, Identifier: "a1"})

	sorted := c.Sorted()
	want := []string{"a1", "a2c1", "a2c3", "b5"}
	for i, w := range want {
		if sorted[i].Identifier != w {
			t.Errorf("Sorted()[%d] = %q, want %q", i, sorted[i].Identifier, w)
		}
	}
}

func TestCollectionSortedIsStableForTies(t *testing.T) {
	c := New()
	c.Add(Issue{File: "a.php", Line: 1, Column: 1, Identifier: "first"})
	c.Add(Issue{File: "a.php", Line: 1, Column: 1, Identifier: "second"})

	sorted := c.Sorted()
	if sorted[0].Identifier != "first" || sorted[1].Identifier != "second" {
		t.Errorf("Sorted() for ties = %+v, want stable insertion order", sorted)
	}
}

func TestCollectionDoesNotDeduplicate(t *testing.T) {
	c := New()
	dup := Issue{File: "a.php", Line: 1, Column: 1, Identifier: "dup"}
	c.Add(dup)
	c.Add(dup)

	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2 (no dedup)", c.Len())
	}
}

func TestCollectionMergePreservesOrder(t *testing.T) {
	a := New()
	a.Add(Issue{Identifier: "a1"})
	b := New()
	b.Add(Issue{Identifier: "b1"})

	a.Merge(b)
	all := a.All()
	if len(all) != 2 || all[0].Identifier != "a1" || all[1].Identifier != "b1" {
		t.Errorf("Merge() = %+v, want [a1 b1]", all)
	}
}

func TestCollectionFilter(t *testing.T) {
	c := New()
	c.Add(Issue{Level: 1, Identifier: "low"})
	c.Add(Issue{Level: 9, Identifier: "high"})

	filtered := c.Filter(func(i Issue) bool { return i.Level >= 5 })
	if filtered.Len() != 1 || filtered.All()[0].Identifier != "high" {
		t.Errorf("Filter() = %+v, want only 'high'", filtered.All())
	}
	if c.Len() != 2 {
		t.Error("Filter() must not mutate the original collection")
	}
}

func TestCollectionGroupByFile(t *testing.T) {
	c := New()
	c.Add(Issue{File: "a.php", Identifier: "a1"})
	c.Add(Issue{File: "b.php", Identifier: "b1"})
	c.Add(Issue{File: "a.php", Identifier: "a2"})

	groups := c.GroupByFile()
	if len(groups["a.php"]) != 2 || len(groups["b.php"]) != 1 {
		t.Errorf("GroupByFile() = %+v, want 2 in a.php and 1 in b.php", groups)
	}
	if groups["a.php"][0].Identifier != "a1" || groups["a.php"][1].Identifier != "a2" {
		t.Errorf("GroupByFile() should preserve relative order within a group")
	}
}
