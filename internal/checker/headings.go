package checker

import (
	"fmt"
	"sort"

	"github.com/olocus/seolint/internal/config"
	"github.com/olocus/seolint/internal/model"
)

// HeadingCheck validates the heading structure of the page.
//
// It reports a missing H1 independently of StructureCheck so heading
// problems are visible in their own right, owns the multiple-H1 warning,
// and warns when the set of heading levels in use skips a level (for
// example H2 and H4 present with no H3).
type HeadingCheck struct{}

// Name returns the check name.
func (c *HeadingCheck) Name() string {
	return "headings"
}

// Check inspects the document's heading structure.
func (c *HeadingCheck) Check(doc *Document, _ *config.Rules, rep *model.Report) {
	switch h1s := doc.H1Count(); {
	case h1s == 0:
		rep.AddError("no H1 heading found")
	case h1s > 1:
		rep.AddWarning(fmt.Sprintf("multiple H1 tags found (%d)", h1s))
	default:
		rep.AddPass("exactly one H1 heading")
	}

	levels := presentLevels(doc.HeadingLevels)
	skipped := false
	for i := 1; i < len(levels); i++ {
		if levels[i]-levels[i-1] > 1 {
			rep.AddWarning(fmt.Sprintf("heading levels skip from H%d to H%d", levels[i-1], levels[i]))
			skipped = true
		}
	}
	if !skipped && len(levels) > 1 {
		rep.AddPass("heading hierarchy is sequential")
	}
}

// presentLevels returns the distinct heading levels in use, ascending.
func presentLevels(headings []int) []int {
	seen := make(map[int]bool)
	for _, level := range headings {
		seen[level] = true
	}

	levels := make([]int, 0, len(seen))
	for level := range seen {
		levels = append(levels, level)
	}
	sort.Ints(levels)
	return levels
}
