package checker

import (
	"github.com/olocus/seolint/internal/config"
	"github.com/olocus/seolint/internal/model"
)

// StructureCheck verifies the structural elements every page needs:
// a lang attribute on <html>, a <title>, a <main> landmark, a canonical
// link, and an H1 heading.
//
// A missing canonical link is a warning rather than an error: the page is
// still valid, it just risks duplicate-content ambiguity. H1 multiplicity
// is left to HeadingCheck so it is reported exactly once.
type StructureCheck struct{}

// Name returns the check name.
func (c *StructureCheck) Name() string {
	return "structure"
}

// Check inspects the document for the required structural elements.
func (c *StructureCheck) Check(doc *Document, _ *config.Rules, rep *model.Report) {
	if doc.HasLang {
		rep.AddPass("html lang attribute present")
	} else {
		rep.AddError("missing lang attribute")
	}

	if doc.HasTitle {
		rep.AddPass("<title> present")
	} else {
		rep.AddError("missing <title>")
	}

	if doc.HasMain {
		rep.AddPass("<main> landmark present")
	} else {
		rep.AddError("missing <main> landmark")
	}

	if doc.HasCanonical {
		rep.AddPass("canonical link present")
	} else {
		rep.AddWarning("missing canonical link")
	}

	if doc.H1Count() > 0 {
		rep.AddPass("H1 present")
	} else {
		rep.AddError("missing H1")
	}
}
