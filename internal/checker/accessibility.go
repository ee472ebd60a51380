package checker

import (
	"fmt"

	"github.com/olocus/seolint/internal/config"
	"github.com/olocus/seolint/internal/model"
)

// AccessibilityCheck looks for basic accessibility affordances: a skip link
// for keyboard navigation, ARIA labels, and alt text on images.
//
// Missing skip links and ARIA labels are warnings because their absence is
// sometimes legitimate on minimal pages. Images without alt attributes are
// errors: there is no valid reason to omit the attribute entirely, since
// decorative images use an empty alt="".
type AccessibilityCheck struct{}

// Name returns the check name.
func (c *AccessibilityCheck) Name() string {
	return "accessibility"
}

// Check inspects the document for accessibility affordances.
func (c *AccessibilityCheck) Check(doc *Document, _ *config.Rules, rep *model.Report) {
	if doc.HasSkipLink {
		rep.AddPass("skip link present")
	} else {
		rep.AddWarning("no skip link found")
	}

	if doc.HasAriaLabel {
		rep.AddPass("ARIA labels present")
	} else {
		rep.AddWarning("no ARIA labels found")
	}

	switch {
	case doc.ImagesMissingAlt == 0:
		rep.AddPass("all images have alt attributes")
	case doc.ImagesMissingAlt == 1:
		rep.AddError("1 image missing an alt attribute")
	default:
		rep.AddError(fmt.Sprintf("%d images missing alt attributes", doc.ImagesMissingAlt))
	}
}
