package checker

import (
	"fmt"
	"unicode/utf8"

	"github.com/olocus/seolint/internal/config"
	"github.com/olocus/seolint/internal/model"
)

// MetaTagCheck verifies the required <meta name="..."> tags are present.
// The description tag additionally gets a length recommendation: search
// engines truncate descriptions beyond roughly 155 characters, so longer
// content warns without failing the file.
type MetaTagCheck struct{}

// Name returns the check name.
func (c *MetaTagCheck) Name() string {
	return "meta tags"
}

// Check inspects the document for the required meta tags.
func (c *MetaTagCheck) Check(doc *Document, rules *config.Rules, rep *model.Report) {
	for _, tag := range rules.RequiredMetaTags {
		content, ok := doc.MetaNames[tag]
		if !ok {
			rep.AddError(fmt.Sprintf("missing meta tag: %s", tag))
			continue
		}

		if tag == "description" && utf8.RuneCountInString(content) > rules.DescriptionMaxLength {
			rep.AddWarning(fmt.Sprintf("meta description is %d characters (recommended maximum %d)",
				utf8.RuneCountInString(content), rules.DescriptionMaxLength))
			continue
		}

		rep.AddPass(fmt.Sprintf("meta tag %q present", tag))
	}
}
