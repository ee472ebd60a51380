package checker

import (
	"fmt"

	"github.com/olocus/seolint/internal/config"
	"github.com/olocus/seolint/internal/model"
)

// OpenGraphCheck verifies the required Open Graph tags are present.
// Open Graph tags use <meta property="og:..."> rather than the name
// attribute, which is why they are looked up separately from regular
// meta tags.
type OpenGraphCheck struct{}

// Name returns the check name.
func (c *OpenGraphCheck) Name() string {
	return "open graph"
}

// Check inspects the document for the required Open Graph tags.
func (c *OpenGraphCheck) Check(doc *Document, rules *config.Rules, rep *model.Report) {
	for _, tag := range rules.RequiredOpenGraphTags {
		if _, ok := doc.MetaProperties[tag]; !ok {
			rep.AddError(fmt.Sprintf("missing Open Graph tag: %s", tag))
			continue
		}
		rep.AddPass(fmt.Sprintf("Open Graph tag %q present", tag))
	}
}

// TwitterCardCheck verifies the required Twitter Card tags are present.
// Twitter Card tags use <meta name="twitter:...">, the name attribute
// like regular meta tags.
type TwitterCardCheck struct{}

// Name returns the check name.
func (c *TwitterCardCheck) Name() string {
	return "twitter card"
}

// Check inspects the document for the required Twitter Card tags.
func (c *TwitterCardCheck) Check(doc *Document, rules *config.Rules, rep *model.Report) {
	for _, tag := range rules.RequiredTwitterTags {
		if _, ok := doc.MetaNames[tag]; !ok {
			rep.AddError(fmt.Sprintf("missing Twitter Card tag: %s", tag))
			continue
		}
		rep.AddPass(fmt.Sprintf("Twitter Card tag %q present", tag))
	}
}
