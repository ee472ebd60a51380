package checker

import (
	"fmt"
	"strings"

	"github.com/olocus/seolint/internal/config"
	"github.com/olocus/seolint/internal/model"
)

// CanonicalCheck verifies the canonical URL points at the expected site
// origin. The presence of the canonical link itself is StructureCheck's
// concern; this check only inspects the href when one exists, so a page
// without a canonical link gets no outcome here.
type CanonicalCheck struct{}

// Name returns the check name.
func (c *CanonicalCheck) Name() string {
	return "canonical"
}

// Check inspects the canonical link's href.
func (c *CanonicalCheck) Check(doc *Document, rules *config.Rules, rep *model.Report) {
	if !doc.HasCanonical || rules.SiteOrigin == "" {
		return
	}

	if strings.HasPrefix(doc.CanonicalHref, rules.SiteOrigin) {
		rep.AddPass("canonical URL uses the site origin")
		return
	}

	rep.AddWarning(fmt.Sprintf("canonical URL %q does not start with %s", doc.CanonicalHref, rules.SiteOrigin))
}
