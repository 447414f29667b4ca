package hclconfig

import (
	"context"

	"github.com/hashicorp/hcl/v2"
	"github.com/lialsoftlab/ant25/internal/ctxlog"
)

// isExprDefined reports whether an optional attribute was written in the
// source. gohcl fills omitted hcl.Expression fields with a zero-width
// placeholder, so a nil check is not enough.
func isExprDefined(ctx context.Context, expr hcl.Expression, attrName string) bool {
	if expr == nil {
		return false
	}
	r := expr.Range()
	defined := r.End.Byte > r.Start.Byte
	ctxlog.FromContext(ctx).Debug("Checked optional HCL attribute.",
		"attribute", attrName,
		"hcl_range", r.String(),
		"is_defined", defined,
	)
	return defined
}
