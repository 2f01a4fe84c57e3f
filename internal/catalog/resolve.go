package catalog

import (
	"github.com/dramac-main/dramac-cms-sub014/internal/site"
)

// Resolution is the content-availability verdict for one component type
// against one business data snapshot.
type Resolution struct {
	CanRender        bool
	MissingCritical  []string
	MissingImportant []string
	MissingOptional  []string
	// Fallbacks maps requirement fields that resolved via literal fallback
	// text to that text.
	Fallbacks map[string]string
	// Resolved maps requirement fields satisfied from business data to the
	// resolved value.
	Resolved map[string]any
	// Degraded is set when any critical or important field needed fallback
	// text instead of real business data.
	Degraded bool
}

// Resolve checks every content requirement of ct against biz. It never
// mutates biz; it only inspects it. canRender is true iff no critical
// requirement is left unsatisfied.
func Resolve(ct ComponentType, biz *site.BusinessDataContext) Resolution {
	res := Resolution{
		CanRender: true,
		Fallbacks: map[string]string{},
		Resolved:  map[string]any{},
	}
	for _, req := range ct.Requirements {
		if req.DataPath != "" {
			if v, ok := biz.Field(req.DataPath); ok {
				res.Resolved[req.Field] = v
				continue
			}
		}
		if req.Fallback != "" {
			res.Fallbacks[req.Field] = req.Fallback
			if req.Severity == Critical || req.Severity == Important {
				res.Degraded = true
			}
			continue
		}
		switch req.Severity {
		case Critical:
			res.MissingCritical = append(res.MissingCritical, req.Field)
			res.CanRender = false
		case Important:
			res.MissingImportant = append(res.MissingImportant, req.Field)
			res.Degraded = true
		default:
			res.MissingOptional = append(res.MissingOptional, req.Field)
		}
	}
	return res
}
