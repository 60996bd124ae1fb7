package dispatchers

import "github.com/footprint-tools/parsedcmd/internal/usage"

// Resolution is the outcome of resolving a handler chain.
type Resolution struct {
	// Handler is the outermost handler; its Action is what gets invoked.
	Handler *Handler

	// Source is the handler whose signature drives binding.
	Source *Handler

	Signature *Signature
	Raw       bool
}

// Resolve follows the Wrapped links of h until it reaches a handler
// marked Authoritative or one with no further link. A chain that loops
// back on itself is reported as usage.ErrWrapperCycle.
func Resolve(h *Handler) (*Resolution, error) {
	res := &Resolution{Handler: h, Source: h, Raw: h.Raw}
	if h.Raw {
		return res, nil
	}

	seen := make(map[*Handler]bool)
	cur := h
	for !cur.Authoritative && cur.Wrapped != nil {
		if seen[cur] {
			return nil, usage.WrapperCycle(h.Name)
		}
		seen[cur] = true
		cur = cur.Wrapped
	}

	res.Source = cur
	res.Raw = cur.Raw
	res.Signature = cur.Signature
	if res.Signature == nil {
		res.Signature = emptySignature
	}
	return res, nil
}
