package value

// Annotated is satisfied by any ctx node carrying a JSDoc @returns
// annotation (ctx.Function, ctx.Method). Combine consults it, when
// present, to influence the merged result toward the declared type —
// e.g. a function documented "@returns {random}" reports its merged
// return as kind random regardless of what its branches actually
// computed.
type Annotated interface {
	ReturnsAnnotation() (string, bool)
}

// Combine merges a set of candidate Values (e.g. every return statement's
// value in a function body) into one Value holding every item from every
// candidate. When haltIfTrue is set, merging stops as soon as an
// unconditional item is appended — this is the "deterministic return
// short-circuits the rest of the function" rule used for return-value
// aggregation (spec §4.7).
func Combine(owner Annotated, values []Value, haltIfTrue bool) Value {
	var ret Value
	for _, val := range values {
		for _, it := range val.Items {
			ret.Items = append(ret.Items, it)
			if haltIfTrue && (it.Condition == nil || it.Condition.True()) {
				return applyAnnotation(owner, ret)
			}
		}
	}
	return applyAnnotation(owner, ret)
}

func applyAnnotation(owner Annotated, v Value) Value {
	if owner == nil {
		return v
	}
	newType, ok := owner.ReturnsAnnotation()
	if !ok || newType == "" {
		return v
	}
	return Influence(newType, v)
}

// Influence promotes every item of v toward newType, widening payloads
// where the target kind demands it. The only widening rule the language
// needs is "random": a documented random return becomes kind random with
// the canonical [0.0, 1.0] range, regardless of what the underlying
// arithmetic produced.
func Influence(newType string, v Value) Value {
	if newType == "" {
		return v
	}
	ret := Value{Node: v.Node}
	for _, it := range v.Items {
		nit := it
		if newType == "random" {
			nit.Kind = KindRandom
			if !nit.Payload.IsRange {
				nit.Payload = Payload{IsRange: true, Lo: 0.0, Hi: 1.0}
			}
		}
		ret.Items = append(ret.Items, nit)
	}
	return ret
}

// Coerce retags every item of v to newType without touching its payload,
// so unlike Influence it never widens a scalar into a range. Nothing in
// the analysis pipeline calls it.
func Coerce(newType string, v Value) Value {
	if newType == "" {
		return v
	}
	ret := Value{Node: v.Node}
	for _, it := range v.Items {
		nit := it
		nit.Kind = Kind(newType)
		ret.Items = append(ret.Items, nit)
	}
	return ret
}
