package types

// Unify implements the resolver's core operation (spec §4.5.1): it applies
// the current substitution to both sides, and
//   - if the roots are identical, succeeds with no change;
//   - if one root is Unresolved, binds it to the other;
//   - otherwise, if the roots are both concrete and differ, fails.
//
// Unify never attempts an implicit cast; that is explicitly out of scope
// at this layer (spec §4.5.3 BinaryExpr).
func Unify(t1, t2 Type, s Subst) (ok bool) {
	r1 := ApplySubstitution(t1, s)
	r2 := ApplySubstitution(t2, s)

	if r1 == r2 {
		return true
	}

	u1, isU1 := r1.(*Unresolved)
	u2, isU2 := r2.(*Unresolved)

	switch {
	case isU1 && isU2:
		s[u1] = u2
		return true
	case isU1:
		s[u1] = r2
		return true
	case isU2:
		s[u2] = r1
		return true
	default:
		return sameConcreteType(r1, r2)
	}
}

// sameConcreteType compares two non-Unresolved types structurally as a
// fallback for the (rare) case callers hold two distinct instances that
// were never round-tripped through the Registry — canonicalized types
// compare by identity in the fast path above.
func sameConcreteType(a, b Type) bool {
	switch av := a.(type) {
	case *Primitive:
		bv, ok := b.(*Primitive)
		return ok && av.Tag == bv.Tag
	case *Array:
		bv, ok := b.(*Array)
		if !ok || av.Rank != bv.Rank {
			return false
		}
		return av.Element == bv.Element || sameConcreteType(av.Element, bv.Element)
	case *DefinedType:
		bv, ok := b.(*DefinedType)
		return ok && av.FullName == bv.FullName
	case *GenericInstance:
		bv, ok := b.(*GenericInstance)
		if !ok || av.FullName != bv.FullName || len(av.Arguments) != len(bv.Arguments) {
			return false
		}
		for i := range av.Arguments {
			if !sameConcreteType(av.Arguments[i], bv.Arguments[i]) {
				return false
			}
		}
		return true
	case *Function:
		bv, ok := b.(*Function)
		if !ok || len(av.Params) != len(bv.Params) {
			return false
		}
		for i := range av.Params {
			if !sameConcreteType(av.Params[i], bv.Params[i]) {
				return false
			}
		}
		if (av.Return == nil) != (bv.Return == nil) {
			return false
		}
		return av.Return == nil || sameConcreteType(av.Return, bv.Return)
	default:
		return false
	}
}
