package valid

// The Join functions combine independent validations. Unlike Bind they never
// short-circuit: every operand's errors are reported, concatenated in
// operand order. The combiner runs only when every operand is valid.

func Join2[A, B, Out any](a Validated[A], b Validated[B], combine func(a A, b B) Out) Validated[Out] {
	mustArm("Join2", combine == nil)
	errs := joinErrs(a.errs, b.errs)
	if len(errs) > 0 {
		return Validated[Out]{errs: errs}
	}
	return Valid(combine(a.value, b.value))
}

func Join3[A, B, C, Out any](a Validated[A], b Validated[B], c Validated[C],
	combine func(a A, b B, c C) Out) Validated[Out] {

	mustArm("Join3", combine == nil)
	errs := joinErrs(a.errs, b.errs, c.errs)
	if len(errs) > 0 {
		return Validated[Out]{errs: errs}
	}
	return Valid(combine(a.value, b.value, c.value))
}

func Join4[A, B, C, D, Out any](a Validated[A], b Validated[B], c Validated[C], d Validated[D],
	combine func(a A, b B, c C, d D) Out) Validated[Out] {

	mustArm("Join4", combine == nil)
	errs := joinErrs(a.errs, b.errs, c.errs, d.errs)
	if len(errs) > 0 {
		return Validated[Out]{errs: errs}
	}
	return Valid(combine(a.value, b.value, c.value, d.value))
}

func joinErrs(seqs ...[]error) []error {
	n := 0
	for _, s := range seqs {
		n += len(s)
	}
	if n == 0 {
		return nil
	}
	out := make([]error, 0, n)
	for _, s := range seqs {
		out = append(out, s...)
	}
	return out
}
