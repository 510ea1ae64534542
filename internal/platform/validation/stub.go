package validation

// StubValidator reports every payload as valid unless ValidateStructFunc is set.
type StubValidator struct {
	ValidateStructFunc func(s any) map[string]string
	Calls              int
}

var _ Validator = (*StubValidator)(nil)

func (s *StubValidator) ValidateStruct(st any) map[string]string {
	s.Calls++
	if s.ValidateStructFunc == nil {
		return nil
	}
	return s.ValidateStructFunc(st)
}
