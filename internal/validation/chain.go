package validation

// Rule inspects a payload and returns nil to continue or an error to stop the chain.
type Rule[T any] func(T) error

// Chain is an ordered list of rules.
type Chain[T any] []Rule[T]

// Run applies the rules in declaration order and returns the first failure.
// Rules after a failing one are not invoked.
func (c Chain[T]) Run(in T) error {
	for _, rule := range c {
		if err := rule(in); err != nil {
			return err
		}
	}
	return nil
}

// With returns a new chain with extra rules appended. The receiver is left untouched.
func (c Chain[T]) With(rules ...Rule[T]) Chain[T] {
	out := make(Chain[T], 0, len(c)+len(rules))
	out = append(out, c...)
	return append(out, rules...)
}
