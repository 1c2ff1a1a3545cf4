package dertree

/*
constraint.go implements the generic constraint mechanism this package's
NewX primitive constructors accept, grounded on the teacher library's
Constraint/ConstraintGroup machinery (constr.go), adapted to a generic
Constraint[T] rather than a Constraint func(any) error so constraint
closures are checked against the concrete primitive type at compile time.
*/

// Constraint is a closure that validates a single value of type T,
// returning a non-nil error (wrapping [ErrInvalidObject]) if the value is
// unacceptable. Constraints are fed to this package's NewX constructors
// as a variadic tail, evaluated in the order given, after the type's own
// built-in validation has already passed.
type Constraint[T any] func(T) error

// ConstraintGroup evaluates a slice of [Constraint] values against x in
// order, short-circuiting (and returning) on the first failure.
type ConstraintGroup[T any] []Constraint[T]

// Validate runs every constraint in the receiver against x.
func (g ConstraintGroup[T]) Validate(x T) error {
	for _, c := range g {
		if c == nil {
			continue
		}
		if err := c(x); err != nil {
			return err
		}
	}
	return nil
}
