package dertree

/*
generalizedtime.go implements the ASN.1 GeneralizedTime primitive
(universal tag 24): YYYYMMDDHHMMSS[.fff]Z, validated field-by-field.

This deliberately does not alias time.Time or go through time.Parse the
way the teacher library's time.go does for its whole Temporal family:
the spec this type implements calls out "no built-in mapping to
platform date/time types" as a Non-goal, and time.Parse's layout-based
parsing would quietly accept things DER doesn't (and silently normalize
out-of-range fields instead of rejecting them). The field-range checks
below - including the Gregorian leap-year rule and the leap-second
tolerant 0-61 second range - are grounded on the *style* of the range
checks the teacher performs elsewhere in time.go, just applied to an
explicit struct of integer fields instead of a wrapped time.Time.
*/

import (
	"strconv"
)

// GeneralizedTime implements the ASN.1 GeneralizedTime type. Per the
// DER-strict layout it decodes, it carries no timezone other than UTC
// ('Z' is mandatory) and no canonical total ordering: comparing two
// GeneralizedTime values for "before/after" is deliberately not exposed,
// since the DER grammar's leap-second tolerance (seconds up to 61) does
// not define one.
type GeneralizedTime struct {
	Year, Month, Day     int
	Hour, Minute, Second int
	FractionalSeconds    float64
	HasFractionalSeconds bool
}

// DefaultIdentifier returns the universal, primitive GeneralizedTime
// identifier.
func (GeneralizedTime) DefaultIdentifier() Identifier {
	return Identifier{Class: ClassUniversal, Constructed: false, Tag: TagGeneralizedTime}
}

// NewGeneralizedTime returns a [GeneralizedTime] after validating every
// field and running it through any supplied constraints.
func NewGeneralizedTime(year, month, day, hour, minute, second int, fractionalSeconds float64, hasFractionalSeconds bool, constraints ...Constraint[GeneralizedTime]) (GeneralizedTime, error) {
	gt := GeneralizedTime{
		Year: year, Month: month, Day: day,
		Hour: hour, Minute: minute, Second: second,
		FractionalSeconds: fractionalSeconds, HasFractionalSeconds: hasFractionalSeconds,
	}
	if err := gt.validate(); err != nil {
		return GeneralizedTime{}, err
	}
	if err := (ConstraintGroup[GeneralizedTime](constraints)).Validate(gt); err != nil {
		return GeneralizedTime{}, err
	}
	return gt, nil
}

// isLeapYear reports whether y is a Gregorian leap year.
func isLeapYear(y int) bool {
	return (y%4 == 0 && y%100 != 0) || y%400 == 0
}

var daysInMonthTable = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// daysInMonth returns the number of days in month (1-12) of year,
// respecting Gregorian leap years for February.
func daysInMonth(month, year int) int {
	if month == 2 && isLeapYear(year) {
		return 29
	}
	return daysInMonthTable[month-1]
}

func (gt GeneralizedTime) validate() error {
	switch {
	case gt.Year < 0 || gt.Year > 9999:
		return wrapErr(ErrInvalidObject, "GeneralizedTime year out of range [0,9999]")
	case gt.Month < 1 || gt.Month > 12:
		return wrapErr(ErrInvalidObject, "GeneralizedTime month out of range [1,12]")
	case gt.Day < 1 || gt.Day > daysInMonth(gt.Month, gt.Year):
		return wrapErr(ErrInvalidObject, "GeneralizedTime day out of range for its month and year")
	case gt.Hour < 0 || gt.Hour > 23:
		return wrapErr(ErrInvalidObject, "GeneralizedTime hour out of range [0,23]")
	case gt.Minute < 0 || gt.Minute > 59:
		return wrapErr(ErrInvalidObject, "GeneralizedTime minute out of range [0,59]")
	case gt.Second < 0 || gt.Second > 61:
		return wrapErr(ErrInvalidObject, "GeneralizedTime second out of range [0,61]")
	case gt.HasFractionalSeconds && (gt.FractionalSeconds < 0 || gt.FractionalSeconds >= 1):
		return wrapErr(ErrInvalidObject, "GeneralizedTime fractional seconds out of range [0,1)")
	}
	return nil
}

// String renders the receiver in canonical DER form,
// YYYYMMDDHHMMSS[.fff]Z.
func (gt GeneralizedTime) String() string {
	out := make([]byte, 0, 22)
	pad4 := func(n int) string { return padInt(n, 4) }
	pad2 := func(n int) string { return padInt(n, 2) }

	out = append(out, pad4(gt.Year)...)
	out = append(out, pad2(gt.Month)...)
	out = append(out, pad2(gt.Day)...)
	out = append(out, pad2(gt.Hour)...)
	out = append(out, pad2(gt.Minute)...)
	out = append(out, pad2(gt.Second)...)
	if gt.HasFractionalSeconds {
		frac := strconv.FormatFloat(gt.FractionalSeconds, 'f', -1, 64) // "0.xxx"
		out = append(out, frac[1:]...)                                 // keep ".xxx"
	}
	out = append(out, 'Z')
	return string(out)
}

func padInt(n, width int) string {
	s := strconv.Itoa(n)
	for len(s) < width {
		s = "0" + s
	}
	return s
}

// parseGeneralizedTimeText parses the canonical DER GeneralizedTime
// layout YYYYMMDDHHMMSS[.fff]Z out of raw.
func parseGeneralizedTimeText(raw []byte) (GeneralizedTime, error) {
	s := string(raw)
	if !hasSfx(s, "Z") {
		return GeneralizedTime{}, wrapErr(ErrInvalidObject, "GeneralizedTime must carry a 'Z' (UTC) suffix")
	}
	s = s[:len(s)-1]

	var fracPart string
	hasFraction := false
	if idx := stridxb(s, '.'); idx >= 0 {
		fracPart = s[idx:]
		s = s[:idx]
		hasFraction = true
	}

	if len(s) != 14 {
		return GeneralizedTime{}, wrapErr(ErrInvalidObject, "GeneralizedTime must encode 14 digits (YYYYMMDDHHMMSS) before any fraction")
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return GeneralizedTime{}, wrapErr(ErrInvalidObject, "GeneralizedTime contains a non-digit character")
		}
	}

	digits := func(a, b int) int {
		v, _ := strconv.Atoi(s[a:b])
		return v
	}

	gt := GeneralizedTime{
		Year: digits(0, 4), Month: digits(4, 6), Day: digits(6, 8),
		Hour: digits(8, 10), Minute: digits(10, 12), Second: digits(12, 14),
	}

	if hasFraction {
		if len(fracPart) < 2 {
			return GeneralizedTime{}, wrapErr(ErrInvalidObject, "GeneralizedTime fractional component is empty")
		}
		for i := 1; i < len(fracPart); i++ {
			if fracPart[i] < '0' || fracPart[i] > '9' {
				return GeneralizedTime{}, wrapErr(ErrInvalidObject, "GeneralizedTime fractional component contains a non-digit character")
			}
		}
		f, err := strconv.ParseFloat("0"+fracPart, 64)
		if err != nil {
			return GeneralizedTime{}, wrapErr(ErrInvalidObject, "GeneralizedTime fractional component is malformed")
		}
		gt.FractionalSeconds = f
		gt.HasFractionalSeconds = true
	}

	if err := gt.validate(); err != nil {
		return GeneralizedTime{}, err
	}
	return gt, nil
}

// Serialize writes the receiver under its default identifier.
func (gt GeneralizedTime) Serialize(s *Serializer) error {
	return gt.SerializeWithIdentifier(s, gt.DefaultIdentifier())
}

// SerializeWithIdentifier writes the receiver's canonical textual
// encoding under identifier.
func (gt GeneralizedTime) SerializeWithIdentifier(s *Serializer, identifier Identifier) error {
	if err := gt.validate(); err != nil {
		return err
	}
	return s.AppendPrimitive(identifier, func(w *Serializer) error {
		w.WriteBytes([]byte(gt.String()))
		return nil
	})
}

// ParseFromNode decodes the receiver from n under its default identifier.
func (gt *GeneralizedTime) ParseFromNode(n Node) error {
	return gt.ParseFromNodeWithIdentifier(n, gt.DefaultIdentifier())
}

// ParseFromNodeWithIdentifier decodes the receiver from n, requiring
// identifier and the canonical DER GeneralizedTime textual layout.
func (gt *GeneralizedTime) ParseFromNodeWithIdentifier(n Node, identifier Identifier) error {
	pn, ok := n.(PrimitiveNode)
	if !ok || pn.Identifier() != identifier {
		return errWrongTag(identifier, n.Identifier())
	}

	parsed, err := parseGeneralizedTimeText(pn.Content())
	if err != nil {
		return err
	}
	*gt = parsed
	return nil
}
