package domain

import "fmt"

// Dimension names what a value measures, optionally with a unit ("profit" in "$").
type Dimension struct {
	name string
	unit string
}

// NewDimension creates a dimension. The unit may be empty.
func NewDimension(name, unit string) (Dimension, error) {
	if name == "" {
		return Dimension{}, NewError(ErrMissingArgument, "dimension name is required")
	}
	return Dimension{name: name, unit: unit}, nil
}

// MustDimension is NewDimension for literals known to be valid.
func MustDimension(name, unit string) Dimension {
	d, err := NewDimension(name, unit)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Dimension) Name() string { return d.name }

func (d Dimension) Unit() string { return d.unit }

func (d *Dimension) SetName(name string) error {
	if name == "" {
		return NewError(ErrMissingArgument, "dimension name is required")
	}
	d.name = name
	return nil
}

func (d *Dimension) SetUnit(unit string) {
	d.unit = unit
}

// Header is the column label used by every report format: "name [unit]" or "name".
func (d Dimension) Header() string {
	if d.unit == "" {
		return d.name
	}
	return fmt.Sprintf("%s [%s]", d.name, d.unit)
}

func (d Dimension) Clone() Dimension {
	return Dimension{name: d.name, unit: d.unit}
}

func (d Dimension) valid() bool {
	return d.name != ""
}

func (d Dimension) String() string {
	return d.Header()
}
