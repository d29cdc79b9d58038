package domain

import "slices"

const (
	msgNoValues      = "values must not be empty"
	msgMixedValues   = "all values must be of the same type"
	msgMixedFirsts   = "all first values must be of the same type"
	msgMixedSeconds  = "all second values must be of the same type"
	msgMixedThirds   = "all third values must be of the same type"
	msgNilDimension  = "dimension is required"
	msgNilValue      = "value is required"
	msgDimensionsLen = "expected %d dimensions, got %d"
)

func checkDimension(d Dimension) error {
	if !d.valid() {
		return NewError(ErrMissingArgument, msgNilDimension)
	}
	return nil
}

func checkDimensions(want int, dims []Dimension) error {
	if len(dims) != want {
		return NewError(ErrMissingArgument, msgDimensionsLen, want, len(dims))
	}
	for _, d := range dims {
		if err := checkDimension(d); err != nil {
			return err
		}
	}
	return nil
}

// checkColumn verifies that every value is non-nil and shares the runtime type of values[0].
func checkColumn(values []any, mixedMsg string) error {
	if len(values) == 0 {
		return NewError(ErrMissingArgument, msgNoValues)
	}
	var first string
	for i, v := range values {
		if isNil(v) {
			return NewError(ErrMissingArgument, msgNilValue)
		}
		if i == 0 {
			first = typeName(v)
			continue
		}
		if typeName(v) != first {
			return NewError(ErrHomogeneity, "%s", mixedMsg)
		}
	}
	return nil
}

// checkTuples checks the first and second members as two separate columns.
func checkTuples(values []Tuple) error {
	if len(values) == 0 {
		return NewError(ErrMissingArgument, msgNoValues)
	}
	firsts := make([]any, len(values))
	seconds := make([]any, len(values))
	for i, t := range values {
		firsts[i], seconds[i] = t.value1, t.value2
	}
	if err := checkColumn(firsts, msgMixedFirsts); err != nil {
		return err
	}
	return checkColumn(seconds, msgMixedSeconds)
}

func checkTriples(values []Triple) error {
	if len(values) == 0 {
		return NewError(ErrMissingArgument, msgNoValues)
	}
	cols := [3][]any{make([]any, len(values)), make([]any, len(values)), make([]any, len(values))}
	for i, t := range values {
		cols[0][i], cols[1][i], cols[2][i] = t.value1, t.value2, t.value3
	}
	if err := checkColumn(cols[0], msgMixedFirsts); err != nil {
		return err
	}
	if err := checkColumn(cols[1], msgMixedSeconds); err != nil {
		return err
	}
	return checkColumn(cols[2], msgMixedThirds)
}

// SingleData holds one value measured along one dimension.
type SingleData struct {
	dimension Dimension
	value     any
}

func NewSingleData(dimension Dimension, value any) (*SingleData, error) {
	d := &SingleData{}
	if err := d.SetDimension(dimension); err != nil {
		return nil, err
	}
	if err := d.SetValue(value); err != nil {
		return nil, err
	}
	return d, nil
}

func (*SingleData) Kind() ContentKind { return KindSingleData }

func (d *SingleData) Dimension() Dimension { return d.dimension.Clone() }

func (d *SingleData) Value() any { return d.value }

func (d *SingleData) SetDimension(dimension Dimension) error {
	if err := checkDimension(dimension); err != nil {
		return err
	}
	d.dimension = dimension.Clone()
	return nil
}

func (d *SingleData) SetValue(value any) error {
	if isNil(value) {
		return NewError(ErrMissingArgument, msgNilValue)
	}
	d.value = value
	return nil
}

func (d *SingleData) Dimensions() []Dimension { return []Dimension{d.Dimension()} }

func (d *SingleData) SetDimensions(dims ...Dimension) error {
	if err := checkDimensions(1, dims); err != nil {
		return err
	}
	return d.SetDimension(dims[0])
}

func (d *SingleData) Clone() *SingleData {
	return &SingleData{dimension: d.dimension.Clone(), value: d.value}
}

func (d *SingleData) CloneData() DataContent { return d.Clone() }

func (d *SingleData) validate() error {
	if err := checkDimension(d.dimension); err != nil {
		return err
	}
	return checkColumn([]any{d.value}, msgMixedValues)
}

func (d *SingleData) cloneContent() Content { return d.Clone() }

// OneDimData holds a homogeneous list of values measured along one dimension.
type OneDimData struct {
	dimension Dimension
	values    []any
}

func NewOneDimData(dimension Dimension, values []any) (*OneDimData, error) {
	d := &OneDimData{}
	if err := d.SetDimension(dimension); err != nil {
		return nil, err
	}
	if err := d.SetValues(values); err != nil {
		return nil, err
	}
	return d, nil
}

func (*OneDimData) Kind() ContentKind { return KindOneDimData }

func (d *OneDimData) Dimension() Dimension { return d.dimension.Clone() }

// Values returns a copy of the value list.
func (d *OneDimData) Values() []any { return slices.Clone(d.values) }

func (d *OneDimData) SetDimension(dimension Dimension) error {
	if err := checkDimension(dimension); err != nil {
		return err
	}
	d.dimension = dimension.Clone()
	return nil
}

// SetValues installs the whole list or, on any violation, leaves the previous list in place.
func (d *OneDimData) SetValues(values []any) error {
	if err := checkColumn(values, msgMixedValues); err != nil {
		return err
	}
	d.values = slices.Clone(values)
	return nil
}

func (d *OneDimData) Dimensions() []Dimension { return []Dimension{d.Dimension()} }

func (d *OneDimData) SetDimensions(dims ...Dimension) error {
	if err := checkDimensions(1, dims); err != nil {
		return err
	}
	return d.SetDimension(dims[0])
}

func (d *OneDimData) Clone() *OneDimData {
	return &OneDimData{dimension: d.dimension.Clone(), values: slices.Clone(d.values)}
}

func (d *OneDimData) CloneData() DataContent { return d.Clone() }

func (d *OneDimData) validate() error {
	if err := checkDimension(d.dimension); err != nil {
		return err
	}
	return checkColumn(d.values, msgMixedValues)
}

func (d *OneDimData) cloneContent() Content { return d.Clone() }

// Tuple is a pair of values; both slots are required.
type Tuple struct {
	value1 any
	value2 any
}

func NewTuple(value1, value2 any) (Tuple, error) {
	if isNil(value1) || isNil(value2) {
		return Tuple{}, NewError(ErrMissingArgument, msgNilValue)
	}
	return Tuple{value1: value1, value2: value2}, nil
}

func (t Tuple) Value1() any { return t.value1 }

func (t Tuple) Value2() any { return t.value2 }

func (t *Tuple) SetValue1(v any) error {
	if isNil(v) {
		return NewError(ErrMissingArgument, msgNilValue)
	}
	t.value1 = v
	return nil
}

func (t *Tuple) SetValue2(v any) error {
	if isNil(v) {
		return NewError(ErrMissingArgument, msgNilValue)
	}
	t.value2 = v
	return nil
}

// Values returns the members in column order.
func (t Tuple) Values() []any { return []any{t.value1, t.value2} }

// Triple is a three-slot record; every slot is required.
type Triple struct {
	value1 any
	value2 any
	value3 any
}

func NewTriple(value1, value2, value3 any) (Triple, error) {
	if isNil(value1) || isNil(value2) || isNil(value3) {
		return Triple{}, NewError(ErrMissingArgument, msgNilValue)
	}
	return Triple{value1: value1, value2: value2, value3: value3}, nil
}

func (t Triple) Value1() any { return t.value1 }

func (t Triple) Value2() any { return t.value2 }

func (t Triple) Value3() any { return t.value3 }

func (t *Triple) SetValue1(v any) error {
	if isNil(v) {
		return NewError(ErrMissingArgument, msgNilValue)
	}
	t.value1 = v
	return nil
}

func (t *Triple) SetValue2(v any) error {
	if isNil(v) {
		return NewError(ErrMissingArgument, msgNilValue)
	}
	t.value2 = v
	return nil
}

func (t *Triple) SetValue3(v any) error {
	if isNil(v) {
		return NewError(ErrMissingArgument, msgNilValue)
	}
	t.value3 = v
	return nil
}

func (t Triple) Values() []any { return []any{t.value1, t.value2, t.value3} }

// TwoDimData holds tuples whose first and second members each form a homogeneous column.
type TwoDimData struct {
	dimension1 Dimension
	dimension2 Dimension
	values     []Tuple
}

func NewTwoDimData(dimension1, dimension2 Dimension, values []Tuple) (*TwoDimData, error) {
	d := &TwoDimData{}
	if err := d.SetDimensions(dimension1, dimension2); err != nil {
		return nil, err
	}
	if err := d.SetValues(values); err != nil {
		return nil, err
	}
	return d, nil
}

func (*TwoDimData) Kind() ContentKind { return KindTwoDimData }

func (d *TwoDimData) Dimension1() Dimension { return d.dimension1.Clone() }

func (d *TwoDimData) Dimension2() Dimension { return d.dimension2.Clone() }

func (d *TwoDimData) Values() []Tuple { return slices.Clone(d.values) }

func (d *TwoDimData) SetDimension1(dimension Dimension) error {
	if err := checkDimension(dimension); err != nil {
		return err
	}
	d.dimension1 = dimension.Clone()
	return nil
}

func (d *TwoDimData) SetDimension2(dimension Dimension) error {
	if err := checkDimension(dimension); err != nil {
		return err
	}
	d.dimension2 = dimension.Clone()
	return nil
}

func (d *TwoDimData) SetValues(values []Tuple) error {
	if err := checkTuples(values); err != nil {
		return err
	}
	d.values = slices.Clone(values)
	return nil
}

func (d *TwoDimData) Dimensions() []Dimension {
	return []Dimension{d.Dimension1(), d.Dimension2()}
}

func (d *TwoDimData) SetDimensions(dims ...Dimension) error {
	if err := checkDimensions(2, dims); err != nil {
		return err
	}
	d.dimension1, d.dimension2 = dims[0].Clone(), dims[1].Clone()
	return nil
}

func (d *TwoDimData) Clone() *TwoDimData {
	return &TwoDimData{
		dimension1: d.dimension1.Clone(),
		dimension2: d.dimension2.Clone(),
		values:     slices.Clone(d.values),
	}
}

func (d *TwoDimData) CloneData() DataContent { return d.Clone() }

func (d *TwoDimData) validate() error {
	if err := checkDimensions(2, []Dimension{d.dimension1, d.dimension2}); err != nil {
		return err
	}
	return checkTuples(d.values)
}

func (d *TwoDimData) cloneContent() Content { return d.Clone() }

// ThreeDimData holds triples whose members each form a homogeneous column.
type ThreeDimData struct {
	dimension1 Dimension
	dimension2 Dimension
	dimension3 Dimension
	values     []Triple
}

func NewThreeDimData(dimension1, dimension2, dimension3 Dimension, values []Triple) (*ThreeDimData, error) {
	d := &ThreeDimData{}
	if err := d.SetDimensions(dimension1, dimension2, dimension3); err != nil {
		return nil, err
	}
	if err := d.SetValues(values); err != nil {
		return nil, err
	}
	return d, nil
}

func (*ThreeDimData) Kind() ContentKind { return KindThreeDimData }

func (d *ThreeDimData) Dimension1() Dimension { return d.dimension1.Clone() }

func (d *ThreeDimData) Dimension2() Dimension { return d.dimension2.Clone() }

func (d *ThreeDimData) Dimension3() Dimension { return d.dimension3.Clone() }

func (d *ThreeDimData) Values() []Triple { return slices.Clone(d.values) }

func (d *ThreeDimData) SetDimension1(dimension Dimension) error {
	if err := checkDimension(dimension); err != nil {
		return err
	}
	d.dimension1 = dimension.Clone()
	return nil
}

func (d *ThreeDimData) SetDimension2(dimension Dimension) error {
	if err := checkDimension(dimension); err != nil {
		return err
	}
	d.dimension2 = dimension.Clone()
	return nil
}

func (d *ThreeDimData) SetDimension3(dimension Dimension) error {
	if err := checkDimension(dimension); err != nil {
		return err
	}
	d.dimension3 = dimension.Clone()
	return nil
}

func (d *ThreeDimData) SetValues(values []Triple) error {
	if err := checkTriples(values); err != nil {
		return err
	}
	d.values = slices.Clone(values)
	return nil
}

func (d *ThreeDimData) Dimensions() []Dimension {
	return []Dimension{d.Dimension1(), d.Dimension2(), d.Dimension3()}
}

func (d *ThreeDimData) SetDimensions(dims ...Dimension) error {
	if err := checkDimensions(3, dims); err != nil {
		return err
	}
	d.dimension1, d.dimension2, d.dimension3 = dims[0].Clone(), dims[1].Clone(), dims[2].Clone()
	return nil
}

func (d *ThreeDimData) Clone() *ThreeDimData {
	return &ThreeDimData{
		dimension1: d.dimension1.Clone(),
		dimension2: d.dimension2.Clone(),
		dimension3: d.dimension3.Clone(),
		values:     slices.Clone(d.values),
	}
}

func (d *ThreeDimData) CloneData() DataContent { return d.Clone() }

func (d *ThreeDimData) validate() error {
	if err := checkDimensions(3, []Dimension{d.dimension1, d.dimension2, d.dimension3}); err != nil {
		return err
	}
	return checkTriples(d.values)
}

func (d *ThreeDimData) cloneContent() Content { return d.Clone() }
