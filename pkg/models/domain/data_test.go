package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireKind(t *testing.T, err error, kind ErrorKind) *ExplanationError {
	t.Helper()
	var explErr *ExplanationError
	require.True(t, errors.As(err, &explErr), "expected ExplanationError, got %v", err)
	assert.Equal(t, kind, explErr.Kind)
	return explErr
}

func TestNewDimension_RejectsEmptyName(t *testing.T) {
	_, err := NewDimension("", "EUR")
	requireKind(t, err, ErrMissingArgument)
}

func TestDimension_Header(t *testing.T) {
	assert.Equal(t, "money [EUR]", MustDimension("money", "EUR").Header())
	assert.Equal(t, "count", MustDimension("count", "").Header())
}

func TestDimension_CloneIsIndependent(t *testing.T) {
	// Given
	original := MustDimension("profit", "$")

	// When
	clone := original.Clone()
	require.NoError(t, clone.SetName("loss"))
	clone.SetUnit("EUR")

	// Then
	assert.Equal(t, "profit", original.Name())
	assert.Equal(t, "$", original.Unit())
	assert.Equal(t, "loss", clone.Name())
}

func TestDimension_SetNameRejectsEmpty(t *testing.T) {
	d := MustDimension("profit", "$")
	err := d.SetName("")
	requireKind(t, err, ErrMissingArgument)
	assert.Equal(t, "profit", d.Name())
}

func TestNewSingleData_Validation(t *testing.T) {
	_, err := NewSingleData(Dimension{}, 1.0)
	requireKind(t, err, ErrMissingArgument)

	_, err = NewSingleData(MustDimension("money", "EUR"), nil)
	requireKind(t, err, ErrMissingArgument)

	var nilPtr *time.Time
	_, err = NewSingleData(MustDimension("money", "EUR"), nilPtr)
	requireKind(t, err, ErrMissingArgument)

	d, err := NewSingleData(MustDimension("money", "EUR"), 1700.0)
	require.NoError(t, err)
	assert.Equal(t, 1700.0, d.Value())
	assert.Equal(t, "money", d.Dimension().Name())
}

func TestOneDimData_SetValuesRejectsMixedTypesWithoutSideEffects(t *testing.T) {
	// Given
	d, err := NewOneDimData(MustDimension("height", "cm"), []any{180, 175})
	require.NoError(t, err)

	// When
	err = d.SetValues([]any{1, 2, "three"})

	// Then
	explErr := requireKind(t, err, ErrHomogeneity)
	assert.Equal(t, "all values must be of the same type", explErr.Error())
	assert.Equal(t, []any{180, 175}, d.Values())
}

func TestOneDimData_RejectsEmptyAndNilValues(t *testing.T) {
	_, err := NewOneDimData(MustDimension("height", "cm"), nil)
	explErr := requireKind(t, err, ErrMissingArgument)
	assert.Equal(t, "values must not be empty", explErr.Message)

	_, err = NewOneDimData(MustDimension("height", "cm"), []any{1, nil})
	requireKind(t, err, ErrMissingArgument)
}

func TestOneDimData_ValuesAreCopied(t *testing.T) {
	values := []any{1, 2, 3}
	d, err := NewOneDimData(MustDimension("n", ""), values)
	require.NoError(t, err)

	values[0] = "mutated"
	got := d.Values()
	got[1] = "mutated"

	assert.Equal(t, []any{1, 2, 3}, d.Values())
}

func TestTwoDimData_Homogeneity(t *testing.T) {
	tuple := func(a, b any) Tuple {
		tp, err := NewTuple(a, b)
		require.NoError(t, err)
		return tp
	}

	tests := []struct {
		name    string
		values  []Tuple
		wantMsg string
	}{
		{
			name:    "first column mixed",
			values:  []Tuple{tuple(1, "a"), tuple(2.0, "b")},
			wantMsg: "all first values must be of the same type",
		},
		{
			name:    "second column mixed",
			values:  []Tuple{tuple(1, "a"), tuple(2, 3)},
			wantMsg: "all second values must be of the same type",
		},
		{
			name:    "zero tuple",
			values:  []Tuple{tuple(1, "a"), {}},
			wantMsg: "value is required",
		},
		{
			name:    "empty",
			values:  nil,
			wantMsg: "values must not be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewTwoDimData(MustDimension("year", ""), MustDimension("label", ""), []Tuple{tuple(2020, "x")})
			require.NoError(t, err)

			err = d.SetValues(tt.values)

			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
			assert.Equal(t, []Tuple{tuple(2020, "x")}, d.Values())
		})
	}
}

func TestTwoDimData_ColumnsMayDifferFromEachOther(t *testing.T) {
	a, _ := NewTuple(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), 10.5)
	b, _ := NewTuple(time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), 11.0)

	d, err := NewTwoDimData(MustDimension("day", ""), MustDimension("temp", "C"), []Tuple{a, b})

	require.NoError(t, err)
	assert.Len(t, d.Values(), 2)
}

func TestThreeDimData_ThirdColumnMixed(t *testing.T) {
	a, _ := NewTriple(1, "a", true)
	b, _ := NewTriple(2, "b", "yes")

	_, err := NewThreeDimData(MustDimension("x", ""), MustDimension("y", ""), MustDimension("z", ""), []Triple{a, b})

	explErr := requireKind(t, err, ErrHomogeneity)
	assert.Equal(t, "all third values must be of the same type", explErr.Message)
}

func TestNewTriple_RejectsNilSlot(t *testing.T) {
	_, err := NewTriple(1, nil, 3)
	requireKind(t, err, ErrMissingArgument)
}

func TestContainers_CloneIsIndependent(t *testing.T) {
	single, err := NewSingleData(MustDimension("money", "EUR"), 1700.0)
	require.NoError(t, err)
	one, err := NewOneDimData(MustDimension("height", "cm"), []any{1, 2})
	require.NoError(t, err)
	tp, _ := NewTuple(1, "a")
	two, err := NewTwoDimData(MustDimension("x", ""), MustDimension("y", ""), []Tuple{tp})
	require.NoError(t, err)
	tr, _ := NewTriple(1, "a", true)
	three, err := NewThreeDimData(MustDimension("x", ""), MustDimension("y", ""), MustDimension("z", ""), []Triple{tr})
	require.NoError(t, err)

	for _, original := range []DataContent{single, one, two, three} {
		t.Run(original.Kind().String(), func(t *testing.T) {
			clone := original.CloneData()

			assert.NotSame(t, original, clone)
			assert.Equal(t, original, clone)

			dims := clone.Dimensions()
			require.NoError(t, dims[0].SetName("renamed"))
			require.NoError(t, clone.SetDimensions(dims...))

			assert.Equal(t, "renamed", clone.Dimensions()[0].Name())
			assert.NotEqual(t, "renamed", original.Dimensions()[0].Name())
		})
	}
}

func TestSetDimensions_WrongArity(t *testing.T) {
	d, err := NewSingleData(MustDimension("money", "EUR"), 1.0)
	require.NoError(t, err)

	err = d.SetDimensions(MustDimension("a", ""), MustDimension("b", ""))

	explErr := requireKind(t, err, ErrMissingArgument)
	assert.Equal(t, "expected 1 dimensions, got 2", explErr.Message)
	assert.Equal(t, "money", d.Dimension().Name())
}
