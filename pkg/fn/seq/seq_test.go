package seq

import (
	"errors"
	"slices"
	"strconv"
	"testing"

	"github.com/ib-77/optres/internal/records"
	"github.com/ib-77/optres/pkg/fn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	ages  = []int{22, 20, 29, 66, 42, 74, 15, 33, 45, 6}
	names = []string{"John", "Paul", "George", "Ringo", "Pete", "John", "Paul", "George", "Ringo", "Pete"}
)

func sources() []records.SourceObject {
	return []records.SourceObject{
		{ID: 1, Name: "Object 1", Description: "This is the first element in the list", Value: 1.0},
		{ID: 2, Name: "Object 2", Description: "This is the second element in the list", Value: 2.0},
		{ID: 3, Name: "Object 3", Description: "This is the third element in the list", Value: 3.0},
	}
}

func assertMapped(t *testing.T, source records.SourceObject, target records.TargetObject) {
	t.Helper()
	id, err := records.Identifier(source.ID)
	require.NoError(t, err)
	assert.Equal(t, id, target.ID)
	assert.Equal(t, source.Name, target.Name)
	assert.Equal(t, source.Description, target.Description)
	assert.Equal(t, source.Value, target.Value)
}

func TestRange(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{3, 4, 5}, slices.Collect(Range(3, 3)))
	assert.Empty(t, slices.Collect(Range(0, 0)))
}

func TestForEachMap_BuildsPersons(t *testing.T) {
	t.Parallel()

	persons := slices.Collect(ForEachMap(Range(0, 10), func(_ int, index int) records.Person {
		return records.Person{FirstName: names[index], Age: ages[index]}
	}))

	require.Len(t, persons, 10)
	for i, p := range persons {
		assert.Equal(t, names[i], p.FirstName)
		assert.Equal(t, ages[i], p.Age)
	}
}

func TestForEach_IsLazy(t *testing.T) {
	t.Parallel()

	var persons []records.Person
	enumerable := ForEach(Range(0, 10), func(_ int, index int) {
		persons = append(persons, records.Person{FirstName: names[index], Age: ages[index]})
	})

	// nothing has been enumerated yet
	assert.Empty(t, persons)

	assert.Len(t, slices.Collect(enumerable), 10)
	require.Len(t, persons, 10)
	for i, p := range persons {
		assert.Equal(t, names[i], p.FirstName)
		assert.Equal(t, ages[i], p.Age)
	}
}

func TestForEach_PartialEnumeration(t *testing.T) {
	t.Parallel()

	calls := 0
	enumerable := ForEach(slices.Values([]string{"a", "b", "c", "d"}), func(string, int) { calls++ })

	taken := 0
	for range enumerable {
		taken++
		if taken == 2 {
			break
		}
	}
	assert.Equal(t, 2, calls)

	// enumerating again runs the action again
	assert.Equal(t, []string{"a", "b", "c", "d"}, slices.Collect(enumerable))
	assert.Equal(t, 6, calls)
}

func TestForEach_PassesIndex(t *testing.T) {
	t.Parallel()

	var indexes []int
	out := slices.Collect(ForEach(slices.Values([]string{"x", "y"}), func(_ string, i int) {
		indexes = append(indexes, i)
	}))
	assert.Equal(t, []string{"x", "y"}, out)
	assert.Equal(t, []int{0, 1}, indexes)
}

func TestMap_AllSucceed(t *testing.T) {
	t.Parallel()

	in := sources()
	results := slices.Collect(Map(slices.Values(in), records.MustTarget))

	require.Len(t, results, len(in))
	for i, r := range results {
		require.True(t, r.IsOk(), "element %d", i)
		assertMapped(t, in[i], r.Unwrap())
	}
}

func TestMap_OneFailureDoesNotStopOthers(t *testing.T) {
	t.Parallel()

	in := sources()
	in[1].ID = -1

	results := slices.Collect(Map(slices.Values(in), records.MustTarget))
	require.Len(t, results, 3)
	assert.True(t, results[0].IsOk())
	assert.True(t, results[1].IsErr())
	assert.True(t, results[2].IsOk())

	_, original := records.ToTarget(in[1])
	assert.PanicsWithError(t, original.Error(), func() { results[1].Unwrap() })

	oks := slices.Collect(Oks(slices.Values(results)))
	require.Len(t, oks, 2)
	assertMapped(t, in[0], oks[0])
	assertMapped(t, in[2], oks[1])

	errs := slices.Collect(Errs(slices.Values(results)))
	require.Len(t, errs, 1)
	assert.EqualError(t, errs[0], original.Error())
}

func TestMap_FirstElementFails(t *testing.T) {
	t.Parallel()

	in := sources()
	in[0].ID = -1

	results := slices.Collect(Map(slices.Values(in), records.MustTarget))
	oks, errs := Partition(slices.Values(results))

	assert.Len(t, errs, 1)
	require.Len(t, oks, 2)
	for i, target := range oks {
		assertMapped(t, in[i+1], target)
	}
}

func TestMap_IsLazy(t *testing.T) {
	t.Parallel()

	calls := 0
	mapped := Map(slices.Values([]int{1, 2, 3}), func(v int) int {
		calls++
		return v * 10
	})
	assert.Equal(t, 0, calls)

	for r := range mapped {
		assert.Equal(t, fn.Ok(10), r)
		break
	}
	assert.Equal(t, 1, calls)
}

func TestMapOption_And_Somes(t *testing.T) {
	t.Parallel()

	parse := func(s string) int {
		v, err := strconv.Atoi(s)
		if err != nil {
			panic(err)
		}
		return v
	}

	options := slices.Collect(MapOption(slices.Values([]string{"1", "x", "0", "3"}), parse))
	assert.Equal(t, []fn.Option[int]{fn.Some(1), fn.None[int](), fn.None[int](), fn.Some(3)}, options)
	assert.Equal(t, []int{1, 3}, slices.Collect(Somes(slices.Values(options))))
}

func TestTry_And_Then(t *testing.T) {
	t.Parallel()

	results := Then(Try(slices.Values([]string{"1", "x", "3"}), strconv.Atoi), func(v int) int { return v * 2 })
	oks, errs := Partition(results)

	assert.Equal(t, []int{2, 6}, oks)
	require.Len(t, errs, 1)
	var numErr *strconv.NumError
	assert.True(t, errors.As(errs[0], &numErr))
}
