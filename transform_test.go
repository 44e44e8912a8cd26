package lazy

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestFilterProcedural(t *testing.T) {
	assert := assert.New(t)

	seq := FromSlice(hundredInts)
	result := Filter(seq, isEven)

	assert.IsType(&Seq[int]{}, result)

	iter := result.Iterator()
	assert.IsType(&filterIterator[int]{}, iter)

	out := []int{}
	ctx := context.Background()
	for iter.Next(ctx) {
		out = append(out, iter.Get())
	}

	assert.EqualValues(hundredIntsEven, out)
}

func TestFilterInts(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		f     FilterFunc[int]
		want  []int
	}{
		{
			name:  "find even ints from list",
			input: hundredInts,
			f:     isEven,
			want:  hundredIntsEven,
		},
		{
			name:  "find even ints from only odds",
			input: []int{1, 3, 5, 7, 9},
			f:     isEven,
			want:  []int{},
		},
		{
			name:  "greater than six",
			input: []int{5, 6, 7, 8},
			f:     func(i int) bool { return i > 6 },
			want:  []int{7, 8},
		},
		{
			name:  "empty list",
			input: []int{},
			f:     isEven,
			want:  []int{},
		},
		{
			name:  "null list",
			input: nil,
			f:     isEven,
			want:  []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert := assert.New(t)

			got, err := FromSlice(tt.input).Filter(tt.f).ToSlice()
			assert.NoError(err)
			assert.Equal(tt.want, got)

			// every retained element satisfies the predicate
			for _, v := range got {
				assert.True(tt.f(v))
			}
			assert.LessOrEqual(len(got), len(tt.input))
		})
	}
}

func TestMapInts(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		want  []int
	}{
		{
			name:  "double a hundred ints",
			input: hundredInts,
			want:  doubleHundredInts,
		},
		{
			name:  "empty list",
			input: []int{},
			want:  []int{},
		},
		{
			name:  "null list",
			input: nil,
			want:  []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert := assert.New(t)

			got, err := FromSlice(tt.input).Map(double).ToSlice()
			assert.NoError(err)
			assert.Equal(tt.want, got)
			assert.Len(got, len(tt.input))
		})
	}
}

func TestMapProceduralChangesType(t *testing.T) {
	assert := assert.New(t)

	got, err := Map(FromSlice([]int{5, 6, 7, 8}), strconv.Itoa).ToSlice()
	assert.NoError(err)
	assert.Equal([]string{"5", "6", "7", "8"}, got)
}

func TestMapIndexed(t *testing.T) {
	assert := assert.New(t)

	s := MapIndexed(FromSlice([]string{"a", "b", "c"}), func(v string, i int) string {
		return strconv.Itoa(i) + v
	})

	// positions start from zero on each traversal
	for range 2 {
		got, err := s.ToSlice()
		assert.NoError(err)
		assert.Equal([]string{"0a", "1b", "2c"}, got)
	}

	got, err := FromSlice([]int{5, 6, 7, 8}).MapIndexed(func(v, i int) int { return v * i }).ToSlice()
	assert.NoError(err)
	assert.Equal([]int{0, 6, 14, 24}, got)

	// positions are those of the mapped sequence, after upstream filters
	got, err = FromSlice([]int{5, 6, 7, 8}).Filter(isEven).MapIndexed(func(_, i int) int { return i }).ToSlice()
	assert.NoError(err)
	assert.Equal([]int{0, 1}, got)
}

func TestFilterIndexed(t *testing.T) {
	assert := assert.New(t)

	var seen []int
	everyOther := FromSlice([]int{5, 6, 7, 8, 9}).FilterIndexed(func(_ int, i int) bool {
		seen = append(seen, i)
		return i%2 == 0
	})

	for range 2 {
		seen = nil
		got, err := everyOther.ToSlice()
		assert.NoError(err)
		assert.Equal([]int{5, 7, 9}, got)
		assert.Equal([]int{0, 1, 2, 3, 4}, seen)
	}

	got, err := FilterIndexed(Of("x", "y", "z"), func(_ string, i int) bool { return i > 0 }).ToSlice()
	assert.NoError(err)
	assert.Equal([]string{"y", "z"}, got)
}

func TestCombinatorsAreLazy(t *testing.T) {
	assert := assert.New(t)

	calls := 0
	counted := func(i int) int {
		calls++
		return i
	}
	pass := func(i int) bool {
		calls++
		return true
	}

	s := FromSlice(hundredInts).
		Map(counted).
		Filter(pass).
		FlatMap(func(i int) []int { calls++; return []int{i} }).
		TakeWhile(pass).
		Skip(1).
		Take(10)
	assert.Equal(0, calls)

	_, err := s.ToSlice()
	assert.NoError(err)
	assert.NotZero(calls)
}

func TestFlatMap(t *testing.T) {
	assert := assert.New(t)

	type order struct {
		id    int
		lines []string
	}
	orders := []order{
		{1, []string{"apple", "pear"}},
		{2, nil},
		{3, []string{"plum"}},
		{4, []string{}},
		{5, []string{"fig", "kiwi"}},
	}

	lines, err := FlatMap(FromSlice(orders), func(o order) []string { return o.lines }).ToSlice()
	assert.NoError(err)
	assert.Equal([]string{"apple", "pear", "plum", "fig", "kiwi"}, lines)

	pairs, err := FromSlice([]int{1, 2, 3}).FlatMap(func(i int) []int { return []int{i, -i} }).ToSlice()
	assert.NoError(err)
	assert.Equal([]int{1, -1, 2, -2, 3, -3}, pairs)

	none, err := FromSlice(orders).FlatMap(func(order) []order { return nil }).ToSlice()
	assert.NoError(err)
	assert.Empty(none)
}

func TestConcat(t *testing.T) {
	assert := assert.New(t)

	a := FromSlice([]int{1, 2})
	b := FromSlice([]int{3, 4, 5})

	got, err := a.Concat(b).ToSlice()
	assert.NoError(err)
	assert.Equal([]int{1, 2, 3, 4, 5}, got)

	got, err = FromSlice([]int(nil)).Concat(b).Concat(FromSlice([]int{})).ToSlice()
	assert.NoError(err)
	assert.Equal([]int{3, 4, 5}, got)

	assert.True(a.Concat(b).Restartable())

	ch := make(chan int)
	close(ch)
	assert.False(a.Concat(FromChannel(ch)).Restartable())
}

func TestConcatStopsOnError(t *testing.T) {
	assert := assert.New(t)

	opened := false
	second := FromFunc(func() Iterator[int] {
		opened = true
		return &brokenIterator{}
	})

	_, err := broken(1, 2).Concat(second).ToSlice()
	assert.ErrorIs(err, errBroken)
	assert.False(opened)
}

func TestTake(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		n     int
		want  []int
	}{
		{"take some", []int{5, 6, 7, 8}, 2, []int{5, 6}},
		{"take all", []int{5, 6, 7, 8}, 4, []int{5, 6, 7, 8}},
		{"take more than there are", []int{5, 6, 7, 8}, 10, []int{5, 6, 7, 8}},
		{"take zero", []int{5, 6, 7, 8}, 0, []int{}},
		{"take negative", []int{5, 6, 7, 8}, -1, []int{}},
		{"take from empty", nil, 3, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert := assert.New(t)

			// random access path
			got, err := FromSlice(tt.input).Take(tt.n).ToSlice()
			assert.NoError(err)
			assert.Equal(tt.want, got)

			// sequential path
			got, err = FromSlice(tt.input).Filter(func(int) bool { return true }).Take(tt.n).ToSlice()
			assert.NoError(err)
			assert.Equal(tt.want, got)
		})
	}
}

func TestTakeFromInfiniteSource(t *testing.T) {
	assert := assert.New(t)

	pulls, stopped := 0, false
	got, err := counting(&pulls, &stopped).Take(2).ToSlice()

	assert.NoError(err)
	assert.Equal([]int{1, 2}, got)
	assert.Equal(2, pulls)
	assert.True(stopped)

	// the limit is applied after the upstream operations
	pulls = 0
	got, err = counting(&pulls, nil).Filter(isEven).Take(3).ToSlice()
	assert.NoError(err)
	assert.Equal([]int{2, 4, 6}, got)
	assert.Equal(6, pulls)

	// take zero never pulls
	pulls = 0
	got, err = counting(&pulls, nil).Take(0).ToSlice()
	assert.NoError(err)
	assert.Empty(got)
	assert.Equal(0, pulls)

	assert.NoError(goleak.Find())
}

func TestSkip(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		n     int
		want  []int
	}{
		{"skip some", []int{5, 6, 7, 8}, 2, []int{7, 8}},
		{"skip zero", []int{5, 6, 7, 8}, 0, []int{5, 6, 7, 8}},
		{"skip negative", []int{5, 6, 7, 8}, -3, []int{5, 6, 7, 8}},
		{"skip all", []int{5, 6, 7, 8}, 4, []int{}},
		{"skip more than there are", []int{5, 6, 7, 8}, 9, []int{}},
		{"skip from empty", nil, 1, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert := assert.New(t)

			s := FromSlice(tt.input).Skip(tt.n)
			got, err := s.ToSlice()
			assert.NoError(err)
			assert.Equal(tt.want, got)

			// skipping a slice keeps random access
			_, ok := s.Iterator().(Indexer[int])
			assert.True(ok)

			got, err = FromSlice(tt.input).Map(double).Skip(tt.n).Map(func(i int) int { return i / 2 }).ToSlice()
			assert.NoError(err)
			assert.Equal(tt.want, got)
		})
	}
}

func TestSkipAndTakePaging(t *testing.T) {
	assert := assert.New(t)

	pageSize := 10
	pages := [][]int{}
	for page := 0; ; page++ {
		items, err := FromSlice(hundredInts).Skip(page * pageSize).Take(pageSize).ToSlice()
		assert.NoError(err)
		if len(items) == 0 {
			break
		}
		pages = append(pages, items)
	}

	assert.Len(pages, 10)
	assert.Equal(hundredInts[90:], pages[9])
}

func TestTakeWhile(t *testing.T) {
	assert := assert.New(t)

	small := func(i int) bool { return i < 7 }

	got, err := FromSlice([]int{5, 6, 7, 8, 1, 2}).TakeWhile(small).ToSlice()
	assert.NoError(err)
	// does not resume after 7, even though 1 and 2 are small
	assert.Equal([]int{5, 6}, got)

	got, err = FromSlice([]int{9, 1}).TakeWhile(small).ToSlice()
	assert.NoError(err)
	assert.Empty(got)

	pulls, stopped := 0, false
	got, err = counting(&pulls, &stopped).TakeWhile(func(i int) bool { return i <= 3 }).ToSlice()
	assert.NoError(err)
	assert.Equal([]int{1, 2, 3}, got)
	assert.Equal(4, pulls)
	assert.True(stopped)
}
