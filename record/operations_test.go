package record

import (
	"context"
	"slices"
	"testing"

	. "github.com/fulldump/biff"
)

func ids(c Collection) []uint32 {
	result := make([]uint32, 0, len(c))
	for _, r := range c {
		result = append(result, r.Id)
	}
	return result
}

func TestPopulate(t *testing.T) {
	data := Populate("testdata", 3)

	AssertEqual(data, Collection{
		{Id: 0, Numeric: 0, TextA: "testdata0", TextB: "0testdata"},
		{Id: 1, Numeric: 1, TextA: "testdata1", TextB: "1testdata"},
		{Id: 2, Numeric: 2, TextA: "testdata2", TextB: "2testdata"},
	})
	AssertEqual(Populate("x", 250)[249].Numeric, int32(49))
}

func TestFilter(t *testing.T) {
	Alternative("Filter", func(a *A) {

		data := Populate("testdata", 1000)
		original := slices.Clone(data)

		a.Alternative("Text field A", func(a *A) {
			result := Filter(data, TextFieldA.Match("testdata50"))
			AssertEqual(ids(result), []uint32{50, 500, 501, 502, 503, 504, 505, 506, 507, 508, 509})
		})

		a.Alternative("Numeric field", func(a *A) {
			result := data.Filter(NumericField.Match(24))
			AssertEqual(ids(result), []uint32{24, 124, 224, 324, 424, 524, 624, 724, 824, 924})
		})

		a.Alternative("Id field", func(a *A) {
			result := Filter(data, IdField.Match(100))
			AssertEqual(result, Collection{data[100]})
		})

		a.Alternative("Match all preserves order", func(a *A) {
			result := Filter(data, MatchAll)
			AssertEqual(result, original)
		})

		a.Alternative("No match", func(a *A) {
			result := Filter(data, TextFieldB.Match("nothing like this"))
			AssertNotNil(result)
			AssertEqual(len(result), 0)
		})

		a.Alternative("Result does not alias source", func(a *A) {
			result := Filter(data, IdField.Match(3))
			result[0].TextA = "changed"
			AssertEqual(data[3].TextA, "testdata3")
		})

		AssertEqual(data, original)
	})
}

func TestFilter_EmptyCollection(t *testing.T) {
	calls := 0
	m := MatchFunc(func(*Record) bool {
		calls++
		return true
	})

	result := Filter(Collection{}, m)
	AssertEqual(len(result), 0)
	AssertEqual(calls, 0)

	result = Filter(nil, m)
	AssertEqual(len(result), 0)
	AssertEqual(calls, 0)
}

func TestFilterParallel(t *testing.T) {
	Alternative("FilterParallel", func(a *A) {

		data := Populate("testdata", 100_000)

		a.Alternative("Same as Filter", func(a *A) {
			m := TextFieldB.Match("7testdata")
			result, err := FilterParallel(context.Background(), data, m, 8)
			AssertNil(err)
			AssertEqual(result, Filter(data, m))
		})

		a.Alternative("Uneven workers", func(a *A) {
			m := NumericField.Match(99)
			result, err := FilterParallel(context.Background(), data, m, 7)
			AssertNil(err)
			AssertEqual(result, Filter(data, m))
		})

		a.Alternative("Single worker", func(a *A) {
			result, err := FilterParallel(context.Background(), data, MatchAll, 1)
			AssertNil(err)
			AssertEqual(len(result), len(data))
		})

		a.Alternative("Canceled", func(a *A) {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			result, err := FilterParallel(ctx, data, MatchAll, 4)
			AssertEqual(err, context.Canceled)
			AssertNil(result)
		})
	})
}

func TestDeleteById(t *testing.T) {
	Alternative("DeleteById", func(a *A) {

		data := Populate("testdata", 1000)

		a.Alternative("Existing id", func(a *A) {
			AssertEqual(len(Filter(data, IdField.Match(100))), 1)

			AssertTrue(DeleteById(&data, 100))
			AssertEqual(len(data), 999)
			AssertEqual(len(Filter(data, IdField.Match(100))), 0)

			// last record takes the vacated slot
			AssertEqual(data[100].Id, uint32(999))

			a.Alternative("Twice", func(a *A) {
				AssertFalse(data.Delete(100))
				AssertEqual(len(data), 999)
			})
		})

		a.Alternative("Missing id", func(a *A) {
			before := slices.Clone(data)
			AssertFalse(DeleteById(&data, 5000))
			AssertEqual(data, before)
		})

		a.Alternative("Last record", func(a *A) {
			AssertTrue(DeleteById(&data, 999))
			AssertEqual(len(data), 999)
			AssertEqual(data[998].Id, uint32(998))
			AssertEqual(len(Filter(data, IdField.Match(999))), 0)
		})

		a.Alternative("Only record", func(a *A) {
			one := Collection{{Id: 1}}
			AssertTrue(one.Delete(1))
			AssertEqual(one.Len(), 0)
		})

		a.Alternative("Empty collection", func(a *A) {
			empty := Collection{}
			AssertFalse(DeleteById(&empty, 0))
			AssertEqual(empty.Len(), 0)
		})

		a.Alternative("Duplicated id removes the first one", func(a *A) {
			dup := Collection{{Id: 1, TextA: "first"}, {Id: 2}, {Id: 1, TextA: "second"}}
			AssertTrue(DeleteById(&dup, 1))
			AssertEqual(dup, Collection{{Id: 1, TextA: "second"}, {Id: 2}})
		})
	})
}
