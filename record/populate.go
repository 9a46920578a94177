package record

import (
	"strconv"
)

// Populate builds n fixture records: id i, numeric i%100, prefix+i and
// i+prefix.
func Populate(prefix string, n int) Collection {
	data := make(Collection, 0, n)
	for i := 0; i < n; i++ {
		s := strconv.Itoa(i)
		data = append(data, Record{
			Id:      uint32(i),
			Numeric: int32(i % 100),
			TextA:   prefix + s,
			TextB:   s + prefix,
		})
	}
	return data
}
