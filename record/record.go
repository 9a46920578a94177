package record

// Record is a fixed-shape row. Id is expected to be unique inside a
// collection but nothing here enforces it.
type Record struct {
	Id      uint32 `json:"id"`
	Numeric int32  `json:"numeric"`
	TextA   string `json:"text_a"`
	TextB   string `json:"text_b"`
}

// Collection owns its records by value. Order is only meaningful until the
// first deletion.
type Collection []Record

func (c Collection) Len() int {
	return len(c)
}

func (c Collection) Filter(m Matcher) Collection {
	return Filter(c, m)
}

func (c *Collection) Delete(id uint32) bool {
	return DeleteById(c, id)
}
