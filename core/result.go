package core

// Result is the drained form of the ResultStream iterator. It is constructed
// once per query, consumed exactly once by a single serializer and never
// mutated after construction.
type Result struct {
	header Header
	meta   *Meta
	rows   []Row
}

// Drain consumes the whole stream into a Result. The stream is closed on
// return, even on error. A single forward pass is all any serializer needs,
// since the header is known before the first row.
func Drain(iter ResultStream) (*Result, error) {
	defer iter.Close()

	result := &Result{
		header: iter.Header(),
		meta:   iter.Meta(),
		rows:   make([]Row, 0),
	}

	for iter.HasNext() {
		row, err := iter.Next()
		if err != nil {
			return nil, err
		}

		result.rows = append(result.rows, row)
	}

	return result, nil
}

// NewResult builds an already materialized result, mainly for tests.
func NewResult(header Header, rows []Row) *Result {
	return &Result{
		header: header,
		meta:   &Meta{},
		rows:   rows,
	}
}

func (r *Result) Header() Header { return r.header }

func (r *Result) Meta() *Meta { return r.meta }

func (r *Result) Rows() []Row { return r.rows }

func (r *Result) Len() int { return len(r.rows) }

func (r *Result) IsEmpty() bool { return len(r.rows) == 0 }
