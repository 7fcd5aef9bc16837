package bill

import (
	"dinehub/model"
	"dinehub/session"
)

// Summary is the running bill for a dine-in session.
type Summary struct {
	Total     float64 `json:"total"`
	ItemCount int     `json:"item_count"`
}

// Aggregate folds all orders of a session into a bill. Total is the sum of
// each order's stored total; it is never recomputed from line items, so a
// manual adjustment made on an order is reflected here as-is.
func Aggregate(orders []model.Order) Summary {
	var s Summary
	for _, o := range orders {
		s.Total += o.Total
		for _, it := range o.Items {
			s.ItemCount += it.Quantity
		}
	}
	return s
}

// Query tracks the load state of a session's bill subscription. With no
// session id the query is never issued (Absent); with one it starts Loading
// until Resolve delivers the first value.
type Query struct {
	sessionID string
	result    session.Result[Summary]
}

func NewQuery(sessionID string) *Query {
	q := &Query{sessionID: sessionID}
	if sessionID == "" {
		q.result = session.AbsentResult[Summary]()
	} else {
		q.result = session.LoadingResult[Summary]()
	}
	return q
}

// Resolve records the first (or a subsequent) delivery of the order list.
func (q *Query) Resolve(orders []model.Order) {
	q.result = session.PresentResult(Aggregate(orders))
}

// IsLoading is true iff a session id is present and no value has arrived.
func (q *Query) IsLoading() bool {
	return q.result.IsLoading()
}

// Summary returns the aggregated bill, zero-valued until data arrives.
func (q *Query) Summary() Summary {
	s, ok := q.result.Value()
	if !ok {
		return Summary{}
	}
	return s
}

func (q *Query) Result() session.Result[Summary] {
	return q.result
}
