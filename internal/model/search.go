package model

// SearchQuery filters a listing. Every field is optional.
type SearchQuery struct {
	NameKeyword   *string    `json:"nameKeyword,omitempty"`
	ValueKeyword  *string    `json:"valueKeyword,omitempty"`
	RemarkKeyword *string    `json:"remarkKeyword,omitempty"`
	Types         []Scope    `json:"types,omitempty"`
	DateRange     *DateRange `json:"dateRange,omitempty"`
	// Expression is a CEL predicate over name, value, type and remark.
	Expression *string `json:"expression,omitempty"`
}

// DateRange is accepted as part of a query but not evaluated.
type DateRange struct {
	Start int64 `json:"start"`
	End   int64 `json:"end"`
}
