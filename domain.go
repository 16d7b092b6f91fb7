package findx

// FilterCriterion selects the comparator applied between a file's
// modification time and the caller's reference time in FilterByDate.
type FilterCriterion string

const (
	FilterGreaterThan    FilterCriterion = ">"
	FilterGreaterOrEqual FilterCriterion = ">="
	FilterEqual          FilterCriterion = "="
	FilterLessOrEqual    FilterCriterion = "<="
	FilterLessThan       FilterCriterion = "<"
)

// OrderCriterion selects the ordering applied by OrderBy.
type OrderCriterion string

const (
	OrderNameAsc      OrderCriterion = "name_asc"
	OrderNameDesc     OrderCriterion = "name_desc"
	OrderModifiedAsc  OrderCriterion = "modified_asc"
	OrderModifiedDesc OrderCriterion = "modified_desc"
)
