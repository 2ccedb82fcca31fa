package column

// UI names a widget used to render a column in a form, list or search.
// The empty UI means "renderer default".
type UI string

// Widgets known to the bundled renderers. Hosts may use any other name.
const (
	UISelect       UI = "select"
	UIRecordSelect UI = "record_select"
	UICalendar     UI = "calendar"
	UICheckbox     UI = "checkbox"
	UITextarea     UI = "textarea"
	UIBoolean      UI = "boolean"
	UIHidden       UI = "hidden"
	UIPassword     UI = "password"
	UINumber       UI = "number"
	UIEmail        UI = "email"
)

// Aggregate names the calculation shown below a list column.
type Aggregate string

const (
	AggregateSum     Aggregate = "sum"
	AggregateAverage Aggregate = "avg"
	AggregateCount   Aggregate = "count"
	AggregateMinimum Aggregate = "min"
	AggregateMaximum Aggregate = "max"
)
