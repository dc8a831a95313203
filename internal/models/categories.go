package models

// CategoryChoice pairs the stored category value with its display label.
type CategoryChoice struct {
	Value string
	Label string
}

// CategoryChoices is the fixed selection list for portfolio items, in form
// order. The first entry is the default when nothing is selected. The
// storage layer does not constrain the column; only the form does.
var CategoryChoices = []CategoryChoice{
	{Value: "Video Editing", Label: "Video Editing"},
	{Value: "Cards", Label: "Event & Digital Cards"},
	{Value: "Posters", Label: "Posters & Visiting Cards"},
	{Value: "Marketing", Label: "Digital Marketing"},
}

// ValidCategory reports whether value is one of the fixed choices.
func ValidCategory(value string) bool {
	for _, c := range CategoryChoices {
		if c.Value == value {
			return true
		}
	}
	return false
}

// DefaultCategory is the first selection-list option.
func DefaultCategory() string {
	return CategoryChoices[0].Value
}
