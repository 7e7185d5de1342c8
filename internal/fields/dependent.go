package fields

// DependentKind selects the transform a dependent field applies to its
// upstream value.
type DependentKind int

const (
	// DependentYear extracts the year regardless of precision.
	DependentYear DependentKind = iota
	// DependentMonth extracts the month only from full-precision dates.
	DependentMonth
	// DependentDay extracts the day only from full-precision dates.
	DependentDay
	// DependentDate strips the precision annotation, leaving the plain
	// calendar date stored as the canonical value.
	DependentDate
)

// Dependent declares an output field computed from an already-converted
// field value rather than from raw tags.
type Dependent struct {
	Field  string
	Source string
	Kind   DependentKind
}

// DependentCatalog runs after Catalog. Note that date and original_date
// appear here too: their Date values are re-derived into plain calendar
// dates before storage.
var DependentCatalog = []Dependent{
	{Field: "year", Source: "date", Kind: DependentYear},
	{Field: "month", Source: "date", Kind: DependentMonth},
	{Field: "day", Source: "date", Kind: DependentDay},
	{Field: "original_year", Source: "original_date", Kind: DependentYear},
	{Field: "original_month", Source: "original_date", Kind: DependentMonth},
	{Field: "original_day", Source: "original_date", Kind: DependentDay},
	{Field: "date", Source: "date", Kind: DependentDate},
	{Field: "original_date", Source: "original_date", Kind: DependentDate},
}

// Get computes the dependent value from the converted field map. The second
// return is false when the upstream field is absent or not a date; absence
// is never an error.
func (d Dependent) Get(values map[string]any) (any, bool) {
	date, ok := values[d.Source].(Date)
	if !ok {
		return nil, false
	}
	switch d.Kind {
	case DependentYear:
		return int64(date.Year), true
	case DependentMonth:
		if date.Precision != PrecisionFull {
			return nil, false
		}
		return int64(date.Month), true
	case DependentDay:
		if date.Precision != PrecisionFull {
			return nil, false
		}
		return int64(date.Day), true
	case DependentDate:
		return date.Time(), true
	default:
		return nil, false
	}
}

// Finalize applies the dependent catalog to a converted field map and
// returns the completed record values as a new map. Every dependent reads
// from the original converted values, so the date fields it overwrites do
// not disturb the year/month/day derivations.
func Finalize(values map[string]any) map[string]any {
	out := make(map[string]any, len(values)+len(DependentCatalog))
	for k, v := range values {
		out[k] = v
	}
	for _, dependent := range DependentCatalog {
		if v, ok := dependent.Get(values); ok {
			out[dependent.Field] = v
		}
	}
	return out
}
