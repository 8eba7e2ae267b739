package radix

// Standard bases, registered once at package init time, matching the
// classical systems used by historical-astronomy sources (see
// original_source/histropy/units/radices.py, the bottom of the file).
//
// The registry (radixbase.go) remains open to further Register calls by a
// host program, but these seven are always available.
var (
	Decimal               = MustRegister([]int{10}, []int{10}, "decimal", nil)
	Sexagesimal           = MustRegister([]int{60}, []int{60}, "sexagesimal", nil)
	FloatingSexagesimal   = MustRegister([]int{60}, []int{60}, "floating_sexagesimal", nil)
	Historical            = MustRegister([]int{10, 12, 30}, []int{60}, "historical", []string{"", "r ", "s "})
	HistoricalDecimal     = MustRegister([]int{10}, []int{100}, "historical_decimal", nil)
	IntegerAndSexagesimal = MustRegister([]int{10}, []int{60}, "integer_and_sexagesimal", nil)
	Temporal              = MustRegister([]int{10}, []int{24, 60}, "temporal", nil)
)
