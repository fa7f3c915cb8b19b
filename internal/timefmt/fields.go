package timefmt

type field struct {
	// reference-layout element
	token      string
	variable   bool
	fraction   bool
	twelveHour bool
	twoDigit   bool
	marker     bool
}

type fieldKey struct {
	letter byte
	width  int
}

//nolint:gochecknoglobals // ok
var fields = map[fieldKey]*field{
	{'y', 4}: {token: "2006"},
	{'y', 2}: {token: "06", twoDigit: true},
	{'M', 2}: {token: "01"},
	{'M', 1}: {token: "1", variable: true},
	{'d', 2}: {token: "02"},
	{'d', 1}: {token: "2", variable: true},
	{'H', 2}: {token: "15"},
	{'h', 2}: {token: "03", twelveHour: true},
	{'h', 1}: {token: "3", variable: true, twelveHour: true},
	{'m', 2}: {token: "04"},
	{'m', 1}: {token: "4", variable: true},
	{'s', 2}: {token: "05"},
	{'s', 1}: {token: "5", variable: true},
	{'S', 3}: {token: "000", fraction: true},
	{'a', 1}: {token: "PM", marker: true},
}

func lookupField(letter byte, width int) (*field, bool) {
	f, ok := fields[fieldKey{letter, width}]
	return f, ok
}
