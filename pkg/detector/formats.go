package detector

import "regexp"

// ExportFormat represents a known chat-export stamp format for detection.
type ExportFormat struct {
	Name       string         // Human-readable name
	Pattern    *regexp.Regexp // Compiled regex (set during init)
	PatternStr string         // Pattern string for config output
	Layout     string         // Go time layout for parsing the captured stamp
	Examples   []string       // Example entry prefixes
	Ambiguous  bool           // True if format has date ordering ambiguity (MM/DD vs DD/MM)
}

// DefaultFormats returns the built-in export formats to detect.
// Each pattern matches a full entry stamp including its trailing
// separator; capture group 1 is the bare date-time portion. Formats are
// ordered roughly by specificity (more specific patterns first).
func DefaultFormats() []*ExportFormat {
	formats := []*ExportFormat{
		// Android export, 12-hour clock (US locale)
		{
			Name:       "WhatsApp Android 12-hour",
			PatternStr: `(?m)^(\d{1,2}/\d{1,2}/\d{2}, \d{1,2}:\d{2} [ap]m) - `,
			Layout:     "1/2/06, 3:04 pm",
			Examples:   []string{"12/01/23, 10:15 am - Alice: hello"},
			Ambiguous:  true,
		},
		// Android export, 12-hour clock with four-digit year
		{
			Name:       "WhatsApp Android 12-hour, four-digit year",
			PatternStr: `(?m)^(\d{1,2}/\d{1,2}/\d{4}, \d{1,2}:\d{2} [ap]m) - `,
			Layout:     "1/2/2006, 3:04 pm",
			Examples:   []string{"12/01/2023, 10:15 am - Alice: hello"},
			Ambiguous:  true,
		},
		// Android export, 24-hour clock (international locales)
		{
			Name:       "WhatsApp Android 24-hour",
			PatternStr: `(?m)^(\d{1,2}/\d{1,2}/\d{2}, \d{1,2}:\d{2}) - `,
			Layout:     "2/1/06, 15:04",
			Examples:   []string{"01/12/23, 22:15 - Alice: hello"},
			Ambiguous:  true,
		},
		// Android export, 24-hour clock with four-digit year
		{
			Name:       "WhatsApp Android 24-hour, four-digit year",
			PatternStr: `(?m)^(\d{1,2}/\d{1,2}/\d{4}, \d{1,2}:\d{2}) - `,
			Layout:     "2/1/2006, 15:04",
			Examples:   []string{"01/12/2023, 22:15 - Alice: hello"},
			Ambiguous:  true,
		},
		// Android export, dot-separated date (e.g. German locale)
		{
			Name:       "WhatsApp Android dotted date",
			PatternStr: `(?m)^(\d{1,2}\.\d{1,2}\.\d{2}, \d{1,2}:\d{2}) - `,
			Layout:     "2.1.06, 15:04",
			Examples:   []string{"01.12.23, 22:15 - Alice: hallo"},
		},
		// iOS export, bracketed stamp with seconds, 12-hour clock
		{
			Name:       "WhatsApp iOS bracketed 12-hour",
			PatternStr: `(?m)^\[(\d{1,2}/\d{1,2}/\d{2}, \d{1,2}:\d{2}:\d{2} [AP]M)\] `,
			Layout:     "1/2/06, 3:04:05 PM",
			Examples:   []string{"[12/01/23, 10:15:09 AM] Alice: hello"},
			Ambiguous:  true,
		},
		// iOS export, bracketed stamp with seconds, 24-hour clock
		{
			Name:       "WhatsApp iOS bracketed 24-hour",
			PatternStr: `(?m)^\[(\d{1,2}/\d{1,2}/\d{2}, \d{1,2}:\d{2}:\d{2})\] `,
			Layout:     "2/1/06, 15:04:05",
			Examples:   []string{"[01/12/23, 22:15:09] Alice: hello"},
			Ambiguous:  true,
		},
	}

	// Compile all patterns
	for _, f := range formats {
		f.Pattern = regexp.MustCompile(f.PatternStr)
	}

	return formats
}
