package locale

// English returns the built-in "en" table.
func English() Symbols {
	return Symbols{
		Months: [12]string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
		ShortMonths: [12]string{
			"Jan", "Feb", "Mar", "Apr", "May", "Jun",
			"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
		},
		Weekdays: [7]string{
			"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
		},
		ShortWeekdays:     [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
		Eras:              [2]string{"BC", "AD"},
		AmPm:              [2]string{"AM", "PM"},
		DecimalSeparator:  ".",
		GroupingSeparator: ",",
	}
}

// German returns the built-in "de" table.
func German() Symbols {
	return Symbols{
		Months: [12]string{
			"Januar", "Februar", "März", "April", "Mai", "Juni",
			"Juli", "August", "September", "Oktober", "November", "Dezember",
		},
		ShortMonths: [12]string{
			"Jan", "Feb", "Mär", "Apr", "Mai", "Jun",
			"Jul", "Aug", "Sep", "Okt", "Nov", "Dez",
		},
		Weekdays: [7]string{
			"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag",
		},
		ShortWeekdays:     [7]string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"},
		Eras:              [2]string{"v. Chr.", "n. Chr."},
		AmPm:              [2]string{"AM", "PM"},
		DecimalSeparator:  ",",
		GroupingSeparator: ".",
	}
}

// French returns the built-in "fr" table. The grouping separator is a
// no-break space.
func French() Symbols {
	return Symbols{
		Months: [12]string{
			"janvier", "février", "mars", "avril", "mai", "juin",
			"juillet", "août", "septembre", "octobre", "novembre", "décembre",
		},
		ShortMonths: [12]string{
			"janv.", "févr.", "mars", "avr.", "mai", "juin",
			"juil.", "août", "sept.", "oct.", "nov.", "déc.",
		},
		Weekdays: [7]string{
			"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi",
		},
		ShortWeekdays:     [7]string{"dim.", "lun.", "mar.", "mer.", "jeu.", "ven.", "sam."},
		Eras:              [2]string{"av. J.-C.", "ap. J.-C."},
		AmPm:              [2]string{"AM", "PM"},
		DecimalSeparator:  ",",
		GroupingSeparator: "\u00a0",
	}
}

func builtins() map[string]Symbols {
	return map[string]Symbols{
		"en": English(),
		"de": German(),
		"fr": French(),
	}
}
