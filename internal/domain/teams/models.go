package teams

// Team is the seed description of a franchise taken from the current standings.
type Team struct {
	FullName         *string
	Abbrev           *string
	CommonName       *string
	Conference       *string
	ConferenceAbbrev *string
	Division         *string
	DivisionAbbrev   *string
	LogoURL          *string
}
