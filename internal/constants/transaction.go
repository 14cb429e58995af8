package constants

const (
	// Date Layout
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"

	AmountPlaces = 2
)
