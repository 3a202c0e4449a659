package constant

const (
	MinPasswordLength = 6
	MaxNotesLength    = 255

	MinRating = 1
	MaxRating = 5

	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)
