package models

// WeightEntry is a single body-weight measurement owned by a user. Deleting
// the owner cascades to its entries.
type WeightEntry struct {
	// ID is assigned by the store on creation.
	ID int64

	// UserID references the owning User.
	UserID int64

	// Weight is strictly between 0 and 1000 (exclusive both ends).
	Weight float64

	// Date is the measurement date in YYYY-MM-DD form.
	Date string

	// Notes is optional free text, at most 1000 characters.
	Notes string
}
