package domain

// Vehicle is the fleet entry a transfer request may reference. This module
// never writes vehicles; they are joined onto transfer requests on fetch.
type Vehicle struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Class    string  `json:"class"`
	Seats    int     `json:"seats"`
	ImageURL *string `json:"imageUrl"`
}
