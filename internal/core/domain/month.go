package domain

// MonthAvailability describes one calendar month that holds live entries.
type MonthAvailability struct {
	OffsetMonth int    `json:"offsetMonth"`
	Label       string `json:"month"`
	Count       int    `json:"count"`
}

// MonthPage is every live entry of one calendar month, newest first.
type MonthPage struct {
	Entries     []Entry `json:"entries"`
	HasMore     bool    `json:"hasMore"`
	OffsetMonth int     `json:"offsetMonth"`
	MonthLabel  string  `json:"month"`
}
