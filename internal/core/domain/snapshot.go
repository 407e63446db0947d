package domain

import "time"

// Snapshot is a bulk copy of the ledger handed to the backup collaborator.
type Snapshot struct {
	TakenAt    time.Time  `json:"date"`
	Expenses   []Entry    `json:"expenses"`
	Incomes    []Entry    `json:"incomes"`
	Categories []Category `json:"categories"`
}
