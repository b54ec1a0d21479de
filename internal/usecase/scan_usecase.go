package usecase

import (
	"context"
)

// ScanReport summarizes a single inactivity scan run. Failures are counted
// per letter and never abort the run.
type ScanReport struct {
	Scanned   int `json:"scanned"`   // Pending letters examined.
	Delivered int `json:"delivered"` // Letters transitioned to delivered.
	Warned    int `json:"warned"`    // Warning notifications dispatched.
	Skipped   int `json:"skipped"`   // Letters needing no action this run.
	Failed    int `json:"failed"`    // Letters whose processing failed and was isolated.
}

// ScanUsecase defines the interface for the inactivity scanner.
type ScanUsecase interface {
	// RunScan iterates every pending letter, classifies it against the
	// sender's inactivity, and dispatches deliveries and warnings. An error
	// is returned only when the pending set itself cannot be read;
	// per-letter failures are isolated, logged, and counted in the report.
	RunScan(ctx context.Context) (*ScanReport, error)
}
