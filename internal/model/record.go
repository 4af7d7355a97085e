package model

import "time"

// Record is one row of the bonepile worksheet, kept as the strings read from
// the cells. Records are immutable once loaded; identity is row position.
type Record struct {
	SN            string `json:"sn"`
	PIC           string `json:"pic"`
	Result        string `json:"result"`
	NVDisposition string `json:"nv_disposition"`
	IGSAction     string `json:"igs_action"`
	IGSStatus     string `json:"igs_status"`
	// BPDuration is the optional bonepile-duration column (days), used only
	// for the duration statistics block.
	BPDuration string `json:"-"`
}

// DurationStats summarizes the bp_duration column over completed records.
type DurationStats struct {
	Count  int     `json:"count"`
	Avg    float64 `json:"avg"`
	Median float64 `json:"median"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	StdDev float64 `json:"std_dev"`
}

// Summary holds every aggregate the dashboard serves. It is built once per
// upload by the stats package and never mutated afterwards; the store swaps
// whole snapshots so readers only ever see a complete Summary.
type Summary struct {
	TotalTrays            int `json:"total_trays"`
	FailUnique            int `json:"total_fail_unique"`
	PassUnique            int `json:"total_pass_unique"`
	FailRows              int `json:"total_fail"`
	DispositionTotal      int `json:"total_dispositions"`
	CompletedDispositions int `json:"completed_dispositions"`
	FailEmptyActionRows   int `json:"fail_empty_action"`
	FailEmptyActionUnique int `json:"fail_empty_action_unique"`
	InProcessRows         int `json:"in_process"`
	InProcessUnique       int `json:"in_process_unique"`
	WaitingMaterialRows   int `json:"waiting_material"`
	WaitingMaterialUnique int `json:"waiting_material_unique"`

	Duration DurationStats `json:"duration"`

	// Drill-down material, not part of the summary payload. Each list keeps
	// the original row order; SN lists keep first-occurrence order.
	TotalSNs        []string `json:"-"`
	FailSNs         []string `json:"-"`
	PassSNs         []string `json:"-"`
	FailEmptyAction []Record `json:"-"`
	InProcess       []Record `json:"-"`
	WaitingMaterial []Record `json:"-"`

	Filename   string    `json:"filename"`
	Sheet      string    `json:"sheet"`
	RowCount   int       `json:"row_count"`
	UploadedAt time.Time `json:"uploaded_at"`

	// ArchiveKey is the object-storage key of the raw workbook, when the
	// upload archive is configured.
	ArchiveKey string `json:"-"`
}
