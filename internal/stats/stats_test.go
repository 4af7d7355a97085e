package stats

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"bonepiledash/internal/model"
)

func TestIsValidSN(t *testing.T) {
	tests := []struct {
		sn    string
		valid bool
	}{
		{"1830000000001", true},
		{"1830125000128", true},
		{"1830125000128.0", true}, // float-formatted cell
		{" 1830000000001 ", true},
		{"1820000000001", false}, // wrong prefix
		{"18300000001", false},   // 11 digits
		{"18300000000001", false}, // 14 digits
		{"183000000000a", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.sn, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidSN(tt.sn))
		})
	}
}

func TestIsFail(t *testing.T) {
	assert.True(t, IsFail(model.Record{PIC: "IGS", Result: "FAIL"}))
	assert.True(t, IsFail(model.Record{PIC: " IGS ", Result: " FAIL "}))
	assert.False(t, IsFail(model.Record{PIC: "igs", Result: "FAIL"}))
	assert.False(t, IsFail(model.Record{PIC: "IGS", Result: "Fail"}))
	assert.False(t, IsFail(model.Record{PIC: "NV", Result: "FAIL"}))
	assert.False(t, IsFail(model.Record{PIC: "IGS", Result: "ALL PASS"}))
}

func TestClassify_BucketPrecedence(t *testing.T) {
	// Matches both keyword families; the more specific bucket wins.
	r := model.Record{
		SN:        "1830000000001",
		PIC:       "IGS",
		Result:    "FAIL",
		IGSAction: "sent to strata lab",
		IGSStatus: "Waiting for Material - CX9",
	}
	c := Classify(r)
	assert.True(t, c.ValidSN)
	assert.True(t, c.Fail)
	assert.Equal(t, BucketWaitingMaterial, c.Bucket)

	// Plain in-process status.
	r.IGSStatus = "Testing at RIN"
	assert.Equal(t, BucketInProcess, Classify(r).Bucket)

	// Empty action beats everything.
	r.IGSAction = ""
	r.IGSStatus = "Waiting for Material - CX9"
	assert.Equal(t, BucketPending, Classify(r).Bucket)

	// Non-fail rows never go pending.
	r = model.Record{SN: "1830000000001", PIC: "NV", Result: "ALL PASS", IGSStatus: "done"}
	assert.Equal(t, BucketCompleted, Classify(r).Bucket)
}

func rec(sn, pic, result, action, status string) model.Record {
	return model.Record{SN: sn, PIC: pic, Result: result, IGSAction: action, IGSStatus: status}
}

func TestAggregate_Counts(t *testing.T) {
	records := []model.Record{
		rec("1830000000001", "NV", "ALL PASS", "", ""),
		rec("1830000000002", "IGS", "FAIL", "", ""),                              // fail, empty action -> pending
		rec("1830000000002", "IGS", "FAIL", "retest", "Testing"),                 // duplicate SN, in-process
		rec("1830000000003", "IGS", "FAIL", "swap tray", "Waiting for Material"), // waiting material
		rec("1830000000004", "IGS", "FAIL", "nan", ""),                           // "nan" action counts empty
		rec("18300000001", "IGS", "FAIL", "", ""),                                // invalid SN, ignored
		rec("1830000000005", "NV", "ALL PASS", "", "In Progress"),                // pass row, in-process status
	}

	s := Aggregate(records)

	assert.Equal(t, 5, s.TotalTrays)
	assert.Equal(t, 4, s.FailRows)
	assert.Equal(t, 3, s.FailUnique)
	assert.Equal(t, 2, s.PassUnique)

	// Pass + Fail == total distinct valid SNs.
	assert.Equal(t, s.TotalTrays, s.FailUnique+s.PassUnique)

	// Disposition total counts duplicate SNs, rows only.
	assert.Equal(t, 6, s.DispositionTotal)

	// Completed == total - fail rows with empty IGS Action.
	assert.Equal(t, 2, s.FailEmptyActionRows)
	assert.Equal(t, s.DispositionTotal-s.FailEmptyActionRows, s.CompletedDispositions)
	assert.Equal(t, 4, s.CompletedDispositions)
	assert.Equal(t, 2, s.FailEmptyActionUnique)

	assert.Equal(t, 2, s.InProcessRows) // testing row + pass row with In Progress
	assert.Equal(t, 2, s.InProcessUnique)
	assert.Equal(t, 1, s.WaitingMaterialRows)
	assert.Equal(t, 1, s.WaitingMaterialUnique)
}

func TestAggregate_MaterialExcludedFromInProcess(t *testing.T) {
	s := Aggregate([]model.Record{
		rec("1830000000001", "IGS", "FAIL", "act", "Waiting for Material - CX9"),
	})
	assert.Equal(t, 1, s.WaitingMaterialRows)
	assert.Equal(t, 0, s.InProcessRows)
	assert.Equal(t, "1830000000001", s.WaitingMaterial[0].SN)
}

func TestAggregate_OrderPreserved(t *testing.T) {
	s := Aggregate([]model.Record{
		rec("1830000000003", "NV", "ALL PASS", "", ""),
		rec("1830000000001", "IGS", "FAIL", "", ""),
		rec("1830000000002", "NV", "ALL PASS", "", ""),
		rec("1830000000003", "NV", "ALL PASS", "", ""),
	})
	assert.Equal(t, []string{"1830000000003", "1830000000001", "1830000000002"}, s.TotalSNs)
	assert.Equal(t, []string{"1830000000001"}, s.FailSNs)
	assert.Equal(t, []string{"1830000000003", "1830000000002"}, s.PassSNs)
}

func TestAggregate_PassFailIdentity(t *testing.T) {
	// Property holds for a spread of generated inputs.
	for n := 0; n < 20; n++ {
		var records []model.Record
		for i := 0; i < n; i++ {
			sn := fmt.Sprintf("18300000%05d", i%7)
			if i%3 == 0 {
				records = append(records, rec(sn, "IGS", "FAIL", "x", ""))
			} else {
				records = append(records, rec(sn, "NV", "ALL PASS", "", ""))
			}
		}
		s := Aggregate(records)
		assert.Equal(t, s.TotalTrays, s.FailUnique+s.PassUnique, "n=%d", n)
		assert.Equal(t, len(records), s.DispositionTotal, "n=%d", n)
	}
}

func TestAggregate_Empty(t *testing.T) {
	s := Aggregate(nil)
	assert.Zero(t, s.TotalTrays)
	assert.Zero(t, s.DispositionTotal)
	assert.Zero(t, s.CompletedDispositions)
	assert.NotNil(t, s.TotalSNs)
	assert.NotNil(t, s.FailEmptyAction)
	assert.Zero(t, s.Duration.Count)
}

func TestDurationStats(t *testing.T) {
	records := []model.Record{
		{SN: "1830000000001", PIC: "NV", Result: "ALL PASS", BPDuration: "2"},
		{SN: "1830000000002", PIC: "NV", Result: "ALL PASS", BPDuration: "4"},
		{SN: "1830000000003", PIC: "NV", Result: "ALL PASS", BPDuration: "6"},
		{SN: "1830000000004", PIC: "NV", Result: "ALL PASS", BPDuration: "-1"},       // negative dropped
		{SN: "1830000000005", PIC: "NV", Result: "ALL PASS", BPDuration: "broken"},   // unparseable dropped
		{SN: "1830000000006", PIC: "IGS", Result: "FAIL", IGSAction: "", BPDuration: "99"}, // pending SN excluded
	}
	s := Aggregate(records)

	assert.Equal(t, 3, s.Duration.Count)
	assert.InDelta(t, 4.0, s.Duration.Avg, 1e-9)
	assert.InDelta(t, 4.0, s.Duration.Median, 1e-9)
	assert.InDelta(t, 2.0, s.Duration.Min, 1e-9)
	assert.InDelta(t, 6.0, s.Duration.Max, 1e-9)
	assert.InDelta(t, 1.632993161855452, s.Duration.StdDev, 1e-9)
}

func TestDurationStats_MedianEven(t *testing.T) {
	s := Aggregate([]model.Record{
		{SN: "1830000000001", PIC: "NV", Result: "ALL PASS", BPDuration: "1"},
		{SN: "1830000000002", PIC: "NV", Result: "ALL PASS", BPDuration: "3"},
	})
	assert.InDelta(t, 2.0, s.Duration.Median, 1e-9)
}
