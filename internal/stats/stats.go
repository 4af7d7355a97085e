// Package stats implements the bonepile classification and aggregation rules:
//
//   - Valid SN: 13 digits, prefix 183
//   - Fail: PIC = IGS and result = FAIL
//   - Pass: distinct valid SNs minus distinct failing SNs
//   - Disposition: each valid-SN row counts once (duplicates included)
//   - Completed: total dispositions minus fail rows with empty IGS Action
//   - In process: IGS Status contains waiting/testing/in process/in progress
//   - Waiting for material: IGS Status contains waiting for material/strata/cx9
//
// Waiting-for-material is the more specific bucket and is checked before
// in-process, so a status matching both lands in waiting-for-material only.
package stats

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"bonepiledash/internal/model"
)

// Bucket is the disposition state derived for a valid-SN row.
type Bucket string

const (
	// BucketPending marks a fail row with an empty IGS Action; it is the one
	// state that keeps a disposition out of the completed count.
	BucketPending         Bucket = "pending"
	BucketWaitingMaterial Bucket = "waiting_material"
	BucketInProcess       Bucket = "in_process"
	BucketCompleted       Bucket = "completed"
)

// Classification is the derived, non-stored view of a record.
type Classification struct {
	ValidSN bool
	Fail    bool
	Bucket  Bucket
}

var validSNPattern = regexp.MustCompile(`^183\d{10}$`)

var (
	inProcessKeywords = []string{"waiting", "testing", "in process", "in progress"}
	materialKeywords  = []string{"waiting for material", "strata", "cx9"}
)

// NormalizeSN trims the cell and strips the trailing ".0" that float-formatted
// serial cells carry after export.
func NormalizeSN(raw string) string {
	return strings.TrimSuffix(strings.TrimSpace(raw), ".0")
}

// IsValidSN reports whether the serial number is 13 digits starting with 183.
func IsValidSN(sn string) bool {
	return validSNPattern.MatchString(NormalizeSN(sn))
}

// IsFail reports the fail rule: PIC equals IGS and result equals FAIL, both
// compared exactly after trimming.
func IsFail(r model.Record) bool {
	return strings.TrimSpace(r.PIC) == "IGS" && strings.TrimSpace(r.Result) == "FAIL"
}

// HasEmptyAction reports an empty IGS Action cell. "nan" counts as empty; it
// is how blank cells round-trip through some exports.
func HasEmptyAction(r model.Record) bool {
	a := strings.TrimSpace(r.IGSAction)
	return a == "" || strings.EqualFold(a, "nan")
}

func containsAny(s string, keywords []string) bool {
	s = strings.ToLower(s)
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// IsInProcessStatus matches the in-process keyword family against IGS Status.
func IsInProcessStatus(status string) bool {
	return containsAny(status, inProcessKeywords)
}

// IsWaitingMaterialStatus matches the waiting-for-material keyword family.
func IsWaitingMaterialStatus(status string) bool {
	return containsAny(status, materialKeywords)
}

// Classify derives the per-record view. The bucket is only meaningful for
// records with a valid SN and is assigned with explicit precedence:
// pending, then waiting-for-material, then in-process, then completed.
func Classify(r model.Record) Classification {
	c := Classification{ValidSN: IsValidSN(r.SN), Fail: IsFail(r)}
	if !c.ValidSN {
		return c
	}
	switch {
	case c.Fail && HasEmptyAction(r):
		c.Bucket = BucketPending
	case IsWaitingMaterialStatus(r.IGSStatus):
		c.Bucket = BucketWaitingMaterial
	case IsInProcessStatus(r.IGSStatus):
		c.Bucket = BucketInProcess
	default:
		c.Bucket = BucketCompleted
	}
	return c
}

// Aggregate folds the record sequence into a Summary. It is a pure function:
// the caller owns upload metadata and snapshot swapping.
func Aggregate(records []model.Record) *model.Summary {
	s := &model.Summary{
		TotalSNs:        []string{},
		FailSNs:         []string{},
		PassSNs:         []string{},
		FailEmptyAction: []model.Record{},
		InProcess:       []model.Record{},
		WaitingMaterial: []model.Record{},
	}

	seen := make(map[string]bool)
	failSeen := make(map[string]bool)
	emptyActionSNs := make(map[string]bool)
	inProcessSNs := make(map[string]bool)
	materialSNs := make(map[string]bool)

	valid := make([]model.Record, 0, len(records))

	for _, r := range records {
		c := Classify(r)
		if !c.ValidSN {
			continue
		}
		r.SN = NormalizeSN(r.SN)
		valid = append(valid, r)

		if !seen[r.SN] {
			seen[r.SN] = true
			s.TotalSNs = append(s.TotalSNs, r.SN)
		}
		if c.Fail {
			s.FailRows++
			if !failSeen[r.SN] {
				failSeen[r.SN] = true
				s.FailSNs = append(s.FailSNs, r.SN)
			}
		}

		switch c.Bucket {
		case BucketPending:
			s.FailEmptyAction = append(s.FailEmptyAction, r)
			emptyActionSNs[r.SN] = true
		case BucketWaitingMaterial:
			s.WaitingMaterial = append(s.WaitingMaterial, r)
			materialSNs[r.SN] = true
		case BucketInProcess:
			s.InProcess = append(s.InProcess, r)
			inProcessSNs[r.SN] = true
		}
	}

	for _, sn := range s.TotalSNs {
		if !failSeen[sn] {
			s.PassSNs = append(s.PassSNs, sn)
		}
	}

	s.TotalTrays = len(s.TotalSNs)
	s.FailUnique = len(s.FailSNs)
	s.PassUnique = len(s.PassSNs)
	s.DispositionTotal = len(valid)
	s.FailEmptyActionRows = len(s.FailEmptyAction)
	s.FailEmptyActionUnique = len(emptyActionSNs)
	s.CompletedDispositions = s.DispositionTotal - s.FailEmptyActionRows
	s.InProcessRows = len(s.InProcess)
	s.InProcessUnique = len(inProcessSNs)
	s.WaitingMaterialRows = len(s.WaitingMaterial)
	s.WaitingMaterialUnique = len(materialSNs)

	s.Duration = durationStats(valid, emptyActionSNs)

	return s
}

// durationStats computes bp_duration statistics over completed-eligible rows:
// every valid row except fail rows whose SN has an empty IGS Action somewhere.
func durationStats(valid []model.Record, emptyActionSNs map[string]bool) model.DurationStats {
	var durations []float64
	for _, r := range valid {
		if IsFail(r) && emptyActionSNs[r.SN] {
			continue
		}
		raw := strings.TrimSpace(r.BPDuration)
		if raw == "" {
			continue
		}
		d, err := strconv.ParseFloat(raw, 64)
		if err != nil || d < 0 {
			continue
		}
		durations = append(durations, d)
	}
	if len(durations) == 0 {
		return model.DurationStats{}
	}

	sorted := make([]float64, len(durations))
	copy(sorted, durations)
	sort.Float64s(sorted)

	var sum float64
	for _, d := range durations {
		sum += d
	}
	avg := sum / float64(len(durations))

	var variance float64
	for _, d := range durations {
		variance += (d - avg) * (d - avg)
	}
	variance /= float64(len(durations))

	n := len(sorted)
	median := sorted[n/2]
	if n%2 == 0 {
		median = (sorted[n/2-1] + sorted[n/2]) / 2
	}

	return model.DurationStats{
		Count:  n,
		Avg:    avg,
		Median: median,
		Min:    sorted[0],
		Max:    sorted[n-1],
		StdDev: math.Sqrt(variance),
	}
}
