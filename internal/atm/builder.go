package atm

import (
	"time"

	"github.com/geomarket-ma/atmboard/internal/model"
)

// Dataset source markers. SourceLocal is what the builder stamps;
// SourceLocalFallback is the override applied when the local pipeline ran
// because the backend was unreachable.
const (
	SourceLocal         = "local"
	SourceLocalFallback = "local-fallback"
)

// timestampLayout matches ISO-8601 with millisecond precision.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Timestamp formats t for the generated_at metadata field.
func Timestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// BuildDataset runs the full local pipeline over raw snapshot records:
// normalize, dedupe by id, renormalize, aggregate, assemble. Pure apart
// from the generated_at clock read; every request rebuilds from scratch.
func BuildDataset(raw []model.RawATM) model.Dataset {
	normalized := make([]model.ATM, 0, len(raw))
	for _, r := range raw {
		if a, ok := Normalize(r); ok {
			normalized = append(normalized, a)
		}
	}

	atms := Dedupe(normalized)
	for i, a := range atms {
		atms[i] = Renormalize(a)
	}

	missingServices := 0
	for _, a := range atms {
		if len(a.Services) == 0 {
			missingServices++
		}
	}
	// Installation-type and branch-location completeness is reported
	// against the raw source, before any defaulting or deduplication.
	missingInstallation := 0
	missingBranch := 0
	for _, r := range raw {
		if r.InstallationType == "" {
			missingInstallation++
		}
		if r.BranchLocation == "" {
			missingBranch++
		}
	}

	return model.Dataset{
		ATMs:               atms,
		TotalCount:         len(atms),
		CitiesCovered:      CountDistinct(atms, func(a model.ATM) string { return a.City }),
		RegionsCovered:     CountDistinct(atms, func(a model.ATM) string { return a.Region }),
		BankingMarket:      AggregateBankingMarket(atms),
		PerformanceSummary: AggregatePerformance(atms),
		Metadata: model.Metadata{
			Source:                  SourceLocal,
			GeneratedAt:             Timestamp(time.Now()),
			MissingServices:         missingServices,
			MissingInstallationType: missingInstallation,
			MissingBranchLocation:   missingBranch,
		},
	}
}
