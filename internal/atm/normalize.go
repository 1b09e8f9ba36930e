package atm

import (
	"fmt"
	"strings"

	"github.com/geomarket-ma/atmboard/internal/model"
)

// defaultServices is substituted whenever a record ends up with no usable
// service entries. Downstream service-availability counts assume every ATM
// offers at least one service.
var defaultServices = []string{"retrait", "consultation"}

// installationTypeMap maps scraper vocabulary to the canonical categories.
// Unknown or missing values fall back to fixed.
var installationTypeMap = map[string]model.InstallationType{
	"fixed":      model.InstallationFixed,
	"agency":     model.InstallationFixed,
	"branch":     model.InstallationFixed,
	"agence":     model.InstallationFixed,
	"portable":   model.InstallationPortable,
	"mobile":     model.InstallationPortable,
	"kiosk":      model.InstallationPortable,
	"deployable": model.InstallationPortable,
}

// NormalizeInstallationType canonicalizes a free-form installation type.
// The lookup is case-insensitive and whitespace-trimmed; anything outside
// the known vocabulary is treated as fixed rather than rejected, since
// installation type is descriptive metadata.
func NormalizeInstallationType(value string) model.InstallationType {
	if value == "" {
		return model.InstallationFixed
	}
	if t, ok := installationTypeMap[strings.ToLower(strings.TrimSpace(value))]; ok {
		return t
	}
	return model.InstallationFixed
}

// NormalizeServices cleans a raw services value into a deduplicated list of
// lower-cased service names, preserving first-seen order. Non-string
// entries and blank strings are dropped silently. Returns an empty (never
// nil) slice when nothing survives; the caller decides on defaulting.
func NormalizeServices(value any) []string {
	out := []string{}
	entries, ok := value.([]any)
	if !ok {
		return out
	}
	seen := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		s, ok := entry.(string)
		if !ok {
			continue
		}
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// Normalize canonicalizes one raw record. Returns false when the record has
// no usable identifier (neither id nor idatm resolves to a non-empty
// string); that is the only way a record is excluded. Every other malformed
// field degrades to a default.
func Normalize(raw model.RawATM) (model.ATM, bool) {
	id := string(raw.ID)
	if id == "" {
		id = string(raw.IDATM)
	}
	if id == "" {
		return model.ATM{}, false
	}

	name := strings.TrimSpace(raw.Name)
	if name == "" {
		name = id
	}

	services := NormalizeServices(raw.Services)
	if len(services) == 0 {
		services = append([]string{}, defaultServices...)
	}

	branch := strings.TrimSpace(raw.BranchLocation)
	if branch == "" {
		branch = fmt.Sprintf("%s - %s", raw.City, raw.Region)
	}

	return model.ATM{
		ID:               id,
		Latitude:         raw.Latitude,
		Longitude:        raw.Longitude,
		MonthlyVolume:    raw.MonthlyVolume,
		City:             raw.City,
		Region:           raw.Region,
		BankName:         raw.BankName,
		Status:           raw.Status,
		Name:             name,
		InstallationType: NormalizeInstallationType(raw.InstallationType),
		Services:         services,
		BranchLocation:   branch,
	}, true
}

// Renormalize re-applies the defaulting rules to an already-normalized ATM.
// Normalization is idempotent, so for well-formed input this is a no-op;
// it exists as a second defensive pass after deduplication.
func Renormalize(a model.ATM) model.ATM {
	name := strings.TrimSpace(a.Name)
	if name == "" {
		name = a.ID
	}
	a.Name = name

	a.InstallationType = NormalizeInstallationType(string(a.InstallationType))

	services := normalizeStringServices(a.Services)
	if len(services) == 0 {
		services = append([]string{}, defaultServices...)
	}
	a.Services = services

	branch := strings.TrimSpace(a.BranchLocation)
	if branch == "" {
		branch = fmt.Sprintf("%s - %s", a.City, a.Region)
	}
	a.BranchLocation = branch

	return a
}

func normalizeStringServices(entries []string) []string {
	out := []string{}
	seen := make(map[string]struct{}, len(entries))
	for _, s := range entries {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
