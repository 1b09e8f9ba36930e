package model

import "encoding/json"

// InstallationType is the canonical installation category of an ATM.
type InstallationType string

const (
	InstallationFixed    InstallationType = "fixed"
	InstallationPortable InstallationType = "portable"
)

// Identifier decodes from a JSON string or number; scraper exports mix the
// two, especially for idatm. Numbers keep their literal form ("12345").
// Any other JSON value decodes as empty, which drops the record later if
// no usable identifier remains.
type Identifier string

// UnmarshalJSON implements tolerant string-or-number decoding.
func (id *Identifier) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = Identifier(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*id = Identifier(n.String())
		return nil
	}
	*id = ""
	return nil
}

// RawATM is one untrusted record from the scraped snapshot or the backend.
// Field types are deliberately loose: the snapshot is hand-assembled scraper
// output, so individual fields may be missing or carry the wrong JSON type.
// Services is `any` so a non-array value degrades instead of failing the
// whole record decode.
type RawATM struct {
	ID               Identifier `json:"id"`
	IDATM            Identifier `json:"idatm"`
	Latitude         float64    `json:"latitude"`
	Longitude        float64    `json:"longitude"`
	MonthlyVolume    float64    `json:"monthly_volume"`
	City             string     `json:"city"`
	Region           string     `json:"region"`
	BankName         string     `json:"bank_name"`
	Status           string     `json:"status"`
	Name             string     `json:"name"`
	InstallationType string     `json:"installation_type"`
	Services         any        `json:"services"`
	BranchLocation   string     `json:"branch_location"`
}

// ATM is the canonical unit consumed by the aggregator and the dashboard.
// Invariants: ID is non-empty and unique within a dataset, Services has at
// least one entry, InstallationType is one of the two canonical values.
type ATM struct {
	ID               string           `json:"id"`
	Latitude         float64          `json:"latitude"`
	Longitude        float64          `json:"longitude"`
	MonthlyVolume    float64          `json:"monthly_volume"`
	City             string           `json:"city"`
	Region           string           `json:"region"`
	BankName         string           `json:"bank_name"`
	Status           string           `json:"status"`
	Name             string           `json:"name"`
	InstallationType InstallationType `json:"installation_type"`
	Services         []string         `json:"services"`
	BranchLocation   string           `json:"branch_location"`
}
