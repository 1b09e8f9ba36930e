package model

// MarketLeader is one entry of the top-banks breakdown.
type MarketLeader struct {
	Bank        string `json:"bank"`
	ATMs        int    `json:"atms"`
	MarketShare string `json:"market_share"`
	AvgVolume   int    `json:"avg_volume"`
}

// InstallationTypes counts ATMs per canonical installation category.
type InstallationTypes struct {
	Fixed    int `json:"fixed"`
	Portable int `json:"portable"`
}

// ServicesAnalysis counts ATMs offering each tracked service. The checks
// are independent containment tests, not a partition.
type ServicesAnalysis struct {
	BasicServices    int `json:"basic_services"`
	DepositEnabled   int `json:"deposit_enabled"`
	CurrencyExchange int `json:"currency_exchange"`
	TransferEnabled  int `json:"transfer_enabled"`
}

// BankingMarket summarizes the competitive landscape of the network.
type BankingMarket struct {
	TotalBanks        int               `json:"total_banks"`
	InstallationTypes InstallationTypes `json:"installation_types"`
	MarketLeaders     []MarketLeader    `json:"market_leaders"`
	ServicesAnalysis  ServicesAnalysis  `json:"services_analysis"`
	AvailableServices []string          `json:"available_services"`
}

// PerformanceSummary buckets ATMs into mutually exclusive volume tiers and
// reports operational counts.
type PerformanceSummary struct {
	HighPerformance     int `json:"high_performance"`
	MediumPerformance   int `json:"medium_performance"`
	LowPerformance      int `json:"low_performance"`
	MaintenanceRequired int `json:"maintenance_required"`
	PortableATMs        int `json:"portable_atms"`
	FixedATMs           int `json:"fixed_atms"`
}

// Metadata describes where and when a dataset was produced, plus
// completeness counters for the source data. MissingInstallationType and
// MissingBranchLocation are measured against the raw snapshot (before any
// defaulting, including records later dropped or deduplicated);
// MissingServices is measured against the final normalized output.
type Metadata struct {
	Source                  string `json:"source"`
	GeneratedAt             string `json:"generated_at"`
	MissingServices         int    `json:"missing_services"`
	MissingInstallationType int    `json:"missing_installation_type"`
	MissingBranchLocation   int    `json:"missing_branch_location"`
}

// Dataset is the full payload served by GET /api/atms when built locally.
type Dataset struct {
	ATMs               []ATM              `json:"atms"`
	TotalCount         int                `json:"total_count"`
	CitiesCovered      int                `json:"cities_covered"`
	RegionsCovered     int                `json:"regions_covered"`
	BankingMarket      BankingMarket      `json:"banking_market"`
	PerformanceSummary PerformanceSummary `json:"performance_summary"`
	Metadata           Metadata           `json:"metadata"`
}
