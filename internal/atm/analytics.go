package atm

import (
	"math"
	"sort"
	"time"

	"github.com/geomarket-ma/atmboard/internal/model"
)

// unknownRegion groups records with a blank region.
const unknownRegion = "Unknown"

// RegionStats summarizes one region of the network.
type RegionStats struct {
	Count     int      `json:"count"`
	Volume    float64  `json:"volume"`
	Cities    []string `json:"cities"`
	AvgVolume float64  `json:"avg_volume"`
}

// TrendPoint is one month of the network performance trend.
type TrendPoint struct {
	Month   string  `json:"month"`
	Volume  int     `json:"volume"`
	ROI     float64 `json:"roi"`
	NewATMs int     `json:"new_atms"`
}

// OpportunityZone is a candidate expansion zone scored by the planning team.
type OpportunityZone struct {
	Zone             string `json:"zone"`
	Score            int    `json:"score"`
	PotentialVolume  int    `json:"potential_volume"`
	CompetitionLevel string `json:"competition_level"`
	Priority         string `json:"priority"`
	Region           string `json:"region"`
}

// Analytics is the payload of GET /api/analytics/dashboard.
type Analytics struct {
	TotalATMs        int                    `json:"total_atms"`
	TotalVolume      float64                `json:"total_volume"`
	AvgVolume        float64                `json:"avg_volume"`
	RegionalAnalysis map[string]RegionStats `json:"regional_analysis"`
	PerformanceTrend []TrendPoint           `json:"performance_trend"`
	OpportunityZones []OpportunityZone      `json:"opportunity_zones"`
	Coverage         *Coverage              `json:"coverage,omitempty"`
	GeneratedAt      string                 `json:"generated_at"`
}

// performanceTrend is the reference six-month trend shown on the dashboard
// until the backend exposes historical volumes.
var performanceTrend = []TrendPoint{
	{Month: "Jan", Volume: 45000, ROI: 12.5, NewATMs: 2},
	{Month: "Fév", Volume: 48000, ROI: 13.2, NewATMs: 1},
	{Month: "Mar", Volume: 52000, ROI: 14.1, NewATMs: 3},
	{Month: "Avr", Volume: 49000, ROI: 13.8, NewATMs: 2},
	{Month: "Mai", Volume: 55000, ROI: 15.2, NewATMs: 4},
	{Month: "Jun", Volume: 58000, ROI: 16.1, NewATMs: 2},
}

// opportunityZones is the planning team's current expansion shortlist.
var opportunityZones = []OpportunityZone{
	{Zone: "Casablanca - Maarif Extension", Score: 85, PotentialVolume: 1800, CompetitionLevel: "Faible", Priority: "Haute", Region: "Casablanca-Settat"},
	{Zone: "Rabat - Hay Riad", Score: 78, PotentialVolume: 1500, CompetitionLevel: "Moyenne", Priority: "Haute", Region: "Rabat-Salé-Kénitra"},
	{Zone: "Marrakech - Hivernage", Score: 82, PotentialVolume: 1600, CompetitionLevel: "Faible", Priority: "Haute", Region: "Marrakech-Safi"},
	{Zone: "Tanger - Zone Franche", Score: 76, PotentialVolume: 1300, CompetitionLevel: "Moyenne", Priority: "Moyenne", Region: "Tanger-Tétouan-Al Hoceïma"},
	{Zone: "Agadir - Zone Touristique", Score: 74, PotentialVolume: 1200, CompetitionLevel: "Élevée", Priority: "Moyenne", Region: "Souss-Massa"},
	{Zone: "Fès - Campus Universitaire", Score: 71, PotentialVolume: 1000, CompetitionLevel: "Moyenne", Priority: "Faible", Region: "Fès-Meknès"},
}

// BuildAnalytics computes the dashboard analytics over a normalized
// dataset: volume totals, per-region breakdown with distinct cities, the
// reference trend and opportunity tables, and the network coverage bounds.
func BuildAnalytics(atms []model.ATM) Analytics {
	var totalVolume float64
	for _, a := range atms {
		totalVolume += a.MonthlyVolume
	}
	avg := 0.0
	if len(atms) > 0 {
		avg = totalVolume / float64(len(atms))
	}

	type regionAcc struct {
		count  int
		volume float64
		cities map[string]struct{}
	}
	regions := make(map[string]*regionAcc)
	for _, a := range atms {
		key := a.Region
		if key == "" {
			key = unknownRegion
		}
		acc, ok := regions[key]
		if !ok {
			acc = &regionAcc{cities: make(map[string]struct{})}
			regions[key] = acc
		}
		acc.count++
		acc.volume += a.MonthlyVolume
		if a.City != "" {
			acc.cities[a.City] = struct{}{}
		}
	}

	regional := make(map[string]RegionStats, len(regions))
	for key, acc := range regions {
		cities := make([]string, 0, len(acc.cities))
		for c := range acc.cities {
			cities = append(cities, c)
		}
		sort.Strings(cities)
		regionAvg := 0.0
		if acc.count > 0 {
			regionAvg = acc.volume / float64(acc.count)
		}
		regional[key] = RegionStats{
			Count:     acc.count,
			Volume:    acc.volume,
			Cities:    cities,
			AvgVolume: roundTo(regionAvg, 2),
		}
	}

	out := Analytics{
		TotalATMs:        len(atms),
		TotalVolume:      totalVolume,
		AvgVolume:        roundTo(avg, 2),
		RegionalAnalysis: regional,
		PerformanceTrend: performanceTrend,
		OpportunityZones: opportunityZones,
		GeneratedAt:      Timestamp(time.Now()),
	}
	if cov, ok := ComputeCoverage(atms); ok {
		out.Coverage = &cov
	}
	return out
}

func roundTo(v float64, digits int) float64 {
	scale := math.Pow(10, float64(digits))
	return math.Round(v*scale) / scale
}
