package atm

import (
	"fmt"
	"math"
	"sort"

	"github.com/geomarket-ma/atmboard/internal/model"
)

// unknownBank groups records with a blank bank_name.
const unknownBank = "Inconnu"

// Volume tier boundaries (monthly transactions).
const (
	highVolumeFloor  = 1200.0
	lowVolumeCeiling = 900.0
)

// bankStat accumulates per-bank counts during aggregation.
type bankStat struct {
	bank        string
	count       int
	totalVolume float64
}

// CountDistinct returns the number of distinct values produced by key over
// the dataset. Comparison is exact; no normalization happens at this layer.
func CountDistinct(atms []model.ATM, key func(model.ATM) string) int {
	seen := make(map[string]struct{}, len(atms))
	for _, a := range atms {
		seen[key(a)] = struct{}{}
	}
	return len(seen)
}

// AggregateBankingMarket computes the competitive-landscape summary:
// per-bank market leaders (top 3 by ATM count, ties kept in first-seen
// order), installation-type counts, tracked-service availability, and the
// sorted union of all offered services.
func AggregateBankingMarket(atms []model.ATM) model.BankingMarket {
	stats := make(map[string]*bankStat)
	order := []string{}
	for _, a := range atms {
		key := a.BankName
		if key == "" {
			key = unknownBank
		}
		st, ok := stats[key]
		if !ok {
			st = &bankStat{bank: key}
			stats[key] = st
			order = append(order, key)
		}
		st.count++
		st.totalVolume += a.MonthlyVolume
	}

	sort.SliceStable(order, func(i, j int) bool {
		return stats[order[i]].count > stats[order[j]].count
	})

	total := len(atms)
	leaders := []model.MarketLeader{}
	for _, key := range order {
		if len(leaders) == 3 {
			break
		}
		st := stats[key]
		share := "0.0%"
		if total > 0 {
			// Round to one decimal half away from zero before printing;
			// %.1f alone would round exact halves like 6.25 to even.
			pct := math.Round(float64(st.count)/float64(total)*1000) / 10
			share = fmt.Sprintf("%.1f%%", pct)
		}
		avg := 0
		if st.count > 0 {
			avg = int(math.Round(st.totalVolume / float64(st.count)))
		}
		leaders = append(leaders, model.MarketLeader{
			Bank:        st.bank,
			ATMs:        st.count,
			MarketShare: share,
			AvgVolume:   avg,
		})
	}

	serviceUnion := make(map[string]struct{})
	for _, a := range atms {
		for _, s := range a.Services {
			serviceUnion[s] = struct{}{}
		}
	}
	available := make([]string, 0, len(serviceUnion))
	for s := range serviceUnion {
		available = append(available, s)
	}
	sort.Strings(available)

	return model.BankingMarket{
		TotalBanks: len(stats),
		InstallationTypes: model.InstallationTypes{
			Fixed:    countInstallationType(atms, model.InstallationFixed),
			Portable: countInstallationType(atms, model.InstallationPortable),
		},
		MarketLeaders: leaders,
		ServicesAnalysis: model.ServicesAnalysis{
			BasicServices:    countService(atms, "retrait"),
			DepositEnabled:   countService(atms, "depot"),
			CurrencyExchange: countService(atms, "change"),
			TransferEnabled:  countService(atms, "virement"),
		},
		AvailableServices: available,
	}
}

// AggregatePerformance buckets the network into volume tiers. The tiers
// partition all records: >1200 high, 900..1200 medium, <900 low.
func AggregatePerformance(atms []model.ATM) model.PerformanceSummary {
	var sum model.PerformanceSummary
	for _, a := range atms {
		switch {
		case a.MonthlyVolume > highVolumeFloor:
			sum.HighPerformance++
		case a.MonthlyVolume >= lowVolumeCeiling:
			sum.MediumPerformance++
		default:
			sum.LowPerformance++
		}
		if a.Status == "maintenance" {
			sum.MaintenanceRequired++
		}
	}
	sum.PortableATMs = countInstallationType(atms, model.InstallationPortable)
	sum.FixedATMs = countInstallationType(atms, model.InstallationFixed)
	return sum
}

func countService(atms []model.ATM, service string) int {
	n := 0
	for _, a := range atms {
		for _, s := range a.Services {
			if s == service {
				n++
				break
			}
		}
	}
	return n
}

func countInstallationType(atms []model.ATM, t model.InstallationType) int {
	n := 0
	for _, a := range atms {
		if a.InstallationType == t {
			n++
		}
	}
	return n
}
