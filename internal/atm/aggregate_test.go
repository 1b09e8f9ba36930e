package atm

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geomarket-ma/atmboard/internal/model"
)

func atmFixture(id, bank string, volume float64) model.ATM {
	return model.ATM{
		ID:               id,
		BankName:         bank,
		MonthlyVolume:    volume,
		InstallationType: model.InstallationFixed,
		Services:         []string{"retrait", "consultation"},
	}
}

func TestAggregateBankingMarketLeaders(t *testing.T) {
	atms := []model.ATM{
		atmFixture("1", "Attijariwafa", 1000),
		atmFixture("2", "Attijariwafa", 2000),
		atmFixture("3", "Banque Populaire", 900),
		atmFixture("4", "BMCE", 1100),
		atmFixture("5", "BMCE", 900),
		atmFixture("6", "CIH", 500),
	}

	m := AggregateBankingMarket(atms)
	assert.Equal(t, 4, m.TotalBanks)
	require.Len(t, m.MarketLeaders, 3)

	assert.Equal(t, "Attijariwafa", m.MarketLeaders[0].Bank)
	assert.Equal(t, 2, m.MarketLeaders[0].ATMs)
	assert.Equal(t, "33.3%", m.MarketLeaders[0].MarketShare)
	assert.Equal(t, 1500, m.MarketLeaders[0].AvgVolume)

	// BMCE ties Attijariwafa on count 2; first-seen order breaks the tie.
	assert.Equal(t, "BMCE", m.MarketLeaders[1].Bank)
	assert.Equal(t, 1000, m.MarketLeaders[1].AvgVolume)

	assert.Equal(t, "Banque Populaire", m.MarketLeaders[2].Bank)
	assert.Equal(t, "16.7%", m.MarketLeaders[2].MarketShare)
}

func TestAggregateBankingMarketBlankBankIsInconnu(t *testing.T) {
	atms := []model.ATM{
		atmFixture("1", "", 600),
		atmFixture("2", "", 800),
	}
	m := AggregateBankingMarket(atms)
	require.Len(t, m.MarketLeaders, 1)
	assert.Equal(t, "Inconnu", m.MarketLeaders[0].Bank)
	assert.Equal(t, "100.0%", m.MarketLeaders[0].MarketShare)
	assert.Equal(t, 700, m.MarketLeaders[0].AvgVolume)
}

func TestAggregateBankingMarketEmpty(t *testing.T) {
	m := AggregateBankingMarket(nil)
	assert.Zero(t, m.TotalBanks)
	assert.NotNil(t, m.MarketLeaders)
	assert.Empty(t, m.MarketLeaders)
	assert.NotNil(t, m.AvailableServices)
	assert.Empty(t, m.AvailableServices)
}

func TestAggregateMarketShareRoundsHalfAwayFromZero(t *testing.T) {
	atms := make([]model.ATM, 0, 16)
	for i := 0; i < 15; i++ {
		atms = append(atms, atmFixture(fmt.Sprintf("a%d", i), "Attijariwafa", 100))
	}
	atms = append(atms, atmFixture("b", "BMCE", 100))

	m := AggregateBankingMarket(atms)
	require.Len(t, m.MarketLeaders, 2)
	// 15/16 = 93.75 and 1/16 = 6.25: exact halves round up, not to even.
	assert.Equal(t, "93.8%", m.MarketLeaders[0].MarketShare)
	assert.Equal(t, "6.3%", m.MarketLeaders[1].MarketShare)
}

func TestAggregateAvgVolumeRounds(t *testing.T) {
	atms := []model.ATM{
		atmFixture("1", "CIH", 1000),
		atmFixture("2", "CIH", 1001),
	}
	m := AggregateBankingMarket(atms)
	require.Len(t, m.MarketLeaders, 1)
	// 1000.5 rounds half away from zero.
	assert.Equal(t, 1001, m.MarketLeaders[0].AvgVolume)
}

func TestAggregateServicesAnalysis(t *testing.T) {
	a := atmFixture("1", "CIH", 100)
	a.Services = []string{"retrait", "depot"}
	b := atmFixture("2", "CIH", 100)
	b.Services = []string{"change", "virement", "retrait"}
	c := atmFixture("3", "CIH", 100)
	c.Services = []string{"consultation"}

	m := AggregateBankingMarket([]model.ATM{a, b, c})
	assert.Equal(t, 2, m.ServicesAnalysis.BasicServices)
	assert.Equal(t, 1, m.ServicesAnalysis.DepositEnabled)
	assert.Equal(t, 1, m.ServicesAnalysis.CurrencyExchange)
	assert.Equal(t, 1, m.ServicesAnalysis.TransferEnabled)
	assert.Equal(t, []string{"change", "consultation", "depot", "retrait", "virement"}, m.AvailableServices)
}

func TestAggregateInstallationTypes(t *testing.T) {
	a := atmFixture("1", "CIH", 100)
	b := atmFixture("2", "CIH", 100)
	b.InstallationType = model.InstallationPortable
	c := atmFixture("3", "CIH", 100)

	m := AggregateBankingMarket([]model.ATM{a, b, c})
	assert.Equal(t, 2, m.InstallationTypes.Fixed)
	assert.Equal(t, 1, m.InstallationTypes.Portable)
}

func TestAggregatePerformanceTiers(t *testing.T) {
	atms := []model.ATM{
		atmFixture("1", "CIH", 1201), // high
		atmFixture("2", "CIH", 1200), // medium (inclusive upper bound)
		atmFixture("3", "CIH", 900),  // medium (inclusive lower bound)
		atmFixture("4", "CIH", 899),  // low
		atmFixture("5", "CIH", 0),    // low
	}
	sum := AggregatePerformance(atms)
	assert.Equal(t, 1, sum.HighPerformance)
	assert.Equal(t, 2, sum.MediumPerformance)
	assert.Equal(t, 2, sum.LowPerformance)
	assert.Equal(t, len(atms), sum.HighPerformance+sum.MediumPerformance+sum.LowPerformance)
}

func TestAggregatePerformanceMaintenanceExactMatch(t *testing.T) {
	a := atmFixture("1", "CIH", 100)
	a.Status = "maintenance"
	b := atmFixture("2", "CIH", 100)
	b.Status = "Maintenance"
	c := atmFixture("3", "CIH", 100)
	c.Status = "active"

	sum := AggregatePerformance([]model.ATM{a, b, c})
	assert.Equal(t, 1, sum.MaintenanceRequired)
}

func TestCountDistinct(t *testing.T) {
	atms := []model.ATM{
		{ID: "1", City: "Rabat"},
		{ID: "2", City: "Rabat"},
		{ID: "3", City: "rabat"}, // case-sensitive, distinct
		{ID: "4", City: "Fès"},
	}
	got := CountDistinct(atms, func(a model.ATM) string { return a.City })
	assert.Equal(t, 3, got)
}
