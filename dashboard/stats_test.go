// ABOUTME: Tests for dashboard aggregation and rendering over demo data
// ABOUTME: Pins pipeline totals, win rate and completion percentages
package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/crmdash/demo"
	"github.com/harperreed/crmdash/models"
)

func demoSnapshot() Snapshot {
	return Snapshot{
		Platform:   models.PlatformNone,
		Contacts:   Result[models.Contact]{Records: demo.Contacts(), Source: SourceDemo},
		Deals:      Result[models.Deal]{Records: demo.Deals(), Source: SourceDemo},
		Activities: Result[models.Activity]{Records: demo.Activities(), Source: SourceDemo},
		Companies:  Result[models.Company]{Records: demo.Companies(), Source: SourceDemo},
	}
}

func TestComputeStatsDemo(t *testing.T) {
	stats := ComputeStats(demoSnapshot())

	assert.False(t, stats.Live)
	assert.Equal(t, 8, stats.TotalContacts)
	assert.Equal(t, 8, stats.TotalDeals)
	assert.Equal(t, 8, stats.TotalCompanies)
	assert.Equal(t, 8, stats.TotalActivities)

	assert.Equal(t, 4, stats.ContactsByStatus[models.ContactActive])
	assert.Equal(t, 3, stats.ContactsByStatus[models.ContactLead])
	assert.Equal(t, 1, stats.ContactsByStatus[models.ContactInactive])
	assert.Equal(t, 5, stats.CompaniesByStatus[models.CompanyActive])
	assert.Equal(t, 2, stats.CompaniesByStatus[models.CompanyProspect])

	require.Len(t, stats.Pipeline, len(models.DealStages))
	assert.Equal(t, models.StageLead, stats.Pipeline[0].Stage)
	assert.Equal(t, 2, stats.Pipeline[0].Count)
	assert.Equal(t, "Rp 235Jt", stats.Pipeline[0].ValueFmt)
	assert.Equal(t, 0, stats.Pipeline[5].Count)
	assert.Equal(t, "Rp 0", stats.Pipeline[5].ValueFmt)

	assert.Equal(t, 7, stats.OpenDeals)
	assert.Equal(t, 1_820_000_000.0, stats.OpenValue)
	assert.Equal(t, "Rp 1.8M", stats.OpenValueFmt)
	assert.InDelta(t, 1_076_750_000.0, stats.WeightedValue, 1)
	assert.Equal(t, "Rp 65Jt", stats.WonValueFmt)
	assert.Equal(t, 100.0, stats.WinRate)

	assert.Equal(t, 5, stats.CompletedActivities)
	assert.Equal(t, 1, stats.OpenTasks)
	assert.Equal(t, 62.5, stats.ActivityCompletion)
	assert.Equal(t, "Rp 7.3M", stats.TotalRevenueFmt)
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(Snapshot{})
	assert.Equal(t, 0.0, stats.WinRate)
	assert.Equal(t, 0.0, stats.ActivityCompletion)
	assert.Len(t, stats.Pipeline, len(models.DealStages))
	assert.Equal(t, "Rp 0", stats.OpenValueFmt)
}

func TestWinRate(t *testing.T) {
	snap := Snapshot{Deals: Result[models.Deal]{Records: []models.Deal{
		{Stage: models.StageClosedWon, Value: 10},
		{Stage: models.StageClosedLost, Value: 20},
		{Stage: models.StageClosedLost, Value: 30},
		{Stage: models.StageClosedWon, Value: 40},
		{Stage: models.StageProposal, Value: 50, Probability: 50},
	}}}

	stats := ComputeStats(snap)
	assert.Equal(t, 50.0, stats.WinRate)
	assert.Equal(t, 1, stats.OpenDeals)
	assert.Equal(t, 25.0, stats.WeightedValue)
	assert.Equal(t, 50.0, stats.WonValue)
}

func TestRender(t *testing.T) {
	snap := demoSnapshot()
	snap.Deals.Err = assert.AnError
	out := Render(ComputeStats(snap))

	assert.Contains(t, out, "CRM DASHBOARD")
	assert.Contains(t, out, "DEMO DATA")
	assert.Contains(t, out, "PIPELINE OVERVIEW")
	assert.Contains(t, out, "Negotiation")
	assert.Contains(t, out, "Rp 630Jt")
	assert.Contains(t, out, "8 contacts")
	assert.Contains(t, out, assert.AnError.Error())
	assert.Contains(t, out, "win rate 100%")
}
