// ABOUTME: Aggregate statistics computed from a dashboard snapshot
// ABOUTME: Pipeline by stage, weighted value, win rate and activity completion
package dashboard

import (
	"github.com/harperreed/crmdash/models"
	"github.com/harperreed/crmdash/normalize"
)

type StageStats struct {
	Stage    models.DealStage `json:"stage"`
	Count    int              `json:"count"`
	Value    float64          `json:"value"`
	ValueFmt string           `json:"valueFmt"`
}

type Stats struct {
	Platform models.Platform `json:"platform"`
	Live     bool            `json:"live"`
	Warnings []string        `json:"warnings,omitempty"`

	TotalContacts   int `json:"totalContacts"`
	TotalCompanies  int `json:"totalCompanies"`
	TotalDeals      int `json:"totalDeals"`
	TotalActivities int `json:"totalActivities"`

	ContactsByStatus  map[models.ContactStatus]int `json:"contactsByStatus"`
	CompaniesByStatus map[models.CompanyStatus]int `json:"companiesByStatus"`
	ActivitiesByType  map[models.ActivityType]int  `json:"activitiesByType"`

	// Pipeline has one entry per stage in display order, including empty ones.
	Pipeline []StageStats `json:"pipeline"`

	OpenDeals        int     `json:"openDeals"`
	OpenValue        float64 `json:"openValue"`
	OpenValueFmt     string  `json:"openValueFmt"`
	WeightedValue    float64 `json:"weightedValue"`
	WeightedValueFmt string  `json:"weightedValueFmt"`
	WonValue         float64 `json:"wonValue"`
	WonValueFmt      string  `json:"wonValueFmt"`
	// WinRate is won/(won+lost) as a percentage; 0 when nothing has closed.
	WinRate float64 `json:"winRate"`

	CompletedActivities int `json:"completedActivities"`
	OpenTasks           int `json:"openTasks"`
	// ActivityCompletion is the completed share as a percentage.
	ActivityCompletion float64 `json:"activityCompletion"`

	TotalRevenue    float64 `json:"totalRevenue"`
	TotalRevenueFmt string  `json:"totalRevenueFmt"`
}

// ComputeStats aggregates whatever records the snapshot holds, live or demo.
func ComputeStats(snap Snapshot) Stats {
	contacts := snap.Contacts.Records
	deals := snap.Deals.Records
	activities := snap.Activities.Records
	companies := snap.Companies.Records

	stats := Stats{
		Platform:          snap.Platform,
		Live:              snap.Live(),
		Warnings:          snap.Warnings(),
		TotalContacts:     len(contacts),
		TotalCompanies:    len(companies),
		TotalDeals:        len(deals),
		TotalActivities:   len(activities),
		ContactsByStatus:  make(map[models.ContactStatus]int),
		CompaniesByStatus: make(map[models.CompanyStatus]int),
		ActivitiesByType:  make(map[models.ActivityType]int),
	}

	for _, c := range contacts {
		stats.ContactsByStatus[c.Status]++
	}
	for _, c := range companies {
		stats.CompaniesByStatus[c.Status]++
		stats.TotalRevenue += c.Revenue
	}

	byStage := make(map[models.DealStage]*StageStats, len(models.DealStages))
	for _, stage := range models.DealStages {
		byStage[stage] = &StageStats{Stage: stage}
	}

	won, lost := 0, 0
	for _, d := range deals {
		if s, ok := byStage[d.Stage]; ok {
			s.Count++
			s.Value += d.Value
		}

		switch d.Stage {
		case models.StageClosedWon:
			won++
			stats.WonValue += d.Value
		case models.StageClosedLost:
			lost++
		default:
			stats.OpenDeals++
			stats.OpenValue += d.Value
			stats.WeightedValue += d.Value * float64(d.Probability) / 100
		}
	}
	if won+lost > 0 {
		stats.WinRate = float64(won) * 100 / float64(won+lost)
	}

	for _, stage := range models.DealStages {
		s := byStage[stage]
		s.ValueFmt = normalize.FormatRupiah(s.Value)
		stats.Pipeline = append(stats.Pipeline, *s)
	}

	for _, a := range activities {
		stats.ActivitiesByType[a.Type]++
		if a.Completed {
			stats.CompletedActivities++
		} else if a.Type == models.ActivityTask {
			stats.OpenTasks++
		}
	}
	if len(activities) > 0 {
		stats.ActivityCompletion = float64(stats.CompletedActivities) * 100 / float64(len(activities))
	}

	stats.OpenValueFmt = normalize.FormatRupiah(stats.OpenValue)
	stats.WeightedValueFmt = normalize.FormatRupiah(stats.WeightedValue)
	stats.WonValueFmt = normalize.FormatRupiah(stats.WonValue)
	stats.TotalRevenueFmt = normalize.FormatRupiah(stats.TotalRevenue)

	return stats
}
