// Package behavior mines a candidate's application history into implicit
// preference signals.
package behavior

import (
	"sort"
	"strings"

	"github.com/jonathan/talent-match/internal/skills"
	"github.com/jonathan/talent-match/internal/types"
)

const (
	// HistoryCap bounds how many recent applications feed the analysis,
	// which bounds cost and biases the profile toward recent behavior.
	HistoryCap = 50

	// topN caps each ranked preference list.
	topN = 10
)

// AnalyzeHistory builds a PreferenceProfile from a candidate's applied
// jobs. The profile is derived, ephemeral state: recomputed on every call,
// never cached by the engine. An empty history yields an all-empty profile,
// the expected new-user case.
func AnalyzeHistory(history []types.AppliedJob, resolver skills.SynonymResolver) types.PreferenceProfile {
	profile := types.PreferenceProfile{TotalApplications: len(history)}
	if len(history) == 0 {
		return profile
	}

	recent := recentFirst(history)
	if len(recent) > HistoryCap {
		recent = recent[:HistoryCap]
	}

	skillCounts := make(map[string]int)
	locationCounts := make(map[string]int)
	jobTypeCounts := make(map[string]int)
	industryCounts := make(map[string]int)

	var salaries []float64
	salaryMin, salaryMax := 0.0, 0.0

	for _, a := range recent {
		job := a.Job
		for _, s := range skills.NormalizeAll(job.SkillsRequired, resolver) {
			skillCounts[s]++
		}
		if job.Location != nil {
			if loc := strings.TrimSpace(*job.Location); loc != "" {
				locationCounts[strings.ToLower(loc)]++
			}
		}
		if job.JobType != "" {
			jobTypeCounts[job.JobType]++
		}
		if job.Industry != "" {
			industryCounts[strings.ToLower(job.Industry)]++
		}
		if rng := job.SalaryRange; rng != nil && rng.Max > 0 {
			mid := (rng.Min + rng.Max) / 2
			if len(salaries) == 0 {
				salaryMin, salaryMax = rng.Min, rng.Max
			} else {
				salaryMin = min(salaryMin, rng.Min)
				salaryMax = max(salaryMax, rng.Max)
			}
			salaries = append(salaries, mid)
		}
	}

	profile.TopSkills = rankCounts(skillCounts)
	profile.TopLocations = rankCounts(locationCounts)
	profile.TopJobTypes = rankCounts(jobTypeCounts)
	profile.TopIndustries = rankCounts(industryCounts)

	if len(salaries) > 0 {
		sum := 0.0
		for _, s := range salaries {
			sum += s
		}
		profile.Salary = &types.SalaryStats{
			Min: salaryMin,
			Max: salaryMax,
			Avg: sum / float64(len(salaries)),
		}
	}

	return profile
}

// recentFirst returns a copy of the history sorted most-recent first.
func recentFirst(history []types.AppliedJob) []types.AppliedJob {
	out := make([]types.AppliedJob, len(history))
	copy(out, history)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AppliedAt.After(out[j].AppliedAt)
	})
	return out
}

// rankCounts turns a frequency table into a ranked list: count descending,
// value ascending on ties for determinism, capped to topN.
func rankCounts(counts map[string]int) []types.FrequencyEntry {
	if len(counts) == 0 {
		return nil
	}
	out := make([]types.FrequencyEntry, 0, len(counts))
	for v, c := range counts {
		out = append(out, types.FrequencyEntry{Value: v, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Value < out[j].Value
	})
	if len(out) > topN {
		out = out[:topN]
	}
	return out
}
