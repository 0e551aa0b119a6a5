package matching

import (
	"fmt"
	"strings"

	"github.com/jonathan/talent-match/internal/types"
)

// strongSkillMatchCount is the matched-skill count at which a partial
// skills match still reads as a strength.
const strongSkillMatchCount = 5

// buildStrengths generates human-readable strengths by inspecting each
// dimension's status in fixed order.
func buildStrengths(dims map[string]types.DimensionResult) []string {
	var out []string
	for _, name := range dimensionOrder {
		d, ok := dims[name]
		if !ok {
			continue
		}
		switch name {
		case types.DimensionSkills:
			matched := detailStrings(d.Detail, "matched")
			if d.Status == StatusPerfectMatch && len(matched) > 0 {
				out = append(out, fmt.Sprintf("Has all required skills (%s)", strings.Join(matched, ", ")))
			} else if len(matched) >= strongSkillMatchCount {
				out = append(out, fmt.Sprintf("Strong skill match (%d required skills)", len(matched)))
			}
		case types.DimensionExperience:
			if d.Status == StatusWithinRange {
				out = append(out, "Experience within the required range")
			}
		case types.DimensionEducation:
			if d.Status == StatusMeetsRequirement {
				out = append(out, "Meets the education requirement")
			}
		case types.DimensionLocation:
			switch d.Status {
			case StatusExactMatch:
				out = append(out, "Located in the job's city")
			case StatusRemote:
				out = append(out, "Remote position, location is no barrier")
			}
		case types.DimensionCompensation:
			switch d.Status {
			case StatusWithinRange:
				out = append(out, "Salary expectation fits the offered range")
			case StatusBelowRange:
				out = append(out, "Salary expectation below the offered range")
			}
		case types.DimensionAssessments:
			if d.Status == StatusExcellent {
				out = append(out, "Passed relevant skill assessments with high scores")
			}
		}
	}
	return out
}

// buildWeaknesses generates human-readable weaknesses by inspecting each
// dimension's status in fixed order.
func buildWeaknesses(dims map[string]types.DimensionResult) []string {
	var out []string
	for _, name := range dimensionOrder {
		d, ok := dims[name]
		if !ok {
			continue
		}
		switch name {
		case types.DimensionSkills:
			missing := detailStrings(d.Detail, "missing")
			if d.Status == StatusNoMatch {
				out = append(out, "None of the required skills matched")
			} else if len(missing) > 0 {
				out = append(out, fmt.Sprintf("Missing required skills: %s", strings.Join(missing, ", ")))
			}
		case types.DimensionExperience:
			switch d.Status {
			case StatusSignificantlyUnder:
				out = append(out, "Far less experience than the role requires")
			case StatusUnderQualified, StatusSlightlyUnder:
				out = append(out, "Less experience than the role requires")
			case StatusSignificantlyOver:
				out = append(out, "Substantially more experience than the role calls for")
			}
		case types.DimensionEducation:
			if strings.Contains(d.Status, StatusUnderQualified) {
				out = append(out, "Education below the required level")
			}
		case types.DimensionLocation:
			if d.Status == StatusOnsiteMismatch {
				out = append(out, "On-site role in a different city, not willing to relocate")
			}
		case types.DimensionCompensation:
			switch d.Status {
			case StatusSignificantlyAbove:
				out = append(out, "Salary expectation well above the offered range")
			case StatusAboveRange:
				out = append(out, "Salary expectation above the offered range")
			}
		case types.DimensionAssessments:
			switch d.Status {
			case StatusNoAssessments:
				out = append(out, "No completed skill assessments")
			case StatusNoneRelevant:
				out = append(out, "No assessments covering the required skills")
			case StatusNonePassed:
				out = append(out, "Relevant assessments attempted but not passed")
			}
		}
	}
	return out
}

// detailStrings extracts a []string entry from a dimension detail map.
func detailStrings(detail map[string]any, key string) []string {
	if detail == nil {
		return nil
	}
	v, ok := detail[key].([]string)
	if !ok {
		return nil
	}
	return v
}
