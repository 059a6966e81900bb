package fiscal

import "sort"

// JurisdictionSummary aggregates one jurisdiction name across every
// document it appears in: program counts and budget execution sums.
type JurisdictionSummary struct {
	Name     string  `json:"name"`
	Programs int     `json:"programs"`
	Budgeted float64 `json:"budgeted"`
	Accrued  float64 `json:"accrued"`
	Paid     float64 `json:"paid"`
}

// ProgramSummary is one program with its goal count and jurisdiction name
// resolved.
type ProgramSummary struct {
	Program      Program `json:"program"`
	Jurisdiction string  `json:"jurisdiction"`
	Goals        int     `json:"goals"`
}

// GoalProgress is one goal with its execution percentage resolved, nil when
// the annual target is not positive.
type GoalProgress struct {
	Goal      Goal     `json:"goal"`
	Program   string   `json:"program"`
	Execution *float64 `json:"execution"`
}

// ProgramExplorer is the jurisdiction/program/goal drill-down for the
// provincial view.
type ProgramExplorer struct {
	Jurisdictions []JurisdictionSummary `json:"jurisdictions"`
	Programs      []ProgramSummary      `json:"programs"`
	Goals         []GoalProgress        `json:"goals"`
}

// ExploreOptions filters the explorer by jurisdiction name and/or program
// name; empty strings mean no filter.
type ExploreOptions struct {
	Jurisdiction string
	Program      string
}

func ExplorePrograms(jurisdictions []Jurisdiction, programs []Program, goals []Goal, opts ExploreOptions) ProgramExplorer {
	juriName := make(map[string]string, len(jurisdictions))
	for _, j := range jurisdictions {
		juriName[j.ID] = j.Name
	}

	goalsPerProgram := make(map[string]int)
	for _, g := range goals {
		goalsPerProgram[g.ProgramID]++
	}

	// Jurisdictions with the same name across documents merge into one row.
	byName := make(map[string]*JurisdictionSummary)
	for _, p := range programs {
		name := juriName[p.JurisdictionID]
		if name == "" {
			continue
		}
		s := byName[name]
		if s == nil {
			s = &JurisdictionSummary{Name: name}
			byName[name] = s
		}
		s.Programs++
		s.Budgeted += sanitize(p.Budgeted)
		s.Accrued += sanitize(p.Accrued)
		s.Paid += sanitize(p.Paid)
	}

	explorer := ProgramExplorer{}
	for _, s := range byName {
		explorer.Jurisdictions = append(explorer.Jurisdictions, *s)
	}
	sort.Slice(explorer.Jurisdictions, func(i, j int) bool {
		return explorer.Jurisdictions[i].Programs > explorer.Jurisdictions[j].Programs
	})

	programName := make(map[string]string, len(programs))
	selected := make(map[string]bool)
	for _, p := range programs {
		programName[p.ID] = p.Name
		if opts.Jurisdiction != "" && juriName[p.JurisdictionID] != opts.Jurisdiction {
			continue
		}
		if opts.Program != "" && p.Name != opts.Program {
			continue
		}
		selected[p.ID] = true
		explorer.Programs = append(explorer.Programs, ProgramSummary{
			Program:      p,
			Jurisdiction: juriName[p.JurisdictionID],
			Goals:        goalsPerProgram[p.ID],
		})
	}

	for _, g := range goals {
		if !selected[g.ProgramID] {
			continue
		}
		progress := GoalProgress{Goal: g, Program: programName[g.ProgramID]}
		if rate, ok := ExecutionRate(g.Executed, g.Annual); ok {
			progress.Execution = &rate
		}
		explorer.Goals = append(explorer.Goals, progress)
	}
	return explorer
}
