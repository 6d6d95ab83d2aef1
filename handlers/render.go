// Copyright (c) 2025 Weaseltime420.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"github.com/Weaseltime420/Vote-Bot/vote"
)

// renderOptions formats a numbered option list:
//
//	1. Pizza
//	2. Tacos
func renderOptions(options []vote.Option) string {
	lines := make([]string, 0, len(options))
	for _, opt := range options {
		lines = append(lines, fmt.Sprintf("%d. %s", opt.Number, opt.Label))
	}
	return strings.Join(lines, "\n")
}

// renderStandings formats the breakdown in option order with a total.
// withAge appends how long the round has been open (admin view only).
func renderStandings(t vote.Tally, withAge bool) string {
	lines := make([]string, 0, len(t.Standings)+3)
	for _, st := range t.Standings {
		lines = append(lines, fmt.Sprintf("%d. %s — %d", st.Number, st.Label, st.Votes))
	}
	lines = append(lines, "", fmt.Sprintf("Total votes: %d", t.Total))
	if withAge {
		lines = append(lines, fmt.Sprintf("Vote opened %s.", humanize.Time(t.OpenedAt)))
	}
	return strings.Join(lines, "\n")
}

// renderOutcome names the winner, or every leader when counts tie.
func renderOutcome(t vote.Tally) string {
	winners := t.Winners()
	switch len(winners) {
	case 0:
		return "No votes have been cast yet."
	case 1:
		return fmt.Sprintf("Winner: %s (%s).",
			winners[0].Label, english.Plural(winners[0].Votes, "vote", ""))
	default:
		labels := make([]string, 0, len(winners))
		for _, st := range winners {
			labels = append(labels, st.Label)
		}
		return fmt.Sprintf("Tie between %s (%s each).",
			english.WordSeries(labels, "and"),
			english.Plural(winners[0].Votes, "vote", ""))
	}
}
