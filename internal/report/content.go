// Package report holds the tier-specific report copy and builds the
// payload handed to the delivery collaborators.
package report

import (
	"github.com/abhisek/checkup/internal/scoring"
)

// Content is the report copy shown for a tier.
type Content struct {
	Title         string
	Diagnosis     string
	Priorities    []string
	Institutional string
	Closing       string
}

const institutional = "The next step is your Strategic Session with the founders of the method " +
	"(60 minutes online, free of charge).\n\n" +
	"In 60 minutes you will get clear direction on what to adjust to strengthen your structure and grow profit.\n\n" +
	"Slots are limited each week so every session gets individual attention."

const closing = "Now is the time to turn diagnosis into decision."

var contents = map[scoring.Tier]Content{
	scoring.TierLow: {
		Title: scoring.TierLow.Title(),
		Diagnosis: "Your diagnosis shows weaknesses that erode margin, profit and predictability. " +
			"Without clear organization and control, results can be consumed even with meaningful revenue.",
		Priorities: []string{
			"Rebuild the management base and strengthen leadership",
			"Regain financial and operational control",
			"Align the team to sustain operations and protect profit",
		},
		Institutional: institutional,
		Closing:       closing,
	},
	scoring.TierMid: {
		Title: scoring.TierMid.Title(),
		Diagnosis: "Your business shows basic organization and active leadership, but there are still " +
			"important points to strengthen to reduce risk and secure stability.",
		Priorities: []string{
			"Improve internal processes",
			"Strengthen middle management",
			"Consolidate cultural and operational standards",
			"Protect margin and profit from operational swings",
		},
		Institutional: institutional,
		Closing:       closing,
	},
	scoring.TierHigh: {
		Title: scoring.TierHigh.Title(),
		Diagnosis: "Your business already runs an organized operation with active leadership, an engaged team " +
			"and alignment between operations, margin and profit. The focus now is raising performance " +
			"and capturing opportunities for even more consistent results.",
		Priorities: []string{
			"Develop leaders and indicator-driven management",
			"Optimize processes and operational efficiency",
			"Grow margin and profit while keeping growth sustainable",
		},
		Institutional: institutional,
		Closing:       closing,
	},
}

// ContentFor returns the copy for a tier. Unknown tiers get the Low copy.
func ContentFor(t scoring.Tier) Content {
	c, ok := contents[t]
	if !ok {
		c = contents[scoring.TierLow]
	}
	c.Priorities = append([]string(nil), c.Priorities...)
	return c
}
