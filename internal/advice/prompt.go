package advice

import (
	"fmt"
	"strings"

	"github.com/abhisek/checkup/internal/quiz"
	"github.com/abhisek/checkup/internal/scoring"
)

const systemPrompt = `You are a pragmatic advisor for owners of small and medium businesses. You write short, concrete next steps in plain English. Never promise results, never mention that you are an AI and never ask for contact details.`

func buildUserMessage(in Input) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Company: %s\n", orDash(in.Company))
	fmt.Fprintf(&b, "Result: %s (%d of %d points)\n", in.Result.Tier.Title(), in.Result.Total, scoring.MaxTotal)
	if in.Result.Downgraded {
		fmt.Fprintf(&b, "Note: the result was lowered from %s because of a critically weak area.\n", in.Result.BaseTier.Title())
	}

	b.WriteString("\nScores by area:\n")
	for _, c := range quiz.AllCategories() {
		fmt.Fprintf(&b, "- %s: %d/%d\n", c.Info().Label, in.Result.ByCategory[c], scoring.MaxPerCategory)
	}

	weakest := in.Result.WeakestCategories()
	labels := make([]string, len(weakest))
	for i, c := range weakest {
		labels[i] = c.Info().Label
	}
	fmt.Fprintf(&b, "\nWeakest area(s): %s\n", strings.Join(labels, ", "))

	if len(in.Weak) > 0 {
		b.WriteString("\nAnswers that scored lowest:\n")
		for _, w := range in.Weak {
			fmt.Fprintf(&b, "- %s -> %s\n", w.Question, w.Answer)
		}
	}

	fmt.Fprintf(&b, `
Instructions:
Write a headline and up to %d actions focused on the weakest area(s).
Each action must be doable by the owner within 30 days without hiring anyone.
Use plain ASCII text.`, MaxActions)

	return b.String()
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
