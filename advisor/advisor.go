// Package advisor asks a language model to explain a rebalancing report.
package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/etnz/rebalance"
)

// Generator produces text from a prompt.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// ErrNoAnswer is returned when the generator produced no text.
var ErrNoAnswer = errors.New("no answer generated")

const instructions = `You are a portfolio rebalancing assistant.
The portfolio is split between fixed income and variable income. Variable income
is split in four categories, and each holding has a target share of its category.
A holding's target value is the total portfolio value multiplied by the variable
income target, its category target and its own target. The gap is the target
value minus the current value: a positive gap means the holding is underfunded.

Using only the report below, explain in a few short paragraphs:
1. How far the portfolio is from its fixed/variable targets.
2. Which categories are over or under weight.
3. What to buy next with the monthly contribution, and why.
Do not recommend selling. Amounts are in %s.
`

// Prompt builds the prompt explaining r. question, when not empty, is appended
// as the user's own question.
func Prompt(r *rebalance.Report, question string) (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("cannot encode report: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, instructions, r.Currency)
	b.WriteString("\nReport:\n```json\n")
	b.Write(data)
	b.WriteString("\n```\n")
	if q := strings.TrimSpace(question); q != "" {
		fmt.Fprintf(&b, "\nAlso answer this question: %s\n", q)
	}
	return b.String(), nil
}

// Advise asks g to explain r.
func Advise(ctx context.Context, g Generator, r *rebalance.Report, question string) (string, error) {
	prompt, err := Prompt(r, question)
	if err != nil {
		return "", err
	}
	answer, err := g.GenerateContent(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("cannot get advice: %w", err)
	}
	if strings.TrimSpace(answer) == "" {
		return "", ErrNoAnswer
	}
	return answer, nil
}
