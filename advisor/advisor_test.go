package advisor

import (
	"context"
	"errors"
	"testing"

	"github.com/etnz/rebalance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type fakeGenerator struct {
	prompt string
	answer string
	err    error
}

func (f *fakeGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.answer, f.err
}

func TestPrompt(t *testing.T) {
	r := rebalance.Analyze(rebalance.DemoSnapshot())

	p, err := Prompt(r, "")
	require.NoError(t, err)
	assert.Contains(t, p, "Amounts are in BRL.")
	assert.Contains(t, p, `"bestBuy"`)
	assert.Contains(t, p, "MXRF11")
	assert.NotContains(t, p, "Also answer")

	p, err = Prompt(r, "  should I buy BBAS3?  ")
	require.NoError(t, err)
	assert.Contains(t, p, "Also answer this question: should I buy BBAS3?\n")
}

func TestAdvise(t *testing.T) {
	r := rebalance.Analyze(rebalance.DemoSnapshot())
	g := &fakeGenerator{answer: "Buy MXRF11."}

	got, err := Advise(context.Background(), g, r, "")
	require.NoError(t, err)
	assert.Equal(t, "Buy MXRF11.", got)
	assert.Contains(t, g.prompt, "positive gap means the holding is underfunded")
}

func TestAdvise_Errors(t *testing.T) {
	r := rebalance.Analyze(rebalance.EmptySnapshot())
	boom := errors.New("boom")

	_, err := Advise(context.Background(), &fakeGenerator{err: boom}, r, "")
	assert.ErrorIs(t, err, boom)

	_, err = Advise(context.Background(), &fakeGenerator{answer: " \n"}, r, "")
	assert.ErrorIs(t, err, ErrNoAnswer)
}

func TestNewGemini_MissingKey(t *testing.T) {
	_, err := NewGemini(context.Background(), "")
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestExtractText(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: "Buy "}, {Text: "MXRF11."}}},
		}},
	}
	got, err := extractText(resp)
	require.NoError(t, err)
	assert.Equal(t, "Buy MXRF11.", got)

	_, err = extractText(&genai.GenerateContentResponse{})
	assert.ErrorIs(t, err, ErrNoAnswer)
	_, err = extractText(nil)
	assert.ErrorIs(t, err, ErrNoAnswer)
}
