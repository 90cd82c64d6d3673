package service

import (
	"errors"
	"testing"

	"github.com/fadilmartias/talent-fit/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONObject(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
		ok   bool
	}{
		{
			name: "bare",
			raw:  `{"score": 80}`,
			want: `{"score": 80}`,
			ok:   true,
		},
		{
			name: "prose around",
			raw:  `Here is my analysis: {"score": 80, "outcome": "FIT"} Hope this helps!`,
			want: `{"score": 80, "outcome": "FIT"}`,
			ok:   true,
		},
		{
			name: "nested and braces in strings",
			raw:  "```json\n{\"report\": \"uses {curly} braces and \\\"quotes\\\"\", \"meta\": {\"a\": 1}}\n```",
			want: `{"report": "uses {curly} braces and \"quotes\"", "meta": {"a": 1}}`,
			ok:   true,
		},
		{
			name: "skips invalid leading span",
			raw:  `Template: {score} then {"score": 55}`,
			want: `{"score": 55}`,
			ok:   true,
		},
		{
			name: "trailing text after two objects",
			raw:  `{"a": 1} and {"b": 2}`,
			want: `{"a": 1}`,
			ok:   true,
		},
		{name: "unbalanced", raw: `{"score": 80`, ok: false},
		{name: "no object", raw: "I cannot help with that.", ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ExtractJSONObject(tc.raw)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseVerdict(t *testing.T) {
	v, err := ParseVerdict(`Here is my analysis: {"score": 82.4, "outcome": "FIT", "report": "Strong {React} background"} Hope this helps!`)
	require.NoError(t, err)
	assert.Equal(t, 82, v.Score)
	assert.Equal(t, model.OutcomeFit, v.Outcome)
	assert.Equal(t, model.OutcomeFit, v.ReportedOutcome)
	assert.Equal(t, "Strong {React} background", v.Report)
}

func TestParseVerdictThreshold(t *testing.T) {
	cases := []struct {
		raw     string
		score   int
		outcome model.Outcome
	}{
		{`{"score": 70, "outcome": "NOT FIT", "report": "ok"}`, 70, model.OutcomeFit},
		{`{"score": 69, "outcome": "FIT", "report": "ok"}`, 69, model.OutcomeNotFit},
		{`{"score": 69.5, "outcome": "FIT", "report": "ok"}`, 70, model.OutcomeFit},
		{`{"score": 69.4, "outcome": "NOT FIT", "report": "ok"}`, 69, model.OutcomeNotFit},
	}
	for _, tc := range cases {
		v, err := ParseVerdict(tc.raw)
		require.NoError(t, err, tc.raw)
		assert.Equal(t, tc.score, v.Score, tc.raw)
		assert.Equal(t, tc.outcome, v.Outcome, tc.raw)
	}
}

func TestParseVerdictLegacyFields(t *testing.T) {
	v, err := ParseVerdict(`{"score": 40, "resultado": "NÃO APTO", "relatorio_detalhado": "Falta experiência"}`)
	require.NoError(t, err)
	assert.Equal(t, 40, v.Score)
	assert.Equal(t, model.OutcomeNotFit, v.Outcome)
	assert.Equal(t, model.OutcomeNotFit, v.ReportedOutcome)
	assert.Equal(t, "Falta experiência", v.Report)
}

func TestParseVerdictRejects(t *testing.T) {
	cases := map[string]struct {
		raw  string
		want error
	}{
		"no json":           {raw: "sorry, no idea", want: ErrInvalidResponseFormat},
		"non numeric score": {raw: `{"score": "high", "outcome": "FIT", "report": "r"}`, want: ErrInvalidAnalysisData},
		"missing score":     {raw: `{"outcome": "FIT", "report": "r"}`, want: ErrInvalidAnalysisData},
		"unknown outcome":   {raw: `{"score": 50, "resultado": "MAYBE", "report": "r"}`, want: ErrInvalidAnalysisData},
		"lowercase outcome": {raw: `{"score": 50, "outcome": "fit", "report": "r"}`, want: ErrInvalidAnalysisData},
		"empty report":      {raw: `{"score": 50, "outcome": "NOT FIT", "report": "  "}`, want: ErrInvalidAnalysisData},
		"report not text":   {raw: `{"score": 50, "outcome": "NOT FIT", "report": 12}`, want: ErrInvalidAnalysisData},
		"score above range": {raw: `{"score": 120, "outcome": "FIT", "report": "r"}`, want: ErrInvalidAnalysisData},
		"score below range": {raw: `{"score": -3, "outcome": "NOT FIT", "report": "r"}`, want: ErrInvalidAnalysisData},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			v, err := ParseVerdict(tc.raw)
			assert.Nil(t, v)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}
