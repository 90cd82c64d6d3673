package service

import (
	"fmt"
	"math"
	"strings"

	"github.com/fadilmartias/talent-fit/internal/model"
	"github.com/tidwall/gjson"
)

// Verdict is the validated result of one reasoning call.
type Verdict struct {
	Score int
	// Outcome is derived from Score.
	Outcome model.Outcome
	// ReportedOutcome is the label the model gave, kept for diagnostics.
	ReportedOutcome model.Outcome
	Report          string
}

var outcomeLabels = map[string]model.Outcome{
	"FIT":      model.OutcomeFit,
	"NOT FIT":  model.OutcomeNotFit,
	"APTO":     model.OutcomeFit,
	"NÃO APTO": model.OutcomeNotFit,
}

// ExtractJSONObject returns the first balanced {...} span in raw that is
// valid JSON. Braces inside string literals do not count toward nesting.
func ExtractJSONObject(raw string) (string, bool) {
	for start := strings.IndexByte(raw, '{'); start >= 0; {
		if end := matchBrace(raw, start); end > 0 {
			candidate := raw[start : end+1]
			if gjson.Valid(candidate) {
				return candidate, true
			}
		}
		next := strings.IndexByte(raw[start+1:], '{')
		if next < 0 {
			break
		}
		start += next + 1
	}
	return "", false
}

// matchBrace returns the index of the brace closing the one at open, or -1.
func matchBrace(s string, open int) int {
	depth := 0
	inString := false
	escaped := false
	for i := open; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// ParseVerdict extracts and validates the structured answer of the model.
func ParseVerdict(raw string) (*Verdict, error) {
	obj, ok := ExtractJSONObject(raw)
	if !ok {
		return nil, ErrInvalidResponseFormat
	}

	score := lookup(obj, "score")
	if score.Type != gjson.Number {
		return nil, fmt.Errorf("%w: score must be a number, got %s", ErrInvalidAnalysisData, describe(score))
	}
	rounded := math.Round(score.Float())
	if math.IsNaN(rounded) || rounded < 0 || rounded > 100 {
		return nil, fmt.Errorf("%w: score %v out of range 0-100", ErrInvalidAnalysisData, score.Float())
	}

	label := lookup(obj, "outcome", "resultado")
	if label.Type != gjson.String {
		return nil, fmt.Errorf("%w: outcome must be a string, got %s", ErrInvalidAnalysisData, describe(label))
	}
	reported, known := outcomeLabels[label.String()]
	if !known {
		return nil, fmt.Errorf("%w: unrecognized outcome %q", ErrInvalidAnalysisData, label.String())
	}

	report := lookup(obj, "report", "relatorio_detalhado")
	if report.Type != gjson.String || strings.TrimSpace(report.String()) == "" {
		return nil, fmt.Errorf("%w: report must be non-empty text", ErrInvalidAnalysisData)
	}

	s := int(rounded)
	return &Verdict{
		Score:           s,
		Outcome:         model.OutcomeForScore(s),
		ReportedOutcome: reported,
		Report:          strings.TrimSpace(report.String()),
	}, nil
}

func lookup(obj string, keys ...string) gjson.Result {
	for _, k := range keys {
		if r := gjson.Get(obj, k); r.Exists() {
			return r
		}
	}
	return gjson.Result{}
}

func describe(r gjson.Result) string {
	if !r.Exists() {
		return "nothing"
	}
	return r.Type.String() + " " + r.Raw
}
