package service

import (
	"context"
	"unicode/utf8"

	"github.com/fadilmartias/talent-fit/internal/logger"
	"github.com/fadilmartias/talent-fit/internal/model"
	"go.uber.org/zap"
)

const defaultMaxLogLength = 200

type AssessmentInput struct {
	RoleDescription      string
	RoleRequirements     string
	CandidateDescription string
	Profile              *model.EnrichedProfile
}

type AssessmentServiceInterface interface {
	Assess(ctx context.Context, in AssessmentInput) (*Verdict, error)
}

// AssessmentService turns role and candidate data into a validated verdict
// with a single reasoning call. It does not retry.
type AssessmentService struct {
	reasoner  Reasoner
	logger    *zap.Logger
	maxLogLen int
}

func NewAssessmentService(reasoner Reasoner, log *zap.Logger) *AssessmentService {
	return &AssessmentService{
		reasoner:  reasoner,
		logger:    log,
		maxLogLen: defaultMaxLogLength,
	}
}

func (s *AssessmentService) Assess(ctx context.Context, in AssessmentInput) (*Verdict, error) {
	prompt, err := BuildDataPrompt(in)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("reasoning request",
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.Bool("enriched", in.Profile != nil),
		zap.String("prompt_preview", logger.TruncateForLog(prompt, s.maxLogLen)),
	)

	raw, err := s.reasoner.Complete(ctx, SystemPrompt(), prompt)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("reasoning response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", logger.TruncateForLog(raw, s.maxLogLen)),
	)

	verdict, err := ParseVerdict(raw)
	if err != nil {
		s.logger.Warn("reasoning response rejected",
			zap.Error(err),
			zap.String("response_preview", logger.TruncateForLog(raw, s.maxLogLen)),
		)
		return nil, err
	}

	if verdict.ReportedOutcome != verdict.Outcome {
		s.logger.Warn("model outcome disagrees with score, using score",
			zap.Int("score", verdict.Score),
			zap.String("reported", string(verdict.ReportedOutcome)),
			zap.String("outcome", string(verdict.Outcome)),
		)
	}
	return verdict, nil
}
