package templex

import (
	"context"
	"strings"

	"github.com/itsatony/go-templex/internal"
	"go.uber.org/zap"
)

// ConditionalStage reduces {{#IF path}} then {{#ELSE}} else {{/IF}} blocks,
// innermost first, until no opener is left.
//
// Each pass picks the last block whose branches hold no further opener,
// evaluates its condition and splices in the trimmed winning branch. When no
// such block exists the first opener is paired with the first closer after
// it as a best-effort fallback. An opener that can be paired with nothing is
// left in the text.
//
// A condition that cannot be resolved is treated as false unless
// RaiseOnError is set.
type ConditionalStage struct {
	RaiseOnError bool
}

// NewConditionalStage creates a conditional stage with the given failure policy.
func NewConditionalStage(raiseOnError bool) *ConditionalStage {
	return &ConditionalStage{RaiseOnError: raiseOnError}
}

// Name implements Stage.
func (s *ConditionalStage) Name() string { return StageNameIf }

// Apply implements Stage.
func (s *ConditionalStage) Apply(_ context.Context, text string, data *Context, rt Runtime) (string, error) {
	logger := runtimeLogger(rt)

	for strings.Contains(text, internal.StrIfOpen) {
		openers := strings.Count(text, internal.StrIfOpen)

		block, ok := internal.FindInnermostConditional(text)
		if !ok {
			block, ok = internal.FindFallbackConditional(text)
			if ok {
				logger.Debug(LogMsgConditionFallback, zap.String(LogFieldCondition, block.Condition))
			}
		}
		if !ok {
			logger.Debug(LogMsgConditionStalled, zap.Int(LogFieldItems, openers))
			break
		}

		truth, err := s.evaluate(data, block.Condition, rt)
		if err != nil {
			return "", err
		}

		branch := block.Then
		if !truth {
			branch = block.Else
		}
		text = text[:block.Start] + strings.TrimSpace(branch) + text[block.End:]

		logger.Debug(LogMsgConditionReduced,
			zap.String(LogFieldCondition, block.Condition),
			zap.Bool(LogFieldResult, truth),
		)

		if strings.Count(text, internal.StrIfOpen) >= openers {
			logger.Debug(LogMsgConditionStalled, zap.Int(LogFieldItems, openers))
			break
		}
	}

	return text, nil
}

func (s *ConditionalStage) evaluate(data *Context, condition string, rt Runtime) (bool, error) {
	val, err := data.Resolve(condition)
	if err != nil {
		if s.RaiseOnError {
			return false, NewRenderError(ErrMsgConditionFailed, StageNameIf, condition, err)
		}
		suppressed(rt, StageNameIf, condition, err)
		return false, nil
	}
	return val.Truthy(), nil
}
