// Package guard enforces the reply language of LLM calls. A reply written in
// the wrong language is retried with a corrective system instruction; when
// retries run out the first reply is returned as is.
package guard

import (
	"context"
	"log/slog"

	"github.com/MikeSquared-Agency/wisdom/internal/llm"
)

// DefaultMaxRetries is the number of corrective retries most callers use.
const DefaultMaxRetries = 1

type Guard struct {
	llm    llm.Invoker
	logger *slog.Logger
}

func New(invoker llm.Invoker, logger *slog.Logger) *Guard {
	return &Guard{llm: invoker, logger: logger}
}

// Invoke calls the wrapped invoker and retries up to maxRetries times while
// the reply is not predominantly in the expected language. Invoker errors
// are returned unchanged.
func (g *Guard) Invoke(ctx context.Context, params llm.Params, expected Language, maxRetries int) (*llm.Result, error) {
	primary, err := g.llm.Invoke(ctx, params)
	if err != nil {
		return nil, err
	}

	text, ok := primary.Text()
	if !ok {
		g.logger.Debug("language guard skipped, no text content", "expected", expected)
		return primary, nil
	}

	ratio := ChineseRatio(text)
	if !Mismatched(expected, ratio) {
		return primary, nil
	}

	g.logger.Warn("language mismatch detected",
		"expected", expected,
		"chinese_ratio", ratio,
		"max_retries", maxRetries,
	)

	corrective := CorrectiveMessage(expected)
	for attempt := 1; attempt <= maxRetries; attempt++ {
		retryParams := llm.Params{
			Messages: InsertCorrective(params.Messages, corrective),
			Options:  params.Options,
		}

		retry, err := g.llm.Invoke(ctx, retryParams)
		if err != nil {
			return nil, err
		}

		text, ok := retry.Text()
		if !ok {
			g.logger.Info("language retry returned no text", "expected", expected, "attempt", attempt)
			return retry, nil
		}

		ratio = ChineseRatio(text)
		if !Mismatched(expected, ratio) {
			g.logger.Info("language mismatch resolved",
				"expected", expected,
				"chinese_ratio", ratio,
				"attempt", attempt,
			)
			return retry, nil
		}

		g.logger.Warn("language retry still mismatched",
			"expected", expected,
			"chinese_ratio", ratio,
			"attempt", attempt,
		)
	}

	g.logger.Warn("language retries exhausted, returning original response",
		"expected", expected,
		"max_retries", maxRetries,
	)
	return primary, nil
}
