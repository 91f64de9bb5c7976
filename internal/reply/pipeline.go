package reply

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/dinolingo-lambda/internal/config"
	"github.com/saulo-duarte/dinolingo-lambda/internal/llm"
)

// Policy holds the limits every exercise service applies to a generation.
type Policy struct {
	Timeout     time.Duration
	StrictCount bool
}

// Fetch sends req through the gateway once and returns the normalized
// reply. A nil gateway means no credential was configured and fails before
// any network call.
func Fetch(ctx context.Context, gw llm.Gateway, req llm.Request, timeout time.Duration) (string, error) {
	if gw == nil {
		return "", llm.ErrMissingCredential
	}

	log := config.WithContext(ctx).WithFields(logrus.Fields{
		"call_id":  uuid.NewString(),
		"provider": gw.Provider(),
		"model":    req.Model,
	})

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	raw, err := gw.Complete(ctx, req)
	if err != nil {
		log.WithError(err).Error("Completion request failed")
		return "", err
	}

	log.WithField("elapsed", time.Since(start).String()).Debugf("Raw model reply:\n%s", raw)
	return Normalize(raw), nil
}

// Describe renders err as the detail message of a 500 response.
func Describe(err error, prefix string) string {
	var verr *ValidationError
	switch {
	case errors.Is(err, llm.ErrMissingCredential):
		return llm.ErrMissingCredential.Error()
	case errors.As(err, &verr) && verr.Kind == MalformedJSON:
		return "Invalid JSON from AI: " + verr.Detail
	default:
		return prefix + err.Error()
	}
}
