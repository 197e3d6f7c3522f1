package service

import (
	"biodiversity-credits/internal/core/domain"
	"biodiversity-credits/internal/core/ports"
	"biodiversity-credits/pkg/apperror"

	"github.com/rs/zerolog"
)

// TransformEngine implements ports.TransformEngine on top of a ScalarCodec:
// decode, apply the operation's factor, re-encode.
type TransformEngine struct {
	codec   ports.ScalarCodec
	lenient bool
	log     zerolog.Logger
}

// NewTransformEngine creates a transform engine. With lenient set, unknown
// operations return the value unchanged instead of failing.
func NewTransformEngine(codec ports.ScalarCodec, lenient bool, log zerolog.Logger) *TransformEngine {
	return &TransformEngine{codec: codec, lenient: lenient, log: log}
}

// Apply runs op against value and returns the re-encoded result.
func (e *TransformEngine) Apply(op domain.OperationKind, value domain.EncryptedValue) (domain.EncryptedValue, error) {
	factor, ok := op.Factor()
	if !ok {
		if !e.lenient {
			return "", apperror.ErrUnsupportedOperation(string(op))
		}
		e.log.Warn().Str("operation", string(op)).Msg("unsupported transform, passing value through")
		factor = 1
	}

	plain, err := e.codec.Decode(value)
	if err != nil {
		return "", err
	}

	return e.codec.Encode(plain * factor)
}
