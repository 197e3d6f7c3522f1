package service

import (
	"encoding/base64"
	"fmt"
	"math"
	"strconv"
	"strings"

	"biodiversity-credits/internal/core/domain"
	"biodiversity-credits/pkg/apperror"
)

// TaggedCodecPrefix marks values produced by TaggedCodec.
const TaggedCodecPrefix = "FHE-"

// TaggedCodec implements ports.ScalarCodec as a reversible encoding:
// "FHE-" + base64(decimal). It is not encryption; it stands in for a
// ciphertext so callers treat scores as opaque.
type TaggedCodec struct{}

// NewTaggedCodec creates a new TaggedCodec.
func NewTaggedCodec() *TaggedCodec {
	return &TaggedCodec{}
}

// Encode renders value in its shortest round-trippable decimal form and tags it.
func (c *TaggedCodec) Encode(value float64) (domain.EncryptedValue, error) {
	if !isFinite(value) {
		return "", apperror.ErrNonFiniteValue()
	}
	payload := base64.StdEncoding.EncodeToString([]byte(formatScalar(value)))
	return domain.EncryptedValue(TaggedCodecPrefix + payload), nil
}

// Decode reverses Encode. Untagged input is parsed as a plain number so
// legacy records keep working.
func (c *TaggedCodec) Decode(value domain.EncryptedValue) (float64, error) {
	s := string(value)
	if !strings.HasPrefix(s, TaggedCodecPrefix) {
		return parseUntagged(s)
	}

	raw, err := base64.StdEncoding.DecodeString(s[len(TaggedCodecPrefix):])
	if err != nil {
		return 0, apperror.ErrDecode(fmt.Errorf("decoding base64 payload: %w", err))
	}
	return parseScalar(string(raw))
}

func formatScalar(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseScalar(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, apperror.ErrDecode(fmt.Errorf("parsing scalar: %w", err))
	}
	if !isFinite(v) {
		return 0, apperror.ErrDecode(fmt.Errorf("scalar %q is not finite", s))
	}
	return v, nil
}

// parseUntagged is the numeric fallback shared by every codec.
func parseUntagged(s string) (float64, error) {
	v, err := parseScalar(s)
	if err != nil {
		return 0, apperror.ErrDecode(fmt.Errorf("value carries no codec tag and is not numeric: %q", s))
	}
	return v, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
