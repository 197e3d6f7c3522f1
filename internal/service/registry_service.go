package service

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"biodiversity-credits/internal/core/domain"
	"biodiversity-credits/internal/core/ports"
	"biodiversity-credits/pkg/apperror"

	"github.com/rs/zerolog"
)

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// creditRecord is the wire form of a credit stored under credit_<id>.
type creditRecord struct {
	Score        string  `json:"score"`
	Timestamp    int64   `json:"timestamp"`
	Owner        string  `json:"owner"`
	Location     string  `json:"location"`
	AreaSize     float64 `json:"areaSize"`
	SpeciesCount int     `json:"speciesCount"`
	Status       string  `json:"status"`
}

// CreditRegistry implements ports.CreditRegistry over an external ByteStore.
// The store is authoritative; nothing is cached between calls.
type CreditRegistry struct {
	store      ports.ByteStore
	codec      ports.ScalarCodec
	maxRetries int
	now        func() time.Time
	log        zerolog.Logger
}

// NewCreditRegistry creates a registry. maxRetries bounds the compare-and-swap
// loop used for index appends on stores that implement ports.VersionedStore.
func NewCreditRegistry(store ports.ByteStore, codec ports.ScalarCodec, maxRetries int, log zerolog.Logger) *CreditRegistry {
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &CreditRegistry{
		store:      store,
		codec:      codec,
		maxRetries: maxRetries,
		now:        time.Now,
		log:        log,
	}
}

// List returns every readable indexed credit, newest first. Unreadable or
// missing records are skipped and logged; an unavailable store reads as empty.
func (r *CreditRegistry) List(ctx context.Context) ([]domain.Credit, error) {
	credits := []domain.Credit{}
	if !r.store.IsAvailable(ctx) {
		r.log.Warn().Msg("registry backend unavailable, listing as empty")
		return credits, nil
	}

	ids, _, err := r.readIndex(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		credit, err := r.load(ctx, id)
		if err != nil {
			r.log.Warn().Err(err).Str("key", domain.CreditKey(id)).Msg("skipping unreadable credit record")
			continue
		}
		if credit == nil {
			r.log.Warn().Str("key", domain.CreditKey(id)).Msg("indexed credit has no record, skipping")
			continue
		}
		credits = append(credits, *credit)
	}

	sort.SliceStable(credits, func(i, j int) bool {
		if credits[i].Timestamp != credits[j].Timestamp {
			return credits[i].Timestamp > credits[j].Timestamp
		}
		return credits[i].ID > credits[j].ID
	})
	return credits, nil
}

// Get fetches a single credit by id.
func (r *CreditRegistry) Get(ctx context.Context, id string) (*domain.Credit, error) {
	if !r.store.IsAvailable(ctx) {
		return nil, apperror.ErrBackendUnavailable(fmt.Errorf("availability probe failed"))
	}
	credit, err := r.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if credit == nil {
		return nil, apperror.ErrNotFound("Credit")
	}
	return credit, nil
}

// Create validates the metrics, encodes the score, writes the record and
// then appends its id to the index. The two writes are not atomic: a failure
// between them leaves an unindexed record that List never shows.
func (r *CreditRegistry) Create(ctx context.Context, req ports.CreateCreditRequest) (*domain.Credit, error) {
	req.Location = strings.TrimSpace(req.Location)
	req.Owner = strings.TrimSpace(req.Owner)
	if err := validateCreateRequest(req); err != nil {
		return nil, err
	}

	if !r.store.IsAvailable(ctx) {
		return nil, apperror.ErrBackendUnavailable(fmt.Errorf("availability probe failed"))
	}

	score, err := r.codec.Encode(domain.ComputeScore(req.SpeciesCount, req.AreaSize))
	if err != nil {
		return nil, err
	}

	now := r.now()
	id, err := newCreditID(now)
	if err != nil {
		return nil, apperror.InternalError(err)
	}

	credit := &domain.Credit{
		ID:             id,
		EncryptedScore: score,
		Owner:          req.Owner,
		Location:       req.Location,
		AreaSize:       req.AreaSize,
		SpeciesCount:   req.SpeciesCount,
		Timestamp:      now.Unix(),
		Status:         domain.CreditStatusPending,
	}

	raw, err := json.Marshal(toRecord(credit))
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("marshal credit: %w", err))
	}
	if err := r.store.SetData(ctx, domain.CreditKey(id), raw); err != nil {
		return nil, apperror.ErrBackendUnavailable(fmt.Errorf("write credit record: %w", err))
	}

	if err := r.appendIndex(ctx, id); err != nil {
		r.log.Error().Err(err).Str("credit_id", id).Msg("credit record written but not indexed")
		return nil, err
	}

	r.log.Info().
		Str("credit_id", id).
		Str("owner", credit.Owner).
		Str("location", credit.Location).
		Msg("credit created")

	return credit, nil
}

// UpdateStatus performs a read-modify-write of one record. Fields the
// registry does not know about are preserved.
func (r *CreditRegistry) UpdateStatus(ctx context.Context, id string, status domain.CreditStatus, newScore *domain.EncryptedValue) (*domain.Credit, error) {
	if !status.IsValid() {
		return nil, apperror.Validation(fmt.Sprintf("invalid status %q", status))
	}

	key := domain.CreditKey(id)
	raw, err := r.store.GetData(ctx, key)
	if err != nil {
		return nil, apperror.ErrBackendUnavailable(fmt.Errorf("read credit record: %w", err))
	}
	if len(raw) == 0 {
		return nil, apperror.ErrNotFound("Credit")
	}

	if _, err := parseRecord(id, raw); err != nil {
		return nil, apperror.InternalError(err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("parse credit record %s: %w", id, err))
	}
	if fields == nil {
		return nil, apperror.InternalError(fmt.Errorf("credit record %s is not a JSON object", id))
	}

	if fields["status"], err = json.Marshal(string(status)); err != nil {
		return nil, apperror.InternalError(err)
	}
	if newScore != nil {
		if fields["score"], err = json.Marshal(string(*newScore)); err != nil {
			return nil, apperror.InternalError(err)
		}
	}

	updated, err := json.Marshal(fields)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("marshal credit record: %w", err))
	}
	if err := r.store.SetData(ctx, key, updated); err != nil {
		return nil, apperror.ErrBackendUnavailable(fmt.Errorf("write credit record: %w", err))
	}

	credit, err := parseRecord(id, updated)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	return credit, nil
}

// load returns nil, nil when the record is absent.
func (r *CreditRegistry) load(ctx context.Context, id string) (*domain.Credit, error) {
	raw, err := r.store.GetData(ctx, domain.CreditKey(id))
	if err != nil {
		return nil, apperror.ErrBackendUnavailable(fmt.Errorf("read credit record: %w", err))
	}
	if len(raw) == 0 {
		return nil, nil
	}
	credit, err := parseRecord(id, raw)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	return credit, nil
}

// readIndex returns the parsed ids together with the raw document, which is
// the expected value for a subsequent compare-and-swap.
func (r *CreditRegistry) readIndex(ctx context.Context) ([]string, []byte, error) {
	raw, err := r.store.GetData(ctx, domain.IndexKey)
	if err != nil {
		return nil, nil, apperror.ErrBackendUnavailable(fmt.Errorf("read credit index: %w", err))
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return nil, raw, nil
	}

	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		r.log.Warn().Err(err).Str("key", domain.IndexKey).Msg("credit index is not a JSON string array, treating as empty")
		return nil, raw, nil
	}
	return ids, raw, nil
}

func (r *CreditRegistry) appendIndex(ctx context.Context, id string) error {
	versioned, ok := r.store.(ports.VersionedStore)
	if !ok {
		// Last writer wins: a concurrent append between read and write is lost.
		ids, _, err := r.readIndex(ctx)
		if err != nil {
			return err
		}
		return r.writeIndex(ctx, appendUnique(ids, id))
	}

	for attempt := 1; attempt <= r.maxRetries; attempt++ {
		ids, current, err := r.readIndex(ctx)
		if err != nil {
			return err
		}
		if contains(ids, id) {
			return nil
		}

		next, err := json.Marshal(append(ids, id))
		if err != nil {
			return apperror.InternalError(fmt.Errorf("marshal credit index: %w", err))
		}

		swapped, err := versioned.CompareAndSwap(ctx, domain.IndexKey, current, next)
		if err != nil {
			return apperror.ErrBackendUnavailable(fmt.Errorf("swap credit index: %w", err))
		}
		if swapped {
			return nil
		}
		r.log.Debug().Int("attempt", attempt).Str("credit_id", id).Msg("credit index changed concurrently, merging")
	}

	return apperror.ErrBackendUnavailable(fmt.Errorf("credit index update conflicted %d times", r.maxRetries))
}

func (r *CreditRegistry) writeIndex(ctx context.Context, ids []string) error {
	raw, err := json.Marshal(ids)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("marshal credit index: %w", err))
	}
	if err := r.store.SetData(ctx, domain.IndexKey, raw); err != nil {
		return apperror.ErrBackendUnavailable(fmt.Errorf("write credit index: %w", err))
	}
	return nil
}

func validateCreateRequest(req ports.CreateCreditRequest) error {
	switch {
	case req.Owner == "":
		return apperror.Validation("owner is required")
	case req.Location == "":
		return apperror.Validation("location is required")
	case math.IsNaN(req.AreaSize) || math.IsInf(req.AreaSize, 0) || req.AreaSize <= 0:
		return apperror.Validation("area size must be a positive number")
	case req.SpeciesCount <= 0:
		return apperror.Validation("species count must be positive")
	}
	return nil
}

func toRecord(c *domain.Credit) creditRecord {
	return creditRecord{
		Score:        string(c.EncryptedScore),
		Timestamp:    c.Timestamp,
		Owner:        c.Owner,
		Location:     c.Location,
		AreaSize:     c.AreaSize,
		SpeciesCount: c.SpeciesCount,
		Status:       string(c.Status),
	}
}

// parseRecord rejects anything that is not a JSON object carrying at least
// an owner and a score.
func parseRecord(id string, raw []byte) (*domain.Credit, error) {
	var rec *creditRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("parse credit record %s: %w", id, err)
	}
	if rec == nil {
		return nil, fmt.Errorf("credit record %s is not a JSON object", id)
	}
	if rec.Owner == "" || rec.Score == "" {
		return nil, fmt.Errorf("credit record %s has no owner or score", id)
	}

	status := domain.CreditStatus(rec.Status)
	if status == "" {
		status = domain.CreditStatusPending
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("credit record %s has unknown status %q", id, rec.Status)
	}

	return &domain.Credit{
		ID:             id,
		EncryptedScore: domain.EncryptedValue(rec.Score),
		Owner:          rec.Owner,
		Location:       rec.Location,
		AreaSize:       rec.AreaSize,
		SpeciesCount:   rec.SpeciesCount,
		Timestamp:      rec.Timestamp,
		Status:         status,
	}, nil
}

// newCreditID returns "<unix millis>-<7 base36 chars>".
func newCreditID(now time.Time) (string, error) {
	suffix := make([]byte, 7)
	if _, err := rand.Read(suffix); err != nil {
		return "", fmt.Errorf("generating credit id: %w", err)
	}
	for i, b := range suffix {
		suffix[i] = idAlphabet[int(b)%len(idAlphabet)]
	}
	return fmt.Sprintf("%d-%s", now.UnixMilli(), suffix), nil
}

func appendUnique(ids []string, id string) []string {
	if contains(ids, id) {
		return ids
	}
	return append(ids, id)
}

func contains(ids []string, id string) bool {
	for _, existing := range ids {
		if existing == id {
			return true
		}
	}
	return false
}
