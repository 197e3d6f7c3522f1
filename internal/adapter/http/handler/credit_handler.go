package handler

import (
	"context"
	"time"

	"biodiversity-credits/internal/adapter/http/dto"
	"biodiversity-credits/internal/adapter/http/middleware"
	"biodiversity-credits/internal/core/domain"
	"biodiversity-credits/internal/core/ports"
	"biodiversity-credits/pkg/apperror"
	"biodiversity-credits/pkg/response"

	"github.com/gin-gonic/gin"
)

// SignerFactory wraps a signature submitted over HTTP as a ports.Signer.
type SignerFactory func(sig domain.Signature) ports.Signer

// CreditHandler handles credit registry endpoints.
type CreditHandler struct {
	registry   ports.CreditRegistry
	lifecycle  ports.LifecycleService
	reporting  ports.ReportingService
	decryption ports.DecryptionService
	newSigner  SignerFactory
}

// NewCreditHandler creates a new CreditHandler.
func NewCreditHandler(
	registry ports.CreditRegistry,
	lifecycle ports.LifecycleService,
	reporting ports.ReportingService,
	decryption ports.DecryptionService,
	newSigner SignerFactory,
) *CreditHandler {
	return &CreditHandler{
		registry:   registry,
		lifecycle:  lifecycle,
		reporting:  reporting,
		decryption: decryption,
		newSigner:  newSigner,
	}
}

// List handles GET /api/v1/credits.
func (h *CreditHandler) List(c *gin.Context) {
	filter := ports.CreditFilter{Owner: c.Query("owner")}
	if s := c.Query("status"); s != "" {
		status := domain.CreditStatus(s)
		if !status.IsValid() {
			response.Error(c, apperror.Validation("unknown status "+s))
			return
		}
		filter.Status = &status
	}

	credits, err := h.reporting.ListCredits(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.CreditResponse, 0, len(credits))
	for i := range credits {
		items = append(items, toCreditResponse(&credits[i]))
	}
	response.OK(c, dto.CreditListResponse{Items: items, Total: len(items)})
}

// Stats handles GET /api/v1/credits/stats.
func (h *CreditHandler) Stats(c *gin.Context) {
	stats, err := h.reporting.GetStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.StatsResponse{
		Total:     stats.Total,
		Verified:  stats.Verified,
		Pending:   stats.Pending,
		Rejected:  stats.Rejected,
		Locations: stats.Locations,
	})
}

// Get handles GET /api/v1/credits/:id.
func (h *CreditHandler) Get(c *gin.Context) {
	credit, err := h.registry.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toCreditResponse(credit))
}

// Create handles POST /api/v1/credits. The caller's wallet becomes the owner.
func (h *CreditHandler) Create(c *gin.Context) {
	owner, ok := middleware.Address(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.CreateCreditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	credit, err := h.registry.Create(c.Request.Context(), ports.CreateCreditRequest{
		Owner:        owner,
		Location:     req.Location,
		AreaSize:     req.AreaSize,
		SpeciesCount: req.SpeciesCount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Set(middleware.CtxResourceID, credit.ID)
	response.Created(c, toCreditResponse(credit))
}

// Verify handles POST /api/v1/credits/:id/verify.
func (h *CreditHandler) Verify(c *gin.Context) {
	h.transition(c, h.lifecycle.Verify)
}

// Reject handles POST /api/v1/credits/:id/reject.
func (h *CreditHandler) Reject(c *gin.Context) {
	h.transition(c, h.lifecycle.Reject)
}

func (h *CreditHandler) transition(c *gin.Context, fn func(ctx context.Context, caller, id string) (*domain.Credit, error)) {
	caller, ok := middleware.Address(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	credit, err := fn(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toCreditResponse(credit))
}

// Decrypt handles POST /api/v1/credits/:id/decrypt. The body carries the
// wallet's signature over the session challenge.
func (h *CreditHandler) Decrypt(c *gin.Context) {
	caller, ok := middleware.Address(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	session, ok := middleware.Session(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.DecryptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	sig, err := domain.ParseSignature(req.Signature)
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	credit, err := h.registry.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	score, err := h.decryption.RequestDecryption(c.Request.Context(), credit.EncryptedScore, ports.IdentityContext{
		Address: caller,
		Session: session,
		Signer:  h.newSigner(sig),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.DecryptResponse{ID: credit.ID, Score: score})
}

func toCreditResponse(c *domain.Credit) dto.CreditResponse {
	return dto.CreditResponse{
		ID:             c.ID,
		EncryptedScore: string(c.EncryptedScore),
		Owner:          c.Owner,
		Location:       c.Location,
		AreaSize:       c.AreaSize,
		SpeciesCount:   c.SpeciesCount,
		Status:         string(c.Status),
		CreatedAt:      c.CreatedAt().Format(time.RFC3339),
	}
}
