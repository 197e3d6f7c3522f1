package middleware

import (
	"encoding/json"
	"net/http"

	"biodiversity-credits/internal/core/domain"
	"biodiversity-credits/internal/core/ports"

	"github.com/gin-gonic/gin"
)

// AuditLog records successful credit writes, logins and reveals. Verify and
// reject are audited by the lifecycle service itself.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		status := c.Writer.Status()
		if status < 200 || status >= 300 || c.Request.Method != http.MethodPost {
			return
		}

		action, resourceType := mapRouteToAction(c.FullPath())
		if action == "" {
			return
		}

		actor, _ := Address(c)
		resourceID := c.Param("id")
		if id := c.GetString(CtxResourceID); id != "" {
			resourceID = id
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"status": status,
		})

		entry := domain.NewCreditAudit(actor, action, resourceID)
		entry.ResourceType = resourceType
		entry.IPAddress = c.ClientIP()
		entry.Details = string(details)
		auditSvc.Log(c.Request.Context(), entry)
	}
}

func mapRouteToAction(route string) (domain.AuditAction, string) {
	switch route {
	case "/api/v1/auth/login":
		return domain.AuditActionLogin, "session"
	case "/api/v1/credits":
		return domain.AuditActionCreateCredit, "credit"
	case "/api/v1/credits/:id/decrypt":
		return domain.AuditActionDecryptScore, "credit"
	}
	return "", ""
}
