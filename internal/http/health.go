package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookclub/internal/database"
)

type HealthResponse struct {
	Status  string            `json:"status"`
	Time    string            `json:"time"`
	Version string            `json:"version,omitempty"`
	Checks  map[string]string `json:"checks"`
}

type HealthController struct {
	stores  *database.Stores
	version string
}

func NewHealthController(stores *database.Stores, version string) *HealthController {
	return &HealthController{
		stores:  stores,
		version: version,
	}
}

// Status pings both stores and reports per-store health.
func (h *HealthController) Status(c *gin.Context) {
	checks := make(map[string]string)
	status := "healthy"

	check := func(name string, store *database.Store) {
		if store == nil {
			checks[name] = "not configured"
			return
		}
		sqlDB, err := store.SQLDB()
		if err == nil {
			err = sqlDB.Ping()
		}
		if err != nil {
			checks[name] = "error: " + err.Error()
			status = "unhealthy"
			return
		}
		checks[name] = "ok"
	}

	if h.stores != nil {
		check("catalog", h.stores.Catalog)
		check("accounts", h.stores.Accounts)
	} else {
		checks["catalog"] = "not configured"
		checks["accounts"] = "not configured"
	}

	health := HealthResponse{
		Status:  status,
		Time:    time.Now().Format(time.RFC3339),
		Version: h.version,
		Checks:  checks,
	}

	statusCode := http.StatusOK
	if status != "healthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.IndentedJSON(statusCode, health)
}
