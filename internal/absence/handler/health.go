package handler

import (
	"net/http"

	"github.com/Hojgaetan/GDA/pkg/database"
	"github.com/Hojgaetan/GDA/pkg/httputil"
)

// Health reports service liveness including a database check
func Health(db *database.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := db.Health(r.Context())
		if status["status"] != "up" {
			httputil.JSON(w, http.StatusInternalServerError, map[string]interface{}{
				"ok":    false,
				"error": status["error"],
			})
			return
		}

		httputil.JSON(w, http.StatusOK, map[string]interface{}{"ok": true})
	}
}
