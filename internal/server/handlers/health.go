package handlers

import (
	"net/http"
	"runtime"
	"time"

	"github.com/manosbatsis/ibanapi/internal/server/response"
	"github.com/manosbatsis/ibanapi/pkg/constants"
)

// HandleHealth handles GET /info/healthcheck.
// @Summary Health check
// @Description Liveness probe
// @Tags info
// @Produce json
// @Success 200 {object} Health
// @Router /info/healthcheck [get].
func (h *Handlers) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	response.OK(w, Health{Status: "ok"})
}

// HandleVersion returns a handler for GET /info/version. started is the
// server start time used to report uptime.
// @Summary Version information
// @Description Build and runtime information of the running service
// @Tags info
// @Produce json
// @Success 200 {object} VersionInfo
// @Router /info/version [get].
func (h *Handlers) HandleVersion(started time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		info := VersionInfo{
			Name:      constants.AppName,
			Version:   h.app.Version(),
			Commit:    h.app.Commit(),
			BuildTime: h.app.Date(),
			BuiltBy:   h.app.BuiltBy(),
			GoVersion: runtime.Version(),
			OSArch:    runtime.GOOS + "/" + runtime.GOARCH,
		}
		if !started.IsZero() {
			info.Uptime = time.Since(started).Round(time.Second).String()
		}
		response.OK(w, info)
	}
}
