package adaptor

import (
	"net/http"

	"zoo-admin/internal/usecase"
	"zoo-admin/pkg/utils"

	"go.uber.org/zap"
)

type DashboardHandler struct {
	dashboard usecase.DashboardService
	zooInfo   usecase.ZooInfoService
	log       *zap.Logger
}

func NewDashboardHandler(dashboard usecase.DashboardService, zooInfo usecase.ZooInfoService, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboard: dashboard,
		zooInfo:   zooInfo,
		log:       log.With(zap.String("handler", "dashboard")),
	}
}

func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboard.Stats(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "dashboard stats", "Failed to fetch stats")
		return
	}
	utils.ResponseSuccess(w, stats)
}

func (h *DashboardHandler) Notifications(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.dashboard.Notifications(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "notifications", "Failed to fetch notifications")
		return
	}
	utils.ResponseSuccess(w, notifications)
}

func (h *DashboardHandler) ZooInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.zooInfo.Get(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "zoo info", "Failed to fetch zoo info")
		return
	}
	utils.ResponseSuccess(w, info)
}
