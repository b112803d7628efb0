package metrics

import (
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewServer возвращает HTTP-сервер, который отдаёт метрики из g по пути /metrics.
// Используется фоновыми процессами, у которых нет собственного HTTP API.
func NewServer(addr string, g prometheus.Gatherer) *http.Server {
	r := chi.NewRouter()
	r.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))

	return &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
