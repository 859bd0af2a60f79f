// pkg/metrics randevu akışının Prometheus sayaçlarını içerir.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BookingsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "randevu_bookings_created_total",
		Help: "Başarıyla oluşturulan randevu sayısı",
	})
	BookingsCancelled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "randevu_bookings_cancelled_total",
		Help: "İptal edilen randevu sayısı",
	})
	CapacityRejections = promauto.NewCounter(prometheus.CounterOpts{
		Name: "randevu_capacity_rejections_total",
		Help: "Kontenjan dolu olduğu için reddedilen rezervasyon sayısı",
	})
	DuplicateRejections = promauto.NewCounter(prometheus.CounterOpts{
		Name: "randevu_duplicate_rejections_total",
		Help: "Aynı güne ikinci randevu denemesi olarak reddedilen istek sayısı",
	})
	ReleaseAnomalies = promauto.NewCounter(prometheus.CounterOpts{
		Name: "randevu_release_anomalies_total",
		Help: "Eşleşen slot bulunamadan veya kontenjan tavandayken yapılan iade denemeleri",
	})
)
