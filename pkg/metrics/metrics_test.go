package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsOptions(t *testing.T) {
	Convey("Given metrics options", t, func() {
		Convey("When creating options", func() {
			namespaceOpt := WithNamespace("test-namespace")
			subsystemOpt := WithSubsystem("test-subsystem")
			metricPrefixOpt := WithMetricPrefix("test-prefix")
			histogramBucketsOpt := WithHistogramBuckets([]float64{0.1, 0.5, 1.0})
			metricsEnabledOpt := WithMetricsEnabled(true)
			refreshIntervalOpt := WithRefreshInterval(5 * time.Second)
			customLabelsOpt := WithCustomLabels(map[string]string{"env": "test"})

			Convey("Then they should be valid functions", func() {
				So(namespaceOpt, ShouldNotBeNil)
				So(subsystemOpt, ShouldNotBeNil)
				So(metricPrefixOpt, ShouldNotBeNil)
				So(histogramBucketsOpt, ShouldNotBeNil)
				So(metricsEnabledOpt, ShouldNotBeNil)
				So(refreshIntervalOpt, ShouldNotBeNil)
				So(customLabelsOpt, ShouldNotBeNil)
			})
		})
	})
}

func TestManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with default options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test-namespace"),
				WithSubsystem("test-subsystem"),
				WithMetricPrefix("test-prefix"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithMetricsEnabled(true),
				WithRefreshInterval(10*time.Second),
				WithCustomLabels(map[string]string{"env": "test", "version": "1.0"}),
				WithPrometheusRegistry(registry),
			)

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given metrics recording", t, func() {
		Convey("When recording write-path metrics", func() {
			Convey("Then it should record value writes and updates", func() {
				So(func() {
					RecordValueWrite()
					RecordValueUpdate()
					RecordValueWrite()
				}, ShouldNotPanic)
			})

			Convey("And it should record validation rejections", func() {
				So(func() {
					RecordValidationRejection("rating", "out_of_range")
					RecordValidationRejection("number", "not_numeric")
				}, ShouldNotPanic)
			})

			Convey("And it should record history appends", func() {
				So(func() {
					RecordHistoryAppend()
					RecordHistoryAppend()
				}, ShouldNotPanic)
			})
		})

		Convey("When recording read-path metrics", func() {
			Convey("Then it should record score computations", func() {
				So(func() {
					RecordScoreComputation()
					RecordComparisonRequest()
					RecordRankingRequest()
				}, ShouldNotPanic)
			})
		})

		Convey("When recording operational metrics", func() {
			Convey("Then it should update gauges", func() {
				So(func() {
					UpdateTotalSubjects(12)
					UpdateTotalValues(480)
					UpdateCatalogSize(60)
				}, ShouldNotPanic)
			})

			Convey("And it should record repository latencies", func() {
				So(func() {
					RecordRepositoryWriteLatency(3.2)
					RecordRepositoryQueryLatency(1.1)
					RecordRepositoryError("upsert_value")
				}, ShouldNotPanic)
			})
		})

		Convey("When recording HTTP metrics", func() {
			Convey("Then it should record requests and durations", func() {
				So(func() {
					RecordHTTPRequest("compare", "GET", "200")
					RecordHTTPRequestDuration("compare", "GET", "200", 12.5)
					RecordErrorByEndpoint("parameters", "POST", "client_error")
					RecordErrorByType("client_error", "medium")
					RecordErrorLatency("http", "client_error", 2.0)
				}, ShouldNotPanic)
			})
		})

		Convey("When recording system metrics", func() {
			Convey("Then it should not panic", func() {
				So(func() {
					UpdateSystemMemoryUsage(1024 * 1024)
					UpdateSystemGoroutineCount(42)
					RecordSystemGCPauseTime(0.7)
				}, ShouldNotPanic)
			})
		})
	})
}

func TestGetRegistry(t *testing.T) {
	Convey("Given the global registry", t, func() {
		Convey("When fetching it", func() {
			registry := GetRegistry()

			Convey("Then it should be non-nil and gatherable", func() {
				So(registry, ShouldNotBeNil)
				families, err := registry.Gather()
				So(err, ShouldBeNil)
				So(families, ShouldNotBeNil)
			})
		})
	})
}
