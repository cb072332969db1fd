package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/fletching/quiver/pkg/metrics"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNewManager(t *testing.T) {
	Convey("Given a manager on its own registry", t, func() {
		reg := prometheus.NewRegistry()

		Convey("When constructing with options", func() {
			m := metrics.NewManager(
				metrics.WithPrometheusRegistry(reg),
				metrics.WithNamespace("testns"),
				metrics.WithSubsystem("testsub"),
				metrics.WithHistogramBuckets([]float64{1, 10, 100}),
			)

			Convey("Then all metrics register without collision", func() {
				So(m, ShouldNotBeNil)
				families, err := reg.Gather()
				So(err, ShouldBeNil)
				So(len(families), ShouldBeGreaterThan, 10)
			})
		})
	})
}

func TestPackageHelpers(t *testing.T) {
	Convey("Given the global metrics helpers", t, func() {
		Convey("Then recording never panics", func() {
			So(func() {
				metrics.RecordShootProcessed()
				metrics.RecordShootDuplicate()
				metrics.RecordEvaluationLatency(12.5)
				metrics.RecordEvaluationError()
				metrics.UpdateDefinitionsTotal(127)
				metrics.UpdateEarnedTotal(4)
				metrics.RecordNewlyUnlocked(2)
				metrics.UpdateSnapshotTimestamp(time.Now())
				metrics.UpdateRepositoryShoots(3)
				metrics.RecordRepositoryWriteLatency(0.4)
				metrics.RecordRepositoryReadLatency(0.1)
				metrics.UpdateQueueSize(5)
				metrics.UpdateQueueCapacity(100)
				metrics.UpdateQueueUtilization(0.05)
				metrics.RecordQueueEnqueue()
				metrics.RecordQueueDequeue()
				metrics.RecordQueueEnqueueError()
				metrics.UpdateWorkerCount(4)
				metrics.RecordWorkerProcessingLatency(2.2)
				metrics.RecordWorkerError()
				metrics.RecordHTTPRequest("shoots", "POST", "202")
				metrics.RecordHTTPRequestDuration("shoots", "POST", "202", 1.1)
				metrics.RecordErrorByComponent("http", "client_error")
				metrics.UpdateSystemMemoryUsage(1 << 20)
				metrics.UpdateSystemGoroutineCount(12)
			}, ShouldNotPanic)
		})

		Convey("Then the custom registry exposes what was recorded", func() {
			metrics.RecordShootProcessed()

			families, err := metrics.GetRegistry().Gather()
			So(err, ShouldBeNil)

			found := false
			for _, f := range families {
				if f.GetName() == "quiver_achievements_shoots_processed_total" {
					found = true
				}
			}
			So(found, ShouldBeTrue)
		})
	})
}
