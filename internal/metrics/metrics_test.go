package metrics_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/angeloszaimis/client-greeter/internal/metrics"
)

const clientRoute = "/{clientID}"

var _ = Describe("Metrics", func() {
	var m *metrics.Metrics

	BeforeEach(func() {
		m = metrics.NewMetrics()
	})

	Describe("IncrementRequests", func() {
		It("should track multiple routes separately", func() {
			m.IncrementRequests(clientRoute)
			m.IncrementRequests("/2")
			m.IncrementRequests(clientRoute)

			snap := m.Snapshot()
			Expect(snap.TotalRequests).To(Equal(int64(3)))
			Expect(snap.Routes[clientRoute].Requests).To(Equal(int64(2)))
			Expect(snap.Routes["/2"].Requests).To(Equal(int64(1)))
		})
	})

	Describe("RecordRejection", func() {
		It("should count rejections without counting requests", func() {
			m.RecordRejection(clientRoute)

			snap := m.Snapshot()
			Expect(snap.Routes[clientRoute].Rejections).To(Equal(int64(1)))
			Expect(snap.TotalRequests).To(Equal(int64(0)))
		})
	})

	Describe("RecordResponse", func() {
		It("should record response time and status code", func() {
			m.RecordResponse(clientRoute, 100*time.Millisecond, 200)
			m.RecordResponse(clientRoute, 200*time.Millisecond, 200)

			route := m.Snapshot().Routes[clientRoute]
			Expect(route.AvgResponse).To(Equal(150 * time.Millisecond))
			Expect(route.StatusCodes[200]).To(Equal(int64(2)))
		})

		It("should track different status codes", func() {
			m.RecordResponse("/2", 100*time.Millisecond, 200)
			m.RecordResponse("/2", 150*time.Millisecond, 405)
			m.RecordResponse("/2", 200*time.Millisecond, 500)

			route := m.Snapshot().Routes["/2"]
			Expect(route.StatusCodes).To(HaveLen(3))
			Expect(route.StatusCodes[405]).To(Equal(int64(1)))
		})

		It("should calculate percentiles", func() {
			for i := 1; i <= 100; i++ {
				m.RecordResponse(clientRoute, time.Duration(i)*time.Millisecond, 200)
			}

			route := m.Snapshot().Routes[clientRoute]
			Expect(route.P50Response).To(BeNumerically("~", 50*time.Millisecond, time.Millisecond))
			Expect(route.P95Response).To(BeNumerically("~", 95*time.Millisecond, time.Millisecond))
			Expect(route.P99Response).To(BeNumerically("~", 99*time.Millisecond, time.Millisecond))
		})

		It("should keep only the most recent samples", func() {
			for i := 1; i <= 1500; i++ {
				m.RecordResponse(clientRoute, time.Duration(i)*time.Millisecond, 200)
			}

			route := m.Snapshot().Routes[clientRoute]
			Expect(route.AvgResponse).To(BeNumerically(">", 500*time.Millisecond))
			Expect(route.StatusCodes[200]).To(Equal(int64(1500)))
		})
	})

	Describe("Snapshot", func() {
		It("should handle empty metrics", func() {
			snap := m.Snapshot()
			Expect(snap.TotalRequests).To(Equal(int64(0)))
			Expect(snap.Routes).To(BeEmpty())
		})

		It("should return an independent copy", func() {
			m.RecordResponse(clientRoute, time.Millisecond, 200)
			snap1 := m.Snapshot()

			m.RecordResponse(clientRoute, time.Millisecond, 200)
			snap2 := m.Snapshot()

			Expect(snap1.Routes[clientRoute].StatusCodes[200]).To(Equal(int64(1)))
			Expect(snap2.Routes[clientRoute].StatusCodes[200]).To(Equal(int64(2)))
		})
	})
})
