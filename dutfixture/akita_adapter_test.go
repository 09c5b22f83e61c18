package dutfixture_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/akita/v4/monitoring"
	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/deltasim/dutfixture"
	"github.com/sarchlab/deltasim/kernel"
)

var _ = Describe("AkitaTicker", func() {
	It("registers with an akita monitor without panicking", func() {
		var count uint32
		ticker := dutfixture.NewAkitaTicker("ticker", 1*sim.GHz, &count)

		monitor := monitoring.NewMonitor()
		Expect(func() { ticker.RegisterWith(monitor) }).NotTo(Panic())
	})

	It("drives a kernel-hosted run as a free-running counter DUT", func() {
		var count uint32
		ticker := dutfixture.NewAkitaTicker("ticker", 1*sim.GHz, &count)

		s := kernel.NewBuilder().Build()
		out := kernel.Output(s, "count", ticker.CountPtr())

		err := s.Run(ticker, nil, 5)

		var timeoutErr *kernel.TimeoutError
		Expect(err).To(BeAssignableToTypeOf(timeoutErr))
		Expect(out.Val()).To(Equal(count))
		Expect(count).To(BeNumerically(">", 0))
	})
})
