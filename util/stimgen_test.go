package util_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/deltasim/util"
)

var _ = Describe("Const", func() {
	It("always yields the same value", func() {
		gen := util.Const(uint8(5))
		for i := 0; i < 3; i++ {
			Expect(gen()).To(Equal(uint8(5)))
		}
	})
})

var _ = Describe("Increasing", func() {
	It("yields successive values starting from start", func() {
		gen := util.Increasing[uint32](10)
		for _, want := range []uint32{10, 11, 12, 13} {
			Expect(gen()).To(Equal(want))
		}
	})
})
