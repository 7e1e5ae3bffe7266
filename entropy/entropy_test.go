package entropy_test

import (
	"github.com/pivotal-cf/cred-audit/entropy"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Entropy Scanning", func() {
	It("finds passwords", func() {
		result := entropy.IsPasswordSuspect("password")
		Expect(result).To(BeFalse())

		result = entropy.IsPasswordSuspect("N9R5tMnaAYKRXgPMWyZsytJt")
		Expect(result).To(BeTrue())
	})

	It("treats the empty string as having no entropy", func() {
		Expect(entropy.PerCharacter("")).To(BeZero())
		Expect(entropy.IsPasswordSuspect("")).To(BeFalse())
	})
})
