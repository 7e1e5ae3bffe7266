package db_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/pivotal-cf/cred-audit/db"
)

var _ = Describe("PropertyMap", func() {
	It("scans text and bytes", func() {
		var fromString db.PropertyMap
		Expect(fromString.Scan(`{"a": 1}`)).To(Succeed())
		Expect(fromString).To(HaveKeyWithValue("a", BeNumerically("==", 1)))

		var fromBytes db.PropertyMap
		Expect(fromBytes.Scan([]byte(`{"a": "b"}`))).To(Succeed())
		Expect(fromBytes).To(HaveKeyWithValue("a", "b"))
	})

	It("treats null as empty", func() {
		var p db.PropertyMap
		Expect(p.Scan(nil)).To(Succeed())
		Expect(p).To(BeEmpty())

		Expect(p.Scan("null")).To(Succeed())
		Expect(p).To(BeEmpty())
	})

	It("stores nil as an empty object", func() {
		value, err := db.PropertyMap(nil).Value()
		Expect(err).NotTo(HaveOccurred())
		Expect(value).To(Equal("{}"))
	})

	It("refuses non-objects", func() {
		var p db.PropertyMap
		Expect(p.Scan(`[1, 2]`)).NotTo(Succeed())
		Expect(p.Scan(42)).NotTo(Succeed())
	})
})

var _ = Describe("StringList", func() {
	It("round trips through JSON text", func() {
		value, err := db.StringList{"a", "b"}.Value()
		Expect(err).NotTo(HaveOccurred())

		var list db.StringList
		Expect(list.Scan(value)).To(Succeed())
		Expect(list).To(Equal(db.StringList{"a", "b"}))
	})
})
