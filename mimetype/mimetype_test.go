package mimetype_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/pivotal-cf/cred-audit/mimetype"
)

var _ = Describe("IsArchive", func() {
	DescribeTable("backup archives",
		func(name, expected string) {
			mime, ok := mimetype.IsArchive(name)
			Expect(ok).To(BeTrue())
			Expect(mime).To(Equal(expected))
		},
		Entry("tar", "backup.tar", mimetype.Tar),
		Entry("tar.gz", "backup.tar.gz", mimetype.Gzip),
		Entry("tgz", "BACKUP.TGZ", mimetype.Gzip),
		Entry("zip", "project-export.zip", mimetype.Zip),
	)

	DescribeTable("other files",
		func(name string) {
			_, ok := mimetype.IsArchive(name)
			Expect(ok).To(BeFalse())
		},
		Entry("dotenv", "production.env"),
		Entry("bare gzip", "dump.sql.gz"),
		Entry("no extension", "backup"),
	)
})
