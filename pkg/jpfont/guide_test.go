package jpfont_test

import (
	"github.com/kenjimiwa/jpfont/pkg/jpfont"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Guide", func() {
	It("should provide instructions for every supported OS", func() {
		for _, osID := range supportedOS {
			guide, err := jpfont.Guide(osID)
			Expect(err).NotTo(HaveOccurred(), "os %s", osID)
			Expect(guide).To(ContainSubstring("Noto Sans"))
			Expect(guide).To(ContainSubstring("Restart"))
		}
	})

	It("should include package manager commands on Linux", func() {
		guide, err := jpfont.Guide(jpfont.OSLinux)
		Expect(err).NotTo(HaveOccurred())
		Expect(guide).To(ContainSubstring("apt-get install fonts-noto-cjk"))
		Expect(guide).To(ContainSubstring("yum install google-noto-sans-cjk-jp-fonts"))
		Expect(guide).To(ContainSubstring("pacman -S noto-fonts-cjk"))
	})

	It("should fail for an unknown OS", func() {
		_, err := jpfont.Guide("solaris")
		Expect(err).To(MatchError(jpfont.ErrUnsupportedPlatform))
	})
})
