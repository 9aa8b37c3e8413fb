package jpfont_test

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/kenjimiwa/jpfont/pkg/jpfont"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("RCFile", func() {
	var (
		tempDir string
		rcPath  string
		rc      *jpfont.RCFile
	)

	BeforeEach(func() {
		var err error
		tempDir, err = os.MkdirTemp("", "jpfont-rc-*")
		Expect(err).NotTo(HaveOccurred())

		rcPath = filepath.Join(tempDir, "matplotlibrc")
		rc = &jpfont.RCFile{Path: rcPath}
	})

	AfterEach(func() {
		os.RemoveAll(tempDir)
	})

	readRC := func() string {
		data, err := os.ReadFile(rcPath)
		Expect(err).NotTo(HaveOccurred())
		return string(data)
	}

	It("should create the file with the managed keys", func() {
		Expect(rc.Apply(jpfont.Settings{Family: "Noto Sans CJK JP", Size: 10})).To(Succeed())

		content := readRC()
		Expect(content).To(ContainSubstring("font.family: Noto Sans CJK JP"))
		Expect(content).To(ContainSubstring("font.size: 10"))
		Expect(content).To(ContainSubstring("axes.unicode_minus: False"))
	})

	It("should create missing parent directories", func() {
		nested := &jpfont.RCFile{Path: filepath.Join(tempDir, "cfg", "matplotlib", "matplotlibrc")}
		Expect(nested.Apply(jpfont.Settings{Family: "Meiryo", Size: 10})).To(Succeed())

		_, err := os.Stat(nested.Path)
		Expect(err).NotTo(HaveOccurred())
	})

	It("should rewrite managed keys and keep everything else", func() {
		existing := "# my settings\nfigure.dpi: 150\nfont.family: Arial\n"
		Expect(os.WriteFile(rcPath, []byte(existing), 0644)).To(Succeed())

		Expect(rc.Apply(jpfont.Settings{Family: "Osaka", Size: 12})).To(Succeed())

		content := readRC()
		Expect(content).To(ContainSubstring("# my settings"))
		Expect(content).To(ContainSubstring("figure.dpi: 150"))
		Expect(content).To(ContainSubstring("font.family: Osaka"))
		Expect(content).To(ContainSubstring("font.size: 12"))
		Expect(content).NotTo(ContainSubstring("Arial"))
		Expect(strings.Count(content, "font.family")).To(Equal(1))
	})

	It("should write fractional sizes without trailing zeros", func() {
		Expect(rc.Apply(jpfont.Settings{Family: "Meiryo", Size: 10.5})).To(Succeed())
		Expect(readRC()).To(ContainSubstring("font.size: 10.5"))
	})

	It("should write True when the unicode minus is kept", func() {
		Expect(rc.Apply(jpfont.Settings{Family: "Meiryo", Size: 10, UnicodeMinus: true})).To(Succeed())
		Expect(readRC()).To(ContainSubstring("axes.unicode_minus: True"))
	})

	It("should produce identical output on repeated applies", func() {
		settings := jpfont.Settings{Family: "Meiryo", Size: 10}

		Expect(rc.Apply(settings)).To(Succeed())
		first := readRC()
		Expect(rc.Apply(settings)).To(Succeed())
		Expect(readRC()).To(Equal(first))
	})
})

var _ = Describe("DefaultRCPath", func() {
	var tempDir string

	BeforeEach(func() {
		var err error
		tempDir, err = os.MkdirTemp("", "jpfont-path-*")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		os.Unsetenv("MATPLOTLIBRC")
		os.Unsetenv("MPLCONFIGDIR")
		os.RemoveAll(tempDir)
	})

	It("should honor MATPLOTLIBRC pointing at a file", func() {
		target := filepath.Join(tempDir, "custom-rc")
		os.Setenv("MATPLOTLIBRC", target)

		path, err := jpfont.DefaultRCPath(jpfont.OSLinux)
		Expect(err).NotTo(HaveOccurred())
		Expect(path).To(Equal(target))
	})

	It("should treat a MATPLOTLIBRC directory as containing matplotlibrc", func() {
		os.Setenv("MATPLOTLIBRC", tempDir)

		path, err := jpfont.DefaultRCPath(jpfont.OSLinux)
		Expect(err).NotTo(HaveOccurred())
		Expect(path).To(Equal(filepath.Join(tempDir, "matplotlibrc")))
	})

	It("should fall back to MPLCONFIGDIR", func() {
		os.Setenv("MPLCONFIGDIR", tempDir)

		path, err := jpfont.DefaultRCPath(jpfont.OSLinux)
		Expect(err).NotTo(HaveOccurred())
		Expect(path).To(Equal(filepath.Join(tempDir, "matplotlibrc")))
	})

	It("should use the per-OS config directory otherwise", func() {
		os.Setenv("HOME", tempDir)

		path, err := jpfont.DefaultRCPath(jpfont.OSLinux)
		Expect(err).NotTo(HaveOccurred())
		Expect(path).To(Equal(filepath.Join(tempDir, ".config", "matplotlib", "matplotlibrc")))

		path, err = jpfont.DefaultRCPath(jpfont.OSMacOS)
		Expect(err).NotTo(HaveOccurred())
		Expect(path).To(Equal(filepath.Join(tempDir, ".matplotlib", "matplotlibrc")))
	})
})
