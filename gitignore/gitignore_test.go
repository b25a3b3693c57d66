package gitignore_test

import (
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/re-cinq/ignoredit/gitignore"
)

var _ = Describe("PatternFile", func() {
	Describe("New", func() {
		It("keeps the filename exactly as given", func() {
			f, err := gitignore.New(fixture("empty"))
			Expect(err).NotTo(HaveOccurred())
			Expect(f.Filename()).To(Equal(fixture("empty")))
		})

		It("fails if the file does not exist", func() {
			_, err := gitignore.New(fixture("Supercalifragilisticexpialidocious"))
			Expect(err).To(MatchError(gitignore.ErrInvalidFile))
			Expect(err.Error()).To(ContainSubstring("does not exist"))
		})

		It("fails if the path is a directory", func() {
			_, err := gitignore.New(GinkgoT().TempDir())
			Expect(err).To(MatchError(gitignore.ErrInvalidFile))
		})
	})

	DescribeTable("FindPattern and ContainsPattern",
		func(fixtureName, pattern string, wantLine int, wantContains bool) {
			f, err := gitignore.New(fixture(fixtureName))
			Expect(err).NotTo(HaveOccurred())

			line, err := f.FindPattern(pattern)
			Expect(err).NotTo(HaveOccurred())
			Expect(line).To(Equal(wantLine))

			contains, err := f.ContainsPattern(pattern)
			Expect(err).NotTo(HaveOccurred())
			Expect(contains).To(Equal(wantContains))
		},
		Entry("nothing in an empty file", "empty", "anything", gitignore.NotFound, false),
		Entry("no match without the trailing slash", "with_trailing_newline", "baz", gitignore.NotFound, false),
		Entry("no match with a leading slash", "with_trailing_newline", "/baz", gitignore.NotFound, false),
		Entry("no match with both slashes", "with_trailing_newline", "/baz/", gitignore.NotFound, false),
		Entry("exact match", "with_trailing_newline", "baz/", 2, true),
		Entry("first line", "with_trailing_newline", "foo", 0, true),
		Entry("last line without terminator", "without_trailing_newline", "/qux/", 3, true),
	)

	It("ignores CRLF terminators when matching", func() {
		f, err := gitignore.New(tempFile("foo\r\n/bar\r\n"))
		Expect(err).NotTo(HaveOccurred())
		Expect(f.FindPattern("/bar")).To(Equal(1))
	})

	It("returns the first of several matching lines", func() {
		f, err := gitignore.New(tempFile("a\nb\na\n"))
		Expect(err).NotTo(HaveOccurred())
		Expect(f.FindPattern("a")).To(Equal(0))
	})

	It("returns the same result when asked repeatedly", func() {
		f, err := gitignore.New(fixture("with_trailing_newline"))
		Expect(err).NotTo(HaveOccurred())
		for i := 0; i < 3; i++ {
			Expect(f.FindPattern("baz/")).To(Equal(2))
			Expect(f.ContainsPattern("baz")).To(BeFalse())
		}
	})

	It("sees changes made to the file by others", func() {
		path := tempCopy("with_trailing_newline")
		f, err := gitignore.New(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(f.ContainsPattern("late/")).To(BeFalse())

		Expect(os.WriteFile(path, []byte("late/\n"), 0o644)).To(Succeed())
		Expect(f.FindPattern("late/")).To(Equal(0))
	})

	It("reports a read error once the file is gone", func() {
		path := tempCopy("with_trailing_newline")
		f, err := gitignore.New(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(os.Remove(path)).To(Succeed())

		line, err := f.FindPattern("foo")
		Expect(err).To(HaveOccurred())
		Expect(line).To(Equal(gitignore.NotFound))
	})

	DescribeTable("AppendPatterns",
		func(fixtureName string, patterns []string, want string) {
			path := tempCopy(fixtureName)
			f, err := gitignore.New(path)
			Expect(err).NotTo(HaveOccurred())

			Expect(f.AppendPatterns(patterns)).To(Succeed())
			Expect(readFile(path)).To(Equal(want))
		},
		Entry("empty file", "empty", []string{"qux", "quux"}, "qux\nquux"),
		Entry("file ending in a newline", "with_trailing_newline", []string{"quux", "quuz"},
			"foo\n/bar\nbaz/\n/qux/\nquux\nquuz"),
		Entry("file not ending in a newline", "without_trailing_newline", []string{"quux", "quuz"},
			"foo\n/bar\nbaz/\n/qux/\nquux\nquuz"),
		Entry("file holding only a newline", "only_newline", []string{"foo"}, "\nfoo"),
		Entry("trailing empty pattern", "only_newline", []string{"foo", ""}, "\nfoo\n"),
	)

	It("does not add a separator after a carriage return", func() {
		path := tempFile("foo\r")
		f, err := gitignore.New(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(f.AppendPatterns([]string{"bar"})).To(Succeed())
		Expect(readFile(path)).To(Equal("foo\rbar"))
	})

	Describe("write failures", func() {
		var path string
		var f *gitignore.PatternFile

		BeforeEach(func() {
			path = tempFile("foo\n/bar\nbaz/\n/qux/\n\n# >>> tooling >>>\nx\n# <<< tooling <<<\n")
			var err error
			f, err = gitignore.New(path)
			Expect(err).NotTo(HaveOccurred())
		})

		writes := []TableEntry{
			Entry("AppendPatterns", func(f *gitignore.PatternFile) error {
				return f.AppendPatterns([]string{"quux"})
			}),
			Entry("InsertPatternsAtLineNo", func(f *gitignore.PatternFile) error {
				return f.InsertPatternsAtLineNo([]string{"quux"}, 0)
			}),
			Entry("InsertPatternAtLineNo", func(f *gitignore.PatternFile) error {
				return f.InsertPatternAtLineNo("quux", 4)
			}),
			Entry("SetBlock", func(f *gitignore.PatternFile) error {
				return f.SetBlock("tooling", []string{"/.cache/"})
			}),
			Entry("RemoveBlock", func(f *gitignore.PatternFile) error {
				_, err := f.RemoveBlock("tooling")
				return err
			}),
		}

		DescribeTable("when the file cannot be opened for writing",
			func(op func(*gitignore.PatternFile) error) {
				DeferCleanup(gitignore.SetOpenFile(func(name string, flag int, perm os.FileMode) (*os.File, error) {
					return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrPermission}
				}))
				before := readFile(path)

				err := op(f)
				Expect(err).To(MatchError(gitignore.ErrWriteFailed))
				Expect(err).To(MatchError(os.ErrPermission))
				Expect(readFile(path)).To(Equal(before))
			},
			writes,
		)

		DescribeTable("when the write itself fails",
			func(op func(*gitignore.PatternFile) error) {
				// A read-only descriptor makes every write fail, even for root.
				DeferCleanup(gitignore.SetOpenFile(func(name string, flag int, perm os.FileMode) (*os.File, error) {
					return os.Open(name)
				}))
				before := readFile(path)

				Expect(op(f)).To(MatchError(gitignore.ErrWriteFailed))
				Expect(readFile(path)).To(Equal(before))
			},
			writes,
		)
	})

	Describe("AppendMissingPatterns", func() {
		It("appends only the patterns that are absent", func() {
			path := tempCopy("with_trailing_newline")
			f, err := gitignore.New(path)
			Expect(err).NotTo(HaveOccurred())

			added, err := f.AppendMissingPatterns([]string{"foo", "quux", "baz/", "quux", "quuz"})
			Expect(err).NotTo(HaveOccurred())
			Expect(added).To(Equal([]string{"quux", "quuz"}))
			Expect(readFile(path)).To(Equal("foo\n/bar\nbaz/\n/qux/\nquux\nquuz"))
		})

		It("skips empty patterns", func() {
			path := tempCopy("empty")
			f, err := gitignore.New(path)
			Expect(err).NotTo(HaveOccurred())

			for i := 0; i < 2; i++ {
				added, err := f.AppendMissingPatterns([]string{""})
				Expect(err).NotTo(HaveOccurred())
				Expect(added).To(BeEmpty())
			}

			added, err := f.AppendMissingPatterns([]string{"", "qux", ""})
			Expect(err).NotTo(HaveOccurred())
			Expect(added).To(Equal([]string{"qux"}))
			Expect(readFile(path)).To(Equal("qux"))
		})

		It("leaves the file alone when everything is present", func() {
			path := tempCopy("without_trailing_newline")
			f, err := gitignore.New(path)
			Expect(err).NotTo(HaveOccurred())

			added, err := f.AppendMissingPatterns([]string{"/bar", "/qux/"})
			Expect(err).NotTo(HaveOccurred())
			Expect(added).To(BeEmpty())
			Expect(readFile(path)).To(Equal("foo\n/bar\nbaz/\n/qux/"))
		})
	})

	DescribeTable("InsertPatternsAtLineNo",
		func(patterns []string, lineNo int, want []string) {
			path := tempCopy("with_trailing_newline")
			f, err := gitignore.New(path)
			Expect(err).NotTo(HaveOccurred())

			Expect(f.InsertPatternsAtLineNo(patterns, lineNo)).To(Succeed())
			Expect(readFile(path)).To(Equal(strings.Join(want, "\n")))
		},
		Entry("one pattern at the first line", []string{"quux"}, 0,
			[]string{"quux", "foo", "/bar", "baz/", "/qux/", ""}),
		Entry("one pattern at the second line", []string{"quux"}, 1,
			[]string{"foo", "quux", "/bar", "baz/", "/qux/", ""}),
		Entry("several patterns", []string{"quux", "quuz"}, 1,
			[]string{"foo", "quux", "quuz", "/bar", "baz/", "/qux/", ""}),
		Entry("before the last line", []string{"quux"}, 3,
			[]string{"foo", "/bar", "baz/", "quux", "/qux/", ""}),
	)

	DescribeTable("InsertPatternsAtLineNo out of bounds",
		func(fixtureName string, lineNo int) {
			path := tempCopy(fixtureName)
			before := readFile(path)
			f, err := gitignore.New(path)
			Expect(err).NotTo(HaveOccurred())

			err = f.InsertPatternsAtLineNo([]string{"foo"}, lineNo)
			Expect(err).To(MatchError(gitignore.ErrOutOfBounds))
			Expect(err.Error()).To(ContainSubstring("the line number does not exist"))
			Expect(readFile(path)).To(Equal(before))
		},
		Entry("line 1 of an empty file", "empty", 1),
		Entry("line 0 of an empty file", "empty", 0),
		Entry("line count of a non-empty file", "with_trailing_newline", 4),
		Entry("past the line count", "with_trailing_newline", 10),
		Entry("negative line", "with_trailing_newline", -1),
	)

	Describe("InsertPatternAtLineNo", func() {
		It("keeps an inserted pattern on its own line", func() {
			path := tempCopy("with_trailing_newline")
			f, err := gitignore.New(path)
			Expect(err).NotTo(HaveOccurred())

			Expect(f.InsertPatternAtLineNo("quux", 3)).To(Succeed())
			Expect(readFile(path)).To(Equal("foo\n/bar\nbaz/\nquux\n/qux/\n"))
		})

		It("accepts the line count and adds no trailing terminator", func() {
			path := tempCopy("with_trailing_newline")
			f, err := gitignore.New(path)
			Expect(err).NotTo(HaveOccurred())

			Expect(f.InsertPatternAtLineNo("quux", 4)).To(Succeed())
			Expect(readFile(path)).To(Equal("foo\n/bar\nbaz/\n/qux/\nquux"))
		})

		It("starts a new line when the last line has no terminator", func() {
			path := tempCopy("without_trailing_newline")
			f, err := gitignore.New(path)
			Expect(err).NotTo(HaveOccurred())

			Expect(f.InsertPatternAtLineNo("quux", 4)).To(Succeed())
			Expect(readFile(path)).To(Equal("foo\n/bar\nbaz/\n/qux/\nquux"))
		})

		It("writes the pattern into an empty file", func() {
			path := tempCopy("empty")
			f, err := gitignore.New(path)
			Expect(err).NotTo(HaveOccurred())

			Expect(f.InsertPatternAtLineNo("quux", 0)).To(Succeed())
			Expect(readFile(path)).To(Equal("quux"))
		})

		It("rejects lines past the line count", func() {
			f, err := gitignore.New(tempCopy("with_trailing_newline"))
			Expect(err).NotTo(HaveOccurred())
			Expect(f.InsertPatternAtLineNo("quux", 5)).To(MatchError(gitignore.ErrOutOfBounds))
		})
	})

	Describe("managed blocks", func() {
		var path string
		var f *gitignore.PatternFile

		BeforeEach(func() {
			path = tempCopy("with_trailing_newline")
			var err error
			f, err = gitignore.New(path)
			Expect(err).NotTo(HaveOccurred())
		})

		It("appends a block after a blank line", func() {
			Expect(f.SetBlock("tooling", []string{"/.cache/"})).To(Succeed())
			Expect(readFile(path)).To(Equal(
				"foo\n/bar\nbaz/\n/qux/\n\n# >>> tooling >>>\n/.cache/\n# <<< tooling <<<\n"))
		})

		It("replaces the block when set again", func() {
			Expect(f.SetBlock("tooling", []string{"/.cache/"})).To(Succeed())
			Expect(f.SetBlock("tooling", []string{"/.tmp/", "*.swp"})).To(Succeed())

			content := readFile(path)
			Expect(strings.Count(content, "# >>> tooling >>>")).To(Equal(1))
			Expect(content).NotTo(ContainSubstring("/.cache/"))
			Expect(content).To(HaveSuffix("# >>> tooling >>>\n/.tmp/\n*.swp\n# <<< tooling <<<\n"))
		})

		It("makes block patterns findable", func() {
			Expect(f.SetBlock("tooling", []string{"/.cache/"})).To(Succeed())
			Expect(f.FindPattern("/.cache/")).To(Equal(6))
		})

		It("removes the block and keeps the other entries", func() {
			Expect(f.SetBlock("tooling", []string{"/.cache/"})).To(Succeed())

			removed, err := f.RemoveBlock("tooling")
			Expect(err).NotTo(HaveOccurred())
			Expect(removed).To(BeTrue())
			Expect(readFile(path)).To(Equal("foo\n/bar\nbaz/\n/qux/\n"))
		})

		It("reports when there is no block to remove", func() {
			removed, err := f.RemoveBlock("tooling")
			Expect(err).NotTo(HaveOccurred())
			Expect(removed).To(BeFalse())
			Expect(readFile(path)).To(Equal("foo\n/bar\nbaz/\n/qux/\n"))
		})

		It("empties a file that held only the block", func() {
			p := filepath.Join(GinkgoT().TempDir(), ".gitignore")
			Expect(os.WriteFile(p, nil, 0o644)).To(Succeed())
			only, err := gitignore.New(p)
			Expect(err).NotTo(HaveOccurred())

			Expect(only.SetBlock("tooling", []string{"/.cache/"})).To(Succeed())
			Expect(only.RemoveBlock("tooling")).To(BeTrue())
			Expect(readFile(p)).To(BeEmpty())
		})

		It("does not mistake a comment mentioning the marker for the block", func() {
			content := "# see ## >>> tooling >>> docs\nfoo\n# <<< tooling <<< end\nbar\n"
			Expect(os.WriteFile(path, []byte(content), 0o644)).To(Succeed())

			Expect(f.SetBlock("tooling", []string{"/.cache/"})).To(Succeed())
			Expect(readFile(path)).To(Equal(content + "\n# >>> tooling >>>\n/.cache/\n# <<< tooling <<<\n"))
			Expect(f.FindPattern("foo")).To(Equal(1))
		})

		It("keeps blank lines the user wrote around the block", func() {
			Expect(os.WriteFile(path, []byte("foo\n\n\n\n# >>> tooling >>>\nx\n# <<< tooling <<<\n\nbar\n"), 0o644)).To(Succeed())

			Expect(f.RemoveBlock("tooling")).To(BeTrue())
			Expect(readFile(path)).To(Equal("foo\n\n\n\nbar\n"))
		})

		It("fails on a start marker without an end marker", func() {
			Expect(os.WriteFile(path, []byte("# >>> tooling >>>\nfoo\n"), 0o644)).To(Succeed())
			Expect(f.SetBlock("tooling", nil)).To(MatchError(gitignore.ErrMissingEndMarker))
			_, err := f.RemoveBlock("tooling")
			Expect(err).To(MatchError(gitignore.ErrMissingEndMarker))
		})

		It("rejects invalid block names", func() {
			Expect(f.SetBlock("", nil)).To(MatchError(gitignore.ErrInvalidBlockName))
			Expect(f.SetBlock("two\nlines", nil)).To(MatchError(gitignore.ErrInvalidBlockName))
		})
	})
})
