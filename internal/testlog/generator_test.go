package testlog

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestGenerate(t *testing.T) {
	Convey("Given two languages over three tiers", t, func() {
		cfg := Config{
			Languages: []Language{
				{Name: "Go", TimesMS: []float64{10, 20, 1500}, MemoryKB: []int64{1, 2, 3}},
				{Name: "Py", TimesMS: []float64{30, 40, 50}, MemoryKB: []int64{4, 5, 6}, OOMTiers: []int{2}},
			},
			SecondsFrom: 1000,
		}
		out := Generate(cfg)

		Convey("Then runs are interleaved by tier", func() {
			lines := strings.Split(strings.TrimSpace(out), "\n")
			So(lines[0], ShouldEqual, "Go:")
			So(lines[3], ShouldEqual, "Py:")
			So(lines[6], ShouldEqual, "Go:")
		})

		Convey("Then large times are printed in seconds", func() {
			So(out, ShouldContainSubstring, "Processing time (w/o IO): 1.5s")
			So(out, ShouldContainSubstring, "Processing time (w/o IO): 10ms")
		})

		Convey("Then OOM tiers print no processing time", func() {
			So(strings.Count(out, "Processing time"), ShouldEqual, 5)
			So(out, ShouldContainSubstring, "memory: 6k")
		})
	})

	Convey("Given repeated headers and noise", t, func() {
		out := Generate(Config{
			Languages:     []Language{{Name: "Go", TimesMS: []float64{1}, MemoryKB: []int64{1}}},
			RepeatHeaders: true,
			Noise:         true,
		})
		So(strings.Count(out, "Go:\n"), ShouldEqual, 2)
		So(out, ShouldContainSubstring, "\tbuild id: ")
	})
}

func TestRandomLanguages(t *testing.T) {
	Convey("Given the same seed twice", t, func() {
		a := RandomLanguages([]string{"Go", "Rust"}, 7)
		b := RandomLanguages([]string{"Go", "Rust"}, 7)

		Convey("Then the languages are identical and grow per tier", func() {
			So(a, ShouldResemble, b)
			So(len(a[0].TimesMS), ShouldEqual, 3)
			So(a[0].TimesMS[2], ShouldBeGreaterThan, a[0].TimesMS[0])
			So(a[1].MemoryKB[1], ShouldEqual, a[1].MemoryKB[0]*2)
		})
	})
}
