package scoring_test

import (
	"testing"

	"github.com/okian/benchtable/internal/domain/model"
	"github.com/okian/benchtable/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func scoreOf(name string, timesMS []float64, memKB []int64) *model.Score {
	s := model.NewScore(name)
	for _, v := range timesMS {
		s.AddTime(model.NewMeasurement(v, model.UnitMilliseconds))
	}
	for _, kb := range memKB {
		s.AddMemory(kb)
	}
	return s
}

func TestAverages(t *testing.T) {
	Convey("Given a score with readings", t, func() {
		s := scoreOf("Go", []float64{10, 20}, []int64{1000, 3000})

		Convey("Then the averages are arithmetic means", func() {
			So(scoring.AvgTime(s), ShouldResemble, model.Measured(15))
			So(scoring.AvgMemory(s), ShouldResemble, model.Measured(2000))
		})
	})

	Convey("Given readings in seconds and milliseconds", t, func() {
		seconds := model.NewScore("A")
		seconds.AddTime(model.NewMeasurement(1, model.UnitSeconds))
		millis := scoreOf("B", []float64{1000}, nil)

		Convey("Then they average identically", func() {
			So(scoring.AvgTime(seconds), ShouldResemble, scoring.AvgTime(millis))
		})
	})

	Convey("Given a score without readings", t, func() {
		s := model.NewScore("Go")

		Convey("Then both averages are OutOfMemory and render OOM", func() {
			So(scoring.AvgTime(s).IsOOM(), ShouldBeTrue)
			So(scoring.AvgMemory(s).IsOOM(), ShouldBeTrue)
			So(scoring.FormatTime(scoring.AvgTime(s)), ShouldEqual, "OOM")
			So(scoring.FormatMemory(scoring.AvgMemory(s)), ShouldEqual, "OOM")
		})
	})
}

func TestFormatting(t *testing.T) {
	Convey("Given time averages around one second", t, func() {
		So(scoring.FormatTime(model.Measured(10)), ShouldEqual, "10.00 ms")
		So(scoring.FormatTime(model.Measured(999.994)), ShouldEqual, "999.99 ms")
		So(scoring.FormatTime(model.Measured(1000)), ShouldEqual, "1.00 s")
		So(scoring.FormatTime(model.Measured(12346)), ShouldEqual, "12.35 s")
	})

	Convey("Given memory averages in kilobytes", t, func() {
		So(scoring.FormatMemory(model.Measured(1000)), ShouldEqual, "1.00 MB")
		So(scoring.FormatMemory(model.Measured(123456)), ShouldEqual, "123.46 MB")
	})
}

func TestSummarize(t *testing.T) {
	Convey("Given three complete runs", t, func() {
		g := &model.ScoreGroup{Name: "Go", Runs: []*model.Score{
			scoreOf("Go", []float64{10}, []int64{1000}),
			scoreOf("Go", []float64{20}, []int64{2000}),
			scoreOf("Go", []float64{30}, []int64{3000}),
		}}
		sum := scoring.Summarize(g)

		Convey("Then totals are the sum of run averages", func() {
			So(sum.Name, ShouldEqual, "Go")
			So(len(sum.Runs), ShouldEqual, 3)
			So(sum.TotalTimeCell(), ShouldEqual, "60.00 ms")
			So(sum.TotalMemoryCell(), ShouldEqual, "6.00 MB")
			So(sum.Runs[1].TimeCell(), ShouldEqual, "20.00 ms")
			So(sum.Runs[1].MemoryCell(), ShouldEqual, "2.00 MB")
		})
	})

	Convey("Given a third run that ran out of memory", t, func() {
		g := &model.ScoreGroup{Name: "Py", Runs: []*model.Score{
			scoreOf("Py", []float64{100}, []int64{1000}),
			scoreOf("Py", []float64{900}, []int64{2000}),
			scoreOf("Py", nil, []int64{9000}),
		}}
		sum := scoring.Summarize(g)

		Convey("Then the run renders OOM and totals render N/A", func() {
			So(sum.Runs[2].TimeCell(), ShouldEqual, "OOM")
			So(sum.Runs[2].MemoryCell(), ShouldEqual, "OOM")
			So(sum.TotalTime.IsOOM(), ShouldBeTrue)
			So(sum.TotalTimeCell(), ShouldEqual, "N/A")
			So(sum.TotalMemoryCell(), ShouldEqual, "N/A")

			timeOOM, memOOM := sum.OOMRuns()
			So(timeOOM, ShouldEqual, 1)
			So(memOOM, ShouldEqual, 0)
		})
	})

	Convey("Given an empty group", t, func() {
		sum := scoring.Summarize(&model.ScoreGroup{Name: "X"})

		Convey("Then totals are OutOfMemory", func() {
			So(sum.TotalTime.IsOOM(), ShouldBeTrue)
			So(sum.TotalMemory.IsOOM(), ShouldBeTrue)
		})
	})

	Convey("Given several groups", t, func() {
		groups := []*model.ScoreGroup{{Name: "B"}, {Name: "A"}}
		sums := scoring.SummarizeAll(groups)
		So(sums[0].Name, ShouldEqual, "B")
		So(sums[1].Name, ShouldEqual, "A")
	})
}
