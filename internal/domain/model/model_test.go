package model

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestMeasurement(t *testing.T) {
	Convey("Given measurements in different units", t, func() {
		ms := NewMeasurement(1000, UnitMilliseconds)
		s := NewMeasurement(1, UnitSeconds)

		Convey("Then both normalize to the same milliseconds", func() {
			So(ms.Milliseconds(), ShouldEqual, 1000)
			So(s.Milliseconds(), ShouldEqual, 1000)
		})

		Convey("And the reported value and unit are kept", func() {
			So(s.Value(), ShouldEqual, 1)
			So(s.Unit(), ShouldEqual, UnitSeconds)
			So(s.String(), ShouldEqual, "1 s")
		})
	})

	Convey("Given unit tokens", t, func() {
		for token, want := range map[string]Unit{"ms": UnitMilliseconds, "milliseconds": UnitMilliseconds, "s": UnitSeconds} {
			u, err := ParseUnit(token)
			So(err, ShouldBeNil)
			So(u, ShouldEqual, want)
		}

		_, err := ParseUnit("ns")
		So(err, ShouldNotBeNil)
	})
}

func TestAverage(t *testing.T) {
	Convey("Given measured and out-of-memory averages", t, func() {
		a := Measured(10)
		b := Measured(20)
		oom := OutOfMemory()

		Convey("When adding", func() {
			So(a.Add(b), ShouldResemble, Measured(30))
			So(a.Add(oom).IsOOM(), ShouldBeTrue)
			So(oom.Add(a).IsOOM(), ShouldBeTrue)
		})

		Convey("When comparing", func() {
			So(a.Less(b), ShouldBeTrue)
			So(b.Less(a), ShouldBeFalse)
			So(b.Less(oom), ShouldBeTrue)
			So(oom.Less(a), ShouldBeFalse)
			So(oom.Less(oom), ShouldBeFalse)
		})

		Convey("When reading the value", func() {
			v, ok := a.Value()
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, 10)

			_, ok = oom.Value()
			So(ok, ShouldBeFalse)
			So(oom.String(), ShouldEqual, "OOM")
		})
	})
}

func TestRegistry(t *testing.T) {
	Convey("Given an empty registry", t, func() {
		r := NewRegistry()

		Convey("When appending runs for several languages", func() {
			goRun1 := NewScore("Go")
			r.Append(goRun1)
			r.Append(NewScore("Rust"))
			goRun2 := NewScore("Go")
			r.Append(goRun2)

			Convey("Then groups keep first-seen order", func() {
				groups := r.Groups()
				So(len(groups), ShouldEqual, 2)
				So(groups[0].Name, ShouldEqual, "Go")
				So(groups[1].Name, ShouldEqual, "Rust")
				So(r.Len(), ShouldEqual, 2)
				So(r.Runs(), ShouldEqual, 3)
			})

			Convey("And runs keep append order", func() {
				g, ok := r.Lookup("Go")
				So(ok, ShouldBeTrue)
				So(g.Len(), ShouldEqual, 2)
				So(g.Run(0), ShouldEqual, goRun1)
				So(g.Last(), ShouldEqual, goRun2)
				So(g.Run(2), ShouldBeNil)
			})
		})

		Convey("Then unknown names are not found", func() {
			_, ok := r.Lookup("Zig")
			So(ok, ShouldBeFalse)
		})
	})
}

func TestScoreCopies(t *testing.T) {
	Convey("Given a score with readings", t, func() {
		s := NewScore("Go")
		So(s.Empty(), ShouldBeTrue)
		s.AddTime(NewMeasurement(5, UnitMilliseconds))
		s.AddMemory(1024)

		Convey("Then returned slices are copies", func() {
			times := s.Times()
			times[0] = NewMeasurement(99, UnitSeconds)
			mem := s.Memory()
			mem[0] = 0

			So(s.Times()[0].Value(), ShouldEqual, 5)
			So(s.Memory()[0], ShouldEqual, 1024)
			So(s.Empty(), ShouldBeFalse)
		})
	})
}
