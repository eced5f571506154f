package insolation_test

import (
	"context"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/soniakeys/unit"

	"github.com/san-kum/milankovitch/internal/insolation"
	"github.com/san-kum/milankovitch/internal/series"
)

var _ = Describe("Daily insolation", func() {
	circular := insolation.NewOrbit(0, 23.44, 90)

	It("gives S0/pi at the equator on an equinox", func() {
		q := insolation.At(circular, 0, 0)
		Expect(q).To(BeNumerically("~", insolation.SolarConstant/math.Pi, 1e-9))
	})

	It("is zero in polar night", func() {
		// Northern winter solstice: declination -23.44°.
		Expect(insolation.At(circular, 90, -90)).To(BeNumerically("~", 0, 1e-9))
		Expect(insolation.At(circular, 80, -90)).To(BeNumerically("~", 0, 1e-9))
	})

	It("gives the summer pole more than the equator", func() {
		pole := insolation.At(circular, 90, 90)
		equator := insolation.At(circular, 0, 90)
		Expect(pole).To(BeNumerically(">", equator))
		Expect(pole).To(BeNumerically("~", insolation.SolarConstant*math.Sin(unit.AngleFromDeg(23.44).Rad()), 1e-6))
	})

	It("is symmetric between hemispheres on a circular orbit", func() {
		north := insolation.At(circular, 45, 90)
		south := insolation.At(circular, -45, -90)
		Expect(north).To(BeNumerically("~", south, 1e-9))
	})

	It("scales with the inverse-square distance factor", func() {
		o := insolation.NewOrbit(0.05, 23.44, 0)
		near := insolation.At(o, 0, 0)
		far := insolation.At(o, 0, 180)
		ratio := math.Pow((1+0.05)/(1-0.05), 2)
		Expect(near / far).To(BeNumerically("~", ratio, 1e-9))
	})
})

var _ = Describe("HourAngle", func() {
	It("clamps to polar day and polar night", func() {
		dec := unit.AngleFromDeg(23)
		Expect(insolation.HourAngle(unit.AngleFromDeg(80), dec)).To(Equal(math.Pi))
		Expect(insolation.HourAngle(unit.AngleFromDeg(-80), dec)).To(Equal(0.0))
		Expect(insolation.HourAngle(0, dec)).To(BeNumerically("~", math.Pi/2, 1e-12))
	})
})

var _ = Describe("Grid", func() {
	var g *insolation.Grid

	BeforeEach(func() {
		g = insolation.NewGrid()
	})

	It("has 25 latitude and 25 longitude bands", func() {
		Expect(g.Rows()).To(Equal(25))
		Expect(g.Cols()).To(Equal(25))
		Expect(g.Lats[0]).To(Equal(90.0))
		Expect(g.Lats[24]).To(BeNumerically("~", -87.6, 1e-9))
		Expect(g.Lons[0]).To(Equal(-180.0))
		Expect(g.Lons[24]).To(BeNumerically("~", 175.2, 1e-9))
	})

	It("maps levels onto the palette range", func() {
		g.Update(insolation.NewOrbit(0.03, 24, 120))
		levels := g.Levels(len(insolation.Palette))

		lo, hi := len(insolation.Palette), -1
		for _, row := range levels {
			for _, l := range row {
				lo = min(lo, l)
				hi = max(hi, l)
			}
		}
		Expect(lo).To(Equal(0))
		Expect(hi).To(Equal(len(insolation.Palette) - 1))
	})

	It("never produces negative or NaN insolation", func() {
		g.Update(insolation.NewOrbit(0.06, 25, 270))
		for _, row := range g.Values {
			for _, v := range row {
				Expect(math.IsNaN(v)).To(BeFalse())
				Expect(v).To(BeNumerically(">=", -1e-9))
			}
		}
	})

	It("returns zero levels for a flat grid", func() {
		levels := g.Levels(20)
		Expect(levels[3][7]).To(Equal(0))
	})
})

var _ = Describe("Series", func() {
	It("matches pointwise evaluation regardless of worker count", func() {
		raw, err := series.Synthesize(301, series.DefaultSourceStep)
		Expect(err).NotTo(HaveOccurred())
		ds, err := series.NewDataset(raw, 100, raw.Span())
		Expect(err).NotTo(HaveOccurred())

		one, err := insolation.Series(context.Background(), ds, 65, 90, 1)
		Expect(err).NotTo(HaveOccurred())
		many, err := insolation.Series(context.Background(), ds, 65, 90, 8)
		Expect(err).NotTo(HaveOccurred())

		Expect(one).To(HaveLen(ds.Len()))
		Expect(many).To(Equal(one))
		Expect(one[17]).To(Equal(insolation.At(insolation.OrbitAt(ds, 17), 65, 90)))
	})

	It("stops on a cancelled context", func() {
		raw, _ := series.Synthesize(101, series.DefaultSourceStep)
		ds, _ := series.NewDataset(raw, 100, raw.Span())
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := insolation.Series(ctx, ds, 65, 90, 2)
		Expect(err).To(MatchError(context.Canceled))
	})
})
