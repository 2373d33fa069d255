package convert_test

import (
	"context"
	"errors"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/fluxconv/internal/convert"
	"github.com/san-kum/fluxconv/internal/dimension"
	"github.com/san-kum/fluxconv/internal/field"
	"github.com/san-kum/fluxconv/internal/storage"
	"github.com/san-kum/fluxconv/internal/timesel"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var _ = Describe("Converter", func() {
	var (
		ctx    context.Context
		at     timesel.Instant
		params convert.Params
	)

	pressure := func(dims dimension.Dimension, values ...float64) *field.Field {
		return &field.Field{Name: "p", Time: at, Class: field.Volume, Dimensions: dims, Values: values}
	}
	flux := func(dims dimension.Dimension, values ...float64) *field.Field {
		return &field.Field{Name: "phi", Time: at, Class: field.Surface, Dimensions: dims, Values: values}
	}

	BeforeEach(func() {
		ctx = context.Background()
		at = timesel.FromValue(0.5)
		params = convert.Params{RhoRef: 1.2, POffset: 101325}
	})

	run := func(store *memStore, dir convert.Direction, opts ...convert.Option) (*convert.Report, error) {
		c, err := convert.New(store, params, dir, opts...)
		Expect(err).NotTo(HaveOccurred())
		return c.Run(ctx, at)
	}

	Describe("construction", func() {
		It("rejects a non-positive reference density", func() {
			_, err := convert.New(newMemStore(), convert.Params{RhoRef: 0}, convert.Forward)
			Expect(errors.Is(err, convert.ErrInvalidRhoRef)).To(BeTrue())
		})
	})

	Context("with the inverse direction", func() {
		It("turns a dynamic pressure into a kinematic one", func() {
			store := newMemStore(pressure(dimension.Pressure, 101325, 101330), flux(dimension.MassFluxDim, 2.4))

			report, err := run(store, convert.Inverse)
			Expect(err).NotTo(HaveOccurred())
			Expect(report.Results).To(HaveLen(2))

			rhop := store.fields[key("rhop", at)]
			Expect(rhop).NotTo(BeNil())
			Expect(rhop.Dimensions).To(Equal(dimension.KinematicPressureDim))
			Expect(rhop.Values[0]).To(BeNumerically("~", 0, 1e-9))
			Expect(rhop.Values[1]).To(BeNumerically("~", 4.1667, 1e-4))

			rhophi := store.fields[key("rhophi", at)]
			Expect(rhophi).NotTo(BeNil())
			Expect(rhophi.Dimensions).To(Equal(dimension.VolumeFluxDim))
			Expect(rhophi.Values).To(HaveLen(1))
			Expect(rhophi.Values[0]).To(BeNumerically("~", 2.0, 1e-12))
			Expect(rhophi.Class).To(Equal(field.Surface))
		})

		It("leaves already kinematic fields alone", func() {
			store := newMemStore(pressure(dimension.KinematicPressureDim, 1), flux(dimension.VolumeFluxDim, 1))

			report, err := run(store, convert.Inverse)
			Expect(err).NotTo(HaveOccurred())
			Expect(store.writes).To(BeEmpty())
			for _, res := range report.Results {
				Expect(res.Outcome).To(Equal(convert.NoOp))
			}
		})
	})

	Context("with the forward direction", func() {
		It("recovers the original dynamic pressure", func() {
			store := newMemStore(pressure(dimension.KinematicPressureDim, 0, 4.1667), flux(dimension.VolumeFluxDim, 2.0))

			_, err := run(store, convert.Forward)
			Expect(err).NotTo(HaveOccurred())

			rhop := store.fields[key("rhop", at)]
			Expect(rhop.Dimensions).To(Equal(dimension.Pressure))
			Expect(rhop.Values[0]).To(BeNumerically("~", 101325, 1e-6))
			Expect(rhop.Values[1]).To(BeNumerically("~", 101330, 1e-3))

			rhophi := store.fields[key("rhophi", at)]
			Expect(rhophi.Dimensions).To(Equal(dimension.MassFluxDim))
			Expect(rhophi.Values[0]).To(BeNumerically("~", 2.4, 1e-12))
		})

		It("writes nothing for a dynamic pressure and mass flux", func() {
			store := newMemStore(pressure(dimension.Pressure, 101325), flux(dimension.MassFluxDim, 2.4))

			report, err := run(store, convert.Forward)
			Expect(err).NotTo(HaveOccurred())
			Expect(store.writes).To(BeEmpty())
			Expect(report.Results[0].Outcome).To(Equal(convert.NoOp))
			Expect(report.Results[0].Kind).To(Equal(dimension.DynamicPressure))
			Expect(report.Results[1].Outcome).To(Equal(convert.NoOp))
			Expect(report.Converted()).To(BeEmpty())
		})
	})

	Describe("field independence", func() {
		It("still converts the flux when the pressure is unrecognized", func() {
			store := newMemStore(pressure(dimension.Velocity, 3), flux(dimension.VolumeFluxDim, 2.0))

			report, err := run(store, convert.Forward)
			Expect(err).NotTo(HaveOccurred())
			Expect(report.Results[0].Outcome).To(Equal(convert.Unrecognized))
			Expect(report.Results[1].Outcome).To(Equal(convert.Converted))
			Expect(store.writes).To(HaveLen(1))
			Expect(store.writes[0].Name).To(Equal("rhophi"))
		})

		It("still converts the pressure when the flux is unrecognized", func() {
			store := newMemStore(pressure(dimension.Pressure, 101330), flux(dimension.Pressure, 1))

			report, err := run(store, convert.Inverse)
			Expect(err).NotTo(HaveOccurred())
			Expect(report.Results[0].Outcome).To(Equal(convert.Converted))
			Expect(report.Results[1].Outcome).To(Equal(convert.Unrecognized))
			Expect(report.Results[1].Kind).To(Equal(dimension.Unrecognized))
		})

		It("reports unrecognized dimensions below warning level", func() {
			core, logs := observer.New(zapcore.InfoLevel)
			store := newMemStore(pressure(dimension.Velocity, 3), flux(dimension.Pressure, 1))

			_, err := run(store, convert.Forward, convert.WithLogger(zap.New(core).Sugar()))
			Expect(err).NotTo(HaveOccurred())
			Expect(logs.FilterMessage("cannot recognise field dimensions, ignoring").Len()).To(Equal(2))
			Expect(logs.Filter(func(e observer.LoggedEntry) bool {
				return e.Level >= zapcore.WarnLevel
			}).Len()).To(BeZero())
		})

		It("does not treat a flux dimension on p as a pressure", func() {
			store := newMemStore(pressure(dimension.MassFluxDim, 1), flux(dimension.MassFluxDim, 1))

			report, err := run(store, convert.Inverse)
			Expect(err).NotTo(HaveOccurred())
			Expect(report.Results[0].Outcome).To(Equal(convert.Unrecognized))
			Expect(report.Results[1].Outcome).To(Equal(convert.Converted))
		})
	})

	Describe("fatal conditions", func() {
		It("aborts when the pressure field is missing, before reading the flux", func() {
			store := newMemStore(flux(dimension.VolumeFluxDim, 1))

			_, err := run(store, convert.Forward)
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, storage.ErrFieldNotFound)).To(BeTrue())
			Expect(store.reads).To(Equal([]string{"p"}))
		})

		It("aborts when the flux field is missing", func() {
			store := newMemStore(pressure(dimension.KinematicPressureDim, 1))

			report, err := run(store, convert.Forward)
			Expect(errors.Is(err, storage.ErrFieldNotFound)).To(BeTrue())
			Expect(report.Results).To(HaveLen(1))
		})

		It("propagates write failures", func() {
			store := newMemStore(pressure(dimension.KinematicPressureDim, 1), flux(dimension.VolumeFluxDim, 1))
			store.failWrite["rhop"] = true

			_, err := run(store, convert.Forward)
			Expect(errors.Is(err, errDiskFull)).To(BeTrue())
			Expect(store.reads).To(Equal([]string{"p"}))
		})
	})

	Describe("options", func() {
		It("reads custom field names in order", func() {
			store := newMemStore(
				&field.Field{Name: "p_rgh", Time: at, Class: field.Volume, Dimensions: dimension.KinematicPressureDim, Values: []float64{1}},
				&field.Field{Name: "phiv", Time: at, Class: field.Surface, Dimensions: dimension.VolumeFluxDim, Values: []float64{1}},
			)
			reporter := &recordingReporter{}

			report, err := run(store, convert.Forward, convert.WithFieldNames("p_rgh", "phiv"), convert.WithReporter(reporter))
			Expect(err).NotTo(HaveOccurred())
			Expect(store.reads).To(Equal([]string{"p_rgh", "phiv"}))
			Expect(reporter.read).To(Equal([]string{"p_rgh", "phiv"}))
			Expect(reporter.results).To(HaveLen(2))
			Expect(report.Results[0].Output).To(Equal("rhop_rgh"))
			Expect(report.Results[1].Output).To(Equal("rhophiv"))
		})

		It("plans without writing on a dry run", func() {
			store := newMemStore(pressure(dimension.KinematicPressureDim, 1), flux(dimension.VolumeFluxDim, 1))

			report, err := run(store, convert.Forward, convert.WithDryRun(true))
			Expect(err).NotTo(HaveOccurred())
			Expect(store.writes).To(BeEmpty())
			Expect(report.DryRun).To(BeTrue())
			Expect(report.Converted()).To(HaveLen(2))
			Expect(report.Converted()[0].Written).To(BeFalse())
		})
	})

	It("converts through a real yaml store", func() {
		dir, err := os.MkdirTemp("", "fluxconv-case")
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(os.RemoveAll, dir)

		st := storage.NewYAMLStore(dir)
		Expect(st.WriteField(ctx, pressure(dimension.Pressure, 101325, 101330))).To(Succeed())
		Expect(st.WriteField(ctx, flux(dimension.MassFluxDim, 2.4))).To(Succeed())

		c, err := convert.New(st, params, convert.Inverse)
		Expect(err).NotTo(HaveOccurred())
		_, err = c.Run(ctx, at)
		Expect(err).NotTo(HaveOccurred())

		rhophi, err := st.ReadField(ctx, "rhophi", at)
		Expect(err).NotTo(HaveOccurred())
		Expect(rhophi.Dimensions).To(Equal(dimension.VolumeFluxDim))
		Expect(rhophi.Values[0]).To(BeNumerically("~", 2.0, 1e-12))
	})
})
