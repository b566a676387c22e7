package sim

import (
	"bytes"
	"context"
	"log"
	"math/rand"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/fireplace/internal/fire"
)

type countingMetric struct{ frames int }

func (c *countingMetric) Name() string           { return "frames" }
func (c *countingMetric) Observe(e *fire.Engine) { c.frames++ }
func (c *countingMetric) Value() float64         { return float64(c.frames) }
func (c *countingMetric) Reset()                 { c.frames = 0 }

func newTestEngine(rows, cols int) *fire.Engine {
	opts := fire.DefaultOptions()
	opts.Source = rand.New(rand.NewSource(11))
	e, err := fire.New(rows, cols, opts)
	Expect(err).NotTo(HaveOccurred())
	return e
}

var _ = Describe("Runner", func() {
	var (
		display *Headless
		engine  *fire.Engine
		runner  *Runner
		logs    *bytes.Buffer
	)

	BeforeEach(func() {
		display = NewHeadless(12, 30)
		engine = newTestEngine(12, 30)
		logs = &bytes.Buffer{}
		runner = New(engine, display, Config{Glyph: '#'}, log.New(logs, "", 0))
	})

	Describe("Tick", func() {
		It("steps the engine and renders one frame", func() {
			Expect(runner.Tick()).To(Succeed())
			Expect(engine.Frame()).To(Equal(1))
			Expect(display.Frames()).To(Equal(1))

			frame := display.Last()
			Expect(frame.Glyph).To(Equal('#'))
			Expect(frame.MaxTemp).To(Equal(fire.DefaultMaxTemp))
			Expect(frame.Field).To(BeIdenticalTo(engine.Field()))
			Expect(frame.From).To(Equal(engine.DrawFrom()))
			Expect(runner.Phase()).To(Equal(Running))
		})

		It("adjusts max temp from keys", func() {
			display.Press(KeyHotter, KeyHotter, KeyCooler)
			Expect(runner.Tick()).To(Succeed())
			Expect(engine.MaxTemp()).To(Equal(fire.DefaultMaxTemp + 1))
			Expect(display.Last().MaxTemp).To(Equal(fire.DefaultMaxTemp + 1))
			Expect(logs.String()).To(ContainSubstring("max temp 11"))
		})

		It("never lowers max temp below one", func() {
			for i := 0; i < 20; i++ {
				display.Press(KeyCooler)
			}
			Expect(runner.Tick()).To(Succeed())
			Expect(engine.MaxTemp()).To(Equal(1))
		})

		It("stops on the quit key without rendering", func() {
			display.Press(KeyQuit)
			Expect(runner.Tick()).To(Succeed())
			Expect(runner.Done()).To(BeTrue())
			Expect(display.Frames()).To(BeZero())

			Expect(runner.Tick()).To(Succeed())
			Expect(engine.Frame()).To(BeZero())
		})

		It("feeds metrics and observers", func() {
			m := &countingMetric{}
			runner.AddMetric(m)
			for i := 0; i < 3; i++ {
				Expect(runner.Tick()).To(Succeed())
			}
			Expect(runner.Metrics()).To(HaveKeyWithValue("frames", 3.0))
		})

		It("fails without a display", func() {
			r := New(engine, nil, Config{}, nil)
			Expect(r.Tick()).To(MatchError(ErrNoDisplay))
		})
	})

	Describe("resizing", func() {
		It("defers the resize to the next tick", func() {
			display.SetSize(8, 20)
			runner.NotifyResize()
			Expect(engine.Rows()).To(Equal(12))

			Expect(runner.Tick()).To(Succeed())
			Expect(engine.Rows()).To(Equal(8))
			Expect(engine.Cols()).To(Equal(20))
			Expect(engine.Field().Rows()).To(Equal(8))
			Expect(display.Clears()).To(Equal(1))
			Expect(runner.Phase()).To(Equal(Running))
			Expect(logs.String()).To(ContainSubstring("resize 12x30 -> 8x20"))
		})

		It("forces a full redraw", func() {
			for i := 0; i < 30; i++ {
				Expect(runner.Tick()).To(Succeed())
			}
			runner.NotifyResize()
			Expect(runner.Tick()).To(Succeed())
			Expect(display.Last().From).To(BeNumerically("<=", 1))
		})

		It("collapses several notifications into one resize", func() {
			runner.NotifyResize()
			runner.NotifyResize()
			runner.NotifyResize()
			Expect(runner.Tick()).To(Succeed())
			Expect(runner.Tick()).To(Succeed())
			Expect(display.Clears()).To(Equal(1))
		})

		It("survives a zero-area display", func() {
			display.SetSize(0, 0)
			runner.NotifyResize()
			Expect(runner.Tick()).To(Succeed())
			Expect(runner.Tick()).To(Succeed())
			Expect(engine.Field().Sum()).To(BeZero())

			display.SetSize(5, 5)
			runner.NotifyResize()
			Expect(runner.Tick()).To(Succeed())
			Expect(engine.Rows()).To(Equal(5))
		})

		It("returns allocation failures", func() {
			display.SetSize(-1, 4)
			runner.NotifyResize()
			Expect(runner.Tick()).To(HaveOccurred())
		})
	})

	Describe("Run", func() {
		It("stops after MaxFrames", func() {
			r := New(engine, display, Config{MaxFrames: 25}, nil)
			Expect(r.Run(context.Background())).To(Succeed())
			Expect(engine.Frame()).To(Equal(25))
			Expect(r.Done()).To(BeTrue())
		})

		It("stops when the context is cancelled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			r := New(engine, display, Config{FramePeriod: time.Millisecond}, nil)

			done := make(chan error, 1)
			go func() { done <- r.Run(ctx) }()

			Eventually(display.Frames).Should(BeNumerically(">", 2))
			cancel()
			Eventually(done).Should(Receive(BeNil()))
		})

		It("stops when Stop is called from another goroutine", func() {
			r := New(engine, display, Config{FramePeriod: time.Millisecond}, nil)
			done := make(chan error, 1)
			go func() { done <- r.Run(context.Background()) }()

			Eventually(display.Frames).Should(BeNumerically(">", 0))
			r.Stop()
			Eventually(done).Should(Receive(BeNil()))
		})
	})
})
