package coords_test

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/numkit/internal/coords"
	"github.com/san-kum/numkit/internal/numeric"
)

func TestCoords(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Coords Suite")
}

const tolerance = 1e-9

func randomAngles(rng *rand.Rand, n int) []float64 {
	angles := make([]float64, n-1)
	for i := range angles {
		if i == len(angles)-1 {
			angles[i] = rng.Float64() * 2 * math.Pi
		} else {
			// Stay off the poles so no trailing remainder vanishes.
			angles[i] = 0.05 + rng.Float64()*(math.Pi-0.1)
		}
	}
	return angles
}

var _ = Describe("Hyperspherical coordinates", func() {
	var rng *rand.Rand

	BeforeEach(func() {
		rng = rand.New(rand.NewSource(42))
	})

	Describe("round trip", func() {
		for n := 1; n <= 5; n++ {
			It(fmt.Sprintf("recovers the point in dimension %d", n), func() {
				for trial := 0; trial < 50; trial++ {
					p := make(coords.Point, n)
					for i := range p {
						p[i] = rng.Float64()*20 - 10
					}
					if n == 1 {
						p[0] = math.Abs(p[0])
					}

					s, err := coords.ToSpherical(p)
					Expect(err).NotTo(HaveOccurred())
					Expect(s.Dim()).To(Equal(n))

					back, err := coords.ToCartesian(s.R, s.Angles)
					Expect(err).NotTo(HaveOccurred())
					Expect(back).To(HaveLen(n))
					for i := range p {
						Expect(back[i]).To(BeNumerically("~", p[i], tolerance))
					}
				}
			})

			It(fmt.Sprintf("recovers the angles in dimension %d", n), func() {
				if n == 1 {
					Skip("no angles in one dimension")
				}
				for trial := 0; trial < 50; trial++ {
					r := 0.5 + rng.Float64()*10
					angles := randomAngles(rng, n)

					p, err := coords.ToCartesian(r, angles)
					Expect(err).NotTo(HaveOccurred())
					Expect(p.Norm()).To(BeNumerically("~", r, 1e-9))

					s, err := coords.ToSpherical(p)
					Expect(err).NotTo(HaveOccurred())
					Expect(s.R).To(BeNumerically("~", r, 1e-9))
					for i := range angles {
						Expect(s.Angles[i]).To(BeNumerically("~", angles[i], 1e-9))
					}
				}
			})
		}
	})

	Describe("angle ranges", func() {
		It("keeps polar angles in [0, π] and the azimuth in [0, 2π)", func() {
			for trial := 0; trial < 200; trial++ {
				p := coords.Point{
					rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64(),
				}
				s, err := coords.ToSpherical(p)
				Expect(err).NotTo(HaveOccurred())
				last := len(s.Angles) - 1
				for i, a := range s.Angles {
					Expect(a).To(BeNumerically(">=", 0))
					if i == last {
						Expect(a).To(BeNumerically("<", 2*math.Pi))
					} else {
						Expect(a).To(BeNumerically("<=", math.Pi))
					}
				}
			}
		})

		It("normalizes arbitrary inputs into range", func() {
			for trial := 0; trial < 200; trial++ {
				a := rng.Float64()*40 - 20
				Expect(coords.NormalizeAzimuth(a)).To(And(
					BeNumerically(">=", 0), BeNumerically("<", 2*math.Pi)))
				Expect(coords.NormalizePolar(a)).To(And(
					BeNumerically(">=", 0), BeNumerically("<=", math.Pi)))
			}
		})
	})

	Describe("specializations", func() {
		It("agree with the general transform for polar coordinates", func() {
			for trial := 0; trial < 50; trial++ {
				r, theta := rng.Float64()*5, rng.Float64()*2*math.Pi
				x, y, err := coords.PolarToCartesian(r, theta)
				Expect(err).NotTo(HaveOccurred())
				p, err := coords.ToCartesian(r, []float64{theta})
				Expect(err).NotTo(HaveOccurred())
				Expect(x).To(Equal(p[0]))
				Expect(y).To(Equal(p[1]))
			}
		})

		It("agree with the general transform for spherical coordinates", func() {
			for trial := 0; trial < 50; trial++ {
				x, y, z := rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()
				r, theta, phi, err := coords.CartesianToSpherical(x, y, z)
				Expect(err).NotTo(HaveOccurred())

				s, err := coords.ToSpherical(coords.Point{z, x, y})
				Expect(err).NotTo(HaveOccurred())
				Expect(r).To(Equal(s.R))
				Expect([]float64{theta, phi}).To(Equal(s.Angles))

				bx, by, bz, err := coords.SphericalToCartesian(r, theta, phi)
				Expect(err).NotTo(HaveOccurred())
				Expect(bx).To(BeNumerically("~", x, tolerance))
				Expect(by).To(BeNumerically("~", y, tolerance))
				Expect(bz).To(BeNumerically("~", z, tolerance))
			}
		})

		It("round trips cylindrical coordinates", func() {
			for trial := 0; trial < 50; trial++ {
				x, y, z := rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()
				r, theta, h, err := coords.CartesianToCylindrical(x, y, z)
				Expect(err).NotTo(HaveOccurred())
				Expect(h).To(Equal(z))

				bx, by, bz, err := coords.CylindricalToCartesian(r, theta, h)
				Expect(err).NotTo(HaveOccurred())
				Expect(bx).To(BeNumerically("~", x, tolerance))
				Expect(by).To(BeNumerically("~", y, tolerance))
				Expect(bz).To(Equal(z))
			}
		})
	})

	Describe("edge cases", func() {
		It("handles a one-dimensional point", func() {
			s, err := coords.ToSpherical(coords.Point{5})
			Expect(err).NotTo(HaveOccurred())
			Expect(s.R).To(Equal(5.0))
			Expect(s.Angles).To(BeEmpty())

			p, err := coords.ToCartesian(0, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(p).To(Equal(coords.Point{0}))
		})

		It("reports the origin as degenerate", func() {
			s, err := coords.ToSpherical(coords.Point{0, 0, 0, 0})
			Expect(err).To(MatchError(numeric.ErrDivisionByZero))
			var de *coords.DegenerateInputError
			Expect(errors.As(err, &de)).To(BeTrue())
			Expect(de.Index).To(Equal(0))
			Expect(s.R).To(BeZero())
			Expect(s.Angles).To(Equal([]float64{0, 0, 0}))
		})

		It("rejects a negative radius", func() {
			_, err := coords.ToCartesian(-2, []float64{0.1, 0.2})
			Expect(err).To(MatchError(numeric.ErrInvalidArgument))
		})
	})
})
