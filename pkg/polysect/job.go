package polysect

import (
	"fmt"
	"io"
	"math"

	"github.com/creasty/defaults"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

type jobYaml struct {
	Coefficients []float64 `yaml:"coefficients"`

	LowerBound float64 `yaml:"lowerBound"`
	UpperBound float64 `yaml:"upperBound"`

	Tolerance     float64 `yaml:"tolerance" default:"0.0001"`
	MaxIterations int     `yaml:"maxIterations" default:"100"`
}

// GetJobFromConfig reads in a job config in yaml format from a reader and initializes the corresponding job struct
func GetJobFromConfig(r io.Reader) (*Job, error) {
	var config jobYaml

	// Read in yaml
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&config); err != nil {
		return nil, err
	}
	if err := defaults.Set(&config); err != nil {
		return nil, err
	}

	// Convert to Job struct
	return &Job{
		Coefficients: Polynomial(config.Coefficients),

		LowerBound: config.LowerBound,
		UpperBound: config.UpperBound,

		Tolerance:     config.Tolerance,
		MaxIterations: config.MaxIterations,
	}, nil
}

// A Job represents a single root solve: a polynomial, a bracketing interval
// and the convergence parameters of the bisection loop.
type Job struct {
	Coefficients Polynomial // The polynomial whose root is searched, in descending degree order

	LowerBound float64 // The lower bound a of the bracketing interval
	UpperBound float64 // The upper bound b of the bracketing interval

	Tolerance     float64 // The absolute convergence threshold, applied to both |f(c)| and the interval error
	MaxIterations int     // The maximum amount of iterations before the solve is cut off

	Log *logrus.Logger // The log to which information gets printed to

	// OnIteration, if set, gets called once per loop pass with the record of
	// that iteration. Records are only valid for display, they are not
	// retained by the job.
	OnIteration func(Iteration)
}

// An Iteration is the record of a single pass of the bisection loop.
type Iteration struct {
	Index int // The 1-indexed iteration count

	A float64 // The lower bound at the start of this iteration
	B float64 // The upper bound at the start of this iteration

	C  float64 // The midpoint of [a, b], the current root candidate
	FC float64 // The polynomial evaluated at c

	// The error estimate of this iteration. On the first iteration this is
	// the full interval width |b - a|, afterwards the distance |c - prev_c|
	// between consecutive midpoints.
	Error float64
}

// A Result holds the outcome of a completed solve.
type Result struct {
	Root       float64 // The approximate root, the midpoint of the final iteration
	Iterations int     // How many iterations were used

	Converged bool // Whether the convergence test fired, as opposed to the iteration cap being reached
}

// A BracketError reports that the interval does not bracket a root: the
// polynomial has the same sign at both endpoints, so the Intermediate Value
// Theorem gives no root guarantee and the solve does not iterate.
type BracketError struct {
	FA float64 // The polynomial evaluated at the lower bound
	FB float64 // The polynomial evaluated at the upper bound
}

func (e *BracketError) Error() string {
	return fmt.Sprintf("f(a) and f(b) must have opposite signs (f(a) = %.4f, f(b) = %.4f)", e.FA, e.FB)
}

// Run the job. This checks the bracketing precondition and then narrows the
// interval until the convergence test fires or MaxIterations is exhausted.
// If the precondition fails, the returned error is a [*BracketError] carrying
// both endpoint values and no result is produced.
func (job *Job) Run() (*Result, error) {
	// Init the logger
	if job.Log == nil {
		// Mute logger
		job.Log = logrus.New()
		job.Log.SetOutput(io.Discard)
	}

	if len(job.Coefficients) == 0 {
		return nil, fmt.Errorf("job has no coefficients")
	}
	if job.Tolerance <= 0 {
		return nil, fmt.Errorf("tolerance %g is not positive", job.Tolerance)
	}
	if job.MaxIterations < 1 {
		return nil, fmt.Errorf("max iterations %d is less than 1", job.MaxIterations)
	}

	poly := job.Coefficients

	job.Log.Infof("Solving %s on [%g, %g]...", poly, job.LowerBound, job.UpperBound)

	fa := poly.Eval(job.LowerBound)
	fb := poly.Eval(job.UpperBound)

	// Validate Intermediate Value Theorem condition. The inequality is
	// deliberately >=, an exact zero at an endpoint is not special-cased
	if fa*fb >= 0 {
		return nil, &BracketError{FA: fa, FB: fb}
	}

	a, b := job.LowerBound, job.UpperBound
	c := a

	for i := 1; i <= job.MaxIterations; i++ {
		prevC := c
		c = (a + b) / 2
		fc := poly.Eval(c)

		errEstimate := math.Abs(c - prevC)
		if i == 1 {
			errEstimate = math.Abs(b - a)
		}

		if job.OnIteration != nil {
			job.OnIteration(Iteration{
				Index: i,

				A: a,
				B: b,

				C:  c,
				FC: fc,

				Error: errEstimate,
			})
		}

		// The width-based error of the first iteration is just the original
		// interval, not a convergence signal yet
		if math.Abs(fc) < job.Tolerance || (errEstimate < job.Tolerance && i > 1) {
			job.Log.Infof("Converged to root %g after %d iterations", c, i)
			return &Result{Root: c, Iterations: i, Converged: true}, nil
		}

		// Narrow the interval. f(a) is recomputed at the current lower bound
		// rather than carried over, and the test is a strict less-than: a
		// product of exactly zero keeps the upper half
		if poly.Eval(a)*fc < 0 {
			b = c
		} else {
			a = c
		}
	}

	job.Log.Warnf("Iteration cap of %d reached, best candidate %g", job.MaxIterations, c)

	return &Result{Root: c, Iterations: job.MaxIterations}, nil
}
