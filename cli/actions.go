package cli

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"go.viam.com/scarakin/logging"
	"go.viam.com/scarakin/referenceframe"
	"go.viam.com/scarakin/scara"
	"go.viam.com/scarakin/spatialmath"
)

const armName = "scara"

func newLogger(cCtx *cli.Context) logging.Logger {
	if cCtx.Bool(generalFlagDebug) {
		return logging.NewDebugLogger("scarafk")
	}
	return logging.NewLogger("scarafk")
}

// newArm builds the arm from the default geometry, or from the --config overrides when given.
func newArm(cCtx *cli.Context, logger logging.Logger) (*scara.Arm, error) {
	g := scara.DefaultGeometry()
	if path := cCtx.String(generalFlagConfig); path != "" {
		var err error
		g, err = scara.ReadGeometryFile(path)
		if err != nil {
			return nil, err
		}
		logger.Infow("loaded geometry", "path", path, "geometry", g)
	}
	return scara.NewArm(armName, g, logger)
}

// inputsFromFlag reads joint values from a float slice flag, converting from degrees if requested.
func inputsFromFlag(cCtx *cli.Context, arm *scara.Arm, name string) ([]referenceframe.Input, error) {
	values := cCtx.Float64Slice(name)
	if cCtx.Bool(generalFlagDegrees) {
		return arm.Model().InputsFromDegrees(values)
	}
	return referenceframe.FloatsToInputs(values), nil
}

// HomeAction prints the home transform M.
func HomeAction(cCtx *cli.Context) error {
	logger := newLogger(cCtx)
	arm, err := newArm(cCtx, logger)
	if err != nil {
		return err
	}
	printf(cCtx.App.Writer, "%s", transformTable("home", arm.Model().Home()))
	return nil
}

// PoseAction prints the end effector pose for the given joints.
func PoseAction(cCtx *cli.Context) error {
	logger := newLogger(cCtx)
	arm, err := newArm(cCtx, logger)
	if err != nil {
		return err
	}
	inputs, err := inputsFromFlag(cCtx, arm, poseFlagJoints)
	if err != nil {
		return err
	}

	title := "product of exponentials"
	fk := arm.ForwardKinematics
	if cCtx.Bool(poseFlagReference) {
		title = "elementary chain"
		fk = arm.ForwardKinematicsReference
	}
	pose, err := fk(inputs)
	if err != nil {
		return errors.Wrap(err, "cannot compute pose")
	}
	logger.Debugw("computed pose", "joints", referenceframe.InputsToFloats(inputs), "method", title)
	printf(cCtx.App.Writer, "%s", transformTable(title, pose))
	return nil
}

// CompareAction prints the pose from both formulations and the largest difference between them.
func CompareAction(cCtx *cli.Context) error {
	logger := newLogger(cCtx)
	arm, err := newArm(cCtx, logger)
	if err != nil {
		return err
	}
	inputs, err := inputsFromFlag(cCtx, arm, poseFlagJoints)
	if err != nil {
		return err
	}
	poe, ref, deviation, err := arm.Compare(inputs)
	if err != nil {
		return errors.Wrap(err, "cannot compare poses")
	}
	printf(cCtx.App.Writer, "%s", transformTable("product of exponentials", poe))
	printf(cCtx.App.Writer, "%s", transformTable("elementary chain", ref))
	printf(cCtx.App.Writer, "max deviation: %g", deviation)
	return nil
}

// SampleAction evaluates both formulations on seeded random joint values and fails if they disagree by more than the
// tolerance.
func SampleAction(cCtx *cli.Context) error {
	logger := newLogger(cCtx)
	arm, err := newArm(cCtx, logger)
	if err != nil {
		return err
	}
	count := cCtx.Int(sampleFlagCount)
	workers := cCtx.Int(sampleFlagWorkers)
	tolerance := cCtx.Float64(sampleFlagTolerance)
	if count <= 0 {
		return errors.Errorf("--%s must be positive, got %d", sampleFlagCount, count)
	}
	if workers <= 0 {
		return errors.Errorf("--%s must be positive, got %d", sampleFlagWorkers, workers)
	}

	//nolint:gosec
	rSeed := rand.New(rand.NewSource(cCtx.Int64(sampleFlagSeed)))
	samples := make([][]referenceframe.Input, count)
	for i := range samples {
		samples[i] = referenceframe.FloatsToInputs([]float64{
			(rSeed.Float64()*2 - 1) * math.Pi,
			(rSeed.Float64()*2 - 1) * math.Pi,
			(rSeed.Float64()*2 - 1) * math.Pi,
			(rSeed.Float64()*2 - 1) * 0.2,
		})
	}

	deviations := make([]float64, count)
	g, ctx := errgroup.WithContext(cCtx.Context)
	g.SetLimit(workers)
	for i, inputs := range samples {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			_, _, deviation, err := arm.Compare(inputs)
			if err != nil {
				return errors.Wrapf(err, "sample %d", i)
			}
			deviations[i] = deviation
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	worst, err := stats.Max(deviations)
	if err != nil {
		return err
	}
	mean, err := stats.Mean(deviations)
	if err != nil {
		return err
	}
	p99, err := stats.Percentile(deviations, 99)
	if err != nil {
		return err
	}
	worstIdx := floats.MaxIdx(deviations)
	logger.Infow("sampled", "count", count, "workers", workers, "max_deviation", worst, "mean_deviation", mean)

	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"samples", "mean", "p99", "max deviation", "worst joints", "tolerance"})
	tw.AppendRow(table.Row{
		count,
		fmt.Sprintf("%g", mean),
		fmt.Sprintf("%g", p99),
		fmt.Sprintf("%g", worst),
		fmt.Sprintf("%.4f", referenceframe.InputsToFloats(samples[worstIdx])),
		tolerance,
	})
	printf(cCtx.App.Writer, "%s", tw.Render())

	if worst > tolerance {
		return errors.Errorf("formulations disagree by %g, more than the tolerance %g", worst, tolerance)
	}
	return nil
}

// SweepAction prints the end effector position at evenly spaced points between two joint configurations.
func SweepAction(cCtx *cli.Context) error {
	logger := newLogger(cCtx)
	arm, err := newArm(cCtx, logger)
	if err != nil {
		return err
	}
	from, err := inputsFromFlag(cCtx, arm, sweepFlagFrom)
	if err != nil {
		return err
	}
	to, err := inputsFromFlag(cCtx, arm, sweepFlagTo)
	if err != nil {
		return err
	}
	if len(from) != len(to) {
		return referenceframe.NewIncorrectDoFError(len(to), len(from))
	}
	steps := cCtx.Int(sweepFlagSteps)
	if steps <= 0 {
		return errors.Errorf("--%s must be positive, got %d", sweepFlagSteps, steps)
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.SetTitle(fmt.Sprintf("joint space distance %.6f", referenceframe.InputsL2Distance(from, to)))
	tw.AppendHeader(table.Row{"step", "j1", "j2", "j3", "j4", "x", "y", "z"})
	for i := 0; i <= steps; i++ {
		inputs := referenceframe.InterpolateInputs(from, to, float64(i)/float64(steps))
		pose, err := arm.ForwardKinematics(inputs)
		if err != nil {
			return errors.Wrapf(err, "step %d", i)
		}
		row := table.Row{i}
		for _, v := range referenceframe.InputsToFloats(inputs) {
			row = append(row, formatFloat(v))
		}
		pt := pose.Point()
		row = append(row, formatFloat(pt.X), formatFloat(pt.Y), formatFloat(pt.Z))
		tw.AppendRow(row)
	}
	printf(cCtx.App.Writer, "%s", tw.Render())
	return nil
}

// PlotAction renders the link frames of the elementary chain to an image.
func PlotAction(cCtx *cli.Context) error {
	logger := newLogger(cCtx)
	arm, err := newArm(cCtx, logger)
	if err != nil {
		return err
	}
	inputs, err := inputsFromFlag(cCtx, arm, poseFlagJoints)
	if err != nil {
		return err
	}
	frames, err := arm.Geometry().LinkFrames(inputs)
	if err != nil {
		return err
	}
	out := cCtx.String(plotFlagOut)
	if err := scara.PlotLinkFrames(frames, scara.LinkFrameNames(), scara.View(cCtx.String(plotFlagView)), out); err != nil {
		return errors.Wrap(err, "cannot plot frames")
	}
	tool := frames[len(frames)-1]
	printf(cCtx.App.Writer, "wrote %s (tool at %s)", out, pointString(tool))
	return nil
}

func pointString(t spatialmath.Transform) string {
	pt := t.Point()
	return fmt.Sprintf("%s, %s, %s", formatFloat(pt.X), formatFloat(pt.Y), formatFloat(pt.Z))
}
