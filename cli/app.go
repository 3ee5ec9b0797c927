// Package cli contains the scarafk command line tool, a thin driver that prints the forward kinematics of the arm.
package cli

import (
	"io"

	"github.com/urfave/cli/v2"
)

const (
	// Flags.
	generalFlagConfig  = "config"
	generalFlagDebug   = "debug"
	generalFlagDegrees = "degrees"

	poseFlagJoints    = "joints"
	poseFlagReference = "reference"

	sampleFlagCount     = "count"
	sampleFlagSeed      = "seed"
	sampleFlagWorkers   = "workers"
	sampleFlagTolerance = "tolerance"

	sweepFlagFrom  = "from"
	sweepFlagTo    = "to"
	sweepFlagSteps = "steps"

	plotFlagView = "view"
	plotFlagOut  = "out"
)

func jointsFlag() cli.Flag {
	return &cli.Float64SliceFlag{
		Name:     poseFlagJoints,
		Aliases:  []string{"j"},
		Usage:    "comma separated joint values j1,j2,j3,j4 (radians for j1-j3, meters for j4)",
		Required: true,
	}
}

// NewApp returns the scarafk application writing to the given outputs.
func NewApp(out, errOut io.Writer) *cli.App {
	return &cli.App{
		Name:            "scarafk",
		Usage:           "forward kinematics of a 4 DoF SCARA arm",
		HideHelpCommand: true,
		Writer:          out,
		ErrWriter:       errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    generalFlagConfig,
				Aliases: []string{"c"},
				Usage:   "load geometry overrides from json `FILE`",
			},
			&cli.BoolFlag{
				Name:    generalFlagDebug,
				Aliases: []string{"vvv"},
				Usage:   "enable debug logging",
			},
			&cli.BoolFlag{
				Name:  generalFlagDegrees,
				Usage: "read revolute joint values in degrees",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "home",
				Usage:  "print the end effector pose at the zero configuration",
				Action: HomeAction,
			},
			{
				Name:  "pose",
				Usage: "print the end effector pose for the given joint values",
				Flags: []cli.Flag{
					jointsFlag(),
					&cli.BoolFlag{
						Name:  poseFlagReference,
						Usage: "use the elementary transform chain instead of the product of exponentials",
					},
				},
				Action: PoseAction,
			},
			{
				Name:   "compare",
				Usage:  "print the pose from both formulations and their largest difference",
				Flags:  []cli.Flag{jointsFlag()},
				Action: CompareAction,
			},
			{
				Name:  "sample",
				Usage: "cross check both formulations on random joint values",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  sampleFlagCount,
						Value: 1000,
						Usage: "number of random samples",
					},
					&cli.Int64Flag{
						Name:  sampleFlagSeed,
						Value: 1,
						Usage: "random seed",
					},
					&cli.IntFlag{
						Name:  sampleFlagWorkers,
						Value: 4,
						Usage: "number of samples evaluated concurrently",
					},
					&cli.Float64Flag{
						Name:  sampleFlagTolerance,
						Value: 1e-6,
						Usage: "largest accepted componentwise difference",
					},
				},
				Action: SampleAction,
			},
			{
				Name:  "sweep",
				Usage: "print the end effector position along a straight line in joint space",
				Flags: []cli.Flag{
					&cli.Float64SliceFlag{
						Name:     sweepFlagFrom,
						Usage:    "starting joint values",
						Required: true,
					},
					&cli.Float64SliceFlag{
						Name:     sweepFlagTo,
						Usage:    "final joint values",
						Required: true,
					},
					&cli.IntFlag{
						Name:  sweepFlagSteps,
						Value: 10,
						Usage: "number of intervals",
					},
				},
				Action: SweepAction,
			},
			{
				Name:  "plot",
				Usage: "draw the link frames for the given joint values",
				Flags: []cli.Flag{
					jointsFlag(),
					&cli.StringFlag{
						Name:  plotFlagView,
						Value: "top",
						Usage: "projection, top or side",
					},
					&cli.StringFlag{
						Name:     plotFlagOut,
						Usage:    "output image `FILE`; the format follows the extension",
						Required: true,
					},
				},
				Action: PlotAction,
			},
		},
	}
}
