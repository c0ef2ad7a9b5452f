package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/polysect/polysect/pkg/polysect"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var solveOutput string
var solveNoPlot bool

var solveCmd = &cobra.Command{
	Use:   "solve [job.yml]",
	Short: "Locate a polynomial root on a bracketing interval",
	Long: `Locate a polynomial root on a bracketing interval using the bisection method.
This command optionally takes in a path to a job.yml describing the solve.
If no path is specified, the polynomial, the interval and the convergence parameters are collected interactively.

The solve prints one table row per bisection iteration and a summary of the convergence status.
If a root was found, a plot of the polynomial with the root marked is written as a PNG.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var job *polysect.Job
		if len(args) == 1 {
			jobYaml, err := os.Open(args[0])
			if err != nil {
				logrus.Fatalf("Failed to open job yaml - %v", err)
			}
			job, err = polysect.GetJobFromConfig(jobYaml)
			jobYaml.Close()
			if err != nil {
				logrus.Fatalf("Failed to read job config from yaml - %v", err)
			}
		} else {
			job = jobFromPrompts()
		}

		job.Log = newLogger()
		job.OnIteration = printIterationRow

		res, err := job.Run()
		if err != nil {
			bracketErr := &polysect.BracketError{}
			if errors.As(err, &bracketErr) {
				// A non-bracketing interval is reported, not fatal. No plot
				// gets rendered down this path
				fmt.Printf("\n[Error]: %v\n", bracketErr)
				return
			}
			logrus.Fatalf("Failed to run solve - %v", err)
		}

		status := "Max Iterations Reached"
		if res.Iterations < job.MaxIterations {
			status = "Success"
		}

		fmt.Println(strings.Repeat("-", 70))
		fmt.Printf("Convergence Status: %s\n", status)
		fmt.Printf("Approximate Root: %.6f\n", res.Root)
		fmt.Printf("Iterations Used:  %d\n", res.Iterations)

		if solveNoPlot {
			return
		}

		plotFile, err := os.Create(solveOutput)
		if err != nil {
			logrus.Fatalf("Failed to create plot file - %v", err)
		}
		defer plotFile.Close()

		if err := polysect.WritePlot(plotFile, job.Coefficients, job.LowerBound, job.UpperBound, &res.Root); err != nil {
			logrus.Fatalf("Failed to render plot - %v", err)
		}
		job.Log.Infof("Wrote plot to %s", solveOutput)
	},
}

// printIterationRow renders one fixed-width table row per iteration, with the
// header printed ahead of the first one
func printIterationRow(it polysect.Iteration) {
	if it.Index == 1 {
		fmt.Printf("\n%-5s | %-10s | %-10s | %-10s | %-10s | %-10s\n", "Iter", "a", "b", "c (Root)", "f(c)", "Error")
		fmt.Println(strings.Repeat("-", 70))
	}
	fmt.Printf("%-5d | %-10.5f | %-10.5f | %-10.5f | %-10.5e | %-10.5e\n", it.Index, it.A, it.B, it.C, it.FC, it.Error)
}

// jobFromPrompts collects a solve job from the line-oriented prompt interface.
// Any non-numeric entry aborts the run with a message, there is no retry loop
func jobFromPrompts() *polysect.Job {
	degree := promptInt("Degree of the polynomial")
	if degree < 0 {
		logrus.Fatalf("%d is not a valid polynomial degree", degree)
	}

	coefficients := make(polysect.Polynomial, 0, degree+1)
	for i := degree; i >= 0; i-- {
		coefficients = append(coefficients, promptFloat(fmt.Sprintf("Coefficient for x^%d", i)))
	}

	return &polysect.Job{
		Coefficients: coefficients,

		LowerBound: promptFloat("Lower bound (a)"),
		UpperBound: promptFloat("Upper bound (b)"),

		Tolerance:     promptFloat("Tolerance (e.g. 0.0001)"),
		MaxIterations: promptInt("Maximum iterations"),
	}
}

func promptFloat(label string) float64 {
	input := promptLine(label)
	val, err := strconv.ParseFloat(input, 64)
	if err != nil {
		logrus.Fatalf("%s is not a valid numerical value", input)
	}
	return val
}

func promptInt(label string) int {
	input := promptLine(label)
	val, err := strconv.Atoi(input)
	if err != nil {
		logrus.Fatalf("%s is not a valid integer value", input)
	}
	return val
}

func promptLine(label string) string {
	prompt := promptui.Prompt{
		Label: label,
	}
	input, err := prompt.Run()
	if err != nil {
		logrus.Fatalf("Prompt failed - %v", err)
	}
	return strings.TrimSpace(input)
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().StringVarP(&solveOutput, "output", "o", "plot.png", "The file to which the plot gets written")
	solveCmd.Flags().BoolVar(&solveNoPlot, "no-plot", false, "Skip rendering the plot")
}
