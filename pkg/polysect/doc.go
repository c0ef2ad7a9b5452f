/*
Package polysect provides a Go interface for locating polynomial roots with the bisection method.

Solves can most easily be created by passing in a job config to [GetJobFromConfig], but can also be created manually by populating a [Job] struct.
For a manually created job to work, at least the following fields have to be populated:
  - Coefficients
  - LowerBound & UpperBound
  - Tolerance
  - MaxIterations

The interval [LowerBound, UpperBound] has to bracket a root, meaning the polynomial must change sign between the two bounds.
If it does not, [Job.Run] reports this as a [BracketError] carrying both endpoint values and no solve takes place.

After a job struct was acquired, the solve can be started using [Job.Run], which narrows the interval until either the
function value at the midpoint or the distance between consecutive midpoints drops below Tolerance.
The per-iteration records of the loop can be observed by setting the [Job.OnIteration] callback, e.g. for rendering
an iteration table.

A completed solve can be visualized with [WritePlot], which renders the polynomial over the padded solve interval
and marks the root that was found.
*/
package polysect
