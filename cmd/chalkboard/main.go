package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/mvickers/chalkboard/geom"
	"github.com/mvickers/chalkboard/hull"
	"github.com/mvickers/chalkboard/projectile"
)

// Demo harness for the library. Input for the hull command is newline
// separated points in the form "x y" on stdin; the intersect command prompts
// for its coordinates the way the old console demos did.
var (
	app = kingpin.New("chalkboard", "Classic geometry and kinematics demos.")

	hullCmd = app.Command("hull", "Read \"x y\" points from stdin and print their convex hull.")

	intersectCmd = app.Command("intersect", "Check whether two line segments intersect.")

	trajectoryCmd = app.Command("trajectory", "Ground-to-ground projectile motion numbers.")
	velocity      = trajectoryCmd.Flag("velocity", "Launch speed in m/s.").Required().Float64()
	angle         = trajectoryCmd.Flag("angle", "Launch angle in degrees.").Required().Float64()
	gravity       = trajectoryCmd.Flag("gravity", "Gravitational acceleration in m/s².").Default("9.81").Float64()
)

func main() {
	var err error
	switch kingpin.MustParse(app.Parse(os.Args[1:])) {
	case hullCmd.FullCommand():
		err = runHull(os.Stdin, os.Stdout)
	case intersectCmd.FullCommand():
		err = runIntersect(os.Stdin, os.Stdout)
	case trajectoryCmd.FullCommand():
		err = runTrajectory(os.Stdout)
	}
	if err != nil {
		app.Fatalf("%v", err)
	}
}

func runHull(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	var points []geom.Point
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		point, err := parsePoint(line)
		if err != nil {
			return err
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "reading points")
	}

	result := hull.ConvexHull(points)
	if len(result) == 0 {
		// Not an error: fewer than three points simply have no hull.
		fmt.Fprintln(out, "no hull (need at least 3 points)")
		return nil
	}
	for _, p := range result {
		fmt.Fprintf(out, "%d %d\n", p.X, p.Y)
	}
	return nil
}

func parsePoint(line string) (geom.Point, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return geom.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return geom.Point{}, errors.Wrapf(err, "bad x coordinate in %q", line)
	}
	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return geom.Point{}, errors.Wrapf(err, "bad y coordinate in %q", line)
	}
	return geom.Point{X: x, Y: y}, nil
}

func runIntersect(in io.Reader, out io.Writer) error {
	var first, second geom.Segment

	fmt.Fprint(out, "Enter coordinates of first segment (x1 y1 x2 y2): ")
	if _, err := fmt.Fscan(in, &first.Start.X, &first.Start.Y, &first.End.X, &first.End.Y); err != nil {
		return errors.Wrap(err, "reading first segment")
	}

	fmt.Fprint(out, "Enter coordinates of second segment (x3 y3 x4 y4): ")
	if _, err := fmt.Fscan(in, &second.Start.X, &second.Start.Y, &second.End.X, &second.End.Y); err != nil {
		return errors.Wrap(err, "reading second segment")
	}

	if first.Intersects(second) {
		fmt.Fprintln(out, "Intersect")
	} else {
		fmt.Fprintln(out, "Do not intersect")
	}
	return nil
}

func runTrajectory(out io.Writer) error {
	time := projectile.TimeOfFlightUnder(*velocity, *angle, *gravity)
	fmt.Fprintf(out, "Time of flight:   %.3f s\n", time)
	fmt.Fprintf(out, "Horizontal range: %.3f m\n", projectile.HorizontalRange(*velocity, *angle, time))
	fmt.Fprintf(out, "Max height:       %.3f m\n", projectile.MaxHeightUnder(*velocity, *angle, *gravity))
	return nil
}
