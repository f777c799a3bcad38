// Command drive runs the simulator headlessly for a fixed number of
// steps under a simple scripted policy and logs the resulting
// trajectory. It exercises the same Simulator boundary a training
// loop or graphical front-end would use, without either.
package main

import (
	"flag"
	"log"

	"drivesim/internal/sim"
	"drivesim/internal/track"
)

func main() {
	steps := flag.Int("steps", 200, "number of steps to run")
	trackName := flag.String("track", "oval", "track factory: oval, simple, or racetrack")
	seed := flag.Uint64("seed", 0, "PRNG seed")
	flag.Parse()

	road, err := buildTrack(*trackName)
	if err != nil {
		log.Fatal(err)
	}

	config := sim.DefaultSimConfig()
	env := sim.New(config, road, true, true, seed)

	for i := 0; i < *steps; i++ {
		action := scriptedPolicy(i)
		transition := env.Step(action)

		state := env.State()
		log.Printf(
			"i=%d t=%.2f pos=(%.2f,%.2f) speed=%.2f reward=%.3f done=%v",
			env.I(), env.T(), state.Position.X, state.Position.Y, state.Speed, transition.Reward, transition.Done,
		)

		if transition.Done {
			log.Printf("crashed at step %d, resetting", i)
			env.Reset(nil)
		}
	}
}

// scriptedPolicy alternates gentle left and right steering on top of
// constant acceleration, just enough to exercise the steering and
// acceleration actions (it never brakes or coasts) and keep the car
// from crashing on the straight.
func scriptedPolicy(step int) sim.Action {
	switch step % 5 {
	case 0, 1, 2:
		return sim.ActionAccelerate
	case 3:
		return sim.ActionLeft
	default:
		return sim.ActionRight
	}
}

func buildTrack(name string) (track.SplineMap, error) {
	switch name {
	case "oval":
		return track.MakeOval(), nil
	case "simple":
		return track.MakeSimpleRacetrack(), nil
	case "racetrack":
		return track.MakeRacetrack(), nil
	default:
		return track.SplineMap{}, &unknownTrackError{name: name}
	}
}

type unknownTrackError struct{ name string }

func (e *unknownTrackError) Error() string {
	return "drive: unknown track " + e.name
}
