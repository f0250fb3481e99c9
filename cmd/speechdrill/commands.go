package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/speechdrill/internal/clock"
	"github.com/verte-zerg/speechdrill/internal/gesture"
	"github.com/verte-zerg/speechdrill/internal/model"
	"github.com/verte-zerg/speechdrill/internal/score"
	"github.com/verte-zerg/speechdrill/internal/store"
	"github.com/verte-zerg/speechdrill/internal/wordlist"
)

var (
	patientAge     int
	patientProblem string

	wordsSound string
	wordsCount int
)

func newSoundsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sounds",
		Short: "List articulation sounds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := loadSettings()
			if err != nil {
				return err
			}
			for _, sound := range s.file.Sounds() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), sound); err != nil {
					return fmt.Errorf("failed to write output: %w", err)
				}
			}
			return nil
		},
	}
}

func newPatientsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patients",
		Short: "Manage the patient roster",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List patients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withStore(func(st *store.Store) error {
				patients, err := st.ListPatients(cmd.Context())
				if err != nil {
					return err
				}
				return writePatients(cmd.OutOrStdout(), patients)
			})
		},
	}

	add := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a patient",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(st *store.Store) error {
				p, err := st.AddPatient(cmd.Context(), model.Patient{
					Name:    args[0],
					Age:     patientAge,
					Problem: patientProblem,
				})
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), p.ID)
				return err
			})
		},
	}
	add.Flags().IntVar(&patientAge, "age", 0, "patient age")
	add.Flags().StringVar(&patientProblem, "problem", "", "articulation problem")

	rm := &cobra.Command{
		Use:   "rm ID",
		Short: "Remove a patient",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(st *store.Store) error {
				return st.DeletePatient(cmd.Context(), args[0])
			})
		},
	}

	cmd.AddCommand(list, add, rm)
	return cmd
}

func withStore(fn func(st *store.Store) error) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}
	st, err := store.Open(s.paths.DB)
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	return fn(st)
}

func writePatients(w io.Writer, patients []model.Patient) error {
	if len(patients) == 0 {
		_, err := fmt.Fprintln(w, "No patients yet.")
		return err
	}
	for _, p := range patients {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", p.ID, p.Name, p.Age, p.Problem); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newFeedbackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "feedback SCORE SECONDS",
		Short: "Print the feedback tier for a score",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			points, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid score %q: %w", args[0], err)
			}
			seconds, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid seconds %q: %w", args[1], err)
			}
			tier := score.TierFor(points, seconds)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%.1f/min\t%s\n", tier, score.Rate(points, seconds), tier.Message())
			return err
		},
	}
}

func newPressesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presses MS...",
		Short: "Replay button presses and print detected gestures",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			times, err := parsePressTimes(args)
			if err != nil {
				return err
			}
			return replayPresses(cmd.OutOrStdout(), times)
		},
	}
}

func parsePressTimes(args []string) ([]time.Duration, error) {
	times := make([]time.Duration, 0, len(args))
	var last time.Duration
	for _, arg := range args {
		ms, err := strconv.Atoi(strings.TrimSpace(arg))
		if err != nil || ms < 0 {
			return nil, fmt.Errorf("invalid press time %q", arg)
		}
		at := time.Duration(ms) * time.Millisecond
		if at < last {
			return nil, fmt.Errorf("press times must not decrease: %q", arg)
		}
		last = at
		times = append(times, at)
	}
	return times, nil
}

// replayPresses feeds press times to a detector on a manual clock and writes
// one line per press plus one per resolved double.
func replayPresses(w io.Writer, times []time.Duration) error {
	manual := clock.NewManual()
	var out []string
	detector := gesture.New(manual,
		gesture.OnDouble(func() {
			out = append(out, fmt.Sprintf("%6dms  %s", manual.Now().Milliseconds(), model.GestureDouble))
		}),
		gesture.OnTriple(func() {
			out = append(out, fmt.Sprintf("%6dms  %s", manual.Now().Milliseconds(), model.GestureTriple))
		}),
	)
	for _, at := range times {
		manual.AdvanceTo(at)
		g := detector.RecordPress(at)
		if g != model.GestureTriple {
			out = append(out, fmt.Sprintf("%6dms  press -> %s", at.Milliseconds(), g))
		}
	}
	manual.Advance(gesture.Window + gesture.Grace)
	for _, line := range out {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newWordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "words FILE",
		Short: "Suggest word-recall words for a sound",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if wordsCount <= 0 {
				return fmt.Errorf("--count must be > 0")
			}
			words, err := wordlist.LoadWords(args[0])
			if err != nil {
				return fmt.Errorf("failed to load words: %w", err)
			}
			picked := wordlist.Suggest(words, wordsSound, wordsCount, newRand())
			if len(picked) == 0 {
				return fmt.Errorf("no words match %q", wordsSound)
			}
			for _, word := range picked {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), word); err != nil {
					return fmt.Errorf("failed to write output: %w", err)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&wordsSound, "sound", "", "articulation sound to match")
	cmd.Flags().IntVar(&wordsCount, "count", defaultSeedWords, "number of words")
	return cmd
}
