package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/calder/go-tackle-metrics/internal/loader"
	"github.com/calder/go-tackle-metrics/internal/model"
	"github.com/calder/go-tackle-metrics/internal/tackle"
)

var playsWeek int

// playsCmd is the event census: which plays in a week end in a tackle and
// would enter the metrics pipeline.
var playsCmd = &cobra.Command{
	Use:   "plays <data-dir>",
	Short: "Census of plays in a tracking week by ending event",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlays,
}

func init() {
	playsCmd.Flags().IntVar(&playsWeek, "week", 1, "tracking week to scan (1-9)")
}

func runPlays(cmd *cobra.Command, args []string) error {
	ds, err := loader.LoadDataset(args[0], playsWeek)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}

	byPlay := make(map[model.PlayKey][]model.TrackingFrame)
	var keys []model.PlayKey
	for _, f := range ds.Frames {
		k := f.Key()
		if _, ok := byPlay[k]; !ok {
			keys = append(keys, k)
		}
		byPlay[k] = append(byPlay[k], f)
	}

	var withTackle, withSlide, other int
	for _, k := range keys {
		frames := byPlay[k]
		hasTackle, err := tackle.PlayContainsTackle(frames)
		if err != nil {
			return err
		}
		hasSlide, err := tackle.PlayContainsQBSlide(frames)
		if err != nil {
			return err
		}
		switch {
		case hasTackle:
			withTackle++
		case hasSlide:
			withSlide++
		default:
			other++
		}
	}

	fmt.Fprintf(os.Stdout, "\nWeek %d: %d plays\n\n", playsWeek, len(keys))
	fmt.Fprintf(os.Stdout, "  Ends in tackle   : %d\n", withTackle)
	fmt.Fprintf(os.Stdout, "  QB slide         : %d\n", withSlide)
	fmt.Fprintf(os.Stdout, "  Other ending     : %d\n", other)
	return nil
}
