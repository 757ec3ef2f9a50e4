package main

import (
	"log"

	"github.com/gonum/stat"
	"github.com/montanaflynn/stats"
)

// summarizeResiduals logs the distribution of the reconstruction errors that
// the dropped positions carry against the final map.
func summarizeResiduals(residuals []float64) {
	if len(residuals) == 0 {
		log.Println("No positions were dropped")
		return
	}

	mean, sd := stat.MeanStdDev(residuals, nil)

	median, err := stats.Median(residuals)
	if err != nil {
		log.Fatalln(err)
	}

	max, err := stats.Max(residuals)
	if err != nil {
		log.Fatalln(err)
	}

	log.Printf("Dropped %d positions; reconstruction error mean %.6g SD %.6g median %.6g max %.6g",
		len(residuals), mean, sd, median, max)
}
