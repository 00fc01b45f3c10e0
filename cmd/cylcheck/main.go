// cylcheck validates a cylinder design file and prints its calculation
// summary. The file holds one analysis input as JSON:
//
//	{"cylinder": {...flat cylinder record...}, "mounting": {"category": "rearClevis", ...}}
//
// Usage: cylcheck design.json
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	analysis "CylCalc/internal/calc/analysis"
	cylinder "CylCalc/internal/calc/cylinder"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: cylcheck <design.json>")
		os.Exit(2)
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatalf("read design file: %v", err)
	}
	var input analysis.Input
	if err := json.Unmarshal(data, &input); err != nil {
		log.Fatalf("parse design file: %v", err)
	}

	summary, err := analysis.Run(input)
	if err != nil {
		var de *cylinder.Error
		if errors.As(err, &de) {
			if de.Param != "" {
				log.Fatalf("design rejected (%s, parameter %s): %s", de.Kind, de.Param, de.Message)
			}
			log.Fatalf("design rejected (%s): %s", de.Kind, de.Message)
		}
		log.Fatalf("design rejected: %v", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 1, ' ', tabwriter.TabIndent)
	fmt.Fprintf(w, "|\tPiston area\t%10.1f\tmm2\t|\n", summary.PistonArea)
	fmt.Fprintf(w, "|\tAnnular area\t%10.1f\tmm2\t|\n", summary.AnnularArea)
	fmt.Fprintf(w, "|\tOpen length\t%10.1f\tmm\t|\n", summary.OpenLength)
	fmt.Fprintf(w, "|\tPush force\t%10.0f\tN\t|\n", summary.PushForce)
	fmt.Fprintf(w, "|\tPull force\t%10.0f\tN\t|\n", summary.PullForce)
	fmt.Fprintf(w, "|\tWall thickness\t%10.2f\tmm\t|\n", summary.WallThickness)
	fmt.Fprintf(w, "|\tEstimated weight\t%10.1f\tkg\t|\n", summary.TotalWeight)
	if b := summary.Buckling; b != nil {
		fmt.Fprintf(w, "|\tMounting\t%10s\t\t|\n", b.Category)
		fmt.Fprintf(w, "|\tCritical load\t%10.0f\tN\t|\n", b.CriticalLoad)
		fmt.Fprintf(w, "|\tBuckling factor\t%10.2f\ttimes\t|\n", b.BucklingFactor)
		verdict := "NOT SAFE"
		if b.IsSafe {
			verdict = "SAFE"
		}
		fmt.Fprintf(w, "|\tBuckling verdict\t%10s\t\t|\n", verdict)
	}
	w.Flush()
}
