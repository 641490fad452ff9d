// ringoccs-demo runs the Fresnel inversion engine over a JSON5 profile
// and options file and prints a summary of the reconstructed profile.
//
// Usage:
//
//	ringoccs-demo <profile.json5> <options.json5>
package main

import (
	"fmt"
	"os"

	"github.com/ringoccs/ringoccs-go"
	"github.com/ringoccs/ringoccs-go/config"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "ringoccs-demo takes a calibrated-profile JSON5 file and an options JSON5 file as arguments.\n")
		fmt.Fprintf(os.Stderr, "Usage: ringoccs-demo <profile.json5> <options.json5>\n")
		os.Exit(1)
	}

	profileData, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "reading profile file: %v\n", err)
		os.Exit(1)
	}
	optionsData, err := os.ReadFile(os.Args[2])
	if err != nil {
		fmt.Fprintf(os.Stderr, "reading options file: %v\n", err)
		os.Exit(1)
	}

	profile, err := config.LoadProfile(profileData)
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading profile: %v\n", err)
		os.Exit(1)
	}
	options, err := config.LoadOptions(optionsData)
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading options: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Reconstructing %d samples over [%.3f, %.3f] km...\n", profile.Len(), options.RhoLo, options.RhoHi)

	lastPct := -1
	out, err := ringoccs.Reconstruct(profile, options, func(done, total int) {
		pct := done * 100 / total
		if pct != lastPct {
			fmt.Printf("\r  %3d%% (%d/%d)", pct, done, total)
			lastPct = pct
		}
	})
	if err != nil {
		fmt.Println()
		fmt.Fprintf(os.Stderr, "reconstruction failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println()

	n := len(out.Rho)
	fmt.Printf("Reconstructed %d output samples.\n", n)
	printSample := func(i int) {
		fmt.Printf("  rho=%12.4f  power=%8.5f  phase=%8.4f  tau=%8.4f\n",
			out.Rho[i], out.Power[i], out.Phase[i], out.Tau[i])
	}
	if n <= 10 {
		for i := 0; i < n; i++ {
			printSample(i)
		}
		return
	}
	for i := 0; i < 5; i++ {
		printSample(i)
	}
	fmt.Println("  ...")
	for i := n - 5; i < n; i++ {
		printSample(i)
	}
}
