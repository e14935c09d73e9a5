// Command hydro runs a single-path hydraulic analysis from a scenario file
// and prints the duty point, suction margin, and surge estimate.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Zeeshan123123/mksolutions-vibelux-sub005/internal/constants"
	"github.com/Zeeshan123123/mksolutions-vibelux-sub005/internal/log"
	"github.com/Zeeshan123123/mksolutions-vibelux-sub005/pkg/config"
	"github.com/Zeeshan123123/mksolutions-vibelux-sub005/pkg/hydraulics"
)

func main() {
	cfgFile := flag.String("config", "scenario.yaml", "Path to scenario source:\n\t\t\t  YAML: scenario.yaml\n\t\t\t  SQLite: catalog.db")
	cfgBackend := flag.String("config-backend", "yaml", "Scenario backend type: 'yaml' for YAML files, 'sqlite' for SQLite databases")
	jsonOut := flag.Bool("json", false, "Emit the full report as JSON instead of a text summary")
	debug := flag.Bool("debug", false, "Turn on debugging output")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("hydro %s\n", constants.Version)
		os.Exit(0)
	}

	if err := log.Init(*debug); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	scenario, err := loadScenario(*cfgFile, *cfgBackend)
	if err != nil {
		log.Errorf("Failed to load scenario: %v", err)
		os.Exit(1)
	}

	req, err := config.BuildRequest(scenario)
	if err != nil {
		log.Errorf("Invalid scenario: %v", err)
		os.Exit(1)
	}

	report, err := hydraulics.RunAnalysis(req)
	if err != nil {
		log.Errorf("Analysis failed: %v", err)
		os.Exit(1)
	}

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			log.Errorf("Failed to encode report: %v", err)
			os.Exit(1)
		}
		return
	}

	printReport(scenario, report)
}

func loadScenario(cfgFile, cfgBackend string) (*config.ScenarioData, error) {
	filename, _ := filepath.Abs(cfgFile)

	var provider config.Provider
	var err error

	switch cfgBackend {
	case "yaml":
		provider = config.NewYAMLProvider(filename)
	case "sqlite":
		provider, err = config.NewSQLiteProvider(filename)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown config backend %q (use 'yaml' or 'sqlite')", cfgBackend)
	}
	defer provider.Close()

	return provider.LoadScenario()
}

func printReport(scenario *config.ScenarioData, report *hydraulics.Report) {
	fmt.Printf("Hydraulic Analysis: %s\n", scenario.Name)
	fmt.Printf("===================%s\n\n", rule(len(scenario.Name)+2))
	fmt.Printf("Friction model:  %s\n", report.Model)
	fmt.Printf("System curve:    %d samples, %.1f–%.1f GPM\n\n",
		len(report.SystemCurve),
		report.SystemCurve[0].FlowGPM,
		report.SystemCurve[len(report.SystemCurve)-1].FlowGPM)

	if !report.OperatingFound {
		fmt.Println("No operating point: the pump and system curves do not cross inside")
		fmt.Println("the swept flow range. Consider a larger pump, a wider sweep, or less")
		fmt.Println("static lift.")
		return
	}

	op := report.Operating
	fmt.Printf("Duty point:\n")
	fmt.Printf("  Flow:        %8.1f GPM\n", op.FlowGPM)
	fmt.Printf("  Head:        %8.1f ft\n", op.HeadFt)
	fmt.Printf("  Efficiency:  %8.1f %%\n", op.Efficiency*100)
	fmt.Printf("  Power:       %8.2f hp\n", op.PowerHP)
	fmt.Printf("  NPSHr:       %8.2f ft\n\n", op.NPSHrFt)

	if n := report.NPSH; n != nil {
		fmt.Printf("Suction (NPSH):\n")
		fmt.Printf("  Available:   %8.2f ft\n", n.AvailableFt)
		fmt.Printf("  Required:    %8.2f ft\n", n.RequiredFt)
		fmt.Printf("  Margin:      %8.2f ft\n", n.MarginFt)
		if n.CavitationRisk {
			fmt.Printf("  WARNING: cavitation risk (available NPSH below required)\n")
		}
		fmt.Println()
	}

	if s := report.Surge; s != nil {
		fmt.Printf("Valve-closure surge:\n")
		fmt.Printf("  Wave speed:  %8.0f ft/s\n", s.WaveSpeedFPS)
		fmt.Printf("  Critical tc: %8.3f s\n", s.CriticalClosureSec)
		fmt.Printf("  Surge:       %8.1f psi", s.SurgePressurePSI)
		if s.Rapid {
			fmt.Printf("  (rapid closure, full Joukowsky rise)")
		}
		fmt.Println()
		fmt.Println()
	}

	if f := report.PumpFit; f != nil {
		fmt.Printf("Pump curve quadratic fit: H = %.3g %+.3g·Q %+.3g·Q²  (R² = %.4f)\n",
			f.Coeffs[0], f.Coeffs[1], f.Coeffs[2], f.RSquared)
	}
}

func rule(n int) string {
	out := make([]byte, n)
	for i := range out {
		out[i] = '='
	}
	return string(out)
}
