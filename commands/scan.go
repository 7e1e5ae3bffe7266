package commands

import (
	"fmt"
	"os"
	"sort"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"
	"github.com/mgutz/ansi"
	"github.com/olekukonko/tablewriter"

	"github.com/pivotal-cf/cred-audit/lifecycle"
	"github.com/pivotal-cf/cred-audit/models"
	"github.com/pivotal-cf/cred-audit/rules"
	"github.com/pivotal-cf/cred-audit/snapshot"
)

// ExitExposuresFound is the status the scan command exits with when it
// reports anything.
const ExitExposuresFound = 3

type ScanCommand struct {
	Archive     string `short:"a" long:"archive" description:"backup archive (tar, tgz or zip) or directory of .env files to scan" value-name:"PATH" required:"true"`
	Project     string `short:"p" long:"project" description:"project name to report the scan under" value-name:"NAME" default:"offline"`
	MinSeverity string `long:"min-severity" description:"hide exposures below this severity" choice:"critical" choice:"high" choice:"medium" choice:"low" default:"low"`
	NoColor     bool   `long:"no-color" description:"disable colored output"`
	Debug       bool   `long:"debug" description:"enables debug logging"`
}

func (command *ScanCommand) Execute(args []string) error {
	ansi.DisableColors(command.NoColor)

	logger := newLogger("scan", command.Debug)

	minimum, err := models.ParseSeverity(command.MinSeverity)
	if err != nil {
		return err
	}

	source := snapshot.NewArchiveSource(command.Archive, clock.NewClock())
	snap, err := source.Snapshot(logger, command.Project)
	if err != nil {
		return err
	}

	result, ruleErr := rules.DefaultTable().Evaluate(logger, snap)
	if ruleErr != nil {
		fmt.Fprintln(os.Stderr, yellow("[WARN]"), "some rules failed, results are incomplete:", result.Failed)
	}

	detections, _ := lifecycle.Merge(command.Project, result.Detections)
	detections = atLeast(detections, minimum)

	fmt.Printf("Scanned %d variables in %d environments with %d rules.\n\n",
		snap.VariableCount(), len(snap.Environments), len(result.Evaluated))

	if len(detections) == 0 {
		fmt.Println(green("No exposures found."))
		return nil
	}

	printDetections(logger, detections)
	printLeaks(leakSignals(result.Detections, minimum))

	os.Exit(ExitExposuresFound)
	return nil
}

func atLeast(detections []models.Detection, minimum models.Severity) []models.Detection {
	var kept []models.Detection
	for _, d := range detections {
		if d.Severity.Rank() <= minimum.Rank() {
			kept = append(kept, d)
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Severity.Rank() < kept[j].Severity.Rank()
	})

	return kept
}

func printDetections(logger lager.Logger, detections []models.Detection) {
	var counts models.SeverityCounts

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Severity", "Type", "Location", "Description"})
	table.SetAutoWrapText(false)

	for _, d := range detections {
		counts.Add(d.Severity, 1)
		table.Append([]string{
			severityColor(d.Severity)(string(d.Severity)),
			string(d.FindingType),
			d.Location,
			d.Description,
		})
	}

	table.Render()

	logger.Debug("reported", lager.Data{"detections": len(detections)})

	fmt.Println()
	fmt.Printf("%s %d exposures: %d critical, %d high, %d medium, %d low\n",
		red("[EXPOSED]"), counts.Total(), counts.Critical, counts.High, counts.Medium, counts.Low)
}

// leakSignals reads the unmerged rule output, since merging findings may drop
// the detection that carried a leak.
func leakSignals(detections []models.Detection, minimum models.Severity) []*models.LeakSignal {
	seen := map[string]bool{}

	var signals []*models.LeakSignal
	for _, d := range detections {
		if d.Leak == nil || d.Leak.Severity.Rank() > minimum.Rank() {
			continue
		}

		key := string(d.Leak.DetectionType) + "|" + d.Leak.Key
		if seen[key] {
			continue
		}
		seen[key] = true

		signals = append(signals, d.Leak)
	}

	sort.SliceStable(signals, func(i, j int) bool {
		return signals[i].Severity.Rank() < signals[j].Severity.Rank()
	})

	return signals
}

func printLeaks(signals []*models.LeakSignal) {
	if len(signals) == 0 {
		return
	}

	fmt.Println()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Leak", "Severity", "Source", "Sample"})
	table.SetAutoWrapText(false)

	for _, s := range signals {
		table.Append([]string{
			string(s.DetectionType),
			severityColor(s.Severity)(string(s.Severity)),
			s.Source,
			s.Sample,
		})
	}

	table.Render()
}
