package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/nemsgen/internal/configfile"
	"github.com/san-kum/nemsgen/internal/nems"
	"github.com/san-kum/nemsgen/internal/scenario"
	"github.com/san-kum/nemsgen/internal/sequence"
	"github.com/san-kum/nemsgen/internal/summary"
	"github.com/san-kum/nemsgen/internal/system"
)

var (
	outDir        string
	preset        string
	modeName      string
	overwrite     bool
	versionHeader bool
	// Late-bound attribute overrides
	historyN     int
	restartN     int
	stopN        int
	couplingMode string
	// model_configure options
	dtAtmos            int
	quilting           bool
	quiltingRestart    bool
	writeGroups        int
	writeTasksPerGroup int
	itasks             int
	outputHistory      bool
	imo                int
	jmo                int
	outputFH           string
	// Preview target
	previewFile string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "nemsgen",
		Short: "NEMS/UFS coupled-model configuration generator",
	}

	generateCmd := &cobra.Command{
		Use:   "generate [scenario.yaml]",
		Short: "write configuration files for a scenario",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runGenerate,
	}
	generateCmd.Flags().StringVar(&outDir, "out", ".", "output directory")
	generateCmd.Flags().StringVar(&preset, "preset", "", "use a built-in scenario")
	generateCmd.Flags().StringVar(&modeName, "mode", "", "sequence mode (traditional, coastal)")
	generateCmd.Flags().BoolVar(&overwrite, "overwrite", false, "overwrite existing files")
	generateCmd.Flags().BoolVar(&versionHeader, "version-header", false, "include generator header comment")
	addOverrideFlags(generateCmd)
	addModelConfigureFlags(generateCmd)

	previewCmd := &cobra.Command{
		Use:   "preview [scenario.yaml]",
		Short: "print a configuration file to stdout",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPreview,
	}
	previewCmd.Flags().StringVar(&preset, "preset", "", "use a built-in scenario")
	previewCmd.Flags().StringVar(&modeName, "mode", "", "sequence mode (traditional, coastal)")
	previewCmd.Flags().StringVar(&previewFile, "file", "", "file to preview (default by mode)")
	addOverrideFlags(previewCmd)
	addModelConfigureFlags(previewCmd)

	showCmd := &cobra.Command{
		Use:   "show [scenario.yaml]",
		Short: "summarize a scenario",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runShow,
	}
	showCmd.Flags().StringVar(&preset, "preset", "", "use a built-in scenario")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in scenarios",
		RunE:  runPresets,
	}

	initCmd := &cobra.Command{
		Use:   "init [scenario.yaml]",
		Short: "write a starter scenario file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runInit,
	}
	initCmd.Flags().StringVar(&preset, "preset", "atm2ocn", "built-in scenario to start from")
	initCmd.Flags().BoolVar(&overwrite, "overwrite", false, "overwrite an existing file")

	rootCmd.AddCommand(generateCmd, previewCmd, showCmd, presetsCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func addOverrideFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&historyN, "history-n", 1, "mediator history write cadence")
	cmd.Flags().IntVar(&restartN, "restart-n", 12, "restart write cadence (hours)")
	cmd.Flags().IntVar(&stopN, "stop-n", 120, "run stop time (hours)")
	cmd.Flags().StringVar(&couplingMode, "coupling-mode", "", "mediator coupling mode attribute")
}

func addModelConfigureFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&dtAtmos, "dt-atmos", 720, "atmosphere timestep (seconds)")
	cmd.Flags().BoolVar(&quilting, "quilting", true, "asynchronous write component")
	cmd.Flags().BoolVar(&quiltingRestart, "quilting-restart", false, "write restarts through quilting")
	cmd.Flags().IntVar(&writeGroups, "write-groups", 1, "write component groups")
	cmd.Flags().IntVar(&writeTasksPerGroup, "write-tasks-per-group", 6, "tasks per write group")
	cmd.Flags().IntVar(&itasks, "itasks", 1, "i-direction decomposition of write tasks")
	cmd.Flags().BoolVar(&outputHistory, "output-history", true, "write history output")
	cmd.Flags().IntVar(&imo, "imo", 384, "output grid i dimension")
	cmd.Flags().IntVar(&jmo, "jmo", 190, "output grid j dimension")
	cmd.Flags().StringVar(&outputFH, "output-fh", "12 -1", "output forecast hours")
}

func loadScenario(args []string) (*scenario.Scenario, error) {
	if preset != "" {
		sc := scenario.GetPreset(preset)
		if sc == nil {
			return nil, fmt.Errorf("unknown preset %q (try: %v)", preset, scenario.PresetNames())
		}
		return sc, nil
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("a scenario file or --preset is required")
	}
	return scenario.Load(args[0])
}

func resolve(cmd *cobra.Command, args []string) (*system.Document, sequence.Mode, error) {
	sc, err := loadScenario(args)
	if err != nil {
		return nil, "", err
	}
	sys, err := sc.Build()
	if err != nil {
		return nil, "", err
	}
	mode, err := sc.SequenceMode()
	if err != nil {
		return nil, "", err
	}
	if modeName != "" {
		if mode, err = sequence.ParseMode(modeName); err != nil {
			return nil, "", err
		}
	}
	doc, err := sys.BuildDocument(mode, system.BuildOptions{Overrides: overrides(cmd)})
	if err != nil {
		return nil, "", err
	}
	return doc, mode, nil
}

// overrides collects the write-time attribute overrides from flags that
// were explicitly set.
func overrides(cmd *cobra.Command) *nems.Attributes {
	ov := nems.NewAttributes()
	if cmd.Flags().Changed("history-n") {
		ov.Set("history_n", nems.Int(historyN))
	}
	if cmd.Flags().Changed("restart-n") {
		ov.Set("restart_n", nems.Int(restartN))
	}
	if cmd.Flags().Changed("stop-n") {
		ov.Set("stop_n", nems.Int(stopN))
	}
	if couplingMode != "" {
		ov.Set("coupling_mode", nems.String(couplingMode))
	}
	if ov.Len() == 0 {
		return nil
	}
	return ov
}

func modelConfigureOptions() configfile.ModelConfigureOptions {
	return configfile.ModelConfigureOptions{
		DtAtmos:            dtAtmos,
		Quilting:           quilting,
		QuiltingRestart:    quiltingRestart,
		WriteGroups:        writeGroups,
		WriteTasksPerGroup: writeTasksPerGroup,
		Itasks:             itasks,
		OutputHistory:      outputHistory,
		Imo:                imo,
		Jmo:                jmo,
		OutputFH:           outputFH,
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	doc, mode, err := resolve(cmd, args)
	if err != nil {
		return err
	}
	opts := configfile.Options{Overwrite: overwrite, IncludeVersion: versionHeader}

	var written []string
	if mode == sequence.Coastal {
		path, err := configfile.WriteUFS(doc, outDir, opts)
		if err != nil {
			return err
		}
		written = append(written, path)
		if path, err = configfile.WriteUFSModelConfigure(doc, outDir, modelConfigureOptions(), opts); err != nil {
			return err
		}
		written = append(written, path)
	} else {
		path, err := configfile.WriteNEMS(doc, outDir, opts)
		if err != nil {
			return err
		}
		written = append(written, path)
		if path, err = configfile.WriteModelConfigure(doc, outDir, true, opts); err != nil {
			return err
		}
		written = append(written, path)
		if hasForcings(doc) {
			if path, err = configfile.WriteForcings(doc, outDir, opts); err != nil {
				return err
			}
			written = append(written, path)
		}
	}

	for _, path := range written {
		fmt.Println(path)
	}
	return nil
}

func runPreview(cmd *cobra.Command, args []string) error {
	doc, mode, err := resolve(cmd, args)
	if err != nil {
		return err
	}
	target := previewFile
	if target == "" {
		target = configfile.NEMSFileName
		if mode == sequence.Coastal {
			target = configfile.UFSFileName
		}
	}
	switch target {
	case configfile.NEMSFileName:
		fmt.Println(configfile.RenderNEMS(doc))
	case configfile.UFSFileName:
		fmt.Println(configfile.RenderUFS(doc))
	case configfile.ModelConfigureFileName:
		if mode == sequence.Coastal {
			fmt.Println(configfile.RenderUFSModelConfigure(doc, modelConfigureOptions()))
		} else {
			fmt.Println(configfile.RenderModelConfigure(doc, true))
		}
	case configfile.ForcingsFileName:
		fmt.Println(configfile.RenderForcings(doc))
	default:
		return fmt.Errorf("unknown file %q", target)
	}
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	sc, err := loadScenario(args)
	if err != nil {
		return err
	}
	sys, err := sc.Build()
	if err != nil {
		return err
	}
	fmt.Println(summary.Render(sys))
	return nil
}

func runPresets(cmd *cobra.Command, args []string) error {
	for _, name := range scenario.PresetNames() {
		sc := scenario.GetPreset(name)
		fmt.Printf("%-10s %s (%d components)\n", name, sc.Name, len(sc.Components))
	}
	return nil
}

func runInit(cmd *cobra.Command, args []string) error {
	path := "scenario.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	sc := scenario.GetPreset(preset)
	if sc == nil {
		return fmt.Errorf("unknown preset %q (try: %v)", preset, scenario.PresetNames())
	}
	if _, err := os.Stat(path); err == nil && !overwrite {
		return fmt.Errorf("%w: %s", nems.ErrExists, path)
	}
	if err := scenario.Save(path, sc); err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}

func hasForcings(doc *system.Document) bool {
	for _, c := range doc.Components {
		if c.ForcingFile != "" {
			return true
		}
	}
	return false
}
